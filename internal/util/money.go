package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// 金额内部统一用分（int64）计算，只在输入/输出边界经过 decimal，
// 避免链路中间出现浮点舍入。

// 单笔金额上限：1 千万元
var maxAmount = decimal.NewFromInt(10_000_000)

// ParseAmountToCent 把十进制金额（元）精确转成分。
// 拒绝非正数、超上限、以及分以下还有尾数的输入（比如 1.234）。
func ParseAmountToCent(d decimal.Decimal) (int64, error) {
	if d.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("amount must be positive, got %s", d)
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return 0, fmt.Errorf("amount too large, got %s", d)
	}
	cent := d.Shift(2)
	if !cent.IsInteger() {
		return 0, fmt.Errorf("amount has more than two decimal places: %s", d)
	}
	return cent.IntPart(), nil
}

// FormatCent 把分转成两位小数的金额字符串，用于展示边界。
func FormatCent(cent int64) string {
	return decimal.NewFromInt(cent).Shift(-2).StringFixed(2)
}

// CentToDecimal 把分还原为十进制金额（元）。
func CentToDecimal(cent int64) decimal.Decimal {
	return decimal.NewFromInt(cent).Shift(-2)
}
