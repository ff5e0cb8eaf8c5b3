package util

import (
	"fmt"
	"time"
)

// ValidateDate 验证日期格式（必须为定宽 YYYY-MM-DD）
// 存储层按字典序比较日期，所以 2024-1-5 这种不补零的写法也要拒绝
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	if t.Format("2006-01-02") != dateStr {
		return fmt.Errorf("date must be zero-padded YYYY-MM-DD: %q", dateStr)
	}
	return nil
}

// ValidateRecordType 验证记录类型（income / expense）
func ValidateRecordType(recordType string) error {
	if recordType != "income" && recordType != "expense" {
		return fmt.Errorf("invalid record type: %q", recordType)
	}
	return nil
}

// ValidateYearMonth 验证年月范围
func ValidateYearMonth(year, month int) error {
	if year < 1970 || year > 9999 {
		return fmt.Errorf("invalid year: %d", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month: %d", month)
	}
	return nil
}
