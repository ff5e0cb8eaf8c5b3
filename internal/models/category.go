package models

// 分类和账户采用封闭枚举：无效的 key 在参数校验阶段直接拒绝，
// 展示名只在输出边界附加，存储层永远只存 key。

// 支出分类
var ExpenseCategories = map[string]string{
	"food":          "餐饮",
	"transport":     "交通",
	"shopping":      "购物",
	"entertainment": "娱乐",
	"medical":       "医疗",
	"education":     "教育",
	"investment":    "投资",
	"other":         "其他",
}

// 收入分类
var IncomeCategories = map[string]string{
	"salary":     "工资",
	"investment": "投资",
	"other":      "其他",
}

// 账户类型
var Accounts = map[string]string{
	"cash":    "现金",
	"bank":    "银行卡",
	"alipay":  "支付宝",
	"wechat":  "微信支付",
	"credit":  "信用卡",
	"digital": "数字钱包",
}

// ValidCategory reports whether category is a known key for the given record type.
func ValidCategory(recordType, category string) bool {
	switch recordType {
	case "income":
		_, ok := IncomeCategories[category]
		return ok
	case "expense":
		_, ok := ExpenseCategories[category]
		return ok
	}
	return false
}

// ValidAccount reports whether account is a known account key.
func ValidAccount(account string) bool {
	_, ok := Accounts[account]
	return ok
}

// CategoryName returns the display name for a category key, falling back to the key.
func CategoryName(category string) string {
	if name, ok := ExpenseCategories[category]; ok {
		return name
	}
	if name, ok := IncomeCategories[category]; ok {
		return name
	}
	return category
}

// AccountName returns the display name for an account key, falling back to the key.
func AccountName(account string) string {
	if name, ok := Accounts[account]; ok {
		return name
	}
	return account
}
