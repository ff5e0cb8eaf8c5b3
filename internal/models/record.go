package models

import "time"

// Record 表示一笔收支记录
// 金额用分存储，避免浮点误差，比如 12.34 元 = 1234 分
// 日期用 YYYY-MM-DD 文本存储，区间筛选直接按字典序比较
type Record struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	Type       string `gorm:"size:16;index;not null;check:type IN ('income','expense')"` // income / expense
	AmountCent int64  `gorm:"not null;check:amount_cent > 0"`                            // 金额（分）
	Currency   string `gorm:"size:8;default:CNY"`
	Category   string `gorm:"size:32;index;not null"`
	Account    string `gorm:"size:32;index;not null"`
	Date       string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Note       string `gorm:"size:255"`
	Tags       string `gorm:"size:255"` // 逗号分隔
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
