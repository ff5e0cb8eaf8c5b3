package models

import "time"

// Budget 表示某个用户在某年某月对某分类的预算额度
// (user_id, category, year, month) 天然唯一，写入用 ON CONFLICT DO UPDATE 实现 upsert
type Budget struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"uniqueIndex:idx_budget_key;not null"`
	Category   string `gorm:"size:32;uniqueIndex:idx_budget_key;not null"`
	AmountCent int64  `gorm:"not null"` // 预算金额（分）
	Period     string `gorm:"size:16;default:monthly"`
	Year       int    `gorm:"uniqueIndex:idx_budget_key;not null"`
	Month      int    `gorm:"uniqueIndex:idx_budget_key;not null"` // 1-12
	// 写入时总是显式赋值，不走列默认值：带 default 标签的 bool 零值会被 GORM 丢掉
	AlertsEnabled bool `gorm:"not null"`
	Threshold     int  `gorm:"not null"` // 提醒阈值（百分比）
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
