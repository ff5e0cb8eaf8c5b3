package models

import "time"

// User represents application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	Email        string `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	Currency          string `gorm:"size:8;default:CNY"`   // 默认币种
	MonthlyBudgetCent int64  `gorm:"default:0"`            // 默认月度总预算（分）
	Preferences       string `gorm:"type:text;default:'{}'"` // 偏好设置 JSON，自由格式

	CreatedAt time.Time
	UpdatedAt time.Time

	FailedLoginAttempts int        `gorm:"default:0"` // 连续登录失败次数
	LockedUntil         *time.Time `gorm:"index"`     // 账户锁定到期时间
	LastLoginAt         *time.Time                    // 最近登录时间
	LastLoginIP         string     `gorm:"size:64"`   // 最近登录 IP
}
