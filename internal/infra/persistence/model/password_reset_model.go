package model

import "time"

// PasswordResetModel mirrors the 'password_resets' table.
type PasswordResetModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Email       string    `gorm:"type:varchar(255);not null;index"`
	RequestedAt time.Time `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "password_resets"
}
