package model

import "time"

// CredentialModel mirrors the 'users' table.
type CredentialModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     *string `gorm:"type:varchar(100);uniqueIndex"`
	Email        *string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string  `gorm:"column:password_hash;type:text;not null"`
	Role         string  `gorm:"type:varchar(20);not null;default:employee"`
	EmployeeID   *int64  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Employee *EmployeeModel `gorm:"foreignKey:EmployeeID"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "users"
}

// EmployeeModel mirrors the 'employees' table. Only the columns this service reads are mapped.
type EmployeeModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100)"`
	Email      string `gorm:"type:varchar(255)"`
	Department string `gorm:"type:varchar(100)"`
	Position   string `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
