package entity

import "time"

// PasswordResetRequest is a staff member's request for an administrator to reset
// the password of the account registered under Email.
type PasswordResetRequest struct {
	ID          int64
	Email       string
	RequestedAt time.Time
}
