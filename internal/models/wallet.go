package models

import (
	"time"
)

// Wallet holds the running balance for a single user. Balances are stored in
// minor currency units (cents) so no arithmetic ever touches floating point.
type Wallet struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance   int64     `gorm:"not null;default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
