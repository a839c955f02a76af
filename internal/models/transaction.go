package models

import (
	"time"
)

// Transaction types accepted from the payment provider.
const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeWithdraw = "withdraw"
	TransactionTypePayment  = "payment"
)

// Debit/credit indicators carried on provider notifications.
const (
	DebitCreditDebit  = "debit"
	DebitCreditCredit = "credit"
)

// Transaction is one settled provider event, immutable once stored. The ID is
// the provider's globally unique identifier and doubles as the idempotency key.
// Timestamps are event-supplied, so gorm's automatic tracking is disabled.
type Transaction struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	Description string    `json:"description"`
	Type        string    `gorm:"not null" json:"type"`
	TypeMethod  string    `json:"type_method"`
	State       string    `json:"state"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	UserName    string    `json:"user_name"`
	Amount      int64     `gorm:"not null" json:"amount"`
	Currency    string    `gorm:"size:3;not null" json:"currency"`
	DebitCredit string    `gorm:"not null" json:"debit_credit"`
}
