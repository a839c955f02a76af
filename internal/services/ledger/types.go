package ledger

import (
	"math"
	"time"
)

// Candidate is a single validated provider transaction awaiting application.
// Amount is still the decimal magnitude from the wire; direction comes from
// Type, not from DebitCredit.
type Candidate struct {
	ID          string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Description string
	Type        string
	TypeMethod  string
	State       string
	UserID      string
	UserName    string
	Amount      float64
	Currency    string
	DebitCredit string
}

// MinorUnits converts the decimal amount to integer cents, rounding exact
// halves to even.
func (c Candidate) MinorUnits() int64 {
	return int64(math.RoundToEven(c.Amount * 100))
}

// BatchResult reports what a committed batch touched.
type BatchResult struct {
	Applied int
	Users   []string
}
