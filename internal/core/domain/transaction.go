package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a manual transaction brings money in or out.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Transaction is a manually entered income or expense not tied to a job.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Kind          TransactionKind `json:"kind"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"` // Positive; the kind carries the sign
	Description   string          `json:"description"`
}

// SignedAmount returns +Amount for income and -Amount for anything else.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}
