package models

import "github.com/shopspring/decimal"

// Transaction is the row form of a manual income or expense entry.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Date          string          `db:"date"` // DD.MM.YYYY
	Kind          string          `db:"kind"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
}
