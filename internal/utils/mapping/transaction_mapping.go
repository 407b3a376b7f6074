package mapping

import (
	"fmt"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/SscSPs/dispatch_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Date:          domain.FormatLedgerDate(d.Date),
		Kind:          string(d.Kind),
		Category:      d.Category,
		Amount:        d.Amount,
		Description:   d.Description,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	date, err := domain.ParseLedgerDate(m.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          date,
		Kind:          domain.TransactionKind(m.Kind),
		Category:      m.Category,
		Amount:        m.Amount,
		Description:   m.Description,
	}, nil
}
