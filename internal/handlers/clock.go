package handlers

import (
	"fmt"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/SscSPs/dispatch_ledger/internal/dto"
)

// now is swapped in tests.
var now = time.Now

// referenceDay returns the calendar day named by an optional YYYY-MM-DD value,
// or today when it is empty.
func referenceDay(value string) (time.Time, error) {
	if value == "" {
		return domain.CalendarDay(now().UTC()), nil
	}
	day, err := dto.ParseAPIDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return day, nil
}
