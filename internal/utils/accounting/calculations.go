package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LastDayOfMonth returns the last calendar day of the month containing t.
// Day 28 exists in every month and day 28 + 4 always lands in the next month,
// so stepping back by that date's day-of-month yields the month end.
func LastDayOfMonth(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 4)
	return next.AddDate(0, 0, -next.Day())
}

// MondaysOf lists every Monday of the given month in ascending order.
func MondaysOf(month time.Month, year int) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := LastDayOfMonth(first)

	var mondays []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Monday {
			mondays = append(mondays, d)
		}
	}
	return mondays
}

// MondaysInMonth counts the Mondays of the given month (4 or 5).
func MondaysInMonth(month time.Month, year int) int {
	return len(MondaysOf(month, year))
}

// SplitDailyRate divides a day's customer price evenly across its workers.
// No workers yields zero; callers emit no rows in that case.
func SplitDailyRate(dailyRate decimal.Decimal, workers int) decimal.Decimal {
	if workers <= 0 {
		return decimal.Zero
	}
	return dailyRate.Div(decimal.NewFromInt(int64(workers)))
}

// SumLines adds the signed amounts of a cash-flow log.
func SumLines(lines []domain.LedgerLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// SumPositive adds amounts, ignoring zero and negative values.
func SumPositive(amounts ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		if a.IsPositive() {
			sum = sum.Add(a)
		}
	}
	return sum
}

// SignedLedgerAmount applies the cash-flow sign convention for a line source:
// revenue and income add, labor and salary subtract. Transactions carry their own sign.
func SignedLedgerAmount(source domain.LedgerSource, amount decimal.Decimal) (decimal.Decimal, error) {
	switch source {
	case domain.SourceJobRevenue, domain.SourceTransaction:
		return amount, nil
	case domain.SourceJobLabor, domain.SourceSalary:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown ledger source '%s'", source)
	}
}
