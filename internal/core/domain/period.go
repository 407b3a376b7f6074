package domain

import (
	"fmt"
	"time"
)

// PeriodKind tells which salary cycle a settlement belongs to.
type PeriodKind string

const (
	PeriodMonthly PeriodKind = "monthly"
	PeriodWeekly  PeriodKind = "weekly"
)

// Valid reports whether k is a known period kind.
func (k PeriodKind) Valid() bool {
	return k == PeriodMonthly || k == PeriodWeekly
}

// MonthlyPeriodKey returns the MM-YYYY key of the month containing t.
func MonthlyPeriodKey(t time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(t.Month()), t.Year())
}

// WeeklyPeriodKey returns the W<iso-week>-<iso-year> key of the ISO week containing t.
func WeeklyPeriodKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("W%d-%d", week, year)
}

// PeriodKeyFor returns the settlement key of the given kind for the period containing t.
func PeriodKeyFor(kind PeriodKind, t time.Time) (string, error) {
	switch kind {
	case PeriodMonthly:
		return MonthlyPeriodKey(t), nil
	case PeriodWeekly:
		return WeeklyPeriodKey(t), nil
	default:
		return "", fmt.Errorf("unknown period kind %q", kind)
	}
}
