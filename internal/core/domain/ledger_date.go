package domain

import (
	"fmt"
	"strings"
	"time"
)

// LedgerDateLayout is the fixed-width DD.MM.YYYY form every stored date uses.
// Month-scoped queries match on its trailing ".MM.YYYY", so it must not change.
const LedgerDateLayout = "02.01.2006"

// FormatLedgerDate renders a calendar day in the stored DD.MM.YYYY form.
func FormatLedgerDate(t time.Time) string {
	return t.Format(LedgerDateLayout)
}

// ParseLedgerDate parses a stored DD.MM.YYYY date into a UTC calendar day.
func ParseLedgerDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LedgerDateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ledger date %q: %w", s, err)
	}
	return t, nil
}

// CalendarDay drops the clock part of t, keeping its year, month and day in UTC.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthSuffix returns the ".MM.YYYY" tail shared by every stored date in a month.
func MonthSuffix(month time.Month, year int) string {
	return fmt.Sprintf(".%02d.%04d", int(month), year)
}

// MonthPattern returns the SQL LIKE pattern ("%.MM.YYYY") for a month filter.
func MonthPattern(month time.Month, year int) string {
	return "%" + MonthSuffix(month, year)
}

// InMonth reports whether t falls in the given month and year.
func InMonth(t time.Time, month time.Month, year int) bool {
	return t.Month() == month && t.Year() == year
}
