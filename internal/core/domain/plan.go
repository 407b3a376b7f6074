package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// PricingPolicy selects how a customer quote is spread over the generated jobs.
type PricingPolicy string

const (
	// PricingPerDay charges DailyRate for every date, split evenly across that day's workers.
	PricingPerDay PricingPolicy = "per_day"
	// PricingFlatProject charges TotalPrice once for the whole batch.
	PricingFlatProject PricingPolicy = "flat_project"
)

// PaymentMode tells whether the customer paid at booking time.
type PaymentMode string

const (
	Prepaid  PaymentMode = "prepaid"
	Postpaid PaymentMode = "postpaid"
)

// ErrNoDates is returned when a plan request carries no target dates.
var ErrNoDates = errors.New("no dates selected")

const (
	// MaxWorkersPerKind caps each head count of a roster.
	MaxWorkersPerKind = 1000
	// MaxPlanDates caps the distinct dates of one planning action.
	MaxPlanDates = 731
)

// WorkerRoster is the head count and flat per-head pay for each worker kind.
type WorkerRoster struct {
	StudentCount      int             `validate:"gte=0,lte=1000"`
	StudentRate       decimal.Decimal `validate:"-"`
	ProfessionalCount int             `validate:"gte=0,lte=1000"`
	ProfessionalRate  decimal.Decimal `validate:"-"`
}

// Workers returns the number of workers staffed on every date, or 0 when either
// count is negative or above MaxWorkersPerKind.
func (r WorkerRoster) Workers() int {
	if !countInRange(r.StudentCount) || !countInRange(r.ProfessionalCount) {
		return 0
	}
	if r.StudentCount > math.MaxInt-r.ProfessionalCount {
		return 0
	}
	return r.StudentCount + r.ProfessionalCount
}

func countInRange(n int) bool {
	return n >= 0 && n <= MaxWorkersPerKind
}

// PlanRequest is one planning action: a customer quote over a set of dates.
type PlanRequest struct {
	Dates       []time.Time `validate:"-"`
	CustomerID  string      `validate:"required"`
	PaymentMode PaymentMode `validate:"required,oneof=prepaid postpaid"`
	Roster      WorkerRoster
	Policy      PricingPolicy   `validate:"required,oneof=per_day flat_project"`
	DailyRate   decimal.Decimal `validate:"-"`
	TotalPrice  decimal.Decimal `validate:"-"`
	Note        string          `validate:"max=1000"`
}

var planValidator = validator.New()

// Validate checks the request and returns an error wrapping ErrNoDates or the
// validator's field errors.
func (r PlanRequest) Validate() error {
	if len(r.Dates) == 0 {
		return ErrNoDates
	}
	if err := planValidator.Struct(r); err != nil {
		return err
	}
	if n := len(r.NormalizedDates()); n > MaxPlanDates {
		return fmt.Errorf("%d dates selected, at most %d allowed", n, MaxPlanDates)
	}
	amounts := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"student rate", r.Roster.StudentRate},
		{"professional rate", r.Roster.ProfessionalRate},
		{"daily rate", r.DailyRate},
		{"total price", r.TotalPrice},
	}
	for _, a := range amounts {
		if a.amount.IsNegative() {
			return fmt.Errorf("%s must not be negative", a.name)
		}
	}
	return nil
}

// NormalizedDates returns the request dates as calendar days, de-duplicated and
// sorted ascending.
func (r PlanRequest) NormalizedDates() []time.Time {
	seen := make(map[time.Time]struct{}, len(r.Dates))
	days := make([]time.Time, 0, len(r.Dates))
	for _, d := range r.Dates {
		day := CalendarDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// PlanResult is what a planning action persisted.
type PlanResult struct {
	GroupID         string          `json:"groupID"`
	Jobs            []Job           `json:"jobs"`
	CustomerRevenue decimal.Decimal `json:"customerRevenue"`
	WorkerPayroll   decimal.Decimal `json:"workerPayroll"`
	DatesScheduled  int             `json:"datesScheduled"`
}

// ExpandDateRange lists every day from `from` to `to` inclusive whose weekday is in
// weekdays. An empty weekday set selects nothing.
func ExpandDateRange(from, to time.Time, weekdays []time.Weekday) []time.Time {
	if len(weekdays) == 0 {
		return nil
	}
	wanted := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		wanted[wd] = true
	}
	var days []time.Time
	for d := CalendarDay(from); !d.After(CalendarDay(to)); d = d.AddDate(0, 0, 1) {
		if wanted[d.Weekday()] {
			days = append(days, d)
		}
	}
	return days
}
