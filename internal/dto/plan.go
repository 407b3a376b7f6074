package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// APIDateLayout is the date form accepted and returned by the HTTP API.
const APIDateLayout = "2006-01-02"

// CreatePlanRequest defines the data needed to plan jobs for a customer.
// Either Dates or a From/To range with Weekdays selects the target days.
type CreatePlanRequest struct {
	Dates             []string        `json:"dates" binding:"omitempty,dive,datetime=2006-01-02"`
	From              string          `json:"from" binding:"omitempty,datetime=2006-01-02"`
	To                string          `json:"to" binding:"required_with=From,omitempty,datetime=2006-01-02"`
	Weekdays          []int           `json:"weekdays" binding:"omitempty,dive,min=0,max=6"` // 0 = Sunday
	CustomerID        string          `json:"customerID" binding:"required"`
	PaymentMode       string          `json:"paymentMode" binding:"required,oneof=prepaid postpaid"`
	StudentCount      int             `json:"studentCount" binding:"gte=0,lte=1000"`
	StudentRate       decimal.Decimal `json:"studentRate"`
	ProfessionalCount int             `json:"professionalCount" binding:"gte=0,lte=1000"`
	ProfessionalRate  decimal.Decimal `json:"professionalRate"`
	PricingPolicy     string          `json:"pricingPolicy" binding:"required,oneof=per_day flat_project"`
	DailyRate         decimal.Decimal `json:"dailyRate"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
	Note              string          `json:"note" binding:"max=1000"`
}

// ToDomain converts the request into a domain.PlanRequest, expanding a date
// range into the matching weekdays.
func (r CreatePlanRequest) ToDomain() (domain.PlanRequest, error) {
	var dates []time.Time
	if len(r.Dates) > 0 {
		dates = make([]time.Time, 0, len(r.Dates))
		for _, s := range r.Dates {
			d, err := ParseAPIDate(s)
			if err != nil {
				return domain.PlanRequest{}, err
			}
			dates = append(dates, d)
		}
	} else if r.From != "" {
		from, err := ParseAPIDate(r.From)
		if err != nil {
			return domain.PlanRequest{}, err
		}
		to, err := ParseAPIDate(r.To)
		if err != nil {
			return domain.PlanRequest{}, err
		}
		if to.Before(from) {
			return domain.PlanRequest{}, fmt.Errorf("range end %s is before start %s", r.To, r.From)
		}
		if to.Sub(from) >= domain.MaxPlanDates*24*time.Hour {
			return domain.PlanRequest{}, fmt.Errorf("range %s to %s spans more than %d days", r.From, r.To, domain.MaxPlanDates)
		}
		weekdays := make([]time.Weekday, len(r.Weekdays))
		for i, wd := range r.Weekdays {
			weekdays[i] = time.Weekday(wd)
		}
		dates = domain.ExpandDateRange(from, to, weekdays)
	}

	return domain.PlanRequest{
		Dates:       dates,
		CustomerID:  r.CustomerID,
		PaymentMode: domain.PaymentMode(r.PaymentMode),
		Roster: domain.WorkerRoster{
			StudentCount:      r.StudentCount,
			StudentRate:       r.StudentRate,
			ProfessionalCount: r.ProfessionalCount,
			ProfessionalRate:  r.ProfessionalRate,
		},
		Policy:     domain.PricingPolicy(r.PricingPolicy),
		DailyRate:  r.DailyRate,
		TotalPrice: r.TotalPrice,
		Note:       r.Note,
	}, nil
}

// ParseAPIDate parses a YYYY-MM-DD date into a UTC calendar day.
func ParseAPIDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(APIDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// PlanResponse defines the data returned after a planning action.
type PlanResponse struct {
	GroupID         string          `json:"groupID"`
	Jobs            []JobResponse   `json:"jobs"`
	CustomerRevenue decimal.Decimal `json:"customerRevenue"`
	WorkerPayroll   decimal.Decimal `json:"workerPayroll"`
	DatesScheduled  int             `json:"datesScheduled"`
}

// ToPlanResponse converts a domain.PlanResult to PlanResponse DTO.
func ToPlanResponse(r *domain.PlanResult) PlanResponse {
	return PlanResponse{
		GroupID:         r.GroupID,
		Jobs:            ToJobResponses(r.Jobs),
		CustomerRevenue: r.CustomerRevenue,
		WorkerPayroll:   r.WorkerPayroll,
		DatesScheduled:  r.DatesScheduled,
	}
}
