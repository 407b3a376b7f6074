package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePlanRequest() CreatePlanRequest {
	return CreatePlanRequest{
		CustomerID:        "cust-1",
		PaymentMode:       "postpaid",
		StudentCount:      2,
		StudentRate:       decimal.NewFromInt(60),
		ProfessionalCount: 1,
		ProfessionalRate:  decimal.NewFromInt(90),
		PricingPolicy:     "per_day",
		DailyRate:         decimal.NewFromInt(300),
	}
}

func TestCreatePlanRequest_ExplicitDates(t *testing.T) {
	req := basePlanRequest()
	req.Dates = []string{"2025-09-02", "2025-09-01"}

	plan, err := req.ToDomain()
	require.NoError(t, err)
	assert.Len(t, plan.Dates, 2)
	assert.Equal(t, domain.Postpaid, plan.PaymentMode)
	assert.Equal(t, domain.PricingPerDay, plan.Policy)
	assert.Equal(t, 3, plan.Roster.Workers())
	assert.NoError(t, plan.Validate())
}

func TestCreatePlanRequest_RangeWithWeekdays(t *testing.T) {
	req := basePlanRequest()
	req.From = "2025-09-01" // Monday
	req.To = "2025-09-14"
	req.Weekdays = []int{int(time.Monday), int(time.Wednesday)}

	plan, err := req.ToDomain()
	require.NoError(t, err)
	require.Len(t, plan.Dates, 4)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), plan.Dates[0])
	assert.Equal(t, time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC), plan.Dates[3])
}

func TestCreatePlanRequest_RangeWithoutWeekdaysHasNoDates(t *testing.T) {
	req := basePlanRequest()
	req.From = "2025-09-01"
	req.To = "2025-09-14"

	plan, err := req.ToDomain()
	require.NoError(t, err)
	assert.Empty(t, plan.Dates)
	assert.ErrorIs(t, plan.Validate(), domain.ErrNoDates)
}

func TestCreatePlanRequest_Errors(t *testing.T) {
	req := basePlanRequest()
	req.From = "2025-09-14"
	req.To = "2025-09-01"
	req.Weekdays = []int{1}
	_, err := req.ToDomain()
	assert.Error(t, err)

	req = basePlanRequest()
	req.Dates = []string{"01.09.2025"}
	_, err = req.ToDomain()
	assert.Error(t, err)

	req = basePlanRequest()
	req.From = "2025-01-01"
	req.To = "2030-01-01"
	req.Weekdays = []int{1}
	_, err = req.ToDomain()
	assert.ErrorContains(t, err, "spans more than")
}

func TestCreatePlanRequest_TwoYearRangeIsAccepted(t *testing.T) {
	req := basePlanRequest()
	req.From = "2025-01-01"
	req.To = "2026-12-31"
	req.Weekdays = []int{1}

	plan, err := req.ToDomain()

	assert.NoError(t, err)
	assert.NotEmpty(t, plan.Dates)
}
