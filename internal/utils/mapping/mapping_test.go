package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/SscSPs/dispatch_ledger/internal/models"
	"github.com/SscSPs/dispatch_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobMapping_DateAndWorker(t *testing.T) {
	worker := "pro-1"
	d := domain.Job{
		JobID:             "job-1",
		GroupID:           "grp-1",
		Date:              time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		CustomerID:        "cust-1",
		WorkerKind:        domain.WorkerProfessional,
		Status:            domain.JobAssigned,
		AssignedWorkerID:  &worker,
		PriceToWorker:     decimal.NewFromInt(80),
		PriceFromCustomer: decimal.NewFromInt(120),
	}

	m := ToModelJob(d)
	assert.Equal(t, "07.03.2025", m.Date)
	assert.True(t, m.AssignedWorkerID.Valid)
	assert.Equal(t, "ASSIGNED", m.Status)

	back, err := ToDomainJob(m)
	require.NoError(t, err)
	assert.True(t, back.Date.Equal(d.Date))
	require.NotNil(t, back.AssignedWorkerID)
	assert.Equal(t, worker, *back.AssignedWorkerID)
}

func TestJobMapping_KeepsUnroundedSplit(t *testing.T) {
	share := accounting.SplitDailyRate(decimal.NewFromInt(1000), 3)
	day := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	total := decimal.Zero
	for slot := 0; slot < 3; slot++ {
		back, err := ToDomainJob(ToModelJob(domain.Job{JobID: "job", Date: day, PriceFromCustomer: share, Slot: slot}))
		require.NoError(t, err)
		assert.True(t, back.PriceFromCustomer.Equal(share), "got %s", back.PriceFromCustomer)
		assert.Equal(t, slot, back.Slot)
		total = total.Add(back.PriceFromCustomer)
	}
	assert.True(t, total.Sub(decimal.NewFromInt(1000)).Abs().LessThan(decimal.New(1, -12)), "got %s", total)
	assert.Greater(t, -share.Exponent(), int32(2), "share keeps more than cent precision")
}

func TestJobMapping_UnassignedStaysNil(t *testing.T) {
	m := ToModelJob(domain.Job{JobID: "job-2", Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)})
	assert.False(t, m.AssignedWorkerID.Valid)

	d, err := ToDomainJob(m)
	require.NoError(t, err)
	assert.Nil(t, d.AssignedWorkerID)
}

func TestToDomainJob_BadDate(t *testing.T) {
	_, err := ToDomainJob(models.Job{JobID: "job-3", Date: "2025-03-07"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "job-3")

	_, err = ToDomainJobSlice([]models.Job{{JobID: "ok", Date: "01.01.2025"}, {JobID: "bad", Date: "x"}})
	assert.Error(t, err)
}

func TestSalaryPaymentMapping(t *testing.T) {
	d := domain.SalaryPayment{
		PaymentID:      "pay-1",
		ProfessionalID: "pro-1",
		Amount:         decimal.NewFromInt(3000),
		PaymentDate:    time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC),
		PeriodKey:      "09-2025",
		PeriodKind:     domain.PeriodMonthly,
	}
	m := ToModelSalaryPayment(d)
	assert.Equal(t, "30.09.2025", m.PaymentDate)

	back, err := ToDomainSalaryPayment(m)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestTransactionMapping(t *testing.T) {
	m := models.Transaction{TransactionID: "tx-1", Date: "15.09.2025", Kind: "expense", Amount: decimal.NewFromInt(25)}
	d, err := ToDomainTransaction(m)
	require.NoError(t, err)
	assert.Equal(t, domain.Expense, d.Kind)
	assert.Equal(t, m, ToModelTransaction(d))
}
