package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a mock type for the JobRepositoryFacade interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobsByGroup(ctx context.Context, groupID string) ([]domain.Job, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobsByMonth(ctx context.Context, month time.Month, year int, kind domain.WorkerKind) ([]domain.Job, error) {
	args := m.Called(ctx, month, year, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListCollectedRevenueJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListPaidLaborJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListUnpaidPieceRateJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) SumUnpaidPieceRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockJobRepository) SumPendingReceivables(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockJobRepository) SaveJobBatch(ctx context.Context, jobs []domain.Job) error {
	args := m.Called(ctx, jobs)
	return args.Error(0)
}

func (m *MockJobRepository) AssignWorker(ctx context.Context, jobID string, workerID string, priceToWorker decimal.Decimal) error {
	args := m.Called(ctx, jobID, workerID, priceToWorker)
	return args.Error(0)
}

func (m *MockJobRepository) RejectJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockJobRepository) SetCollected(ctx context.Context, jobID string, collected bool) error {
	args := m.Called(ctx, jobID, collected)
	return args.Error(0)
}

func (m *MockJobRepository) SetWorkerPaid(ctx context.Context, jobID string, paid bool) error {
	args := m.Called(ctx, jobID, paid)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteJob(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteJobGroup(ctx context.Context, groupID string) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfessionalRepository is a mock type for the ProfessionalReader interface
type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) FindProfessionalByID(ctx context.Context, professionalID string) (*domain.Professional, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) ListSalariedProfessionals(ctx context.Context) ([]domain.Professional, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Professional), args.Error(1)
}

// MockSalaryPaymentRepository is a mock type for the SalaryPaymentRepositoryFacade interface
type MockSalaryPaymentRepository struct {
	mock.Mock
}

func (m *MockSalaryPaymentRepository) FindSalaryPayment(ctx context.Context, professionalID, periodKey string, kind domain.PeriodKind) (*domain.SalaryPayment, error) {
	args := m.Called(ctx, professionalID, periodKey, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryPayment), args.Error(1)
}

func (m *MockSalaryPaymentRepository) ListSalaryPayments(ctx context.Context) ([]domain.SalaryPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryPayment), args.Error(1)
}

func (m *MockSalaryPaymentRepository) FindDuplicateSettlements(ctx context.Context) ([]domain.SettlementConflict, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementConflict), args.Error(1)
}

func (m *MockSalaryPaymentRepository) SaveSalaryPayment(ctx context.Context, payment domain.SalaryPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// MockTransactionRepository is a mock type for the TransactionReader interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByMonth(ctx context.Context, month time.Month, year int) ([]domain.Transaction, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
