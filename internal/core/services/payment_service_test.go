package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/dispatch_ledger/internal/core/ports/services"
	"github.com/SscSPs/dispatch_ledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	jobRepo    *MockJobRepository
	proRepo    *MockProfessionalRepository
	salaryRepo *MockSalaryPaymentRepository
	service    portssvc.PaymentSvcFacade
	today      time.Time
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.jobRepo = new(MockJobRepository)
	suite.proRepo = new(MockProfessionalRepository)
	suite.salaryRepo = new(MockSalaryPaymentRepository)
	suite.service = services.NewPaymentService(suite.jobRepo, suite.proRepo, suite.salaryRepo)
	suite.today = time.Date(2025, time.December, 29, 15, 30, 0, 0, time.UTC)
}

func (suite *PaymentServiceTestSuite) TestSettleSalary_Monthly() {
	suite.proRepo.On("FindProfessionalByID", suite.ctx, "p1").
		Return(&domain.Professional{ProfessionalID: "p1", MonthlySalary: dec(4000)}, nil).Once()
	suite.salaryRepo.On("FindSalaryPayment", suite.ctx, "p1", "12-2025", domain.PeriodMonthly).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.salaryRepo.On("SaveSalaryPayment", suite.ctx, mock.MatchedBy(func(p domain.SalaryPayment) bool {
		return p.PeriodKey == "12-2025" && p.Amount.Equal(dec(4000)) && p.PaymentID != ""
	})).Return(nil).Once()

	payment, err := suite.service.SettleSalary(suite.ctx, "p1", domain.PeriodMonthly, suite.today)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodMonthly, payment.PeriodKind)
	suite.Equal(d(29, time.December, 2025), payment.PaymentDate)
	suite.salaryRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestSettleSalary_WeeklyUsesISOYear() {
	suite.proRepo.On("FindProfessionalByID", suite.ctx, "w1").
		Return(&domain.Professional{ProfessionalID: "w1", WeeklySalary: dec(900)}, nil).Once()
	suite.salaryRepo.On("FindSalaryPayment", suite.ctx, "w1", "W1-2026", domain.PeriodWeekly).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.salaryRepo.On("SaveSalaryPayment", suite.ctx, mock.AnythingOfType("domain.SalaryPayment")).Return(nil).Once()

	payment, err := suite.service.SettleSalary(suite.ctx, "w1", domain.PeriodWeekly, suite.today)

	suite.Require().NoError(err)
	suite.Equal("W1-2026", payment.PeriodKey)
	suite.True(payment.Amount.Equal(dec(900)))
}

func (suite *PaymentServiceTestSuite) TestSettleSalary_AlreadySettled() {
	suite.proRepo.On("FindProfessionalByID", suite.ctx, "p1").
		Return(&domain.Professional{ProfessionalID: "p1", MonthlySalary: dec(4000)}, nil).Once()
	suite.salaryRepo.On("FindSalaryPayment", suite.ctx, "p1", "12-2025", domain.PeriodMonthly).
		Return(&domain.SalaryPayment{PaymentID: "pay-1"}, nil).Once()

	_, err := suite.service.SettleSalary(suite.ctx, "p1", domain.PeriodMonthly, suite.today)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.salaryRepo.AssertNotCalled(suite.T(), "SaveSalaryPayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestSettleSalary_LostRace() {
	suite.proRepo.On("FindProfessionalByID", suite.ctx, "p1").
		Return(&domain.Professional{ProfessionalID: "p1", MonthlySalary: dec(4000)}, nil).Once()
	suite.salaryRepo.On("FindSalaryPayment", suite.ctx, "p1", "12-2025", domain.PeriodMonthly).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.salaryRepo.On("SaveSalaryPayment", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.SettleSalary(suite.ctx, "p1", domain.PeriodMonthly, suite.today)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PaymentServiceTestSuite) TestSettleSalary_NoSalaryOfKind() {
	suite.proRepo.On("FindProfessionalByID", suite.ctx, "p1").
		Return(&domain.Professional{ProfessionalID: "p1", MonthlySalary: dec(4000)}, nil).Once()

	_, err := suite.service.SettleSalary(suite.ctx, "p1", domain.PeriodWeekly, suite.today)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestSettleSalary_UnknownKind() {
	_, err := suite.service.SettleSalary(suite.ctx, "p1", domain.PeriodKind("daily"), suite.today)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.proRepo.AssertNotCalled(suite.T(), "FindProfessionalByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestSalaryStatus() {
	suite.proRepo.On("ListSalariedProfessionals", suite.ctx).Return([]domain.Professional{
		{ProfessionalID: "p1", MonthlySalary: dec(4000)},
		{ProfessionalID: "p2", MonthlySalary: dec(3000)},
		{ProfessionalID: "w1", WeeklySalary: dec(900)},
	}, nil).Once()
	suite.salaryRepo.On("FindSalaryPayment", suite.ctx, "p1", "12-2025", domain.PeriodMonthly).
		Return(&domain.SalaryPayment{PaymentID: "x"}, nil).Once()
	suite.salaryRepo.On("FindSalaryPayment", suite.ctx, "p2", "12-2025", domain.PeriodMonthly).
		Return(nil, apperrors.ErrNotFound).Once()

	statuses, err := suite.service.SalaryStatus(suite.ctx, domain.PeriodMonthly, suite.today)

	suite.Require().NoError(err)
	suite.Require().Len(statuses, 2, "weekly-only professional is not listed for monthly")
	suite.True(statuses[0].IsPaid)
	suite.False(statuses[1].IsPaid)
	suite.Equal("12-2025", statuses[1].PeriodKey)
}

func (suite *PaymentServiceTestSuite) TestReconcile() {
	suite.salaryRepo.On("FindDuplicateSettlements", suite.ctx).Return([]domain.SettlementConflict{
		{ProfessionalID: "p1", PeriodKey: "12-2025", PeriodKind: domain.PeriodMonthly, PaymentIDs: []string{"a", "b"}},
	}, nil).Once()

	conflicts, err := suite.service.Reconcile(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(conflicts, 1)
}

func (suite *PaymentServiceTestSuite) TestPayPieceRate() {
	assigned := openJob(domain.WorkerStudent, 500)
	assigned.Status = domain.JobAssigned
	suite.jobRepo.On("FindJobByID", suite.ctx, "job-1").Return(assigned, nil).Once()
	suite.jobRepo.On("SetWorkerPaid", suite.ctx, "job-1", true).Return(nil).Once()

	job, err := suite.service.PayPieceRate(suite.ctx, "job-1")

	suite.Require().NoError(err)
	suite.True(job.IsWorkerPaid)
}

func (suite *PaymentServiceTestSuite) TestPayPieceRate_Invalid() {
	suite.jobRepo.On("FindJobByID", suite.ctx, "open").Return(openJob(domain.WorkerStudent, 500), nil).Once()
	_, err := suite.service.PayPieceRate(suite.ctx, "open")
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)

	paid := openJob(domain.WorkerStudent, 500)
	paid.Status = domain.JobAssigned
	paid.IsWorkerPaid = true
	suite.jobRepo.On("FindJobByID", suite.ctx, "paid").Return(paid, nil).Once()
	_, err = suite.service.PayPieceRate(suite.ctx, "paid")
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.jobRepo.AssertNotCalled(suite.T(), "SetWorkerPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
