package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/dispatch_ledger/internal/apperrors"
	"github.com/SscSPs/dispatch_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/dispatch_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store is an in-process ledger store with the same semantics as the PostgreSQL
// adapter: atomic job batches and one settlement per (professional, key, kind).
type Store struct {
	mu sync.RWMutex

	jobs     map[string]*domain.Job
	jobOrder []string

	professionals map[string]domain.Professional

	payments       []domain.SalaryPayment
	settlementKeys map[settlementKey]struct{}

	transactions []domain.Transaction
}

type settlementKey struct {
	professionalID string
	periodKey      string
	kind           domain.PeriodKind
}

// New creates an empty store.
func New() *Store {
	return &Store{
		jobs:           make(map[string]*domain.Job),
		professionals:  make(map[string]domain.Professional),
		settlementKeys: make(map[settlementKey]struct{}),
	}
}

var (
	_ portsrepo.JobRepositoryFacade           = (*Store)(nil)
	_ portsrepo.ProfessionalReader            = (*Store)(nil)
	_ portsrepo.SalaryPaymentRepositoryFacade = (*Store)(nil)
	_ portsrepo.TransactionReader             = (*Store)(nil)
	_ portsrepo.StoreHealth                   = (*Store)(nil)
)

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JobRepo:           s,
		ProfessionalRepo:  s,
		SalaryPaymentRepo: s,
		TransactionRepo:   s,
		Health:            s,
	}
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

// --- seeding (professionals and transactions are owned by other collaborators) ---

// PutProfessional inserts or replaces a professional.
func (s *Store) PutProfessional(p domain.Professional) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.professionals[p.ProfessionalID] = p
}

// AddTransaction appends a manual income or expense entry.
func (s *Store) AddTransaction(t domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Date = domain.CalendarDay(t.Date)
	s.transactions = append(s.transactions, t)
}

// ImportSalaryPayment appends a settlement without the uniqueness check, as rows
// written before the unique settlement key existed would be.
func (s *Store) ImportSalaryPayment(p domain.SalaryPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.PaymentDate = domain.CalendarDay(p.PaymentDate)
	s.payments = append(s.payments, p)
	s.settlementKeys[settlementKey{p.ProfessionalID, p.PeriodKey, p.PeriodKind}] = struct{}{}
}

// --- jobs ---

func copyJob(j *domain.Job) domain.Job {
	c := *j
	if j.AssignedWorkerID != nil {
		id := *j.AssignedWorkerID
		c.AssignedWorkerID = &id
	}
	return c
}

func (s *Store) filterJobs(keep func(*domain.Job) bool) []domain.Job {
	out := make([]domain.Job, 0)
	for _, id := range s.jobOrder {
		if j := s.jobs[id]; keep(j) {
			out = append(out, copyJob(j))
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Date.Before(out[b].Date) })
	return out
}

func (s *Store) FindJobByID(_ context.Context, jobID string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := copyJob(j)
	return &c, nil
}

func (s *Store) ListJobsByGroup(_ context.Context, groupID string) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterJobs(func(j *domain.Job) bool { return j.GroupID == groupID }), nil
}

func (s *Store) ListJobsByMonth(_ context.Context, month time.Month, year int, kind domain.WorkerKind) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterJobs(func(j *domain.Job) bool {
		return domain.InMonth(j.Date, month, year) && (kind == "" || j.WorkerKind == kind)
	}), nil
}

func (s *Store) ListCollectedRevenueJobs(_ context.Context) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterJobs(func(j *domain.Job) bool {
		return j.IsCollected && j.PriceFromCustomer.IsPositive()
	}), nil
}

func (s *Store) ListPaidLaborJobs(_ context.Context) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterJobs(func(j *domain.Job) bool {
		return j.IsWorkerPaid && j.PriceToWorker.IsPositive()
	}), nil
}

func (s *Store) ListUnpaidPieceRateJobs(_ context.Context) ([]domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterJobs(func(j *domain.Job) bool {
		return !j.IsWorkerPaid && j.PriceToWorker.IsPositive() && j.Status == domain.JobAssigned
	}), nil
}

func (s *Store) SumUnpaidPieceRate(_ context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := decimal.Zero
	for _, j := range s.jobs {
		if !j.IsWorkerPaid && j.PriceToWorker.IsPositive() {
			sum = sum.Add(j.PriceToWorker)
		}
	}
	return sum, nil
}

func (s *Store) SumPendingReceivables(_ context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := decimal.Zero
	for _, j := range s.jobs {
		if !j.IsCollected && j.PriceFromCustomer.IsPositive() {
			sum = sum.Add(j.PriceFromCustomer)
		}
	}
	return sum, nil
}

func (s *Store) SaveJobBatch(_ context.Context, jobs []domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check the whole batch before touching the maps so a failure stores nothing.
	seen := make(map[string]struct{}, len(jobs))
	for _, j := range jobs {
		if j.JobID == "" {
			return fmt.Errorf("%w: job id is required", apperrors.ErrValidation)
		}
		if _, dup := s.jobs[j.JobID]; dup {
			return fmt.Errorf("job %s: %w", j.JobID, apperrors.ErrDuplicate)
		}
		if _, dup := seen[j.JobID]; dup {
			return fmt.Errorf("job %s: %w", j.JobID, apperrors.ErrDuplicate)
		}
		seen[j.JobID] = struct{}{}
	}

	for i := range jobs {
		c := copyJob(&jobs[i])
		c.Date = domain.CalendarDay(c.Date)
		s.jobs[c.JobID] = &c
		s.jobOrder = append(s.jobOrder, c.JobID)
	}
	return nil
}

func (s *Store) updateJob(jobID string, apply func(*domain.Job)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[jobID]
	if !ok {
		return apperrors.ErrNotFound
	}
	apply(j)
	return nil
}

func (s *Store) AssignWorker(_ context.Context, jobID string, workerID string, priceToWorker decimal.Decimal) error {
	return s.updateJob(jobID, func(j *domain.Job) {
		id := workerID
		j.AssignedWorkerID = &id
		j.PriceToWorker = priceToWorker
		j.Status = domain.JobAssigned
	})
}

func (s *Store) RejectJob(_ context.Context, jobID string) error {
	return s.updateJob(jobID, func(j *domain.Job) {
		j.AssignedWorkerID = nil
		j.PriceToWorker = decimal.Zero
		j.Status = domain.JobRejected
	})
}

func (s *Store) SetCollected(_ context.Context, jobID string, collected bool) error {
	return s.updateJob(jobID, func(j *domain.Job) { j.IsCollected = collected })
}

func (s *Store) SetWorkerPaid(_ context.Context, jobID string, paid bool) error {
	return s.updateJob(jobID, func(j *domain.Job) { j.IsWorkerPaid = paid })
}

func (s *Store) DeleteJob(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[jobID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.jobs, jobID)
	s.compactOrder()
	return nil
}

func (s *Store) DeleteJobGroup(_ context.Context, groupID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, j := range s.jobs {
		if j.GroupID == groupID {
			delete(s.jobs, id)
			removed++
		}
	}
	s.compactOrder()
	return removed, nil
}

func (s *Store) compactOrder() {
	kept := s.jobOrder[:0]
	for _, id := range s.jobOrder {
		if _, ok := s.jobs[id]; ok {
			kept = append(kept, id)
		}
	}
	s.jobOrder = kept
}

// --- professionals ---

func (s *Store) FindProfessionalByID(_ context.Context, professionalID string) (*domain.Professional, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.professionals[professionalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *Store) ListSalariedProfessionals(_ context.Context) ([]domain.Professional, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Professional, 0)
	for _, p := range s.professionals {
		if p.IsSalaried() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

// --- salary payments ---

func (s *Store) FindSalaryPayment(_ context.Context, professionalID, periodKey string, kind domain.PeriodKind) (*domain.SalaryPayment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payments {
		if p.ProfessionalID == professionalID && p.PeriodKey == periodKey && p.PeriodKind == kind {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListSalaryPayments(_ context.Context) ([]domain.SalaryPayment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SalaryPayment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

func (s *Store) FindDuplicateSettlements(_ context.Context) ([]domain.SettlementConflict, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byKey := make(map[settlementKey][]string)
	var order []settlementKey
	for _, p := range s.payments {
		k := settlementKey{p.ProfessionalID, p.PeriodKey, p.PeriodKind}
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], p.PaymentID)
	}

	var conflicts []domain.SettlementConflict
	for _, k := range order {
		if ids := byKey[k]; len(ids) > 1 {
			conflicts = append(conflicts, domain.SettlementConflict{
				ProfessionalID: k.professionalID,
				PeriodKey:      k.periodKey,
				PeriodKind:     k.kind,
				PaymentIDs:     ids,
			})
		}
	}
	return conflicts, nil
}

func (s *Store) SaveSalaryPayment(_ context.Context, payment domain.SalaryPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := settlementKey{payment.ProfessionalID, payment.PeriodKey, payment.PeriodKind}
	if _, exists := s.settlementKeys[k]; exists {
		return fmt.Errorf("%s salary %s for %s: %w", payment.PeriodKind, payment.PeriodKey, payment.ProfessionalID, apperrors.ErrDuplicate)
	}
	payment.PaymentDate = domain.CalendarDay(payment.PaymentDate)
	s.payments = append(s.payments, payment)
	s.settlementKeys[k] = struct{}{}
	return nil
}

// --- transactions ---

func (s *Store) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

func (s *Store) ListTransactionsByMonth(_ context.Context, month time.Month, year int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, t := range s.transactions {
		if domain.InMonth(t.Date, month, year) {
			out = append(out, t)
		}
	}
	return out, nil
}
