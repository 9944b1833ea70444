package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc    func(ctx context.Context, account *domain.Account) error
	GetByIDFunc   func(ctx context.Context, id string) (*domain.Account, error)
	GetByCodeFunc func(ctx context.Context, code string) (*domain.Account, error)
	GetByIDsFunc  func(ctx context.Context, ids []string) ([]*domain.Account, error)
	ListFunc      func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	SetActiveFunc func(ctx context.Context, id string, active bool, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.Code == code {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			out = append(out, acc)
		}
	}
	return out, nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Account
	for _, acc := range m.accounts {
		out = append(out, acc)
	}
	return out, nil
}

func (m *MockAccountRepository) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Active = active
	acc.UpdatedAt = updatedAt
	return nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.JournalEntry

	CreateFunc     func(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error
	NextNumberFunc func(ctx context.Context, tx usecase.Transaction) (int64, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.JournalEntry, error)
	DeleteFunc     func(ctx context.Context, tx usecase.Transaction, id string) error
	ListFunc       func(ctx context.Context, limit, offset int, withMovements bool) ([]*domain.JournalEntry, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.JournalEntry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) NextNumber(ctx context.Context, tx usecase.Transaction) (int64, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, tx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var max int64
	for _, e := range m.entries {
		if e.Number > max {
			max = e.Number
		}
	}
	return max + 1, nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) List(ctx context.Context, limit, offset int, withMovements bool) ([]*domain.JournalEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset, withMovements)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.JournalEntry
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	EntryIDsByDateRangeFunc func(ctx context.Context, from, to *time.Time) ([]string, error)
	ListMovementsFunc       func(ctx context.Context, entryIDs []string, accountID string, kind domain.Direction) ([]*domain.Movement, error)
	AccountTotalsFunc       func(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error)
	LedgerTotalsFunc        func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) EntryIDsByDateRange(ctx context.Context, from, to *time.Time) ([]string, error) {
	if m.EntryIDsByDateRangeFunc != nil {
		return m.EntryIDsByDateRangeFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockLedgerRepository) ListMovements(ctx context.Context, entryIDs []string, accountID string, kind domain.Direction) ([]*domain.Movement, error) {
	if m.ListMovementsFunc != nil {
		return m.ListMovementsFunc(ctx, entryIDs, accountID, kind)
	}
	return nil, nil
}

func (m *MockLedgerRepository) AccountTotals(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error) {
	if m.AccountTotalsFunc != nil {
		return m.AccountTotalsFunc(ctx, asOf)
	}
	return nil, nil
}

func (m *MockLedgerRepository) LedgerTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	if m.LedgerTotalsFunc != nil {
		return m.LedgerTotalsFunc(ctx)
	}
	return decimal.Zero, decimal.Zero, nil
}

// MockReceivableRepository is a mock implementation of ReceivableRepository.
type MockReceivableRepository struct {
	mu        sync.RWMutex
	movements map[string]*domain.ReceivableMovement

	CreateFunc                 func(ctx context.Context, movement *domain.ReceivableMovement) error
	GetByIDFunc                func(ctx context.Context, id string) (*domain.ReceivableMovement, error)
	UpdateFunc                 func(ctx context.Context, movement *domain.ReceivableMovement) error
	DeleteFunc                 func(ctx context.Context, id string) error
	ListByCounterpartyFunc     func(ctx context.Context, counterpartyID string) ([]*domain.ReceivableMovement, error)
	BalancesByCounterpartyFunc func(ctx context.Context) ([]domain.CounterpartyBalance, error)
}

func NewMockReceivableRepository() *MockReceivableRepository {
	return &MockReceivableRepository{
		movements: make(map[string]*domain.ReceivableMovement),
	}
}

func (m *MockReceivableRepository) Create(ctx context.Context, movement *domain.ReceivableMovement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements[movement.ID] = movement
	return nil
}

func (m *MockReceivableRepository) GetByID(ctx context.Context, id string) (*domain.ReceivableMovement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mv, ok := m.movements[id]; ok {
		return mv, nil
	}
	return nil, domain.ErrReceivableNotFound
}

func (m *MockReceivableRepository) Update(ctx context.Context, movement *domain.ReceivableMovement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, movement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.movements[movement.ID]; !ok {
		return domain.ErrReceivableNotFound
	}
	m.movements[movement.ID] = movement
	return nil
}

func (m *MockReceivableRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.movements[id]; !ok {
		return domain.ErrReceivableNotFound
	}
	delete(m.movements, id)
	return nil
}

func (m *MockReceivableRepository) ListByCounterparty(ctx context.Context, counterpartyID string) ([]*domain.ReceivableMovement, error) {
	if m.ListByCounterpartyFunc != nil {
		return m.ListByCounterpartyFunc(ctx, counterpartyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.ReceivableMovement
	for _, mv := range m.movements {
		if mv.CounterpartyID == counterpartyID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *MockReceivableRepository) BalancesByCounterparty(ctx context.Context) ([]domain.CounterpartyBalance, error) {
	if m.BalancesByCounterpartyFunc != nil {
		return m.BalancesByCounterpartyFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[string]*domain.CounterpartyBalance)
	var order []string
	for _, mv := range m.movements {
		b, ok := totals[mv.CounterpartyID]
		if !ok {
			b = &domain.CounterpartyBalance{CounterpartyID: mv.CounterpartyID}
			totals[mv.CounterpartyID] = b
			order = append(order, mv.CounterpartyID)
		}
		if mv.Kind == domain.KindDebe {
			b.TotalDebe = b.TotalDebe.Add(mv.Amount)
		} else {
			b.TotalHaber = b.TotalHaber.Add(mv.Amount)
		}
	}
	out := make([]domain.CounterpartyBalance, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	return out, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + string(rune('a'+m.counter%26)) + string(rune('0'+m.counter%10))
}

// MockRetrier runs the operation once; no backoff in tests.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		values: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
