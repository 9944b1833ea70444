package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error
}

// EntryRepository defines data access for journal entries and their
// movements. Create persists the header and all movements inside tx.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.JournalEntry) error
	// NextNumber returns max(number)+1 under a lock held for the duration
	// of tx, so concurrent posters cannot be handed the same number.
	NextNumber(ctx context.Context, tx Transaction) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	Delete(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, limit, offset int, withMovements bool) ([]*domain.JournalEntry, error)
}

// LedgerRepository defines the read side over the movement store.
type LedgerRepository interface {
	EntryIDsByDateRange(ctx context.Context, from, to *time.Time) ([]string, error)
	ListMovements(ctx context.Context, entryIDs []string, accountID string, kind domain.Direction) ([]*domain.Movement, error)
	AccountTotals(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error)
	LedgerTotals(ctx context.Context) (totalDebit, totalCredit decimal.Decimal, err error)
}

// ReceivableRepository defines data access for the receivable sub-ledger.
type ReceivableRepository interface {
	Create(ctx context.Context, movement *domain.ReceivableMovement) error
	GetByID(ctx context.Context, id string) (*domain.ReceivableMovement, error)
	Update(ctx context.Context, movement *domain.ReceivableMovement) error
	Delete(ctx context.Context, id string) error
	ListByCounterparty(ctx context.Context, counterpartyID string) ([]*domain.ReceivableMovement, error)
	BalancesByCounterparty(ctx context.Context) ([]domain.CounterpartyBalance, error)
}

// RateSource fetches a current USD-equivalent rate from an external feed.
type RateSource interface {
	Fetch(ctx context.Context) (domain.Rate, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on retryable storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
