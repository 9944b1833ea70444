package usecase

import (
	"time"

	"github.com/tiendanorte/ledger/internal/domain"
)

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// RateCacheKey is the cache key holding the current exchange rate
	RateCacheKey = "fx:current"

	// RateCacheTTL is how long a fetched or manually entered rate stays current
	RateCacheTTL = 1 * time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// BaseCurrency is the currency every movement is stored in.
const BaseCurrency = domain.CurrencyUSD
