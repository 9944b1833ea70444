package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
)

// RateSourceManual marks a manually entered rate.
const RateSourceManual = "manual"

// RateUseCase supplies the current USD-equivalent rate used when posting to
// foreign-currency accounts. Rates come from a manual entry or an external
// source and are cached; the caller still supplies the rate actually applied
// at posting time.
type RateUseCase struct {
	source RateSource
	cache  Cache
	now    func() time.Time
}

// NewRateUseCase creates a new RateUseCase. source may be nil when only
// manual rates are in use.
func NewRateUseCase(source RateSource, cache Cache) *RateUseCase {
	return &RateUseCase{
		source: source,
		cache:  cache,
		now:    time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (uc *RateUseCase) WithNow(now func() time.Time) {
	if now != nil {
		uc.now = now
	}
}

type cachedRate struct {
	Value     decimal.Decimal `json:"value"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
}

// CurrentRate returns the cached rate if one is current, otherwise fetches
// from the configured source, validates it against the band and caches it.
func (uc *RateUseCase) CurrentRate(ctx context.Context) (domain.Rate, error) {
	if cached, err := uc.cache.Get(ctx, RateCacheKey); err == nil && cached != "" {
		var cr cachedRate
		if err := json.Unmarshal([]byte(cached), &cr); err == nil {
			return domain.Rate{Value: cr.Value, Source: cr.Source, Timestamp: cr.Timestamp}, nil
		}
	}

	if uc.source == nil {
		return domain.Rate{}, domain.ErrRateUnavailable
	}

	rate, err := uc.source.Fetch(ctx)
	if err != nil {
		return domain.Rate{}, err
	}

	if err := rate.Validate(); err != nil {
		return domain.Rate{}, err
	}

	if rate.Timestamp.IsZero() {
		rate.Timestamp = uc.now().UTC()
	}

	uc.store(ctx, rate)

	return rate, nil
}

// SetManualRate validates and caches a manually entered rate.
func (uc *RateUseCase) SetManualRate(ctx context.Context, value decimal.Decimal) (domain.Rate, error) {
	if err := domain.ValidateRate(value); err != nil {
		return domain.Rate{}, err
	}

	rate := domain.Rate{
		Value:     value,
		Source:    RateSourceManual,
		Timestamp: uc.now().UTC(),
	}

	uc.store(ctx, rate)

	return rate, nil
}

// Convert converts a foreign-currency amount at the given rate.
func (uc *RateUseCase) Convert(amountForeign, rate decimal.Decimal) (decimal.Decimal, error) {
	return domain.Convert(amountForeign, rate)
}

func (uc *RateUseCase) store(ctx context.Context, rate domain.Rate) {
	payload, err := json.Marshal(cachedRate{
		Value:     rate.Value,
		Source:    rate.Source,
		Timestamp: rate.Timestamp,
	})
	if err != nil {
		return
	}

	// A failed cache write is not fatal; the next call fetches again.
	_ = uc.cache.Set(ctx, RateCacheKey, string(payload), RateCacheTTL)
}
