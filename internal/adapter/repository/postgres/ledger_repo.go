package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/infrastructure/postgres/generated"
)

// LedgerRepository implements usecase.LedgerRepository, the read side of
// the journal.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// EntryIDsByDateRange returns ids of entries dated inside [from, to]. Nil
// bounds are open.
func (r *LedgerRepository) EntryIDsByDateRange(ctx context.Context, from, to *time.Time) ([]string, error) {
	return r.queries.EntryIDsByDateRange(ctx, generated.EntryIDsByDateRangeParams{
		DateFrom: timePtrToPgTimestamptz(from),
		DateTo:   timePtrToPgTimestamptz(to),
	})
}

// ListMovements returns movements filtered by entry ids, account and side,
// ordered by entry number then insertion order. Empty filters match all.
func (r *LedgerRepository) ListMovements(ctx context.Context, entryIDs []string, accountID string, kind domain.Direction) ([]*domain.Movement, error) {
	if entryIDs == nil {
		entryIDs = []string{}
	}

	rows, err := r.queries.ListLedgerMovements(ctx, generated.ListLedgerMovementsParams{
		EntryIds:  entryIDs,
		AccountID: accountID,
		Kind:      string(kind),
	})
	if err != nil {
		return nil, err
	}

	movements := make([]*domain.Movement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, &domain.Movement{
			ID:          row.ID,
			EntryID:     row.EntryID,
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			EntryNumber: row.EntryNumber,
			EntryDate:   row.EntryDate.Time,
			Debit:       numericToDecimal(row.Debit),
			Credit:      numericToDecimal(row.Credit),
			RateUsed:    numericToDecimalPtr(row.RateUsed),
			CreatedAt:   row.CreatedAt.Time,
		})
	}

	return movements, nil
}

// AccountTotals returns per-account debit and credit sums over all
// movements, optionally restricted to entries dated at or before asOf.
// Accounts without movements do not appear.
func (r *LedgerRepository) AccountTotals(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error) {
	rows, err := r.queries.AccountTotals(ctx, timePtrToPgTimestamptz(asOf))
	if err != nil {
		return nil, err
	}

	balances := make([]*domain.AccountBalance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, &domain.AccountBalance{
			Account: &domain.Account{
				ID:                 row.ID,
				Code:               row.Code,
				Name:               row.Name,
				Currency:           domain.Currency(row.Currency),
				Category:           domain.Category(row.Category),
				RequiresConversion: row.RequiresConversion,
				Postable:           row.Postable,
				Active:             row.Active,
				CreatedAt:          row.CreatedAt.Time,
				UpdatedAt:          row.UpdatedAt.Time,
			},
			TotalDebit:  numericToDecimal(row.TotalDebit),
			TotalCredit: numericToDecimal(row.TotalCredit),
		})
	}

	return balances, nil
}

// LedgerTotals returns the debit and credit sums over the whole book.
func (r *LedgerRepository) LedgerTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	row, err := r.queries.LedgerTotals(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(row.TotalDebit), numericToDecimal(row.TotalCredit), nil
}
