package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/infrastructure/postgres/generated"
	"github.com/tiendanorte/ledger/internal/usecase"
)

// entryNumberLockID keys the advisory lock that serializes entry numbering
// within the posting transaction.
const entryNumberLockID = 874230911

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// NextNumber returns the next sequential entry number. It takes a
// transaction-scoped advisory lock first, so concurrent postings line up
// rather than both reading the same maximum. A UNIQUE constraint on the
// number column backstops the lock.
func (r *EntryRepository) NextNumber(ctx context.Context, tx usecase.Transaction) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	if _, err := pgxTx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", entryNumberLockID); err != nil {
		return 0, err
	}

	max, err := generated.New(pgxTx).MaxEntryNumber(ctx)
	if err != nil {
		return 0, err
	}

	return max + 1, nil
}

// Create persists the entry header and all of its movements inside the
// given transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateJournalEntry(ctx, generated.CreateJournalEntryParams{
		ID:          entry.ID,
		Number:      entry.Number,
		EntryDate:   timeToPgTimestamptz(entry.Date),
		Description: entry.Description,
		CreatedBy:   entry.CreatedBy,
		TotalDebit:  decimalToNumeric(entry.TotalDebit),
		TotalCredit: decimalToNumeric(entry.TotalCredit),
		CreatedAt:   timeToPgTimestamptz(entry.CreatedAt),
	})
	if err != nil {
		return err
	}

	for _, m := range entry.Movements {
		err := queries.CreateMovement(ctx, generated.CreateMovementParams{
			ID:        m.ID,
			EntryID:   m.EntryID,
			AccountID: m.AccountID,
			Debit:     decimalToNumeric(m.Debit),
			Credit:    decimalToNumeric(m.Credit),
			RateUsed:  decimalPtrToNumeric(m.RateUsed),
			CreatedAt: timeToPgTimestamptz(m.CreatedAt),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves an entry with its movements.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row, err := r.queries.GetJournalEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	entry := rowToEntry(row)

	movements, err := r.queries.GetMovementsByEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Movements = make([]*domain.Movement, 0, len(movements))
	for _, m := range movements {
		entry.Movements = append(entry.Movements, &domain.Movement{
			ID:          m.ID,
			EntryID:     m.EntryID,
			AccountID:   m.AccountID,
			AccountCode: m.AccountCode,
			AccountName: m.AccountName,
			EntryNumber: entry.Number,
			EntryDate:   entry.Date,
			Debit:       numericToDecimal(m.Debit),
			Credit:      numericToDecimal(m.Credit),
			RateUsed:    numericToDecimalPtr(m.RateUsed),
			CreatedAt:   m.CreatedAt.Time,
		})
	}

	return entry, nil
}

// Delete removes an entry. Movements go with it via ON DELETE CASCADE.
func (r *EntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	affected, err := generated.New(pgxTx).DeleteJournalEntry(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// List lists entries ordered by number descending, most recent first.
func (r *EntryRepository) List(ctx context.Context, limit, offset int, withMovements bool) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.ListJournalEntries(ctx, generated.ListJournalEntriesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	index := make(map[string]*domain.JournalEntry, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		entry := rowToEntry(row)
		entries = append(entries, entry)
		index[entry.ID] = entry
		ids = append(ids, entry.ID)
	}

	if !withMovements || len(ids) == 0 {
		return entries, nil
	}

	movements, err := r.queries.GetMovementsByEntryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, m := range movements {
		entry := index[m.EntryID]
		if entry == nil {
			continue
		}
		entry.Movements = append(entry.Movements, &domain.Movement{
			ID:          m.ID,
			EntryID:     m.EntryID,
			AccountID:   m.AccountID,
			AccountCode: m.AccountCode,
			AccountName: m.AccountName,
			EntryNumber: entry.Number,
			EntryDate:   entry.Date,
			Debit:       numericToDecimal(m.Debit),
			Credit:      numericToDecimal(m.Credit),
			RateUsed:    numericToDecimalPtr(m.RateUsed),
			CreatedAt:   m.CreatedAt.Time,
		})
	}

	return entries, nil
}

func rowToEntry(row generated.JournalEntry) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:          row.ID,
		Number:      row.Number,
		Date:        row.EntryDate.Time,
		Description: row.Description,
		CreatedBy:   row.CreatedBy,
		TotalDebit:  numericToDecimal(row.TotalDebit),
		TotalCredit: numericToDecimal(row.TotalCredit),
		CreatedAt:   row.CreatedAt.Time,
	}
}
