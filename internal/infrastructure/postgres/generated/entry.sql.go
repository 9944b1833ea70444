package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createJournalEntry = `-- name: CreateJournalEntry :one
INSERT INTO journal_entries (id, number, entry_date, description, created_by, total_debit, total_credit, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, number, entry_date, description, created_by, total_debit, total_credit, created_at
`

type CreateJournalEntryParams struct {
	ID          string             `json:"id"`
	Number      int64              `json:"number"`
	EntryDate   pgtype.Timestamptz `json:"entry_date"`
	Description string             `json:"description"`
	CreatedBy   string             `json:"created_by"`
	TotalDebit  pgtype.Numeric     `json:"total_debit"`
	TotalCredit pgtype.Numeric     `json:"total_credit"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateJournalEntry(ctx context.Context, arg CreateJournalEntryParams) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, createJournalEntry,
		arg.ID,
		arg.Number,
		arg.EntryDate,
		arg.Description,
		arg.CreatedBy,
		arg.TotalDebit,
		arg.TotalCredit,
		arg.CreatedAt,
	)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.EntryDate,
		&i.Description,
		&i.CreatedBy,
		&i.TotalDebit,
		&i.TotalCredit,
		&i.CreatedAt,
	)
	return i, err
}

const createMovement = `-- name: CreateMovement :exec
INSERT INTO movements (id, entry_id, account_id, debit, credit, rate_used, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateMovementParams struct {
	ID        string             `json:"id"`
	EntryID   string             `json:"entry_id"`
	AccountID string             `json:"account_id"`
	Debit     pgtype.Numeric     `json:"debit"`
	Credit    pgtype.Numeric     `json:"credit"`
	RateUsed  pgtype.Numeric     `json:"rate_used"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateMovement(ctx context.Context, arg CreateMovementParams) error {
	_, err := q.db.Exec(ctx, createMovement,
		arg.ID,
		arg.EntryID,
		arg.AccountID,
		arg.Debit,
		arg.Credit,
		arg.RateUsed,
		arg.CreatedAt,
	)
	return err
}

const deleteJournalEntry = `-- name: DeleteJournalEntry :execrows
DELETE FROM journal_entries WHERE id = $1
`

func (q *Queries) DeleteJournalEntry(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteJournalEntry, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getJournalEntryByID = `-- name: GetJournalEntryByID :one
SELECT id, number, entry_date, description, created_by, total_debit, total_credit, created_at FROM journal_entries WHERE id = $1
`

func (q *Queries) GetJournalEntryByID(ctx context.Context, id string) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, getJournalEntryByID, id)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.EntryDate,
		&i.Description,
		&i.CreatedBy,
		&i.TotalDebit,
		&i.TotalCredit,
		&i.CreatedAt,
	)
	return i, err
}

const listJournalEntries = `-- name: ListJournalEntries :many
SELECT id, number, entry_date, description, created_by, total_debit, total_credit, created_at FROM journal_entries
ORDER BY number DESC
LIMIT $1 OFFSET $2
`

type ListJournalEntriesParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListJournalEntries(ctx context.Context, arg ListJournalEntriesParams) ([]JournalEntry, error) {
	rows, err := q.db.Query(ctx, listJournalEntries, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JournalEntry
	for rows.Next() {
		var i JournalEntry
		if err := rows.Scan(
			&i.ID,
			&i.Number,
			&i.EntryDate,
			&i.Description,
			&i.CreatedBy,
			&i.TotalDebit,
			&i.TotalCredit,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const maxEntryNumber = `-- name: MaxEntryNumber :one
SELECT COALESCE(MAX(number), 0)::bigint FROM journal_entries
`

func (q *Queries) MaxEntryNumber(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, maxEntryNumber)
	var column_1 int64
	err := row.Scan(&column_1)
	return column_1, err
}

const getMovementsByEntry = `-- name: GetMovementsByEntry :many
SELECT m.id, m.entry_id, m.account_id, m.debit, m.credit, m.rate_used, m.created_at, a.code AS account_code, a.name AS account_name
FROM movements m
JOIN accounts a ON a.id = m.account_id
WHERE m.entry_id = $1
ORDER BY m.created_at, m.id
`

type GetMovementsByEntryRow struct {
	ID          string             `json:"id"`
	EntryID     string             `json:"entry_id"`
	AccountID   string             `json:"account_id"`
	Debit       pgtype.Numeric     `json:"debit"`
	Credit      pgtype.Numeric     `json:"credit"`
	RateUsed    pgtype.Numeric     `json:"rate_used"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	AccountCode string             `json:"account_code"`
	AccountName string             `json:"account_name"`
}

func (q *Queries) GetMovementsByEntry(ctx context.Context, entryID string) ([]GetMovementsByEntryRow, error) {
	rows, err := q.db.Query(ctx, getMovementsByEntry, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetMovementsByEntryRow
	for rows.Next() {
		var i GetMovementsByEntryRow
		if err := rows.Scan(
			&i.ID,
			&i.EntryID,
			&i.AccountID,
			&i.Debit,
			&i.Credit,
			&i.RateUsed,
			&i.CreatedAt,
			&i.AccountCode,
			&i.AccountName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getMovementsByEntryIDs = `-- name: GetMovementsByEntryIDs :many
SELECT m.id, m.entry_id, m.account_id, m.debit, m.credit, m.rate_used, m.created_at, a.code AS account_code, a.name AS account_name
FROM movements m
JOIN accounts a ON a.id = m.account_id
WHERE m.entry_id = ANY($1::text[])
ORDER BY m.entry_id, m.created_at, m.id
`

type GetMovementsByEntryIDsRow struct {
	ID          string             `json:"id"`
	EntryID     string             `json:"entry_id"`
	AccountID   string             `json:"account_id"`
	Debit       pgtype.Numeric     `json:"debit"`
	Credit      pgtype.Numeric     `json:"credit"`
	RateUsed    pgtype.Numeric     `json:"rate_used"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	AccountCode string             `json:"account_code"`
	AccountName string             `json:"account_name"`
}

func (q *Queries) GetMovementsByEntryIDs(ctx context.Context, entryIds []string) ([]GetMovementsByEntryIDsRow, error) {
	rows, err := q.db.Query(ctx, getMovementsByEntryIDs, entryIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetMovementsByEntryIDsRow
	for rows.Next() {
		var i GetMovementsByEntryIDsRow
		if err := rows.Scan(
			&i.ID,
			&i.EntryID,
			&i.AccountID,
			&i.Debit,
			&i.Credit,
			&i.RateUsed,
			&i.CreatedAt,
			&i.AccountCode,
			&i.AccountName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
