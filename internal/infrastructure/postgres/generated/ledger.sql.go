package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const accountTotals = `-- name: AccountTotals :many
SELECT a.id, a.code, a.name, a.currency, a.category, a.requires_conversion, a.postable, a.active, a.created_at, a.updated_at,
       COALESCE(SUM(m.debit), 0)::numeric AS total_debit,
       COALESCE(SUM(m.credit), 0)::numeric AS total_credit
FROM accounts a
JOIN movements m ON m.account_id = a.id
JOIN journal_entries e ON e.id = m.entry_id
WHERE $1::timestamptz IS NULL OR e.entry_date <= $1
GROUP BY a.id
ORDER BY a.code
`

type AccountTotalsRow struct {
	ID                 string             `json:"id"`
	Code               string             `json:"code"`
	Name               string             `json:"name"`
	Currency           string             `json:"currency"`
	Category           string             `json:"category"`
	RequiresConversion bool               `json:"requires_conversion"`
	Postable           bool               `json:"postable"`
	Active             bool               `json:"active"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
	TotalDebit         pgtype.Numeric     `json:"total_debit"`
	TotalCredit        pgtype.Numeric     `json:"total_credit"`
}

func (q *Queries) AccountTotals(ctx context.Context, asOf pgtype.Timestamptz) ([]AccountTotalsRow, error) {
	rows, err := q.db.Query(ctx, accountTotals, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AccountTotalsRow
	for rows.Next() {
		var i AccountTotalsRow
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Name,
			&i.Currency,
			&i.Category,
			&i.RequiresConversion,
			&i.Postable,
			&i.Active,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.TotalDebit,
			&i.TotalCredit,
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

const entryIDsByDateRange = `-- name: EntryIDsByDateRange :many
SELECT id FROM journal_entries
WHERE ($1::timestamptz IS NULL OR entry_date >= $1)
  AND ($2::timestamptz IS NULL OR entry_date <= $2)
ORDER BY number
`

type EntryIDsByDateRangeParams struct {
	DateFrom pgtype.Timestamptz `json:"date_from"`
	DateTo   pgtype.Timestamptz `json:"date_to"`
}

func (q *Queries) EntryIDsByDateRange(ctx context.Context, arg EntryIDsByDateRangeParams) ([]string, error) {
	rows, err := q.db.Query(ctx, entryIDsByDateRange, arg.DateFrom, arg.DateTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const ledgerTotals = `-- name: LedgerTotals :one
SELECT COALESCE(SUM(debit), 0)::numeric AS total_debit,
       COALESCE(SUM(credit), 0)::numeric AS total_credit
FROM movements
`

type LedgerTotalsRow struct {
	TotalDebit  pgtype.Numeric `json:"total_debit"`
	TotalCredit pgtype.Numeric `json:"total_credit"`
}

func (q *Queries) LedgerTotals(ctx context.Context) (LedgerTotalsRow, error) {
	row := q.db.QueryRow(ctx, ledgerTotals)
	var i LedgerTotalsRow
	err := row.Scan(&i.TotalDebit, &i.TotalCredit)
	return i, err
}

const listLedgerMovements = `-- name: ListLedgerMovements :many
SELECT m.id, m.entry_id, m.account_id, m.debit, m.credit, m.rate_used, m.created_at,
       e.number AS entry_number, e.entry_date,
       a.code AS account_code, a.name AS account_name
FROM movements m
JOIN journal_entries e ON e.id = m.entry_id
JOIN accounts a ON a.id = m.account_id
WHERE (cardinality($1::text[]) = 0 OR m.entry_id = ANY($1::text[]))
  AND ($2::text = '' OR m.account_id = $2)
  AND ($3::text = '' OR ($3 = 'debit' AND m.debit > 0) OR ($3 = 'credit' AND m.credit > 0))
ORDER BY e.number, m.created_at, m.id
`

type ListLedgerMovementsParams struct {
	EntryIds  []string `json:"entry_ids"`
	AccountID string   `json:"account_id"`
	Kind      string   `json:"kind"`
}

type ListLedgerMovementsRow struct {
	ID          string             `json:"id"`
	EntryID     string             `json:"entry_id"`
	AccountID   string             `json:"account_id"`
	Debit       pgtype.Numeric     `json:"debit"`
	Credit      pgtype.Numeric     `json:"credit"`
	RateUsed    pgtype.Numeric     `json:"rate_used"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	EntryNumber int64              `json:"entry_number"`
	EntryDate   pgtype.Timestamptz `json:"entry_date"`
	AccountCode string             `json:"account_code"`
	AccountName string             `json:"account_name"`
}

func (q *Queries) ListLedgerMovements(ctx context.Context, arg ListLedgerMovementsParams) ([]ListLedgerMovementsRow, error) {
	rows, err := q.db.Query(ctx, listLedgerMovements, arg.EntryIds, arg.AccountID, arg.Kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListLedgerMovementsRow
	for rows.Next() {
		var i ListLedgerMovementsRow
		if err := rows.Scan(
			&i.ID,
			&i.EntryID,
			&i.AccountID,
			&i.Debit,
			&i.Credit,
			&i.RateUsed,
			&i.CreatedAt,
			&i.EntryNumber,
			&i.EntryDate,
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
