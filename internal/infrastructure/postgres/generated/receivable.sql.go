package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createReceivableMovement = `-- name: CreateReceivableMovement :exec
INSERT INTO receivable_movements (id, counterparty_id, kind, operation, concept, amount, operation_date, status, notes, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type CreateReceivableMovementParams struct {
	ID             string             `json:"id"`
	CounterpartyID string             `json:"counterparty_id"`
	Kind           string             `json:"kind"`
	Operation      string             `json:"operation"`
	Concept        string             `json:"concept"`
	Amount         pgtype.Numeric     `json:"amount"`
	OperationDate  pgtype.Timestamptz `json:"operation_date"`
	Status         string             `json:"status"`
	Notes          pgtype.Text        `json:"notes"`
	CreatedBy      string             `json:"created_by"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateReceivableMovement(ctx context.Context, arg CreateReceivableMovementParams) error {
	_, err := q.db.Exec(ctx, createReceivableMovement,
		arg.ID,
		arg.CounterpartyID,
		arg.Kind,
		arg.Operation,
		arg.Concept,
		arg.Amount,
		arg.OperationDate,
		arg.Status,
		arg.Notes,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteReceivableMovement = `-- name: DeleteReceivableMovement :execrows
DELETE FROM receivable_movements WHERE id = $1
`

func (q *Queries) DeleteReceivableMovement(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteReceivableMovement, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getReceivableMovementByID = `-- name: GetReceivableMovementByID :one
SELECT id, counterparty_id, kind, operation, concept, amount, operation_date, status, notes, created_by, created_at, updated_at FROM receivable_movements WHERE id = $1
`

func (q *Queries) GetReceivableMovementByID(ctx context.Context, id string) (ReceivableMovement, error) {
	row := q.db.QueryRow(ctx, getReceivableMovementByID, id)
	var i ReceivableMovement
	err := row.Scan(
		&i.ID,
		&i.CounterpartyID,
		&i.Kind,
		&i.Operation,
		&i.Concept,
		&i.Amount,
		&i.OperationDate,
		&i.Status,
		&i.Notes,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listReceivableMovementsByCounterparty = `-- name: ListReceivableMovementsByCounterparty :many
SELECT id, counterparty_id, kind, operation, concept, amount, operation_date, status, notes, created_by, created_at, updated_at FROM receivable_movements
WHERE counterparty_id = $1
ORDER BY operation_date, created_at
`

func (q *Queries) ListReceivableMovementsByCounterparty(ctx context.Context, counterpartyID string) ([]ReceivableMovement, error) {
	rows, err := q.db.Query(ctx, listReceivableMovementsByCounterparty, counterpartyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReceivableMovement
	for rows.Next() {
		var i ReceivableMovement
		if err := rows.Scan(
			&i.ID,
			&i.CounterpartyID,
			&i.Kind,
			&i.Operation,
			&i.Concept,
			&i.Amount,
			&i.OperationDate,
			&i.Status,
			&i.Notes,
			&i.CreatedBy,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const receivableBalancesByCounterparty = `-- name: ReceivableBalancesByCounterparty :many
SELECT counterparty_id,
       COALESCE(SUM(amount) FILTER (WHERE kind = 'debe'), 0)::numeric AS total_debe,
       COALESCE(SUM(amount) FILTER (WHERE kind = 'haber'), 0)::numeric AS total_haber
FROM receivable_movements
GROUP BY counterparty_id
ORDER BY counterparty_id
`

type ReceivableBalancesByCounterpartyRow struct {
	CounterpartyID string         `json:"counterparty_id"`
	TotalDebe      pgtype.Numeric `json:"total_debe"`
	TotalHaber     pgtype.Numeric `json:"total_haber"`
}

func (q *Queries) ReceivableBalancesByCounterparty(ctx context.Context) ([]ReceivableBalancesByCounterpartyRow, error) {
	rows, err := q.db.Query(ctx, receivableBalancesByCounterparty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReceivableBalancesByCounterpartyRow
	for rows.Next() {
		var i ReceivableBalancesByCounterpartyRow
		if err := rows.Scan(&i.CounterpartyID, &i.TotalDebe, &i.TotalHaber); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateReceivableMovement = `-- name: UpdateReceivableMovement :execrows
UPDATE receivable_movements
SET amount = $2, concept = $3, notes = $4, operation_date = $5, updated_at = $6
WHERE id = $1
`

type UpdateReceivableMovementParams struct {
	ID            string             `json:"id"`
	Amount        pgtype.Numeric     `json:"amount"`
	Concept       string             `json:"concept"`
	Notes         pgtype.Text        `json:"notes"`
	OperationDate pgtype.Timestamptz `json:"operation_date"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateReceivableMovement(ctx context.Context, arg UpdateReceivableMovementParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateReceivableMovement,
		arg.ID,
		arg.Amount,
		arg.Concept,
		arg.Notes,
		arg.OperationDate,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
