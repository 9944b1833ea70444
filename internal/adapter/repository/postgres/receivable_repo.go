package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/infrastructure/postgres/generated"
)

// ReceivableRepository implements usecase.ReceivableRepository.
type ReceivableRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewReceivableRepository creates a new ReceivableRepository.
func NewReceivableRepository(pool *pgxpool.Pool) *ReceivableRepository {
	return &ReceivableRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a receivable movement.
func (r *ReceivableRepository) Create(ctx context.Context, movement *domain.ReceivableMovement) error {
	return r.queries.CreateReceivableMovement(ctx, generated.CreateReceivableMovementParams{
		ID:             movement.ID,
		CounterpartyID: movement.CounterpartyID,
		Kind:           string(movement.Kind),
		Operation:      string(movement.Operation),
		Concept:        movement.Concept,
		Amount:         decimalToNumeric(movement.Amount),
		OperationDate:  timeToPgTimestamptz(movement.OperationDate),
		Status:         string(movement.Status),
		Notes:          stringToPgText(movement.Notes),
		CreatedBy:      movement.CreatedBy,
		CreatedAt:      timeToPgTimestamptz(movement.CreatedAt),
		UpdatedAt:      timeToPgTimestamptz(movement.UpdatedAt),
	})
}

// GetByID retrieves a receivable movement by ID.
func (r *ReceivableRepository) GetByID(ctx context.Context, id string) (*domain.ReceivableMovement, error) {
	row, err := r.queries.GetReceivableMovementByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReceivableNotFound
		}

		return nil, err
	}

	return rowToReceivable(row), nil
}

// Update rewrites the editable fields of a receivable movement.
func (r *ReceivableRepository) Update(ctx context.Context, movement *domain.ReceivableMovement) error {
	affected, err := r.queries.UpdateReceivableMovement(ctx, generated.UpdateReceivableMovementParams{
		ID:            movement.ID,
		Amount:        decimalToNumeric(movement.Amount),
		Concept:       movement.Concept,
		Notes:         stringToPgText(movement.Notes),
		OperationDate: timeToPgTimestamptz(movement.OperationDate),
		UpdatedAt:     timeToPgTimestamptz(movement.UpdatedAt),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReceivableNotFound
	}

	return nil
}

// Delete removes a receivable movement.
func (r *ReceivableRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteReceivableMovement(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrReceivableNotFound
	}

	return nil
}

// ListByCounterparty returns all movements of one counterparty in
// chronological order.
func (r *ReceivableRepository) ListByCounterparty(ctx context.Context, counterpartyID string) ([]*domain.ReceivableMovement, error) {
	rows, err := r.queries.ListReceivableMovementsByCounterparty(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}

	movements := make([]*domain.ReceivableMovement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, rowToReceivable(row))
	}

	return movements, nil
}

// BalancesByCounterparty returns debe/haber totals per counterparty.
func (r *ReceivableRepository) BalancesByCounterparty(ctx context.Context) ([]domain.CounterpartyBalance, error) {
	rows, err := r.queries.ReceivableBalancesByCounterparty(ctx)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.CounterpartyBalance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, domain.CounterpartyBalance{
			CounterpartyID: row.CounterpartyID,
			TotalDebe:      numericToDecimal(row.TotalDebe),
			TotalHaber:     numericToDecimal(row.TotalHaber),
		})
	}

	return balances, nil
}

func rowToReceivable(row generated.ReceivableMovement) *domain.ReceivableMovement {
	return &domain.ReceivableMovement{
		ID:             row.ID,
		CounterpartyID: row.CounterpartyID,
		Kind:           domain.ReceivableKind(row.Kind),
		Operation:      domain.ReceivableOperation(row.Operation),
		Concept:        row.Concept,
		Amount:         numericToDecimal(row.Amount),
		OperationDate:  row.OperationDate.Time,
		Status:         domain.ReceivableStatus(row.Status),
		Notes:          row.Notes.String,
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func stringToPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}
