package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
)

// ReceivableUseCase manages the per-counterparty debe/haber sub-ledger.
type ReceivableUseCase struct {
	receivableRepo ReceivableRepository
	idGen          IDGenerator
}

// NewReceivableUseCase creates a new ReceivableUseCase.
func NewReceivableUseCase(receivableRepo ReceivableRepository, idGen IDGenerator) *ReceivableUseCase {
	return &ReceivableUseCase{
		receivableRepo: receivableRepo,
		idGen:          idGen,
	}
}

// RegisterMovementInput represents input for registering a receivable
// movement. OperationDate defaults to now when zero.
type RegisterMovementInput struct {
	CounterpartyID string
	Amount         decimal.Decimal
	Concept        string
	Notes          string
	OperationDate  time.Time
	CreatedBy      string
}

// RegisterCharge records that the counterparty owes more (debe).
func (uc *ReceivableUseCase) RegisterCharge(ctx context.Context, input RegisterMovementInput) (*domain.ReceivableMovement, error) {
	return uc.register(ctx, domain.OperationCharge, domain.StatusPending, input)
}

// RegisterPaymentReceived records a payment by the counterparty (haber).
func (uc *ReceivableUseCase) RegisterPaymentReceived(ctx context.Context, input RegisterMovementInput) (*domain.ReceivableMovement, error) {
	return uc.register(ctx, domain.OperationPaymentReceived, domain.StatusPending, input)
}

// RegisterPaymentMade records the business paying out; the movement is
// settled immediately.
func (uc *ReceivableUseCase) RegisterPaymentMade(ctx context.Context, input RegisterMovementInput) (*domain.ReceivableMovement, error) {
	return uc.register(ctx, domain.OperationPaymentMade, domain.StatusSettled, input)
}

// RegisterDebtTaken records the business taking on debt toward the
// counterparty (haber, inverted business meaning).
func (uc *ReceivableUseCase) RegisterDebtTaken(ctx context.Context, input RegisterMovementInput) (*domain.ReceivableMovement, error) {
	return uc.register(ctx, domain.OperationDebtTaken, domain.StatusPending, input)
}

func (uc *ReceivableUseCase) register(
	ctx context.Context,
	operation domain.ReceivableOperation,
	status domain.ReceivableStatus,
	input RegisterMovementInput,
) (*domain.ReceivableMovement, error) {
	now := time.Now().UTC()

	operationDate := input.OperationDate
	if operationDate.IsZero() {
		operationDate = now
	}

	movement := &domain.ReceivableMovement{
		ID:             uc.idGen.Generate(),
		CounterpartyID: input.CounterpartyID,
		Kind:           operation.Kind(),
		Operation:      operation,
		Concept:        input.Concept,
		Amount:         input.Amount,
		OperationDate:  operationDate,
		Status:         status,
		Notes:          input.Notes,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := movement.Validate(); err != nil {
		return nil, err
	}

	if err := uc.receivableRepo.Create(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

// GetBalance returns Σdebe − Σhaber over the counterparty's movements.
func (uc *ReceivableUseCase) GetBalance(ctx context.Context, counterpartyID string) (decimal.Decimal, error) {
	if counterpartyID == "" {
		return decimal.Zero, domain.ErrCounterpartyRequired
	}

	movements, err := uc.receivableRepo.ListByCounterparty(ctx, counterpartyID)
	if err != nil {
		return decimal.Zero, err
	}

	return domain.ReceivableBalance(movements), nil
}

// ListMovements returns the counterparty's movements, newest first.
func (uc *ReceivableUseCase) ListMovements(ctx context.Context, counterpartyID string) ([]*domain.ReceivableMovement, error) {
	if counterpartyID == "" {
		return nil, domain.ErrCounterpartyRequired
	}
	return uc.receivableRepo.ListByCounterparty(ctx, counterpartyID)
}

// GetStatistics partitions all counterparties into owes-us / we-owe /
// settled buckets with absolute sums.
func (uc *ReceivableUseCase) GetStatistics(ctx context.Context) (domain.ReceivableStatistics, error) {
	balances, err := uc.receivableRepo.BalancesByCounterparty(ctx)
	if err != nil {
		return domain.ReceivableStatistics{}, err
	}

	return domain.ComputeStatistics(balances), nil
}

// EditMovementInput carries the only fields a movement edit may touch.
type EditMovementInput struct {
	Amount        *decimal.Decimal
	Concept       *string
	Notes         *string
	OperationDate *time.Time
}

// EditMovement mutates amount, concept, notes and date only. Balances
// derived after the movement's date silently change; there is no
// adjusting-entry pattern here.
func (uc *ReceivableUseCase) EditMovement(ctx context.Context, id string, input EditMovementInput) (*domain.ReceivableMovement, error) {
	movement, err := uc.receivableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		movement.Amount = *input.Amount
	}
	if input.Concept != nil {
		movement.Concept = *input.Concept
	}
	if input.Notes != nil {
		movement.Notes = *input.Notes
	}
	if input.OperationDate != nil {
		movement.OperationDate = *input.OperationDate
	}
	movement.UpdatedAt = time.Now().UTC()

	if err := movement.Validate(); err != nil {
		return nil, err
	}

	if err := uc.receivableRepo.Update(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

// DeleteMovement removes a single receivable movement.
func (uc *ReceivableUseCase) DeleteMovement(ctx context.Context, id string) error {
	if _, err := uc.receivableRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.receivableRepo.Delete(ctx, id)
}
