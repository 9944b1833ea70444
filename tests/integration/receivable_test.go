package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/adapter/repository/postgres"
	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
	"github.com/tiendanorte/ledger/tests/testutil"
)

func newReceivableUseCase(testDB *testutil.TestDB) *usecase.ReceivableUseCase {
	return usecase.NewReceivableUseCase(
		postgres.NewReceivableRepository(testDB.Pool),
		postgres.NewULIDGenerator(),
	)
}

func TestReceivableLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc := newReceivableUseCase(testDB)

	charge, err := uc.RegisterCharge(ctx, usecase.RegisterMovementInput{
		CounterpartyID: "cliente-lopez",
		Amount:         decimal.NewFromInt(500),
		Concept:        "venta de parlantes",
		OperationDate:  time.Now().UTC(),
		CreatedBy:      "maria",
	})
	if err != nil {
		t.Fatalf("failed to register charge: %v", err)
	}
	if charge.Kind != domain.KindDebe {
		t.Fatalf("expected charge on the debe side, got %s", charge.Kind)
	}

	_, err = uc.RegisterPaymentReceived(ctx, usecase.RegisterMovementInput{
		CounterpartyID: "cliente-lopez",
		Amount:         decimal.NewFromInt(200),
		Concept:        "pago parcial",
		OperationDate:  time.Now().UTC(),
		CreatedBy:      "maria",
	})
	if err != nil {
		t.Fatalf("failed to register payment: %v", err)
	}

	balance, err := uc.GetBalance(ctx, "cliente-lopez")
	if err != nil {
		t.Fatalf("failed to get balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected balance 300, got %s", balance)
	}

	// Edit the charge
	newAmount := decimal.NewFromInt(450)
	edited, err := uc.EditMovement(ctx, charge.ID, usecase.EditMovementInput{Amount: &newAmount})
	if err != nil {
		t.Fatalf("failed to edit movement: %v", err)
	}
	if !edited.Amount.Equal(newAmount) {
		t.Fatalf("expected amount 450 after edit, got %s", edited.Amount)
	}
	if edited.Operation != domain.OperationCharge {
		t.Fatalf("operation type must survive edits, got %s", edited.Operation)
	}

	balance, err = uc.GetBalance(ctx, "cliente-lopez")
	if err != nil {
		t.Fatalf("failed to get balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected balance 250 after edit, got %s", balance)
	}

	// Delete the charge
	if err := uc.DeleteMovement(ctx, charge.ID); err != nil {
		t.Fatalf("failed to delete movement: %v", err)
	}
	if _, err := uc.EditMovement(ctx, charge.ID, usecase.EditMovementInput{}); !errors.Is(err, domain.ErrReceivableNotFound) {
		t.Fatalf("expected ErrReceivableNotFound after delete, got %v", err)
	}
}

func TestReceivableStatistics(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	uc := newReceivableUseCase(testDB)

	// cliente-lopez owes us 300
	mustRegister(t, uc.RegisterCharge, ctx, "cliente-lopez", 500)
	mustRegister(t, uc.RegisterPaymentReceived, ctx, "cliente-lopez", 200)

	// we owe prov-garcia 800
	mustRegister(t, uc.RegisterDebtTaken, ctx, "prov-garcia", 800)

	// cliente-diaz is settled
	mustRegister(t, uc.RegisterCharge, ctx, "cliente-diaz", 100)
	mustRegister(t, uc.RegisterPaymentReceived, ctx, "cliente-diaz", 100)

	stats, err := uc.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("failed to get statistics: %v", err)
	}

	if stats.OwesUsCount != 1 || !stats.OwesUsTotal.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected one debtor owing 300, got %+v", stats)
	}
	if stats.WeOweCount != 1 || !stats.WeOweTotal.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected one creditor owed 800, got %+v", stats)
	}
	if stats.SettledCount != 1 {
		t.Fatalf("expected one settled counterparty, got %+v", stats)
	}
}

type registerOp func(ctx context.Context, input usecase.RegisterMovementInput) (*domain.ReceivableMovement, error)

func mustRegister(t *testing.T, op registerOp, ctx context.Context, counterparty string, amount int64) {
	t.Helper()
	_, err := op(ctx, usecase.RegisterMovementInput{
		CounterpartyID: counterparty,
		Amount:         decimal.NewFromInt(amount),
		Concept:        "movimiento de prueba",
		OperationDate:  time.Now().UTC(),
		CreatedBy:      "maria",
	})
	if err != nil {
		t.Fatalf("failed to register movement: %v", err)
	}
}
