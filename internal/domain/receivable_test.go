package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
)

func receivable(kind domain.ReceivableKind, op domain.ReceivableOperation, amount string) *domain.ReceivableMovement {
	return &domain.ReceivableMovement{
		ID:             "rm-1",
		CounterpartyID: "cp-1",
		Kind:           kind,
		Operation:      op,
		Concept:        "venta mostrador",
		Amount:         decimal.RequireFromString(amount),
	}
}

func TestReceivableOperationKind(t *testing.T) {
	tests := []struct {
		op   domain.ReceivableOperation
		kind domain.ReceivableKind
	}{
		{domain.OperationCharge, domain.KindDebe},
		{domain.OperationPaymentReceived, domain.KindHaber},
		{domain.OperationPaymentMade, domain.KindHaber},
		{domain.OperationDebtTaken, domain.KindHaber},
	}

	for _, tt := range tests {
		if got := tt.op.Kind(); got != tt.kind {
			t.Errorf("%s: expected %s, got %s", tt.op, tt.kind, got)
		}
	}
}

func TestReceivableMovementValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ReceivableMovement)
		wantErr error
	}{
		{name: "valid charge", mutate: func(m *domain.ReceivableMovement) {}},
		{
			name:    "missing counterparty",
			mutate:  func(m *domain.ReceivableMovement) { m.CounterpartyID = "" },
			wantErr: domain.ErrCounterpartyRequired,
		},
		{
			name:    "unknown operation",
			mutate:  func(m *domain.ReceivableMovement) { m.Operation = "refund" },
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name:    "kind mismatch",
			mutate:  func(m *domain.ReceivableMovement) { m.Kind = domain.KindHaber },
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name:    "zero amount",
			mutate:  func(m *domain.ReceivableMovement) { m.Amount = decimal.Zero },
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "empty concept",
			mutate:  func(m *domain.ReceivableMovement) { m.Concept = "" },
			wantErr: domain.ErrConceptRequired,
		},
		{
			name: "over maximum amount",
			mutate: func(m *domain.ReceivableMovement) {
				m.Amount = decimal.RequireFromString("1000000000001")
			},
			wantErr: domain.ErrAmountTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := receivable(domain.KindDebe, domain.OperationCharge, "500")
			tt.mutate(m)
			if err := m.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReceivableBalance(t *testing.T) {
	// N charges of a, M payments-received of b => N*a - M*b.
	movements := []*domain.ReceivableMovement{
		receivable(domain.KindDebe, domain.OperationCharge, "500"),
		receivable(domain.KindDebe, domain.OperationCharge, "500"),
		receivable(domain.KindDebe, domain.OperationCharge, "500"),
		receivable(domain.KindHaber, domain.OperationPaymentReceived, "200"),
		receivable(domain.KindHaber, domain.OperationPaymentReceived, "200"),
	}

	got := domain.ReceivableBalance(movements)
	if !got.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected 1100, got %s", got)
	}

	if !domain.ReceivableBalance(nil).IsZero() {
		t.Fatal("expected zero balance with no movements")
	}
}

func TestComputeStatistics(t *testing.T) {
	balances := []domain.CounterpartyBalance{
		{CounterpartyID: "cp-1", TotalDebe: decimal.NewFromInt(500), TotalHaber: decimal.NewFromInt(200)},
		{CounterpartyID: "cp-2", TotalDebe: decimal.NewFromInt(100), TotalHaber: decimal.NewFromInt(400)},
		{CounterpartyID: "cp-3", TotalDebe: decimal.NewFromInt(250), TotalHaber: decimal.NewFromInt(250)},
	}

	stats := domain.ComputeStatistics(balances)

	if stats.OwesUsCount != 1 || !stats.OwesUsTotal.Equal(decimal.NewFromInt(300)) {
		t.Errorf("owes-us: expected 1/300, got %d/%s", stats.OwesUsCount, stats.OwesUsTotal)
	}
	if stats.WeOweCount != 1 || !stats.WeOweTotal.Equal(decimal.NewFromInt(300)) {
		t.Errorf("we-owe: expected 1/300, got %d/%s", stats.WeOweCount, stats.WeOweTotal)
	}
	if stats.SettledCount != 1 {
		t.Errorf("settled: expected 1, got %d", stats.SettledCount)
	}
}
