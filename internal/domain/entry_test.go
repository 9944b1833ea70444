package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
)

func movement(debit, credit string) *domain.Movement {
	return &domain.Movement{
		ID:        "mov-1",
		AccountID: "acc-1",
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestMovementValidate(t *testing.T) {
	tests := []struct {
		name    string
		debit   string
		credit  string
		wantErr error
	}{
		{name: "debit only", debit: "100", credit: "0"},
		{name: "credit only", debit: "0", credit: "100"},
		{name: "both set", debit: "100", credit: "100", wantErr: domain.ErrMovementAmbiguous},
		{name: "neither set", debit: "0", credit: "0", wantErr: domain.ErrMovementAmbiguous},
		{name: "negative debit", debit: "-5", credit: "0", wantErr: domain.ErrMovementAmbiguous},
		{name: "negative credit", debit: "0", credit: "-5", wantErr: domain.ErrMovementAmbiguous},
		{name: "over maximum amount", debit: "1000000000001", credit: "0", wantErr: domain.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := movement(tt.debit, tt.credit).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMovementDirection(t *testing.T) {
	if got := movement("100", "0").Direction(); got != domain.DirectionDebit {
		t.Errorf("expected debit, got %s", got)
	}
	if got := movement("0", "100").Direction(); got != domain.DirectionCredit {
		t.Errorf("expected credit, got %s", got)
	}
	if got := movement("100", "0").Amount(); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100, got %s", got)
	}
}

func TestJournalEntryValidate(t *testing.T) {
	tests := []struct {
		name      string
		movements []*domain.Movement
		wantErr   error
	}{
		{
			name: "balanced entry",
			movements: []*domain.Movement{
				movement("1000", "0"),
				movement("0", "1000"),
			},
		},
		{
			name: "balanced within tolerance",
			movements: []*domain.Movement{
				movement("100.005", "0"),
				movement("0", "100"),
			},
		},
		{
			name: "unbalanced beyond tolerance",
			movements: []*domain.Movement{
				movement("1000", "0"),
				movement("0", "900"),
			},
			wantErr: domain.ErrUnbalancedEntry,
		},
		{
			name: "too few movements",
			movements: []*domain.Movement{
				movement("1000", "0"),
			},
			wantErr: domain.ErrTooFewMovements,
		},
		{
			name: "malformed movement",
			movements: []*domain.Movement{
				movement("1000", "1000"),
				movement("0", "0"),
			},
			wantErr: domain.ErrMovementAmbiguous,
		},
		{
			name: "multi-leg balanced",
			movements: []*domain.Movement{
				movement("600", "0"),
				movement("400", "0"),
				movement("0", "1000"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &domain.JournalEntry{
				Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				Movements: tt.movements,
			}
			if err := entry.Validate(); err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNetBalance(t *testing.T) {
	debit := decimal.NewFromInt(300)
	credit := decimal.NewFromInt(100)

	if got := domain.NetBalance(debit, credit, domain.DirectionDebit); !got.Equal(decimal.NewFromInt(200)) {
		t.Errorf("debit-normal: expected 200, got %s", got)
	}
	if got := domain.NetBalance(debit, credit, domain.DirectionCredit); !got.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("credit-normal: expected -200, got %s", got)
	}
}
