package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
	"github.com/tiendanorte/ledger/internal/usecase/mocks"
)

func TestLedgerUseCase_ListMovements_GroupsByEntry(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	ledgerRepo.ListMovementsFunc = func(ctx context.Context, entryIDs []string, accountID string, kind domain.Direction) ([]*domain.Movement, error) {
		return []*domain.Movement{
			{ID: "m1", EntryID: "e1", EntryNumber: 7, EntryDate: date, Debit: decimal.NewFromInt(100)},
			{ID: "m2", EntryID: "e1", EntryNumber: 7, EntryDate: date, Credit: decimal.NewFromInt(100)},
			{ID: "m3", EntryID: "e2", EntryNumber: 8, EntryDate: date, Debit: decimal.NewFromInt(50)},
			{ID: "m4", EntryID: "e2", EntryNumber: 8, EntryDate: date, Credit: decimal.NewFromInt(50)},
		}, nil
	}

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	groups, err := uc.ListMovements(context.Background(), usecase.ListMovementsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].EntryID != "e1" || groups[0].Number != 7 {
		t.Errorf("unexpected first group: %+v", groups[0])
	}
	if len(groups[0].Movements) != 2 || len(groups[1].Movements) != 2 {
		t.Error("expected 2 movements per group")
	}
}

func TestLedgerUseCase_ListMovements_DateFilterWithNoEntries(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	ledgerRepo.EntryIDsByDateRangeFunc = func(ctx context.Context, from, to *time.Time) ([]string, error) {
		return nil, nil
	}
	listed := false
	ledgerRepo.ListMovementsFunc = func(ctx context.Context, entryIDs []string, accountID string, kind domain.Direction) ([]*domain.Movement, error) {
		listed = true
		return nil, nil
	}

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	groups, err := uc.ListMovements(context.Background(), usecase.ListMovementsInput{DateFrom: &from})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected empty result, got %d groups", len(groups))
	}
	if listed {
		t.Error("movement listing must be skipped when no entries match the dates")
	}
}

func TestLedgerUseCase_ListMovements_PassesFilters(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	ledgerRepo.EntryIDsByDateRangeFunc = func(ctx context.Context, from, to *time.Time) ([]string, error) {
		return []string{"e1", "e2"}, nil
	}
	var gotIDs []string
	var gotAccount string
	var gotKind domain.Direction
	ledgerRepo.ListMovementsFunc = func(ctx context.Context, entryIDs []string, accountID string, kind domain.Direction) ([]*domain.Movement, error) {
		gotIDs, gotAccount, gotKind = entryIDs, accountID, kind
		return nil, nil
	}

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	_, err := uc.ListMovements(context.Background(), usecase.ListMovementsInput{
		DateFrom:  &from,
		DateTo:    &to,
		AccountID: "acc-1",
		Kind:      domain.DirectionDebit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotIDs) != 2 || gotAccount != "acc-1" || gotKind != domain.DirectionDebit {
		t.Errorf("filters not forwarded: ids=%v account=%s kind=%s", gotIDs, gotAccount, gotKind)
	}
}

func TestLedgerUseCase_GetAccountBalances(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	ledgerRepo.AccountTotalsFunc = func(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error) {
		return []*domain.AccountBalance{
			{
				Account:     &domain.Account{ID: "acc-cash", Code: "1.1"},
				TotalDebit:  decimal.NewFromInt(1500),
				TotalCredit: decimal.NewFromInt(400),
			},
			{
				Account:     &domain.Account{ID: "acc-sales", Code: "4.1"},
				TotalDebit:  decimal.Zero,
				TotalCredit: decimal.NewFromInt(1100),
			},
		}, nil
	}

	uc := usecase.NewLedgerUseCase(ledgerRepo)

	balances, err := uc.GetAccountBalances(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(balances))
	}
	if !balances[0].Balance.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected cash balance 1100, got %s", balances[0].Balance)
	}
	if !balances[1].Balance.Equal(decimal.NewFromInt(-1100)) {
		t.Errorf("expected sales balance -1100, got %s", balances[1].Balance)
	}
}

func TestLedgerUseCase_CheckConsistency(t *testing.T) {
	tests := []struct {
		name        string
		totalDebit  string
		totalCredit string
		wantOK      bool
	}{
		{"balanced", "5000.00", "5000.00", true},
		{"within tolerance", "5000.00", "5000.01", true},
		{"out of balance", "5000.00", "5000.02", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledgerRepo := mocks.NewMockLedgerRepository()
			ledgerRepo.LedgerTotalsFunc = func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
				return decimal.RequireFromString(tt.totalDebit), decimal.RequireFromString(tt.totalCredit), nil
			}

			uc := usecase.NewLedgerUseCase(ledgerRepo)

			ok, err := uc.CheckConsistency(context.Background())
			if ok != tt.wantOK {
				t.Errorf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !tt.wantOK && !errors.Is(err, usecase.ErrInconsistentLedger) {
				t.Errorf("expected ErrInconsistentLedger, got %v", err)
			}
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
