package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/adapter/repository/postgres"
	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
	"github.com/tiendanorte/ledger/tests/testutil"
)

func newEntryUseCase(testDB *testutil.TestDB) *usecase.EntryUseCase {
	return usecase.NewEntryUseCase(
		postgres.NewTxManager(testDB.Pool),
		postgres.NewAccountRepository(testDB.Pool),
		postgres.NewEntryRepository(testDB.Pool),
		postgres.NewULIDGenerator(),
		postgres.NewRetrier(zerolog.Nop()),
	)
}

func TestPostEntry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	cash := testDB.CreateTestAccount(ctx, "1.1.01", "Caja USD", domain.CurrencyUSD)
	sales := testDB.CreateTestAccount(ctx, "4.1.01", "Ventas", domain.CurrencyUSD)

	entryUC := newEntryUseCase(testDB)

	entry, err := entryUC.CreateEntry(ctx, usecase.CreateEntryInput{
		Date:        time.Now().UTC(),
		Description: "venta mostrador",
		CreatedBy:   "maria",
		Movements: []usecase.CreateMovementInput{
			{AccountID: cash.ID, Debit: decimal.NewFromInt(1000)},
			{AccountID: sales.ID, Credit: decimal.NewFromInt(1000)},
		},
	})
	if err != nil {
		t.Fatalf("failed to post entry: %v", err)
	}

	if entry.Number != 1 {
		t.Fatalf("expected first entry to take number 1, got %d", entry.Number)
	}
	if !entry.TotalDebit.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected total debit 1000, got %s", entry.TotalDebit)
	}

	// Numbers are sequential
	second, err := entryUC.CreateEntry(ctx, usecase.CreateEntryInput{
		Date:        time.Now().UTC(),
		Description: "venta tarde",
		CreatedBy:   "maria",
		Movements: []usecase.CreateMovementInput{
			{AccountID: cash.ID, Debit: decimal.NewFromInt(50)},
			{AccountID: sales.ID, Credit: decimal.NewFromInt(50)},
		},
	})
	if err != nil {
		t.Fatalf("failed to post second entry: %v", err)
	}
	if second.Number != 2 {
		t.Fatalf("expected second entry to take number 2, got %d", second.Number)
	}

	fetched, err := entryUC.GetEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("failed to fetch entry: %v", err)
	}
	if len(fetched.Movements) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(fetched.Movements))
	}
}

func TestPostEntry_Unbalanced(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	cash := testDB.CreateTestAccount(ctx, "1.1.01", "Caja USD", domain.CurrencyUSD)
	sales := testDB.CreateTestAccount(ctx, "4.1.01", "Ventas", domain.CurrencyUSD)

	entryUC := newEntryUseCase(testDB)

	_, err := entryUC.CreateEntry(ctx, usecase.CreateEntryInput{
		Date:        time.Now().UTC(),
		Description: "descuadrado",
		CreatedBy:   "maria",
		Movements: []usecase.CreateMovementInput{
			{AccountID: cash.ID, Debit: decimal.NewFromInt(1000)},
			{AccountID: sales.ID, Credit: decimal.NewFromInt(900)},
		},
	})
	if !errors.Is(err, domain.ErrUnbalancedEntry) {
		t.Fatalf("expected ErrUnbalancedEntry, got %v", err)
	}
}

func TestPostEntry_ForeignCurrencyConversion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	cashARS := testDB.CreateTestAccount(ctx, "1.1.02", "Caja ARS", domain.CurrencyARS)
	sales := testDB.CreateTestAccount(ctx, "4.1.01", "Ventas", domain.CurrencyUSD)

	entryUC := newEntryUseCase(testDB)

	rate := decimal.NewFromInt(1200)
	entry, err := entryUC.CreateEntry(ctx, usecase.CreateEntryInput{
		Date:        time.Now().UTC(),
		Description: "venta en pesos",
		CreatedBy:   "maria",
		Movements: []usecase.CreateMovementInput{
			{AccountID: cashARS.ID, Debit: decimal.NewFromInt(120000), Rate: &rate},
			{AccountID: sales.ID, Credit: decimal.NewFromInt(100)},
		},
	})
	if err != nil {
		t.Fatalf("failed to post entry: %v", err)
	}

	fetched, err := entryUC.GetEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("failed to fetch entry: %v", err)
	}

	var converted *domain.Movement
	for _, m := range fetched.Movements {
		if m.AccountID == cashARS.ID {
			converted = m
		}
	}
	if converted == nil {
		t.Fatal("expected a movement on the ARS account")
	}
	if !converted.Debit.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected converted debit 100.00, got %s", converted.Debit)
	}
	if converted.RateUsed == nil || !converted.RateUsed.Equal(rate) {
		t.Fatalf("expected rate 1200 recorded, got %v", converted.RateUsed)
	}
}

func TestDeleteEntry_RemovesMovements(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	cash := testDB.CreateTestAccount(ctx, "1.1.01", "Caja USD", domain.CurrencyUSD)
	sales := testDB.CreateTestAccount(ctx, "4.1.01", "Ventas", domain.CurrencyUSD)

	entryUC := newEntryUseCase(testDB)

	entry, err := entryUC.CreateEntry(ctx, usecase.CreateEntryInput{
		Date:        time.Now().UTC(),
		Description: "a borrar",
		CreatedBy:   "maria",
		Movements: []usecase.CreateMovementInput{
			{AccountID: cash.ID, Debit: decimal.NewFromInt(10)},
			{AccountID: sales.ID, Credit: decimal.NewFromInt(10)},
		},
	})
	if err != nil {
		t.Fatalf("failed to post entry: %v", err)
	}

	if err := entryUC.DeleteEntry(ctx, entry.ID); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}

	if _, err := entryUC.GetEntry(ctx, entry.ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	var count int
	if err := testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM movements WHERE entry_id = $1", entry.ID).Scan(&count); err != nil {
		t.Fatalf("failed to count movements: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected movements to cascade, found %d", count)
	}
}
