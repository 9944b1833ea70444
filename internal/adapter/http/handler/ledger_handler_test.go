package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/adapter/http/dto"
	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
)

type ledgerServiceStub struct {
	listFn        func(ctx context.Context, input usecase.ListMovementsInput) ([]*usecase.MovementGroup, error)
	balancesFn    func(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error)
	consistencyFn func(ctx context.Context) (bool, error)
}

func (s *ledgerServiceStub) ListMovements(ctx context.Context, input usecase.ListMovementsInput) ([]*usecase.MovementGroup, error) {
	return s.listFn(ctx, input)
}

func (s *ledgerServiceStub) GetAccountBalances(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error) {
	return s.balancesFn(ctx, asOf)
}

func (s *ledgerServiceStub) CheckConsistency(ctx context.Context) (bool, error) {
	return s.consistencyFn(ctx)
}

func TestLedgerHandler_ListMovements_Filters(t *testing.T) {
	handler := NewLedgerHandler(&ledgerServiceStub{
		listFn: func(ctx context.Context, input usecase.ListMovementsInput) ([]*usecase.MovementGroup, error) {
			if input.DateFrom == nil || input.DateFrom.Format("2006-01-02") != "2024-03-01" {
				t.Fatalf("expected date_from 2024-03-01, got %v", input.DateFrom)
			}
			if input.AccountID != "acc-cash" {
				t.Fatalf("expected account filter acc-cash, got %q", input.AccountID)
			}
			if input.Kind != domain.DirectionDebit {
				t.Fatalf("expected debit filter, got %q", input.Kind)
			}
			return []*usecase.MovementGroup{
				{
					EntryID: "ent-1",
					Number:  1,
					Movements: []*domain.Movement{
						{ID: "mov-1", AccountID: "acc-cash", Debit: decimal.NewFromInt(100)},
					},
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movements?date_from=2024-03-01&account_id=acc-cash&kind=debit", nil)
	rec := httptest.NewRecorder()

	handler.ListMovements(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []*dto.MovementGroupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || len(resp[0].Movements) != 1 {
		t.Fatalf("expected one group with one movement, got %+v", resp)
	}
}

func TestLedgerHandler_ListMovements_BadKind(t *testing.T) {
	handler := NewLedgerHandler(&ledgerServiceStub{
		listFn: func(ctx context.Context, input usecase.ListMovementsInput) ([]*usecase.MovementGroup, error) {
			t.Fatal("ListMovements should not be called for invalid kind")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movements?kind=sideways", nil)
	rec := httptest.NewRecorder()

	handler.ListMovements(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerHandler_GetBalances_AsOf(t *testing.T) {
	handler := NewLedgerHandler(&ledgerServiceStub{
		balancesFn: func(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error) {
			if asOf == nil || asOf.Format("2006-01-02") != "2024-06-30" {
				t.Fatalf("expected as_of 2024-06-30, got %v", asOf)
			}
			return []*domain.AccountBalance{
				{
					Account:     &domain.Account{ID: "acc-cash", Code: "1.1.01", Category: domain.CategoryAsset},
					TotalDebit:  decimal.NewFromInt(1500),
					TotalCredit: decimal.NewFromInt(400),
					Balance:     decimal.NewFromInt(1100),
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/balances?as_of=2024-06-30", nil)
	rec := httptest.NewRecorder()

	handler.GetBalances(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || !resp[0].Balance.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("unexpected balances: %+v", resp)
	}
}

func TestLedgerHandler_CheckConsistency(t *testing.T) {
	testCases := []struct {
		name       string
		ok         bool
		err        error
		consistent bool
	}{
		{name: "balanced book", ok: true, consistent: true},
		{name: "drifted book", ok: false, err: usecase.ErrInconsistentLedger, consistent: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewLedgerHandler(&ledgerServiceStub{
				consistencyFn: func(ctx context.Context) (bool, error) {
					return tc.ok, tc.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil)
			rec := httptest.NewRecorder()

			handler.CheckConsistency(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp dto.ConsistencyResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Consistent != tc.consistent {
				t.Fatalf("expected consistent=%v, got %v", tc.consistent, resp.Consistent)
			}
		})
	}
}
