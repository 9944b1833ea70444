package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tiendanorte/ledger/internal/adapter/http/dto"
	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	ListMovements(ctx context.Context, input usecase.ListMovementsInput) ([]*usecase.MovementGroup, error)
	GetAccountBalances(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error)
	CheckConsistency(ctx context.Context) (bool, error)
}

// LedgerHandler handles ledger query HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// ListMovements lists movements grouped by entry. Supported filters:
// ?date_from=, ?date_to=, ?account_id=, ?kind=debit|credit.
func (h *LedgerHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListMovementsInput{
		DateFrom:  parseTimeQuery(r, "date_from"),
		DateTo:    parseTimeQuery(r, "date_to"),
		AccountID: r.URL.Query().Get("account_id"),
	}

	switch kind := r.URL.Query().Get("kind"); kind {
	case "":
	case "debit":
		input.Kind = domain.DirectionDebit
	case "credit":
		input.Kind = domain.DirectionCredit
	default:
		writeError(w, http.StatusBadRequest, "invalid kind", "kind must be debit or credit")
		return
	}

	groups, err := h.ledgerUC.ListMovements(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementGroupsFromUseCase(groups))
}

// GetBalances returns the balance of every account, optionally as of a
// cutoff date (?as_of=).
func (h *LedgerHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	asOf := parseTimeQuery(r, "as_of")

	balances, err := h.ledgerUC.GetAccountBalances(r.Context(), asOf)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalancesFromDomain(balances))
}

// CheckConsistency verifies total debits equal total credits across the
// whole book.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	ok, err := h.ledgerUC.CheckConsistency(r.Context())
	if err != nil && !errors.Is(err, usecase.ErrInconsistentLedger) {
		writeError(w, http.StatusInternalServerError, "ledger consistency check failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: ok})
}
