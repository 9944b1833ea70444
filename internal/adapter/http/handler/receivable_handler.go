package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/adapter/http/dto"
	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
)

// ReceivableService defines the behavior needed by ReceivableHandler.
type ReceivableService interface {
	RegisterCharge(ctx context.Context, input usecase.RegisterMovementInput) (*domain.ReceivableMovement, error)
	RegisterPaymentReceived(ctx context.Context, input usecase.RegisterMovementInput) (*domain.ReceivableMovement, error)
	RegisterPaymentMade(ctx context.Context, input usecase.RegisterMovementInput) (*domain.ReceivableMovement, error)
	RegisterDebtTaken(ctx context.Context, input usecase.RegisterMovementInput) (*domain.ReceivableMovement, error)
	GetBalance(ctx context.Context, counterpartyID string) (decimal.Decimal, error)
	ListMovements(ctx context.Context, counterpartyID string) ([]*domain.ReceivableMovement, error)
	GetStatistics(ctx context.Context) (domain.ReceivableStatistics, error)
	EditMovement(ctx context.Context, id string, input usecase.EditMovementInput) (*domain.ReceivableMovement, error)
	DeleteMovement(ctx context.Context, id string) error
}

// ReceivableHandler handles receivable sub-ledger HTTP requests.
type ReceivableHandler struct {
	receivableUC ReceivableService
}

// NewReceivableHandler creates a new ReceivableHandler.
func NewReceivableHandler(receivableUC ReceivableService) *ReceivableHandler {
	return &ReceivableHandler{receivableUC: receivableUC}
}

type registerFn func(ctx context.Context, input usecase.RegisterMovementInput) (*domain.ReceivableMovement, error)

// RegisterCharge records a charge against the counterparty.
func (h *ReceivableHandler) RegisterCharge(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.receivableUC.RegisterCharge)
}

// RegisterPaymentReceived records a payment received from the counterparty.
func (h *ReceivableHandler) RegisterPaymentReceived(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.receivableUC.RegisterPaymentReceived)
}

// RegisterPaymentMade records a payment we made to the counterparty.
func (h *ReceivableHandler) RegisterPaymentMade(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.receivableUC.RegisterPaymentMade)
}

// RegisterDebtTaken records a debt we took on with the counterparty.
func (h *ReceivableHandler) RegisterDebtTaken(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, h.receivableUC.RegisterDebtTaken)
}

func (h *ReceivableHandler) register(w http.ResponseWriter, r *http.Request, fn registerFn) {
	counterpartyID := chi.URLParam(r, "counterparty")
	if counterpartyID == "" {
		writeError(w, http.StatusBadRequest, "missing counterparty", "")
		return
	}

	var req dto.RegisterReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	movement, err := fn(r.Context(), req.ToUseCaseInput(counterpartyID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register movement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceivableFromDomain(movement))
}

// GetBalance returns the counterparty's net position: positive means they
// owe us, negative means we owe them.
func (h *ReceivableHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	counterpartyID := chi.URLParam(r, "counterparty")
	if counterpartyID == "" {
		writeError(w, http.StatusBadRequest, "missing counterparty", "")
		return
	}

	balance, err := h.receivableUC.GetBalance(r.Context(), counterpartyID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CounterpartyBalanceResponse{
		CounterpartyID: counterpartyID,
		Balance:        balance,
	})
}

// ListMovements lists the counterparty's movements in operation date order.
func (h *ReceivableHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	counterpartyID := chi.URLParam(r, "counterparty")
	if counterpartyID == "" {
		writeError(w, http.StatusBadRequest, "missing counterparty", "")
		return
	}

	movements, err := h.receivableUC.ListMovements(r.Context(), counterpartyID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceivablesFromDomain(movements))
}

// GetStatistics summarises every counterparty's position.
func (h *ReceivableHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.receivableUC.GetStatistics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get statistics", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatisticsFromDomain(stats))
}

// Edit updates a movement's editable fields. The operation type is fixed
// at registration and cannot change.
func (h *ReceivableHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing movement ID", "")
		return
	}

	var req dto.EditReceivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	movement, err := h.receivableUC.EditMovement(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to edit movement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReceivableFromDomain(movement))
}

// Delete removes a movement from the sub-ledger.
func (h *ReceivableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing movement ID", "")
		return
	}

	if err := h.receivableUC.DeleteMovement(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete movement", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
