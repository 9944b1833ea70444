package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/adapter/http/dto"
	"github.com/tiendanorte/ledger/internal/domain"
)

// RateService defines the behavior needed by RateHandler.
type RateService interface {
	CurrentRate(ctx context.Context) (domain.Rate, error)
	SetManualRate(ctx context.Context, value decimal.Decimal) (domain.Rate, error)
}

// RateHandler handles exchange rate HTTP requests.
type RateHandler struct {
	rateUC RateService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateUC RateService) *RateHandler {
	return &RateHandler{rateUC: rateUC}
}

// GetCurrent returns the currently effective rate, fetching from the
// external source when the cache is empty.
func (h *RateHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rateUC.CurrentRate(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get rate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RateFromDomain(rate))
}

// SetCurrent stores a manual rate, overriding the external source until
// it expires.
func (h *RateHandler) SetCurrent(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	rate, err := h.rateUC.SetManualRate(r.Context(), req.Value)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set rate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RateFromDomain(rate))
}
