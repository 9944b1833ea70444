package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tiendanorte/ledger/internal/adapter/http/dto"
	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrReceivableNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateCode):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAccountNotPostable),
		errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrTooFewMovements),
		errors.Is(err, domain.ErrMovementAmbiguous),
		errors.Is(err, domain.ErrUnbalancedEntry),
		errors.Is(err, domain.ErrRateOutOfRange),
		errors.Is(err, domain.ErrRateRequired),
		errors.Is(err, domain.ErrRateNotAllowed),
		errors.Is(err, domain.ErrCounterpartyRequired),
		errors.Is(err, domain.ErrInvalidOperation),
		errors.Is(err, domain.ErrConceptRequired),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccountCode),
		errors.Is(err, domain.ErrInvalidAccountName),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrDescriptionTooLong):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrInconsistentLedger):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseTimeQuery parses an RFC 3339 or date-only query parameter. Returns
// nil when absent or malformed.
func parseTimeQuery(r *http.Request, key string) *time.Time {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return &t
	}
	return nil
}
