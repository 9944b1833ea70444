package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
)

var validate = validator.New()

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required,max=255"`
	Currency string `json:"currency" validate:"required,oneof=USD ARS"`
	Category string `json:"category" validate:"omitempty,oneof=asset liability equity revenue expense"`
	Postable bool   `json:"postable"`
}

// Validate checks field constraints.
func (r *CreateAccountRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code:     r.Code,
		Name:     r.Name,
		Currency: domain.Currency(r.Currency),
		Category: domain.Category(r.Category),
		Postable: r.Postable,
	}
}

// SetAccountActiveRequest toggles an account's active flag.
type SetAccountActiveRequest struct {
	Active bool `json:"active"`
}

// MovementRequest is one line of a posting request.
type MovementRequest struct {
	AccountID string           `json:"account_id" validate:"required"`
	Debit     decimal.Decimal  `json:"debit"`
	Credit    decimal.Decimal  `json:"credit"`
	Rate      *decimal.Decimal `json:"rate,omitempty"`
}

// CreateEntryRequest represents a request to post a journal entry.
type CreateEntryRequest struct {
	Date        time.Time         `json:"date" validate:"required"`
	Description string            `json:"description" validate:"required,max=500"`
	CreatedBy   string            `json:"created_by" validate:"required"`
	Movements   []MovementRequest `json:"movements" validate:"required,min=2,dive"`
}

// Validate checks field constraints.
func (r *CreateEntryRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() usecase.CreateEntryInput {
	movements := make([]usecase.CreateMovementInput, len(r.Movements))
	for i, m := range r.Movements {
		movements[i] = usecase.CreateMovementInput{
			AccountID: m.AccountID,
			Debit:     m.Debit,
			Credit:    m.Credit,
			Rate:      m.Rate,
		}
	}
	return usecase.CreateEntryInput{
		Date:        r.Date,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
		Movements:   movements,
	}
}

// RegisterReceivableRequest represents a request to register a receivable
// movement for a counterparty.
type RegisterReceivableRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Concept       string          `json:"concept" validate:"required,max=255"`
	Notes         string          `json:"notes" validate:"max=1000"`
	OperationDate time.Time       `json:"operation_date" validate:"required"`
	CreatedBy     string          `json:"created_by" validate:"required"`
}

// Validate checks field constraints.
func (r *RegisterReceivableRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *RegisterReceivableRequest) ToUseCaseInput(counterpartyID string) usecase.RegisterMovementInput {
	return usecase.RegisterMovementInput{
		CounterpartyID: counterpartyID,
		Amount:         r.Amount,
		Concept:        r.Concept,
		Notes:          r.Notes,
		OperationDate:  r.OperationDate,
		CreatedBy:      r.CreatedBy,
	}
}

// EditReceivableRequest carries the editable fields of a receivable
// movement. Absent fields stay unchanged.
type EditReceivableRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Concept       *string          `json:"concept,omitempty" validate:"omitempty,max=255"`
	Notes         *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
	OperationDate *time.Time       `json:"operation_date,omitempty"`
}

// Validate checks field constraints.
func (r *EditReceivableRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *EditReceivableRequest) ToUseCaseInput() usecase.EditMovementInput {
	return usecase.EditMovementInput{
		Amount:        r.Amount,
		Concept:       r.Concept,
		Notes:         r.Notes,
		OperationDate: r.OperationDate,
	}
}

// SetRateRequest sets the current manual exchange rate.
type SetRateRequest struct {
	Value decimal.Decimal `json:"value" validate:"required"`
}

// Validate checks field constraints.
func (r *SetRateRequest) Validate() error {
	return validate.Struct(r)
}
