package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountNotPostable = errors.New("account does not accept movements")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrDuplicateCode      = errors.New("account code already exists")

	// Journal entry errors
	ErrEntryNotFound     = errors.New("journal entry not found")
	ErrTooFewMovements   = errors.New("journal entry requires at least two movements")
	ErrMovementAmbiguous = errors.New("movement must have exactly one of debit or credit set")
	ErrUnbalancedEntry   = errors.New("journal entry debits and credits do not balance")

	// Exchange rate errors
	ErrRateOutOfRange  = errors.New("exchange rate outside accepted band")
	ErrRateRequired    = errors.New("conversion rate required for foreign-currency account")
	ErrRateNotAllowed  = errors.New("conversion rate given for base-currency account")
	ErrRateUnavailable = errors.New("no current exchange rate available")

	// Receivable sub-ledger errors
	ErrReceivableNotFound   = errors.New("receivable movement not found")
	ErrCounterpartyRequired = errors.New("counterparty id required")
	ErrInvalidOperation     = errors.New("invalid receivable operation")
	ErrConceptRequired      = errors.New("concept is required")

	// Shared
	ErrInvalidAmount = errors.New("amount must be positive")
)
