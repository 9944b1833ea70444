package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAccountCode = errors.New("invalid account code")
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MaxDescriptionLength = 500
	MaxConceptLength     = 255
	MaxMovementAmount    = "1000000000000" // 1 trillion
)

// Account codes are hierarchical dotted numeric strings: "1", "1.1", "1.1.02".
var accountCodeRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// ValidateAccountCode validates the hierarchical account code shape.
func ValidateAccountCode(code string) error {
	code = strings.TrimSpace(code)

	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrInvalidAccountCode)
	}

	if !accountCodeRegex.MatchString(code) {
		return fmt.Errorf("%w: %q is not a dotted numeric code", ErrInvalidAccountCode, code)
	}

	return nil
}

// ValidateAccountName validates account name
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateCurrency validates the currency against the codes the ledger
// accepts.
func ValidateCurrency(currency Currency) error {
	switch currency {
	case CurrencyUSD, CurrencyARS:
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
}

// ValidateAmount validates a posting amount
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxMovementAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxMovementAmount)
	}

	return nil
}

// ValidateDescription bounds free-text description length
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: maximum is %d characters", ErrDescriptionTooLong, MaxDescriptionLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
