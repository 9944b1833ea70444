package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sane band for the ARS/USD rate. Anything outside is a data-entry or feed
// error and must be rejected before posting.
var (
	RateBandMin = decimal.NewFromInt(500)
	RateBandMax = decimal.NewFromInt(5000)
)

// Rate is a USD-equivalent conversion rate with its provenance.
type Rate struct {
	Value     decimal.Decimal
	Source    string
	Timestamp time.Time
}

// Validate rejects rates outside the sane band.
func (r Rate) Validate() error {
	return ValidateRate(r.Value)
}

// ValidateRate checks a raw rate value against the band.
func ValidateRate(value decimal.Decimal) error {
	if value.LessThan(RateBandMin) || value.GreaterThan(RateBandMax) {
		return ErrRateOutOfRange
	}
	return nil
}

// Convert turns a foreign-currency amount into the ledger base currency:
// amountForeign / rate, rounded to cents. The converted amount, never the
// foreign amount or the rate alone, is what gets posted.
func Convert(amountForeign, rate decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateRate(rate); err != nil {
		return decimal.Zero, err
	}
	return amountForeign.DivRound(rate, 2), nil
}
