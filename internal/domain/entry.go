package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tags a posting as debit or credit. Both the journal and the
// receivable sub-ledger express their movements through it.
type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// BalanceTolerance is the maximum accepted |Σdebit − Σcredit| for an entry.
var BalanceTolerance = decimal.RequireFromString("0.01")

// Movement is a single debit or credit posting against one account within
// one journal entry. Amounts are always in the ledger base currency; when a
// foreign amount was converted at posting time, RateUsed records the rate.
type Movement struct {
	ID          string
	EntryID     string
	AccountID   string
	AccountCode string
	AccountName string
	EntryNumber int64
	EntryDate   time.Time
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	RateUsed    *decimal.Decimal
	CreatedAt   time.Time
}

// Direction reports which side of the entry the movement sits on.
func (m *Movement) Direction() Direction {
	if m.Debit.IsPositive() {
		return DirectionDebit
	}
	return DirectionCredit
}

// Amount returns the posted amount regardless of side.
func (m *Movement) Amount() decimal.Decimal {
	if m.Debit.IsPositive() {
		return m.Debit
	}
	return m.Credit
}

// Validate enforces the movement invariants: exactly one of debit, credit
// is positive, neither is negative, and the amount is within bounds.
func (m *Movement) Validate() error {
	if m.Debit.IsNegative() || m.Credit.IsNegative() {
		return ErrMovementAmbiguous
	}
	debitSet := m.Debit.IsPositive()
	creditSet := m.Credit.IsPositive()
	if debitSet == creditSet {
		return ErrMovementAmbiguous
	}
	return ValidateAmount(m.Amount())
}

// JournalEntry is an atomic, balanced group of movements. Entries are
// numbered sequentially, created with their movements in one transaction and
// deleted as a unit; they are never updated in place.
type JournalEntry struct {
	ID          string
	Number      int64
	Date        time.Time
	Description string
	CreatedBy   string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	CreatedAt   time.Time
	Movements   []*Movement
}

// Validate checks the entry invariants: at least two movements, each movement
// well formed, and debits equal to credits within BalanceTolerance.
func (e *JournalEntry) Validate() error {
	if len(e.Movements) < 2 {
		return ErrTooFewMovements
	}
	var debit, credit decimal.Decimal
	for _, m := range e.Movements {
		if err := m.Validate(); err != nil {
			return err
		}
		debit = debit.Add(m.Debit)
		credit = credit.Add(m.Credit)
	}
	if debit.Sub(credit).Abs().GreaterThan(BalanceTolerance) {
		return ErrUnbalancedEntry
	}
	return nil
}

// NetBalance reports totalDebit − totalCredit when the normal direction is
// debit, and the negation otherwise. Shared by both ledgers.
func NetBalance(totalDebit, totalCredit decimal.Decimal, normal Direction) decimal.Decimal {
	net := totalDebit.Sub(totalCredit)
	if normal == DirectionCredit {
		return net.Neg()
	}
	return net
}

// AccountBalance is a derived per-account aggregate; never stored.
type AccountBalance struct {
	Account     *Account
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balance     decimal.Decimal
}
