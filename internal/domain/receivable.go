package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableKind is the debe/haber tag on a receivable movement. "debe"
// raises the counterparty balance (they owe more); "haber" lowers it. The
// business meaning of a haber movement depends on the operation type, not
// the kind.
type ReceivableKind string

const (
	KindDebe  ReceivableKind = "debe"
	KindHaber ReceivableKind = "haber"
)

// ReceivableOperation identifies the business operation that produced a
// receivable movement.
type ReceivableOperation string

const (
	// OperationCharge records that the counterparty owes more.
	OperationCharge ReceivableOperation = "charge"
	// OperationPaymentReceived records a payment by the counterparty.
	OperationPaymentReceived ReceivableOperation = "payment_received"
	// OperationPaymentMade records the business paying out; settled at once.
	OperationPaymentMade ReceivableOperation = "payment_made"
	// OperationDebtTaken records the business taking on debt toward the
	// counterparty. Same haber tag as a received payment, inverted meaning.
	OperationDebtTaken ReceivableOperation = "debt_taken"
)

// Kind returns the debe/haber tag implied by the operation.
func (op ReceivableOperation) Kind() ReceivableKind {
	if op == OperationCharge {
		return KindDebe
	}
	return KindHaber
}

// Valid reports whether the operation is one of the four known types.
func (op ReceivableOperation) Valid() bool {
	switch op {
	case OperationCharge, OperationPaymentReceived, OperationPaymentMade, OperationDebtTaken:
		return true
	}
	return false
}

// ReceivableStatus is descriptive only; no reconciliation workflow hangs off
// of it.
type ReceivableStatus string

const (
	StatusPending ReceivableStatus = "pendiente"
	StatusSettled ReceivableStatus = "saldada"
)

// ReceivableMovement is one line of the per-counterparty sub-ledger. Unlike
// journal entries these are individually editable after creation (amount,
// concept, notes and date only).
type ReceivableMovement struct {
	ID             string
	CounterpartyID string
	Kind           ReceivableKind
	Operation      ReceivableOperation
	Concept        string
	Amount         decimal.Decimal
	OperationDate  time.Time
	Status         ReceivableStatus
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks structural invariants of the movement.
func (m *ReceivableMovement) Validate() error {
	if m.CounterpartyID == "" {
		return ErrCounterpartyRequired
	}
	if !m.Operation.Valid() {
		return ErrInvalidOperation
	}
	if m.Kind != m.Operation.Kind() {
		return ErrInvalidOperation
	}
	if err := ValidateAmount(m.Amount); err != nil {
		return err
	}
	if m.Concept == "" {
		return ErrConceptRequired
	}
	return nil
}

// ReceivableBalance is Σdebe − Σhaber over one counterparty's movements.
// Positive: the counterparty owes the business. Negative: the business owes
// the counterparty. Zero with history: settled.
func ReceivableBalance(movements []*ReceivableMovement) decimal.Decimal {
	var debe, haber decimal.Decimal
	for _, m := range movements {
		if m.Kind == KindDebe {
			debe = debe.Add(m.Amount)
		} else {
			haber = haber.Add(m.Amount)
		}
	}
	return NetBalance(debe, haber, DirectionDebit)
}

// CounterpartyBalance is the per-counterparty aggregate used for statistics.
type CounterpartyBalance struct {
	CounterpartyID string
	TotalDebe      decimal.Decimal
	TotalHaber     decimal.Decimal
}

// Balance returns the net debe−haber balance of the counterparty.
func (b CounterpartyBalance) Balance() decimal.Decimal {
	return NetBalance(b.TotalDebe, b.TotalHaber, DirectionDebit)
}

// ReceivableStatistics partitions counterparties by who owes whom.
type ReceivableStatistics struct {
	OwesUsCount  int
	OwesUsTotal  decimal.Decimal
	WeOweCount   int
	WeOweTotal   decimal.Decimal
	SettledCount int
}

// ComputeStatistics buckets counterparty balances into owes-us / we-owe /
// settled, summing the absolute balance of each bucket.
func ComputeStatistics(balances []CounterpartyBalance) ReceivableStatistics {
	var stats ReceivableStatistics
	for _, b := range balances {
		net := b.Balance()
		switch {
		case net.IsPositive():
			stats.OwesUsCount++
			stats.OwesUsTotal = stats.OwesUsTotal.Add(net)
		case net.IsNegative():
			stats.WeOweCount++
			stats.WeOweTotal = stats.WeOweTotal.Add(net.Abs())
		default:
			stats.SettledCount++
		}
	}
	return stats
}
