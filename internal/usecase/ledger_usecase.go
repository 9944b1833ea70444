package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tiendanorte/ledger/internal/domain"
)

var (
	// ErrInconsistentLedger is returned when the ledger is not balanced.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: debits do not equal credits")
)

// LedgerUseCase is the read side of the journal: movement listings, derived
// balances and the trial-balance consistency check.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// ListMovementsInput represents movement listing filters. Kind narrows to
// one side of the book; empty means both.
type ListMovementsInput struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	AccountID string
	Kind      domain.Direction
}

// MovementGroup is one entry's movements, for display.
type MovementGroup struct {
	EntryID   string
	Number    int64
	Date      time.Time
	Movements []*domain.Movement
}

// ListMovements filters movements. Dates live on the entry, so a date filter
// first resolves the matching entry ids, then movements are filtered by that
// id set plus account and kind. Results come back grouped by entry.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, input ListMovementsInput) ([]*MovementGroup, error) {
	var entryIDs []string

	if input.DateFrom != nil || input.DateTo != nil {
		ids, err := uc.ledgerRepo.EntryIDsByDateRange(ctx, input.DateFrom, input.DateTo)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []*MovementGroup{}, nil
		}
		entryIDs = ids
	}

	movements, err := uc.ledgerRepo.ListMovements(ctx, entryIDs, input.AccountID, input.Kind)
	if err != nil {
		return nil, err
	}

	return groupByEntry(movements), nil
}

func groupByEntry(movements []*domain.Movement) []*MovementGroup {
	groups := []*MovementGroup{}
	index := make(map[string]*MovementGroup)

	for _, m := range movements {
		group, ok := index[m.EntryID]
		if !ok {
			group = &MovementGroup{
				EntryID: m.EntryID,
				Number:  m.EntryNumber,
				Date:    m.EntryDate,
			}
			index[m.EntryID] = group
			groups = append(groups, group)
		}
		group.Movements = append(group.Movements, m)
	}

	return groups
}

// GetAccountBalances returns {totalDebit, totalCredit, balance} for every
// account with at least one movement, optionally restricted to entries dated
// at or before asOf. Balance is uniformly debit-minus-credit; no
// normal-balance adjustment per account nature is applied.
func (uc *LedgerUseCase) GetAccountBalances(ctx context.Context, asOf *time.Time) ([]*domain.AccountBalance, error) {
	balances, err := uc.ledgerRepo.AccountTotals(ctx, asOf)
	if err != nil {
		return nil, err
	}

	for _, b := range balances {
		b.Balance = domain.NetBalance(b.TotalDebit, b.TotalCredit, domain.DirectionDebit)
	}

	return balances, nil
}

// CheckConsistency verifies the whole book balances: the sum of all debits
// must equal the sum of all credits.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	totalDebit, totalCredit, err := uc.ledgerRepo.LedgerTotals(ctx)
	if err != nil {
		return false, err
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(domain.BalanceTolerance) {
		return false, ErrInconsistentLedger
	}

	return true, nil
}
