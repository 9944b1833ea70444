package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
)

// EntryUseCase handles journal entry posting and deletion.
type EntryUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	retrier Retrier,
) *EntryUseCase {
	return &EntryUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// CreateMovementInput is one debit or credit line of a posting request.
// Rate must be present when the account requires conversion; the stated
// debit/credit amount is then taken as foreign currency and converted.
type CreateMovementInput struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Rate      *decimal.Decimal
}

// CreateEntryInput represents input for posting a journal entry.
type CreateEntryInput struct {
	Date        time.Time
	Description string
	CreatedBy   string
	Movements   []CreateMovementInput
}

// CreateEntry validates, numbers and persists a balanced journal entry with
// its movements in one transaction. All validation happens before any write.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	if len(input.Movements) < 2 {
		return nil, domain.ErrTooFewMovements
	}
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	accounts, err := uc.resolveAccounts(ctx, input.Movements)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	movements := make([]*domain.Movement, 0, len(input.Movements))
	for _, mi := range input.Movements {
		account := accounts[mi.AccountID]

		if err := account.CanPost(); err != nil {
			return nil, err
		}

		movement, err := uc.buildMovement(account, mi, now)
		if err != nil {
			return nil, err
		}

		movements = append(movements, movement)
	}

	entry := &domain.JournalEntry{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		Movements:   movements,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	for _, m := range movements {
		m.EntryID = entry.ID
		entry.TotalDebit = entry.TotalDebit.Add(m.Debit)
		entry.TotalCredit = entry.TotalCredit.Add(m.Credit)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	// The numbering read and the inserts share one transaction; conflicts
	// on the number backstop constraint are retried.
	err = uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		number, err := uc.entryRepo.NextNumber(ctx, tx)
		if err != nil {
			return err
		}
		entry.Number = number

		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// buildMovement converts a movement input line into a domain movement,
// applying currency conversion where the account demands it.
func (uc *EntryUseCase) buildMovement(account *domain.Account, input CreateMovementInput, now time.Time) (*domain.Movement, error) {
	debit := input.Debit
	credit := input.Credit

	var rateUsed *decimal.Decimal

	if account.RequiresConversion {
		if input.Rate == nil {
			return nil, domain.ErrRateRequired
		}
		if err := domain.ValidateRate(*input.Rate); err != nil {
			return nil, err
		}

		var err error
		if debit.IsPositive() {
			debit, err = domain.Convert(debit, *input.Rate)
		} else if credit.IsPositive() {
			credit, err = domain.Convert(credit, *input.Rate)
		}
		if err != nil {
			return nil, err
		}

		rate := *input.Rate
		rateUsed = &rate
	} else if input.Rate != nil {
		return nil, domain.ErrRateNotAllowed
	}

	movement := &domain.Movement{
		ID:          uc.idGen.Generate(),
		AccountID:   account.ID,
		AccountCode: account.Code,
		AccountName: account.Name,
		Debit:       debit,
		Credit:      credit,
		RateUsed:    rateUsed,
		CreatedAt:   now,
	}

	if err := movement.Validate(); err != nil {
		return nil, err
	}

	return movement, nil
}

func (uc *EntryUseCase) resolveAccounts(ctx context.Context, movements []CreateMovementInput) (map[string]*domain.Account, error) {
	seen := make(map[string]bool)

	var ids []string
	for _, m := range movements {
		if !seen[m.AccountID] {
			seen[m.AccountID] = true
			ids = append(ids, m.AccountID)
		}
	}

	accounts, err := uc.accountRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(accounts) != len(ids) {
		return nil, domain.ErrAccountNotFound
	}

	accountMap := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		accountMap[a.ID] = a
	}

	return accountMap, nil
}

// GetEntry retrieves an entry with its movements.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// DeleteEntry removes the entry and its movements as one unit.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.entryRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListEntriesInput represents input for listing entries.
type ListEntriesInput struct {
	Limit         int
	Offset        int
	WithMovements bool
}

// ListEntries returns entries ordered by number descending.
func (uc *EntryUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.JournalEntry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.entryRepo.List(ctx, limit, offset, input.WithMovements)
}
