package usecase

import (
	"context"
	"time"

	"github.com/tiendanorte/ledger/internal/domain"
)

// AccountUseCase manages the chart of accounts.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Code     string
	Name     string
	Currency domain.Currency
	Category domain.Category
	Postable bool
}

// CreateAccount creates a new chart-of-accounts entry. The conversion flag
// is derived from the currency, never supplied by the caller.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountCode(input.Code); err != nil {
		return nil, err
	}
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = domain.DeriveCategory(input.Code)
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:                 uc.idGen.Generate(),
		Code:               input.Code,
		Name:               input.Name,
		Currency:           input.Currency,
		Category:           category,
		RequiresConversion: input.Currency != BaseCurrency,
		Postable:           input.Postable,
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetAccountByCode retrieves an account by its unique code.
func (uc *AccountUseCase) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return uc.accountRepo.GetByCode(ctx, code)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.accountRepo.List(ctx, limit, offset)
}

// SetAccountActive activates or deactivates an account. Inactive accounts
// reject new movements but keep their history.
func (uc *AccountUseCase) SetAccountActive(ctx context.Context, id string, active bool) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.accountRepo.SetActive(ctx, id, active, time.Now().UTC())
}
