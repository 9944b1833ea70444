package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendanorte/ledger/internal/domain"
	"github.com/tiendanorte/ledger/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	Currency           string    `json:"currency"`
	Category           string    `json:"category"`
	RequiresConversion bool      `json:"requires_conversion"`
	Postable           bool      `json:"postable"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                 a.ID,
		Code:               a.Code,
		Name:               a.Name,
		Currency:           string(a.Currency),
		Category:           string(a.DisplayCategory()),
		RequiresConversion: a.RequiresConversion,
		Postable:           a.Postable,
		Active:             a.Active,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts. Count is the number of
// accounts in this page, not the table total.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Count    int64              `json:"count"`
}

// MovementResponse represents one movement line in API responses.
type MovementResponse struct {
	ID          string           `json:"id"`
	AccountID   string           `json:"account_id"`
	AccountCode string           `json:"account_code,omitempty"`
	AccountName string           `json:"account_name,omitempty"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	RateUsed    *decimal.Decimal `json:"rate_used,omitempty"`
}

// MovementFromDomain converts a domain movement to response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:          m.ID,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		Debit:       m.Debit,
		Credit:      m.Credit,
		RateUsed:    m.RateUsed,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// EntryResponse represents a journal entry in API responses.
type EntryResponse struct {
	ID          string              `json:"id"`
	Number      int64               `json:"number"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	CreatedBy   string              `json:"created_by"`
	TotalDebit  decimal.Decimal     `json:"total_debit"`
	TotalCredit decimal.Decimal     `json:"total_credit"`
	CreatedAt   time.Time           `json:"created_at"`
	Movements   []*MovementResponse `json:"movements,omitempty"`
}

// EntryFromDomain converts a domain entry to response.
func EntryFromDomain(e *domain.JournalEntry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Number:      e.Number,
		Date:        e.Date,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		TotalDebit:  e.TotalDebit,
		TotalCredit: e.TotalCredit,
		CreatedAt:   e.CreatedAt,
		Movements:   MovementsFromDomain(e.Movements),
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps a page of entries. Count is the number of
// entries in this page, not the table total.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Count   int64            `json:"count"`
}

// MovementGroupResponse is one entry's movements in a ledger listing.
type MovementGroupResponse struct {
	EntryID   string              `json:"entry_id"`
	Number    int64               `json:"number"`
	Date      time.Time           `json:"date"`
	Movements []*MovementResponse `json:"movements"`
}

// MovementGroupsFromUseCase converts grouped movements to responses.
func MovementGroupsFromUseCase(groups []*usecase.MovementGroup) []*MovementGroupResponse {
	result := make([]*MovementGroupResponse, len(groups))
	for i, g := range groups {
		result[i] = &MovementGroupResponse{
			EntryID:   g.EntryID,
			Number:    g.Number,
			Date:      g.Date,
			Movements: MovementsFromDomain(g.Movements),
		}
	}
	return result
}

// BalanceResponse represents one account's derived balance.
type BalanceResponse struct {
	AccountID   string          `json:"account_id"`
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Category    string          `json:"category"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalancesFromDomain converts account balances to responses.
func BalancesFromDomain(balances []*domain.AccountBalance) []*BalanceResponse {
	result := make([]*BalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = &BalanceResponse{
			AccountID:   b.Account.ID,
			AccountCode: b.Account.Code,
			AccountName: b.Account.Name,
			Category:    string(b.Account.DisplayCategory()),
			TotalDebit:  b.TotalDebit,
			TotalCredit: b.TotalCredit,
			Balance:     b.Balance,
		}
	}
	return result
}

// ConsistencyResponse is the trial-balance check result.
type ConsistencyResponse struct {
	Consistent bool `json:"consistent"`
}

// RateResponse represents an exchange rate in API responses.
type RateResponse struct {
	Value     decimal.Decimal `json:"value"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
}

// RateFromDomain converts a domain rate to response.
func RateFromDomain(r domain.Rate) *RateResponse {
	return &RateResponse{
		Value:     r.Value,
		Source:    r.Source,
		Timestamp: r.Timestamp,
	}
}

// ReceivableResponse represents a receivable movement in API responses.
type ReceivableResponse struct {
	ID             string          `json:"id"`
	CounterpartyID string          `json:"counterparty_id"`
	Kind           string          `json:"kind"`
	Operation      string          `json:"operation"`
	Concept        string          `json:"concept"`
	Amount         decimal.Decimal `json:"amount"`
	OperationDate  time.Time       `json:"operation_date"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ReceivableFromDomain converts a domain receivable movement to response.
func ReceivableFromDomain(m *domain.ReceivableMovement) *ReceivableResponse {
	return &ReceivableResponse{
		ID:             m.ID,
		CounterpartyID: m.CounterpartyID,
		Kind:           string(m.Kind),
		Operation:      string(m.Operation),
		Concept:        m.Concept,
		Amount:         m.Amount,
		OperationDate:  m.OperationDate,
		Status:         string(m.Status),
		Notes:          m.Notes,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ReceivablesFromDomain converts domain receivable movements to responses.
func ReceivablesFromDomain(movements []*domain.ReceivableMovement) []*ReceivableResponse {
	result := make([]*ReceivableResponse, len(movements))
	for i, m := range movements {
		result[i] = ReceivableFromDomain(m)
	}
	return result
}

// CounterpartyBalanceResponse is one counterparty's net position.
type CounterpartyBalanceResponse struct {
	CounterpartyID string          `json:"counterparty_id"`
	Balance        decimal.Decimal `json:"balance"`
}

// StatisticsResponse summarises the receivable sub-ledger.
type StatisticsResponse struct {
	OwesUsCount  int             `json:"owes_us_count"`
	OwesUsTotal  decimal.Decimal `json:"owes_us_total"`
	WeOweCount   int             `json:"we_owe_count"`
	WeOweTotal   decimal.Decimal `json:"we_owe_total"`
	SettledCount int             `json:"settled_count"`
}

// StatisticsFromDomain converts domain statistics to response.
func StatisticsFromDomain(s domain.ReceivableStatistics) *StatisticsResponse {
	return &StatisticsResponse{
		OwesUsCount:  s.OwesUsCount,
		OwesUsTotal:  s.OwesUsTotal,
		WeOweCount:   s.WeOweCount,
		WeOweTotal:   s.WeOweTotal,
		SettledCount: s.SettledCount,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
