package domain

import (
	"time"
)

// Currency is an ISO 4217 currency code accepted by the ledger.
type Currency string

const (
	// CurrencyUSD is the ledger base currency.
	CurrencyUSD Currency = "USD"
	// CurrencyARS is the foreign currency; movements against ARS accounts
	// are converted to USD at posting time.
	CurrencyARS Currency = "ARS"
)

// Category is the display classification of an account.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryRevenue   Category = "revenue"
	CategoryExpense   Category = "expense"
	CategoryUnknown   Category = "unknown"
)

// Account is a chart-of-accounts entry. Only postable, active accounts may
// receive movements; summary/group accounts have Postable=false.
type Account struct {
	ID                 string
	Code               string
	Name               string
	Currency           Currency
	Category           Category
	RequiresConversion bool
	Postable           bool
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CanPost checks whether the account may receive movements.
func (a *Account) CanPost() error {
	if !a.Active {
		return ErrAccountInactive
	}
	if !a.Postable {
		return ErrAccountNotPostable
	}
	return nil
}

// DisplayCategory returns the category stored at creation time, falling back
// to the code prefix for accounts created before categories were explicit.
// Cosmetic only; posting never consults it.
func (a *Account) DisplayCategory() Category {
	if a.Category != "" && a.Category != CategoryUnknown {
		return a.Category
	}
	return DeriveCategory(a.Code)
}

// DeriveCategory maps the first character of an account code to a display
// category (1=asset, 2=liability, 3=equity, 4=revenue, 5=expense).
func DeriveCategory(code string) Category {
	if code == "" {
		return CategoryUnknown
	}
	switch code[0] {
	case '1':
		return CategoryAsset
	case '2':
		return CategoryLiability
	case '3':
		return CategoryEquity
	case '4':
		return CategoryRevenue
	case '5':
		return CategoryExpense
	default:
		return CategoryUnknown
	}
}
