package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID                 string             `json:"id"`
	Code               string             `json:"code"`
	Name               string             `json:"name"`
	Currency           string             `json:"currency"`
	Category           string             `json:"category"`
	RequiresConversion bool               `json:"requires_conversion"`
	Postable           bool               `json:"postable"`
	Active             bool               `json:"active"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

type JournalEntry struct {
	ID          string             `json:"id"`
	Number      int64              `json:"number"`
	EntryDate   pgtype.Timestamptz `json:"entry_date"`
	Description string             `json:"description"`
	CreatedBy   string             `json:"created_by"`
	TotalDebit  pgtype.Numeric     `json:"total_debit"`
	TotalCredit pgtype.Numeric     `json:"total_credit"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Movement struct {
	ID        string             `json:"id"`
	EntryID   string             `json:"entry_id"`
	AccountID string             `json:"account_id"`
	Debit     pgtype.Numeric     `json:"debit"`
	Credit    pgtype.Numeric     `json:"credit"`
	RateUsed  pgtype.Numeric     `json:"rate_used"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type ReceivableMovement struct {
	ID             string             `json:"id"`
	CounterpartyID string             `json:"counterparty_id"`
	Kind           string             `json:"kind"`
	Operation      string             `json:"operation"`
	Concept        string             `json:"concept"`
	Amount         pgtype.Numeric     `json:"amount"`
	OperationDate  pgtype.Timestamptz `json:"operation_date"`
	Status         string             `json:"status"`
	Notes          pgtype.Text        `json:"notes"`
	CreatedBy      string             `json:"created_by"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}
