package cashie

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType identifies the direction of a transaction.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", errValidation("unknown transaction type %q", s)
	}
}

// Recurrence is the repetition period of a transaction. None marks a one-off
// transaction; it is a sentinel and never a valid period for a stored
// template.
type Recurrence string

const (
	None    Recurrence = "none"
	Daily   Recurrence = "daily"
	Weekly  Recurrence = "weekly"
	Monthly Recurrence = "monthly"
)

// ParseRecurrence parses a string into a Recurrence. The empty string is
// accepted as None.
func ParseRecurrence(s string) (Recurrence, error) {
	switch Recurrence(strings.ToLower(s)) {
	case "", None:
		return None, nil
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	default:
		return "", errValidation("unknown recurrence %q", s)
	}
}

// Transaction is a single dated ledger entry. The ID is immutable once
// created; every other field is mutable through an edit.
type Transaction struct {
	ID        string          // globally unique within the store
	Type      TxType          // income or expense
	Category  string          // category name; may dangle after a category delete
	Amount    decimal.Decimal // strictly positive
	Date      Date            // calendar date, no time-of-day
	Note      string
	Method    string     // optional payment method, free text
	Recurring Recurrence // period of the template this entry seeds, or None
	CreatedAt int64      // insertion sequence, tiebreak for same-day entries
}

// NewTransaction validates the fields and builds a transaction with a fresh
// id. The amount must be a strictly positive number and the category must
// not be empty; violations are reported as a ValidationError without any
// side effect.
func NewTransaction(typ TxType, category string, amount decimal.Decimal, day Date, note, method string, recurring Recurrence) (Transaction, error) {
	tx := Transaction{
		ID:        uuid.NewString(),
		Type:      typ,
		Category:  strings.TrimSpace(category),
		Amount:    amount,
		Date:      day,
		Note:      strings.TrimSpace(note),
		Method:    strings.TrimSpace(method),
		Recurring: recurring,
	}
	if tx.Date.IsZero() {
		tx.Date = Today()
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Validate checks the transaction against the creation rules.
func (t Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return errValidation("transaction type must be income or expense, got %q", t.Type)
	}
	if t.Category == "" {
		return errValidation("transaction category is missing")
	}
	if !t.Amount.IsPositive() {
		return errValidation("transaction amount must be positive, got %s", t.Amount)
	}
	if _, err := ParseRecurrence(string(t.Recurring)); err != nil {
		return err
	}
	return nil
}

// Equal reports whether two transactions are observably identical.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Type == o.Type && t.Category == o.Category &&
		t.Amount.Equal(o.Amount) && t.Date == o.Date && t.Note == o.Note &&
		t.Method == o.Method && t.Recurring == o.Recurring && t.CreatedAt == o.CreatedAt
}

// searchText returns the lower-cased concatenation of the display fields,
// the haystack for free-text search.
func (t Transaction) searchText() string {
	return strings.ToLower(fmt.Sprintf("%s %s %s %s %s %s",
		t.Date, t.Type, t.Category, t.Amount, t.Note, t.Method))
}

// MarshalJSON implements the json.Marshaler interface for Transaction with a
// stable field order, so encoded documents are canonical.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("category", t.Category)
	w.Append("amount", t.Amount)
	w.Append("date", t.Date)
	w.Optional("note", t.Note)
	w.Optional("method", t.Method)
	w.Append("recurring", t.Recurring)
	w.Optional("createdAt", t.CreatedAt)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It accepts "categoryId" as an alias for "category" for documents produced
// by stores that keep category references by id.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID         string          `json:"id"`
		Type       TxType          `json:"type"`
		Category   string          `json:"category"`
		CategoryID string          `json:"categoryId"`
		Amount     decimal.Decimal `json:"amount"`
		Date       Date            `json:"date"`
		Note       string          `json:"note"`
		Method     string          `json:"method"`
		Recurring  Recurrence      `json:"recurring"`
		CreatedAt  int64           `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	category := temp.Category
	if category == "" {
		category = temp.CategoryID
	}
	recurring := temp.Recurring
	if recurring == "" {
		recurring = None
	}
	*t = Transaction{
		ID:        temp.ID,
		Type:      temp.Type,
		Category:  category,
		Amount:    temp.Amount,
		Date:      temp.Date,
		Note:      temp.Note,
		Method:    temp.Method,
		Recurring: recurring,
		CreatedAt: temp.CreatedAt,
	}
	return nil
}
