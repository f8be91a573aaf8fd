package cashie

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringTemplate describes a periodic transaction and the watermark date
// through which it has already been materialized. Templates are unique per
// (category, type, amount, period) within a profile.
type RecurringTemplate struct {
	Type        TxType
	Category    string
	Amount      decimal.Decimal
	Note        string
	Period      Recurrence // daily, weekly or monthly; never None
	LastApplied Date       // watermark: last date a concrete entry was emitted for
}

// matches reports whether tx belongs to the same recurring series as the
// template.
func (r RecurringTemplate) matches(tx Transaction) bool {
	return r.Category == tx.Category && r.Type == tx.Type &&
		r.Amount.Equal(tx.Amount) && r.Period == tx.Recurring
}

// Equal reports whether two templates are observably identical.
func (r RecurringTemplate) Equal(o RecurringTemplate) bool {
	return r.Type == o.Type && r.Category == o.Category && r.Amount.Equal(o.Amount) &&
		r.Note == o.Note && r.Period == o.Period && r.LastApplied == o.LastApplied
}

// MarshalJSON implements the json.Marshaler interface for RecurringTemplate
// with a stable field order.
func (r RecurringTemplate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", r.Type)
	w.Append("category", r.Category)
	w.Append("amount", r.Amount)
	w.Optional("note", r.Note)
	w.Append("recurring", r.Period)
	w.Append("lastApplied", r.LastApplied)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for RecurringTemplate.
func (r *RecurringTemplate) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type        TxType          `json:"type"`
		Category    string          `json:"category"`
		Amount      decimal.Decimal `json:"amount"`
		Note        string          `json:"note"`
		Period      Recurrence      `json:"recurring"`
		LastApplied Date            `json:"lastApplied"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*r = RecurringTemplate{
		Type:        temp.Type,
		Category:    temp.Category,
		Amount:      temp.Amount,
		Note:        temp.Note,
		Period:      temp.Period,
		LastApplied: temp.LastApplied,
	}
	return nil
}

// upsertTemplate seeds a recurring template from tx, or refreshes the
// watermark of the template already covering the same series. A series
// never owns more than one template.
func (p *Profile) upsertTemplate(tx Transaction) {
	for i := range p.Recurring {
		if p.Recurring[i].matches(tx) {
			p.Recurring[i].LastApplied = tx.Date
			return
		}
	}
	p.Recurring = append(p.Recurring, RecurringTemplate{
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Note:        tx.Note,
		Period:      tx.Recurring,
		LastApplied: tx.Date,
	})
}

// advance returns the cursor moved by exactly one period unit. Monthly
// advances keep the day of month and roll overflow days into the next month
// (2024-01-31 advances to 2024-03-02). The ok result is false for None,
// which is a sentinel and never advances.
func advance(cursor Date, period Recurrence) (next Date, ok bool) {
	switch period {
	case Daily:
		return cursor.Add(1), true
	case Weekly:
		return cursor.Add(7), true
	case Monthly:
		return cursor.AddMonths(1), true
	default:
		return Date{}, false
	}
}

// Materialize generates the concrete transactions due between the template's
// watermark and asOf, one per period step, and returns the template with its
// watermark advanced to the last emitted date. The emitted sequence is
// deterministic, gap-free and strictly increasing; emitted entries carry
// Recurring = None so they never re-seed a template. Calling Materialize
// again with the same asOf emits nothing.
//
// A template whose watermark is already past asOf emits nothing, which is
// not an error.
func Materialize(tpl RecurringTemplate, asOf Date) (RecurringTemplate, []Transaction) {
	var emitted []Transaction
	cursor := tpl.LastApplied
	for {
		next, ok := advance(cursor, tpl.Period)
		if !ok || next.After(asOf) {
			break
		}
		emitted = append(emitted, Transaction{
			ID:        uuid.NewString(),
			Type:      tpl.Type,
			Category:  tpl.Category,
			Amount:    tpl.Amount,
			Date:      next,
			Note:      tpl.Note,
			Recurring: None,
		})
		cursor = next
		tpl.LastApplied = next
	}
	return tpl, emitted
}

// MaterializeRecurring brings every recurring series of the active profile
// current as of the given date and appends the emitted transactions to the
// profile. It returns the number of transactions emitted. Running it twice
// for the same date is idempotent.
func (s *Store) MaterializeRecurring(asOf Date) int {
	p := s.ActiveProfile()
	count := 0
	for i := range p.Recurring {
		updated, emitted := Materialize(p.Recurring[i], asOf)
		p.Recurring[i] = updated
		for _, tx := range emitted {
			tx.CreatedAt = p.nextCreatedAt()
			p.Transactions = append(p.Transactions, tx)
			count++
		}
	}
	return count
}
