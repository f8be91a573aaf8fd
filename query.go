package cashie

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Totals is the income/expense/balance aggregate over a transaction list.
// Balance is always Income minus Expense.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Aggregate sums the list into income, expense and balance.
func Aggregate(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// Months returns the distinct year-months present in the list, most recent
// first. This is the order month filters are displayed in.
func Months(txs []Transaction) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, tx := range txs {
		ym := tx.Date.YearMonth()
		if _, ok := seen[ym]; !ok {
			seen[ym] = struct{}{}
			months = append(months, ym)
		}
	}
	slices.Sort(months)
	slices.Reverse(months)
	return months
}

// FilterByMonth keeps the transactions dated in the given year-month
// ("2006-01"). An empty filter means all months.
func FilterByMonth(txs []Transaction, yearMonth string) []Transaction {
	if yearMonth == "" {
		return txs
	}
	var out []Transaction
	for _, tx := range txs {
		if tx.Date.YearMonth() == yearMonth {
			out = append(out, tx)
		}
	}
	return out
}

// Search keeps the transactions whose display fields contain the query as a
// case-insensitive substring. An empty query matches everything.
func Search(txs []Transaction, query string) []Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return txs
	}
	var out []Transaction
	for _, tx := range txs {
		if strings.Contains(tx.searchText(), query) {
			out = append(out, tx)
		}
	}
	return out
}

// SortForDisplay returns the list ordered most recent first, with the
// insertion sequence breaking ties within a day.
func SortForDisplay(txs []Transaction) []Transaction {
	out := slices.Clone(txs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[j].Date.Before(out[i].Date)
		}
		return out[j].CreatedAt < out[i].CreatedAt
	})
	return out
}

// CategorySpend sums the expense-type amounts of the given month grouped by
// category reference. Dangling references group under their stored name.
func CategorySpend(txs []Transaction, yearMonth string) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal)
	for _, tx := range FilterByMonth(txs, yearMonth) {
		if tx.Type != Expense {
			continue
		}
		spend[tx.Category] = spend[tx.Category].Add(tx.Amount)
	}
	return spend
}

// BudgetUtilization is the spent share of a monthly budget as a percentage
// capped at 100. A zero budget means "no budget set" and reads as 0%, not a
// division error.
func BudgetUtilization(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	pct := spent.Mul(decimal.NewFromInt(100)).Div(budget)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}
