package cashie

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fixtureTransactions builds a small two-month ledger for the query tests.
func fixtureTransactions(t *testing.T) []Transaction {
	t.Helper()
	build := func(typ TxType, category string, amount int64, day Date, note string) Transaction {
		tx, err := NewTransaction(typ, category, decimal.NewFromInt(amount), day, note, "", None)
		if err != nil {
			t.Fatal(err)
		}
		return tx
	}
	return []Transaction{
		build(Income, "Salary", 3000, NewDate(2026, time.July, 1), "payday"),
		build(Expense, "Groceries", 120, NewDate(2026, time.July, 5), "weekly shop"),
		build(Expense, "Rent", 1200, NewDate(2026, time.August, 1), ""),
		build(Expense, "Groceries", 80, NewDate(2026, time.August, 3), "market"),
		build(Income, "Salary", 3000, NewDate(2026, time.August, 1), "payday"),
	}
}

func TestAggregate(t *testing.T) {
	totals := Aggregate(fixtureTransactions(t))

	if !totals.Income.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("Income = %s, want 6000", totals.Income)
	}
	if !totals.Expense.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("Expense = %s, want 1400", totals.Expense)
	}
	if !totals.Balance.Equal(totals.Income.Sub(totals.Expense)) {
		t.Errorf("Balance = %s, want income minus expense", totals.Balance)
	}
}

func TestMonths(t *testing.T) {
	got := Months(fixtureTransactions(t))
	want := []string{"2026-08", "2026-07"}

	if len(got) != len(want) {
		t.Fatalf("Months() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Months()[%d] = %q, want %q (most recent first)", i, got[i], want[i])
		}
	}
}

func TestFilterByMonth(t *testing.T) {
	txs := fixtureTransactions(t)

	august := FilterByMonth(txs, "2026-08")
	if len(august) != 3 {
		t.Errorf("FilterByMonth(2026-08) = %d transactions, want 3", len(august))
	}
	if got := FilterByMonth(txs, ""); len(got) != len(txs) {
		t.Errorf("FilterByMonth(\"\") = %d transactions, want all %d", len(got), len(txs))
	}
	if got := FilterByMonth(txs, "2020-01"); len(got) != 0 {
		t.Errorf("FilterByMonth(2020-01) = %d transactions, want 0", len(got))
	}
}

func TestSearch(t *testing.T) {
	txs := fixtureTransactions(t)

	tests := []struct {
		query string
		want  int
	}{
		{"groceries", 2}, // case-insensitive category match
		{"PAYDAY", 2},    // note match
		{"2026-08", 3},   // date match
		{"", 5},          // empty query matches all
		{"nothing-here", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := Search(txs, tt.query); len(got) != tt.want {
				t.Errorf("Search(%q) = %d transactions, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestSortForDisplay(t *testing.T) {
	txs := fixtureTransactions(t)
	sorted := SortForDisplay(txs)

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Date.After(sorted[i-1].Date) {
			t.Fatalf("SortForDisplay() not most recent first: %v before %v", sorted[i-1].Date, sorted[i].Date)
		}
	}
	// The input order is untouched.
	if txs[0].Date != NewDate(2026, time.July, 1) {
		t.Error("SortForDisplay() mutated its input")
	}
}

func TestCategorySpend(t *testing.T) {
	spend := CategorySpend(fixtureTransactions(t), "2026-08")

	if !spend["Rent"].Equal(decimal.NewFromInt(1200)) {
		t.Errorf("Rent spend = %s, want 1200", spend["Rent"])
	}
	if !spend["Groceries"].Equal(decimal.NewFromInt(80)) {
		t.Errorf("Groceries spend = %s, want 80", spend["Groceries"])
	}
	// Income never counts as spend.
	if _, ok := spend["Salary"]; ok {
		t.Error("income category shows up in spend")
	}
}

func TestBudgetUtilization(t *testing.T) {
	tests := []struct {
		name   string
		spent  int64
		budget int64
		want   string
	}{
		{"half", 200, 400, "50"},
		{"full", 400, 400, "100"},
		{"over budget caps at 100", 900, 400, "100"},
		{"zero budget reads as zero", 200, 0, "0"},
		{"nothing spent", 0, 400, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetUtilization(decimal.NewFromInt(tt.spent), decimal.NewFromInt(tt.budget))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("BudgetUtilization(%d, %d) = %s, want %s", tt.spent, tt.budget, got, tt.want)
			}
		})
	}
}
