package renderer

import (
	"strings"
	"testing"
	"time"

	cashie "github.com/precisionstudios/cashie"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses a markdown report and returns its heading texts, to check
// the reports stay structurally well formed.
func headings(t *testing.T, source string) []string {
	t.Helper()
	root := goldmark.DefaultParser().Parse(text.NewReader([]byte(source)))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Value([]byte(source)))
				}
			}
			out = append(out, b.String())
		}
		return ast.WalkContinue, nil
	})
	return out
}

func reportStore(t *testing.T) *cashie.Store {
	t.Helper()
	s := cashie.NewStore()
	add := func(typ cashie.TxType, category string, amount int64, day cashie.Date) {
		t.Helper()
		tx, err := cashie.NewTransaction(typ, category, decimal.NewFromInt(amount), day, "", "", cashie.None)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	add(cashie.Income, "Salary", 3000, cashie.NewDate(2026, time.August, 1))
	add(cashie.Expense, "Rent", 1200, cashie.NewDate(2026, time.August, 1))
	add(cashie.Expense, "Gone", 50, cashie.NewDate(2026, time.August, 2))
	if err := s.AddOrUpdateCategory(cashie.Category{Name: "Rent", MonthlyBudget: decimal.NewFromInt(1500)}); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTransactionsMarkdown(t *testing.T) {
	s := reportStore(t)
	out := TransactionsMarkdown(s.ActiveProfile().Transactions, s.Currency, "Transactions")

	hs := headings(t, out)
	if len(hs) == 0 || hs[0] != "Transactions" {
		t.Fatalf("headings = %v, want leading Transactions", hs)
	}
	for _, cell := range []string{"Rent", "Salary", "2026-08-01"} {
		if !strings.Contains(out, cell) {
			t.Errorf("report misses %q:\n%s", cell, out)
		}
	}
	// Income carries an explicit plus sign, expenses a minus.
	if !strings.Contains(out, "+") || !strings.Contains(out, "-") {
		t.Errorf("report misses signed amounts:\n%s", out)
	}
}

func TestTransactionsMarkdown_Empty(t *testing.T) {
	out := TransactionsMarkdown(nil, "EUR", "Transactions")
	if !strings.Contains(out, "No transactions.") {
		t.Errorf("empty report = %q", out)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := reportStore(t)
	out := SummaryMarkdown(s, "2026-08")

	hs := headings(t, out)
	if len(hs) < 2 {
		t.Fatalf("headings = %v, want a title and a budget section", hs)
	}
	if hs[0] != "Summary for 2026-08" {
		t.Errorf("title = %q", hs[0])
	}
	// Rent has a budget, the dangling Gone category shows its spend with a
	// placeholder in the budget columns.
	if !strings.Contains(out, "Rent") || !strings.Contains(out, "Gone") {
		t.Errorf("budget table misses categories:\n%s", out)
	}
	if !strings.Contains(out, "—") {
		t.Errorf("dangling category misses its placeholder:\n%s", out)
	}
	if !strings.Contains(out, "80%") {
		t.Errorf("Rent utilization of 1200/1500 should read 80%%:\n%s", out)
	}
}

func TestSummaryMarkdown_NoSpend(t *testing.T) {
	out := SummaryMarkdown(cashie.NewStore(), "2026-08")
	if strings.Contains(out, "Spending by category") {
		t.Errorf("empty month still renders a budget section:\n%s", out)
	}
}

func TestGoalsMarkdown(t *testing.T) {
	s := cashie.NewStore()
	if err := s.AddOrUpdateGoal(cashie.Goal{Name: "Holidays", Target: decimal.NewFromInt(2000), Saved: decimal.NewFromInt(500)}); err != nil {
		t.Fatal(err)
	}
	out := GoalsMarkdown(s)

	if !strings.Contains(out, "Holidays") {
		t.Errorf("report misses the goal:\n%s", out)
	}
	if !strings.Contains(out, "25%") {
		t.Errorf("500/2000 progress should read 25%%:\n%s", out)
	}
}

func TestCategoriesMarkdown(t *testing.T) {
	out := CategoriesMarkdown(cashie.NewStore())
	for _, name := range []string{"Groceries", "Rent", "Salary"} {
		if !strings.Contains(out, name) {
			t.Errorf("report misses starter category %q", name)
		}
	}
}

func TestProfilesMarkdown(t *testing.T) {
	s := cashie.NewStore()
	s.CreateProfile("Business")
	out := ProfilesMarkdown(s)

	if !strings.Contains(out, "Business (active)") {
		t.Errorf("active profile not marked:\n%s", out)
	}
	if !strings.Contains(out, "Default") {
		t.Errorf("report misses the Default profile:\n%s", out)
	}
}

func TestChangelogMarkdown(t *testing.T) {
	releases := []cashie.Release{
		{Tag: "v1.2.0", Name: "Profiles", Date: cashie.NewDate(2026, time.May, 1), Notes: "Adds profiles."},
		{Tag: "v1.1.0", Name: "v1.1.0", Notes: "Fixes."},
	}
	out := ChangelogMarkdown(releases)

	hs := headings(t, out)
	if len(hs) != 3 {
		t.Fatalf("headings = %v, want title plus one per release", hs)
	}
	if hs[1] != "Profiles (2026-05-01)" {
		t.Errorf("release heading = %q", hs[1])
	}
}
