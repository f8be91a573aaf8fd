package renderer

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	md "github.com/nao1215/markdown"
	cashie "github.com/precisionstudios/cashie"
	"github.com/shopspring/decimal"
)

// SummaryMarkdown generates the monthly summary report: income, expense and
// balance totals, followed by per-category budget utilization for the
// expense categories of the month. An empty yearMonth summarizes the whole
// profile history.
func SummaryMarkdown(s *cashie.Store, yearMonth string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	txs := cashie.FilterByMonth(s.ActiveProfile().Transactions, yearMonth)
	totals := cashie.Aggregate(txs)

	title := "Summary"
	if yearMonth != "" {
		title = fmt.Sprintf("Summary for %s", yearMonth)
	}
	doc.H1(title)
	doc.Table(md.TableSet{
		Header: []string{"Income", "Expense", "Balance"},
		Rows: [][]string{{
			cashie.M(totals.Income, s.Currency).String(),
			cashie.M(totals.Expense, s.Currency).String(),
			cashie.M(totals.Balance, s.Currency).String(),
		}},
	})
	doc.Build()

	ConditionalBlock(&buf, func(w io.Writer) bool {
		return writeBudgets(w, s, txs)
	})
	return buf.String()
}

// writeBudgets writes the per-category budget table and reports whether
// anything was spent. A transaction whose category no longer exists still
// shows its spend, with "—" in place of the budget columns.
func writeBudgets(w io.Writer, s *cashie.Store, txs []cashie.Transaction) bool {
	spend := cashie.CategorySpend(txs, "")
	if len(spend) == 0 {
		return false
	}
	names := make([]string, 0, len(spend))
	for name := range spend {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows [][]string
	for _, name := range names {
		spent := cashie.M(spend[name], s.Currency)
		cat := s.CategoryByName(name)
		if cat == nil || !cat.MonthlyBudget.IsPositive() {
			rows = append(rows, []string{name, spent.String(), "—", "—"})
			continue
		}
		pct := cashie.BudgetUtilization(spend[name], cat.MonthlyBudget)
		rows = append(rows, []string{
			name,
			spent.String(),
			cashie.M(cat.MonthlyBudget, s.Currency).String(),
			fmt.Sprintf("%s%%", pct.Round(1)),
		})
	}

	doc := md.NewMarkdown(w)
	doc.H2("Spending by category")
	doc.Table(md.TableSet{
		Header: []string{"Category", "Spent", "Budget", "Used"},
		Rows:   rows,
	})
	doc.Build()
	return true
}

// GoalsMarkdown generates the savings goals report with per-goal progress.
func GoalsMarkdown(s *cashie.Store) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings goals")
	if len(s.Goals) == 0 {
		doc.PlainText("No goals yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.Goals))
	for _, g := range s.Goals {
		rows = append(rows, []string{
			g.Name,
			cashie.M(g.Saved, s.Currency).String(),
			cashie.M(g.Target, s.Currency).String(),
			fmt.Sprintf("%s%%", goalProgress(g).Round(1)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Saved", "Target", "Progress"},
		Rows:   rows,
	})
	return doc.String()
}

// goalProgress is the saved share of the target capped at 100. A zero
// target reads as 0%.
func goalProgress(g cashie.Goal) decimal.Decimal {
	return cashie.BudgetUtilization(g.Saved, g.Target)
}
