package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	cashie "github.com/precisionstudios/cashie"
)

// TransactionsMarkdown generates a markdown report listing transactions,
// most recent first. Income amounts carry an explicit "+" sign, expenses a
// "-" sign.
func TransactionsMarkdown(txs []cashie.Transaction, currency, title string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range cashie.SortForDisplay(txs) {
		rows = append(rows, []string{
			tx.Date.String(),
			string(tx.Type),
			tx.Category,
			signedAmount(tx, currency),
			tx.Note,
			tx.Method,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Type", "Category", "Amount", "Note", "Method"},
		Rows:   rows,
	})
	return doc.String()
}

// signedAmount formats a transaction amount with the sign of its direction.
func signedAmount(tx cashie.Transaction, currency string) string {
	m := cashie.M(tx.Amount, currency)
	if tx.Type == cashie.Expense {
		m = m.Neg()
	}
	return m.SignedString()
}

// ChangelogMarkdown generates a markdown report from published releases,
// newest first as the forge returns them.
func ChangelogMarkdown(releases []cashie.Release) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Changelog")
	if len(releases) == 0 {
		doc.PlainText("No releases published yet.")
		return doc.String()
	}
	for _, r := range releases {
		title := r.Name
		if !r.Date.IsZero() {
			title = fmt.Sprintf("%s (%s)", r.Name, r.Date)
		}
		doc.H2(title)
		if r.Notes != "" {
			doc.PlainText(r.Notes)
		}
	}
	return doc.String()
}
