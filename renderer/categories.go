package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	cashie "github.com/precisionstudios/cashie"
)

// CategoriesMarkdown generates the category listing with colors and
// monthly budgets.
func CategoriesMarkdown(s *cashie.Store) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")
	if len(s.Categories) == 0 {
		doc.PlainText("No categories.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		budget := "—"
		if c.MonthlyBudget.IsPositive() {
			budget = cashie.M(c.MonthlyBudget, s.Currency).String()
		}
		rows = append(rows, []string{c.Name, c.Color, budget})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Color", "Monthly budget"},
		Rows:   rows,
	})
	return doc.String()
}

// ProfilesMarkdown generates the profile listing, the active one marked.
func ProfilesMarkdown(s *cashie.Store) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Profiles")
	items := make([]string, 0, len(s.Profiles))
	for _, name := range s.ProfileNames() {
		if name == s.ActiveProfileName {
			name = name + " (active)"
		}
		items = append(items, name)
	}
	doc.BulletList(items...)
	return doc.String()
}
