package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
	"github.com/precisionstudios/cashie/renderer"
	"github.com/shopspring/decimal"
)

type categoryCmd struct {
	set    string
	color  string
	budget string
	rm     string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list, define or remove spending categories" }
func (*categoryCmd) Usage() string {
	return `cashie category [-set <name> [-color <hex>] [-budget <amount>] | -rm <id>]

  Without flags, lists the categories. -set creates a category or updates
  the one with the same name. Removing a category keeps its transactions,
  which then report under their stored category name.
`
}

func (p *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "Create or update the named category.")
	f.StringVar(&p.color, "color", "", "Display color, e.g. #60a5fa.")
	f.StringVar(&p.budget, "budget", "", "Monthly budget in major units, 0 to unset.")
	f.StringVar(&p.rm, "rm", "", "Remove the category with this id.")
}

func (p *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case p.set != "":
		cat := cashie.Category{Name: p.set, Color: p.color}
		if existing := s.CategoryByName(p.set); existing != nil {
			cat = *existing
			if p.color != "" {
				cat.Color = p.color
			}
		}
		if p.budget != "" {
			budget, err := decimal.NewFromString(p.budget)
			if err != nil {
				return fail(fmt.Errorf("cannot parse budget %q: %w", p.budget, err))
			}
			cat.MonthlyBudget = budget
		}
		if err := s.AddOrUpdateCategory(cat); err != nil {
			return fail(err)
		}
		if err := EncodeStore(s); err != nil {
			return fail(err)
		}
		fmt.Printf("Category %q saved\n", p.set)
	case p.rm != "":
		removed := s.RemoveCategory(p.rm)
		if err := EncodeStore(s); err != nil {
			return fail(err)
		}
		if removed {
			fmt.Printf("Category %q removed\n", p.rm)
		} else {
			fmt.Printf("No category %q\n", p.rm)
		}
	default:
		printMarkdown(renderer.CategoriesMarkdown(s))
	}
	return subcommands.ExitSuccess
}
