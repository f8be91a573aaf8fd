package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	typ       string
	category  string
	amount    string
	date      string
	note      string
	method    string
	recurring string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `cashie add -t <income|expense> -c <category> -a <amount> [-d <date>] [-n <note>] [-m <method>] [-r <daily|weekly|monthly>]

  Records a transaction in the active profile. A recurring flag also seeds
  the matching recurring series, so future runs keep emitting it.

Usage Examples:
# Record today's groceries.
$ cashie add -t expense -c Groceries -a 42.50

# Record the monthly rent, recurring from its date on.
$ cashie add -t expense -c Rent -a 1200 -d 2026-08-01 -r monthly
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.typ, "t", "expense", "Transaction type (income, expense).")
	f.StringVar(&p.category, "c", "", "Category name.")
	f.StringVar(&p.amount, "a", "", "Amount in major units, must be positive.")
	f.StringVar(&p.date, "d", "", "Transaction date (defaults to today).")
	f.StringVar(&p.note, "n", "", "Free-form note.")
	f.StringVar(&p.method, "m", "", "Payment method.")
	f.StringVar(&p.recurring, "r", "", "Recurrence period (daily, weekly, monthly).")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := cashie.ParseTxType(p.typ)
	if err != nil {
		return fail(err)
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil {
		return fail(fmt.Errorf("cannot parse amount %q: %w", p.amount, err))
	}
	var day cashie.Date
	if p.date != "" {
		if day, err = cashie.ParseDate(p.date); err != nil {
			return fail(err)
		}
	}
	recurring, err := cashie.ParseRecurrence(p.recurring)
	if err != nil {
		return fail(err)
	}

	tx, err := cashie.NewTransaction(typ, p.category, amount, day, p.note, p.method, recurring)
	if err != nil {
		return fail(err)
	}

	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	if err := s.AddTransaction(tx); err != nil {
		return fail(err)
	}
	if err := EncodeStore(s); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded %s of %s on %s (%s)\n", tx.Type, cashie.M(tx.Amount, s.Currency), tx.Date, tx.ID)
	return subcommands.ExitSuccess
}
