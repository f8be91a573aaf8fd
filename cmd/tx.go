package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
	"github.com/precisionstudios/cashie/renderer"
)

type txCmd struct {
	month string
	query string
	head  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of the active profile" }
func (*txCmd) Usage() string {
	return `cashie tx [-month <yyyy-mm>] [-q <query>] [-head <n>]

  Lists transactions of the active profile, most recent first, with
  optional month filtering and free-text search.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "month", "", "Only show transactions of the given month (e.g. 2026-08).")
	f.StringVar(&p.query, "q", "", "Only show transactions matching the query.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	txs := s.ActiveProfile().Transactions
	txs = cashie.FilterByMonth(txs, p.month)
	txs = cashie.Search(txs, p.query)
	txs = cashie.SortForDisplay(txs)
	if p.head > 0 && len(txs) > p.head {
		txs = txs[:p.head]
	}

	title := fmt.Sprintf("Transactions (%s)", s.ActiveProfileName)
	if p.month != "" {
		title = fmt.Sprintf("Transactions for %s (%s)", p.month, s.ActiveProfileName)
	}
	printMarkdown(renderer.TransactionsMarkdown(txs, s.Currency, title))
	return subcommands.ExitSuccess
}
