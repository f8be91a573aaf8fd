package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
	"github.com/precisionstudios/cashie/renderer"
)

type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show totals and budget utilization for a month" }
func (*summaryCmd) Usage() string {
	return `cashie summary [-month <yyyy-mm>]

  Shows income, expense and balance totals for the month, with spending
  against each category's monthly budget. Defaults to the current month.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "month", "", "Month to summarize (e.g. 2026-08), 'all' for the whole history.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	month := p.month
	switch month {
	case "":
		month = cashie.Today().YearMonth()
	case "all":
		month = ""
	}

	printMarkdown(renderer.SummaryMarkdown(s, month))
	return subcommands.ExitSuccess
}
