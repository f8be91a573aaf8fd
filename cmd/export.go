package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
)

type exportCmd struct {
	all     bool
	profile string
	output  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a profile or the whole store as JSON" }
func (*exportCmd) Usage() string {
	return `cashie export [-all | -profile <name>] [-o <file>]

  Writes the active profile's transactions and recurring templates as a
  portable JSON document, to stdout by default. -all exports the whole
  store, every profile included. The output can be imported back with the
  import command.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.all, "all", false, "Export the whole store instead of one profile.")
	f.StringVar(&p.profile, "profile", "", "Profile to export (defaults to the active one).")
	f.StringVar(&p.output, "o", "", "Write to this file instead of stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if p.output != "" {
		out, err = os.Create(p.output)
		if err != nil {
			return fail(fmt.Errorf("cannot create %q: %w", p.output, err))
		}
		defer out.Close()
	}

	if p.all {
		err = cashie.ExportStore(out, s)
	} else {
		name := p.profile
		if name == "" {
			name = s.ActiveProfileName
		}
		err = cashie.ExportProfile(out, s, name)
	}
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
