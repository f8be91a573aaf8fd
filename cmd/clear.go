package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "erase all data and start over" }
func (*clearCmd) Usage() string {
	return `cashie clear -force

  Resets the store to its factory state: one empty Default profile and the
  starter categories. This cannot be undone.
`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "force", false, "Confirm the reset.")
}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		fmt.Fprintln(os.Stderr, "refusing to erase all data without -force")
		return subcommands.ExitUsageError
	}

	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	s.Reset()
	if err := EncodeStore(s); err != nil {
		return fail(err)
	}

	fmt.Println("Store reset")
	return subcommands.ExitSuccess
}
