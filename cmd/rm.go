package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction by its id" }
func (*rmCmd) Usage() string {
	return `cashie rm <transaction-id>...

  Deletes transactions from the active profile. Deleting an id that does
  not exist is not an error.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Println(p.Usage())
		return subcommands.ExitUsageError
	}

	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	removed := 0
	for _, id := range f.Args() {
		if s.RemoveTransaction(id) {
			removed++
		}
	}
	if err := EncodeStore(s); err != nil {
		return fail(err)
	}

	fmt.Printf("Removed %d transaction(s)\n", removed)
	return subcommands.ExitSuccess
}
