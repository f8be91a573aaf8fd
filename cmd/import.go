package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
)

type importCmd struct {
	mode string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a previously exported JSON document" }
func (*importCmd) Usage() string {
	return `cashie import [-mode <replace|merge>] <file>

  Imports a document produced by the export command. A profile document is
  applied to the active profile: replace substitutes its data, merge
  appends (importing twice duplicates entries). A whole-store document
  always replaces the entire store. A malformed document is rejected and
  nothing changes.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.mode, "mode", "replace", "How to reconcile a profile document (replace, merge).")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(p.Usage())
		return subcommands.ExitUsageError
	}
	policy, err := cashie.ParseMergePolicy(p.mode)
	if err != nil {
		return fail(err)
	}

	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(fmt.Errorf("cannot open %q: %w", f.Arg(0), err))
	}
	defer in.Close()

	if err := cashie.ImportDocument(s, in, policy); err != nil {
		return fail(err)
	}
	if err := EncodeStore(s); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported %q (%s)\n", f.Arg(0), policy)
	return subcommands.ExitSuccess
}
