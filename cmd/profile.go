package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/precisionstudios/cashie/renderer"
)

type profileCmd struct {
	create string
	use    string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "list, create or switch profiles" }
func (*profileCmd) Usage() string {
	return `cashie profile [-create <name> | -use <name>]

  Without flags, lists the profiles. -create makes a new empty profile and
  switches to it; creating an existing name only switches. -use switches to
  an existing profile.
`
}

func (p *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.create, "create", "", "Create a profile (and switch to it).")
	f.StringVar(&p.use, "use", "", "Switch to an existing profile.")
}

func (p *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case p.create != "":
		s.CreateProfile(p.create)
		if err := EncodeStore(s); err != nil {
			return fail(err)
		}
		fmt.Printf("Active profile is now %q\n", s.ActiveProfileName)
	case p.use != "":
		if err := s.SetActiveProfile(p.use); err != nil {
			return fail(err)
		}
		if err := EncodeStore(s); err != nil {
			return fail(err)
		}
		fmt.Printf("Active profile is now %q\n", s.ActiveProfileName)
	default:
		printMarkdown(renderer.ProfilesMarkdown(s))
	}
	return subcommands.ExitSuccess
}
