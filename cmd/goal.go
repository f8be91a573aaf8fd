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

type goalCmd struct {
	set    string
	target string
	save   string
	id     string
	rm     string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "list savings goals or move money towards them" }
func (*goalCmd) Usage() string {
	return `cashie goal [-set <name> -target <amount> | -save <amount> -id <goal-id> | -rm <goal-id>]

  Without flags, lists the goals with their progress. -set creates a goal
  or retargets the one with the same name. -save adds to a goal's saved
  amount; a negative amount takes money back out, never below zero.
`
}

func (p *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "Create or update the named goal.")
	f.StringVar(&p.target, "target", "", "Target amount for -set.")
	f.StringVar(&p.save, "save", "", "Amount to add to a goal (negative to withdraw).")
	f.StringVar(&p.id, "id", "", "Goal id for -save.")
	f.StringVar(&p.rm, "rm", "", "Remove the goal with this id.")
}

func (p *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case p.set != "":
		target, err := decimal.NewFromString(p.target)
		if err != nil {
			return fail(fmt.Errorf("cannot parse target %q: %w", p.target, err))
		}
		g := cashie.Goal{Name: p.set, Target: target}
		for _, existing := range s.Goals {
			if existing.Name == p.set {
				g = existing
				g.Target = target
				break
			}
		}
		if err := s.AddOrUpdateGoal(g); err != nil {
			return fail(err)
		}
		if err := EncodeStore(s); err != nil {
			return fail(err)
		}
		fmt.Printf("Goal %q saved\n", p.set)
	case p.save != "":
		if p.id == "" {
			return fail(fmt.Errorf("-save requires -id"))
		}
		delta, err := decimal.NewFromString(p.save)
		if err != nil {
			return fail(fmt.Errorf("cannot parse amount %q: %w", p.save, err))
		}
		if err := s.AdjustGoal(p.id, delta); err != nil {
			return fail(err)
		}
		if err := EncodeStore(s); err != nil {
			return fail(err)
		}
		fmt.Printf("Goal %q adjusted by %s\n", p.id, delta)
	case p.rm != "":
		removed := s.RemoveGoal(p.rm)
		if err := EncodeStore(s); err != nil {
			return fail(err)
		}
		if removed {
			fmt.Printf("Goal %q removed\n", p.rm)
		} else {
			fmt.Printf("No goal %q\n", p.rm)
		}
	default:
		printMarkdown(renderer.GoalsMarkdown(s))
	}
	return subcommands.ExitSuccess
}
