package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
	"github.com/precisionstudios/cashie/renderer"
)

type changelogCmd struct {
	repo string
}

func (*changelogCmd) Name() string     { return "changelog" }
func (*changelogCmd) Synopsis() string { return "show the published release notes" }
func (*changelogCmd) Usage() string {
	return `cashie changelog

  Fetches the published releases from the project's forge and renders
  their notes. Falls back to the commit log when no release exists.
`
}

func (p *changelogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.repo, "repo", "PrecisionStudios/cashie", "Repository to fetch releases from (owner/name).")
}

func (p *changelogCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	releases, err := cashie.FetchReleases(ctx, cashie.DailyClient(), cashie.DefaultForge, p.repo)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ChangelogMarkdown(releases))
	return subcommands.ExitSuccess
}
