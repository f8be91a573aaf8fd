// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	cashie "github.com/precisionstudios/cashie"
)

// Commands lists every subcommand of the application.
// A main package registers them all and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&rmCmd{},
	&summaryCmd{},
	&profileCmd{},
	&categoryCmd{},
	&goalCmd{},
	&exportCmd{},
	&importCmd{},
	&changelogCmd{},
	&clearCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", cashie.DefaultStoreFile, "Path to the ledger store file (JSON format)")

// DecodeStore is the central function to open the persisted store. It brings
// every recurring series of the active profile current as of today, and
// persists right away when that emitted anything, the way the original
// application catches up on startup.
func DecodeStore() (*cashie.Store, error) {
	s, err := cashie.LoadStore(*storeFile)
	if err != nil {
		var parseErr *cashie.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("warning, store file %q is corrupt (%v), starting from a fresh store", *storeFile, err)
		} else {
			return nil, err
		}
	}
	if n := s.MaterializeRecurring(cashie.Today()); n > 0 {
		log.Printf("materialized %d recurring transaction(s)", n)
		if err := cashie.SaveStore(*storeFile, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// EncodeStore persists the store back to the app store file.
func EncodeStore(s *cashie.Store) error {
	return cashie.SaveStore(*storeFile, s)
}

// printMarkdown renders a markdown report for the terminal. When rendering
// fails, or stdout is not a terminal worth styling, the raw markdown is
// still printed.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status, to keep Execute
// bodies short.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}
