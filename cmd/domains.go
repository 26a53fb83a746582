package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/domainfolio"
	"github.com/etnz/domainfolio/renderer"
	"github.com/google/subcommands"
)

// domainsCmd holds the flags for the 'domains' subcommand.
type domainsCmd struct {
	view string
	year int
}

func (*domainsCmd) Name() string     { return "domains" }
func (*domainsCmd) Synopsis() string { return "list the domain assets" }
func (*domainsCmd) Usage() string {
	return `dfo domains [-view annualized|actual] [-year <year>]

  Lists the asset inventory. The view mode controls the yearly cost column:
  annualized spreads each renewal over its cycle, actual charges the full
  renewal to the year it falls in.
`
}

func (c *domainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "annualized", "View mode for the yearly cost (annualized or actual)")
	f.IntVar(&c.year, "year", domainfolio.Today().Year(), "Calendar year for the actual view")
}

func (c *domainsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode, err := domainfolio.ParseViewMode(c.view)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger, err := s.LoadLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DomainsMarkdown(ledger, mode, c.year))
	return subcommands.ExitSuccess
}
