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

// roiCmd holds the flags for the 'roi' subcommand.
type roiCmd struct {
	date string
}

func (*roiCmd) Name() string     { return "roi" }
func (*roiCmd) Synopsis() string { return "rank domains by return on investment" }
func (*roiCmd) Usage() string {
	return `dfo roi [-d <date>]

  Ranks every domain by ROI, with its cost basis, recognized revenue and
  profit. Domains with equal ROI keep their alphabetical order.
`
}

func (c *roiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Date for the report (YYYY-MM-DD)")
}

func (c *roiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := domainfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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
	ranked := domainfolio.RankByROI(domainfolio.Returns(ledger, on))
	printMarkdown(renderer.ROIMarkdown(ranked, on))
	return subcommands.ExitSuccess
}
