package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/domainfolio"
	"github.com/google/subcommands"
)

// statusCmd holds the flags for the 'status' subcommand.
type statusCmd struct {
	status string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "change the lifecycle status of one or more domains" }
func (*statusCmd) Usage() string {
	return `dfo status -s <status> <domain> [<domain>...]

  Sets the status (active, for_sale, sold, expired) on every listed domain
  at once. Nothing changes unless all names resolve.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "s", "", "Target status (active, for_sale, sold, expired)")
}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.status == "" || f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	status, err := domainfolio.ParseDomainStatus(c.status)
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
	if err := ledger.SetStatus(status, f.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set %d domain(s) to %s\n", f.NArg(), status)
	return subcommands.ExitSuccess
}
