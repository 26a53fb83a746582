package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/domainfolio"
	"github.com/google/subcommands"
)

// feeCmd holds the flags for the 'fee' subcommand.
type feeCmd struct {
	date     string
	domain   string
	amount   float64
	category string
	memo     string
}

func (*feeCmd) Name() string     { return "fee" }
func (*feeCmd) Synopsis() string { return "record a miscellaneous charge against a domain" }
func (*feeCmd) Usage() string {
	return `dfo fee -n <domain> -p <amount> [-d <date>] [-c <category>] [-m <memo>]

  Records an escrow, listing, appraisal or similar charge. Like transfers,
  such charges sit outside cost basis and revenue.
`
}

func (c *feeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Charge date (YYYY-MM-DD)")
	f.StringVar(&c.domain, "n", "", "Domain name")
	f.Float64Var(&c.amount, "p", 0, "Amount paid")
	f.StringVar(&c.category, "c", "", "Kind of fee (escrow, listing, appraisal, ...)")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *feeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.domain == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := domainfolio.ParseDate(c.date)
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
	if _, err := ledger.RecordFee(c.domain, day, domainfolio.M(c.amount, *currency), c.category, c.memo); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded fee of %s on %s\n", domainfolio.M(c.amount, *currency), c.domain)
	return subcommands.ExitSuccess
}
