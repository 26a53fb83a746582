package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/domainfolio"
	"github.com/google/subcommands"
)

// renewCmd holds the flags for the 'renew' subcommand.
type renewCmd struct {
	date   string
	domain string
	amount float64
	memo   string
}

func (*renewCmd) Name() string     { return "renew" }
func (*renewCmd) Synopsis() string { return "record a renewal payment for a domain" }
func (*renewCmd) Usage() string {
	return `dfo renew -n <domain> [-d <date>] [-p <amount>] [-m <memo>]

  Records a renewal payment and rolls the domain's next renewal date forward
  by one cycle. Without -p the domain's regular renewal cost applies.
`
}

func (c *renewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Renewal date (YYYY-MM-DD)")
	f.StringVar(&c.domain, "n", "", "Domain name")
	f.Float64Var(&c.amount, "p", 0, "Amount paid; defaults to the domain's renewal cost")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *renewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.domain == "" {
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
	var amount domainfolio.Money
	if c.amount > 0 {
		amount = domainfolio.M(c.amount, *currency)
	}
	tx, err := ledger.RenewDomain(c.domain, day, amount, c.memo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	d := ledger.Domain(c.domain)
	fmt.Printf("Recorded renewal of %s for %s, next due %s\n", c.domain, tx.(domainfolio.Renew).Amount, d.NextRenewalDate)
	return subcommands.ExitSuccess
}
