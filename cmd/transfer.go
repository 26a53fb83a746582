package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/domainfolio"
	"github.com/google/subcommands"
)

// transferCmd holds the flags for the 'transfer' subcommand.
type transferCmd struct {
	date   string
	domain string
	from   string
	to     string
	amount float64
	memo   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record a registrar transfer" }
func (*transferCmd) Usage() string {
	return `dfo transfer -n <domain> -to <registrar> [-from <registrar>] [-d <date>] [-p <cost>] [-m <memo>]

  Records moving a domain between registrars. The cost is an auxiliary
  spend: it affects neither cost basis nor revenue.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Transfer date (YYYY-MM-DD)")
	f.StringVar(&c.domain, "n", "", "Domain name")
	f.StringVar(&c.from, "from", "", "Registrar the domain leaves")
	f.StringVar(&c.to, "to", "", "Registrar the domain moves to")
	f.Float64Var(&c.amount, "p", 0, "Transfer cost paid")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.domain == "" || c.to == "" {
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
	if _, err := ledger.RecordTransfer(c.domain, day, domainfolio.M(c.amount, *currency), c.from, c.to, c.memo); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded transfer of %s to %s\n", c.domain, c.to)
	return subcommands.ExitSuccess
}
