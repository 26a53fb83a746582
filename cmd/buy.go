package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/domainfolio"
	"github.com/google/subcommands"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date       string
	domain     string
	registrar  string
	price      float64
	renewal    float64
	cycle      string
	cycleYears int
	renewals   int
	paid       float64
	next       string
	tags       string
	memo       string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the acquisition of a domain" }
func (*buyCmd) Usage() string {
	return `dfo buy -n <domain> -p <price> -renewal <cost> [-d <date>] [-r <registrar>] [-cycle <kind>] [-renewals <n> | -paid <total>] [-next <date>] [-tags <a,b>] [-m <memo>]

  Registers a new domain asset and records its purchase. Declared past
  renewals (a count or an actually-paid total) are backfilled on the
  purchase anniversaries.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Purchase date (YYYY-MM-DD)")
	f.StringVar(&c.domain, "n", "", "Domain name")
	f.StringVar(&c.registrar, "r", "", "Registrar the domain sits at")
	f.Float64Var(&c.price, "p", 0, "Purchase price")
	f.Float64Var(&c.renewal, "renewal", 0, "Cost of one renewal cycle")
	f.StringVar(&c.cycle, "cycle", "annual", "Renewal cycle kind (annual, biennial, triennial, custom)")
	f.IntVar(&c.cycleYears, "cycle-years", 0, "Years per renewal cycle, for -cycle custom")
	f.IntVar(&c.renewals, "renewals", 0, "Number of past renewals already paid")
	f.Float64Var(&c.paid, "paid", 0, "Total actually paid in past renewals")
	f.StringVar(&c.next, "next", "", "Next renewal date (YYYY-MM-DD)")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.domain == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := domainfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := domainfolio.ParseRenewalCycleKind(c.cycle)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	d := domainfolio.NewDomain(c.domain, c.registrar, day,
		domainfolio.M(c.price, *currency), domainfolio.M(c.renewal, *currency), kind, c.cycleYears)
	d.RenewalCount = c.renewals
	if c.paid > 0 {
		d.TotalRenewalPaid = domainfolio.M(c.paid, *currency)
	}
	if c.next != "" {
		if d.NextRenewalDate, err = domainfolio.ParseDate(c.next); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing next renewal date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.tags != "" {
		d.Tags = strings.Split(c.tags, ",")
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
	txs, err := ledger.Purchase(d, c.memo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded purchase of %s (%d backfilled renewals)\n", c.domain, len(txs)-1)
	return subcommands.ExitSuccess
}
