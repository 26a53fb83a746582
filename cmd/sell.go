package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/domainfolio"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date     string
	domain   string
	platform string
	net      float64
	gross    float64
	fee      float64
	months   int
	memo     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a domain" }
func (*sellCmd) Usage() string {
	return `dfo sell -n <domain> [-d <date>] [-platform <name>] (-net <amount> [-gross <amount> | -fee <percent>] | -gross <amount> -months <n>) [-m <memo>]

  Records the sale of a domain and marks it sold.

  Lump sum: give the net proceeds with -net; the fee resolves from -gross or
  -fee, or from the platform's default fee when neither is given.

  Installments: give the agreed price with -gross and the period with
  -months; the platform's installment terms set the surcharge and the
  monthly payment.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Sale date (YYYY-MM-DD)")
	f.StringVar(&c.domain, "n", "", "Domain name")
	f.StringVar(&c.platform, "platform", domainfolio.OtherPlatform, "Marketplace the sale happened on")
	f.Float64Var(&c.net, "net", 0, "Net proceeds received (lump-sum sale)")
	f.Float64Var(&c.gross, "gross", 0, "Sale price before fees")
	f.Float64Var(&c.fee, "fee", 0, "Fee percentage of gross")
	f.IntVar(&c.months, "months", 0, "Installment period in months (installment sale)")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.domain == "" || (c.net <= 0 && c.gross <= 0) {
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

	var tx domainfolio.Transaction
	if c.months > 0 {
		if c.gross <= 0 {
			fmt.Fprintln(os.Stderr, "Error: an installment sale needs -gross")
			return subcommands.ExitUsageError
		}
		tx, err = ledger.SellDomainInstallment(c.domain, day,
			domainfolio.M(c.gross, *currency), c.platform, c.months, c.memo)
	} else {
		var gross domainfolio.Money
		if c.gross > 0 {
			gross = domainfolio.M(c.gross, *currency)
		}
		tx, err = ledger.SellDomain(c.domain, day,
			domainfolio.M(c.net, *currency), gross, domainfolio.Percent(c.fee), c.platform, c.memo)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}

	switch v := tx.(type) {
	case domainfolio.InstallmentSell:
		fmt.Printf("Recorded installment sale of %s: %s over %d months (%s monthly)\n",
			c.domain, v.Total, v.Months, v.Monthly)
	case domainfolio.Sell:
		fmt.Printf("Recorded sale of %s: %s net (fee %s, %s)\n",
			c.domain, v.Amount, v.FeeAmount, v.FeeRate)
	}
	return subcommands.ExitSuccess
}

// collectCmd holds the flags for the 'collect' subcommand.
type collectCmd struct {
	domain   string
	payments int
}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "record collected installments on an installment sale" }
func (*collectCmd) Usage() string {
	return `dfo collect -n <domain> [-p <payments>]

  Advances the paid installment counter on the domain's installment sale.
  The plan completes when nothing remains.
`
}

func (c *collectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.domain, "n", "", "Domain name")
	f.IntVar(&c.payments, "p", 1, "Number of installments collected")
}

func (c *collectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.domain == "" {
		f.Usage()
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
	sale, err := ledger.AdvanceInstallment(c.domain, c.payments)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %d/%d installments collected (%s)\n", c.domain, sale.Paid, sale.Months, sale.Status)
	return subcommands.ExitSuccess
}
