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

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	domain    string
	registrar string
	renewal   float64
	next      string
	nextCost  float64
	value     float64
	tags      string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "update the asset record of a domain" }
func (*editCmd) Usage() string {
	return `dfo edit -n <domain> [-r <registrar>] [-renewal <cost>] [-next <date>] [-next-cost <amount>] [-value <amount>] [-tags <a,b>]

  Updates the mutable fields of a domain record. Only the flags given
  change; the record keeps its identity and history.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.domain, "n", "", "Domain name")
	f.StringVar(&c.registrar, "r", "", "New registrar")
	f.Float64Var(&c.renewal, "renewal", 0, "New cost of one renewal cycle")
	f.StringVar(&c.next, "next", "", "New next renewal date (YYYY-MM-DD)")
	f.Float64Var(&c.nextCost, "next-cost", 0, "Amount of the upcoming renewal, when it differs from the regular cost")
	f.Float64Var(&c.value, "value", 0, "Estimated market value")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags, replacing the current ones")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	existing := ledger.Domain(c.domain)
	if existing == nil {
		fmt.Fprintf(os.Stderr, "Error: domain %q not registered in ledger\n", c.domain)
		return subcommands.ExitFailure
	}

	d := *existing
	if c.registrar != "" {
		d.Registrar = c.registrar
	}
	if c.renewal > 0 {
		d.RenewalCost = domainfolio.M(c.renewal, *currency)
	}
	if c.next != "" {
		if d.NextRenewalDate, err = domainfolio.ParseDate(c.next); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing next renewal date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.nextCost > 0 {
		d.NextRenewalAmount = domainfolio.M(c.nextCost, *currency)
	}
	if c.value > 0 {
		d.EstimatedValue = domainfolio.M(c.value, *currency)
	}
	if c.tags != "" {
		d.Tags = strings.Split(c.tags, ",")
	}

	if err := ledger.UpdateDomain(d); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s\n", c.domain)
	return subcommands.ExitSuccess
}

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	force bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a domain and its transaction history" }
func (*rmCmd) Usage() string {
	return `dfo rm -f <domain>

  Deletes a domain record and every transaction recorded against it. This
  is for undoing mistakes; a sold or lapsed domain should change status
  instead, keeping its history.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the deletion")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: rm deletes the domain's history; pass -f to confirm")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

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
	if err := ledger.RemoveDomain(name); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s\n", name)
	return subcommands.ExitSuccess
}
