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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	domain  string
	command string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*txCmd) Usage() string {
	return `dfo tx [-n <domain>] [-c <command>]

  Lists the transaction history in date order, optionally filtered by
  domain or by command (buy, renew, sell, transfer, fee).
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.domain, "n", "", "Only transactions of this domain")
	f.StringVar(&c.command, "c", "", "Only transactions of this command type")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	filter := domainfolio.AcceptAll
	switch {
	case c.domain != "" && c.command != "":
		byDomain, byCommand := domainfolio.ByDomain(c.domain), domainfolio.ByCommand(domainfolio.CommandType(c.command))
		filter = func(tx domainfolio.Transaction) bool { return byDomain(tx) && byCommand(tx) }
	case c.domain != "":
		filter = domainfolio.ByDomain(c.domain)
	case c.command != "":
		filter = domainfolio.ByCommand(domainfolio.CommandType(c.command))
	}
	printMarkdown(renderer.TransactionsMarkdown(ledger, filter))
	return subcommands.ExitSuccess
}
