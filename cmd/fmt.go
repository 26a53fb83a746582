package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the portfolio in canonical form"
}
func (*fmtCmd) Usage() string {
	return `dfo fmt

  Reads the portfolio, re-validates every transaction, applies available
  quick-fixes (like resolving fee breakdowns), sorts by date, and writes
  everything back in canonical form. Rewriting an unchanged portfolio is
  byte-identical.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := ledger.Fmt(); err != nil {
		fmt.Fprintln(os.Stderr, "Error formatting portfolio:", err)
		return subcommands.ExitFailure
	}
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, "Successfully formatted the portfolio.")
	return subcommands.ExitSuccess
}
