package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "push the local portfolio through the remote store" }
func (*syncCmd) Usage() string {
	return `dfo sync

  Re-saves the portfolio through the configured store stack. With a remote
  store configured, this pushes payloads that earlier degraded to the local
  mirror.
`
}

func (*syncCmd) SetFlags(_ *flag.FlagSet) {}

func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := s.SaveLedger(ctx, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving portfolio:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, "Portfolio synchronized.")
	return subcommands.ExitSuccess
}
