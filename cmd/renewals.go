package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/domainfolio"
	"github.com/etnz/domainfolio/renderer"
	"github.com/google/subcommands"
)

// renewalsCmd holds the flags for the 'renewals' subcommand.
type renewalsCmd struct {
	date       string
	thresholds string
}

func (*renewalsCmd) Name() string     { return "renewals" }
func (*renewalsCmd) Synopsis() string { return "list upcoming renewal reminders" }
func (*renewalsCmd) Usage() string {
	return `dfo renewals [-d <date>] [-t <days,days,...>]

  Lists the renewal reminders for the date, soonest first. A domain within
  several thresholds alerts once per crossed threshold.
`
}

func (c *renewalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Date for the reminders (YYYY-MM-DD)")
	f.StringVar(&c.thresholds, "t", "", "Comma-separated day thresholds (default 60,30,7,1)")
}

func (c *renewalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := domainfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var thresholds []int
	if c.thresholds != "" {
		for _, part := range strings.Split(c.thresholds, ",") {
			days, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || days <= 0 {
				fmt.Fprintf(os.Stderr, "Error: invalid threshold %q\n", part)
				return subcommands.ExitUsageError
			}
			thresholds = append(thresholds, days)
		}
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
	reminders := domainfolio.Reminders(ledger, on, thresholds)
	printMarkdown(renderer.RenewalsMarkdown(reminders, on))
	return subcommands.ExitSuccess
}

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	date string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project the renewal spend of the next twelve months" }
func (*forecastCmd) Usage() string {
	return `dfo forecast [-d <date>]

  Projects the renewal spend of the coming twelve months, bucketed by the
  calendar month each renewal falls in.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", domainfolio.Today().String(), "Start of the forecast (YYYY-MM-DD)")
}

func (c *forecastCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := domainfolio.ParseDate(c.date)
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
	forecast := domainfolio.RenewalForecast(ledger, from)
	printMarkdown(renderer.ForecastMarkdown(forecast, from))
	return subcommands.ExitSuccess
}
