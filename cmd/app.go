// Package cmd implements the CLI application to manage a domain portfolio.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/domainfolio"
	"github.com/etnz/domainfolio/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&renewCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&collectCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&feeCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&roiCmd{}, "reports")
	c.Register(&renewalsCmd{}, "reports")
	c.Register(&forecastCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&domainsCmd{}, "reports")

	c.Register(&statusCmd{}, "portfolio")
	c.Register(&editCmd{}, "portfolio")
	c.Register(&rmCmd{}, "portfolio")
	c.Register(&fmtCmd{}, "portfolio")
	c.Register(&syncCmd{}, "portfolio")
	c.Register(&assistCmd{}, "portfolio")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var localDB = flag.String("local-db", "domainfolio.db", "Path to the local sqlite mirror")
var currency = flag.String("currency", envOr("DOMAINFOLIO_CURRENCY", "USD"), "Default currency for amounts")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// session is one open connection to the portfolio stores.
type session struct {
	gw    *store.Debouncer
	local *store.Local
	owner string
}

// openSession wires the store stack from the environment: the sqlite mirror
// always, the remote store behind the dual writer when DOMAINFOLIO_REMOTE_URL
// is set.
func openSession() (*session, error) {
	local, err := store.OpenLocal(*localDB)
	if err != nil {
		return nil, err
	}

	var gw store.Gateway = local
	if baseURL := os.Getenv("DOMAINFOLIO_REMOTE_URL"); baseURL != "" {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		remote := store.NewRemote(baseURL, os.Getenv("DOMAINFOLIO_API_KEY"))
		gw = store.NewDual(remote, local, logger)
	}

	return &session{
		gw:    store.NewDebouncer(gw, store.DefaultDebounceWindow),
		local: local,
		owner: envOr("DOMAINFOLIO_OWNER", "default"),
	}, nil
}

// Close flushes pending writes and releases the local store.
func (s *session) Close() error {
	if err := s.gw.Close(context.Background()); err != nil {
		s.local.Close()
		return err
	}
	return s.local.Close()
}

// LoadLedger reads and decodes the portfolio. A portfolio that was never
// saved is an empty ledger, not an error.
func (s *session) LoadLedger(ctx context.Context) (*domainfolio.Ledger, error) {
	domains, err := s.gw.Load(ctx, s.owner, store.KeyDomains)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("could not load domains: %w", err)
	}
	transactions, err := s.gw.Load(ctx, s.owner, store.KeyTransactions)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	ledger, err := domainfolio.DecodeLedger(bytes.NewReader(domains), bytes.NewReader(transactions))
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	return ledger, nil
}

// SaveLedger encodes and stages the portfolio payloads, then flushes them
// through the store in one batch. The derived stats payload rides along so
// other consumers of the store read a current summary.
func (s *session) SaveLedger(ctx context.Context, l *domainfolio.Ledger) error {
	var domains, transactions bytes.Buffer
	if err := domainfolio.EncodeDomains(&domains, l); err != nil {
		return err
	}
	if err := domainfolio.EncodeTransactions(&transactions, l); err != nil {
		return err
	}
	stats, err := domainfolio.NewDerivedStats(l, domainfolio.Today()).MarshalJSON()
	if err != nil {
		return err
	}

	if err := s.gw.Save(ctx, s.owner, store.KeyDomains, domains.Bytes()); err != nil {
		return err
	}
	if err := s.gw.Save(ctx, s.owner, store.KeyTransactions, transactions.Bytes()); err != nil {
		return err
	}
	if err := s.gw.Save(ctx, s.owner, store.KeyStats, stats); err != nil {
		return err
	}
	return s.gw.Flush(ctx)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}
