package domainfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
)

// DecodeDomains decodes domain records from a stream of JSONL data, one
// record per line, and registers them in the ledger.
func DecodeDomains(r io.Reader, ledger *Ledger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var d Domain
		if err := json.Unmarshal(lineBytes, &d); err != nil {
			return fmt.Errorf("format error in domain record %q: %w", string(lineBytes), err)
		}
		if ledger.Domain(d.Name) != nil {
			return fmt.Errorf("format error: domain %q is already defined", d.Name)
		}
		ledger.domains[d.Name] = &d
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from input: %w", err)
	}
	return nil
}

// EncodeDomains persists the ledger's domain records to an io.Writer in JSONL
// format, in alphabetical order by name for a canonical, git-friendly output.
func EncodeDomains(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	names := make([]string, 0, len(ledger.domains))
	for name := range ledger.domains {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := json.Marshal(ledger.domains[name])
		if err != nil {
			return fmt.Errorf("failed to marshal domain %q: %w", name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write domain %q: %w", name, err)
		}
	}
	return nil
}
