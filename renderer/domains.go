package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/domainfolio"
	md "github.com/nao1215/markdown"
)

// DomainsMarkdown renders the asset inventory under the given view mode.
func DomainsMarkdown(l *domainfolio.Ledger, mode domainfolio.ViewMode, year int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Domains (%s view, %d)", mode, year))

	var rows [][]string
	for d := range l.AllDomains() {
		rows = append(rows, []string{
			d.Name,
			d.Registrar,
			string(d.Status),
			d.PurchaseDate.String(),
			fmt.Sprintf("%dy", d.CycleYears),
			domainfolio.YearlyRenewalCost(*d, mode, year).String(),
			next(*d),
			strings.Join(d.Tags, ", "),
		})
	}
	if rows == nil {
		doc.PlainText("No domains in the portfolio.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Domain", "Registrar", "Status", "Purchased", "Cycle", "Yearly Cost", "Next Renewal", "Tags"},
		Rows:   rows,
	})

	return doc.String()
}

func next(d domainfolio.Domain) string {
	if d.Terminal() || d.NextRenewalDate.IsZero() {
		return "-"
	}
	return d.NextRenewalDate.String()
}
