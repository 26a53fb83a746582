package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/domainfolio"
	md "github.com/nao1215/markdown"
)

// ForecastMarkdown renders the twelve-month renewal spend projection.
func ForecastMarkdown(forecast []domainfolio.ForecastBucket, from domainfolio.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Renewal Forecast from %s", from))

	if len(forecast) == 0 {
		doc.PlainText("No renewals due in the next twelve months.")
		return doc.String()
	}

	var total domainfolio.Money
	rows := make([][]string, 0, len(forecast))
	for _, b := range forecast {
		rows = append(rows, []string{
			fmt.Sprintf("%s %d", b.Month, b.Year),
			fmt.Sprintf("%d", b.Count),
			b.Amount.String(),
		})
		total = total.Add(b.Amount)
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Renewals", "Amount"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total over twelve months: %s", total))

	return doc.String()
}
