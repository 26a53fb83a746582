package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/domainfolio"
	md "github.com/nao1215/markdown"
)

// RenewalsMarkdown renders the upcoming-renewal reminders, soonest first.
func RenewalsMarkdown(reminders []domainfolio.Reminder, on domainfolio.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Upcoming Renewals on %s", on))

	if len(reminders) == 0 {
		doc.PlainText("Nothing due within the reminder thresholds.")
		return doc.String()
	}

	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		rows = append(rows, []string{
			r.Domain.Name,
			r.Domain.NextRenewalDate.String(),
			fmt.Sprintf("%d", r.Days),
			r.Amount.String(),
			string(r.Priority),
			fmt.Sprintf("≤%dd", r.Threshold),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Domain", "Due", "Days Left", "Amount", "Priority", "Threshold"},
		Rows:   rows,
	})

	return doc.String()
}
