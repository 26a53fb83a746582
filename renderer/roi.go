package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/domainfolio"
	md "github.com/nao1215/markdown"
)

// ROIMarkdown renders the per-domain performance ranking.
func ROIMarkdown(returns []domainfolio.DomainReturn, on domainfolio.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Domain Performance on %s", on))

	if len(returns) == 0 {
		doc.PlainText("No domains in the portfolio.")
		return doc.String()
	}

	rows := make([][]string, 0, len(returns))
	for i, r := range returns {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Domain.Name,
			string(r.Domain.Status),
			r.Cost.String(),
			r.Revenue.String(),
			r.Profit.SignedString(),
			r.ROI.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Domain", "Status", "Cost Basis", "Revenue", "Profit", "ROI"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Average ROI: %s (unweighted)", domainfolio.AverageROI(returns).SignedString()))

	return doc.String()
}
