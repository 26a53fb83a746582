package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/domainfolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the at-a-glance portfolio summary.
func SummaryMarkdown(s domainfolio.DerivedStats, on domainfolio.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", on))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Domains", fmt.Sprintf("%d", s.TotalDomains)},
			{"Active", fmt.Sprintf("%d", s.ActiveDomains)},
			{"For sale", fmt.Sprintf("%d", s.ForSale)},
			{"Sold", fmt.Sprintf("%d", s.Sold)},
			{"Expiring within 30 days", fmt.Sprintf("%d", s.ExpiringWithin30Days)},
		},
	})

	doc.H2("Financials")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total cost basis", s.TotalCost.String()},
			{"Total revenue", s.TotalRevenue.String()},
			{"Total profit", s.TotalProfit.SignedString()},
			{"Portfolio ROI", s.PortfolioROI.SignedString()},
			{"Average ROI", s.AverageROI.SignedString()},
			{"Yearly renewal budget (annualized)", s.RenewalBudget.String()},
		},
	})

	return doc.String()
}
