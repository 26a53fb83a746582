package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/domainfolio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses a markdown document and returns its heading texts, checking
// on the way that the document is well-formed markdown.
func headings(t *testing.T, source string) []string {
	t.Helper()
	content := []byte(source)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var sb strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				sb.Write(line.Value(content))
			}
			found = append(found, sb.String())
		}
		return ast.WalkContinue, nil
	})
	return found
}

func reportLedger(t *testing.T) *domainfolio.Ledger {
	t.Helper()
	l := domainfolio.NewLedger()
	d := domainfolio.NewDomain("a.com", "Namecheap", domainfolio.MustParse("2023-06-01"),
		domainfolio.M(10, "USD"), domainfolio.M(15, "USD"), domainfolio.CycleAnnual, 0)
	if _, err := l.Purchase(d, ""); err != nil {
		t.Fatal(err)
	}
	l.Domain("a.com").NextRenewalDate = domainfolio.MustParse("2025-06-20")
	return l
}

func TestSummaryMarkdown(t *testing.T) {
	l := reportLedger(t)
	on := domainfolio.MustParse("2025-06-01")
	got := SummaryMarkdown(domainfolio.NewDerivedStats(l, on), on)

	hs := headings(t, got)
	if len(hs) != 2 || !strings.Contains(hs[0], "Portfolio Summary on 2025-06-01") || hs[1] != "Financials" {
		t.Errorf("headings = %v", hs)
	}
	for _, want := range []string{"Total cost basis", "Portfolio ROI", "Yearly renewal budget"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
}

func TestROIMarkdown(t *testing.T) {
	on := domainfolio.MustParse("2025-06-01")
	l := reportLedger(t)
	if _, err := l.SellDomain("a.com", on, domainfolio.M(500, "USD"), domainfolio.Money{}, 0, "Sedo", ""); err != nil {
		t.Fatal(err)
	}

	got := ROIMarkdown(domainfolio.RankByROI(domainfolio.Returns(l, on)), on)
	if !strings.Contains(got, "a.com") || !strings.Contains(got, "Average ROI") {
		t.Errorf("roi report incomplete:\n%s", got)
	}

	empty := ROIMarkdown(nil, on)
	if !strings.Contains(empty, "No domains in the portfolio.") {
		t.Errorf("empty roi report:\n%s", empty)
	}
}

func TestRenewalsMarkdown(t *testing.T) {
	l := reportLedger(t)
	on := domainfolio.MustParse("2025-06-01")

	got := RenewalsMarkdown(domainfolio.Reminders(l, on, nil), on)
	for _, want := range []string{"a.com", "2025-06-20", "medium"} {
		if !strings.Contains(got, want) {
			t.Errorf("renewals report misses %q:\n%s", want, got)
		}
	}

	quiet := RenewalsMarkdown(nil, on)
	if !strings.Contains(quiet, "Nothing due") {
		t.Errorf("quiet renewals report:\n%s", quiet)
	}
}

func TestForecastMarkdown(t *testing.T) {
	l := reportLedger(t)
	from := domainfolio.MustParse("2025-06-01")

	got := ForecastMarkdown(domainfolio.RenewalForecast(l, from), from)
	for _, want := range []string{"June 2025", "Total over twelve months"} {
		if !strings.Contains(got, want) {
			t.Errorf("forecast misses %q:\n%s", want, got)
		}
	}
}

func TestDomainsMarkdown(t *testing.T) {
	l := reportLedger(t)

	got := DomainsMarkdown(l, domainfolio.AnnualizedView, 2025)
	for _, want := range []string{"a.com", "Namecheap", "active", "2025-06-20"} {
		if !strings.Contains(got, want) {
			t.Errorf("domains report misses %q:\n%s", want, got)
		}
	}

	empty := DomainsMarkdown(domainfolio.NewLedger(), domainfolio.AnnualizedView, 2025)
	if !strings.Contains(empty, "No domains in the portfolio.") {
		t.Errorf("empty domains report:\n%s", empty)
	}
}

func TestTransactionLine(t *testing.T) {
	on := domainfolio.MustParse("2025-06-01")
	tests := []struct {
		tx   domainfolio.Transaction
		want string
	}{
		{tx: domainfolio.NewBuy(on, "", "a.com", "Namecheap", domainfolio.M(10, "USD")), want: "Bought a.com for $10.00"},
		{tx: domainfolio.NewRenew(on, "", "a.com", domainfolio.M(15, "USD")), want: "Renewed a.com for $15.00"},
		{tx: domainfolio.NewFee(on, "", "a.com", "escrow", domainfolio.M(25, "USD")), want: "Fee of $25.00 on a.com (escrow)"},
		{tx: domainfolio.NewTransfer(on, "", "a.com", "Namecheap", "Porkbun", domainfolio.M(9, "USD")), want: "Transferred a.com from Namecheap to Porkbun for $9.00"},
	}
	for _, tt := range tests {
		if got := Transaction(tt.tx); got != tt.want {
			t.Errorf("Transaction() = %q, want %q", got, tt.want)
		}
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	l := reportLedger(t)
	got := TransactionsMarkdown(l)
	if !strings.Contains(got, "Bought a.com") {
		t.Errorf("history misses the purchase:\n%s", got)
	}
	onlyRenews := TransactionsMarkdown(l, domainfolio.ByCommand(domainfolio.CmdRenew))
	if strings.Contains(onlyRenews, "Bought") {
		t.Errorf("filter leaked the purchase:\n%s", onlyRenews)
	}
}
