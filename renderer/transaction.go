package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/domainfolio"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx domainfolio.Transaction) string {
	switch v := tx.(type) {
	case domainfolio.Buy:
		return fmt.Sprintf("Bought %s for %s", v.Domain, v.Amount)
	case domainfolio.Renew:
		if v.Backfilled {
			return fmt.Sprintf("Renewed %s for %s (backfilled)", v.Domain, v.Amount)
		}
		return fmt.Sprintf("Renewed %s for %s", v.Domain, v.Amount)
	case domainfolio.Sell:
		return fmt.Sprintf("Sold %s for %s net (fee %s)", v.Domain, v.Amount, v.FeeAmount)
	case domainfolio.InstallmentSell:
		return fmt.Sprintf("Sold %s for %s over %d months (%d paid, %s)",
			v.Domain, v.Total, v.Months, v.Paid, v.Status)
	case domainfolio.Transfer:
		return fmt.Sprintf("Transferred %s from %s to %s for %s", v.Domain, v.FromRegistrar, v.ToRegistrar, v.Amount)
	case domainfolio.Fee:
		return fmt.Sprintf("Fee of %s on %s (%s)", v.Amount, v.Domain, v.Category)
	default:
		return string(tx.What())
	}
}

// TransactionsMarkdown renders the transaction history in date order.
func TransactionsMarkdown(l *domainfolio.Ledger, filters ...func(domainfolio.Transaction) bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction History")

	if len(filters) == 0 {
		filters = []func(domainfolio.Transaction) bool{domainfolio.AcceptAll}
	}
	var rows [][]string
	for _, tx := range l.Transactions(filters...) {
		rows = append(rows, []string{
			tx.When().String(),
			string(tx.What()),
			Transaction(tx),
		})
	}
	if rows == nil {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Command", "Details"},
		Rows:   rows,
	})

	return doc.String()
}
