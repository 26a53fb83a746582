package domainfolio

// Revenue recognition. Only sell transactions produce revenue: renewals,
// transfers and miscellaneous fees are spend records. An installment sale
// books its full committed amount at sale time, regardless of how many
// installments have actually been collected.

// SaleProceeds is the recognized revenue of one or more sales.
type SaleProceeds struct {
	Net   Money // what the seller keeps
	Gross Money // the sale price before fees
	Fees  Money // platform fees paid
}

// Add merges two proceeds.
func (p SaleProceeds) Add(o SaleProceeds) SaleProceeds {
	return SaleProceeds{
		Net:   p.Net.Add(o.Net),
		Gross: p.Gross.Add(o.Gross),
		Fees:  p.Fees.Add(o.Fees),
	}
}

// proceedsOf recognizes the revenue of a single transaction. Non-sale
// transactions yield zero proceeds.
func proceedsOf(tx Transaction) SaleProceeds {
	switch v := tx.(type) {
	case Sell:
		gross := v.Gross
		if gross.IsZero() {
			gross = v.Amount
		}
		return SaleProceeds{Net: v.Amount, Gross: gross, Fees: v.FeeAmount}
	case InstallmentSell:
		// The buyer finances the surcharge: the seller keeps the full
		// committed amount.
		return SaleProceeds{Net: v.Total, Gross: v.Total, Fees: v.FeeAmount}
	}
	return SaleProceeds{}
}

// DomainProceeds recognizes the revenue of one domain's sales.
func DomainProceeds(l *Ledger, name string) SaleProceeds {
	var total SaleProceeds
	for _, tx := range l.Transactions(ByDomain(name)) {
		total = total.Add(proceedsOf(tx))
	}
	return total
}

// PortfolioProceeds recognizes the revenue of every sale in the ledger.
func PortfolioProceeds(l *Ledger) SaleProceeds {
	var total SaleProceeds
	for _, tx := range l.Transactions(AcceptAll) {
		total = total.Add(proceedsOf(tx))
	}
	return total
}
