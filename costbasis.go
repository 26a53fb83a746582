package domainfolio

// Cost basis reconstruction. The total renewal spend of a domain is rarely
// recorded payment by payment: users import portfolios with partial history.
// The spend resolves through a strict priority chain:
//
//  1. an actually-paid total declared on the record wins,
//  2. else a declared renewal count prices each renewal at the regular cost,
//  3. else the count is inferred from the domain's age and renewal cycle.
//
// Each resolution is deliberately independent of the others: a declared
// total is authoritative even when it disagrees with count × cost.

// RenewalSpendSource names which rule of the priority chain resolved the
// renewal spend.
type RenewalSpendSource int

const (
	// SpendDeclaredTotal means the record carried an actually-paid total.
	SpendDeclaredTotal RenewalSpendSource = iota
	// SpendDeclaredCount means a declared renewal count priced at the
	// regular renewal cost.
	SpendDeclaredCount
	// SpendInferred means the count was derived from the domain's age.
	SpendInferred
)

func (s RenewalSpendSource) String() string {
	switch s {
	case SpendDeclaredTotal:
		return "declared total"
	case SpendDeclaredCount:
		return "declared count"
	case SpendInferred:
		return "inferred"
	}
	return "unknown"
}

// RenewalSpend is the resolved renewal history of a domain: how many
// renewals happened, what each one cost, and the total spend.
type RenewalSpend struct {
	Source     RenewalSpendSource
	Count      int
	PerRenewal Money
	Total      Money
}

// InferredRenewals derives how many renewals a domain must have gone through
// by the given date, from its age and renewal cycle. The year is fixed at
// 365 days, so a domain bought exactly N years ago on the calendar may sit
// one renewal off around the anniversary.
func InferredRenewals(d Domain, asof Date) int {
	days := asof.Sub(d.PurchaseDate)
	if days <= 0 {
		return 0
	}
	return (days / 365) / d.cycleYears()
}

// ResolveRenewalSpend resolves the renewal spend of a domain through the
// priority chain. The per-renewal amount spreads a declared total evenly
// over the resolved count.
func ResolveRenewalSpend(d Domain, asof Date) RenewalSpend {
	if d.TotalRenewalPaid.IsPositive() {
		count := d.RenewalCount
		if count <= 0 {
			count = InferredRenewals(d, asof)
		}
		per := Money{}
		if count > 0 {
			per = d.TotalRenewalPaid.DivInt(count)
		}
		return RenewalSpend{Source: SpendDeclaredTotal, Count: count, PerRenewal: per, Total: d.TotalRenewalPaid}
	}
	if d.RenewalCount > 0 {
		return RenewalSpend{
			Source:     SpendDeclaredCount,
			Count:      d.RenewalCount,
			PerRenewal: d.RenewalCost,
			Total:      d.RenewalCost.MulInt(d.RenewalCount),
		}
	}
	count := InferredRenewals(d, asof)
	return RenewalSpend{
		Source:     SpendInferred,
		Count:      count,
		PerRenewal: d.RenewalCost,
		Total:      d.RenewalCost.MulInt(count),
	}
}

// CostBasis returns the all-in cost of holding a domain as of the given
// date: the purchase cost plus the resolved renewal spend. Transfer and
// miscellaneous fees stay out: cost basis covers acquisition and retention
// only.
func CostBasis(d Domain, asof Date) Money {
	return d.PurchaseCost.Add(ResolveRenewalSpend(d, asof).Total)
}

// PortfolioCost sums the cost basis of every domain in the ledger. Each
// domain resolves independently: no cross-domain state is involved.
func PortfolioCost(l *Ledger, asof Date) Money {
	var total Money
	for d := range l.AllDomains() {
		total = total.Add(CostBasis(*d, asof))
	}
	return total
}
