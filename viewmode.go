package domainfolio

// AnnualizedRenewalCost spreads one renewal payment over the years of the
// renewal cycle.
func AnnualizedRenewalCost(d Domain) Money {
	return d.RenewalCost.DivInt(d.cycleYears())
}

// ActualRenewalCost is the renewal cash leaving in the given calendar year:
// the full renewal cost when the next renewal falls in that year, zero
// otherwise.
func ActualRenewalCost(d Domain, year int) Money {
	if !d.NextRenewalDate.IsZero() && d.NextRenewalDate.Year() == year {
		return d.RenewalCost
	}
	return Money{}
}

// YearlyRenewalCost returns a domain's renewal cost for a calendar year
// under the given view mode.
func YearlyRenewalCost(d Domain, mode ViewMode, year int) Money {
	switch mode {
	case ActualView:
		return ActualRenewalCost(d, year)
	default:
		return AnnualizedRenewalCost(d)
	}
}

// RenewalBudget sums the yearly renewal cost of every non-terminal domain
// under the given view mode. Sold and expired domains never renew again and
// stay out of the budget.
func RenewalBudget(l *Ledger, mode ViewMode, year int) Money {
	var total Money
	for d := range l.AllDomains() {
		if d.Terminal() {
			continue
		}
		total = total.Add(YearlyRenewalCost(*d, mode, year))
	}
	return total
}
