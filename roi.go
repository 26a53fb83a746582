package domainfolio

import "sort"

// ROI returns the return on investment of a revenue against a cost, as a
// percentage. A zero or negative cost yields 0%, never NaN or infinity: an
// unsold free acquisition reads as break-even, not as an infinite return.
func ROI(cost, revenue Money) Percent {
	if !cost.IsPositive() {
		return 0
	}
	return revenue.Sub(cost).RateOf(cost)
}

// DomainReturn is the per-domain performance line of an ROI report.
type DomainReturn struct {
	Domain  *Domain
	Cost    Money
	Revenue Money
	Profit  Money
	ROI     Percent
}

// Returns computes the performance of every domain in the ledger as of the
// given date, in alphabetical order by name.
func Returns(l *Ledger, asof Date) []DomainReturn {
	var returns []DomainReturn
	for d := range l.AllDomains() {
		cost := CostBasis(*d, asof)
		revenue := DomainProceeds(l, d.Name).Net
		returns = append(returns, DomainReturn{
			Domain:  d,
			Cost:    cost,
			Revenue: revenue,
			Profit:  revenue.Sub(cost),
			ROI:     ROI(cost, revenue),
		})
	}
	return returns
}

// RankByROI orders returns by descending ROI. The sort is stable: domains
// with equal ROI keep their alphabetical order.
func RankByROI(returns []DomainReturn) []DomainReturn {
	ranked := make([]DomainReturn, len(returns))
	copy(ranked, returns)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ROI > ranked[j].ROI
	})
	return ranked
}

// AverageROI returns the unweighted mean ROI across the given returns. Every
// domain counts the same regardless of its cost, so a cheap outlier can skew
// the figure; the portfolio-level ROI over summed cost and revenue is the
// robust companion number.
func AverageROI(returns []DomainReturn) Percent {
	if len(returns) == 0 {
		return 0
	}
	var sum float64
	for _, r := range returns {
		sum += float64(r.ROI)
	}
	return Percent(sum / float64(len(returns)))
}

// PortfolioROI returns the capital-weighted ROI: recognized revenue over the
// summed cost basis of the whole ledger.
func PortfolioROI(l *Ledger, asof Date) Percent {
	return ROI(PortfolioCost(l, asof), PortfolioProceeds(l).Net)
}
