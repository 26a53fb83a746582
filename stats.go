package domainfolio

import (
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DerivedStats is the at-a-glance portfolio summary. It is entirely derived
// from the ledger: recomputing it is always safe, caching it is only an
// optimization.
type DerivedStats struct {
	TotalDomains         int
	ActiveDomains        int
	ForSale              int
	Sold                 int
	TotalCost            Money
	TotalRevenue         Money
	TotalProfit          Money
	PortfolioROI         Percent
	AverageROI           Percent
	ExpiringWithin30Days int
	RenewalBudget        Money // annualized yearly renewal spend
}

// NewDerivedStats computes the portfolio summary as of the given date.
func NewDerivedStats(l *Ledger, asof Date) DerivedStats {
	s := DerivedStats{
		TotalCost:     PortfolioCost(l, asof),
		TotalRevenue:  PortfolioProceeds(l).Net,
		RenewalBudget: RenewalBudget(l, AnnualizedView, asof.Year()),
	}
	s.TotalProfit = s.TotalRevenue.Sub(s.TotalCost)
	s.PortfolioROI = ROI(s.TotalCost, s.TotalRevenue)
	s.AverageROI = AverageROI(Returns(l, asof))
	for d := range l.AllDomains() {
		s.TotalDomains++
		switch d.Status {
		case StatusActive:
			s.ActiveDomains++
		case StatusForSale:
			s.ForSale++
		case StatusSold:
			s.Sold++
		}
		if d.Terminal() || d.NextRenewalDate.IsZero() {
			continue
		}
		if days := d.NextRenewalDate.Sub(asof); days > 0 && days <= 30 {
			s.ExpiringWithin30Days++
		}
	}
	return s
}

// MarshalJSON implements the json.Marshaler interface for DerivedStats with
// a canonical field order, so the persisted stats payload diffs cleanly.
func (s DerivedStats) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalDomains", s.TotalDomains)
	w.Append("activeDomains", s.ActiveDomains)
	w.Append("forSale", s.ForSale)
	w.Append("sold", s.Sold)
	w.Append("totalCost", s.TotalCost.value)
	w.Append("totalRevenue", s.TotalRevenue.value)
	w.Append("totalProfit", s.TotalProfit.value)
	w.Optional("currency", s.TotalCost.cur)
	w.Append("portfolioROI", s.PortfolioROI)
	w.Append("averageROI", s.AverageROI)
	w.Append("expiringWithin30Days", s.ExpiringWithin30Days)
	w.Append("renewalBudget", s.RenewalBudget.value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for DerivedStats.
func (s *DerivedStats) UnmarshalJSON(data []byte) error {
	var temp struct {
		TotalDomains         int         `json:"totalDomains"`
		ActiveDomains        int         `json:"activeDomains"`
		ForSale              int         `json:"forSale"`
		Sold                 int         `json:"sold"`
		TotalCost            json.Number `json:"totalCost"`
		TotalRevenue         json.Number `json:"totalRevenue"`
		TotalProfit          json.Number `json:"totalProfit"`
		Currency             string      `json:"currency"`
		PortfolioROI         Percent     `json:"portfolioROI"`
		AverageROI           Percent     `json:"averageROI"`
		ExpiringWithin30Days int         `json:"expiringWithin30Days"`
		RenewalBudget        json.Number `json:"renewalBudget"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	money := func(n json.Number) Money {
		v, _ := n.Float64()
		if v == 0 {
			return Money{}
		}
		return M(v, temp.Currency)
	}
	s.TotalDomains = temp.TotalDomains
	s.ActiveDomains = temp.ActiveDomains
	s.ForSale = temp.ForSale
	s.Sold = temp.Sold
	s.TotalCost = money(temp.TotalCost)
	s.TotalRevenue = money(temp.TotalRevenue)
	s.TotalProfit = money(temp.TotalProfit)
	s.PortfolioROI = temp.PortfolioROI
	s.AverageROI = temp.AverageROI
	s.ExpiringWithin30Days = temp.ExpiringWithin30Days
	s.RenewalBudget = money(temp.RenewalBudget)
	return nil
}

const statsKey = "stats"

// StatsCache memoizes the derived portfolio summary between ledger
// mutations. Every mutation path must call Invalidate; a stale summary is
// worse than a slow one.
type StatsCache struct {
	cache *gocache.Cache
}

// NewStatsCache creates a stats cache with the given expiration as a safety
// net on top of explicit invalidation.
func NewStatsCache(expiration time.Duration) *StatsCache {
	return &StatsCache{cache: gocache.New(expiration, 2*expiration)}
}

// Get returns the cached summary, recomputing it from the ledger on a miss.
func (c *StatsCache) Get(l *Ledger, asof Date) DerivedStats {
	if v, ok := c.cache.Get(statsKey); ok {
		return v.(DerivedStats)
	}
	s := NewDerivedStats(l, asof)
	c.cache.Set(statsKey, s, gocache.DefaultExpiration)
	return s
}

// Invalidate drops the cached summary after a ledger mutation.
func (c *StatsCache) Invalidate() {
	c.cache.Delete(statsKey)
}
