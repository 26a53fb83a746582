package domainfolio

import (
	"testing"
	"time"
)

func TestNewDerivedStats(t *testing.T) {
	asof := MustParse("2025-06-10")
	l := testLedger(
		Domain{Name: "active.com", Status: StatusActive, PurchaseDate: MustParse("2025-01-01"), PurchaseCost: M(10, "USD"), RenewalCost: M(12, "USD"), CycleYears: 1, NextRenewalDate: MustParse("2025-07-01")},
		Domain{Name: "listed.com", Status: StatusForSale, PurchaseDate: MustParse("2025-01-01"), PurchaseCost: M(20, "USD"), RenewalCost: M(30, "USD"), CycleYears: 2, NextRenewalDate: MustParse("2026-01-01")},
		Domain{Name: "gone.com", Status: StatusSold, PurchaseDate: MustParse("2025-01-01"), PurchaseCost: M(30, "USD"), RenewalCost: M(10, "USD"), CycleYears: 1},
	)
	l.Append(NewSell(MustParse("2025-05-01"), "", "gone.com", "", M(120, "USD")))

	s := NewDerivedStats(l, asof)
	if s.TotalDomains != 3 || s.ActiveDomains != 1 || s.ForSale != 1 || s.Sold != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 3/1/1/1", s.TotalDomains, s.ActiveDomains, s.ForSale, s.Sold)
	}
	if !s.TotalCost.Equal(M(60, "USD")) {
		t.Errorf("total cost = %s, want 60", s.TotalCost)
	}
	if !s.TotalRevenue.Equal(M(120, "USD")) {
		t.Errorf("total revenue = %s, want 120", s.TotalRevenue)
	}
	if !s.TotalProfit.Equal(M(60, "USD")) {
		t.Errorf("total profit = %s, want 60", s.TotalProfit)
	}
	if !s.PortfolioROI.Equal(100) {
		t.Errorf("portfolio roi = %s, want 100%%", s.PortfolioROI)
	}
	// active.com renews within 30 days of June 10, listed.com does not.
	if s.ExpiringWithin30Days != 1 {
		t.Errorf("expiring within 30 days = %d, want 1", s.ExpiringWithin30Days)
	}
	// annualized: 12 + 30/2, the sold domain excluded.
	if !s.RenewalBudget.Equal(M(27, "USD")) {
		t.Errorf("renewal budget = %s, want 27", s.RenewalBudget)
	}
}

func TestDerivedStatsRoundTrip(t *testing.T) {
	want := DerivedStats{
		TotalDomains: 3, ActiveDomains: 1, ForSale: 1, Sold: 1,
		TotalCost: M(60, "USD"), TotalRevenue: M(120, "USD"), TotalProfit: M(60, "USD"),
		PortfolioROI: 100, AverageROI: 33.33,
		ExpiringWithin30Days: 1, RenewalBudget: M(27, "USD"),
	}
	data, err := want.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got DerivedStats
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got.TotalDomains != want.TotalDomains || !got.TotalCost.Equal(want.TotalCost) ||
		!got.TotalProfit.Equal(want.TotalProfit) || !got.PortfolioROI.Equal(want.PortfolioROI) ||
		!got.AverageROI.Equal(want.AverageROI) || !got.RenewalBudget.Equal(want.RenewalBudget) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStatsCache(t *testing.T) {
	asof := MustParse("2025-06-10")
	l := testLedger(Domain{Name: "a.com", Status: StatusActive, PurchaseDate: asof, PurchaseCost: M(10, "USD"), RenewalCost: M(12, "USD"), CycleYears: 1})
	cache := NewStatsCache(time.Minute)

	before := cache.Get(l, asof)
	if before.TotalDomains != 1 {
		t.Fatalf("total domains = %d, want 1", before.TotalDomains)
	}

	b := Domain{Name: "b.com", Status: StatusActive, PurchaseDate: asof, PurchaseCost: M(10, "USD"), RenewalCost: M(12, "USD"), CycleYears: 1}
	l.domains[b.Name] = &b

	// without invalidation the summary is served stale.
	if stale := cache.Get(l, asof); stale.TotalDomains != 1 {
		t.Errorf("stale read = %d domains, want the cached 1", stale.TotalDomains)
	}
	cache.Invalidate()
	if fresh := cache.Get(l, asof); fresh.TotalDomains != 2 {
		t.Errorf("fresh read = %d domains, want 2", fresh.TotalDomains)
	}
}
