package domainfolio

import "testing"

func TestInferredRenewals(t *testing.T) {
	tests := []struct {
		name      string
		purchased string
		asof      string
		cycle     int
		want      int
	}{
		{name: "two full years annual", purchased: "2023-06-01", asof: "2025-06-10", cycle: 1, want: 2},
		{name: "just under one year", purchased: "2024-07-01", asof: "2025-06-30", cycle: 1, want: 0},
		{name: "exactly 365 days", purchased: "2024-06-10", asof: "2025-06-10", cycle: 1, want: 1},
		{name: "biennial four years", purchased: "2021-06-01", asof: "2025-06-10", cycle: 2, want: 2},
		{name: "biennial three years", purchased: "2022-06-01", asof: "2025-06-10", cycle: 2, want: 1},
		{name: "future purchase", purchased: "2026-01-01", asof: "2025-06-10", cycle: 1, want: 0},
		{name: "same day", purchased: "2025-06-10", asof: "2025-06-10", cycle: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Domain{Name: "example.com", PurchaseDate: MustParse(tt.purchased), CycleYears: tt.cycle}
			if got := InferredRenewals(d, MustParse(tt.asof)); got != tt.want {
				t.Errorf("InferredRenewals = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveRenewalSpend(t *testing.T) {
	asof := MustParse("2025-06-10")
	base := Domain{
		Name:         "example.com",
		PurchaseDate: MustParse("2023-06-01"), // two inferred renewals by asof
		PurchaseCost: M(10, "USD"),
		RenewalCost:  M(15, "USD"),
		CycleYears:   1,
	}

	t.Run("declared total wins over everything", func(t *testing.T) {
		d := base
		d.TotalRenewalPaid = M(42, "USD")
		d.RenewalCount = 3 // disagrees with the total on purpose
		spend := ResolveRenewalSpend(d, asof)
		if spend.Source != SpendDeclaredTotal {
			t.Fatalf("source = %s, want declared total", spend.Source)
		}
		if !spend.Total.Equal(M(42, "USD")) {
			t.Errorf("total = %s, want 42", spend.Total)
		}
		if spend.Count != 3 {
			t.Errorf("count = %d, want the declared 3", spend.Count)
		}
		if !spend.PerRenewal.Equal(M(14, "USD")) {
			t.Errorf("per renewal = %s, want 14", spend.PerRenewal)
		}
	})

	t.Run("declared count prices at renewal cost", func(t *testing.T) {
		d := base
		d.RenewalCount = 3
		spend := ResolveRenewalSpend(d, asof)
		if spend.Source != SpendDeclaredCount {
			t.Fatalf("source = %s, want declared count", spend.Source)
		}
		if !spend.Total.Equal(M(45, "USD")) {
			t.Errorf("total = %s, want 3 x 15 = 45", spend.Total)
		}
	})

	t.Run("inferred from age", func(t *testing.T) {
		spend := ResolveRenewalSpend(base, asof)
		if spend.Source != SpendInferred {
			t.Fatalf("source = %s, want inferred", spend.Source)
		}
		if spend.Count != 2 {
			t.Errorf("count = %d, want 2", spend.Count)
		}
		if !spend.Total.Equal(M(30, "USD")) {
			t.Errorf("total = %s, want 2 x 15 = 30", spend.Total)
		}
	})

	t.Run("declared total with no count spreads over inferred", func(t *testing.T) {
		d := base
		d.TotalRenewalPaid = M(42, "USD")
		spend := ResolveRenewalSpend(d, asof)
		if spend.Count != 2 {
			t.Errorf("count = %d, want the inferred 2", spend.Count)
		}
		if !spend.PerRenewal.Equal(M(21, "USD")) {
			t.Errorf("per renewal = %s, want 21", spend.PerRenewal)
		}
	})
}

func TestCostBasis(t *testing.T) {
	asof := MustParse("2025-06-10")

	// A domain bought two years ago for 10 with a 15 yearly renewal has an
	// all-in cost of 10 + 2 x 15 = 40.
	d := Domain{
		Name:         "example.com",
		PurchaseDate: MustParse("2023-06-01"),
		PurchaseCost: M(10, "USD"),
		RenewalCost:  M(15, "USD"),
		CycleYears:   1,
	}
	if got := CostBasis(d, asof); !got.Equal(M(40, "USD")) {
		t.Errorf("CostBasis = %s, want 40", got)
	}

	// Cost basis never drops below the purchase cost.
	fresh := d
	fresh.PurchaseDate = MustParse("2025-06-01")
	if got := CostBasis(fresh, asof); got.LessThan(fresh.PurchaseCost) {
		t.Errorf("CostBasis = %s is below the purchase cost %s", got, fresh.PurchaseCost)
	}

	// A zero cycle is treated as one year, never a division by zero.
	weird := d
	weird.CycleYears = 0
	if got := CostBasis(weird, asof); !got.Equal(M(40, "USD")) {
		t.Errorf("CostBasis with zero cycle = %s, want 40", got)
	}
}

func TestPortfolioCost(t *testing.T) {
	asof := MustParse("2025-06-10")
	l := NewLedger()
	a := Domain{Name: "a.com", PurchaseDate: MustParse("2023-06-01"), PurchaseCost: M(10, "USD"), RenewalCost: M(15, "USD"), CycleYears: 1}
	b := Domain{Name: "b.com", PurchaseDate: MustParse("2025-01-01"), PurchaseCost: M(100, "USD"), RenewalCost: M(20, "USD"), CycleYears: 1}
	l.domains["a.com"] = &a
	l.domains["b.com"] = &b

	want := CostBasis(a, asof).Add(CostBasis(b, asof))
	if got := PortfolioCost(l, asof); !got.Equal(want) {
		t.Errorf("PortfolioCost = %s, want %s", got, want)
	}
}
