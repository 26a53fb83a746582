package domainfolio

import "testing"

func TestYearlyRenewalCost(t *testing.T) {
	biennial := Domain{Name: "two.com", RenewalCost: M(30, "USD"), CycleYears: 2, CycleKind: CycleBiennial, NextRenewalDate: MustParse("2026-03-01")}

	tests := []struct {
		name string
		d    Domain
		mode ViewMode
		year int
		want Money
	}{
		{name: "annualized spreads over the cycle", d: biennial, mode: AnnualizedView, year: 2025, want: M(15, "USD")},
		{name: "annualized ignores the year", d: biennial, mode: AnnualizedView, year: 2026, want: M(15, "USD")},
		{name: "actual in the renewal year", d: biennial, mode: ActualView, year: 2026, want: M(30, "USD")},
		{name: "actual off year is zero", d: biennial, mode: ActualView, year: 2025, want: Money{}},
		{
			name: "annual cycle both modes agree in the due year",
			d:    Domain{RenewalCost: M(12, "USD"), CycleYears: 1, NextRenewalDate: MustParse("2025-08-01")},
			mode: ActualView, year: 2025, want: M(12, "USD"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YearlyRenewalCost(tt.d, tt.mode, tt.year); !got.Equal(tt.want) {
				t.Errorf("YearlyRenewalCost = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenewalBudget(t *testing.T) {
	l := testLedger(
		Domain{Name: "a.com", RenewalCost: M(12, "USD"), CycleYears: 1, NextRenewalDate: MustParse("2025-04-01"), Status: StatusActive},
		Domain{Name: "b.com", RenewalCost: M(30, "USD"), CycleYears: 2, NextRenewalDate: MustParse("2026-04-01"), Status: StatusForSale},
		Domain{Name: "sold.com", RenewalCost: M(99, "USD"), CycleYears: 1, NextRenewalDate: MustParse("2025-05-01"), Status: StatusSold},
	)

	// annualized: 12 + 30/2, the sold domain is excluded.
	if got := RenewalBudget(l, AnnualizedView, 2025); !got.Equal(M(27, "USD")) {
		t.Errorf("annualized budget = %s, want 27", got)
	}
	// actual 2025: only a.com renews that year.
	if got := RenewalBudget(l, ActualView, 2025); !got.Equal(M(12, "USD")) {
		t.Errorf("actual 2025 budget = %s, want 12", got)
	}
	// actual 2026: only b.com, at its full cycle cost.
	if got := RenewalBudget(l, ActualView, 2026); !got.Equal(M(30, "USD")) {
		t.Errorf("actual 2026 budget = %s, want 30", got)
	}
}

func TestParseViewMode(t *testing.T) {
	for str, want := range map[string]ViewMode{"annualized": AnnualizedView, "actual": ActualView} {
		got, err := ParseViewMode(str)
		if err != nil {
			t.Fatalf("ParseViewMode(%q): %v", str, err)
		}
		if got != want {
			t.Errorf("ParseViewMode(%q) = %v, want %v", str, got, want)
		}
		if got.String() != str {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), str)
		}
	}
	if _, err := ParseViewMode("quarterly"); err == nil {
		t.Error("ParseViewMode(quarterly) should fail")
	}
}
