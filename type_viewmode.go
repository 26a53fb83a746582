package domainfolio

import "fmt"

// ViewMode selects how recurring renewal costs are displayed in reports.
type ViewMode int

const (
	// AnnualizedView spreads each renewal evenly over the years of its
	// cycle, so a biennial domain reads as half its renewal cost per year.
	AnnualizedView ViewMode = iota
	// ActualView charges the full renewal cost to the year the renewal
	// actually falls in, and nothing to the other years.
	ActualView
)

func (m ViewMode) String() string {
	switch m {
	case AnnualizedView:
		return "annualized"
	case ActualView:
		return "actual"
	default:
		return "unknown"
	}
}

// ParseViewMode converts a string to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "annualized":
		return AnnualizedView, nil
	case "actual":
		return ActualView, nil
	default:
		return 0, fmt.Errorf("unknown view mode: %q (must be 'annualized' or 'actual')", s)
	}
}
