package domainfolio

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Static reference data for the marketplaces where domains are listed and
// sold. Unknown platforms fall back to the generic OtherPlatform entry.

// OtherPlatform is the fallback entry for platforms without their own row.
const OtherPlatform = "Other"

// platformSaleFees maps a platform to its default outright-sale fee
// percentage, applied when a sell transaction does not carry an explicit fee.
var platformSaleFees = map[string]Percent{
	"Afternic":  15,
	"Sedo":      15,
	"Dan":       9,
	"GoDaddy":   20,
	"Namecheap": 10,
	OtherPlatform: 10,
}

// installmentTerm is one row of the installment fee schedule.
type installmentTerm struct {
	Rate        Percent
	Description string
}

// platformInstallmentTerms maps a platform to the installment periods it
// offers and the surcharge applied for each. The surcharge is distinct from
// the outright-sale fee: it is added on top of the gross price and financed
// by the buyer over the period.
var platformInstallmentTerms = map[string]map[int]installmentTerm{
	"Afternic": {
		6:  {Rate: 1.5, Description: "6 monthly payments"},
		12: {Rate: 3.0, Description: "12 monthly payments"},
		24: {Rate: 4.5, Description: "24 monthly payments"},
	},
	"Dan": {
		6:  {Rate: 2.0, Description: "6 monthly payments"},
		12: {Rate: 4.0, Description: "12 monthly payments"},
		24: {Rate: 6.0, Description: "24 monthly payments"},
	},
	OtherPlatform: {
		6:  {Rate: 2.5, Description: "6 monthly payments"},
		12: {Rate: 3.5, Description: "12 monthly payments"},
		24: {Rate: 5.0, Description: "24 monthly payments"},
	},
}

// DefaultSaleFee returns the default sale fee percentage for a platform,
// falling back to the generic entry for unknown platforms.
func DefaultSaleFee(platform string) Percent {
	if fee, ok := platformSaleFees[platform]; ok {
		return fee
	}
	return platformSaleFees[OtherPlatform]
}

// AllPlatforms returns the known platform names in sorted order.
func AllPlatforms() []string {
	return slices.Sorted(maps.Keys(platformSaleFees))
}

// InstallmentPeriods returns the installment periods (in months) a platform
// supports, in ascending order. Unknown platforms use the generic terms.
func InstallmentPeriods(platform string) []int {
	terms, ok := platformInstallmentTerms[platform]
	if !ok {
		terms = platformInstallmentTerms[OtherPlatform]
	}
	return slices.Sorted(maps.Keys(terms))
}

// ErrUnsupportedPeriod is returned when a platform does not offer the
// requested installment period. Callers must not proceed with a zero fee.
var ErrUnsupportedPeriod = errors.New("unsupported installment period")

// InstallmentPlan is a derived installment schedule for a sale.
type InstallmentPlan struct {
	Platform    string
	Months      int
	Rate        Percent // surcharge percentage of gross
	Fee         Money   // gross × rate
	Total       Money   // gross + fee, the total installment amount
	Monthly     Money   // total / months
	Description string
}

// PlanInstallment derives the installment schedule for selling at the given
// gross price on a platform over a period of months. The platform falls back
// to the generic entry when unknown; an unsupported period is an error.
func PlanInstallment(gross Money, platform string, months int) (InstallmentPlan, error) {
	terms, ok := platformInstallmentTerms[platform]
	if !ok {
		platform = OtherPlatform
		terms = platformInstallmentTerms[OtherPlatform]
	}
	term, ok := terms[months]
	if !ok {
		return InstallmentPlan{}, fmt.Errorf("%w: %d months on %s", ErrUnsupportedPeriod, months, platform)
	}
	fee := gross.MulRate(term.Rate)
	total := gross.Add(fee)
	return InstallmentPlan{
		Platform:    platform,
		Months:      months,
		Rate:        term.Rate,
		Fee:         fee,
		Total:       total,
		Monthly:     total.DivInt(months),
		Description: term.Description,
	}, nil
}
