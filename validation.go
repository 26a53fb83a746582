package domainfolio

import (
	"fmt"
	"regexp"
	"strings"
)

// Upstream input contract: domain names are hostnames, numeric inputs are
// clamped to a sane range, and dates must be plausible. These checks run at
// the edit boundary before records reach the ledger.

const maxDomainNameLen = 253

// maxAmount is the upper clamp for any user-provided numeric input.
const maxAmount = 1_000_000

var hostnameRE = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,63}$`)

// ValidateDomainName checks that the name is a plausible hostname.
func ValidateDomainName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("domain name is missing")
	}
	if len(name) > maxDomainNameLen {
		return fmt.Errorf("domain name %q exceeds %d characters", name, maxDomainNameLen)
	}
	if !hostnameRE.MatchString(name) {
		return fmt.Errorf("domain name %q is not a valid hostname", name)
	}
	return nil
}

// ClampAmount clamps a user-provided money amount into [0, 1,000,000].
func ClampAmount(m Money) Money {
	if m.IsNegative() {
		return M(0, m.Currency())
	}
	if m.GreaterThan(M(maxAmount, m.Currency())) {
		return M(maxAmount, m.Currency())
	}
	return m
}

// ValidateDate checks that a date lies within [1900-01-01, today+10y].
func ValidateDate(d Date) error {
	if d.IsZero() {
		return nil
	}
	min := NewDate(1900, 1, 1)
	max := Today().AddYears(10)
	if d.Before(min) || d.After(max) {
		return fmt.Errorf("date %s out of range [%s, %s]", d, min, max)
	}
	return nil
}

// Validate checks the domain record and applies quick fixes: negative or
// oversized amounts are clamped, a renewal cycle below one year is raised to
// one, and a missing status defaults to active.
func (d *Domain) Validate() error {
	if err := ValidateDomainName(d.Name); err != nil {
		return err
	}
	if err := ValidateDate(d.PurchaseDate); err != nil {
		return fmt.Errorf("purchase date: %w", err)
	}
	if err := ValidateDate(d.NextRenewalDate); err != nil {
		return fmt.Errorf("next renewal date: %w", err)
	}
	if err := ValidateDate(d.LastRenewalDate); err != nil {
		return fmt.Errorf("last renewal date: %w", err)
	}
	d.PurchaseCost = ClampAmount(d.PurchaseCost)
	d.RenewalCost = ClampAmount(d.RenewalCost)
	d.TotalRenewalPaid = ClampAmount(d.TotalRenewalPaid)
	d.EstimatedValue = ClampAmount(d.EstimatedValue)
	if d.RenewalCount < 0 {
		d.RenewalCount = 0
	}
	if d.CycleYears < 1 {
		d.CycleYears = 1
	}
	if d.Status == "" {
		d.Status = StatusActive
	} else if _, err := ParseDomainStatus(string(d.Status)); err != nil {
		return err
	}
	return nil
}
