package domainfolio

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DomainStatus is the lifecycle state of a domain asset.
type DomainStatus string

const (
	StatusActive  DomainStatus = "active"
	StatusForSale DomainStatus = "for_sale"
	StatusSold    DomainStatus = "sold"
	StatusExpired DomainStatus = "expired"
)

// Terminal reports whether the status is final: a sold or expired domain
// never renews and never sells again.
func (s DomainStatus) Terminal() bool {
	return s == StatusSold || s == StatusExpired
}

func (s DomainStatus) String() string { return string(s) }

// ParseDomainStatus parses a string into a DomainStatus.
func ParseDomainStatus(str string) (DomainStatus, error) {
	switch DomainStatus(str) {
	case StatusActive, StatusForSale, StatusSold, StatusExpired:
		return DomainStatus(str), nil
	default:
		return "", fmt.Errorf("unknown domain status: %q", str)
	}
}

// RenewalCycleKind names the length of a renewal cycle.
type RenewalCycleKind string

const (
	CycleAnnual    RenewalCycleKind = "annual"
	CycleBiennial  RenewalCycleKind = "biennial"
	CycleTriennial RenewalCycleKind = "triennial"
	CycleCustom    RenewalCycleKind = "custom"
)

// Years returns the number of years one renewal payment covers, or 0 for
// custom cycles where the explicit year count on the domain is authoritative.
func (k RenewalCycleKind) Years() int {
	switch k {
	case CycleAnnual:
		return 1
	case CycleBiennial:
		return 2
	case CycleTriennial:
		return 3
	default:
		return 0
	}
}

// ParseRenewalCycleKind parses a string into a RenewalCycleKind.
func ParseRenewalCycleKind(str string) (RenewalCycleKind, error) {
	switch RenewalCycleKind(str) {
	case CycleAnnual, CycleBiennial, CycleTriennial, CycleCustom:
		return RenewalCycleKind(str), nil
	default:
		return "", fmt.Errorf("unknown renewal cycle kind: %q", str)
	}
}

// Domain is the asset record for a single domain name.
type Domain struct {
	ID                string
	Name              string
	Registrar         string
	PurchaseDate      Date
	PurchaseCost      Money
	RenewalCost       Money // cost of one renewal cycle
	CycleYears        int   // years one renewal payment covers
	CycleKind         RenewalCycleKind
	TotalRenewalPaid  Money // authoritative sum of actual renewal payments
	RenewalCount      int   // manually declared number of renewals; a hint, not derived from TotalRenewalPaid
	LastRenewalDate   Date
	NextRenewalDate   Date
	NextRenewalAmount Money
	Status            DomainStatus
	Tags              []string
	EstimatedValue    Money
}

// NewDomain creates a domain asset record for a purchase. The renewal cycle
// years are derived from the kind unless the kind is custom.
func NewDomain(name, registrar string, purchased Date, purchaseCost, renewalCost Money, kind RenewalCycleKind, customYears int) Domain {
	years := kind.Years()
	if years == 0 {
		years = customYears
	}
	if years < 1 {
		years = 1
	}
	return Domain{
		ID:           uuid.NewString(),
		Name:         name,
		Registrar:    registrar,
		PurchaseDate: purchased,
		PurchaseCost: purchaseCost,
		RenewalCost:  renewalCost,
		CycleYears:   years,
		CycleKind:    kind,
		Status:       StatusActive,
	}
}

// Terminal reports whether the domain is in a terminal state.
func (d Domain) Terminal() bool { return d.Status.Terminal() }

// cycleYears returns the renewal cycle length, always at least one year.
func (d Domain) cycleYears() int {
	if d.CycleYears < 1 {
		return 1
	}
	return d.CycleYears
}

// RenewalAmountDue resolves the amount of the upcoming renewal: the recorded
// next renewal amount when present, falling back to the regular renewal cost.
func (d Domain) RenewalAmountDue() Money {
	if !d.NextRenewalAmount.IsZero() {
		return d.NextRenewalAmount
	}
	return d.RenewalCost
}

// Equal reports whether two domain records are identical.
func (d Domain) Equal(o Domain) bool {
	if d.ID != o.ID || d.Name != o.Name || d.Registrar != o.Registrar ||
		d.PurchaseDate != o.PurchaseDate || !d.PurchaseCost.Equal(o.PurchaseCost) ||
		!d.RenewalCost.Equal(o.RenewalCost) || d.CycleYears != o.CycleYears ||
		d.CycleKind != o.CycleKind || !d.TotalRenewalPaid.Equal(o.TotalRenewalPaid) ||
		d.RenewalCount != o.RenewalCount || d.LastRenewalDate != o.LastRenewalDate ||
		d.NextRenewalDate != o.NextRenewalDate || !d.NextRenewalAmount.Equal(o.NextRenewalAmount) ||
		d.Status != o.Status || !d.EstimatedValue.Equal(o.EstimatedValue) ||
		len(d.Tags) != len(o.Tags) {
		return false
	}
	for i := range d.Tags {
		if d.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return true
}

// MarshalJSON implements the json.Marshaler interface for Domain with a
// canonical field order.
func (d Domain) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("name", d.Name)
	w.Optional("registrar", d.Registrar)
	w.Append("purchaseDate", d.PurchaseDate)
	w.Append("purchaseCost", d.PurchaseCost.value)
	w.Append("renewalCost", d.RenewalCost.value)
	w.Optional("currency", d.PurchaseCost.cur)
	w.Append("cycleYears", d.CycleYears)
	w.Append("cycleKind", d.CycleKind)
	if !d.TotalRenewalPaid.IsZero() {
		w.Append("totalRenewalPaid", d.TotalRenewalPaid.value)
	}
	w.Optional("renewalCount", d.RenewalCount)
	if !d.LastRenewalDate.IsZero() {
		w.Append("lastRenewalDate", d.LastRenewalDate)
	}
	if !d.NextRenewalDate.IsZero() {
		w.Append("nextRenewalDate", d.NextRenewalDate)
	}
	if !d.NextRenewalAmount.IsZero() {
		w.Append("nextRenewalAmount", d.NextRenewalAmount.value)
	}
	w.Append("status", d.Status)
	w.Optional("tags", d.Tags)
	if !d.EstimatedValue.IsZero() {
		w.Append("estimatedValue", d.EstimatedValue.value)
	}
	return w.MarshalJSON()
}

// domainRecord is a specialized struct for decoding json.
type domainRecord struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Registrar         string           `json:"registrar"`
	PurchaseDate      Date             `json:"purchaseDate"`
	PurchaseCost      json.Number      `json:"purchaseCost"`
	RenewalCost       json.Number      `json:"renewalCost"`
	Currency          string           `json:"currency"`
	CycleYears        int              `json:"cycleYears"`
	CycleKind         RenewalCycleKind `json:"cycleKind"`
	TotalRenewalPaid  json.Number      `json:"totalRenewalPaid"`
	RenewalCount      int              `json:"renewalCount"`
	LastRenewalDate   Date             `json:"lastRenewalDate"`
	NextRenewalDate   Date             `json:"nextRenewalDate"`
	NextRenewalAmount json.Number      `json:"nextRenewalAmount"`
	Status            DomainStatus     `json:"status"`
	Tags              []string         `json:"tags"`
	EstimatedValue    json.Number      `json:"estimatedValue"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Domain.
func (d *Domain) UnmarshalJSON(data []byte) error {
	var temp domainRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	money := func(n json.Number) (Money, error) {
		if n == "" {
			return Money{}, nil
		}
		v, err := n.Float64()
		if err != nil {
			return Money{}, fmt.Errorf("invalid amount %q: %w", n, err)
		}
		return M(v, temp.Currency), nil
	}
	var err error
	d.ID = temp.ID
	d.Name = temp.Name
	d.Registrar = temp.Registrar
	d.PurchaseDate = temp.PurchaseDate
	if d.PurchaseCost, err = money(temp.PurchaseCost); err != nil {
		return err
	}
	if d.RenewalCost, err = money(temp.RenewalCost); err != nil {
		return err
	}
	d.CycleYears = temp.CycleYears
	d.CycleKind = temp.CycleKind
	if d.TotalRenewalPaid, err = money(temp.TotalRenewalPaid); err != nil {
		return err
	}
	d.RenewalCount = temp.RenewalCount
	d.LastRenewalDate = temp.LastRenewalDate
	d.NextRenewalDate = temp.NextRenewalDate
	if d.NextRenewalAmount, err = money(temp.NextRenewalAmount); err != nil {
		return err
	}
	d.Status = temp.Status
	d.Tags = temp.Tags
	if d.EstimatedValue, err = money(temp.EstimatedValue); err != nil {
		return err
	}
	return nil
}
