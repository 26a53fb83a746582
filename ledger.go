package domainfolio

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger is the in-memory portfolio: the domain asset records and the full
// transaction history, kept sorted by date.
type Ledger struct {
	transactions []Transaction
	domains      map[string]*Domain // index domain records by name
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		domains:      make(map[string]*Domain),
	}
}

// Domain returns the domain record registered under this name, or nil if
// unknown.
func (l *Ledger) Domain(name string) *Domain {
	return l.domains[name]
}

// AllDomains returns an iterator over the domain records in alphabetical
// order by name.
func (l *Ledger) AllDomains() iter.Seq[*Domain] {
	return func(yield func(*Domain) bool) {
		for _, name := range slices.Sorted(maps.Keys(l.domains)) {
			if !yield(l.domains[name]) {
				return
			}
		}
	}
}

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (e.g., resolving the fee breakdown of a sale). It returns the
// validated (and potentially modified) transaction or an error detailing any
// validation failures.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	if tx == nil {
		return nil, fmt.Errorf("nil transaction")
	}
	return tx.Validate(l)
}

// append adds transactions without re-sorting, for bulk decoding.
func (l *Ledger) append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Append adds transactions to the ledger and keeps it sorted.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Transactions returns an iterator that yields each transaction in date
// order. Without filters it yields nothing; pass AcceptAll for everything.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AcceptAll is a filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByDomain returns a predicate that filters transactions by domain name.
func ByDomain(name string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Host() == name }
}

// ByCommand returns a predicate that filters transactions by command type.
func ByCommand(cmd CommandType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.What() == cmd }
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// Fmt re-validates every transaction, applying available quick fixes, and
// re-sorts the ledger so encoding produces the canonical form.
func (l *Ledger) Fmt() error {
	for i, tx := range l.transactions {
		fixed, err := l.Validate(tx)
		if err != nil {
			return fmt.Errorf("transaction %d (%s %s on %s): %w", i, tx.What(), tx.Host(), tx.When(), err)
		}
		l.transactions[i] = fixed
	}
	l.stableSort()
	return nil
}

// --- Lifecycle operations ---

// activeDomain resolves a domain that can still renew or sell. Terminal
// guards live here, at recording time, so replaying history through Fmt
// never trips over a domain its own sale made terminal.
func (l *Ledger) activeDomain(name string) (*Domain, error) {
	d := l.Domain(name)
	if d == nil {
		return nil, fmt.Errorf("domain %q not registered in ledger", name)
	}
	if d.Terminal() {
		return nil, fmt.Errorf("domain %q has terminal status %s", name, d.Status)
	}
	return d, nil
}

// Purchase registers a new domain asset and records its acquisition. When the
// record declares past renewals (a renewal count, an actually-paid total, or
// simply an old purchase date), matching renewal transactions are backfilled
// on the purchase anniversaries so the history reads complete. Backfilled
// renewals never touch TotalRenewalPaid: that field stays the authoritative
// actually-paid figure the user declared.
func (l *Ledger) Purchase(d Domain, memo string) ([]Transaction, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if l.Domain(d.Name) != nil {
		return nil, fmt.Errorf("domain %q is already registered", d.Name)
	}
	if d.ID == "" {
		d.ID = NewDomain(d.Name, d.Registrar, d.PurchaseDate, d.PurchaseCost, d.RenewalCost, d.CycleKind, d.CycleYears).ID
	}
	l.domains[d.Name] = &d

	buy := NewBuy(d.PurchaseDate, memo, d.Name, d.Registrar, d.PurchaseCost)
	tx, err := l.Validate(buy)
	if err != nil {
		delete(l.domains, d.Name)
		return nil, err
	}
	txs := []Transaction{tx}

	renewals := ResolveRenewalSpend(d, Today())
	for i := 0; i < renewals.Count; i++ {
		r := NewRenew(d.PurchaseDate.AddYears(d.cycleYears()*(i+1)), "", d.Name, renewals.PerRenewal)
		r.Backfilled = true
		rtx, err := l.Validate(r)
		if err != nil {
			return nil, err
		}
		txs = append(txs, rtx)
	}
	l.Append(txs...)
	return txs, nil
}

// RenewDomain records a renewal payment and rolls the domain's renewal state
// forward: the next renewal date advances by one cycle, the actually-paid
// total and the renewal count accumulate.
func (l *Ledger) RenewDomain(name string, on Date, amount Money, memo string) (Transaction, error) {
	d, err := l.activeDomain(name)
	if err != nil {
		return nil, err
	}
	tx, err := l.Validate(NewRenew(on, memo, name, amount))
	if err != nil {
		return nil, err
	}
	renew := tx.(Renew)

	d.LastRenewalDate = renew.Date
	next := d.NextRenewalDate
	if next.IsZero() {
		next = renew.Date
	}
	d.NextRenewalDate = next.AddYears(d.cycleYears())
	d.NextRenewalAmount = Money{}
	d.TotalRenewalPaid = d.TotalRenewalPaid.Add(renew.Amount)
	d.RenewalCount++

	l.Append(renew)
	return renew, nil
}

// SellDomain records an outright sale. The fee breakdown resolves from
// whichever of gross or fee percentage is given; when neither is, the
// platform's default sale fee applies. The domain becomes sold, a terminal
// state.
func (l *Ledger) SellDomain(name string, on Date, net, gross Money, rate Percent, platform, memo string) (Transaction, error) {
	if _, err := l.activeDomain(name); err != nil {
		return nil, err
	}
	sell := NewSell(on, memo, name, platform, net)
	sell.Gross = gross
	sell.FeeRate = rate
	if gross.IsZero() && rate == 0 {
		sell.FeeRate = DefaultSaleFee(platform)
	}
	tx, err := l.Validate(sell)
	if err != nil {
		return nil, err
	}
	l.domains[name].Status = StatusSold
	l.Append(tx)
	return tx, nil
}

// SellDomainInstallment records a sale paid in monthly installments. The
// schedule comes from the platform's installment terms; an unsupported
// period is an error, never a zero-fee plan. The domain becomes sold.
func (l *Ledger) SellDomainInstallment(name string, on Date, gross Money, platform string, months int, memo string) (Transaction, error) {
	if _, err := l.activeDomain(name); err != nil {
		return nil, err
	}
	plan, err := PlanInstallment(gross, platform, months)
	if err != nil {
		return nil, err
	}
	tx, err := l.Validate(NewInstallmentSell(on, memo, name, gross, plan))
	if err != nil {
		return nil, err
	}
	l.domains[name].Status = StatusSold
	l.Append(tx)
	return tx, nil
}

// RecordTransfer records a registrar transfer and moves the domain's
// registrar when a destination is given. Transfer costs are auxiliary spend:
// they sit outside cost basis and revenue.
func (l *Ledger) RecordTransfer(name string, on Date, amount Money, from, to, memo string) (Transaction, error) {
	tx, err := l.Validate(NewTransfer(on, memo, name, from, to, amount))
	if err != nil {
		return nil, err
	}
	if to != "" {
		l.domains[name].Registrar = to
	}
	l.Append(tx)
	return tx, nil
}

// RecordFee records a miscellaneous charge against a domain.
func (l *Ledger) RecordFee(name string, on Date, amount Money, category, memo string) (Transaction, error) {
	tx, err := l.Validate(NewFee(on, memo, name, category, amount))
	if err != nil {
		return nil, err
	}
	l.Append(tx)
	return tx, nil
}

// SetStatus changes the lifecycle status of one or more domains at once.
func (l *Ledger) SetStatus(status DomainStatus, names ...string) error {
	// check all names before touching any record.
	for _, name := range names {
		if l.Domain(name) == nil {
			return fmt.Errorf("domain %q not registered in ledger", name)
		}
	}
	for _, name := range names {
		l.domains[name].Status = status
	}
	return nil
}

// UpdateDomain replaces the asset record of an already-registered domain.
// The identity is preserved: the record keeps its original ID.
func (l *Ledger) UpdateDomain(d Domain) error {
	existing := l.Domain(d.Name)
	if existing == nil {
		return fmt.Errorf("domain %q not registered in ledger", d.Name)
	}
	if err := d.Validate(); err != nil {
		return err
	}
	d.ID = existing.ID
	*existing = d
	return nil
}

// RemoveDomain deletes a domain record and its entire transaction history.
func (l *Ledger) RemoveDomain(name string) error {
	if l.Domain(name) == nil {
		return fmt.Errorf("domain %q not registered in ledger", name)
	}
	delete(l.domains, name)
	l.transactions = slices.DeleteFunc(l.transactions, func(tx Transaction) bool {
		return tx.Host() == name
	})
	return nil
}

// AdvanceInstallment records collected installments on the domain's
// installment sale: the paid counter advances, the remaining counter drops,
// and the plan completes when nothing remains. This is the only transaction
// mutation the ledger permits.
func (l *Ledger) AdvanceInstallment(name string, payments int) (InstallmentSell, error) {
	if payments <= 0 {
		return InstallmentSell{}, fmt.Errorf("payments must be positive, got %d", payments)
	}
	for i, tx := range l.transactions {
		sale, ok := tx.(InstallmentSell)
		if !ok || sale.Domain != name {
			continue
		}
		if sale.Status == PaymentCompleted {
			return InstallmentSell{}, fmt.Errorf("installment sale of %q is already completed", name)
		}
		sale.Paid += payments
		if sale.Paid > sale.Months {
			sale.Paid = sale.Months
		}
		sale.Remaining = sale.Months - sale.Paid
		sale.Status = PaymentInProgress
		if sale.Remaining == 0 {
			sale.Status = PaymentCompleted
		}
		l.transactions[i] = sale
		return sale, nil
	}
	return InstallmentSell{}, fmt.Errorf("no installment sale recorded for domain %q", name)
}
