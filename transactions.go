package domainfolio

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy      CommandType = "buy"
	CmdRenew    CommandType = "renew"
	CmdSell     CommandType = "sell"
	CmdTransfer CommandType = "transfer"
	CmdFee      CommandType = "fee"
)

// PaymentPlan discriminates how a sale is paid.
type PaymentPlan string

const (
	PlanLumpSum      PaymentPlan = "lump_sum"
	PlanInstallments PaymentPlan = "installment"
)

// PaymentStatus is the collection state of an installment sale.
type PaymentStatus string

const (
	PaymentCompleted  PaymentStatus = "completed"
	PaymentInProgress PaymentStatus = "in_progress"
	PaymentOverdue    PaymentStatus = "overdue"
)

// Transaction defines the common interface for all types of ledger entries
// that can be recorded against a domain.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "renew").
	When() Date        // When returns the date on which the transaction occurred.
	Host() string      // Host returns the domain name the transaction refers to.
	Equal(Transaction) bool
	Validate(ledger *Ledger) (Transaction, error)
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction (e.g., "buy", "sell").
	Date    Date        `json:"date"`           // Date is the date when the transaction took place.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional rationale or note for the transaction.
}

// What returns the command name for the transaction, which is used to identify the type of transaction.
func (t baseCmd) What() CommandType { return t.Command }

// When returns the date of the transaction.
func (t baseCmd) When() Date { return t.Date }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base command fields. It sets the date to today if it's
// zero. It's meant to be embedded in other transaction validation methods.
func (t *baseCmd) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// domCmd is a component for domain-based transactions.
type domCmd struct {
	baseCmd
	Domain   string `json:"domain"`             // Domain is the domain name the transaction refers to.
	Platform string `json:"platform,omitempty"` // Platform is the marketplace or registrar involved, if any.
}

// Host returns the domain name of the transaction.
func (t domCmd) Host() string { return t.Domain }

// Validate checks the domain command fields. It validates the base command
// and ensures the domain is registered in the ledger.
func (t *domCmd) Validate(ledger *Ledger) error {
	t.baseCmd.Validate()

	if t.Domain == "" {
		return errors.New("domain name is missing")
	}
	if ledger.Domain(t.Domain) == nil {
		return fmt.Errorf("domain %q not registered in ledger", t.Domain)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for domCmd.
func (t domCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("domain", t.Domain)
	w.Optional("platform", t.Platform)
	return w.MarshalJSON()
}

// currencyOf resolves the quick-fix currency for a domain: the currency its
// purchase cost was recorded in.
func currencyOf(ledger *Ledger, domain string) string {
	if d := ledger.Domain(domain); d != nil {
		return d.PurchaseCost.Currency()
	}
	return ""
}

// --- Buy Command ---

// Buy records the acquisition of a domain for a specified amount.
type Buy struct {
	domCmd
	Amount Money // Amount is the total cost of the purchase.
}

// NewBuy creates a new Buy transaction.
func NewBuy(day Date, memo, domain, platform string, amount Money) Buy {
	return Buy{
		domCmd: domCmd{baseCmd: baseCmd{Command: CmdBuy, Date: day, Memo: memo}, Domain: domain, Platform: platform},
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.domCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Buy.
// It handles the custom structure where amount and currency are separate fields.
func (t *Buy) UnmarshalJSON(data []byte) error {
	var temp struct {
		domCmd
		amountCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.domCmd = temp.domCmd
	t.Amount = temp.Money()
	return nil
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.domCmd == o.domCmd && t.Amount.Equal(o.Amount)
}

// Validate checks the Buy transaction's fields. The amount must not be
// negative (free acquisitions are legitimate) and takes the domain's
// currency when missing.
func (t Buy) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.domCmd.Validate(ledger); err != nil {
		return t, err
	}
	if t.Amount.IsNegative() {
		return t, fmt.Errorf("buy transaction amount cannot be negative, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount.cur = currencyOf(ledger, t.Domain)
	}
	return t, nil
}

// --- Renew Command ---

// Renew records one renewal payment for a domain. A backfilled renewal is a
// reconstructed historical payment emitted at purchase time, as opposed to a
// renewal the user recorded when it happened.
type Renew struct {
	domCmd
	Amount     Money // Amount is the renewal payment for one cycle.
	Backfilled bool  // Backfilled marks a reconstructed historical renewal.
}

// NewRenew creates a new Renew transaction.
func NewRenew(day Date, memo, domain string, amount Money) Renew {
	return Renew{
		domCmd: domCmd{baseCmd: baseCmd{Command: CmdRenew, Date: day, Memo: memo}, Domain: domain},
		Amount: amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for Renew.
func (t Renew) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.domCmd)
	w.EmbedFrom(t.Amount)
	w.Optional("backfilled", t.Backfilled)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Renew.
func (t *Renew) UnmarshalJSON(data []byte) error {
	var temp struct {
		domCmd
		amountCmd
		Backfilled bool `json:"backfilled,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.domCmd = temp.domCmd
	t.Amount = temp.Money()
	t.Backfilled = temp.Backfilled
	return nil
}

func (t Renew) Equal(other Transaction) bool {
	o, ok := other.(Renew)
	return ok && t.domCmd == o.domCmd && t.Amount.Equal(o.Amount) && t.Backfilled == o.Backfilled
}

// Validate checks the Renew transaction's fields. A zero amount is
// quick-fixed to the domain's regular renewal cost.
func (t Renew) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.domCmd.Validate(ledger); err != nil {
		return t, err
	}
	if t.Amount.IsZero() {
		// not nil, checked in domCmd.Validate
		t.Amount = ledger.Domain(t.Domain).RenewalCost
	}
	if t.Amount.IsNegative() {
		return t, fmt.Errorf("renew transaction amount cannot be negative, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount.cur = currencyOf(ledger, t.Domain)
	}
	return t, nil
}

// --- Sell Command (lump sum) ---

// Sell records an outright sale of a domain paid in a single lump sum.
// Amount is the net proceeds; Gross, FeeAmount and FeeRate are optional and
// resolved against each other during validation.
type Sell struct {
	domCmd
	Amount    Money   // Amount is the net proceeds actually received.
	Gross     Money   // Gross is the sale price before fees, when known.
	FeeAmount Money   // FeeAmount is the platform fee paid, when known.
	FeeRate   Percent // FeeRate is the fee as a percentage of gross, when known.
}

// NewSell creates a new lump-sum Sell transaction.
func NewSell(day Date, memo, domain, platform string, net Money) Sell {
	return Sell{
		domCmd: domCmd{baseCmd: baseCmd{Command: CmdSell, Date: day, Memo: memo}, Domain: domain, Platform: platform},
		Amount: net,
	}
}

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.domCmd)
	w.Append("plan", PlanLumpSum)
	w.EmbedFrom(t.Amount)
	if !t.Gross.IsZero() {
		w.Append("grossAmount", t.Gross.value)
	}
	if !t.FeeAmount.IsZero() {
		w.Append("feeAmount", t.FeeAmount.value)
	}
	if t.FeeRate != 0 {
		w.Append("feePercentage", t.FeeRate)
	}
	return w.MarshalJSON()
}

// sellCmd is a specialized struct for decoding json.
type sellCmd struct {
	domCmd
	amountCmd
	Plan      PaymentPlan     `json:"plan,omitempty"`
	Gross     decimal.Decimal `json:"grossAmount"`
	FeeAmount decimal.Decimal `json:"feeAmount"`
	FeeRate   Percent         `json:"feePercentage"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Sell.
func (t *Sell) UnmarshalJSON(data []byte) error {
	var temp sellCmd
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.domCmd = temp.domCmd
	t.Amount = temp.Money()
	t.Gross = temp.optMoney(temp.Gross)
	t.FeeAmount = temp.optMoney(temp.FeeAmount)
	t.FeeRate = temp.FeeRate
	return nil
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.domCmd == o.domCmd && t.Amount.Equal(o.Amount) &&
		t.Gross.Equal(o.Gross) && t.FeeAmount.Equal(o.FeeAmount) && t.FeeRate.Equal(o.FeeRate)
}

// Validate checks the Sell transaction's fields and resolves the fee
// breakdown: given a gross it derives fee and rate, given a rate it derives
// fee and gross.
func (t Sell) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.domCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("sell transaction amount must be positive, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount.cur = currencyOf(ledger, t.Domain)
	}
	if !t.Gross.IsZero() {
		t.Gross.cur = cur(t.Gross, t.Amount)
	}
	if !t.FeeAmount.IsZero() {
		t.FeeAmount.cur = cur(t.FeeAmount, t.Amount)
	}

	switch {
	case !t.Gross.IsZero():
		bd, err := FeeFromGross(t.Amount, t.Gross)
		if err != nil {
			return t, err
		}
		t.FeeAmount, t.FeeRate = bd.Fee, bd.Rate
	case !t.FeeAmount.IsZero():
		t.Gross = t.Amount.Add(t.FeeAmount)
		t.FeeRate = t.FeeAmount.RateOf(t.Gross)
	case t.FeeRate != 0:
		bd, err := FeeFromRate(t.Amount, t.FeeRate)
		if err != nil {
			return t, err
		}
		t.FeeAmount, t.Gross = bd.Fee, bd.Gross
	}
	if !t.Gross.IsZero() && t.Gross.LessThan(t.Amount) {
		return t, fmt.Errorf("gross amount %s is less than net %s", t.Gross, t.Amount)
	}
	return t, nil
}

// --- InstallmentSell Command ---

// InstallmentSell records a sale paid over a number of monthly installments.
// Amount is the gross price agreed with the buyer; Total adds the platform's
// installment surcharge. Paid and Remaining are the only mutable fields of
// any transaction: they advance as installments are collected.
type InstallmentSell struct {
	domCmd
	Amount    Money         // Amount is the agreed sale price before the surcharge.
	Months    int           // Months is the installment period.
	FeeRate   Percent       // FeeRate is the installment surcharge percentage.
	FeeAmount Money         // FeeAmount is the surcharge: Amount × FeeRate.
	Total     Money         // Total is the committed installment amount: Amount + FeeAmount.
	Monthly   Money         // Monthly is Total / Months.
	Status    PaymentStatus // Status is the collection state of the plan.
	Paid      int           // Paid is the number of installments collected.
	Remaining int           // Remaining is the number of installments outstanding.
}

// NewInstallmentSell creates an InstallmentSell from a planned schedule.
func NewInstallmentSell(day Date, memo, domain string, gross Money, plan InstallmentPlan) InstallmentSell {
	return InstallmentSell{
		domCmd:    domCmd{baseCmd: baseCmd{Command: CmdSell, Date: day, Memo: memo}, Domain: domain, Platform: plan.Platform},
		Amount:    gross,
		Months:    plan.Months,
		FeeRate:   plan.Rate,
		FeeAmount: plan.Fee,
		Total:     plan.Total,
		Monthly:   plan.Monthly,
		Status:    PaymentInProgress,
		Remaining: plan.Months,
	}
}

// MarshalJSON implements the json.Marshaler interface for InstallmentSell.
func (t InstallmentSell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.domCmd)
	w.Append("plan", PlanInstallments)
	w.EmbedFrom(t.Amount)
	w.Append("installmentPeriod", t.Months)
	w.Append("installmentFeePercentage", t.FeeRate)
	w.Append("installmentFeeAmount", t.FeeAmount.value)
	w.Append("totalInstallmentAmount", t.Total.value)
	w.Append("monthlyPayment", t.Monthly.value)
	w.Append("paymentStatus", t.Status)
	w.Append("paidInstallments", t.Paid)
	w.Append("remainingInstallments", t.Remaining)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for InstallmentSell.
func (t *InstallmentSell) UnmarshalJSON(data []byte) error {
	var temp struct {
		domCmd
		amountCmd
		Months    int             `json:"installmentPeriod"`
		FeeRate   Percent         `json:"installmentFeePercentage"`
		FeeAmount decimal.Decimal `json:"installmentFeeAmount"`
		Total     decimal.Decimal `json:"totalInstallmentAmount"`
		Monthly   decimal.Decimal `json:"monthlyPayment"`
		Status    PaymentStatus   `json:"paymentStatus"`
		Paid      int             `json:"paidInstallments"`
		Remaining int             `json:"remainingInstallments"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.domCmd = temp.domCmd
	t.Amount = temp.Money()
	t.Months = temp.Months
	t.FeeRate = temp.FeeRate
	t.FeeAmount = temp.optMoney(temp.FeeAmount)
	t.Total = temp.optMoney(temp.Total)
	t.Monthly = temp.optMoney(temp.Monthly)
	t.Status = temp.Status
	t.Paid = temp.Paid
	t.Remaining = temp.Remaining
	return nil
}

func (t InstallmentSell) Equal(other Transaction) bool {
	o, ok := other.(InstallmentSell)
	return ok && t.domCmd == o.domCmd && t.Amount.Equal(o.Amount) && t.Months == o.Months &&
		t.FeeRate.Equal(o.FeeRate) && t.FeeAmount.Equal(o.FeeAmount) && t.Total.Equal(o.Total) &&
		t.Monthly.Equal(o.Monthly) && t.Status == o.Status && t.Paid == o.Paid && t.Remaining == o.Remaining
}

// Validate checks the InstallmentSell transaction's fields. The schedule is
// recomputed from the amount, the rate and the period, so a hand-edited
// ledger line cannot carry an inconsistent total or monthly payment.
func (t InstallmentSell) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.domCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("installment sale amount must be positive, got %s", t.Amount)
	}
	if t.Months <= 0 {
		return t, fmt.Errorf("installment period must be positive, got %d", t.Months)
	}
	if t.FeeRate < 0 || t.FeeRate >= 100 {
		return t, fmt.Errorf("%w: got %v", ErrFeeRate, t.FeeRate)
	}
	if t.Amount.Currency() == "" {
		t.Amount.cur = currencyOf(ledger, t.Domain)
	}
	t.FeeAmount = t.Amount.MulRate(t.FeeRate)
	t.Total = t.Amount.Add(t.FeeAmount)
	t.Monthly = t.Total.DivInt(t.Months)
	if t.Paid < 0 || t.Paid > t.Months {
		return t, fmt.Errorf("paid installments %d out of range [0, %d]", t.Paid, t.Months)
	}
	t.Remaining = t.Months - t.Paid
	switch t.Status {
	case PaymentCompleted, PaymentInProgress, PaymentOverdue:
	case "":
		t.Status = PaymentInProgress
	default:
		return t, fmt.Errorf("unknown payment status: %q", t.Status)
	}
	if t.Remaining == 0 {
		t.Status = PaymentCompleted
	}
	return t, nil
}

// --- Transfer Command ---

// Transfer records moving a domain between registrars, with the transfer
// cost paid. It is a spend record only: it affects neither cost basis nor
// revenue.
type Transfer struct {
	domCmd
	Amount        Money  // Amount is the transfer cost paid.
	FromRegistrar string `json:"fromRegistrar,omitempty"`
	ToRegistrar   string `json:"toRegistrar,omitempty"`
}

// NewTransfer creates a new Transfer transaction.
func NewTransfer(day Date, memo, domain, from, to string, amount Money) Transfer {
	return Transfer{
		domCmd:        domCmd{baseCmd: baseCmd{Command: CmdTransfer, Date: day, Memo: memo}, Domain: domain},
		Amount:        amount,
		FromRegistrar: from,
		ToRegistrar:   to,
	}
}

// MarshalJSON implements the json.Marshaler interface for Transfer.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.domCmd)
	w.EmbedFrom(t.Amount)
	w.Optional("fromRegistrar", t.FromRegistrar)
	w.Optional("toRegistrar", t.ToRegistrar)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transfer.
func (t *Transfer) UnmarshalJSON(data []byte) error {
	var temp struct {
		domCmd
		amountCmd
		FromRegistrar string `json:"fromRegistrar,omitempty"`
		ToRegistrar   string `json:"toRegistrar,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.domCmd = temp.domCmd
	t.Amount = temp.Money()
	t.FromRegistrar = temp.FromRegistrar
	t.ToRegistrar = temp.ToRegistrar
	return nil
}

func (t Transfer) Equal(other Transaction) bool {
	o, ok := other.(Transfer)
	return ok && t.domCmd == o.domCmd && t.Amount.Equal(o.Amount) &&
		t.FromRegistrar == o.FromRegistrar && t.ToRegistrar == o.ToRegistrar
}

// Validate checks the Transfer transaction's fields.
func (t Transfer) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.domCmd.Validate(ledger); err != nil {
		return t, err
	}
	if t.Amount.IsNegative() {
		return t, fmt.Errorf("transfer transaction amount cannot be negative, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount.cur = currencyOf(ledger, t.Domain)
	}
	return t, nil
}

// --- Fee Command ---

// Fee records a miscellaneous charge against a domain (escrow, listing,
// appraisal). Like Transfer it is a spend record only.
type Fee struct {
	domCmd
	Amount   Money  // Amount is the fee paid.
	Category string `json:"category,omitempty"` // Category describes the kind of fee.
}

// NewFee creates a new Fee transaction.
func NewFee(day Date, memo, domain, category string, amount Money) Fee {
	return Fee{
		domCmd:   domCmd{baseCmd: baseCmd{Command: CmdFee, Date: day, Memo: memo}, Domain: domain},
		Amount:   amount,
		Category: category,
	}
}

// MarshalJSON implements the json.Marshaler interface for Fee.
func (t Fee) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.domCmd)
	w.EmbedFrom(t.Amount)
	w.Optional("category", t.Category)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Fee.
func (t *Fee) UnmarshalJSON(data []byte) error {
	var temp struct {
		domCmd
		amountCmd
		Category string `json:"category,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.domCmd = temp.domCmd
	t.Amount = temp.Money()
	t.Category = temp.Category
	return nil
}

func (t Fee) Equal(other Transaction) bool {
	o, ok := other.(Fee)
	return ok && t.domCmd == o.domCmd && t.Amount.Equal(o.Amount) && t.Category == o.Category
}

// Validate checks the Fee transaction's fields.
func (t Fee) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.domCmd.Validate(ledger); err != nil {
		return t, err
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("fee transaction amount must be positive, got %s", t.Amount)
	}
	if t.Amount.Currency() == "" {
		t.Amount.cur = currencyOf(ledger, t.Domain)
	}
	return t, nil
}
