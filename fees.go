package domainfolio

import (
	"errors"
	"fmt"
)

// FeeBreakdown is the fully resolved fee picture of a sale: the net amount
// actually received, the fee charged by the platform, the gross sale price,
// and the fee as a percentage of gross.
//
// Invariant: Gross = Net + Fee.
type FeeBreakdown struct {
	Net   Money
	Fee   Money
	Gross Money
	Rate  Percent
}

// ErrFeeRate is returned when a fee percentage falls outside [0, 100).
var ErrFeeRate = errors.New("fee percentage must be in [0, 100)")

// FeeFromGross resolves the fee breakdown from a net amount and a gross sale
// price. The rate is expressed against gross: rate = fee/gross × 100. A zero
// gross yields a zero rate.
func FeeFromGross(net, gross Money) (FeeBreakdown, error) {
	if gross.LessThan(net) {
		return FeeBreakdown{}, fmt.Errorf("gross %s is less than net %s", gross, net)
	}
	fee := gross.Sub(net)
	return FeeBreakdown{
		Net:   net,
		Fee:   fee,
		Gross: gross,
		Rate:  fee.RateOf(gross),
	}, nil
}

// FeeFromRate resolves the fee breakdown from a net amount and a fee
// percentage. Because the fee is a percentage of gross, not of net:
//
//	fee = net × rate / (100 − rate)
//
// Rates of 100% or more are rejected, not clamped: they have no meaningful
// gross.
func FeeFromRate(net Money, rate Percent) (FeeBreakdown, error) {
	if rate < 0 || rate >= 100 {
		return FeeBreakdown{}, fmt.Errorf("%w: got %v", ErrFeeRate, rate)
	}
	// MulRate divides by 100, so scale the ratio back up by 100 first.
	fee := net.MulRate(Percent(100 * float64(rate) / (100 - float64(rate))))
	return FeeBreakdown{
		Net:   net,
		Fee:   fee,
		Gross: net.Add(fee),
		Rate:  rate,
	}, nil
}
