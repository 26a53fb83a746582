package domainfolio

import (
	"errors"
	"testing"
)

func TestFeeFromGross(t *testing.T) {
	tests := []struct {
		name     string
		net      float64
		gross    float64
		wantFee  float64
		wantRate Percent
		wantErr  bool
	}{
		{name: "typical marketplace fee", net: 900, gross: 1000, wantFee: 100, wantRate: 10},
		{name: "no fee", net: 1000, gross: 1000, wantFee: 0, wantRate: 0},
		{name: "half fee", net: 500, gross: 1000, wantFee: 500, wantRate: 50},
		{name: "gross below net", net: 1000, gross: 900, wantErr: true},
		{name: "zero gross zero net", net: 0, gross: 0, wantFee: 0, wantRate: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd, err := FeeFromGross(M(tt.net, "USD"), M(tt.gross, "USD"))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FeeFromGross(%v, %v) expected an error", tt.net, tt.gross)
				}
				return
			}
			if err != nil {
				t.Fatalf("FeeFromGross(%v, %v) unexpected error: %v", tt.net, tt.gross, err)
			}
			if !bd.Fee.Equal(M(tt.wantFee, "USD")) {
				t.Errorf("fee = %s, want %v", bd.Fee, tt.wantFee)
			}
			if !bd.Rate.Equal(tt.wantRate) {
				t.Errorf("rate = %s, want %s", bd.Rate, tt.wantRate)
			}
			if !bd.Gross.Equal(bd.Net.Add(bd.Fee)) {
				t.Errorf("gross %s != net %s + fee %s", bd.Gross, bd.Net, bd.Fee)
			}
		})
	}
}

func TestFeeFromRate(t *testing.T) {
	tests := []struct {
		name      string
		net       float64
		rate      Percent
		wantFee   float64
		wantGross float64
		wantErr   bool
	}{
		{name: "ten percent of gross", net: 900, rate: 10, wantFee: 100, wantGross: 1000},
		{name: "zero rate", net: 900, rate: 0, wantFee: 0, wantGross: 900},
		{name: "negative rate", net: 900, rate: -1, wantErr: true},
		{name: "hundred percent", net: 900, rate: 100, wantErr: true},
		{name: "above hundred", net: 900, rate: 150, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd, err := FeeFromRate(M(tt.net, "USD"), tt.rate)
			if tt.wantErr {
				if !errors.Is(err, ErrFeeRate) {
					t.Fatalf("FeeFromRate(%v, %s) error = %v, want ErrFeeRate", tt.net, tt.rate, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FeeFromRate(%v, %s) unexpected error: %v", tt.net, tt.rate, err)
			}
			if !bd.Fee.Equal(M(tt.wantFee, "USD")) {
				t.Errorf("fee = %s, want %v", bd.Fee, tt.wantFee)
			}
			if !bd.Gross.Equal(M(tt.wantGross, "USD")) {
				t.Errorf("gross = %s, want %v", bd.Gross, tt.wantGross)
			}
		})
	}
}

// A breakdown resolved from a rate must resolve back to the same rate from
// its gross.
func TestFeeRoundTrip(t *testing.T) {
	for _, rate := range []Percent{0, 5, 9, 10, 15, 20, 33, 50, 99} {
		bd, err := FeeFromRate(M(870, "USD"), rate)
		if err != nil {
			t.Fatalf("FeeFromRate(870, %s): %v", rate, err)
		}
		back, err := FeeFromGross(bd.Net, bd.Gross)
		if err != nil {
			t.Fatalf("FeeFromGross(%s, %s): %v", bd.Net, bd.Gross, err)
		}
		if !back.Rate.Equal(rate) {
			t.Errorf("round trip rate = %s, want %s", back.Rate, rate)
		}
		if !back.Fee.Equal(bd.Fee) {
			t.Errorf("round trip fee = %s, want %s", back.Fee, bd.Fee)
		}
	}
}
