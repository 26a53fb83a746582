package domainfolio

import (
	"strings"
	"testing"
)

// encodedLedger builds a ledger exercising every transaction variant and
// returns it with its two encoded streams.
func encodedLedger(t *testing.T) (*Ledger, string, string) {
	t.Helper()
	l := NewLedger()
	if _, err := l.Purchase(newTestDomain("a.com"), "hand reg"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Purchase(newTestDomain("b.com"), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RenewDomain("a.com", MustParse("2024-06-01"), M(15, "USD"), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordTransfer("a.com", MustParse("2024-07-01"), M(9, "USD"), "Namecheap", "Porkbun", "consolidation"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RecordFee("a.com", MustParse("2024-08-01"), M(25, "USD"), "escrow", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.SellDomain("a.com", MustParse("2025-06-01"), M(900, "USD"), M(1000, "USD"), 0, "Sedo", "good exit"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.SellDomainInstallment("b.com", MustParse("2025-07-01"), M(1000, "USD"), "Afternic", 12, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AdvanceInstallment("b.com", 3); err != nil {
		t.Fatal(err)
	}

	var domains, transactions strings.Builder
	if err := EncodeDomains(&domains, l); err != nil {
		t.Fatal(err)
	}
	if err := EncodeTransactions(&transactions, l); err != nil {
		t.Fatal(err)
	}
	return l, domains.String(), transactions.String()
}

func TestLedgerRoundTrip(t *testing.T) {
	want, domains, transactions := encodedLedger(t)

	got, err := DecodeLedger(strings.NewReader(domains), strings.NewReader(transactions))
	if err != nil {
		t.Fatal(err)
	}

	if len(got.transactions) != len(want.transactions) {
		t.Fatalf("decoded %d transactions, want %d", len(got.transactions), len(want.transactions))
	}
	for i := range want.transactions {
		if !want.transactions[i].Equal(got.transactions[i]) {
			t.Errorf("transaction %d differs after round trip:\n got %#v\nwant %#v", i, got.transactions[i], want.transactions[i])
		}
	}

	if len(got.domains) != len(want.domains) {
		t.Fatalf("decoded %d domains, want %d", len(got.domains), len(want.domains))
	}
	for name, w := range want.domains {
		g := got.Domain(name)
		if g == nil {
			t.Fatalf("domain %s lost in round trip", name)
		}
		if !g.Equal(*w) {
			t.Errorf("domain %s differs after round trip:\n got %+v\nwant %+v", name, *g, *w)
		}
	}
}

func TestEncodeIsCanonical(t *testing.T) {
	_, domains, transactions := encodedLedger(t)

	decoded, err := DecodeLedger(strings.NewReader(domains), strings.NewReader(transactions))
	if err != nil {
		t.Fatal(err)
	}
	var domains2, transactions2 strings.Builder
	if err := EncodeDomains(&domains2, decoded); err != nil {
		t.Fatal(err)
	}
	if err := EncodeTransactions(&transactions2, decoded); err != nil {
		t.Fatal(err)
	}

	if domains != domains2.String() {
		t.Errorf("domain re-encode is not byte identical:\n%s\nvs\n%s", domains, domains2.String())
	}
	if transactions != transactions2.String() {
		t.Errorf("transaction re-encode is not byte identical:\n%s\nvs\n%s", transactions, transactions2.String())
	}
}

func TestDecodeTransactionsErrors(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		l := NewLedger()
		err := DecodeTransactions(strings.NewReader(`{"command":"split","date":"2025-06-01"}`+"\n"), l)
		if err == nil {
			t.Error("unknown command should fail")
		}
	})
	t.Run("empty lines are skipped", func(t *testing.T) {
		l := NewLedger()
		in := "\n" + `{"command":"buy","date":"2025-06-01","domain":"a.com","amount":10,"currency":"USD"}` + "\n\n"
		if err := DecodeTransactions(strings.NewReader(in), l); err != nil {
			t.Fatal(err)
		}
		if len(l.transactions) != 1 {
			t.Errorf("decoded %d transactions, want 1", len(l.transactions))
		}
	})
	t.Run("duplicate domain record", func(t *testing.T) {
		l := NewLedger()
		rec := `{"id":"x","name":"a.com","purchaseDate":"2025-06-01","purchaseCost":10,"renewalCost":15,"currency":"USD","cycleYears":1,"cycleKind":"annual","status":"active"}` + "\n"
		if err := DecodeDomains(strings.NewReader(rec+rec), l); err == nil {
			t.Error("duplicate domain record should fail")
		}
	})
}

func TestDecodeTransactionsSortsOnce(t *testing.T) {
	in := `{"command":"renew","date":"2025-06-01","domain":"a.com","amount":15,"currency":"USD"}` + "\n" +
		`{"command":"buy","date":"2023-06-01","domain":"a.com","amount":10,"currency":"USD"}` + "\n"
	got, err := DecodeLedger(strings.NewReader(""), strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got.OldestTransactionDate() != MustParse("2023-06-01") {
		t.Errorf("oldest = %s, want the buy even though it was second in the file", got.OldestTransactionDate())
	}
	if got.NewestTransactionDate() != MustParse("2025-06-01") {
		t.Errorf("newest = %s, want the renewal", got.NewestTransactionDate())
	}
}
