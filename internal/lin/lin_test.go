package lin

import (
	"testing"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/internal/identifier"
)

func TestMDRoundTrip(t *testing.T) {
	n, _ := domain.ParseHand("AKQJ.AKQJ.AK.AK")
	e, _ := domain.ParseHand("432.432.QJT98.QJ")
	s, _ := domain.ParseHand("T98.T98.7654.987")
	w, _ := domain.ParseHand("765.765.32.T6543")
	deal := identifier.Deal{domain.North: n, domain.East: e, domain.South: s, domain.West: w}

	tok := FormatMD(domain.South, deal)
	dealer, got, err := ParseMD(tok)
	if err != nil {
		t.Fatalf("ParseMD: %v", err)
	}
	if dealer != domain.South {
		t.Fatalf("dealer = %s, want S", dealer)
	}
	for p := range deal {
		if got[p].String() != deal[p].String() {
			t.Fatalf("position %d: got %s, want %s", p, got[p], deal[p])
		}
	}
}

func TestMBRoundTrip(t *testing.T) {
	a := auction.New(domain.West)
	for _, tok := range []string{"P", "1C", "X", "P", "P", "XX", "P", "P", "P"} {
		c, _ := domain.ParseCall(tok)
		a.AddCall(c)
	}

	body := FormatMB(a)
	got, err := ParseMB(domain.West, body)
	if err != nil {
		t.Fatalf("ParseMB: %v", err)
	}
	if len(got.Calls) != len(a.Calls) {
		t.Fatalf("got %d calls, want %d", len(got.Calls), len(a.Calls))
	}
	for i := range a.Calls {
		if got.Calls[i] != a.Calls[i] {
			t.Fatalf("call %d: got %s, want %s", i, got.Calls[i], a.Calls[i])
		}
	}
}
