package pbn

import (
	"testing"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/internal/identifier"
)

func TestDealRoundTrip(t *testing.T) {
	n, _ := domain.ParseHand("AKQJ.AKQJ.AK.AK")
	e, _ := domain.ParseHand("432.432.QJT98.QJ")
	s, _ := domain.ParseHand("T98.T98.7654.987")
	w, _ := domain.ParseHand("765.765.32.T6543")
	deal := identifier.Deal{domain.North: n, domain.East: e, domain.South: s, domain.West: w}

	tag := FormatDeal(domain.North, deal)
	dealer, got, err := ParseDeal(tag)
	if err != nil {
		t.Fatalf("ParseDeal: %v", err)
	}
	if dealer != domain.North {
		t.Fatalf("dealer = %s, want N", dealer)
	}
	for p := range deal {
		if got[p].String() != deal[p].String() {
			t.Fatalf("position %d: got %s, want %s", p, got[p], deal[p])
		}
	}
}

func TestAuctionRoundTrip(t *testing.T) {
	a := auction.New(domain.South)
	for _, tok := range []string{"P", "1C", "P", "1D", "P", "P", "P"} {
		c, _ := domain.ParseCall(tok)
		a.AddCall(c)
	}

	body := FormatAuction(a)
	got, err := ParseAuction("S", body)
	if err != nil {
		t.Fatalf("ParseAuction: %v", err)
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

func TestParseDealRejectsMalformed(t *testing.T) {
	if _, _, err := ParseDeal("not-a-deal"); err == nil {
		t.Fatal("expected error for malformed deal tag")
	}
}
