package selectpkg

import (
	"testing"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/interpret"
)

func mustHand(t *testing.T, token string) domain.Hand {
	t.Helper()
	h, ok := domain.ParseHand(token)
	if !ok {
		t.Fatalf("invalid hand token %q", token)
	}
	return h
}

func TestSelectPassesWithNoLegalNonPassCandidate(t *testing.T) {
	a := auction.New(domain.North)
	for _, tok := range []string{"P", "P", "P", "P"} {
		c, ok := domain.ParseCall(tok)
		if !ok {
			t.Fatalf("invalid call %q", tok)
		}
		a.AddCall(c)
	}

	model := interpret.Build(a)
	hand := mustHand(t, "432.432.432.9432")
	trace := Select(model, hand)
	if !trace.Selected.IsPass() {
		t.Fatalf("Selected = %v, want Pass on a finished auction", trace.Selected)
	}
}

func TestSelectOpensOnAStrongBalancedHand(t *testing.T) {
	a := auction.New(domain.North)
	hand := mustHand(t, "AKQ.AKQJ.AKQ.AK2")

	model := interpret.Build(a)
	trace := Select(model, hand)

	if !trace.Selected.IsBid() {
		t.Fatalf("Selected = %v, want a bid on a strong balanced hand", trace.Selected)
	}
	if len(trace.Candidates) == 0 {
		t.Fatalf("expected at least one candidate")
	}
}

func TestSelectRecordsAPurposeStep(t *testing.T) {
	a := auction.New(domain.North)
	hand := mustHand(t, "AKQ.AKQJ.AKQ.AK2")

	model := interpret.Build(a)
	trace := Select(model, hand)

	if len(trace.Steps) == 0 {
		t.Fatalf("expected at least one narrowing step in the trace")
	}
}

// TestSelectOpensHigherOfFiveFiveMajors covers the "five-five, bid the
// higher" opener rule: with two 5-card suits tied in length, neither
// UniqueLongestSuit nor PreferHigherMinor narrows the tie, so
// PreferHigherWithFivePlus must pick the higher-ranking strain.
func TestSelectOpensHigherOfFiveFiveMajors(t *testing.T) {
	a := auction.New(domain.North)
	hand := mustHand(t, "32.6.AK732.QJ854")

	model := interpret.Build(a)
	trace := Select(model, hand)

	if !trace.Selected.IsBid() {
		t.Fatalf("Selected = %v, want a bid", trace.Selected)
	}
	suit, ok := trace.Selected.Suit()
	if !ok || suit != domain.Spades || trace.Selected.Level != 1 {
		t.Fatalf("Selected = %v, want 1S", trace.Selected)
	}
}
