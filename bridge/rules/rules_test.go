package rules

import (
	"testing"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
)

func indexOf(t *testing.T, all []Rule, name string) int {
	t.Helper()
	for i, r := range all {
		if r.Name == name {
			return i
		}
	}
	t.Fatalf("rule %q not found in registry", name)
	return -1
}

func TestJacobyRulesPrecedeTheNaturalRebidTheyShadow(t *testing.T) {
	all := Registry()
	nt3 := indexOf(t, all, "rebid.jacoby_3nt")
	major3 := indexOf(t, all, "rebid.jacoby_3_major")
	if nt3 >= major3 {
		t.Fatalf("rebid.jacoby_3nt (%d) must precede rebid.jacoby_3_major (%d)", nt3, major3)
	}
}

func TestRegistryIsStableAcrossCalls(t *testing.T) {
	first := Registry()
	second := Registry()
	if len(first) != len(second) {
		t.Fatalf("Registry() length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("Registry() order changed at index %d: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}
}

func TestStrong2COpeningRequiresTwentyTwoHCP(t *testing.T) {
	a := auction.New(domain.North)
	model := handmodel.NewAuctionModel(a)
	call, ok := domain.ParseCall("2C")
	if !ok {
		t.Fatalf("invalid call")
	}

	var rule Rule
	for _, r := range openingRules {
		if r.Name == "opening.strong_2c" {
			rule = r
		}
	}
	sem, matched := rule.GetSemantics(model, call)
	if !matched {
		t.Fatalf("expected opening.strong_2c to claim a bare 2C opening")
	}

	weak := mustHandFor(t, "432.432.432.9432")
	if sem.Satisfied(model, weak, call) {
		t.Fatalf("a 0 HCP hand should not satisfy opening.strong_2c")
	}

	strong := mustHandFor(t, "AKQJ.AKQJ.AKQJ.A")
	if !sem.Satisfied(model, strong, call) {
		t.Fatalf("a 34 HCP hand should satisfy opening.strong_2c")
	}
}

func mustHandFor(t *testing.T, token string) domain.Hand {
	t.Helper()
	h, ok := domain.ParseHand(token)
	if !ok {
		t.Fatalf("invalid hand token %q", token)
	}
	return h
}
