package rank

import (
	"testing"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
)

func mustCall(t *testing.T, token string) domain.Call {
	t.Helper()
	c, ok := domain.ParseCall(token)
	if !ok {
		t.Fatalf("invalid call %q", token)
	}
	return c
}

func newModel(t *testing.T) *handmodel.AuctionModel {
	t.Helper()
	a := auction.New(domain.North)
	return handmodel.NewAuctionModel(a)
}

func TestClassifyUninterpretedIsMiscellaneous(t *testing.T) {
	call := mustCall(t, "P")
	model := newModel(t)
	if got := Classify(call, nil, model); got != Miscellaneous {
		t.Fatalf("Classify(uninterpreted) = %v, want Miscellaneous", got)
	}
}

func TestClassifyDoubleIsAlwaysCompetitiveActionRegardlessOfSemantics(t *testing.T) {
	call := mustCall(t, "X")
	model := newModel(t)

	// A Double whose shows look exactly like a natural response (the bug
	// this test guards: a negative double must not fall through to
	// CharacterizeStrength just because its constraint shape resembles a
	// limiting bid).
	sem := &handmodel.CallSemantics{
		RuleName: "response.negative_double",
		Shows:    []constraint.Constraint{constraint.NewMinHcp(6)},
	}
	if got := Classify(call, sem, model); got != CompetitiveAction {
		t.Fatalf("Classify(Double) = %v, want CompetitiveAction", got)
	}

	// Even an uninterpreted Double (sem == nil) is CompetitiveAction.
	if got := Classify(call, nil, model); got != CompetitiveAction {
		t.Fatalf("Classify(uninterpreted Double) = %v, want CompetitiveAction", got)
	}
}

func TestClassifyRedoubleIsAlwaysCompetitiveAction(t *testing.T) {
	call := mustCall(t, "XX")
	model := newModel(t)
	if got := Classify(call, nil, model); got != CompetitiveAction {
		t.Fatalf("Classify(Redouble) = %v, want CompetitiveAction", got)
	}
}

func TestClassifyRaiseOfSuitPartnerShowedIsSupportMajors(t *testing.T) {
	model := newModel(t)
	model.PartnerHand().Apply(constraint.NewMinLength(domain.Hearts, 5))

	call := mustCall(t, "2H")
	sem := &handmodel.CallSemantics{
		RuleName: "response.raise_major_single",
		Shows:    []constraint.Constraint{constraint.NewMinLength(domain.Hearts, 3)},
	}
	if got := Classify(call, sem, model); got != SupportMajors {
		t.Fatalf("Classify = %v, want SupportMajors", got)
	}
}

func TestClassifyNewMinorSuitIsMinorDiscovery(t *testing.T) {
	model := newModel(t)

	call := mustCall(t, "1C")
	sem := &handmodel.CallSemantics{
		RuleName: "opening.one_level_suit",
		Shows:    []constraint.Constraint{constraint.NewMinLength(domain.Clubs, 3)},
	}
	if got := Classify(call, sem, model); got != MinorDiscovery {
		t.Fatalf("Classify = %v, want MinorDiscovery", got)
	}
}

func TestClassifyRebidOfOwnLongSuitIsRebidSuit(t *testing.T) {
	model := newModel(t)
	model.BidderHand().Apply(constraint.NewMinLength(domain.Spades, 5))

	call := mustCall(t, "3S")
	sem := &handmodel.CallSemantics{
		RuleName: "rebid.own_suit",
		Shows:    []constraint.Constraint{constraint.NewMinLength(domain.Spades, 6)},
	}
	if got := Classify(call, sem, model); got != RebidSuit {
		t.Fatalf("Classify = %v, want RebidSuit", got)
	}
}

func TestClassifyHcpOnlyConstraintIsCharacterizeStrength(t *testing.T) {
	model := newModel(t)

	call := mustCall(t, "1N")
	sem := &handmodel.CallSemantics{
		RuleName: "opening.1nt_balanced",
		Shows:    []constraint.Constraint{constraint.NewMinHcp(15), constraint.NewMaxHcp(17)},
	}
	if got := Classify(call, sem, model); got != CharacterizeStrength {
		t.Fatalf("Classify = %v, want CharacterizeStrength", got)
	}
}

func TestClassifyHcpConstraintYieldsToLengthWhenBothShown(t *testing.T) {
	model := newModel(t)

	call := mustCall(t, "1H")
	sem := &handmodel.CallSemantics{
		RuleName: "opening.one_level_suit",
		Shows: []constraint.Constraint{
			constraint.NewMinLength(domain.Hearts, 5),
			constraint.NewMinHcp(11),
		},
	}
	if got := Classify(call, sem, model); got != MajorDiscovery {
		t.Fatalf("Classify = %v, want MajorDiscovery (length dominates HCP-only per spec)", got)
	}
}

func TestClassifyNotrumpSystemAnnotationIsEnterNotrumpSystem(t *testing.T) {
	model := newModel(t)

	call := mustCall(t, "2C")
	sem := &handmodel.CallSemantics{
		RuleName:    "nt_system.stayman",
		Annotations: []handmodel.Annotation{handmodel.NotrumpSystemsOn},
	}
	if got := Classify(call, sem, model); got != EnterNotrumpSystem {
		t.Fatalf("Classify = %v, want EnterNotrumpSystem", got)
	}
}

func TestPurposeOrderPrefersSupportMajors(t *testing.T) {
	if !(SupportMajors < EnterNotrumpSystem && EnterNotrumpSystem < MajorDiscovery && MajorDiscovery < CharacterizeStrength) {
		t.Fatalf("purpose priority order is not as expected")
	}
}
