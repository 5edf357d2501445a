package interpret

import (
	"testing"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
)

func TestInterpretUnclaimedCallReturnsFalse(t *testing.T) {
	a := auction.New(domain.North)
	model := Build(a)

	call, ok := domain.ParseCall("7N")
	if !ok {
		t.Fatalf("invalid call")
	}
	if _, matched := Interpret(model, call); matched {
		t.Fatalf("expected no rule to claim a wild 7N opening")
	}
}

func TestBuildAssignsSemanticsInOrder(t *testing.T) {
	a := auction.New(domain.North)
	for _, tok := range []string{"1N", "P"} {
		c, ok := domain.ParseCall(tok)
		if !ok {
			t.Fatalf("invalid call %q", tok)
		}
		a.AddCall(c)
	}

	model := Build(a)
	if len(model.Semantics) != 2 {
		t.Fatalf("len(Semantics) = %d, want 2", len(model.Semantics))
	}
	if model.Semantics[0] == nil {
		t.Fatalf("expected 1N opening to be claimed by a rule")
	}
	if model.Semantics[0].RuleName != "opening.1nt_balanced" {
		t.Fatalf("RuleName = %q, want opening.1nt_balanced", model.Semantics[0].RuleName)
	}
}

func TestBuildTightensOpenerHandModel(t *testing.T) {
	a := auction.New(domain.North)
	c, ok := domain.ParseCall("1N")
	if !ok {
		t.Fatalf("invalid call")
	}
	a.AddCall(c)

	model := Build(a)
	opener := model.Hands[domain.North]
	if opener.KnownMinHCP() < 15 {
		t.Fatalf("KnownMinHCP() = %d, want >= 15 after a 1N opening", opener.KnownMinHCP())
	}
	if opener.KnownMaxHCP() > 17 {
		t.Fatalf("KnownMaxHCP() = %d, want <= 17 after a 1N opening", opener.KnownMaxHCP())
	}
}
