package handmodel

import (
	"testing"

	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
)

func TestApplyTightensOnly(t *testing.T) {
	t.Parallel()
	m := NewHandModel()
	m.Apply(constraint.NewMinHcp(10))
	m.Apply(constraint.NewMinHcp(6)) // weaker, should not loosen
	if m.KnownMinHCP() != 10 {
		t.Errorf("min hcp = %d, want 10 (tightening only)", m.KnownMinHCP())
	}
	m.Apply(constraint.NewMinHcp(13))
	if m.KnownMinHCP() != 13 {
		t.Errorf("min hcp = %d, want 13", m.KnownMinHCP())
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()
	m := NewHandModel()
	c := constraint.NewMinLength(domain.Hearts, 4)
	m.Apply(c)
	m.Apply(c)
	m.Apply(c)
	if m.MinLength[domain.Hearts] != 4 {
		t.Errorf("min length = %d, want 4", m.MinLength[domain.Hearts])
	}
}

func TestHasShownSuit(t *testing.T) {
	t.Parallel()
	m := NewHandModel()
	if m.HasShownSuit(domain.Spades) {
		t.Fatal("fresh model should show no suits")
	}
	m.Apply(constraint.NewMinLength(domain.Spades, 5))
	if !m.HasShownSuit(domain.Spades) {
		t.Fatal("expected spades to be shown after MinLength(Spades, 5)")
	}
}
