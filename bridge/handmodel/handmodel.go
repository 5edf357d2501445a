// Package handmodel holds the per-player inferred hand profile (HandModel)
// and the per-auction aggregate of all four profiles plus interpreted
// semantics (AuctionModel), built by replaying an auction call by call.
package handmodel

import (
	"fmt"
	"strings"

	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
)

// HandModel is the inferred profile of one player's hand: bounds tightened
// by every constraint shown by that player's calls so far.
type HandModel struct {
	MinHCP    *int
	MaxHCP    *int
	MinLength [4]int // defaults to 0
	MaxLength [4]int // meaningful only where maxLenSet is true; see MaxLengthOf
	maxLenSet [4]bool
	MaxShape  *domain.Shape
}

// NewHandModel returns an empty profile: no bounds known yet.
func NewHandModel() *HandModel {
	return &HandModel{}
}

// MaxLengthOf returns the known maximum length in suit s, defaulting to 13.
func (m *HandModel) MaxLengthOf(s domain.Suit) int {
	if m.maxLenSet[s] {
		return m.MaxLength[s]
	}
	return 13
}

// HasShownSuit reports whether the player is known to hold at least one
// card in s (a MinLength constraint > 0 has been applied).
func (m *HandModel) HasShownSuit(s domain.Suit) bool {
	return m.MinLength[s] > 0
}

// KnownMinHCP returns the known HCP floor, defaulting to 0.
func (m *HandModel) KnownMinHCP() int {
	if m.MinHCP == nil {
		return 0
	}
	return *m.MinHCP
}

// KnownMaxHCP returns the known HCP ceiling, defaulting to 37 (the most any
// hand can hold).
func (m *HandModel) KnownMaxHCP() int {
	if m.MaxHCP == nil {
		return 37
	}
	return *m.MaxHCP
}

// Apply tightens the model with a single constraint. Tightening is
// monotonic: a bound can only move toward being more restrictive, never
// looser, so re-applying the same or a weaker constraint is a no-op.
func (m *HandModel) Apply(c constraint.Constraint) {
	switch c.Kind {
	case constraint.MinHcp:
		if m.MinHCP == nil || c.N > *m.MinHCP {
			v := c.N
			m.MinHCP = &v
		}
	case constraint.MaxHcp:
		if m.MaxHCP == nil || c.N < *m.MaxHCP {
			v := c.N
			m.MaxHCP = &v
		}
	case constraint.MinLength:
		if c.N > m.MinLength[c.Suit] {
			m.MinLength[c.Suit] = c.N
		}
	case constraint.MaxLength:
		if !m.maxLenSet[c.Suit] || c.N < m.MaxLength[c.Suit] {
			m.MaxLength[c.Suit] = c.N
			m.maxLenSet[c.Suit] = true
		}
	case constraint.MaxUnbalancedness:
		if m.MaxShape == nil || c.Shape < *m.MaxShape {
			v := c.Shape
			m.MaxShape = &v
		}
	// Stoppers, Rule of 20/15 and top-honor counts describe specific holdings
	// rather than a bound this profile tracks; they still validate a call
	// against the real hand at interpretation time but don't narrow the
	// inferred-profile fields above.
	default:
	}
}

// ApplyAll tightens the model with every constraint in cs, in order.
func (m *HandModel) ApplyAll(cs []constraint.Constraint) {
	for _, c := range cs {
		m.Apply(c)
	}
}

// Describe renders the profile as a short summary of the bounds actually
// known, e.g. "11-17 HCP, >=3H, >=5S" (suits in clubs-to-spades order).
func (m *HandModel) Describe() string {
	var parts []string
	if m.MinHCP != nil || m.MaxHCP != nil {
		parts = append(parts, fmt.Sprintf("%d-%d HCP", m.KnownMinHCP(), m.KnownMaxHCP()))
	}
	for _, s := range domain.Suits {
		if m.MinLength[s] > 0 {
			parts = append(parts, fmt.Sprintf(">=%d%s", m.MinLength[s], s))
		}
	}
	if len(parts) == 0 {
		return "no constraints shown"
	}
	return strings.Join(parts, ", ")
}
