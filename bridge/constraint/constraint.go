// Package constraint implements the hand constraint algebra: enumerated
// constraints on a hand (HCP bounds, suit-length bounds, shape bounds,
// stoppers, Rule of 20/15, top-honor counts) with a Check predicate and a
// set optimiser.
package constraint

import (
	"fmt"

	"github.com/lox/bridgebid/bridge/domain"
)

// Kind discriminates the HandConstraint variants.
type Kind uint8

const (
	MinHcp Kind = iota
	MaxHcp
	MinLength
	MaxLength
	MaxUnbalancedness
	StopperIn
	RuleOfTwenty
	RuleOfFifteen
	TwoOfTopThree
	ThreeOfTopFive
	ThreeOfTopFiveOrBetter
)

// Constraint is a single HandConstraint: a tagged union over the Kind
// variants above. Not every field is meaningful for every Kind; see Check.
type Constraint struct {
	Kind  Kind
	N     int          // MinHcp/MaxHcp value, MinLength/MaxLength count
	Suit  domain.Suit  // MinLength/MaxLength/StopperIn/TwoOfTopThree/ThreeOfTopFive(OrBetter) suit
	Shape domain.Shape // MaxUnbalancedness bound
}

func NewMinHcp(n int) Constraint                  { return Constraint{Kind: MinHcp, N: n} }
func NewMaxHcp(n int) Constraint                  { return Constraint{Kind: MaxHcp, N: n} }
func NewMinLength(s domain.Suit, n int) Constraint { return Constraint{Kind: MinLength, Suit: s, N: n} }
func NewMaxLength(s domain.Suit, n int) Constraint { return Constraint{Kind: MaxLength, Suit: s, N: n} }
func NewMaxUnbalancedness(sh domain.Shape) Constraint {
	return Constraint{Kind: MaxUnbalancedness, Shape: sh}
}
func NewStopperIn(s domain.Suit) Constraint             { return Constraint{Kind: StopperIn, Suit: s} }
func NewRuleOfTwenty() Constraint                       { return Constraint{Kind: RuleOfTwenty} }
func NewRuleOfFifteen() Constraint                      { return Constraint{Kind: RuleOfFifteen} }
func NewTwoOfTopThree(s domain.Suit) Constraint         { return Constraint{Kind: TwoOfTopThree, Suit: s} }
func NewThreeOfTopFive(s domain.Suit) Constraint        { return Constraint{Kind: ThreeOfTopFive, Suit: s} }
func NewThreeOfTopFiveOrBetter(s domain.Suit) Constraint {
	return Constraint{Kind: ThreeOfTopFiveOrBetter, Suit: s}
}

// Check evaluates the constraint against a hand.
func (c Constraint) Check(h domain.Hand) bool {
	switch c.Kind {
	case MinHcp:
		return h.HCP() >= c.N
	case MaxHcp:
		return h.HCP() <= c.N
	case MinLength:
		return h.Length(c.Suit) >= c.N
	case MaxLength:
		return h.Length(c.Suit) <= c.N
	case MaxUnbalancedness:
		return h.Shape() <= c.Shape
	case StopperIn:
		return h.HasStopper(c.Suit)
	case RuleOfTwenty:
		a, b := h.TwoLongestLengths()
		return h.HCP()+a+b >= 20
	case RuleOfFifteen:
		return h.HCP()+h.Length(domain.Spades) >= 15
	case TwoOfTopThree:
		return h.TopHonors(c.Suit, 3) >= 2
	case ThreeOfTopFive:
		return h.TopHonors(c.Suit, 5) >= 3
	case ThreeOfTopFiveOrBetter:
		return NewTwoOfTopThree(c.Suit).Check(h) || NewThreeOfTopFive(c.Suit).Check(h)
	default:
		return false
	}
}

// String renders the constraint the way the CLI's trace and interpret
// subcommands display a call's shown hand shape.
func (c Constraint) String() string {
	switch c.Kind {
	case MinHcp:
		return fmt.Sprintf("%d+ HCP", c.N)
	case MaxHcp:
		return fmt.Sprintf("%d- HCP", c.N)
	case MinLength:
		return fmt.Sprintf("%d+ %s", c.N, c.Suit)
	case MaxLength:
		return fmt.Sprintf("%d- %s", c.N, c.Suit)
	case MaxUnbalancedness:
		return fmt.Sprintf("shape <= %s", c.Shape)
	case StopperIn:
		return fmt.Sprintf("stopper in %s", c.Suit)
	case RuleOfTwenty:
		return "rule of twenty"
	case RuleOfFifteen:
		return "rule of fifteen"
	case TwoOfTopThree:
		return fmt.Sprintf("2 of top 3 honors in %s", c.Suit)
	case ThreeOfTopFive:
		return fmt.Sprintf("3 of top 5 honors in %s", c.Suit)
	case ThreeOfTopFiveOrBetter:
		return fmt.Sprintf("3 of top 5 (or 2 of top 3) honors in %s", c.Suit)
	default:
		return "?"
	}
}
