package dsl

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// Shows produces the HandConstraints a call demonstrates, given the
// auction model built so far and the candidate call itself (so
// call-indexed clauses can read the call's suit or level).
type Shows func(model *handmodel.AuctionModel, call domain.Call) []constraint.Constraint

// Concat runs every shows-clause and concatenates their results in order.
func Concat(clauses ...Shows) Shows {
	return func(model *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
		var out []constraint.Constraint
		for _, cl := range clauses {
			out = append(out, cl(model, call)...)
		}
		return out
	}
}

// ShowMinHcp shows a fixed HCP floor.
func ShowMinHcp(n int) Shows {
	return func(_ *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
		return []constraint.Constraint{constraint.NewMinHcp(n)}
	}
}

// ShowMaxHcp shows a fixed HCP ceiling.
func ShowMaxHcp(n int) Shows {
	return func(_ *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
		return []constraint.Constraint{constraint.NewMaxHcp(n)}
	}
}

// ShowHcpRange shows a fixed HCP floor and ceiling.
func ShowHcpRange(lo, hi int) Shows {
	return func(_ *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
		return []constraint.Constraint{constraint.NewMinHcp(lo), constraint.NewMaxHcp(hi)}
	}
}

// ShowBalanced shows a balanced shape bound.
func ShowBalanced(_ *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
	return []constraint.Constraint{constraint.NewMaxUnbalancedness(domain.Balanced)}
}

// ShowSemiBalanced shows a semi-balanced-or-better shape bound.
func ShowSemiBalanced(_ *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
	return []constraint.Constraint{constraint.NewMaxUnbalancedness(domain.SemiBalanced)}
}

// ShowMinSuitLength shows a minimum length in the candidate call's own
// suit.
func ShowMinSuitLength(n int) Shows {
	return func(_ *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
		s, ok := call.Suit()
		if !ok {
			return nil
		}
		return []constraint.Constraint{constraint.NewMinLength(s, n)}
	}
}

// ShowPreemptLength shows the length a preempt at the candidate's level
// promises: level + 4 (a 3-level preempt promises a 7-card suit, etc).
func ShowPreemptLength(_ *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
	s, ok := call.Suit()
	if !ok {
		return nil
	}
	return []constraint.Constraint{constraint.NewMinLength(s, call.Level+4)}
}

// ShowOpeningSuitLength shows the length a one-level suit opening
// promises: 5 for a major, 4 for a minor.
func ShowOpeningSuitLength(_ *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
	s, ok := call.Suit()
	if !ok {
		return nil
	}
	n := 4
	if s.IsMajor() {
		n = 5
	}
	return []constraint.Constraint{constraint.NewMinLength(s, n)}
}
