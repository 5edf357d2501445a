// Package rules holds the fixed rule set: one record per convention or
// natural pattern (opening, response, rebid, competitive action, advance,
// notrump system entry, Jacoby 2NT), each a bundle of the dsl package's
// predicates and shows-clauses plus an optional planner override.
package rules

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/dsl"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// Rule is a declarative bundle: it fires when every auction predicate and
// every call predicate holds, and then produces CallSemantics from the
// concatenation of its shows-clauses.
type Rule struct {
	Name              string
	AuctionPredicates []dsl.AuctionPredicate
	CallPredicates    []dsl.CallPredicate
	Shows             []dsl.Shows
	Annotations       []handmodel.Annotation
	Planner           handmodel.Planner
}

// GetSemantics returns the semantics this rule assigns to call, or false
// if any predicate fails.
func (r Rule) GetSemantics(model *handmodel.AuctionModel, call domain.Call) (*handmodel.CallSemantics, bool) {
	for _, p := range r.AuctionPredicates {
		if !p(model) {
			return nil, false
		}
	}
	for _, p := range r.CallPredicates {
		if !p(model, call) {
			return nil, false
		}
	}

	var shows []constraint.Constraint
	for _, s := range r.Shows {
		shows = append(shows, s(model, call)...)
	}
	shows = constraint.Optimize(shows)

	return &handmodel.CallSemantics{
		Shows:       shows,
		Annotations: r.Annotations,
		RuleName:    r.Name,
		Planner:     r.Planner,
	}, true
}
