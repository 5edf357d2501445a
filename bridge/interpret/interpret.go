// Package interpret walks the rule registry against an in-progress auction
// to build the inferred per-seat hand profiles the rest of the engine
// consumes: one HandModel per position, and one CallSemantics (or nil) per
// call already made.
package interpret

import (
	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
	"github.com/lox/bridgebid/bridge/rules"
)

// Interpret returns the first rule in the registry whose predicates all
// hold for call against model, or false if no rule claims it (a call with
// no interpretation tightens nothing).
func Interpret(model *handmodel.AuctionModel, call domain.Call) (*handmodel.CallSemantics, bool) {
	for _, r := range rules.Registry() {
		if sem, ok := r.GetSemantics(model, call); ok {
			return sem, true
		}
	}
	return nil, false
}

// Build replays a (possibly partial) auction from the opening call,
// interpreting each one in turn and folding its semantics into the running
// per-seat hand profiles. This is the system's central inference step:
// each call's meaning depends on the model built from every call before
// it, so calls must be replayed in order rather than interpreted in
// isolation.
func Build(a *auction.Auction) *handmodel.AuctionModel {
	model := handmodel.NewAuctionModel(a)

	for i, call := range a.Calls {
		bidder := a.PositionOf(i)

		// Interpret against a model truncated to the calls made so far,
		// since the bidder's own call cannot depend on its own semantics.
		prefix := &auction.Auction{Dealer: a.Dealer, Calls: a.Calls[:i]}
		step := &handmodel.AuctionModel{Auction: prefix, Hands: model.Hands, Semantics: model.Semantics}

		sem, ok := Interpret(step, call)
		model.Semantics = append(model.Semantics, nil)
		if !ok {
			continue
		}
		model.Semantics[i] = sem
		model.Hands[bidder].ApplyAll(sem.Shows)
	}

	return model
}
