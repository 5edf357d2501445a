// Package engine is the system's public entry point: given an auction and
// a hand, it builds the inferred model, selects the next call, and can
// explain any call already made in terms of the hand constraints it shows.
package engine

import (
	"fmt"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
	"github.com/lox/bridgebid/bridge/interpret"
	selectpkg "github.com/lox/bridgebid/bridge/select"
	"github.com/lox/bridgebid/internal/identifier"
)

// Interpretation is one call made so far, paired with the semantics the
// interpreter attributed to it (nil if none did).
type Interpretation struct {
	Position domain.Position
	Call     domain.Call
	Shows    []string
	RuleName string
}

// SelectCall returns the hand's chosen next call, replaying the auction to
// build the model first.
func SelectCall(a *auction.Auction, hand domain.Hand) domain.Call {
	return SelectCallWithTrace(a, hand).Selected
}

// SelectCallWithTrace returns the chosen call along with the full
// candidate/tie-break trace, for callers that want to show their work
// (the CLI's trace subcommand).
func SelectCallWithTrace(a *auction.Auction, hand domain.Hand) selectpkg.Trace {
	model := interpret.Build(a)
	return selectpkg.Select(model, hand)
}

// SuggestedCall is the full answer to "what should I call next": the call
// itself, the rule that produced it (empty if none did), and a rendering
// of the hand profile the call would leave the bidder showing.
type SuggestedCall struct {
	CallName    string
	RuleName    string
	Description string
}

// passLimit is the fallback SuggestedCall for an identifier that can't be
// resolved to a hand and auction at all.
var passLimit = SuggestedCall{CallName: domain.Pass.String(), RuleName: "Pass (Limit)"}

// boardFromIdentifier parses id and replays its call history into an
// Auction, returning the auction and the hand on turn to call next.
func boardFromIdentifier(id string) (*auction.Auction, domain.Hand, error) {
	board, err := identifier.ParseBoard(id)
	if err != nil {
		return nil, domain.Hand{}, err
	}

	a := auction.New(board.Dealer)
	for _, c := range board.Calls {
		if !a.AddCall(c) {
			return nil, domain.Hand{}, fmt.Errorf("identifier: call %s made after the auction finished", c)
		}
	}
	return a, board.Deal[a.CurrentPlayer()], nil
}

// GetNextCall parses a board identifier (deal plus call history) and
// renders the call its bidder should make next. An identifier that can't
// be parsed or replayed renders as Pass.
func GetNextCall(id string) string {
	a, hand, err := boardFromIdentifier(id)
	if err != nil {
		return domain.Pass.String()
	}
	return SelectCall(a, hand).String()
}

// GetSuggestedCall parses a board identifier and returns the full
// suggestion: call, rule name, and resulting hand description. An
// identifier that can't be parsed or replayed falls back to Pass (Limit)
// with no hand to describe.
func GetSuggestedCall(id string) SuggestedCall {
	a, hand, err := boardFromIdentifier(id)
	if err != nil {
		return passLimit
	}

	trace := SelectCallWithTrace(a, hand)

	ruleName := "Pass (Limit)"
	sem := semanticsFor(trace)
	if sem != nil && sem.RuleName != "" {
		ruleName = sem.RuleName
	}

	model := interpret.Build(a)
	bidder := model.BidderHand()
	if sem != nil {
		bidder.ApplyAll(sem.Shows)
	}

	return SuggestedCall{
		CallName:    trace.Selected.String(),
		RuleName:    ruleName,
		Description: bidder.Describe(),
	}
}

// semanticsFor returns the semantics the trace attributed to its selected
// call, if any.
func semanticsFor(trace selectpkg.Trace) *handmodel.CallSemantics {
	for _, cand := range trace.Candidates {
		if cand.Call == trace.Selected {
			return cand.Sem
		}
	}
	return nil
}

// GetInterpretations replays the auction and returns, for every call made
// so far, the semantics (if any) the interpreter attributed to it.
func GetInterpretations(a *auction.Auction) []Interpretation {
	model := interpret.Build(a)
	out := make([]Interpretation, 0, len(a.Calls))
	for i, call := range a.Calls {
		item := Interpretation{Position: a.PositionOf(i), Call: call}
		if i < len(model.Semantics) && model.Semantics[i] != nil {
			sem := model.Semantics[i]
			item.RuleName = sem.RuleName
			item.Shows = describeConstraints(sem.Shows)
		}
		out = append(out, item)
	}
	return out
}

func describeConstraints(cs []constraint.Constraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// HandModelFor replays the auction and returns the inferred profile for
// position p.
func HandModelFor(a *auction.Auction, p domain.Position) *handmodel.HandModel {
	return interpret.Build(a).HandOf(p)
}
