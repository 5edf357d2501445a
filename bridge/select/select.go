// Package selectpkg chooses one call from the candidates the rank package
// has grouped by purpose: it picks the highest-priority non-empty purpose
// group, then narrows that group to one call with a short-circuiting chain
// of tie-breakers.
package selectpkg

import (
	"sort"

	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
	"github.com/lox/bridgebid/bridge/interpret"
	"github.com/lox/bridgebid/bridge/rank"
)

// Candidate is a legal call the bidder's hand supports, paired with the
// semantics the interpreter attributed to it and its ranked purpose.
type Candidate struct {
	Call    domain.Call
	Sem     *handmodel.CallSemantics
	Purpose rank.CallPurpose
}

// Step records one decision the selector made, for trace output.
type Step struct {
	Description string
	Remaining   []domain.Call
}

// Trace is the full sequence of narrowing steps that produced a selection.
type Trace struct {
	Candidates []Candidate
	Steps      []Step
	Selected   domain.Call
}

// candidates returns every legal call the hand actually supports: a call
// with semantics the hand satisfies, or an uninterpreted Pass (the
// always-available default when nothing else fits).
func candidates(model *handmodel.AuctionModel, hand domain.Hand) []Candidate {
	var out []Candidate
	for _, call := range model.Auction.LegalCalls() {
		sem, ok := interpret.Interpret(model, call)
		switch {
		case ok && sem.Satisfied(model, hand, call):
			out = append(out, Candidate{Call: call, Sem: sem, Purpose: rank.Classify(call, sem, model)})
		case !ok && call.IsPass():
			out = append(out, Candidate{Call: call, Purpose: rank.Miscellaneous})
		}
	}
	return out
}

// tieBreaker narrows a set of calls given the bidder's actual hand. It
// returns the subset it prefers; callers adopt that subset only if it is
// both non-empty and strictly smaller than the input (a genuine
// narrowing), otherwise the tie survives to the next breaker.
type tieBreaker func(hand domain.Hand, calls []domain.Call) []domain.Call

// uniqueLongestSuit prefers the call naming the hand's single longest suit.
func uniqueLongestSuit(hand domain.Hand, calls []domain.Call) []domain.Call {
	best := -1
	bestLen := -1
	tie := false
	for _, s := range domain.Suits {
		l := hand.Length(s)
		if l > bestLen {
			bestLen, best, tie = l, int(s), false
		} else if l == bestLen {
			tie = true
		}
	}
	if tie || best < 0 {
		return nil
	}
	return filterBySuit(calls, domain.Suit(best))
}

// preferHigherWithFivePlus realises the classical "five-five, bid the
// higher" opener rule: among level-1 items whose chosen suit holds 5+
// cards and are tied in length across at least two distinct suits, picks
// the single call naming the higher-ranking strain.
func preferHigherWithFivePlus(hand domain.Hand, calls []domain.Call) []domain.Call {
	bestLen := -1
	var tiedSuits []domain.Suit
	for _, c := range calls {
		if c.Level != 1 {
			continue
		}
		s, ok := c.Suit()
		if !ok {
			continue
		}
		l := hand.Length(s)
		if l < 5 {
			continue
		}
		switch {
		case l > bestLen:
			bestLen, tiedSuits = l, []domain.Suit{s}
		case l == bestLen:
			tiedSuits = append(tiedSuits, s)
		}
	}
	if len(tiedSuits) < 2 {
		return nil
	}

	highest := tiedSuits[0]
	for _, s := range tiedSuits[1:] {
		if s > highest {
			highest = s
		}
	}
	return filterBySuit(calls, highest)
}

// preferShowingLongerLength prefers whichever candidate suit the hand holds
// more cards in, breaking ties left when lengths are equal.
func preferShowingLongerLength(hand domain.Hand, calls []domain.Call) []domain.Call {
	bestLen := -1
	var out []domain.Call
	for _, c := range calls {
		s, ok := c.Suit()
		if !ok {
			continue
		}
		l := hand.Length(s)
		switch {
		case l > bestLen:
			bestLen = l
			out = []domain.Call{c}
		case l == bestLen:
			out = append(out, c)
		}
	}
	return out
}

// preferHigherMinor prefers diamonds over clubs when both are candidates
// and equally long with 4+ cards, since bidding the higher-ranking minor
// first keeps more room to describe a second suit later.
func preferHigherMinor(hand domain.Hand, calls []domain.Call) []domain.Call {
	var diamonds []domain.Call
	haveClubs := false
	for _, c := range calls {
		if s, ok := c.Suit(); ok && s == domain.Diamonds {
			diamonds = append(diamonds, c)
		} else if ok && s == domain.Clubs {
			haveClubs = true
		}
	}
	if !haveClubs || hand.Length(domain.Diamonds) < 4 || hand.Length(domain.Diamonds) != hand.Length(domain.Clubs) {
		return nil
	}
	return diamonds
}

func filterBySuit(calls []domain.Call, suit domain.Suit) []domain.Call {
	var out []domain.Call
	for _, c := range calls {
		if s, ok := c.Suit(); ok && s == suit {
			out = append(out, c)
		}
	}
	return out
}

// firstCall deterministically picks the lowest-ranked bid among calls
// (Pass sorts last, since an actual bid is always preferred once the
// candidate set has narrowed this far).
func firstCall(calls []domain.Call) domain.Call {
	sorted := append([]domain.Call(nil), calls...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsPass() != b.IsPass() {
			return b.IsPass()
		}
		if !a.IsBid() || !b.IsBid() {
			return a.Kind < b.Kind
		}
		return domain.LessBid(a.Level, a.Strain, b.Level, b.Strain)
	})
	return sorted[0]
}

// tieBreakers is the fixed narrowing chain, applied in order until one
// call remains.
var tieBreakers = []tieBreaker{
	uniqueLongestSuitBreaker,
	preferHigherMinorBreaker,
	preferHigherWithFivePlusBreaker,
	preferShowingLongerLengthBreaker,
}

// The *Breaker wrappers forward to the underlying functions; the names shown
// in trace output come from tieBreakerNames, index for index.
func uniqueLongestSuitBreaker(hand domain.Hand, calls []domain.Call) []domain.Call {
	return uniqueLongestSuit(hand, calls)
}
func preferHigherMinorBreaker(hand domain.Hand, calls []domain.Call) []domain.Call {
	return preferHigherMinor(hand, calls)
}
func preferHigherWithFivePlusBreaker(hand domain.Hand, calls []domain.Call) []domain.Call {
	return preferHigherWithFivePlus(hand, calls)
}
func preferShowingLongerLengthBreaker(hand domain.Hand, calls []domain.Call) []domain.Call {
	return preferShowingLongerLength(hand, calls)
}

var tieBreakerNames = []string{
	"UniqueLongestSuit",
	"PreferHigherMinor",
	"PreferHigherWithFivePlus",
	"PreferShowingLongerLength",
}

// Select returns the hand's chosen call along with the trace of how it was
// narrowed down.
func Select(model *handmodel.AuctionModel, hand domain.Hand) Trace {
	cands := candidates(model, hand)
	trace := Trace{Candidates: cands}

	if len(cands) == 0 {
		trace.Selected = domain.Pass
		return trace
	}

	bestPurpose := cands[0].Purpose
	for _, c := range cands {
		if c.Purpose < bestPurpose {
			bestPurpose = c.Purpose
		}
	}

	var group []domain.Call
	for _, c := range cands {
		if c.Purpose == bestPurpose {
			group = append(group, c.Call)
		}
	}
	trace.Steps = append(trace.Steps, Step{Description: "purpose:" + bestPurpose.String(), Remaining: group})

	for i, tb := range tieBreakers {
		if len(group) == 1 {
			break
		}
		narrowed := tb(hand, group)
		if len(narrowed) > 0 && len(narrowed) < len(group) {
			group = narrowed
			trace.Steps = append(trace.Steps, Step{Description: tieBreakerNames[i], Remaining: group})
		}
	}

	selected := group[0]
	if len(group) > 1 {
		selected = firstCall(group)
		trace.Steps = append(trace.Steps, Step{Description: "FirstCall", Remaining: []domain.Call{selected}})
	}

	trace.Selected = selected
	return trace
}
