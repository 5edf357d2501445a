// Package auction models an ordered sequence of bridge calls: legality
// checking and the derived queries (current player, last bid, current
// contract, legal next calls, finishedness) that the rest of the engine
// builds on.
package auction

import "github.com/lox/bridgebid/bridge/domain"

// Auction is an append-only, validated sequence of calls made from a fixed
// dealer seat.
type Auction struct {
	Dealer domain.Position
	Calls  []domain.Call
}

// New starts an empty auction with the given dealer.
func New(dealer domain.Position) *Auction {
	return &Auction{Dealer: dealer}
}

// CurrentPlayer returns the seat on turn to call.
func (a *Auction) CurrentPlayer() domain.Position {
	return a.Dealer.Next(len(a.Calls))
}

// PositionOf returns the seat that made the call at index i.
func (a *Auction) PositionOf(i int) domain.Position {
	return a.Dealer.Next(i)
}

// AddCall appends a call without validating it; callers should use
// LegalCalls or ValidateCalls first. Returns false (without mutating) if
// the auction is already finished.
func (a *Auction) AddCall(c domain.Call) bool {
	if a.IsFinished() {
		return false
	}
	a.Calls = append(a.Calls, c)
	return true
}

// IsFinished reports whether the auction has ended: it takes at least four
// calls, and the last three are all Pass. This covers both four passes out
// from the start and three passes following the final bid or double.
func (a *Auction) IsFinished() bool {
	n := len(a.Calls)
	if n < 4 {
		return false
	}
	return allPass(a.Calls[n-3:])
}

func allPass(calls []domain.Call) bool {
	for _, c := range calls {
		if !c.IsPass() {
			return false
		}
	}
	return true
}
