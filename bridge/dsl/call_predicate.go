package dsl

import (
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// CallPredicate tests a property of a candidate call against the auction
// model built so far.
type CallPredicate func(model *handmodel.AuctionModel, call domain.Call) bool

// AllCalls returns a predicate requiring every one of ps to hold.
func AllCalls(ps ...CallPredicate) CallPredicate {
	return func(model *handmodel.AuctionModel, call domain.Call) bool {
		for _, p := range ps {
			if !p(model, call) {
				return false
			}
		}
		return true
	}
}

// NotCall negates a CallPredicate; named to match the rule-set vocabulary
// ("not_call(p)").
func NotCall(p CallPredicate) CallPredicate {
	return func(model *handmodel.AuctionModel, call domain.Call) bool { return !p(model, call) }
}

// IsPass requires the candidate to be Pass.
func IsPass(_ *handmodel.AuctionModel, call domain.Call) bool { return call.IsPass() }

// IsDouble requires the candidate to be Double.
func IsDouble(_ *handmodel.AuctionModel, call domain.Call) bool { return call.IsDouble() }

// IsLevel requires the candidate to be a bid at exactly level n.
func IsLevel(n int) CallPredicate {
	return func(_ *handmodel.AuctionModel, call domain.Call) bool {
		return call.IsBid() && call.Level == n
	}
}

// IsLevelRange requires the candidate to be a bid at a level within [lo, hi].
func IsLevelRange(lo, hi int) CallPredicate {
	return func(_ *handmodel.AuctionModel, call domain.Call) bool {
		return call.IsBid() && call.Level >= lo && call.Level <= hi
	}
}

// MaxLevel requires the candidate to be a bid at level <= n.
func MaxLevel(n int) CallPredicate {
	return func(_ *handmodel.AuctionModel, call domain.Call) bool {
		return call.IsBid() && call.Level <= n
	}
}

// MinLevel requires the candidate to be a bid at level >= n.
func MinLevel(n int) CallPredicate {
	return func(_ *handmodel.AuctionModel, call domain.Call) bool {
		return call.IsBid() && call.Level >= n
	}
}

// IsStrain requires the candidate bid to be in strain st.
func IsStrain(st domain.Strain) CallPredicate {
	return func(_ *handmodel.AuctionModel, call domain.Call) bool {
		return call.IsBid() && call.Strain == st
	}
}

// IsCall requires the candidate to be exactly the given bid.
func IsCall(level int, st domain.Strain) CallPredicate {
	return func(_ *handmodel.AuctionModel, call domain.Call) bool {
		return call.IsBid() && call.Level == level && call.Strain == st
	}
}

// IsSuit requires the candidate to be a suited bid (not notrump).
func IsSuit(_ *handmodel.AuctionModel, call domain.Call) bool {
	_, ok := call.Suit()
	return ok
}

// IsNotrump requires the candidate to be a notrump bid.
func IsNotrump(_ *handmodel.AuctionModel, call domain.Call) bool {
	return call.IsBid() && call.Strain == domain.Notrump
}

// IsMajorSuit requires the candidate to be a suited bid in a major.
func IsMajorSuit(_ *handmodel.AuctionModel, call domain.Call) bool {
	s, ok := call.Suit()
	return ok && s.IsMajor()
}

// IsMinorSuit requires the candidate to be a suited bid in a minor.
func IsMinorSuit(_ *handmodel.AuctionModel, call domain.Call) bool {
	s, ok := call.Suit()
	return ok && s.IsMinor()
}

// IsNewSuit requires the candidate's strain to be one neither the bidder
// nor their partner has shown (bid) yet in this auction.
func IsNewSuit(model *handmodel.AuctionModel, call domain.Call) bool {
	s, ok := call.Suit()
	if !ok {
		return false
	}
	me := model.Auction.CurrentPlayer()
	for i, c := range model.Auction.Calls {
		if !domain.SameSide(model.Auction.PositionOf(i), me) {
			continue
		}
		if cs, ok := c.Suit(); ok && cs == s {
			return false
		}
	}
	return true
}

// IsJump requires the candidate bid's level to be strictly above the
// minimum legal level for its strain.
func IsJump(model *handmodel.AuctionModel, call domain.Call) bool {
	if !call.IsBid() {
		return false
	}
	return call.Level > model.Auction.MinimumBidInStrain(call.Strain)
}

// IsMinLevelForStrain requires the candidate to be exactly the minimum
// legal bid in its strain (the non-jump bid).
func IsMinLevelForStrain(model *handmodel.AuctionModel, call domain.Call) bool {
	if !call.IsBid() {
		return false
	}
	return call.Level == model.Auction.MinimumBidInStrain(call.Strain)
}

// IsGameLevelOrBelow requires the candidate bid to reach at most game level
// in its own strain; non-bids always pass (the combined-points game threshold is
// handled elsewhere; here "game level" means the conventional level: 3NT,
// 4 of a major, 5 of a minor).
func IsGameLevelOrBelow(_ *handmodel.AuctionModel, call domain.Call) bool {
	if !call.IsBid() {
		return true
	}
	s, isSuit := call.Suit()
	switch {
	case call.Strain == domain.Notrump:
		return call.Level <= 3
	case isSuit && s.IsMajor():
		return call.Level <= 4
	case isSuit && s.IsMinor():
		return call.Level <= 5
	default:
		return true
	}
}

// OpponentHasNotShownSuit requires that neither opponent of the bidder has
// bid suit s yet.
func OpponentHasNotShownSuit(s domain.Suit) CallPredicate {
	return func(model *handmodel.AuctionModel, _ domain.Call) bool {
		me := model.Auction.CurrentPlayer()
		for i, c := range model.Auction.Calls {
			if domain.SameSide(model.Auction.PositionOf(i), me) {
				continue
			}
			if cs, ok := c.Suit(); ok && cs == s {
				return false
			}
		}
		return true
	}
}

// PartnerHasShownSuit requires the bidder's partner to have bid suit s.
func PartnerHasShownSuit(s domain.Suit) CallPredicate {
	return func(model *handmodel.AuctionModel, _ domain.Call) bool {
		return model.PartnerHand().HasShownSuit(s)
	}
}

// BidderHasShownSuit requires the bidder themself to have previously bid
// suit s.
func BidderHasShownSuit(s domain.Suit) CallPredicate {
	return func(model *handmodel.AuctionModel, _ domain.Call) bool {
		return model.BidderHand().HasShownSuit(s)
	}
}
