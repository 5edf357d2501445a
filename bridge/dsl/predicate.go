// Package dsl provides the rule DSL primitives: auction predicates, call
// predicates, and shows clauses, composed as data by the rules package
// rather than as a class hierarchy. Each primitive is a single function
// value; rules are plain slices of these.
package dsl

import (
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// AuctionPredicate tests a property of the auction model so far, from the
// point of view of whoever is about to call.
type AuctionPredicate func(model *handmodel.AuctionModel) bool

// All returns a predicate that requires every one of ps to hold.
func All(ps ...AuctionPredicate) AuctionPredicate {
	return func(model *handmodel.AuctionModel) bool {
		for _, p := range ps {
			if !p(model) {
				return false
			}
		}
		return true
	}
}

// Not negates an AuctionPredicate.
func Not(p AuctionPredicate) AuctionPredicate {
	return func(model *handmodel.AuctionModel) bool { return !p(model) }
}

// IsNotOpen requires that no one has bid yet.
func IsNotOpen(model *handmodel.AuctionModel) bool {
	return !model.Auction.IsOpen()
}

// IsSeat requires the bidder to be on turn to make their nth call overall
// (1-indexed: seat 1 is the dealer's first turn, i.e. len(Calls) == n-1).
func IsSeat(n int) AuctionPredicate {
	return func(model *handmodel.AuctionModel) bool {
		return len(model.Auction.Calls) == n-1
	}
}

// WeOpened requires that the opener, if any, is on the bidder's side.
func WeOpened(model *handmodel.AuctionModel) bool {
	opener, ok := model.Auction.Opener()
	return ok && domain.SameSide(opener, model.Auction.CurrentPlayer())
}

// TheyOpened requires that the opener, if any, is an opponent of the
// bidder.
func TheyOpened(model *handmodel.AuctionModel) bool {
	opener, ok := model.Auction.Opener()
	return ok && !domain.SameSide(opener, model.Auction.CurrentPlayer())
}

// PartnerOpened requires that the bidder's partner was the opening bidder.
func PartnerOpened(model *handmodel.AuctionModel) bool {
	opener, ok := model.Auction.Opener()
	return ok && opener == model.Auction.CurrentPlayer().Partner()
}

// WeHaveNotActed requires that neither the bidder nor their partner has
// made a call other than Pass yet.
func WeHaveNotActed(model *handmodel.AuctionModel) bool {
	me := model.Auction.CurrentPlayer()
	for i, c := range model.Auction.Calls {
		if domain.SameSide(model.Auction.PositionOf(i), me) && !c.IsPass() {
			return false
		}
	}
	return true
}

// BidderHasNotActed requires that the bidder personally has only passed so
// far (their partner may have acted).
func BidderHasNotActed(model *handmodel.AuctionModel) bool {
	me := model.Auction.CurrentPlayer()
	for i, c := range model.Auction.Calls {
		if model.Auction.PositionOf(i) == me && !c.IsPass() {
			return false
		}
	}
	return true
}

// IHaveOnlyPassed is an alias for BidderHasNotActed, matching the named
// predicate in the rule set vocabulary.
func IHaveOnlyPassed(model *handmodel.AuctionModel) bool {
	return BidderHasNotActed(model)
}

// PartnerOvercalled requires that the opponents opened and the bidder's
// partner subsequently made a suited or notrump bid.
func PartnerOvercalled(model *handmodel.AuctionModel) bool {
	if !TheyOpened(model) {
		return false
	}
	partner := model.Auction.CurrentPlayer().Partner()
	for i, c := range model.Auction.Calls {
		if model.Auction.PositionOf(i) == partner && c.IsBid() {
			return true
		}
	}
	return false
}

// PartnerLimited requires that the bidder's partner's hand model carries an
// HCP ceiling from any of partner's interpreted calls so far (i.e. partner's
// hand is known to be capped, so responder/advancer can safely pass or sign
// off).
func PartnerLimited(model *handmodel.AuctionModel) bool {
	return model.PartnerHand().MaxHCP != nil
}

// PartnerLastCallHasAnnotation requires partner's most recent interpreted
// call to carry annotation a.
func PartnerLastCallHasAnnotation(a handmodel.Annotation) AuctionPredicate {
	return func(model *handmodel.AuctionModel) bool {
		sem, ok := model.PartnerLastCallSemantics()
		return ok && handmodel.HasAnnotation(sem.Annotations, a)
	}
}

// OpenerBidMajorAtLevel requires that the opening bid was a major suit at
// the given level.
func OpenerBidMajorAtLevel(n int) AuctionPredicate {
	return func(model *handmodel.AuctionModel) bool {
		opener, ok := model.Auction.Opener()
		if !ok {
			return false
		}
		for i, c := range model.Auction.Calls {
			if model.Auction.PositionOf(i) == opener && c.IsBid() {
				suit, isSuit := c.Suit()
				return c.Level == n && isSuit && suit.IsMajor()
			}
		}
		return false
	}
}

// LastBidMaxLevel requires the auction's last bid to be at level <= n.
func LastBidMaxLevel(n int) AuctionPredicate {
	return func(model *handmodel.AuctionModel) bool {
		bid, _, ok := model.Auction.LastBid()
		return ok && bid.Level <= n
	}
}

// LastBidLevelRange requires the last bid's level to be within [lo, hi].
func LastBidLevelRange(lo, hi int) AuctionPredicate {
	return func(model *handmodel.AuctionModel) bool {
		bid, _, ok := model.Auction.LastBid()
		return ok && bid.Level >= lo && bid.Level <= hi
	}
}

// LastBidIsSuit requires the last bid to be a suited bid (not notrump).
func LastBidIsSuit(model *handmodel.AuctionModel) bool {
	bid, _, ok := model.Auction.LastBid()
	if !ok {
		return false
	}
	_, isSuit := bid.Suit()
	return isSuit
}

// RhoMadeLastBid requires the bidder's right-hand opponent to have made
// the most recent actual bid.
func RhoMadeLastBid(model *handmodel.AuctionModel) bool {
	_, pos, ok := model.Auction.LastBid()
	return ok && pos == model.Auction.CurrentPlayer().RHO()
}

// HasUnbidMajor requires at least one major suit that neither partnership
// has bid yet (used by takeout doubles and negative doubles).
func HasUnbidMajor(model *handmodel.AuctionModel) bool {
	bid := map[domain.Suit]bool{}
	for _, c := range model.Auction.Calls {
		if s, ok := c.Suit(); ok {
			bid[s] = true
		}
	}
	return !bid[domain.Hearts] || !bid[domain.Spades]
}

// NotAuction negates an AuctionPredicate; named to match the rule-set
// vocabulary ("not_auction(p)").
func NotAuction(p AuctionPredicate) AuctionPredicate {
	return Not(p)
}
