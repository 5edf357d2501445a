package rules

import (
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/dsl"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// partnerDoubled requires the bidder's partner's most recent call to have
// been a double (the precondition for advancing a takeout double).
func partnerDoubled(model *handmodel.AuctionModel) bool {
	partner := model.Auction.CurrentPlayer().Partner()
	for i := len(model.Auction.Calls) - 1; i >= 0; i-- {
		if model.Auction.PositionOf(i) != partner {
			continue
		}
		return model.Auction.Calls[i].IsDouble()
	}
	return false
}

// isOpponentSuit requires the candidate to be a suited bid in a suit either
// opponent of the bidder has bid.
func isOpponentSuit(model *handmodel.AuctionModel, call domain.Call) bool {
	s, ok := call.Suit()
	return ok && !dsl.OpponentHasNotShownSuit(s)(model, call)
}

// advanceRules covers advancer's first call after partner's takeout double
// or overcall: the forced-ish response to a double, and raising or
// rebidding partner's suit.
var advanceRules = []Rule{
	{
		// Response to partner's takeout double: bid the longest unbid
		// suit. No lower HCP floor, since advancer is often forced to act
		// on very little (the double already promised shape and values).
		Name:              "advance.respond_to_double",
		AuctionPredicates: []dsl.AuctionPredicate{partnerDoubled, dsl.BidderHasNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsSuit, dsl.IsNewSuit, dsl.NotCall(isOpponentSuit), dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowMinSuitLength(3)},
	},
	{
		// Cuebid response to partner's takeout double: bids the opener's
		// suit back at them, showing a strong hand with support for any
		// of the unbid suits (the classic "cuebid asks partner to describe
		// further" advance).
		Name:              "advance.cuebid_response_to_double",
		AuctionPredicates: []dsl.AuctionPredicate{partnerDoubled, dsl.BidderHasNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsSuit, isOpponentSuit, dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(10)},
		Annotations:       []handmodel.Annotation{handmodel.ConventionalResponse},
	},
	{
		// Raise partner's overcall: 3+ card support, a few values since
		// the overcall already promised shape and a sound holding.
		Name:              "advance.raise_overcall",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOvercalled, dsl.BidderHasNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsSuit, isRaiseOfPartnerSuit, dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(6, 10), dsl.ShowSupportLength},
	},
	{
		// Notrump advance over partner's overcall: a stopper in the
		// opener's suit plus enough values to compete at notrump.
		Name:              "advance.1nt_over_overcall",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOvercalled, dsl.BidderHasNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(1, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(8, 11), dsl.ShowStopperInOpponentSuit},
	},
}
