package rules

import (
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/dsl"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// iAmOpener requires the bidder themself to be the opening bidder, i.e.
// this is opener's rebid rather than responder's.
func iAmOpener(model *handmodel.AuctionModel) bool {
	opener, ok := model.Auction.Opener()
	return ok && opener == model.Auction.CurrentPlayer()
}

// partnerSuit returns the suit of the bidder's partner's most recent
// suited bid, if any.
func partnerSuit(model *handmodel.AuctionModel) (domain.Suit, bool) {
	partner := model.Auction.CurrentPlayer().Partner()
	for i := len(model.Auction.Calls) - 1; i >= 0; i-- {
		if model.Auction.PositionOf(i) != partner {
			continue
		}
		if c := model.Auction.Calls[i]; c.IsBid() {
			return c.Suit()
		}
	}
	return 0, false
}

// isRaiseOfPartnerSuit requires the candidate call to name the same suit
// as the bidder's partner's most recent suited bid.
func isRaiseOfPartnerSuit(model *handmodel.AuctionModel, call domain.Call) bool {
	want, ok := partnerSuit(model)
	if !ok {
		return false
	}
	got, ok := call.Suit()
	return ok && got == want
}

// rebidRules covers opener's second call: rebidding the opening suit,
// raising responder's suit, rebidding notrump, and the two Jacoby 2NT
// continuations. All fire only once the bidder is confirmed to be the
// opener (iAmOpener). No rule in the registry covers responder's second
// call: the advance rules fire only after partner doubled or overcalled.
var rebidRules = []Rule{
	{
		// Balanced 15-17 facing Jacoby 2NT: bid game in notrump rather than
		// showing extra trump length, since the partnership already has
		// its fit and a flat opener adds nothing by going to the 3-level
		// in the suit. Must precede rebid.jacoby_3_major in the registry:
		// the planner below assumes this rule has first refusal on
		// balanced 15-17 hands.
		Name:              "rebid.jacoby_3nt",
		AuctionPredicates: []dsl.AuctionPredicate{iAmOpener, dsl.PartnerLastCallHasAnnotation(handmodel.Jacoby2NT)},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(3, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(15, 17), dsl.ShowBalanced},
	},
	{
		// Jacoby 2NT continuation: 3 of the agreed major, for anything not
		// covered by the flat 15-17 notrump rebid above (extra trump
		// length, a singleton/void, or 18+ HCP).
		Name:              "rebid.jacoby_3_major",
		AuctionPredicates: []dsl.AuctionPredicate{iAmOpener, dsl.PartnerLastCallHasAnnotation(handmodel.Jacoby2NT)},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(3), dsl.IsMajorSuit, isRaiseOfOpenerSuit},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(15)},
		Planner:           jacoby3MajorPlanner,
	},
	{
		// Raise responder's suit: enough support for an eight-card fit
		// given responder's shown length (never less than 3), minimum-range rebid
		// values (the opening already promised 11+, so no further HCP
		// floor is shown here beyond what the opening rule set).
		Name:              "rebid.raise_responder_suit",
		AuctionPredicates: []dsl.AuctionPredicate{iAmOpener},
		CallPredicates:    []dsl.CallPredicate{dsl.IsSuit, isRaiseOfPartnerSuit, dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowSupportLength},
	},
	{
		// Rebid the opening suit: 6+ cards, denies 4-card support for any
		// suit responder has shown (covered by the raise rule above, which
		// precedes this one).
		Name:              "rebid.own_suit",
		AuctionPredicates: []dsl.AuctionPredicate{iAmOpener},
		CallPredicates:    []dsl.CallPredicate{dsl.IsSuit, isRaiseOfOpenerSuit, dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowMinSuitLength(6)},
	},
	{
		// 1NT rebid: balanced minimum opener, no fit found yet.
		Name:              "rebid.1nt",
		AuctionPredicates: []dsl.AuctionPredicate{iAmOpener},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(1, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(12, 14), dsl.ShowBalanced},
	},
	{
		// Plain pass: opener's values are exhausted and nothing above
		// fits. Gated on the hand actually failing to improve the
		// contract, so the ranker never offers pass as a live option
		// alongside a sound rebid.
		Name:              "rebid.pass",
		AuctionPredicates: []dsl.AuctionPredicate{iAmOpener},
		CallPredicates:    []dsl.CallPredicate{dsl.IsPass},
		Shows:             []dsl.Shows{dsl.ShowBetterContractIsRemote},
	},
}
