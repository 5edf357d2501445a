package rules

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/dsl"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// openerSuit returns the suit of the opening bid, if the opening bid was
// suited, along with whether an opener exists at all.
func openerSuit(model *handmodel.AuctionModel) (domain.Suit, bool) {
	opener, ok := model.Auction.Opener()
	if !ok {
		return 0, false
	}
	for i, c := range model.Auction.Calls {
		if model.Auction.PositionOf(i) == opener && c.IsBid() {
			return c.Suit()
		}
	}
	return 0, false
}

// openerBidMajor1 gates on the opening bid being a 1-level major, the
// precondition for Jacoby 2NT.
func openerBidMajor1(model *handmodel.AuctionModel) bool {
	return dsl.OpenerBidMajorAtLevel(1)(model)
}

// isRaiseOfOpenerSuit requires the candidate call to name the same suit as
// the opening bid.
func isRaiseOfOpenerSuit(model *handmodel.AuctionModel, call domain.Call) bool {
	want, ok := openerSuit(model)
	if !ok {
		return false
	}
	got, ok := call.Suit()
	return ok && got == want
}

// showSupportInOpenerSuit shows the length needed in whatever suit opener
// named for the combined holding to reach an eight-card fit.
func showSupportInOpenerSuit(minTotal int) dsl.Shows {
	return func(model *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
		s, ok := openerSuit(model)
		if !ok {
			return nil
		}
		return []constraint.Constraint{constraint.NewMinLength(s, minTotal)}
	}
}

// showLengthInSuitsNoOneBid shows minLength cards in every suit that
// neither partnership has bid yet.
func showLengthInSuitsNoOneBid(minLength int) dsl.Shows {
	return func(model *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
		var out []constraint.Constraint
		for _, s := range domain.Suits {
			probe := domain.NewBid(1, domain.StrainOf(s))
			if dsl.IsNewSuit(model, probe) && dsl.OpponentHasNotShownSuit(s)(model, probe) {
				out = append(out, constraint.NewMinLength(s, minLength))
			}
		}
		return out
	}
}

// responseRules covers responder's first call after partner's suit opening:
// raises, forcing new-suit responses, and the Jacoby 2NT game force.
// Responses to a 1NT opening (Stayman, transfers) live in rules_nt.go,
// gated on the NotrumpSystemsOn annotation opener's 1NT attaches.
var responseRules = []Rule{
	{
		// Negative double: partner opened, RHO made the last bid (an
		// overcall), the bidder has not acted yet, a major is still unbid,
		// and we hold length in the suit(s) neither partnership has bid.
		// Distinct from the takeout double (which fires when the opponents
		// opened) by the WeOpened/PartnerOpened predicates.
		Name:              "response.negative_double",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOpened, dsl.RhoMadeLastBid, dsl.BidderHasNotActed, dsl.HasUnbidMajor},
		CallPredicates:    []dsl.CallPredicate{dsl.IsDouble},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(6), showLengthInSuitsNoOneBid(4)},
		Annotations:       []handmodel.Annotation{handmodel.ConventionalResponse},
	},
	{
		// Jacoby 2NT: an artificial game-force raise of partner's 1-level
		// major opening, promising 4+ trump and opening values. The opener
		// rebid rules (rules_rebid.go) interpret this further via the
		// Jacoby2NT annotation.
		Name:              "response.jacoby_2nt",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOpened, dsl.IHaveOnlyPassed, openerBidMajor1},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(2, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(13), showSupportInOpenerSuit(4)},
		Annotations:       []handmodel.Annotation{handmodel.Jacoby2NT},
	},
	{
		// Single raise of opener's major: 6-9 support points, 3+ trump.
		Name:              "response.raise_major_single",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOpened, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(2), dsl.IsMajorSuit, isRaiseOfOpenerSuit, dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(6, 9), dsl.ShowSupportLength},
	},
	{
		// Single raise of opener's minor: the same shape and values, since
		// minor agreement rarely reaches 3NT without further exploration.
		Name:              "response.raise_minor_single",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOpened, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(2), dsl.IsMinorSuit, isRaiseOfOpenerSuit, dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(6, 9), dsl.ShowSupportLength},
	},
	{
		// New suit at the 1-level, forcing: 4+ cards, 6+ HCP, no upper
		// bound (responder may hold a very strong hand and start low).
		Name:              "response.new_suit_one_level",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOpened, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(1), dsl.IsSuit, dsl.IsNewSuit},
		Shows:             []dsl.Shows{dsl.ShowMinSuitLength(4), dsl.ShowMinHcp(6)},
	},
	{
		// New suit at the 2-level without a jump: 4+ cards (5+ in a minor
		// is natural too, but 4 is the minimum promise), 10+ HCP since it
		// forecloses the 1-level.
		Name:              "response.new_suit_two_level",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOpened, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(2), dsl.IsSuit, dsl.IsNewSuit, dsl.IsMinLevelForStrain},
		Shows:             []dsl.Shows{dsl.ShowMinSuitLength(4), dsl.ShowMinHcp(10)},
	},
	{
		// 1NT response: 6-9 HCP, nothing else shown. Registry order does
		// not decide between this and a raise or new suit (each rule claims
		// a different call); the selector's purpose order does. A major
		// raise or a 1-level major new suit outranks 1NT, while a minor
		// raise or a minor new suit ranks below it.
		Name:              "response.1nt",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.PartnerOpened, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(1, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(6, 9)},
	},
}
