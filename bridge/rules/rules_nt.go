package rules

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/dsl"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// ntSystemOn gates a rule on the bidder's partner's most recent call
// carrying the NotrumpSystemsOn annotation (a 1NT opening or overcall),
// the precondition for Stayman and the Jacoby transfers.
func ntSystemOn(model *handmodel.AuctionModel) bool {
	return dsl.PartnerLastCallHasAnnotation(handmodel.NotrumpSystemsOn)(model)
}

// transferTarget returns the major suit the bidder's partner's most recent
// transfer call asked opener to bid: diamonds asks for hearts, hearts asks
// for spades.
func transferTarget(model *handmodel.AuctionModel) (domain.Suit, bool) {
	s, ok := partnerSuit(model)
	if !ok {
		return 0, false
	}
	switch s {
	case domain.Diamonds:
		return domain.Hearts, true
	case domain.Hearts:
		return domain.Spades, true
	default:
		return 0, false
	}
}

// isTransferAccept requires the candidate call to name exactly the suit
// the bidder's partner's transfer asked for.
func isTransferAccept(model *handmodel.AuctionModel, call domain.Call) bool {
	want, ok := transferTarget(model)
	if !ok {
		return false
	}
	got, ok := call.Suit()
	return ok && got == want
}

// transferShowsMajor shows a 5+ card suit one rank above the bid strain
// (2D asks for hearts, 2H asks for spades), the standard Jacoby transfer
// relationship.
func transferShowsMajor(target domain.Suit) dsl.Shows {
	return func(_ *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
		return []constraint.Constraint{constraint.NewMinLength(target, 5)}
	}
}

// ntSystemRules covers responder's conventional replies to a notrump
// opening or overcall: Stayman and the Jacoby major-suit transfers, opener's
// transfer acceptance, and the natural notrump raises (to 3NT and 2NT),
// which share the same NotrumpSystemsOn gate.
var ntSystemRules = []Rule{
	{
		// Stayman: artificial 2C ask for a 4-card major, forcing one round.
		Name:              "nt_system.stayman",
		AuctionPredicates: []dsl.AuctionPredicate{ntSystemOn, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(2, domain.StrainOf(domain.Clubs))},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(8)},
		Annotations:       []handmodel.Annotation{handmodel.ConventionalResponse},
	},
	{
		// Jacoby transfer to hearts: 2D asks opener to bid 2H.
		Name:              "nt_system.transfer_hearts",
		AuctionPredicates: []dsl.AuctionPredicate{ntSystemOn, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(2, domain.StrainOf(domain.Diamonds))},
		Shows:             []dsl.Shows{transferShowsMajor(domain.Hearts)},
		Annotations:       []handmodel.Annotation{handmodel.ConventionalResponse},
	},
	{
		// Jacoby transfer to spades: 2H asks opener to bid 2S.
		Name:              "nt_system.transfer_spades",
		AuctionPredicates: []dsl.AuctionPredicate{ntSystemOn, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(2, domain.StrainOf(domain.Hearts))},
		Shows:             []dsl.Shows{transferShowsMajor(domain.Spades)},
		Annotations:       []handmodel.Annotation{handmodel.ConventionalResponse},
	},
	{
		// Accepting the transfer: opener must bid exactly the suit
		// responder asked for, no hand qualification needed.
		Name:              "nt_system.transfer_accept",
		AuctionPredicates: []dsl.AuctionPredicate{iAmOpener, dsl.PartnerLastCallHasAnnotation(handmodel.ConventionalResponse)},
		CallPredicates:    []dsl.CallPredicate{dsl.IsMinLevelForStrain, isTransferAccept},
		Shows:             []dsl.Shows{},
	},
	{
		// Raise to game in notrump: 10+ HCP, no interest in a major
		// fit (Stayman/transfer rules above take priority).
		Name:              "nt_system.raise_to_3nt",
		AuctionPredicates: []dsl.AuctionPredicate{ntSystemOn, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(3, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(10)},
	},
	{
		// Invitational raise to 2NT: 8-9 HCP.
		Name:              "nt_system.raise_to_2nt",
		AuctionPredicates: []dsl.AuctionPredicate{ntSystemOn, dsl.IHaveOnlyPassed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(2, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(8, 9)},
	},
}
