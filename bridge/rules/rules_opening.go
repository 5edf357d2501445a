package rules

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/dsl"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// openingRules covers the first call of the auction: the strong artificial
// 2C, one-level suit openings (natural length/shape rules plus the Rule of
// Twenty shortcut for seats 1-3 and Rule of Fifteen for seat 4), weak
// two/three-level preempts, and the balanced 1NT opening.
var openingRules = []Rule{
	{
		// 22+ HCP: the highest-priority opening rule, ahead of every
		// natural opening so a game-forcing hand is never mistaken for a
		// natural 1-level bid.
		Name:              "opening.strong_2c",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.IsNotOpen},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(2, domain.StrainOf(domain.Clubs))},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(22)},
	},
	{
		Name:              "opening.1nt_balanced",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.IsNotOpen},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(1, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(15, 17), dsl.ShowBalanced},
	},
	{
		// One-level suit opening, seats 1-3: Rule of Twenty governs
		// acceptance via the planner below, which ignores the HCP shows
		// and instead checks shape-adjusted point-count directly; the
		// shows list still documents the natural length promised.
		Name:              "opening.one_level_suit",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.IsNotOpen, dsl.NotAuction(dsl.IsSeat(4))},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(1), dsl.IsSuit},
		Shows:             []dsl.Shows{dsl.ShowOpeningSuitLength, dsl.ShowMinHcp(11)},
		Planner:           ruleOfTwentyPlanner,
	},
	{
		// Seat 4: Rule of Fifteen substitutes for Rule of Twenty, since a
		// hand that can't open by seat 4 (three passes already) has no
		// fit to discover; spades and high cards are what matter.
		Name:              "opening.one_level_suit_fourth_seat",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.IsNotOpen, dsl.IsSeat(4)},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(1), dsl.IsSuit},
		Shows: []dsl.Shows{
			dsl.ShowOpeningSuitLength,
			func(_ *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
				return []constraint.Constraint{constraint.NewRuleOfFifteen()}
			},
		},
	},
	{
		// Weak two in a major: 6-card suit, 6-10 HCP.
		Name:              "opening.weak_two_major",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.IsNotOpen},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(2), dsl.IsMajorSuit},
		Shows:             []dsl.Shows{dsl.ShowMinSuitLength(6), dsl.ShowHcpRange(6, 10)},
	},
	{
		// Preempt at the 3-level or higher: length = level + 4, weak hand.
		Name:              "opening.preempt",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.IsNotOpen},
		CallPredicates:    []dsl.CallPredicate{dsl.MinLevel(3), dsl.IsSuit},
		Shows:             []dsl.Shows{dsl.ShowPreemptLength, dsl.ShowHcpRange(6, 10)},
	},
}
