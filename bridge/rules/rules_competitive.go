package rules

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/dsl"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// showTwoOfTopThreeInCallSuit shows the "two of the top three" honor
// requirement for whichever suit the candidate call names.
func showTwoOfTopThreeInCallSuit(_ *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
	s, ok := call.Suit()
	if !ok {
		return nil
	}
	return []constraint.Constraint{constraint.NewTwoOfTopThree(s)}
}

// competitiveRules covers action taken against an opponent's opening:
// takeout doubles and simple suit overcalls. Negative doubles (our side
// opened, LHO overcalled) live in rules_response.go alongside the rest of
// responder's options, since they compete with natural raises and new-suit
// bids for the same seat.
var competitiveRules = []Rule{
	{
		// Takeout double: opponents opened, we haven't acted, shortness in
		// their suit is implied by the support-for-unbid-suits shows. The
		// planner lets 17+ HCP hands double regardless of shape.
		Name:              "competitive.takeout_double",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.TheyOpened, dsl.WeHaveNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsDouble},
		Shows:             []dsl.Shows{dsl.ShowMinHcp(12), dsl.ShowSupportForUnbidSuits(3)},
		Planner:           takeoutDoublePlanner,
	},
	{
		// Simple suit overcall at the 1-level: 8-16 HCP, 5+ card suit,
		// two of the top three honors (a "sound" overcall standard).
		Name:              "competitive.overcall_one_level",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.TheyOpened, dsl.WeHaveNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(1), dsl.IsSuit, dsl.IsNewSuit},
		Shows:             []dsl.Shows{dsl.ShowMinSuitLength(5), dsl.ShowHcpRange(8, 16), showTwoOfTopThreeInCallSuit},
		Annotations:       []handmodel.Annotation{handmodel.OvercallAnnotation},
	},
	{
		// Simple suit overcall at the 2-level: a touch more shape/values
		// required since it commits the partnership higher.
		Name:              "competitive.overcall_two_level",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.TheyOpened, dsl.WeHaveNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsLevel(2), dsl.IsSuit, dsl.IsNewSuit},
		Shows:             []dsl.Shows{dsl.ShowMinSuitLength(5), dsl.ShowHcpRange(10, 16), showTwoOfTopThreeInCallSuit},
		Annotations:       []handmodel.Annotation{handmodel.OvercallAnnotation},
	},
	{
		// 1NT overcall: balanced, 15-18 HCP, stopper in opponent's suit.
		Name:              "competitive.overcall_1nt",
		AuctionPredicates: []dsl.AuctionPredicate{dsl.TheyOpened, dsl.WeHaveNotActed},
		CallPredicates:    []dsl.CallPredicate{dsl.IsCall(1, domain.Notrump)},
		Shows:             []dsl.Shows{dsl.ShowHcpRange(15, 18), dsl.ShowBalanced, dsl.ShowStopperInOpponentSuit},
		Annotations:       []handmodel.Annotation{handmodel.OvercallAnnotation, handmodel.NotrumpSystemsOn},
	},
}
