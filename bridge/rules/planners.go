package rules

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// ruleOfTwentyPlanner is used by non-fourth-seat 1-level suit openings: it
// ignores the shows' HCP constraint entirely and instead requires the
// Rule of Twenty plus a minimum length in the call's suit (5 for majors, 3
// for minors; the minor minimum is lower than the natural opening length,
// the major minimum is the same).
func ruleOfTwentyPlanner(_ *handmodel.AuctionModel, hand domain.Hand, call domain.Call, _ []constraint.Constraint) bool {
	s, ok := call.Suit()
	if !ok {
		return false
	}
	minLen := 3
	if s.IsMajor() {
		minLen = 5
	}
	return constraint.NewRuleOfTwenty().Check(hand) && hand.Length(s) >= minLen
}

// takeoutDoublePlanner accepts a takeout double outright on 17+ HCP
// regardless of shape, and otherwise falls back to the rule's full shape
// requirements (shortness in the opponent's suit, support for the
// unbid suits).
func takeoutDoublePlanner(model *handmodel.AuctionModel, hand domain.Hand, call domain.Call, shows []constraint.Constraint) bool {
	if hand.HCP() >= 17 {
		return true
	}
	return constraint.CheckAll(shows, hand)
}

// jacoby3MajorPlanner is used by the Jacoby 2NT opener's 3-of-the-major
// rebid: it requires the strong-rebid HCP gate to pass, and additionally
// that the hand is not balanced or semi-balanced in the 15-17 HCP band
// (those hands instead rebid 3NT, handled by a separate rule that precedes
// this one in the registry).
func jacoby3MajorPlanner(model *handmodel.AuctionModel, hand domain.Hand, call domain.Call, shows []constraint.Constraint) bool {
	if !constraint.CheckAll(shows, hand) {
		return false
	}
	if hand.HCP() >= 15 && hand.HCP() <= 17 {
		shape := hand.Shape()
		if shape == domain.Balanced || shape == domain.SemiBalanced {
			return false
		}
	}
	return true
}
