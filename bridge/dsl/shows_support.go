package dsl

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
	"github.com/lox/bridgebid/bridge/points"
)

// ShowSupportLength shows the minimum length the bidder must hold in the
// candidate call's suit to reach an 8-card combined fit, given partner's
// currently known minimum length in that suit (at least 3, since raising
// a suit partner has shown at least 3 cards of needs only 3 from us for an
// eight-card fit if partner has 5; never less than 3).
func ShowSupportLength(model *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
	s, ok := call.Suit()
	if !ok {
		return nil
	}
	partnerMin := model.PartnerHand().MinLength[s]
	need := 8 - partnerMin
	if need < 3 {
		need = 3
	}
	return []constraint.Constraint{constraint.NewMinLength(s, need)}
}

// ShowSupportValues shows the HCP the bidder must hold so that, combined
// with partner's known minimum, the partnership reaches the support-raise
// threshold for the candidate's level.
func ShowSupportValues(model *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
	if !call.IsBid() || call.Level < 1 || call.Level > 7 {
		return nil
	}
	need := points.SupportRaiseThreshold[call.Level] - model.PartnerHand().KnownMinHCP()
	if need < 0 {
		need = 0
	}
	return []constraint.Constraint{constraint.NewMinHcp(need)}
}

// ShowSufficientValues shows the HCP the bidder must hold so that,
// combined with partner's known minimum, the partnership reaches the
// (suited or notrump) combined-point threshold for the candidate's level.
func ShowSufficientValues(model *handmodel.AuctionModel, call domain.Call) []constraint.Constraint {
	if !call.IsBid() || call.Level < 1 || call.Level > 7 {
		return nil
	}
	threshold := points.SuitedThreshold[call.Level]
	if call.Strain == domain.Notrump {
		threshold = points.NotrumpThreshold[call.Level]
	}
	need := threshold - model.PartnerHand().KnownMinHCP()
	if need < 0 {
		need = 0
	}
	return []constraint.Constraint{constraint.NewMinHcp(need)}
}

// opponentShownSuits returns the set of suits either opponent of the
// bidder has bid so far.
func opponentShownSuits(model *handmodel.AuctionModel) map[domain.Suit]bool {
	me := model.Auction.CurrentPlayer()
	shown := map[domain.Suit]bool{}
	for i, c := range model.Auction.Calls {
		if domain.SameSide(model.Auction.PositionOf(i), me) {
			continue
		}
		if s, ok := c.Suit(); ok {
			shown[s] = true
		}
	}
	return shown
}

// ShowStopperInOpponentSuit shows a stopper in every suit either opponent
// has bid, for notrump bids that must guard against the run of those
// suits.
func ShowStopperInOpponentSuit(model *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
	var out []constraint.Constraint
	for _, s := range domain.Suits {
		if opponentShownSuits(model)[s] {
			out = append(out, constraint.NewStopperIn(s))
		}
	}
	return out
}

// ShowSupportForUnbidSuits shows a minimum length in every suit neither
// opponent has bid (used by takeout/negative doubles, which promise
// shape in the unbid suits rather than length in any one named suit).
func ShowSupportForUnbidSuits(minLength int) Shows {
	return func(model *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
		shown := opponentShownSuits(model)
		var out []constraint.Constraint
		for _, s := range domain.Suits {
			if !shown[s] {
				out = append(out, constraint.NewMinLength(s, minLength))
			}
		}
		return out
	}
}

// ShowBetterContractIsRemote shows the HCP ceiling below which passing
// (rather than pursuing a better contract) is correct: partner's known
// minimum plus the bidder's own hand cannot reach the combined-point
// threshold for one level above the current contract, in its strain.
func ShowBetterContractIsRemote(model *handmodel.AuctionModel, _ domain.Call) []constraint.Constraint {
	contract, ok := model.Auction.CurrentContract()
	if !ok {
		return nil
	}
	threshold := points.SuitedThreshold[min(contract.Level+1, 7)]
	if contract.Strain == domain.Notrump {
		threshold = points.NotrumpThreshold[min(contract.Level+1, 7)]
	}
	ceiling := threshold - 1 - model.PartnerHand().KnownMinHCP()
	if ceiling < 0 {
		ceiling = 0
	}
	return []constraint.Constraint{constraint.NewMaxHcp(ceiling)}
}
