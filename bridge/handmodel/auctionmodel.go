package handmodel

import (
	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
)

// Planner is a rule-specific override of the default "every show must
// check against the hand" acceptance test. It receives the built-up
// AuctionModel, the candidate's hand, the candidate call, and the shows
// that the rule would otherwise require.
type Planner func(model *AuctionModel, hand domain.Hand, call domain.Call, shows []constraint.Constraint) bool

// CallSemantics is what a single rule says a call means: the hand
// constraints it shows, any annotations, the owning rule's name, and an
// optional planner overriding the default satisfaction test.
type CallSemantics struct {
	Shows       []constraint.Constraint
	Annotations []Annotation
	RuleName    string
	Planner     Planner
}

// Satisfied reports whether hand satisfies these semantics, using the
// rule's planner if it has one, else the default conjunction of Shows.
func (s *CallSemantics) Satisfied(model *AuctionModel, hand domain.Hand, call domain.Call) bool {
	if s.Planner != nil {
		return s.Planner(model, hand, call, s.Shows)
	}
	return constraint.CheckAll(s.Shows, hand)
}

// AuctionModel is the auction plus, for each seat, the inferred HandModel,
// and for each call made so far, the semantics the system attributed to
// it (nil if the call was legal but uninterpreted, as a bare Pass usually
// is).
type AuctionModel struct {
	Auction   *auction.Auction
	Hands     [4]*HandModel
	Semantics []*CallSemantics
}

// NewAuctionModel returns a model over a (possibly partial) auction with
// four fresh hand profiles.
func NewAuctionModel(a *auction.Auction) *AuctionModel {
	m := &AuctionModel{Auction: a}
	for i := range m.Hands {
		m.Hands[i] = NewHandModel()
	}
	return m
}

// Clone returns a deep copy of the model, used to snapshot the model
// before applying a candidate call's constraints.
func (m *AuctionModel) Clone() *AuctionModel {
	out := &AuctionModel{Auction: m.Auction}
	for i, h := range m.Hands {
		cp := *h
		out.Hands[i] = &cp
	}
	out.Semantics = append([]*CallSemantics(nil), m.Semantics...)
	return out
}

// HandOf returns the inferred profile for position p.
func (m *AuctionModel) HandOf(p domain.Position) *HandModel {
	return m.Hands[p]
}

// BidderHand returns the hand model for whoever is on turn to call.
func (m *AuctionModel) BidderHand() *HandModel {
	return m.HandOf(m.Auction.CurrentPlayer())
}

// PartnerHand returns the hand model for the bidder's partner.
func (m *AuctionModel) PartnerHand() *HandModel {
	return m.HandOf(m.Auction.CurrentPlayer().Partner())
}

// LHOHand returns the hand model for the bidder's left-hand opponent.
func (m *AuctionModel) LHOHand() *HandModel {
	return m.HandOf(m.Auction.CurrentPlayer().LHO())
}

// RHOHand returns the hand model for the bidder's right-hand opponent.
func (m *AuctionModel) RHOHand() *HandModel {
	return m.HandOf(m.Auction.CurrentPlayer().RHO())
}

// lastSemanticsFor returns the most recent non-nil semantics attributed to
// a call made by position p, if any.
func (m *AuctionModel) lastSemanticsFor(p domain.Position) (*CallSemantics, bool) {
	for i := len(m.Auction.Calls) - 1; i >= 0; i-- {
		if m.Auction.PositionOf(i) != p {
			continue
		}
		if i < len(m.Semantics) && m.Semantics[i] != nil {
			return m.Semantics[i], true
		}
		return nil, false
	}
	return nil, false
}

// BidderLastCallSemantics returns the semantics of the bidder's most
// recent interpreted call.
func (m *AuctionModel) BidderLastCallSemantics() (*CallSemantics, bool) {
	return m.lastSemanticsFor(m.Auction.CurrentPlayer())
}

// PartnerLastCallSemantics returns the semantics of the bidder's partner's
// most recent interpreted call.
func (m *AuctionModel) PartnerLastCallSemantics() (*CallSemantics, bool) {
	return m.lastSemanticsFor(m.Auction.CurrentPlayer().Partner())
}

// LHOLastCallSemantics returns the semantics of the bidder's LHO's most
// recent interpreted call.
func (m *AuctionModel) LHOLastCallSemantics() (*CallSemantics, bool) {
	return m.lastSemanticsFor(m.Auction.CurrentPlayer().LHO())
}

// RHOLastCallSemantics returns the semantics of the bidder's RHO's most
// recent interpreted call.
func (m *AuctionModel) RHOLastCallSemantics() (*CallSemantics, bool) {
	return m.lastSemanticsFor(m.Auction.CurrentPlayer().RHO())
}
