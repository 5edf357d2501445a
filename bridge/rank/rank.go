// Package rank classifies each legal candidate call by what purpose it
// serves in the auction, and orders those purposes so the selector can
// prefer, say, raising an agreed major over starting a new discovery
// sequence. Classification walks the hand constraints a call's semantics
// show against the current hand models, the same way the shape of the
// shown constraint (not which rule produced it) decides the call's role
// in a natural auction.
package rank

import (
	"github.com/lox/bridgebid/bridge/constraint"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/handmodel"
)

// CallPurpose groups candidate calls by the role they play in an auction.
// The constant order is also the priority order: a lower-valued purpose
// is preferred by the ranker when a hand has calls in more than one group.
type CallPurpose int

const (
	SupportMajors CallPurpose = iota
	EnterNotrumpSystem
	MajorDiscovery
	CharacterizeStrength
	SupportMinors
	MinorDiscovery
	RebidSuit
	CompetitiveAction
	Miscellaneous
)

// String names the purpose, for trace output.
func (p CallPurpose) String() string {
	switch p {
	case SupportMajors:
		return "support_majors"
	case EnterNotrumpSystem:
		return "enter_notrump_system"
	case MajorDiscovery:
		return "major_discovery"
	case CharacterizeStrength:
		return "characterize_strength"
	case SupportMinors:
		return "support_minors"
	case MinorDiscovery:
		return "minor_discovery"
	case RebidSuit:
		return "rebid_suit"
	case CompetitiveAction:
		return "competitive_action"
	default:
		return "miscellaneous"
	}
}

// Classify assigns a candidate call its purpose. Doubles and Redoubles are
// always CompetitiveAction regardless of semantics. Otherwise each
// constraint the call's semantics show is classified in turn and the call
// takes the minimum (highest-priority) purpose across them:
//
//   - MinLength(suit, n) where partner has already shown the suit: a
//     raise, SupportMajors/SupportMinors by major/minor.
//   - MinLength(suit, n) where partner hasn't shown it and the bidder's
//     prior known length in that suit is under 4: a new suit,
//     MajorDiscovery/MinorDiscovery.
//   - MinLength(suit, n) where the bidder's prior known length is 4 or
//     more: RebidSuit.
//   - MinHcp/MaxHcp that tightens the bidder's currently-known range, and
//     no MinLength was shown by this call at all: CharacterizeStrength.
//   - Annotation NotrumpSystemsOn: EnterNotrumpSystem.
//   - Nothing above applies: Miscellaneous.
func Classify(call domain.Call, sem *handmodel.CallSemantics, model *handmodel.AuctionModel) CallPurpose {
	if call.IsDouble() || call.IsRedouble() {
		return CompetitiveAction
	}
	if sem == nil {
		return Miscellaneous
	}

	bidder := model.BidderHand()
	partner := model.PartnerHand()

	best := Miscellaneous
	shownLength := false
	tightenedHCP := false

	for _, c := range sem.Shows {
		switch c.Kind {
		case constraint.MinLength:
			shownLength = true
			switch {
			case partner.HasShownSuit(c.Suit):
				best = minPurpose(best, supportPurpose(c.Suit))
			case bidder.MinLength[c.Suit] >= 4:
				best = minPurpose(best, RebidSuit)
			default:
				best = minPurpose(best, discoveryPurpose(c.Suit))
			}
		case constraint.MinHcp:
			if c.N > bidder.KnownMinHCP() {
				tightenedHCP = true
			}
		case constraint.MaxHcp:
			if c.N < bidder.KnownMaxHCP() {
				tightenedHCP = true
			}
		}
	}

	if tightenedHCP && !shownLength {
		best = minPurpose(best, CharacterizeStrength)
	}

	if handmodel.HasAnnotation(sem.Annotations, handmodel.NotrumpSystemsOn) {
		best = minPurpose(best, EnterNotrumpSystem)
	}

	return best
}

func supportPurpose(s domain.Suit) CallPurpose {
	if s.IsMajor() {
		return SupportMajors
	}
	return SupportMinors
}

func discoveryPurpose(s domain.Suit) CallPurpose {
	if s.IsMajor() {
		return MajorDiscovery
	}
	return MinorDiscovery
}

// minPurpose returns whichever purpose has the higher priority (the
// smaller value).
func minPurpose(a, b CallPurpose) CallPurpose {
	if b < a {
		return b
	}
	return a
}
