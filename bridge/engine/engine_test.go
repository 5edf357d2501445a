package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/internal/identifier"
)

func mustHand(t *testing.T, token string) domain.Hand {
	t.Helper()
	h, ok := domain.ParseHand(token)
	require.True(t, ok, "invalid hand token %q", token)
	return h
}

func TestSelectCallOpensStrongTwoClubs(t *testing.T) {
	a := auction.New(domain.North)
	hand := mustHand(t, "AKQJ.AKQJ.AKQJ.A")

	call := SelectCall(a, hand)
	assert.True(t, call.IsBid())
	assert.Equal(t, 2, call.Level)
	assert.Equal(t, domain.StrainOf(domain.Clubs), call.Strain)
}

func TestSelectCallPassesOnAMinimumHand(t *testing.T) {
	a := auction.New(domain.North)
	hand := mustHand(t, "432.432.432.9432")

	call := SelectCall(a, hand)
	assert.True(t, call.IsPass())
}

func TestSelectCallRaisesPartnersMajor(t *testing.T) {
	a := auction.New(domain.North)
	for _, tok := range []string{"1H", "P"} {
		c, ok := domain.ParseCall(tok)
		require.True(t, ok)
		a.AddCall(c)
	}

	hand := mustHand(t, "432.32.AQ432.432")
	call := SelectCall(a, hand)

	assert.True(t, call.IsBid())
	suit, isSuit := call.Suit()
	assert.True(t, isSuit)
	assert.Equal(t, domain.Hearts, suit)
}

func TestGetInterpretationsAttachesOpeningShows(t *testing.T) {
	a := auction.New(domain.North)
	c, ok := domain.ParseCall("1N")
	require.True(t, ok)
	a.AddCall(c)

	interps := GetInterpretations(a)
	require.Len(t, interps, 1)
	assert.Equal(t, "opening.1nt_balanced", interps[0].RuleName)
	assert.NotEmpty(t, interps[0].Shows)
}

// boardOne encodes board 1 (dealer North, per domain.DealerForBoard) with a
// strong North hand that opens 2C and three weak hands that hold nothing
// worth bidding over it.
func boardOne(t *testing.T) identifier.Deal {
	t.Helper()
	deal := identifier.Deal{
		domain.North: mustHand(t, "AKQJ.AKQJ.AKQJ.A"),
		domain.East:  mustHand(t, "432.432.432.5432"),
		domain.South: mustHand(t, "765.765.765.9876"),
		domain.West:  mustHand(t, "T98.T98.T98.KQJT"),
	}
	return deal
}

func TestGetNextCallRendersTheSelectedCallForABoardIdentifier(t *testing.T) {
	id := "1-" + identifier.Encode(boardOne(t))
	assert.Equal(t, "2C", GetNextCall(id))
}

func TestGetNextCallFollowsCallHistoryToTheRightSeat(t *testing.T) {
	// After North's 2C, it's East's turn; East's hand has nothing to say.
	id := "1-" + identifier.Encode(boardOne(t)) + ":2C"
	assert.Equal(t, "P", GetNextCall(id))
}

func TestGetNextCallFallsBackToPassOnAnInvalidIdentifier(t *testing.T) {
	assert.Equal(t, "P", GetNextCall("not-a-board-identifier"))
}

func TestGetSuggestedCallReturnsTheRuleAndDescription(t *testing.T) {
	id := "1-" + identifier.Encode(boardOne(t))
	suggestion := GetSuggestedCall(id)

	assert.Equal(t, "2C", suggestion.CallName)
	assert.Equal(t, "opening.strong_2c", suggestion.RuleName)
	assert.NotEmpty(t, suggestion.Description)
}

func TestGetSuggestedCallFallsBackToPassLimitOnAnInvalidIdentifier(t *testing.T) {
	suggestion := GetSuggestedCall("not-a-board-identifier")

	assert.Equal(t, "P", suggestion.CallName)
	assert.Equal(t, "Pass (Limit)", suggestion.RuleName)
	assert.Empty(t, suggestion.Description)
}
