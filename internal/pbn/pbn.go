// Package pbn renders and parses the subset of Portable Bridge Notation
// this system exchanges boards in: the Deal and Auction tags. Hand fields
// use this system's own suit token order (clubs.diamonds.hearts.spades,
// see domain.ParseHand) rather than PBN's official spades-first order.
// This is a deliberate simplification, since every board this system
// produces or consumes round-trips through its own parser rather than a
// third-party PBN tool.
package pbn

import (
	"fmt"
	"strings"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/internal/identifier"
)

// FormatDeal renders a Deal tag's value: "<dealer>:<hand> <hand> <hand> <hand>",
// the four hands listed starting from dealer and rotating clockwise.
func FormatDeal(dealer domain.Position, deal identifier.Deal) string {
	var hands []string
	for i := 0; i < 4; i++ {
		hands = append(hands, deal[dealer.Next(i)].String())
	}
	return fmt.Sprintf("%s:%s", dealer, strings.Join(hands, " "))
}

// ParseDeal parses a Deal tag's value back into a dealer position and deal.
func ParseDeal(s string) (domain.Position, identifier.Deal, error) {
	head, rest, ok := strings.Cut(s, ":")
	if !ok || len(head) != 1 {
		return 0, identifier.Deal{}, fmt.Errorf("pbn: malformed deal %q", s)
	}
	dealer, ok := domain.ParsePosition(head[0])
	if !ok {
		return 0, identifier.Deal{}, fmt.Errorf("pbn: unknown dealer %q", head)
	}

	tokens := strings.Fields(rest)
	if len(tokens) != 4 {
		return 0, identifier.Deal{}, fmt.Errorf("pbn: want 4 hands, got %d", len(tokens))
	}

	var deal identifier.Deal
	for i, tok := range tokens {
		hand, ok := domain.ParseHand(tok)
		if !ok {
			return 0, identifier.Deal{}, fmt.Errorf("pbn: invalid hand %q", tok)
		}
		deal[dealer.Next(i)] = hand
	}
	return dealer, deal, nil
}

// FormatAuction renders an Auction tag's body: four space-separated calls
// to a line, in dealer-relative order.
func FormatAuction(a *auction.Auction) string {
	var b strings.Builder
	for i, c := range a.Calls {
		if i > 0 && i%4 == 0 {
			b.WriteByte('\n')
		} else if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// ParseAuction parses an Auction tag's dealer token and body back into an
// Auction.
func ParseAuction(dealerToken string, body string) (*auction.Auction, error) {
	if len(dealerToken) != 1 {
		return nil, fmt.Errorf("pbn: malformed auction dealer %q", dealerToken)
	}
	dealer, ok := domain.ParsePosition(dealerToken[0])
	if !ok {
		return nil, fmt.Errorf("pbn: unknown auction dealer %q", dealerToken)
	}

	a := auction.New(dealer)
	for _, tok := range strings.Fields(body) {
		call, ok := domain.ParseCall(tok)
		if !ok {
			return nil, fmt.Errorf("pbn: invalid call %q", tok)
		}
		if !a.AddCall(call) {
			return nil, fmt.Errorf("pbn: call %q made after auction finished", tok)
		}
	}
	return a, nil
}
