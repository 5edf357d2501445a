// Package lin renders and parses the subset of the LIN wire format (as
// used by Bridge Base Online) this system exchanges boards in: the "md"
// deal token and "mb" call tokens. As with internal/pbn, hand suits are
// rendered in this system's own clubs.diamonds.hearts.spades order rather
// than LIN's official spades-first order, since boards only round-trip
// through this package's own parser.
package lin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/internal/identifier"
)

// dealerDigit and its inverse encode LIN's 1-indexed "first hand to be
// dealt to" convention, starting from South: 1=S, 2=W, 3=N, 4=E.
var dealerDigit = map[domain.Position]int{
	domain.South: 1, domain.West: 2, domain.North: 3, domain.East: 4,
}

var digitDealer = map[int]domain.Position{
	1: domain.South, 2: domain.West, 3: domain.North, 4: domain.East,
}

// FormatMD renders the "md" token's value: the dealer digit followed by
// the four hands, comma-separated, starting from the dealer.
func FormatMD(dealer domain.Position, deal identifier.Deal) string {
	digit, ok := dealerDigit[dealer]
	if !ok {
		digit = 1
	}
	var hands []string
	for i := 0; i < 4; i++ {
		hands = append(hands, deal[dealer.Next(i)].String())
	}
	return fmt.Sprintf("%d%s", digit, strings.Join(hands, ","))
}

// ParseMD parses an "md" token's value back into a dealer and deal.
func ParseMD(s string) (domain.Position, identifier.Deal, error) {
	if len(s) < 2 {
		return 0, identifier.Deal{}, fmt.Errorf("lin: md token too short: %q", s)
	}
	digit, err := strconv.Atoi(s[:1])
	if err != nil {
		return 0, identifier.Deal{}, fmt.Errorf("lin: invalid dealer digit: %w", err)
	}
	dealer, ok := digitDealer[digit]
	if !ok {
		return 0, identifier.Deal{}, fmt.Errorf("lin: unknown dealer digit %d", digit)
	}

	tokens := strings.Split(s[1:], ",")
	if len(tokens) != 4 {
		return 0, identifier.Deal{}, fmt.Errorf("lin: want 4 hands, got %d", len(tokens))
	}

	var deal identifier.Deal
	for i, tok := range tokens {
		hand, ok := domain.ParseHand(tok)
		if !ok {
			return 0, identifier.Deal{}, fmt.Errorf("lin: invalid hand %q", tok)
		}
		deal[dealer.Next(i)] = hand
	}
	return dealer, deal, nil
}

// FormatMB renders the auction as a sequence of "mb|<call>|" tokens.
func FormatMB(a *auction.Auction) string {
	var b strings.Builder
	for _, c := range a.Calls {
		b.WriteString("mb|")
		b.WriteString(linCallToken(c))
		b.WriteByte('|')
	}
	return b.String()
}

// linCallToken renders a call the way LIN spells it: "p" for pass, "d" for
// double, "r" for redouble, "<level><strain>" otherwise (matching this
// system's own strain letters).
func linCallToken(c domain.Call) string {
	switch {
	case c.IsPass():
		return "p"
	case c.IsDouble():
		return "d"
	case c.IsRedouble():
		return "r"
	default:
		return c.String()
	}
}

// ParseMB parses a sequence of "mb|<call>|" tokens back into calls applied
// to an auction starting at dealer.
func ParseMB(dealer domain.Position, body string) (*auction.Auction, error) {
	a := auction.New(dealer)
	for _, seg := range strings.Split(body, "mb|") {
		tok := strings.TrimSuffix(seg, "|")
		if tok == "" {
			continue
		}
		call, ok := parseLinCall(tok)
		if !ok {
			return nil, fmt.Errorf("lin: invalid call token %q", tok)
		}
		if !a.AddCall(call) {
			return nil, fmt.Errorf("lin: call %q made after auction finished", tok)
		}
	}
	return a, nil
}

func parseLinCall(tok string) (domain.Call, bool) {
	switch strings.ToLower(tok) {
	case "p", "pass":
		return domain.Pass, true
	case "d", "double", "x":
		return domain.Double, true
	case "r", "redouble", "xx":
		return domain.Redouble, true
	}
	return domain.ParseCall(tok)
}
