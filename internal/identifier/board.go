package identifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/bridgebid/bridge/domain"
)

// Board is a parsed board identifier: the deal plus the dealer and
// vulnerability the board number implies, and any call history carried in
// the identifier string.
type Board struct {
	Number        int
	Dealer        domain.Position
	Vulnerability domain.Vulnerability
	Deal          Deal
	Calls         []domain.Call
}

// ParseBoard parses a board identifier of the form
// "<board_number>-<deal_hex>" optionally followed by call history, either
// as "<board_number>-<deal_hex>:<call_history>" or as a third
// hyphen-separated component. call_history is a comma- or space-separated
// list of call tokens (e.g. "1S,P,2H,P"). The board number derives the
// dealer and vulnerability the same way domain.DealerForBoard and
// domain.VulnerabilityForBoard do.
func ParseBoard(s string) (Board, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) < 2 {
		return Board{}, fmt.Errorf("identifier: %q is not a board identifier", s)
	}

	number, err := strconv.Atoi(parts[0])
	if err != nil || number <= 0 {
		return Board{}, fmt.Errorf("identifier: invalid board number %q", parts[0])
	}

	dealToken := parts[1]
	callHistory := ""
	if len(parts) == 3 {
		callHistory = parts[2]
	} else if idx := strings.IndexByte(dealToken, ':'); idx >= 0 {
		callHistory, dealToken = dealToken[idx+1:], dealToken[:idx]
	}

	deal, err := Decode(dealToken)
	if err != nil {
		return Board{}, err
	}

	calls, err := parseCallHistory(callHistory)
	if err != nil {
		return Board{}, err
	}

	return Board{
		Number:        number,
		Dealer:        domain.DealerForBoard(number),
		Vulnerability: domain.VulnerabilityForBoard(number),
		Deal:          deal,
		Calls:         calls,
	}, nil
}

func parseCallHistory(s string) ([]domain.Call, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	sep := " "
	if strings.Contains(s, ",") {
		sep = ","
	}

	var calls []domain.Call
	for _, tok := range strings.Split(s, sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		call, ok := domain.ParseCall(tok)
		if !ok {
			return nil, fmt.Errorf("identifier: invalid call %q", tok)
		}
		calls = append(calls, call)
	}
	return calls, nil
}
