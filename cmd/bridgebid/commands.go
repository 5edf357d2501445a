package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/bridgebid/bridge/auction"
	"github.com/lox/bridgebid/bridge/domain"
	"github.com/lox/bridgebid/bridge/engine"
	"github.com/lox/bridgebid/internal/cliconfig"
	"github.com/lox/bridgebid/internal/identifier"
	"github.com/lox/bridgebid/internal/pbn"
	"github.com/lox/bridgebid/internal/randutil"
)

// parseAuction builds an Auction from a dealer token and the calls made so
// far.
func parseAuction(dealerToken string, calls []string) (*auction.Auction, error) {
	if len(dealerToken) != 1 {
		return nil, fmt.Errorf("dealer must be a single letter (N/E/S/W), got %q", dealerToken)
	}
	dealer, ok := domain.ParsePosition(dealerToken[0])
	if !ok {
		return nil, fmt.Errorf("unknown dealer %q", dealerToken)
	}

	a := auction.New(dealer)
	for _, tok := range calls {
		c, ok := domain.ParseCall(tok)
		if !ok {
			return nil, fmt.Errorf("invalid call %q", tok)
		}
		if !a.AddCall(c) {
			return nil, fmt.Errorf("call %q made after the auction finished", tok)
		}
	}
	return a, nil
}

// SuggestCmd prints the call the engine recommends for hand, given the
// auction so far.
type SuggestCmd struct {
	Dealer string   `help:"Dealer seat" default:"N"`
	Hand   string   `arg:"" help:"Hand as a clubs.diamonds.hearts.spades token, e.g. AKQ.T32.J98.7654"`
	Calls  []string `arg:"" optional:"" help:"Calls made before this one"`
}

func (c *SuggestCmd) Run(logger *log.Logger, _ *cliconfig.Config) error {
	hand, ok := domain.ParseHand(c.Hand)
	if !ok {
		return fmt.Errorf("invalid hand %q", c.Hand)
	}
	a, err := parseAuction(c.Dealer, c.Calls)
	if err != nil {
		return err
	}

	call := engine.SelectCall(a, hand)
	logger.Debug("selected call", "call", call, "hand", hand)
	fmt.Println(call)
	return nil
}

// TraceCmd prints the candidate calls considered and the tie-breaks
// applied to reach the final selection.
type TraceCmd struct {
	Dealer string   `help:"Dealer seat" default:"N"`
	Hand   string   `arg:"" help:"Hand as a clubs.diamonds.hearts.spades token"`
	Calls  []string `arg:"" optional:"" help:"Calls made before this one"`
}

func (c *TraceCmd) Run(_ *log.Logger, _ *cliconfig.Config) error {
	hand, ok := domain.ParseHand(c.Hand)
	if !ok {
		return fmt.Errorf("invalid hand %q", c.Hand)
	}
	a, err := parseAuction(c.Dealer, c.Calls)
	if err != nil {
		return err
	}

	trace := engine.SelectCallWithTrace(a, hand)
	fmt.Printf("candidates (%d):\n", len(trace.Candidates))
	for _, cand := range trace.Candidates {
		rule := "(uninterpreted)"
		if cand.Sem != nil {
			rule = cand.Sem.RuleName
		}
		fmt.Printf("  %-4s purpose=%-22s rule=%s\n", cand.Call, cand.Purpose, rule)
	}
	for _, step := range trace.Steps {
		fmt.Printf("-> %s: %v\n", step.Description, step.Remaining)
	}
	fmt.Println("selected:", trace.Selected)
	return nil
}

// InterpretCmd prints, for each call already made, the hand constraints
// the engine attributes to it.
type InterpretCmd struct {
	Dealer string   `help:"Dealer seat" default:"N"`
	Calls  []string `arg:"" help:"Calls made so far"`
}

func (c *InterpretCmd) Run(_ *log.Logger, _ *cliconfig.Config) error {
	a, err := parseAuction(c.Dealer, c.Calls)
	if err != nil {
		return err
	}

	for _, i := range engine.GetInterpretations(a) {
		if i.RuleName == "" {
			fmt.Printf("%s %-4s (uninterpreted)\n", i.Position, i.Call)
			continue
		}
		fmt.Printf("%s %-4s %s: %v\n", i.Position, i.Call, i.RuleName, i.Shows)
	}
	return nil
}

// BoardCmd suggests the next call for a board identifier (deal plus
// optional call history), the form the engine's identifier-driven entry
// points consume directly.
type BoardCmd struct {
	Identifier string `arg:"" help:"Board identifier, e.g. 1-<26 hex digits>[:1S,P,2H,P]"`
}

func (c *BoardCmd) Run(logger *log.Logger, _ *cliconfig.Config) error {
	suggestion := engine.GetSuggestedCall(c.Identifier)
	logger.Debug("suggested call", "identifier", c.Identifier, "call", suggestion.CallName)

	fmt.Println("call:       ", suggestion.CallName)
	fmt.Println("rule:       ", suggestion.RuleName)
	fmt.Println("description:", suggestion.Description)
	return nil
}

// DealCmd deals a random board and prints it in PBN deal-tag form.
type DealCmd struct {
	Dealer string `help:"Dealer seat" default:"N"`
	Seed   *int64 `help:"Seed for the random number generator"`
}

func (c *DealCmd) Run(_ *log.Logger, _ *cliconfig.Config) error {
	if len(c.Dealer) != 1 {
		return fmt.Errorf("dealer must be a single letter (N/E/S/W), got %q", c.Dealer)
	}
	dealer, ok := domain.ParsePosition(c.Dealer[0])
	if !ok {
		return fmt.Errorf("unknown dealer %q", c.Dealer)
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	rng := randutil.New(seed)

	cards := make([]domain.Card, 52)
	for i := range cards {
		cards[i] = domain.CardFromIndex(i)
	}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	var deal identifier.Deal
	for p := 0; p < 4; p++ {
		deal[p] = domain.NewHand(cards[p*13 : (p+1)*13]...)
	}

	fmt.Println(pbn.FormatDeal(dealer, deal))
	fmt.Println("id:", identifier.Encode(deal))
	return nil
}
