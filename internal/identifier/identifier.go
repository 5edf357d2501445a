// Package identifier encodes and decodes a full 52-card deal as a compact
// 26-character hex string: digit i encodes the owners of cards 2i (high
// nibble) and 2i+1 (low nibble), card indices in the suit-major order of
// domain.Card.Index (§6). DecodeAll batches repeated decodes of the same
// identifier (a CLI replaying a file of boards, some repeated) through a
// singleflight group so concurrent callers share one decode.
package identifier

import (
	"fmt"
	"strings"

	"github.com/lox/bridgebid/bridge/domain"
	"golang.org/x/sync/singleflight"
)

// Deal is one hand per position, indexed by domain.Position.
type Deal [4]domain.Hand

const hexAlphabet = "0123456789abcdef"

// Encode renders deal as a 26-character hex string: digit i packs the
// owner of card 2i into its high nibble (owner*4) and the owner of card
// 2i+1 into its low nibble.
func Encode(deal Deal) string {
	var owner [52]byte
	for p, hand := range deal {
		for _, c := range hand.Cards() {
			owner[c.Index()] = byte(p)
		}
	}

	digits := make([]byte, 26)
	for i := 0; i < 26; i++ {
		high := owner[i*2]
		low := owner[i*2+1]
		digits[i] = hexAlphabet[high*4+low]
	}
	return string(digits)
}

// Decode parses a hex string produced by Encode back into a Deal.
func Decode(s string) (Deal, error) {
	if len(s) != 26 {
		return Deal{}, fmt.Errorf("identifier: want 26 hex digits, got %d", len(s))
	}

	var cards [4][]domain.Card
	for i := 0; i < 26; i++ {
		v, err := hexDigitValue(s[i])
		if err != nil {
			return Deal{}, fmt.Errorf("identifier: digit %d: %w", i, err)
		}
		high, low := v/4, v%4
		cards[high] = append(cards[high], domain.CardFromIndex(i*2))
		cards[low] = append(cards[low], domain.CardFromIndex(i*2+1))
	}

	var deal Deal
	for p, cs := range cards {
		if len(cs) != 13 {
			return Deal{}, fmt.Errorf("identifier: position %d holds %d cards, want 13", p, len(cs))
		}
		deal[p] = domain.NewHand(cs...)
	}
	return deal, nil
}

// hexDigitValue parses a single case-insensitive hex digit to its 0-15 value.
func hexDigitValue(c byte) (byte, error) {
	if c >= 'A' && c <= 'F' {
		c += 'a' - 'A'
	}
	idx := strings.IndexByte(hexAlphabet, c)
	if idx < 0 {
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
	return byte(idx), nil
}

var decodeGroup singleflight.Group

// DecodeAll decodes every identifier in ids, in order. Each decode goes
// through a singleflight group keyed by the identifier, so a decode of the
// same string already in flight in another goroutine is shared; repeats
// within one ids slice are decoded again, one after another.
func DecodeAll(ids []string) ([]Deal, []error) {
	deals := make([]Deal, len(ids))
	errs := make([]error, len(ids))

	type result struct {
		deal Deal
		err  error
	}

	for i, id := range ids {
		v, err, _ := decodeGroup.Do(id, func() (interface{}, error) {
			d, derr := Decode(id)
			return result{deal: d, err: derr}, nil
		})
		r := v.(result)
		deals[i] = r.deal
		errs[i] = r.err
		_ = err // decodeGroup.Do's own error is always nil; the decode error travels in result
	}

	return deals, errs
}
