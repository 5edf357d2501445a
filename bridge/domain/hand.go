package domain

import "sort"

// Hand is an unordered collection of 13 distinct cards.
type Hand struct {
	cards [13]Card
	n     int
}

// NewHand builds a Hand from the given cards. Callers are expected to pass
// 13 distinct cards; a hand with fewer cards behaves consistently for all
// derived queries but is not a valid full deal.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		if h.n >= len(h.cards) {
			break
		}
		h.cards[h.n] = c
		h.n++
	}
	return h
}

// Cards returns the hand's cards in no particular order.
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards[:h.n]...)
}

// Len returns the number of cards held.
func (h Hand) Len() int {
	return h.n
}

// HasCard reports whether the hand contains c.
func (h Hand) HasCard(c Card) bool {
	for i := range h.n {
		if h.cards[i] == c {
			return true
		}
	}
	return false
}

// HCP returns the hand's total high-card points.
func (h Hand) HCP() int {
	total := 0
	for i := range h.n {
		total += h.cards[i].Rank.HCP()
	}
	return total
}

// Length returns the number of cards held in suit s.
func (h Hand) Length(s Suit) int {
	n := 0
	for i := range h.n {
		if h.cards[i].Suit == s {
			n++
		}
	}
	return n
}

// Distribution returns card counts indexed by Suit (C, D, H, S order).
func (h Hand) Distribution() [4]int {
	var d [4]int
	for i := range h.n {
		d[h.cards[i].Suit]++
	}
	return d
}

// SortedShape returns the hand's suit lengths sorted descending, discarding
// which suit held which length.
func (h Hand) SortedShape() [4]int {
	d := h.Distribution()
	sorted := [4]int{d[0], d[1], d[2], d[3]}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted[:])))
	return sorted
}

// Shape classifies the hand's overall distribution.
func (h Hand) Shape() Shape {
	return classifyShape(h.SortedShape())
}

// ranksInSuit returns the ranks held in s, sorted descending (Ace first).
func (h Hand) ranksInSuit(s Suit) []Rank {
	var ranks []Rank
	for i := range h.n {
		if h.cards[i].Suit == s {
			ranks = append(ranks, h.cards[i].Rank)
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	return ranks
}

// TopHonors counts how many of the top n ranks in suit s (by rank order,
// i.e. {A,K,Q,J,T,...} for n<=5) the hand holds.
func (h Hand) TopHonors(s Suit, n int) int {
	count := 0
	for _, r := range h.ranksInSuit(s) {
		if int(Ace)-int(r) < n {
			count++
		}
	}
	return count
}

// HasStopper reports whether the hand has a notrump stopper in suit s: an
// ace, king with length >= 2, queen with length >= 3, or jack with length
// >= 4.
func (h Hand) HasStopper(s Suit) bool {
	ranks := h.ranksInSuit(s)
	length := len(ranks)
	for _, r := range ranks {
		switch r {
		case Ace:
			return true
		case King:
			if length >= 2 {
				return true
			}
		case Queen:
			if length >= 3 {
				return true
			}
		case Jack:
			if length >= 4 {
				return true
			}
		}
	}
	return false
}

// TwoLongestLengths returns the lengths of the two longest suits, used by
// the Rule of Twenty.
func (h Hand) TwoLongestLengths() (int, int) {
	shape := h.SortedShape()
	return shape[0], shape[1]
}

// String renders the hand in suit.suit.suit.suit order (spades.hearts.diamonds.clubs
// is the conventional display order; String uses clubs.diamonds.hearts.spades to
// match this system's canonical hand token, see ParseHand).
func (h Hand) String() string {
	out := make([]byte, 0, 16)
	for i, s := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		if i > 0 {
			out = append(out, '.')
		}
		for _, r := range h.ranksInSuit(s) {
			out = append(out, r.String()[0])
		}
	}
	return string(out)
}
