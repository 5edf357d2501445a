package domain

import "strings"

// ParseHand parses a hand token of the form "clubs.diamonds.hearts.spades",
// e.g. "K6.AQT43.KT4.543", where each dot-separated group lists the ranks
// held in that suit (high to low, T for ten). Returns false if the token
// does not split into exactly four groups or any rank character is invalid.
func ParseHand(token string) (Hand, bool) {
	groups := strings.Split(token, ".")
	if len(groups) != 4 {
		return Hand{}, false
	}

	var cards []Card
	suits := []Suit{Clubs, Diamonds, Hearts, Spades}
	for i, group := range groups {
		for j := range len(group) {
			r, ok := ParseRank(group[j])
			if !ok {
				return Hand{}, false
			}
			cards = append(cards, NewCard(suits[i], r))
		}
	}
	return NewHand(cards...), true
}
