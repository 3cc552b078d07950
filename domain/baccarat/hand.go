package baccarat

import "strings"

const (
	// InitialCards is the number of cards each side receives on the deal.
	InitialCards = 2
	// MaxCards is the size of a hand after a third card was drawn.
	MaxCards = 3
)

// Hand is the ordered list of cards held by the Player or the Banker.
// The third card, when present, is always the one drawn after the deal.
type Hand []Card

// Total returns the Baccarat point of the hand: the sum of the card values mod 10.
func (h Hand) Total() int {
	total := 0
	for _, c := range h {
		total += c.Value()
	}
	return total % 10
}

// InitialTotal returns the point of the first two cards only.
func (h Hand) InitialTotal() int {
	if len(h) <= InitialCards {
		return h.Total()
	}
	return h[:InitialCards].Total()
}

// HasThirdCard reports whether a third card was drawn.
func (h Hand) HasThirdCard() bool {
	return len(h) == MaxCards
}

// ThirdCard returns the drawn card, if any.
func (h Hand) ThirdCard() (Card, bool) {
	if !h.HasThirdCard() {
		return Card{}, false
	}
	return h[MaxCards-1], true
}

func (h Hand) valid() bool {
	if len(h) < InitialCards || len(h) > MaxCards {
		return false
	}
	for _, c := range h {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " - ")
}
