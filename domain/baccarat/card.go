package baccarat

import (
	"errors"
	"fmt"
)

// Suit identifies one of the four card suits (0-3).
type Suit uint8

// Rank identifies a card rank (1-13: ace through king).
type Rank uint8

const (
	Club    Suit = 0 // ♣
	Diamond Suit = 1 // ♦
	Heart   Suit = 2 // ♥
	Spade   Suit = 3 // ♠
)

const (
	Ace   Rank = 1
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// DeckSize is the number of distinct cards a shoe draws from.
const DeckSize = 52

// Suits lists every suit in the order used by IntToCard.
var Suits = []Suit{Club, Diamond, Heart, Spade}

// Card is a playing card together with its Baccarat point value.
// The zero Card is not a valid card; use NewCard.
type Card struct {
	suit  Suit
	rank  Rank
	value uint8
}

// NewCard creates a new Card with validation and fixes its point value.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Ace || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{
		suit:  suit,
		rank:  rank,
		value: uint8(CardValue(rank)),
	}, nil
}

// MustCard is like NewCard but panics on an invalid suit or rank.
// It is meant for literals in drills and tests.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// CardValue maps a rank to its Baccarat points: A=1, 2-9 at face value,
// 10 and the court cards 0.
func CardValue(r Rank) int {
	switch {
	case r == Ace:
		return 1
	case r >= 2 && r <= 9:
		return int(r)
	default:
		return 0
	}
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

// Value returns the Baccarat point value (0-9) fixed at construction.
func (c Card) Value() int {
	return int(c.value)
}

// IsValid reports whether c was built through NewCard.
func (c Card) IsValid() bool {
	return c.rank >= Ace && c.rank <= King && c.suit <= Spade && int(c.value) == CardValue(c.rank)
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamond || s == Heart
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// String returns the rank followed by the suit symbol, e.g. "10♥".
func (c Card) String() string {
	if !c.IsValid() {
		return "?"
	}
	return c.rank.String() + c.suit.String()
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert has an invalid value")
	}
	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}
