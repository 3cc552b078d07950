package shoe

import (
	"crypto/cipher"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
)

var suite suites.Suite = suites.MustFind("Ed25519")

var deckSize = big.NewInt(baccarat.DeckSize)

// Crypto draws cards from a cryptographically secure random stream.
type Crypto struct {
	stream cipher.Stream
}

func NewCrypto() *Crypto {
	return &Crypto{stream: suite.RandomStream()}
}

func (c *Crypto) Draw() baccarat.Card {
	n := random.Int(deckSize, c.stream)
	return cardAt(int(n.Int64()))
}

// Seeded draws cards from a deterministic source.
// A zero seed is replaced by the current time.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeded{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the shoe was built with, so a session can be replayed.
func (s *Seeded) Seed() int64 {
	return s.seed
}

func (s *Seeded) Draw() baccarat.Card {
	return cardAt(s.rng.Intn(baccarat.DeckSize))
}

// Stacked deals the given cards in order and then falls back to another shoe.
type Stacked struct {
	cards    []baccarat.Card
	next     int
	fallback baccarat.Shoe
}

// NewStacked returns a shoe that deals cards first. When they run out, draws
// come from fallback; a nil fallback panics once the stack is exhausted.
func NewStacked(fallback baccarat.Shoe, cards ...baccarat.Card) *Stacked {
	return &Stacked{cards: cards, fallback: fallback}
}

// Remaining returns how many stacked cards are left.
func (s *Stacked) Remaining() int {
	return len(s.cards) - s.next
}

func (s *Stacked) Draw() baccarat.Card {
	if s.next < len(s.cards) {
		c := s.cards[s.next]
		s.next++
		return c
	}
	if s.fallback == nil {
		panic("stacked shoe exhausted")
	}
	return s.fallback.Draw()
}

// cardAt maps an index in [0, 52) to a card.
func cardAt(i int) baccarat.Card {
	c, err := baccarat.IntToCard(i + 1)
	if err != nil {
		panic(fmt.Sprintf("card index %d out of range", i))
	}
	return c
}

// Scenario builds a Stacked shoe that deals the given player and banker cards
// in table order (P, B, P, B), followed by the optional third cards.
func Scenario(fallback baccarat.Shoe, player, banker [2]baccarat.Card, thirds ...baccarat.Card) *Stacked {
	cards := []baccarat.Card{player[0], banker[0], player[1], banker[1]}
	return NewStacked(fallback, append(cards, thirds...)...)
}
