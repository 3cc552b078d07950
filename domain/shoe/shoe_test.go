package shoe

import (
	"testing"

	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
)

func TestSeededIsReproducible(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 100; i++ {
		ca, cb := a.Draw(), b.Draw()
		if ca != cb {
			t.Fatalf("draw %d differs: %s vs %s", i, ca, cb)
		}
	}
	if a.Seed() != 42 {
		t.Fatalf("Seed() = %d", a.Seed())
	}
}

func TestSeededZeroSeedPicksOne(t *testing.T) {
	if NewSeeded(0).Seed() == 0 {
		t.Fatal("zero seed should be replaced")
	}
}

func TestShoesDrawValidCardsCoveringTheDeck(t *testing.T) {
	shoes := map[string]baccarat.Shoe{
		"seeded": NewSeeded(7),
		"crypto": NewCrypto(),
	}
	for name, s := range shoes {
		t.Run(name, func(t *testing.T) {
			seen := make(map[int]bool)
			for i := 0; i < 5000; i++ {
				c := s.Draw()
				if !c.IsValid() {
					t.Fatalf("invalid card drawn: %v", c)
				}
				seen[baccarat.CardToInt(c)] = true
			}
			if len(seen) != baccarat.DeckSize {
				t.Fatalf("saw %d distinct cards in 5000 draws, want %d", len(seen), baccarat.DeckSize)
			}
		})
	}
}

func TestStackedThenFallback(t *testing.T) {
	first := baccarat.MustCard(baccarat.Heart, baccarat.King)
	second := baccarat.MustCard(baccarat.Spade, 9)
	fallback := NewSeeded(1)
	replay := NewSeeded(1)

	s := NewStacked(fallback, first, second)
	if s.Remaining() != 2 {
		t.Fatalf("Remaining() = %d", s.Remaining())
	}
	if got := s.Draw(); got != first {
		t.Fatalf("got %s, want %s", got, first)
	}
	if got := s.Draw(); got != second {
		t.Fatalf("got %s, want %s", got, second)
	}
	if got, want := s.Draw(), replay.Draw(); got != want {
		t.Fatalf("fallback draw %s, want %s", got, want)
	}
}

func TestStackedExhaustedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewStacked(nil).Draw()
}

func TestScenarioDealsInTableOrder(t *testing.T) {
	p := [2]baccarat.Card{baccarat.MustCard(baccarat.Club, 7), baccarat.MustCard(baccarat.Club, 2)}
	b := [2]baccarat.Card{baccarat.MustCard(baccarat.Heart, 5), baccarat.MustCard(baccarat.Heart, 3)}
	round := baccarat.NewRound(Scenario(nil, p, b))
	if round.Player.Total() != 9 || round.Banker.Total() != 8 {
		t.Fatalf("got player %s banker %s", round.Player, round.Banker)
	}
}
