package baccarat

import "testing"

// cardOf returns a card with the given point value; 0 maps to a king.
func cardOf(value int, suit Suit) Card {
	if value == 0 {
		return MustCard(suit, King)
	}
	return MustCard(suit, Rank(value))
}

// hand builds a hand from point values, cycling through the suits.
func hand(values ...int) Hand {
	h := make(Hand, len(values))
	for i, v := range values {
		h[i] = cardOf(v, Suits[i%len(Suits)])
	}
	return h
}

func TestHandTotal(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want int
	}{
		{"two court cards", Hand{MustCard(Club, King), MustCard(Heart, Queen)}, 0},
		{"ten and ace", Hand{MustCard(Club, Ten), MustCard(Heart, Ace)}, 1},
		{"natural nine", hand(7, 2), 9},
		{"wraps past ten", hand(9, 8), 7},
		{"three cards", hand(4, 5, 6), 5},
		{"three cards wrap to zero", hand(5, 5, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hand.Total(); got != tt.want {
				t.Errorf("Total(%s) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}

func TestHandTotalOrderInvariant(t *testing.T) {
	for a := 0; a <= 9; a++ {
		for b := 0; b <= 9; b++ {
			if hand(a, b).Total() != hand(b, a).Total() {
				t.Fatalf("total of %d,%d depends on order", a, b)
			}
			for c := 0; c <= 9; c++ {
				want := hand(a, b, c).Total()
				for _, h := range []Hand{hand(a, c, b), hand(b, a, c), hand(b, c, a), hand(c, a, b), hand(c, b, a)} {
					if got := h.Total(); got != want {
						t.Fatalf("Total(%s) = %d, want %d", h, got, want)
					}
				}
				if want < 0 || want > 9 {
					t.Fatalf("total %d out of range", want)
				}
			}
		}
	}
}

func TestHandThirdCard(t *testing.T) {
	h := hand(1, 2)
	if _, ok := h.ThirdCard(); ok {
		t.Fatal("two-card hand should have no third card")
	}
	h = hand(1, 2, 8)
	c, ok := h.ThirdCard()
	if !ok || c.Value() != 8 {
		t.Fatalf("expected third card worth 8, got %v (%v)", c, ok)
	}
	if got := h.InitialTotal(); got != 3 {
		t.Fatalf("InitialTotal = %d, want 3", got)
	}
}
