package ledger

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
)

func card(suit baccarat.Suit, rank baccarat.Rank) baccarat.Card {
	return baccarat.MustCard(suit, rank)
}

func resolved(outcome baccarat.Decision) baccarat.RoundState {
	low := baccarat.Hand{card(baccarat.Club, 2), card(baccarat.Club, baccarat.King)}
	high := baccarat.Hand{card(baccarat.Heart, 4), card(baccarat.Heart, 3)}
	s := baccarat.RoundState{Phase: baccarat.PhaseFinalOutcome, Resolved: true}
	switch outcome {
	case baccarat.PlayerWin:
		s.Player, s.Banker = high, low
	case baccarat.BankerWin:
		s.Player, s.Banker = low, high
	default:
		s.Player, s.Banker = low, low
	}
	return s
}

func TestAppendRequiresResolvedRound(t *testing.T) {
	r := NewRoadmap(4)
	s := resolved(baccarat.Tie)
	s.Resolved = false
	if _, err := r.Append(s); !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if r.Len() != 0 {
		t.Fatal("nothing should be recorded")
	}
}

func TestAppendRecordsHand(t *testing.T) {
	r := NewRoadmap(4)
	e, err := r.Append(resolved(baccarat.PlayerWin))
	if err != nil {
		t.Fatal(err)
	}
	if e.Outcome != baccarat.PlayerWin || e.PlayerTotal != 7 || e.BankerTotal != 2 {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Natural {
		t.Error("final-outcome hand is not a natural")
	}
	if len(e.Player) != 2 || e.Player[0] != "4♥" {
		t.Errorf("player cards = %v", e.Player)
	}
	latest, err := r.GetLatest()
	if err != nil || latest.Index != e.Index {
		t.Fatalf("GetLatest = %+v, %v", latest, err)
	}
}

func TestNaturalEntry(t *testing.T) {
	s := baccarat.RoundState{
		Player:   baccarat.Hand{card(baccarat.Club, 7), card(baccarat.Club, 2)},
		Banker:   baccarat.Hand{card(baccarat.Heart, 5), card(baccarat.Heart, 3)},
		Phase:    baccarat.PhaseNaturalCheck,
		Resolved: true,
	}
	r := NewRoadmap(0)
	e, err := r.Append(s)
	if err != nil {
		t.Fatal(err)
	}
	if !e.Natural || e.Outcome != baccarat.PlayerWin {
		t.Fatalf("unexpected entry %+v", e)
	}
	if r.Summary().Naturals != 1 {
		t.Fatal("natural not counted")
	}
}

func TestRollingWindow(t *testing.T) {
	r := NewRoadmap(3)
	sequence := []baccarat.Decision{baccarat.PlayerWin, baccarat.BankerWin, baccarat.Tie, baccarat.BankerWin, baccarat.PlayerWin}
	for _, o := range sequence {
		if _, err := r.Append(resolved(o)); err != nil {
			t.Fatal(err)
		}
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if got := r.Symbols(); got != "TBP" {
		t.Fatalf("Symbols() = %q, want TBP", got)
	}
	entries := r.Entries()
	if entries[0].Index != 2 || entries[2].Index != 4 {
		t.Fatalf("indexes = %d..%d, want 2..4", entries[0].Index, entries[2].Index)
	}
	sum := r.Summary()
	if sum.Player != 1 || sum.Banker != 1 || sum.Tie != 1 || sum.Total() != 3 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestDefaultSizeAndReset(t *testing.T) {
	r := NewRoadmap(-1)
	if r.Size() != DefaultSize {
		t.Fatalf("Size() = %d, want %d", r.Size(), DefaultSize)
	}
	if _, err := r.GetLatest(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := r.Append(resolved(baccarat.Tie)); err != nil {
		t.Fatal(err)
	}
	r.Reset()
	if r.Len() != 0 || r.Symbols() != "" {
		t.Fatal("Reset should clear the window")
	}
	e, _ := r.Append(resolved(baccarat.Tie))
	if e.Index != 0 {
		t.Fatalf("index after reset = %d, want 0", e.Index)
	}
}
