package ledger

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
)

// DefaultSize is the number of hands shown on the roadmap.
const DefaultSize = 24

var (
	ErrEmpty      = errors.New("roadmap is empty")
	ErrUnresolved = errors.New("round is not resolved")
)

type Roadmap struct {
	mu      sync.RWMutex
	size    int
	entries []Entry
	next    int
}

// NewRoadmap creates a roadmap that keeps the last size hands.
// A size of zero or less uses DefaultSize.
func NewRoadmap(size int) *Roadmap {
	if size <= 0 {
		size = DefaultSize
	}
	return &Roadmap{
		size:    size,
		entries: make([]Entry, 0, size),
	}
}

// Append records a resolved round, dropping the oldest entry when the window is full.
// Returns ErrUnresolved if the round is still in play.
func (r *Roadmap) Append(s baccarat.RoundState) (Entry, error) {
	outcome, ok := s.Outcome()
	if !ok {
		return Entry{}, ErrUnresolved
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := Entry{
		Index:       r.next,
		Timestamp:   time.Now().Unix(),
		Outcome:     outcome,
		PlayerTotal: s.Player.Total(),
		BankerTotal: s.Banker.Total(),
		Natural:     s.Natural(),
		Player:      cardStrings(s.Player),
		Banker:      cardStrings(s.Banker),
	}
	r.next++

	if len(r.entries) == r.size {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:len(r.entries)-1]
	}
	r.entries = append(r.entries, e)
	return e, nil
}

// GetLatest returns the most recently recorded hand.
func (r *Roadmap) GetLatest() (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return Entry{}, ErrEmpty
	}
	return r.entries[len(r.entries)-1], nil
}

// Entries returns a copy of the window, oldest first.
func (r *Roadmap) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Roadmap) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Roadmap) Size() int {
	return r.size
}

// Symbols renders the window as a bead road such as "PBBT".
func (r *Roadmap) Symbols() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, e := range r.entries {
		b.WriteString(e.Outcome.Symbol())
	}
	return b.String()
}

// Summary counts outcomes and naturals in the window.
func (r *Roadmap) Summary() Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s Summary
	for _, e := range r.entries {
		switch e.Outcome {
		case baccarat.PlayerWin:
			s.Player++
		case baccarat.BankerWin:
			s.Banker++
		case baccarat.Tie:
			s.Tie++
		}
		if e.Natural {
			s.Naturals++
		}
	}
	return s
}

// Reset clears the window and restarts the numbering.
func (r *Roadmap) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
	r.next = 0
}
