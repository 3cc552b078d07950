package ledger

import "github.com/luca-patrignani/baccarat-master/domain/baccarat"

// Entry is a resolved hand recorded in the roadmap.
type Entry struct {
	Index       int               `json:"index"`
	Timestamp   int64             `json:"timestamp"`
	Outcome     baccarat.Decision `json:"outcome"`
	PlayerTotal int               `json:"player_total"`
	BankerTotal int               `json:"banker_total"`
	Natural     bool              `json:"natural"`
	Player      []string          `json:"player"`
	Banker      []string          `json:"banker"`
}

// Summary counts the outcomes currently in the window.
type Summary struct {
	Player   int `json:"player"`
	Banker   int `json:"banker"`
	Tie      int `json:"tie"`
	Naturals int `json:"naturals"`
}

// Total returns the number of hands counted.
func (s Summary) Total() int {
	return s.Player + s.Banker + s.Tie
}

func cardStrings(h baccarat.Hand) []string {
	out := make([]string, len(h))
	for i, c := range h {
		out[i] = c.String()
	}
	return out
}
