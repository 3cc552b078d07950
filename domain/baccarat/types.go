package baccarat

// Decision is an answer the trainee submits for the current phase.
type Decision uint8

const (
	BankerWin Decision = iota + 1
	PlayerWin
	Tie
	NoNaturals
	Draw
	Stand
)

func (d Decision) String() string {
	switch d {
	case BankerWin:
		return "BANKER WIN"
	case PlayerWin:
		return "PLAYER WIN"
	case Tie:
		return "TIE"
	case NoNaturals:
		return "NO NATURALS"
	case Draw:
		return "DRAW"
	case Stand:
		return "STAND"
	default:
		return "UNKNOWN"
	}
}

// IsOutcome reports whether d names the result of a hand.
func (d Decision) IsOutcome() bool {
	return d == BankerWin || d == PlayerWin || d == Tie
}

// Symbol returns the roadmap letter of an outcome (P, B or T), or "" for other decisions.
func (d Decision) Symbol() string {
	switch d {
	case PlayerWin:
		return "P"
	case BankerWin:
		return "B"
	case Tie:
		return "T"
	default:
		return ""
	}
}

// ParseDecision converts the display name of a decision back to its value.
func ParseDecision(s string) (Decision, bool) {
	for _, d := range []Decision{BankerWin, PlayerWin, Tie, NoNaturals, Draw, Stand} {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// Phase is the question currently asked about the hand.
type Phase uint8

const (
	PhaseNaturalCheck Phase = iota + 1
	PhasePlayerDrawCheck
	PhaseBankerDrawCheck
	PhaseFinalOutcome
)

func (p Phase) String() string {
	switch p {
	case PhaseNaturalCheck:
		return "natural check"
	case PhasePlayerDrawCheck:
		return "player draw check"
	case PhaseBankerDrawCheck:
		return "banker draw check"
	case PhaseFinalOutcome:
		return "final outcome"
	default:
		return "unknown"
	}
}

// Decisions returns the answers accepted in phase p, in display order.
func (p Phase) Decisions() []Decision {
	switch p {
	case PhaseNaturalCheck:
		return []Decision{BankerWin, PlayerWin, Tie, NoNaturals}
	case PhasePlayerDrawCheck, PhaseBankerDrawCheck:
		return []Decision{Draw, Stand}
	case PhaseFinalOutcome:
		return []Decision{BankerWin, PlayerWin, Tie}
	default:
		return nil
	}
}

// Allows reports whether d is a valid answer in phase p.
func (p Phase) Allows(d Decision) bool {
	for _, v := range p.Decisions() {
		if v == d {
			return true
		}
	}
	return false
}
