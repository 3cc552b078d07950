package baccarat

import (
	"fmt"
	"slices"
)

// Shoe hands out the cards of the initial deal and any third cards.
type Shoe interface {
	Draw() Card
}

// RoundState is the hand in progress. It is created by NewRound and only
// moved forward by Submit; a new hand replaces it.
type RoundState struct {
	Player   Hand
	Banker   Hand
	Phase    Phase
	Resolved bool
}

// Result is the grading of one submitted decision.
type Result struct {
	Correct bool
	// State is the round after the decision. A wrong answer leaves it unchanged.
	State RoundState
	// Drawn is the third card dealt by a correct DRAW, nil otherwise.
	Drawn   *Card
	Message string
}

// NewRound deals Player, Banker, Player, Banker from the shoe and opens the
// natural check.
func NewRound(shoe Shoe) RoundState {
	p1 := shoe.Draw()
	b1 := shoe.Draw()
	p2 := shoe.Draw()
	b2 := shoe.Draw()
	return RoundState{
		Player: Hand{p1, p2},
		Banker: Hand{b1, b2},
		Phase:  PhaseNaturalCheck,
	}
}

// Natural reports whether the round ended on the deal.
func (s RoundState) Natural() bool {
	return s.Resolved && s.Phase == PhaseNaturalCheck
}

// Outcome returns the result of a resolved round.
func (s RoundState) Outcome() (Decision, bool) {
	if !s.Resolved {
		return 0, false
	}
	if s.Phase == PhaseNaturalCheck {
		return NaturalOutcome(s.Player, s.Banker), true
	}
	return Winner(s.Player, s.Banker), true
}

// Peek returns the correct answer for the current phase without moving the round.
func Peek(s RoundState) (Decision, error) {
	if s.Resolved {
		return 0, ErrRoundResolved
	}
	if err := s.validate(); err != nil {
		return 0, err
	}
	return s.answer()
}

// Submit grades decision d against the rules for the current phase.
//
// A wrong answer is not an error: the returned Result has Correct set to false,
// an explanation in Message and the round unchanged, so the same phase is asked
// again. A correct answer advances the round, drawing a third card from shoe
// when the answer was DRAW.
//
// An error is returned only when the caller breaks the contract: the round is
// already resolved, d is not an answer of the current phase, or the state was
// not built by NewRound and Submit.
func Submit(s RoundState, d Decision, shoe Shoe) (Result, error) {
	if s.Resolved {
		return Result{}, ErrRoundResolved
	}
	if err := s.validate(); err != nil {
		return Result{}, err
	}
	if !s.Phase.Allows(d) {
		return Result{}, fmt.Errorf("%w: %s during %s", ErrDecisionNotAllowed, d, s.Phase)
	}
	want, err := s.answer()
	if err != nil {
		return Result{}, err
	}
	if d != want {
		return Result{
			Correct: false,
			State:   s,
			Message: s.wrongMessage(want),
		}, nil
	}

	next := RoundState{
		Player: slices.Clone(s.Player),
		Banker: slices.Clone(s.Banker),
		Phase:  s.Phase,
	}
	res := Result{Correct: true}

	switch s.Phase {
	case PhaseNaturalCheck:
		if want == NoNaturals {
			next.Phase = PhasePlayerDrawCheck
			res.Message = "Correct. No naturals. Check Player draw."
		} else {
			next.Resolved = true
			res.Message = fmt.Sprintf("Correct! %s Natural.", want)
		}
	case PhasePlayerDrawCheck:
		if want == Draw {
			c, err := draw(shoe)
			if err != nil {
				return Result{}, err
			}
			next.Player = append(next.Player, c)
			res.Drawn = &c
			res.Message = "Correct. Player draws."
		} else {
			res.Message = "Correct. Player stands."
		}
		next.Phase = PhaseBankerDrawCheck
	case PhaseBankerDrawCheck:
		if want == Draw {
			c, err := draw(shoe)
			if err != nil {
				return Result{}, err
			}
			next.Banker = append(next.Banker, c)
			res.Drawn = &c
			res.Message = "Correct. Banker draws."
		} else {
			res.Message = "Correct. Banker stands."
		}
		next.Phase = PhaseFinalOutcome
	case PhaseFinalOutcome:
		next.Resolved = true
		res.Message = fmt.Sprintf("Winner: %s. P: %d, B: %d.", want, next.Player.Total(), next.Banker.Total())
	}

	res.State = next
	return res, nil
}

// answer computes the correct decision for the current phase.
func (s RoundState) answer() (Decision, error) {
	switch s.Phase {
	case PhaseNaturalCheck:
		if IsNatural(s.Player, s.Banker) {
			return NaturalOutcome(s.Player, s.Banker), nil
		}
		return NoNaturals, nil
	case PhasePlayerDrawCheck:
		return drawOrStand(PlayerShouldDraw(s.Player)), nil
	case PhaseBankerDrawCheck:
		return drawOrStand(BankerShouldDraw(s.Banker, s.Player)), nil
	case PhaseFinalOutcome:
		return Winner(s.Player, s.Banker), nil
	default:
		return 0, ErrInvalidState(fmt.Sprintf("unknown phase %d", s.Phase))
	}
}

func (s RoundState) wrongMessage(want Decision) string {
	switch s.Phase {
	case PhaseNaturalCheck:
		if want == NoNaturals {
			return "Incorrect. No 8 or 9 is present."
		}
		return fmt.Sprintf("Incorrect. Result is %s.", want)
	case PhasePlayerDrawCheck:
		return fmt.Sprintf("Incorrect. Player total is %d. Rules: 0-5 Draw, 6-7 Stand.", s.Player.Total())
	case PhaseBankerDrawCheck:
		return "Incorrect. Refer to the Banker's Tableau."
	default:
		return fmt.Sprintf("Incorrect. The winning hand is %s.", want)
	}
}

// validate checks that hand sizes match the phase.
func (s RoundState) validate() error {
	if !s.Player.valid() || !s.Banker.valid() {
		return ErrInvalidState("each hand must hold 2 or 3 valid cards")
	}
	switch s.Phase {
	case PhaseNaturalCheck, PhasePlayerDrawCheck:
		if s.Player.HasThirdCard() || s.Banker.HasThirdCard() {
			return ErrInvalidState(fmt.Sprintf("third card dealt before %s", s.Phase))
		}
	case PhaseBankerDrawCheck:
		if s.Banker.HasThirdCard() {
			return ErrInvalidState("banker holds a third card before the banker draw check")
		}
	case PhaseFinalOutcome:
	default:
		return ErrInvalidState(fmt.Sprintf("unknown phase %d", s.Phase))
	}
	return nil
}

func drawOrStand(draw bool) Decision {
	if draw {
		return Draw
	}
	return Stand
}

func draw(shoe Shoe) (Card, error) {
	if shoe == nil {
		return Card{}, ErrNoShoe
	}
	c := shoe.Draw()
	if !c.IsValid() {
		return Card{}, ErrInvalidState("shoe returned an invalid card")
	}
	return c, nil
}
