package application

import (
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
	"github.com/luca-patrignani/baccarat-master/ledger"
)

type FeedbackKind int

const (
	FeedbackNeutral FeedbackKind = iota
	FeedbackSuccess
	FeedbackError
)

// Feedback is the line shown to the trainee after each action.
type Feedback struct {
	Kind    FeedbackKind
	Message string
}

// Score tracks the trainee's answers over the session.
type Score struct {
	Correct     int
	Incorrect   int
	HandsPlayed int
	Peeks       int
	Streak      int
	BestStreak  int
}

// Accuracy returns the share of correct answers in [0, 1], or 0 before any answer.
func (s Score) Accuracy() float64 {
	total := s.Correct + s.Incorrect
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total)
}

// Trainer drives a training session: it deals hands, grades answers through
// the rule engine, keeps the score and records resolved hands on the roadmap.
// A Trainer is used by a single goroutine.
type Trainer struct {
	shoe     baccarat.Shoe
	round    baccarat.RoundState
	score    Score
	feedback Feedback
	roadmap  *ledger.Roadmap
	logger   *slog.Logger
}

// NewTrainer creates a session drawing from shoe. A nil roadmap gets the
// default window and a nil logger uses slog.Default. No hand is dealt until Deal.
func NewTrainer(shoe baccarat.Shoe, roadmap *ledger.Roadmap, logger *slog.Logger) *Trainer {
	if roadmap == nil {
		roadmap = ledger.NewRoadmap(ledger.DefaultSize)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Trainer{
		shoe:    shoe,
		roadmap: roadmap,
		logger:  logger,
	}
}

// Deal replaces the current round with a freshly dealt hand.
func (t *Trainer) Deal() baccarat.RoundState {
	t.round = baccarat.NewRound(t.shoe)
	t.feedback = Feedback{Kind: FeedbackNeutral, Message: "Initial deal complete. Check for Naturals."}
	t.logger.Debug("hand dealt", "player", t.round.Player.String(), "banker", t.round.Banker.String())
	return t.round
}

func (t *Trainer) Round() baccarat.RoundState { return t.round }

func (t *Trainer) Score() Score { return t.score }

func (t *Trainer) Feedback() Feedback { return t.feedback }

func (t *Trainer) Roadmap() *ledger.Roadmap { return t.roadmap }

// Submit grades d for the current phase and updates the score.
// Errors are driver bugs (see baccarat.Submit) and leave the session untouched.
func (t *Trainer) Submit(d baccarat.Decision) (baccarat.Result, error) {
	res, err := baccarat.Submit(t.round, d, t.shoe)
	if err != nil {
		t.logger.Error("decision rejected", "decision", d.String(), "phase", t.round.Phase.String(), "error", err)
		return baccarat.Result{}, err
	}
	t.logger.Debug("decision graded", "phase", t.round.Phase.String(), "decision", d.String(), "correct", res.Correct)

	if !res.Correct {
		t.score.Incorrect++
		t.score.Streak = 0
		t.feedback = Feedback{Kind: FeedbackError, Message: res.Message}
		return res, nil
	}

	t.round = res.State
	t.score.Correct++
	t.score.Streak++
	if t.score.Streak > t.score.BestStreak {
		t.score.BestStreak = t.score.Streak
	}
	t.feedback = Feedback{Kind: FeedbackSuccess, Message: res.Message}

	if t.round.Resolved {
		t.score.HandsPlayed++
		e, err := t.roadmap.Append(t.round)
		if err != nil {
			return res, fmt.Errorf("record hand: %w", err)
		}
		t.logger.Info("hand resolved",
			"hand", e.Index,
			"outcome", e.Outcome.String(),
			"natural", e.Natural,
			"player_total", e.PlayerTotal,
			"banker_total", e.BankerTotal,
		)
	}
	return res, nil
}

// Peek reveals the correct answer for the current phase and counts the peek.
func (t *Trainer) Peek() (baccarat.Decision, error) {
	d, err := baccarat.Peek(t.round)
	if err != nil {
		return 0, err
	}
	t.score.Peeks++
	t.feedback = Feedback{Kind: FeedbackNeutral, Message: fmt.Sprintf("Hint: The rule dictates %s", d)}
	return d, nil
}

// ResetStats clears the score and the roadmap and deals a new hand.
func (t *Trainer) ResetStats() baccarat.RoundState {
	t.score = Score{}
	t.roadmap.Reset()
	round := t.Deal()
	t.feedback = Feedback{Kind: FeedbackNeutral, Message: "Stats reset. Ready for analysis."}
	t.logger.Info("statistics reset")
	return round
}
