package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/baccarat-master/application"
	"github.com/luca-patrignani/baccarat-master/config"
	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
	"github.com/luca-patrignani/baccarat-master/storage/prefs"
)

const (
	optPeek         = "Peek"
	optRules        = "Rules"
	optInstructions = "How to use"
	optStyle        = "Toggle card style"
	optSound        = "Toggle sound"
	optReset        = "Reset statistics"
	optQuit         = "Quit"
)

// option is a decision button offered for the current phase.
type option struct {
	Label    string
	Decision baccarat.Decision
}

// decisionOptions returns the buttons of a phase in display order.
func decisionOptions(p baccarat.Phase) []option {
	switch p {
	case baccarat.PhaseNaturalCheck:
		return []option{
			{"Banker Win", baccarat.BankerWin},
			{"Player Win", baccarat.PlayerWin},
			{"Tie (Natural)", baccarat.Tie},
			{"No Naturals", baccarat.NoNaturals},
		}
	case baccarat.PhasePlayerDrawCheck:
		return []option{
			{"Player Draw", baccarat.Draw},
			{"Player Stand", baccarat.Stand},
		}
	case baccarat.PhaseBankerDrawCheck:
		return []option{
			{"Banker Draw", baccarat.Draw},
			{"Banker Stand", baccarat.Stand},
		}
	case baccarat.PhaseFinalOutcome:
		return []option{
			{"Banker Win", baccarat.BankerWin},
			{"Player Win", baccarat.PlayerWin},
			{"Tie", baccarat.Tie},
		}
	default:
		return nil
	}
}

func question(p baccarat.Phase) string {
	switch p {
	case baccarat.PhaseNaturalCheck:
		return "Step 1: Is there a Natural Winner (8 or 9)?"
	case baccarat.PhasePlayerDrawCheck:
		return "Step 2: Does PLAYER draw a 3rd card?"
	case baccarat.PhaseBankerDrawCheck:
		return "Step 3: Does BANKER draw a 3rd card?"
	case baccarat.PhaseFinalOutcome:
		return "Final Step: What is the outcome?"
	default:
		return "Select an option"
	}
}

// menu lists the decision labels followed by the session commands.
func menu(p baccarat.Phase) []string {
	var items []string
	for _, o := range decisionOptions(p) {
		items = append(items, o.Label)
	}
	return append(items, optPeek, optRules, optInstructions, optStyle, optSound, optReset, optQuit)
}

func lookupDecision(p baccarat.Phase, label string) (baccarat.Decision, bool) {
	for _, o := range decisionOptions(p) {
		if o.Label == label {
			return o.Decision, true
		}
	}
	return 0, false
}

// session is the interactive terminal loop around a Trainer.
type session struct {
	trainer *application.Trainer
	prefs   prefs.Preferences
	store   *prefs.Store
	cfg     config.Config
	logger  *slog.Logger
}

func (s *session) run(ctx context.Context) error {
	s.trainer.Deal()
	for {
		round := s.trainer.Round()
		printTable(s.trainer, s.prefs.CardStyle, s.prefs.Muted)
		printFeedback(s.trainer.Feedback())

		choice, err := pterm.DefaultInteractiveSelect.
			WithDefaultText(question(round.Phase)).
			WithOptions(menu(round.Phase)).
			WithMaxHeight(16).
			Show()
		if err != nil {
			return err
		}

		switch choice {
		case optPeek:
			if _, err := s.trainer.Peek(); err != nil {
				return err
			}
		case optRules:
			if err := printRules(); err != nil {
				return err
			}
		case optInstructions:
			if err := printInstructions(); err != nil {
				return err
			}
		case optStyle:
			s.prefs.CardStyle = nextStyle(s.prefs.CardStyle)
			s.save(ctx, prefs.KeyCardStyle, s.prefs.CardStyle)
		case optSound:
			s.prefs.Muted = !s.prefs.Muted
			s.save(ctx, prefs.KeyMuted, fmt.Sprint(s.prefs.Muted))
		case optReset:
			ok, err := pterm.DefaultInteractiveConfirm.WithDefaultText("Reset all statistics?").Show()
			if err != nil {
				return err
			}
			if ok {
				s.trainer.ResetStats()
			}
		case optQuit:
			return nil
		default:
			d, ok := lookupDecision(round.Phase, choice)
			if !ok {
				return fmt.Errorf("unknown menu entry %q", choice)
			}
			if err := s.decide(d); err != nil {
				return err
			}
		}
	}
}

// decide submits d, rings the bell and deals the next hand once the round resolves.
func (s *session) decide(d baccarat.Decision) error {
	res, err := s.trainer.Submit(d)
	if err != nil {
		return err
	}
	if !res.Correct {
		s.ring(2)
		return nil
	}
	s.ring(1)
	if !res.State.Resolved {
		return nil
	}

	printTable(s.trainer, s.prefs.CardStyle, s.prefs.Muted)
	printFeedback(s.trainer.Feedback())
	spinner, err := pterm.DefaultSpinner.Start("Dealing the next hand ...")
	if err != nil {
		return err
	}
	time.Sleep(s.cfg.NextHandDelay)
	s.trainer.Deal()
	spinner.Success()
	return nil
}

func (s *session) ring(times int) {
	if s.prefs.Muted {
		return
	}
	for i := 0; i < times; i++ {
		fmt.Fprint(os.Stdout, "\a")
	}
}

func (s *session) save(ctx context.Context, key, value string) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, key, value); err != nil {
		s.logger.Warn("could not save preference", "key", key, "error", err)
	}
}

func nextStyle(style string) string {
	if style == config.StyleModern {
		return config.StyleClassic
	}
	return config.StyleModern
}
