package main

import (
	"testing"

	"github.com/luca-patrignani/baccarat-master/config"
	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
)

func TestDecisionOptionsMatchPhase(t *testing.T) {
	phases := []baccarat.Phase{
		baccarat.PhaseNaturalCheck,
		baccarat.PhasePlayerDrawCheck,
		baccarat.PhaseBankerDrawCheck,
		baccarat.PhaseFinalOutcome,
	}
	for _, p := range phases {
		t.Run(p.String(), func(t *testing.T) {
			opts := decisionOptions(p)
			if len(opts) != len(p.Decisions()) {
				t.Fatalf("%d options, phase accepts %d decisions", len(opts), len(p.Decisions()))
			}
			for _, o := range opts {
				if !p.Allows(o.Decision) {
					t.Errorf("option %q submits %s which %s does not accept", o.Label, o.Decision, p)
				}
				d, ok := lookupDecision(p, o.Label)
				if !ok || d != o.Decision {
					t.Errorf("lookupDecision(%q) = %s, %v", o.Label, d, ok)
				}
			}
		})
	}
}

func TestMenuEndsWithCommands(t *testing.T) {
	items := menu(baccarat.PhasePlayerDrawCheck)
	if items[0] != "Player Draw" || items[1] != "Player Stand" {
		t.Fatalf("unexpected decision entries %v", items[:2])
	}
	if items[len(items)-1] != optQuit {
		t.Fatalf("last entry = %q, want %q", items[len(items)-1], optQuit)
	}
	if _, ok := lookupDecision(baccarat.PhasePlayerDrawCheck, optPeek); ok {
		t.Fatal("commands must not map to decisions")
	}
}

func TestNextStyle(t *testing.T) {
	if nextStyle(config.StyleModern) != config.StyleClassic || nextStyle(config.StyleClassic) != config.StyleModern {
		t.Fatal("style toggle does not alternate")
	}
}

func TestQuestionPerPhase(t *testing.T) {
	if got := question(baccarat.PhaseNaturalCheck); got != "Step 1: Is there a Natural Winner (8 or 9)?" {
		t.Fatalf("unexpected question %q", got)
	}
	if got := question(0); got != "Select an option" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
