package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/baccarat-master/application"
	"github.com/luca-patrignani/baccarat-master/config"
	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
	"github.com/luca-patrignani/baccarat-master/ledger"
)

// EmptySlot is shown in place of a third card that was not drawn.
const EmptySlot = "·"

var suitNames = map[baccarat.Suit]string{
	baccarat.Club:    "Clubs",
	baccarat.Diamond: "Diamonds",
	baccarat.Heart:   "Hearts",
	baccarat.Spade:   "Spades",
}

var rankNames = map[baccarat.Rank]string{
	baccarat.Ace:   "Ace",
	baccarat.Jack:  "Jack",
	baccarat.Queen: "Queen",
	baccarat.King:  "King",
}

// cardLabel renders a card in the chosen style: "A♥" for modern, "Ace of Hearts" for classic.
func cardLabel(c baccarat.Card, style string) string {
	if style == config.StyleClassic {
		rank, ok := rankNames[c.Rank()]
		if !ok {
			rank = c.Rank().String()
		}
		return fmt.Sprintf("%s of %s", rank, suitNames[c.Suit()])
	}
	suit := pterm.Black(c.Suit().String())
	if c.Suit().IsRed() {
		suit = pterm.LightRed(c.Suit().String())
	}
	return pterm.Bold.Sprint(c.Rank().String()) + suit
}

// handLabel renders the three card slots of a hand; missing cards show EmptySlot.
func handLabel(h baccarat.Hand, style string) string {
	slots := make([]string, baccarat.MaxCards)
	for i := range slots {
		if i < len(h) {
			slots[i] = cardLabel(h[i], style)
		} else {
			slots[i] = pterm.Gray(EmptySlot)
		}
	}
	return strings.Join(slots, "  |  ")
}

func handBox(title string, h baccarat.Hand, style string, showTotal bool) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := handLabel(h, style)
	if showTotal {
		body += pterm.Sprintf("\n\nTotal: %d", h.Total())
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(body)
}

func scoreBox(s application.Score, muted bool) string {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	sound := pterm.LightGreen("on")
	if muted {
		sound = pterm.Gray("off")
	}
	return pbox.WithTitle(pterm.LightYellow("|SCORE|")).WithTitleTopCenter().Sprintf(
		"Correct: %s\nMistakes: %s\nHands: %d\nPeeks: %d\nStreak: %d (best %d)\nAccuracy: %.0f%%\nSound: %s",
		pterm.LightGreen(s.Correct), pterm.LightRed(s.Incorrect), s.HandsPlayed, s.Peeks,
		s.Streak, s.BestStreak, s.Accuracy()*100, sound,
	)
}

// roadmapLine renders the bead road with one coloured letter per resolved hand.
func roadmapLine(entries []ledger.Entry) string {
	if len(entries) == 0 {
		return pterm.Gray("History will appear here")
	}
	beads := make([]string, len(entries))
	for i, e := range entries {
		sym := e.Outcome.Symbol()
		switch e.Outcome {
		case baccarat.PlayerWin:
			sym = pterm.LightBlue(sym)
		case baccarat.BankerWin:
			sym = pterm.LightRed(sym)
		default:
			sym = pterm.LightGreen(sym)
		}
		if e.Natural {
			sym += "*"
		}
		beads[i] = sym
	}
	return strings.Join(beads, " ")
}

func roadmapBox(r *ledger.Roadmap) string {
	sum := r.Summary()
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	return pbox.WithTitle(pterm.LightCyan("|ROADMAP|")).WithTitleTopCenter().Sprintf(
		"%s\nP %d  B %d  T %d  naturals %d",
		roadmapLine(r.Entries()), sum.Player, sum.Banker, sum.Tie, sum.Naturals,
	)
}

// printTable renders the banker and player hands, the score and the roadmap.
func printTable(tr *application.Trainer, style string, muted bool) {
	round := tr.Round()
	banker := pterm.Panel{Data: handBox(pterm.LightRed("BANKER"), round.Banker, style, round.Resolved)}
	player := pterm.Panel{Data: handBox(pterm.LightBlue("PLAYER"), round.Player, style, round.Resolved)}
	score := pterm.Panel{Data: scoreBox(tr.Score(), muted)}
	road := pterm.Panel{Data: roadmapBox(tr.Roadmap())}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{banker, player},
		{score, road},
	}).Render()
}

func printFeedback(fb application.Feedback) {
	switch fb.Kind {
	case application.FeedbackSuccess:
		pterm.Success.Println(fb.Message)
	case application.FeedbackError:
		pterm.Error.Println(fb.Message)
	default:
		if fb.Message == "" {
			pterm.Info.Println("Training Session Active")
			return
		}
		pterm.Info.Println(fb.Message)
	}
}
