package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/baccarat-master/domain/baccarat"
)

const disclaimer = "Practice or success at social casino gaming does not imply future success " +
	"at real money gambling. No real money or prizes can be won here."

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgYellow.ToStyle()),
		putils.LettersFromStringWithStyle("accarat ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("M", pterm.FgYellow.ToStyle()),
		putils.LettersFromStringWithStyle("aster", pterm.FgDarkGray.ToStyle()),
	).Render()
}

// showWelcome prints the disclaimer and asks the trainee to accept it.
func showWelcome() (bool, error) {
	pterm.DefaultSection.Println("Elite Training Simulator")
	pterm.Warning.Println(disclaimer)
	pterm.Println()
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText("By entering, you confirm you are 18+ and accept our terms. Agree & enter trainer?").
		WithDefaultValue(true).
		Show()
}

// tableauRows builds the banker's third-card table from the rule engine,
// one row per banker total with the player third-card values that make the banker draw.
func tableauRows() [][]string {
	rows := [][]string{{"Banker total", "Draws when Player's 3rd card is", "Stands when it is"}}
	for total := 0; total <= 7; total++ {
		var draws, stands []int
		for v := 0; v <= 9; v++ {
			if baccarat.BankerTableau(total, v) {
				draws = append(draws, v)
			} else {
				stands = append(stands, v)
			}
		}
		rows = append(rows, []string{strconv.Itoa(total), valueList(draws), valueList(stands)})
	}
	return rows
}

func valueList(values []int) string {
	switch len(values) {
	case 0:
		return "never"
	case 10:
		return "always"
	}
	s := ""
	for i, v := range values {
		if i > 0 {
			s += ", "
		}
		s += strconv.Itoa(v)
	}
	return s
}

func printRules() error {
	pterm.DefaultSection.Println("Baccarat Drawing Rules")

	pterm.DefaultSection.WithLevel(2).Println("1. Naturals")
	pterm.DefaultParagraph.Println("If Player or Banker has an initial total of 8 or 9, both stand. No more cards are dealt.")

	pterm.DefaultSection.WithLevel(2).Println("2. Player rule")
	if err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "0 - 5: Player Draws"},
		{Level: 0, Text: "6 - 7: Player Stands"},
	}).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.WithLevel(2).Println("3. Banker rule")
	pterm.DefaultParagraph.Println("If the Player stood, the Banker draws on 0 - 5 and stands on 6 - 7. " +
		"If the Player drew, the Banker's Tableau decides:")
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableauRows()).Render()
}

func printInstructions() error {
	pterm.DefaultSection.Println("How To Use")
	pterm.DefaultParagraph.Println("This application simulates real Baccarat hands to train your decision-making accuracy.")
	if err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "Cards are dealt automatically (initial 4)."},
		{Level: 0, Text: "Analyze the board for a Natural Win (8 or 9)."},
		{Level: 0, Text: "If no natural, decide if the Player should draw a 3rd card based on their total."},
		{Level: 0, Text: "If applicable, decide if the Banker should draw a 3rd card based on the Banker's Tableau."},
		{Level: 0, Text: "Finally, determine the Winner based on the final totals."},
	}).Render(); err != nil {
		return err
	}
	pterm.Info.Println("Tip: Use \"Peek\" if you get stuck, but try to rely on memory!")
	return nil
}
