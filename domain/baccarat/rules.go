package baccarat

// naturalPoint is the lowest two-card total that ends the hand on the deal.
const naturalPoint = 8

// IsNatural reports whether either side was dealt a natural 8 or 9.
// Only the first two cards of each hand are considered.
func IsNatural(player, banker Hand) bool {
	return player.InitialTotal() >= naturalPoint || banker.InitialTotal() >= naturalPoint
}

// NaturalOutcome compares the two-card totals: the higher point wins and
// equal points (8-8 or 9-9) tie.
func NaturalOutcome(player, banker Hand) Decision {
	return compare(player.InitialTotal(), banker.InitialTotal())
}

// PlayerShouldDraw applies the Player rule: draw on 0-5, stand on 6-7.
// It is only asked once the natural check has failed.
func PlayerShouldDraw(player Hand) bool {
	return player.Total() <= 5
}

// BankerShouldDraw applies the Banker rule. When the Player stood the Banker
// draws on 0-5; when the Player drew, the tableau decides from the Banker
// total and the value of the Player's third card.
func BankerShouldDraw(banker, player Hand) bool {
	third, drew := player.ThirdCard()
	if !drew {
		return banker.Total() <= 5
	}
	return BankerTableau(banker.Total(), third.Value())
}

// BankerTableau is the Banker's third-card table once the Player has drawn.
// bankerTotal is the Banker point (0-9) and playerThird the point value of
// the Player's third card (0-9).
func BankerTableau(bankerTotal, playerThird int) bool {
	switch bankerTotal {
	case 0, 1, 2:
		return true
	case 3:
		return playerThird != 8
	case 4:
		return playerThird >= 2 && playerThird <= 7
	case 5:
		return playerThird >= 4 && playerThird <= 7
	case 6:
		return playerThird == 6 || playerThird == 7
	default: // 7, and 8-9 which end the hand as naturals
		return false
	}
}

// Winner compares the final totals once all drawing is complete.
func Winner(player, banker Hand) Decision {
	return compare(player.Total(), banker.Total())
}

func compare(playerTotal, bankerTotal int) Decision {
	switch {
	case playerTotal > bankerTotal:
		return PlayerWin
	case bankerTotal > playerTotal:
		return BankerWin
	default:
		return Tie
	}
}
