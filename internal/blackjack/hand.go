package blackjack

import "strings"

// Card builds a card code from rank and suit, e.g. "A♠", "10♥".
func Card(rank, suit string) string {
	return rank + suit
}

// rankOf strips the one-rune suit off a card code
func rankOf(card string) string {
	for _, suit := range suits {
		if strings.HasSuffix(card, suit) {
			return strings.TrimSuffix(card, suit)
		}
	}
	return card
}

// Score computes a hand's blackjack score. Aces count as 11, then are
// reduced to 1 one at a time while the total exceeds 21. The returned
// score is above 21 only when every ace is already hard.
func Score(cards []string) int {
	total := 0
	aces := 0

	for _, card := range cards {
		rank := rankOf(card)
		value := rankValues[rank]
		if rank == "A" {
			aces++
		}
		total += value
	}

	for total > BustThreshold && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsSoft reports whether the hand still counts an ace as 11
func IsSoft(cards []string) bool {
	total := 0
	aces := 0

	for _, card := range cards {
		rank := rankOf(card)
		if rank == "A" {
			aces++
		}
		total += rankValues[rank]
	}

	for total > BustThreshold && aces > 0 {
		total -= 10
		aces--
	}

	return aces > 0
}
