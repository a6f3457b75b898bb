package engine

import "blackjack-engine/pkg/deck"

// GetPrize returns what the hand pays back against the dealer's final cards
// 0 means the bet is lost; a push returns the bet.
func GetPrize(h Hand, dealerCards deck.Hand) float64 {
	if h.HasBusted {
		return 0
	}

	if h.HasSurrendered {
		return h.Bet / 2
	}

	dealerHasBlackjack := IsBlackjack(dealerCards)
	if h.HasBlackjack && !dealerHasBlackjack {
		return h.Bet + h.Bet*1.5
	}

	dealerValue := HigherValidValue(Calculate(dealerCards))
	if dealerValue > 21 {
		return h.Bet * 2
	}

	playerValue := HigherValidValue(h.Value)
	switch {
	case playerValue > dealerValue:
		return h.Bet * 2
	case playerValue == dealerValue:
		return h.Bet
	}

	return 0
}

// GetHandsPrize returns the sum of the prizes of every hand
func GetHandsPrize(hands []Hand, dealerCards deck.Hand) float64 {
	total := 0.0
	for _, h := range hands {
		total += GetPrize(h, dealerCards)
	}

	return total
}
