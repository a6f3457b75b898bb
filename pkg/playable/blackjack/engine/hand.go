package engine

import "blackjack-engine/pkg/deck"

// AvailableActions are the actions a hand may take next
type AvailableActions struct {
	Double    bool `json:"double"`
	Split     bool `json:"split"`
	Insurance bool `json:"insurance"`
	Hit       bool `json:"hit"`
	Stand     bool `json:"stand"`
	Surrender bool `json:"surrender"`
}

func noActions() AvailableActions {
	return AvailableActions{}
}

// Hand is one of a player's hands
// Once Close is true only settlement reads it.
type Hand struct {
	Cards            deck.Hand        `json:"cards"`
	Bet              float64          `json:"bet"`
	Value            HandValue        `json:"value"`
	HasBlackjack     bool             `json:"hasBlackjack"`
	HasBusted        bool             `json:"hasBusted"`
	HasSurrendered   bool             `json:"hasSurrendered"`
	Close            bool             `json:"close"`
	AvailableActions AvailableActions `json:"availableActions"`
}

// Clone returns a copy of the hand that shares nothing with h
func (h Hand) Clone() Hand {
	h.Cards = h.Cards.Clone()
	return h
}

// IsResolved returns true if the dealer's cards can no longer change the outcome of the hand
func (h Hand) IsResolved() bool {
	return h.HasBusted || h.HasBlackjack || h.HasSurrendered
}

// HandInit derives a hand from its cards with a zero bet
// Blackjack is only possible when the hand did not come from a split.
func HandInit(playerCards, dealerCards deck.Hand, hasSplit bool) Hand {
	value := Calculate(playerCards)
	hasBlackjack := IsBlackjack(playerCards) && !hasSplit
	hasBusted := CheckForBusted(value)
	isClosed := hasBusted || hasBlackjack || value.Hi == 21

	canSplit := len(playerCards) > 1 && playerCards[0].Value() == playerCards[1].Value() && !isClosed
	canInsure := false
	if up, ok := dealerCards.FirstCard(); ok {
		canInsure = up.Value() == 1 && !isClosed
	}

	return Hand{
		Bet:          0,
		Cards:        playerCards.Clone(),
		Value:        value,
		HasBlackjack: hasBlackjack,
		HasBusted:    hasBusted,
		Close:        isClosed,
		AvailableActions: AvailableActions{
			Double:    !isClosed,
			Split:     canSplit,
			Insurance: canInsure,
			Hit:       !isClosed,
			Stand:     !isClosed,
			Surrender: !isClosed,
		},
	}
}

// AfterDeal derives the first hand of a player
// A natural is not closed here: it has to stay in the round until the dealer shows the hole card.
func AfterDeal(playerCards, dealerCards deck.Hand, initialBet float64) Hand {
	h := HandInit(playerCards, dealerCards, false)
	h.Bet = initialBet
	h.Close = false
	h.AvailableActions.Hit = true
	h.AvailableActions.Stand = true
	h.AvailableActions.Surrender = true

	return h
}

// AfterSplit derives one of the two hands made by a split
func AfterSplit(playerCards, dealerCards deck.Hand, initialBet float64, canSplitAgain bool) Hand {
	h := HandInit(playerCards, dealerCards, true)
	h.Bet = initialBet
	h.AvailableActions.Split = h.AvailableActions.Split && canSplitAgain
	h.AvailableActions.Double = !h.Close && len(playerCards) == 2
	h.AvailableActions.Insurance = false
	h.AvailableActions.Surrender = false

	return h
}

// AfterHit derives a hand that just took a card
func AfterHit(playerCards, dealerCards deck.Hand, initialBet float64, hasSplit bool) Hand {
	h := HandInit(playerCards, dealerCards, hasSplit)
	h.Bet = initialBet
	h.AvailableActions.Double = !h.Close && len(playerCards) == 2
	h.AvailableActions.Split = false
	h.AvailableActions.Insurance = false
	h.AvailableActions.Surrender = false

	return h
}

// AfterDouble derives a hand that doubled: the bet doubles and the hand is over
func AfterDouble(playerCards, dealerCards deck.Hand, initialBet float64, hasSplit bool) Hand {
	h := AfterHit(playerCards, dealerCards, initialBet, hasSplit)
	h.AvailableActions.Double = false
	h.AvailableActions.Hit = false
	h.AvailableActions.Stand = false
	h.Bet = initialBet * 2
	h.Close = true

	return h
}

// AfterStand closes the hand
func AfterStand(h Hand) Hand {
	h = h.Clone()
	h.Close = true
	h.AvailableActions = noActions()

	return h
}

// AfterSurrender closes the hand and marks it surrendered
func AfterSurrender(h Hand) Hand {
	h = AfterStand(h)
	h.HasSurrendered = true

	return h
}

// AfterAceSplit derives a split ace hand that received its one extra card
// Only used when the table plays showdown after an ace split.
func AfterAceSplit(playerCards, dealerCards deck.Hand, initialBet float64) Hand {
	h := HandInit(playerCards, dealerCards, true)
	h.AvailableActions = noActions()
	h.Bet = initialBet
	h.Close = true

	return h
}
