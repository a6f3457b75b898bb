// Package engine holds the pure blackjack arithmetic: hand values, the
// lifecycle of a hand, table rules, side bets and payouts.
// Nothing in here mutates its arguments or keeps state between calls.
package engine

import "blackjack-engine/pkg/deck"

// HandValue is the pair of totals for a set of cards
// Hi counts one ace as 11 when that keeps the total at or under 21, Lo counts every ace as 1.
type HandValue struct {
	Hi int `json:"hi"`
	Lo int `json:"lo"`
}

// Calculate returns the value of the cards
func Calculate(cards deck.Hand) HandValue {
	if len(cards) == 1 {
		v := cards[0].Value()
		if v == 1 {
			return HandValue{Hi: 11, Lo: 1}
		}

		return HandValue{Hi: v, Lo: v}
	}

	aces := 0
	sum := 0
	for _, card := range cards {
		if card.IsAce() {
			aces++
			continue
		}

		sum += card.Value()
	}

	value := HandValue{Hi: sum, Lo: sum}
	for i := 0; i < aces; i++ {
		if value.Hi+11 <= 21 {
			value.Hi += 11
		} else {
			value.Hi++
		}

		value.Lo++

		if value.Hi > 21 && value.Lo <= 21 {
			value.Hi = value.Lo
		}
	}

	return value
}

// HigherValidValue returns hi if it's 21 or under, otherwise lo
func HigherValidValue(v HandValue) int {
	if v.Hi <= 21 {
		return v.Hi
	}

	return v.Lo
}

// CheckForBusted returns true if no ace can save the hand
func CheckForBusted(v HandValue) bool {
	return v.Hi > 21 && v.Lo == v.Hi
}

// IsBlackjack returns true for a two card 21
func IsBlackjack(cards deck.Hand) bool {
	return len(cards) == 2 && Calculate(cards).Hi == 21
}

// IsSoftHand returns true for a soft 17: an ace counted as 11 brings the hand to exactly 17
// Only the dealer's stopping rule uses this.
func IsSoftHand(cards deck.Hand) bool {
	if !cards.HasAce() {
		return false
	}

	total := 0
	for _, card := range cards {
		if card.IsAce() && total < 11 {
			total += 11
		} else {
			total += card.Value()
		}
	}

	return total == 17
}

// IsSuited returns true when every card shares one suit
func IsSuited(cards deck.Hand) bool {
	if len(cards) == 0 {
		return false
	}

	suit := cards[0].Suit
	for _, card := range cards[1:] {
		if card.Suit != suit {
			return false
		}
	}

	return true
}

// hiLo is the Hi-Lo count indexed by card value - 1
var hiLo = [10]int{-1, 1, 1, 1, 1, 1, 0, 0, 0, -1}

// CountCards returns the Hi-Lo running count increment for the cards
func CountCards(cards deck.Hand) int {
	count := 0
	for _, card := range cards {
		count += hiLo[card.Value()-1]
	}

	return count
}
