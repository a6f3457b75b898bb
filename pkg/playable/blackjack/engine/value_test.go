package engine

import (
	"testing"

	"blackjack-engine/internal/rng"
	"blackjack-engine/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func cards(s string) deck.Hand {
	return deck.CardsFromString(s)
}

func TestCalculate(t *testing.T) {
	test := func(s string, hi, lo int) {
		t.Helper()
		assert.Equal(t, HandValue{Hi: hi, Lo: lo}, Calculate(cards(s)), s)
	}

	test("", 0, 0)
	test("14s", 11, 1)
	test("13s", 10, 10)
	test("14s,13h", 21, 11)
	test("14s,14h", 12, 2)
	test("14s,14h,14d", 13, 3)
	test("14s,6h", 17, 7)
	test("14s,6h,10c", 17, 17)
	test("10s,6h,10c", 26, 26)
	test("9s,7h", 16, 16)
	test("14s,9h,14c", 21, 11)
	test("5s,5h,14c,14d", 12, 12)
	test("5s,5h,14c,14d,10c", 22, 22)
}

func TestCalculate_invariants(t *testing.T) {
	a := assert.New(t)
	for seed := int64(1); seed <= 50; seed++ {
		d := deck.New(1)
		d.Shuffle(rng.NewSeeded(seed))

		var hand deck.Hand
		for i := 0; i < 6; i++ {
			card, err := d.Draw()
			a.NoError(err)
			hand = hand.Append(card)

			v := Calculate(hand)
			a.True(v.Lo <= v.Hi, "lo <= hi for %s", hand)
			a.Equal(0, (v.Hi-v.Lo)%10, "hi-lo multiple of 10 for %s", hand)
			a.Equal(CheckForBusted(v), v.Hi == v.Lo && v.Hi > 21)
		}
	}
}

func TestHigherValidValue(t *testing.T) {
	assert.Equal(t, 21, HigherValidValue(HandValue{Hi: 21, Lo: 11}))
	assert.Equal(t, 15, HigherValidValue(HandValue{Hi: 25, Lo: 15}))
	assert.Equal(t, 24, HigherValidValue(HandValue{Hi: 24, Lo: 24}))
}

func TestCheckForBusted(t *testing.T) {
	assert.True(t, CheckForBusted(HandValue{Hi: 22, Lo: 22}))
	assert.False(t, CheckForBusted(HandValue{Hi: 22, Lo: 12}))
	assert.False(t, CheckForBusted(HandValue{Hi: 21, Lo: 21}))
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, IsBlackjack(cards("14s,13h")))
	assert.True(t, IsBlackjack(cards("10s,14h")))
	assert.False(t, IsBlackjack(cards("14s,9h")))
	assert.False(t, IsBlackjack(cards("7s,7h,7c")))
	assert.False(t, IsBlackjack(cards("14s")))
}

func TestIsSoftHand(t *testing.T) {
	assert.True(t, IsSoftHand(cards("14s,6h")))
	assert.True(t, IsSoftHand(cards("6h,14s")))
	assert.True(t, IsSoftHand(cards("2h,4c,14s")))
	assert.False(t, IsSoftHand(cards("10h,7s")))
	assert.False(t, IsSoftHand(cards("14s,7h")))
	assert.False(t, IsSoftHand(cards("14s,6h,10c")))
}

func TestIsSuited(t *testing.T) {
	assert.True(t, IsSuited(cards("2s,9s,13s")))
	assert.True(t, IsSuited(cards("2h")))
	assert.False(t, IsSuited(cards("2s,9s,13h")))
	assert.False(t, IsSuited(deck.Hand{}))
	assert.False(t, IsSuited(nil))
}

func TestCountCards(t *testing.T) {
	test := func(s string, expected int) {
		t.Helper()
		assert.Equal(t, expected, CountCards(cards(s)), s)
	}

	test("2c,3c,4c,5c,6c", 5)
	test("7c,8c,9c", 0)
	test("10c,11c,12c,13c,14c", -5)
	test("2c,14c", 0)
	test("", 0)

	// a full deck counts to zero
	assert.Equal(t, 0, CountCards(deck.New(1).Cards))
}
