package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPrize(t *testing.T) {
	test := func(player, dealer string, expected float64) {
		t.Helper()
		h := AfterStand(AfterDeal(cards(player), cards(dealer), 10))
		assert.Equal(t, expected, GetPrize(h, cards(dealer)), "%s vs %s", player, dealer)
	}

	test("10s,9h", "10c,7d", 20)
	test("10s,7h", "10c,7d", 10)
	test("10s,6h", "10c,7d", 0)
	test("10s,6h", "10c,6d,13h", 20)
	test("14s,13h", "10c,7d", 25)
	test("14s,13h", "14c,13d", 10)
	test("10s,7h", "14c,13d", 0)
	test("14s,6h", "10c,7d", 10)
	test("14s,7h", "10c,7d", 20)
}

func TestGetPrize_bustedAndSurrendered(t *testing.T) {
	a := assert.New(t)

	busted := AfterHit(cards("10s,6h,9c"), cards("10c"), 10, false)
	a.Equal(0.0, GetPrize(busted, cards("10c,6d,13h")), "a busted hand loses even if the dealer busts")

	surrendered := AfterSurrender(AfterDeal(cards("10s,6h"), cards("10c"), 10))
	a.Equal(5.0, GetPrize(surrendered, cards("10c,7d")))
	a.Equal(5.0, GetPrize(surrendered, cards("10c,6d,13h")))
}

func TestGetPrize_doubled(t *testing.T) {
	h := AfterDouble(cards("5s,6h,10c"), cards("10c"), 10, false)
	assert.Equal(t, 40.0, GetPrize(h, cards("10c,8d")))
}

func TestGetPrize_splitTwentyOne(t *testing.T) {
	// 21 from a split is not a blackjack and only pays even money
	h := AfterSplit(cards("14s,13h"), cards("10c"), 10, true)
	assert.Equal(t, 20.0, GetPrize(h, cards("10c,7d")))
	assert.Equal(t, 10.0, GetPrize(h, cards("14c,13d")), "pushes against a dealer blackjack")
}

func TestGetHandsPrize(t *testing.T) {
	a := assert.New(t)

	hands := []Hand{
		AfterStand(AfterSplit(cards("8s,10h"), cards("10c"), 10, true)),
		AfterStand(AfterSplit(cards("8c,3d"), cards("10c"), 10, true)),
	}
	a.Equal(10.0, GetHandsPrize(hands, cards("10c,8d")))
	a.Equal(40.0, GetHandsPrize(hands, cards("10c,6d,13h")))
	a.Equal(0.0, GetHandsPrize(nil, cards("10c,8d")))
}
