package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuckyLucky(t *testing.T) {
	assert.True(t, IsLuckyLucky(cards("7s,7h"), cards("7c")))
	assert.True(t, IsLuckyLucky(cards("10h,9c"), cards("14d")), "ace counted as 1 makes 20")
	assert.True(t, IsLuckyLucky(cards("14h,14c"), cards("7d")), "soft 12 plus 7")
	assert.False(t, IsLuckyLucky(cards("10h,5c"), cards("2d")))
	assert.False(t, IsLuckyLucky(cards("10h,10c"), cards("10d")))
}

func TestLuckyLuckyMultiplier(t *testing.T) {
	test := func(player, dealer string, expected float64) {
		t.Helper()
		assert.Equal(t, expected, LuckyLuckyMultiplier(cards(player), cards(dealer)), "%s + %s", player, dealer)
	}

	test("7s,7s", "7s", 200)
	test("7s,7h", "7c", 50)
	test("6h,8h", "7h", 100)
	test("8c,6h", "7d", 30)
	test("10h,8h", "3h", 10)
	test("10h,8c", "3d", 3)
	test("10h,9c", "14d", 2)
	test("10h,7c", "2d", 2)
	test("10h,5c", "2d", 0)
}

func TestIsPerfectPairs(t *testing.T) {
	assert.True(t, IsPerfectPairs(cards("8s,8h")))
	assert.True(t, IsPerfectPairs(cards("13s,13s")))
	assert.True(t, IsPerfectPairs(cards("10s,13h")), "ten-valued cards pair")
	assert.True(t, IsPerfectPairs(cards("14s,1h")), "a low ace pairs with a high ace")
	assert.False(t, IsPerfectPairs(cards("9s,10h")))
	assert.False(t, IsPerfectPairs(cards("8s")))
	assert.False(t, IsPerfectPairs(nil))
}

func TestGetSideBetsInfo(t *testing.T) {
	a := assert.New(t)

	both := SideBets{LuckyLucky: true, PerfectPairs: true}
	stakes := SideBetsFromUser{LuckyLucky: 10, PerfectPairs: 5}

	wins := GetSideBetsInfo(both, stakes, cards("7s,7h"), cards("7c"))
	a.Equal(500.0, wins.LuckyLucky)
	a.Equal(25.0, wins.PerfectPairs)
	a.Nil(wins.Insurance)
	a.Equal(525.0, wins.Total())

	wins = GetSideBetsInfo(SideBets{LuckyLucky: true}, stakes, cards("7s,7h"), cards("7c"))
	a.Equal(500.0, wins.LuckyLucky)
	a.Equal(0.0, wins.PerfectPairs)

	wins = GetSideBetsInfo(SideBets{PerfectPairs: true}, SideBetsFromUser{PerfectPairs: 5}, cards("10s,13h"), cards("7c"))
	a.Equal(25.0, wins.PerfectPairs, "ten and king pair on value")

	wins = GetSideBetsInfo(both, stakes, cards("10h,5c"), cards("2d"))
	a.Equal(SideBetWins{}, wins)

	wins = GetSideBetsInfo(both, SideBetsFromUser{}, cards("7s,7h"), cards("7c"))
	a.Equal(SideBetWins{}, wins)
}

func TestGetInsuranceResult(t *testing.T) {
	a := assert.New(t)

	a.Equal(InsuranceResult{Risk: 5, Win: 10}, GetInsuranceResult(5, cards("14c,13d")))
	a.Equal(InsuranceResult{Risk: 5, Win: 0}, GetInsuranceResult(5, cards("14c,9d")))
	a.Equal(InsuranceResult{Risk: 5, Win: 0}, GetInsuranceResult(5, cards("13c,14d")), "up card must be the ace")
	a.Equal(InsuranceResult{}, GetInsuranceResult(0, cards("14c,13d")))
	a.Equal(InsuranceResult{Risk: 5, Win: 0}, GetInsuranceResult(5, nil))
}

func TestSideBetsFromUser(t *testing.T) {
	a := assert.New(t)

	s := SideBetsFromUser{LuckyLucky: 2, PerfectPairs: 3}
	a.Equal(5.0, s.Total())
	a.Equal(SideBetsFromUser{PerfectPairs: 3}, s.Accepted(SideBets{PerfectPairs: true}))
	a.Equal(SideBetsFromUser{}, s.Accepted(SideBets{}))
	a.Equal(s, s.Accepted(SideBets{LuckyLucky: true, PerfectPairs: true}))
}

func TestSideBetWins_Clone(t *testing.T) {
	a := assert.New(t)

	wins := SideBetWins{Insurance: &InsuranceResult{Risk: 1, Win: 2}, LuckyLucky: 3}
	clone := wins.Clone()
	clone.Insurance.Win = 0

	a.Equal(2.0, wins.Insurance.Win)
	a.Equal(5.0, wins.Total())
	a.Equal(3.0, clone.Total())
	a.Nil(SideBetWins{}.Clone().Insurance)
}

func TestComposition(t *testing.T) {
	assert.Equal(t, "777", Composition(cards("7s,7h,7c")))
	assert.Equal(t, "678", Composition(cards("8h,6c,7d")))
	assert.Equal(t, "1510", Composition(cards("14s,13h,5c")))
	assert.Equal(t, "", Composition(nil))
}

func TestParsePaytable(t *testing.T) {
	a := assert.New(t)

	p, err := ParsePaytable([]byte(`
compositions:
  "123":
    suited: 9
    unsuited: 4
totals:
  6:
    suited: 1
    unsuited: 1
`))
	a.NoError(err)
	a.Equal(9.0, p.Multiplier(cards("3s,1s,2s")))
	a.Equal(4.0, p.Multiplier(cards("3s,1s,2h")))
	a.Equal(1.0, p.Multiplier(cards("4s,2s")))
	a.Equal(0.0, p.Multiplier(cards("10s,2s")))

	_, err = ParsePaytable([]byte("jackpot: 1000\n"))
	a.Error(err)
	a.Contains(err.Error(), "could not parse paytable")

	a.NotNil(luckyLuckyPaytable)
	a.Len(luckyLuckyPaytable.Compositions, 2)
	a.Len(luckyLuckyPaytable.Totals, 3)
}
