package engine

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"blackjack-engine/pkg/deck"

	"gopkg.in/yaml.v2"
)

//go:embed paytables/lucky_lucky.yaml
var luckyLuckyYAML []byte

// payout is a multiplier for suited and unsuited cards
type payout struct {
	Suited   float64 `yaml:"suited"`
	Unsuited float64 `yaml:"unsuited"`
}

func (p payout) multiplier(suited bool) float64 {
	if suited {
		return p.Suited
	}

	return p.Unsuited
}

// Paytable maps three card compositions and totals to multipliers
type Paytable struct {
	Compositions map[string]payout `yaml:"compositions"`
	Totals       map[int]payout    `yaml:"totals"`
}

// ParsePaytable decodes a paytable from YAML
func ParsePaytable(data []byte) (*Paytable, error) {
	var p Paytable
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("could not parse paytable: %w", err)
	}

	return &p, nil
}

func mustParsePaytable(data []byte) *Paytable {
	p, err := ParsePaytable(data)
	if err != nil {
		panic(err)
	}

	return p
}

var luckyLuckyPaytable = mustParsePaytable(luckyLuckyYAML)

// Multiplier returns the multiplier for the cards
// An exact composition wins, otherwise the best valid total is looked up. No match pays 0.
func (p *Paytable) Multiplier(cards deck.Hand) float64 {
	suited := IsSuited(cards)
	if m, ok := p.Compositions[Composition(cards)]; ok {
		return m.multiplier(suited)
	}

	if m, ok := p.Totals[HigherValidValue(Calculate(cards))]; ok {
		return m.multiplier(suited)
	}

	return 0
}

// Composition returns the card values in ascending order joined together, e.g. "678"
func Composition(cards deck.Hand) string {
	values := make([]int, len(cards))
	for i, card := range cards {
		values[i] = card.Value()
	}

	sort.Ints(values)

	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
