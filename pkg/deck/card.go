package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is every suit in the order a fresh deck is built
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
// Cards are values and are never modified once dealt.
type Card struct {
	Rank int  `json:"rank" yaml:"rank"`
	Suit Suit `json:"suit" yaml:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace, LowAce:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// IsAce returns true for an ace, whether it was built high or low
func (c Card) IsAce() bool {
	return c.Rank == Ace || c.Rank == LowAce
}

// Value returns the blackjack value of the card
// Aces are 1, face cards are 10
func (c Card) Value() int {
	switch {
	case c.IsAce():
		return 1
	case c.Rank >= 10:
		return 10
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// ParseCard is CardFromString for untrusted input; it returns an error instead of panicking
func ParseCard(s string) (Card, error) {
	if !cardRx.MatchString(strings.TrimSpace(s)) {
		return Card{}, fmt.Errorf("could not parse card: %s", s)
	}

	return CardFromString(s), nil
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
