package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"blackjack-engine/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a shoe of one or more decks
// The top of the deck is the end of Cards; Draw pops from there.
type Deck struct {
	Cards []Card `json:"cards"`
	decks int
}

// New returns a shoe made of n standard 52-card decks.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(n int) *Deck {
	if n < 1 {
		n = 1
	}

	d := &Deck{decks: n}
	d.buildDeck()
	return d
}

// NewStacked returns a deck that deals the given cards in order
// This is intended for tests and replays where the draw order is known.
func NewStacked(cards Hand) *Deck {
	stacked := make([]Card, len(cards))
	for i, card := range cards {
		stacked[len(cards)-1-i] = card
	}

	return &Deck{Cards: stacked, decks: 0}
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52*d.decks)
	for i := 0; i < d.decks; i++ {
		for _, suit := range Suits {
			for rank := 2; rank <= 14; rank++ {
				cards = append(cards, Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the shoe and shuffles it with the generator
// A stacked deck is shuffled in place.
func (d *Deck) Shuffle(gen rng.Generator) {
	if d.decks > 0 {
		d.buildDeck()
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Decks returns the number of decks the shoe was built from (0 for a stacked deck)
func (d *Deck) Decks() int {
	return d.decks
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the top card
// If there are no more cards, an ErrEndOfDeck is returned along with an empty card.
func (d *Deck) Draw() (Card, error) {
	n := len(d.Cards)
	if n <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// Peek returns the top card without drawing it
func (d *Deck) Peek() (Card, bool) {
	n := len(d.Cards)
	if n == 0 {
		return Card{}, false
	}

	return d.Cards[n-1], true
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a copy of the deck that can be drawn from independently
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}

	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)

	return &Deck{Cards: cards, decks: d.decks}
}
