package deck

// Hand represents an ordered collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasAce returns true if any card in the hand is an ace
func (h Hand) HasAce() bool {
	for _, c := range h {
		if c.IsAce() {
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand and false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

// LastCard returns the last card in the hand and false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}

	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Append returns a new hand with the cards added, leaving h untouched
func (h Hand) Append(cards ...Card) Hand {
	h2 := make(Hand, 0, len(h)+len(cards))
	h2 = append(h2, h...)

	return append(h2, cards...)
}
