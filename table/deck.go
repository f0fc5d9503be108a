package table

import (
	"math/rand"
	"time"
)

// Deck is the ordered pile of undealt cards. The last element is the top.
type Deck struct {
	factory *CardFactory
	rng     *rand.Rand
	cards   []*Card
}

// NewDeck creates an empty deck. A nil rng falls back to a time-seeded source.
func NewDeck(factory *CardFactory, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Deck{factory: factory, rng: rng}
}

// Populate replaces the contents with one card per front index.
func (d *Deck) Populate() error {
	cards := make([]*Card, 0, DeckSize)
	for i := 0; i < DeckSize; i++ {
		card, err := d.factory.Create(i)
		if err != nil {
			return err
		}
		cards = append(cards, card)
	}
	d.cards = cards
	return nil
}

// Shuffle reorders the deck in place with Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.cards)
	if n == 0 {
		return nil, ErrEmptyDeck
	}
	card := d.cards[n-1]
	d.cards[n-1] = nil
	d.cards = d.cards[:n-1]
	return card, nil
}

func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the deck, bottom first.
func (d *Deck) Cards() []*Card {
	out := make([]*Card, len(d.cards))
	copy(out, d.cards)
	return out
}
