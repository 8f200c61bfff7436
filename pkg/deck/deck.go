package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"strconv"

	"dragonante-server/internal/rng"
)

// Deck is the draw pile plus the discard pile
type Deck struct {
	Cards    []*Card `json:"cards"`
	discards []*Card
	rng      rng.Generator
}

// New returns a deck holding cards in the order given
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(cards []*Card, gen rng.Generator) *Deck {
	c := make([]*Card, len(cards))
	copy(c, cards)

	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Deck{
		Cards:    c,
		discards: make([]*Card, 0, len(cards)),
		rng:      gen,
	}
}

// Shuffle will shuffle the draw pile in place
func (d *Deck) Shuffle() {
	shuffle(d.Cards, d.rng)
}

func shuffle(cards []*Card, gen rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// reshuffle folds the discard pile behind the remaining draw pile and shuffles everything
func (d *Deck) reshuffle() {
	d.Cards = append(d.Cards, d.discards...)
	d.discards = d.discards[:0]
	d.Shuffle()
}

// Draw removes up to n cards from the front of the draw pile
// When the draw pile runs out, the discards are shuffled back in. If there are fewer than
// n cards between the two piles, everything available is returned.
func (d *Deck) Draw(n int) []*Card {
	if n <= 0 {
		return []*Card{}
	}

	drawn := make([]*Card, 0, n)
	for len(drawn) < n {
		if len(d.Cards) == 0 {
			if len(d.discards) == 0 {
				break
			}

			d.reshuffle()
		}

		take := n - len(drawn)
		if take > len(d.Cards) {
			take = len(d.Cards)
		}

		drawn = append(drawn, d.Cards[:take]...)
		d.Cards = d.Cards[take:]
	}

	return drawn
}

// Discard appends the cards to the discard pile
func (d *Deck) Discard(cards ...*Card) {
	for _, card := range cards {
		if card != nil {
			d.discards = append(d.discards, card)
		}
	}
}

// LastDiscard returns the most recently discarded card, or nil
func (d *Deck) LastDiscard() *Card {
	if len(d.discards) == 0 {
		return nil
	}

	return d.discards[len(d.discards)-1]
}

// CardsLeft returns the number of cards left in the draw pile
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// DiscardsLeft returns the size of the discard pile
func (d *Deck) DiscardsLeft() int {
	return len(d.discards)
}

// Total returns the number of cards across both piles
func (d *Deck) Total() int {
	return len(d.Cards) + len(d.discards)
}

// HashCode returns a SHA1 hash code of the draw pile order
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(strconv.Itoa(card.ID)))
		_, _ = hash.Write([]byte{','})
	}

	return hex.EncodeToString(hash.Sum(nil))
}
