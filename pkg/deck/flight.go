package deck

import "errors"

// ErrCardNotInFlight is returned when a card is not part of the flight
var ErrCardNotInFlight = errors.New("card is not in flight")

// Flight is the cards a player has committed during a gambit
type Flight struct {
	cards []*Card
}

// NewFlight returns an empty flight
func NewFlight() *Flight {
	return &Flight{cards: make([]*Card, 0, 3)}
}

// Add commits a card to the flight
func (f *Flight) Add(card *Card) {
	f.cards = append(f.cards, card)
}

// Remove takes the card out of the flight
func (f *Flight) Remove(card *Card) error {
	for i, c := range f.cards {
		if c == card {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			return nil
		}
	}

	return ErrCardNotInFlight
}

// Replace swaps old for replacement, keeping its position
func (f *Flight) Replace(old, replacement *Card) error {
	for i, c := range f.cards {
		if c == old {
			f.cards[i] = replacement
			return nil
		}
	}

	return ErrCardNotInFlight
}

// Len returns the number of cards in the flight
func (f *Flight) Len() int {
	if f == nil {
		return 0
	}

	return len(f.cards)
}

// Strength is the sum of the card strengths
func (f *Flight) Strength() int {
	if f == nil {
		return 0
	}

	return TotalStrength(f.cards)
}

// CountWithTag counts the cards carrying every tag in required
func (f *Flight) CountWithTag(required Tag) int {
	if f == nil {
		return 0
	}

	return CountWithTag(f.cards, required)
}

// HasTag returns true if any card carries every tag in required
func (f *Flight) HasTag(required Tag) bool {
	return f.CountWithTag(required) > 0
}

// Cards returns a shallow clone of the cards
func (f *Flight) Cards() []*Card {
	if f == nil {
		return []*Card{}
	}

	return append([]*Card{}, f.cards...)
}

func (f *Flight) String() string {
	return CardsToString(f.Cards())
}
