package deck

import (
	"errors"
	"fmt"
	"strings"
)

// HandLimit is the most cards a hand may hold
const HandLimit = 10

// ErrHandFull is returned when a card is added to a full hand
var ErrHandFull = errors.New("hand is full")

// ErrInvalidCardIndex is returned when a hand slot does not exist
var ErrInvalidCardIndex = errors.New("invalid card index")

// ErrCardNotInHand is returned when a specific card is not in the hand
var ErrCardNotInHand = errors.New("card is not in hand")

// Hand is an ordered, capacity-bound collection of cards
// Indexes are positional and shift when a card is removed
type Hand struct {
	cards []*Card
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{cards: make([]*Card, 0, HandLimit)}
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Space returns how many more cards fit
func (h *Hand) Space() int {
	return HandLimit - len(h.cards)
}

// Add adds the card to the end of the hand
func (h *Hand) Add(card *Card) error {
	if h.Space() <= 0 {
		return ErrHandFull
	}

	h.cards = append(h.cards, card)
	return nil
}

// At returns the card at index i
func (h *Hand) At(i int) (*Card, error) {
	if i < 0 || i >= len(h.cards) {
		return nil, ErrInvalidCardIndex
	}

	return h.cards[i], nil
}

// RemoveAt removes and returns the card at index i
func (h *Hand) RemoveAt(i int) (*Card, error) {
	card, err := h.At(i)
	if err != nil {
		return nil, err
	}

	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return card, nil
}

// Take removes the specified card instance
func (h *Hand) Take(card *Card) error {
	for i, c := range h.cards {
		if c == card {
			_, err := h.RemoveAt(i)
			return err
		}
	}

	return ErrCardNotInHand
}

// Cards returns a shallow clone of the cards
func (h *Hand) Cards() []*Card {
	return append([]*Card{}, h.cards...)
}

// String lists the hand with slot numbers
func (h *Hand) String() string {
	var sb strings.Builder
	for i, card := range h.cards {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i, card))
	}

	return sb.String()
}
