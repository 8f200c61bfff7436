package dragonante

import (
	"fmt"
	"strings"
	"sync"

	"dragonante-server/pkg/deck"
	"dragonante-server/pkg/playable"
)

// Player is a seated participant
// The engine goroutine is the only writer. The lock lets the connection worker read a consistent
// view of the hand, flight, and hoard while the engine runs.
type Player struct {
	Name string
	seat int
	io   playable.Seat

	lock   sync.RWMutex
	hand   *deck.Hand
	flight *deck.Flight
	hoard  int
	debt   int
}

func newPlayer(name string, seat int, io playable.Seat) *Player {
	return &Player{
		Name: name,
		seat: seat,
		io:   io,
		hand: deck.NewHand(),
	}
}

func (p *Player) String() string {
	return p.Name
}

// Seat returns the player's seat index
func (p *Player) Seat() int {
	return p.seat
}

// Hoard returns the player's gold
func (p *Player) Hoard() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.hoard
}

// Debt returns the gold the player owed but could not pay
func (p *Player) Debt() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.debt
}

// Hand returns a copy of the cards in hand
func (p *Player) Hand() []*deck.Card {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.hand.Cards()
}

// HandSize returns the number of cards in hand
func (p *Player) HandSize() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.hand.Len()
}

// HandSpace returns how many more cards the hand can hold
func (p *Player) HandSpace() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.hand.Space()
}

// Flight returns a copy of the player's flight, or nil outside of a gambit
func (p *Player) Flight() []*deck.Card {
	p.lock.RLock()
	defer p.lock.RUnlock()

	if p.flight == nil {
		return nil
	}

	return p.flight.Cards()
}

// FlightStrength is the total strength of the flight
func (p *Player) FlightStrength() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.flight.Strength()
}

// Send queues a message for the player only
func (p *Player) Send(format string, a ...interface{}) {
	p.io.Enqueue(fmt.Sprintf(format, a...))
}

// Describe answers an informational query
// The second return value is false if the query is not recognized
func (p *Player) Describe(query string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(query)) {
	case "hand":
		p.lock.RLock()
		defer p.lock.RUnlock()
		return fmt.Sprintf("Hand (%d):\n%s", p.hand.Len(), p.hand), true
	case "flight":
		p.lock.RLock()
		defer p.lock.RUnlock()
		if p.flight == nil {
			return "You have no flight.", true
		}
		return fmt.Sprintf("Flight (strength %d): %s", p.flight.Strength(), p.flight), true
	case "hoard", "gold":
		p.lock.RLock()
		defer p.lock.RUnlock()
		if p.debt > 0 {
			return fmt.Sprintf("Hoard: %d (debt: %d)", p.hoard, p.debt), true
		}
		return fmt.Sprintf("Hoard: %d", p.hoard), true
	}

	return "", false
}

// withdraw pays up to amount, recording any shortfall as debt
func (p *Player) withdraw(amount int) int {
	p.lock.Lock()
	defer p.lock.Unlock()

	if amount <= p.hoard {
		p.hoard -= amount
		return amount
	}

	paid := p.hoard
	p.debt += amount - paid
	p.hoard = 0
	return paid
}

func (p *Player) deposit(amount int) {
	p.lock.Lock()
	p.hoard += amount
	p.lock.Unlock()
}

func (p *Player) balance() int {
	return p.Hoard()
}

// addToHand adds as many cards as fit and returns the ones that didn't
func (p *Player) addToHand(cards ...*deck.Card) []*deck.Card {
	p.lock.Lock()
	defer p.lock.Unlock()

	overflow := make([]*deck.Card, 0)
	for _, card := range cards {
		if err := p.hand.Add(card); err != nil {
			overflow = append(overflow, card)
		}
	}

	return overflow
}

func (p *Player) removeFromHand(i int) (*deck.Card, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.hand.RemoveAt(i)
}

func (p *Player) startFlight() {
	p.lock.Lock()
	p.flight = deck.NewFlight()
	p.lock.Unlock()
}

// endFlight clears the flight and returns its cards
func (p *Player) endFlight() []*deck.Card {
	p.lock.Lock()
	defer p.lock.Unlock()

	cards := p.flight.Cards()
	p.flight = nil
	return cards
}

func (p *Player) addToFlight(card *deck.Card) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.flight == nil {
		return ErrNoFlight
	}

	p.flight.Add(card)
	return nil
}

func (p *Player) removeFromFlight(card *deck.Card) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.flight == nil {
		return ErrNoFlight
	}

	return p.flight.Remove(card)
}

func (p *Player) replaceInFlight(old, replacement *deck.Card) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.flight == nil {
		return ErrNoFlight
	}

	return p.flight.Replace(old, replacement)
}

// cardCount is the number of cards the player holds in hand and flight
func (p *Player) cardCount() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.hand.Len() + p.flight.Len()
}
