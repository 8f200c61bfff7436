package dragonante

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"dragonante-server/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var cbg = context.Background()

// scriptedSeat answers prompts from a list of inputs, then with fallback
type scriptedSeat struct {
	lock     sync.Mutex
	inputs   []string
	fallback string
	messages []string
}

func newScriptedSeat(inputs ...string) *scriptedSeat {
	return &scriptedSeat{inputs: inputs, fallback: "0"}
}

func (s *scriptedSeat) Enqueue(msg string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *scriptedSeat) AwaitInput(ctx context.Context) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.inputs) > 0 {
		token := s.inputs[0]
		s.inputs = s.inputs[1:]
		return token, nil
	}

	if s.fallback == "" {
		return "", errors.New("script exhausted")
	}

	return s.fallback, nil
}

func (s *scriptedSeat) said(substr string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, msg := range s.messages {
		if strings.Contains(msg, substr) {
			return true
		}
	}

	return false
}

func (s *scriptedSeat) count(substr string) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	n := 0
	for _, msg := range s.messages {
		if strings.Contains(msg, substr) {
			n++
		}
	}

	return n
}

// silentSeat never answers
type silentSeat struct {
	scriptedSeat
}

func (s *silentSeat) AwaitInput(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// cardFactory hands out cards with unique IDs
type cardFactory struct {
	next int
}

func (f *cardFactory) card(v deck.Variant, strength int) *deck.Card {
	f.next++
	return deck.NewCard(f.next, v, strength)
}

// setupGame seats one player per hand and stacks the deck so Start() deals those hands
// Any extra cards are left in the draw pile in order
func setupGame(t *testing.T, opts Options, hands [][]*deck.Card, rest []*deck.Card) (*Game, []*Player, []*scriptedSeat) {
	t.Helper()

	for _, hand := range hands {
		require.Len(t, hand, opts.InitialHand, "every hand must have InitialHand cards")
	}

	g, err := NewGame(opts, testLogger())
	require.NoError(t, err)

	stack := make([]*deck.Card, 0)
	for _, hand := range hands {
		stack = append(stack, hand...)
	}
	stack = append(stack, rest...)
	g.deck = deck.New(stack, rand.New(rand.NewSource(1))) // nolint:gosec

	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	players := make([]*Player, len(hands))
	seats := make([]*scriptedSeat, len(hands))
	for i := range hands {
		seats[i] = newScriptedSeat()
		players[i], err = g.AddPlayer(names[i], seats[i])
		require.NoError(t, err)
	}

	require.NoError(t, g.Start())
	return g, players, seats
}

// startGambit puts the game mid-gambit: flights started and the pot holding stakes
func startGambit(g *Game, stakes int) *Gambit {
	gambit := newGambit()
	gambit.pot.deposit(stakes)
	gambit.leader = g.players[0]
	for _, p := range g.players {
		p.startFlight()
	}

	g.current.Store(gambit)
	return gambit
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.InitialHand = 4
	return opts
}

func fillerCards(f *cardFactory, n int) []*deck.Card {
	cards := make([]*deck.Card, n)
	for i := range cards {
		cards[i] = f.card(deck.White, 1)
	}

	return cards
}

// powerTable seats three players and starts a gambit holding stakes
// Each player's flight holds the given cards. Hands are padded with white 1s and ten more wait in the deck
func powerTable(t *testing.T, flights [][]*deck.Card, stakes int) (*Game, *Gambit, []*Player, []*scriptedSeat) {
	t.Helper()

	f := &cardFactory{next: 1000}
	opts := testOptions()
	hands := make([][]*deck.Card, len(flights))
	for i, flight := range flights {
		require.LessOrEqual(t, len(flight), opts.InitialHand)
		hands[i] = append(append([]*deck.Card{}, flight...), fillerCards(f, opts.InitialHand-len(flight))...)
	}

	g, players, seats := setupGame(t, opts, hands, fillerCards(f, 10))
	gambit := startGambit(g, stakes)
	for i, flight := range flights {
		for range flight {
			card, err := players[i].removeFromHand(0)
			require.NoError(t, err)
			require.NoError(t, players[i].addToFlight(card))
		}
	}

	return g, gambit, players, seats
}

func trigger(g *Game, gambit *Gambit, p *Player, card *deck.Card) error {
	return g.newActions(cbg, gambit, p).Trigger(card)
}
