package dragonante

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"dragonante-server/internal/rng"
	"dragonante-server/pkg/deck"
	"dragonante-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Game is a game of Dragon Ante
type Game struct {
	options Options
	logger  logrus.FieldLogger
	rng     rng.Generator

	// join state, guarded by lock until the game starts
	lock      sync.Mutex
	players   []*Player
	started   bool
	ready     chan struct{}
	readyOnce sync.Once

	deck *deck.Deck
	// totalCards is the number of cards in play, fixed at Start()
	totalCards int

	current atomic.Pointer[Gambit]

	historyLock sync.RWMutex
	history     []*GambitRecord
}

// NewGame returns a new game. Players join with AddPlayer()
func NewGame(options Options, logger logrus.FieldLogger) (*Game, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	gen := rng.New(options.Seed)
	d := deck.New(deck.Catalog(), gen)
	d.Shuffle()

	return &Game{
		options: options,
		logger:  logger,
		rng:     gen,
		players: make([]*Player, 0, options.MaxPlayers),
		ready:   make(chan struct{}),
		deck:    d,
		history: make([]*GambitRecord, 0),
	}, nil
}

// Name returns "dragon-ante"
func (g *Game) Name() string {
	return "dragon-ante"
}

// AddPlayer seats a new player
// Once the minimum number of players is seated, the Ready() channel is closed
func (g *Game) AddPlayer(name string, io playable.Seat) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	g.lock.Lock()
	defer g.lock.Unlock()

	if g.started {
		return nil, ErrGameStarted
	}

	if len(g.players) >= g.options.MaxPlayers {
		return nil, ErrTableFull
	}

	for _, p := range g.players {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("the name %s is taken", name)
		}
	}

	player := newPlayer(name, len(g.players), io)
	g.players = append(g.players, player)
	g.logger.WithField("player", name).WithField("seat", player.seat).Info("player joined")

	if len(g.players) >= g.options.MinPlayers {
		g.readyOnce.Do(func() {
			close(g.ready)
		})
	}

	return player, nil
}

// Ready is closed once enough players are seated to start
func (g *Game) Ready() <-chan struct{} {
	return g.ready
}

// Players returns the seated players in seat order
func (g *Game) Players() []*Player {
	g.lock.Lock()
	defer g.lock.Unlock()

	return append([]*Player{}, g.players...)
}

// IsFull returns true if no more players can join
func (g *Game) IsFull() bool {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.started || len(g.players) >= g.options.MaxPlayers
}

// Started returns true once Start() succeeded
func (g *Game) Started() bool {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.started
}

// Start closes the table, gives everyone their starting hoard and deals the opening hands
func (g *Game) Start() error {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.started {
		return ErrGameStarted
	}

	if n := len(g.players); n < g.options.MinPlayers || n > g.options.MaxPlayers {
		return PlayerCountError{Min: g.options.MinPlayers, Max: g.options.MaxPlayers, Got: n}
	}

	g.started = true
	g.totalCards = g.deck.Total()

	g.broadcast("Game begun!")
	for _, p := range g.players {
		p.deposit(g.options.StartingHoard)
		g.drawCards(p, g.options.InitialHand)
	}

	return nil
}

// Run starts the game and plays gambits until a player's hoard runs out or ctx is done
func (g *Game) Run(ctx context.Context) error {
	if err := g.Start(); err != nil {
		return err
	}

	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := g.PlayGambit(ctx); err != nil {
			g.broadcast("The gambit was aborted: %v", err)
			return err
		}
	}

	g.broadcastStandings()
	return nil
}

// IsOver returns true if any player's hoard is empty
func (g *Game) IsOver() bool {
	for _, p := range g.players {
		if p.Hoard() <= 0 {
			return true
		}
	}

	return false
}

// Pot returns the stakes of the gambit in progress, or 0 between gambits
func (g *Game) Pot() int {
	if gambit := g.current.Load(); gambit != nil {
		return gambit.pot.Balance()
	}

	return 0
}

// History returns the completed gambits
func (g *Game) History() []*GambitRecord {
	g.historyLock.RLock()
	defer g.historyLock.RUnlock()

	return append([]*GambitRecord{}, g.history...)
}

// Standings returns the players ordered by hoard, richest first
func (g *Game) Standings() []*Player {
	players := g.Players()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Hoard() > players[j].Hoard()
	})

	return players
}

// Describe answers an informational query from a player
// The second return value is false when the input should be treated as game input
func (g *Game) Describe(p *Player, query string) (string, bool) {
	if strings.EqualFold(strings.TrimSpace(query), "pot") {
		return fmt.Sprintf("Stakes: %d", g.Pot()), true
	}

	return p.Describe(query)
}

func (g *Game) broadcastStandings() {
	var sb strings.Builder
	sb.WriteString("Game over! Final hoards:")
	for _, p := range g.Standings() {
		sb.WriteString(fmt.Sprintf("\n %s: %d", p.Name, p.Hoard()))
		if debt := p.Debt(); debt > 0 {
			sb.WriteString(fmt.Sprintf(" (debt %d)", debt))
		}
	}

	g.broadcast("%s", sb.String())
}

// broadcast sends the message to every seated player and records it in the gambit log
func (g *Game) broadcast(format string, a ...interface{}) {
	msg := playable.SimpleLogMessage("", format, a...)
	if gambit := g.current.Load(); gambit != nil {
		gambit.log = append(gambit.log, msg)
	}

	g.logger.Debug(msg.Message)
	for _, p := range g.players {
		p.io.Enqueue(msg.Message)
	}
}

// drawCards draws up to amount for the player, capped by hand space
func (g *Game) drawCards(p *Player, amount int) int {
	if space := p.HandSpace(); amount > space {
		amount = space
	}

	cards := g.deck.Draw(amount)
	g.deck.Discard(p.addToHand(cards...)...)
	if len(cards) > 0 {
		p.Send("You drew: %s", deck.CardsToString(cards))
	}

	g.broadcast("%s drew %d card(s). (Hand size: %d)", p.Name, len(cards), p.HandSize())
	return len(cards)
}

// ensureCard draws a card for a player with an empty hand
// Returns false if the player still has nothing to play
func (g *Game) ensureCard(p *Player) bool {
	if p.HandSize() > 0 {
		return true
	}

	return g.drawCards(p, 1) > 0
}

// checkInvariants verifies card conservation and that no balance went negative
func (g *Game) checkInvariants(gambit *Gambit) error {
	count := g.deck.Total()
	for _, p := range g.players {
		count += p.cardCount()
		if p.Hoard() < 0 {
			return invariantError("%s has a negative hoard", p.Name)
		}
	}

	if gambit != nil {
		count += len(gambit.ante)
		if gambit.pot.Balance() < 0 {
			return invariantError("the pot is negative")
		}
	}

	if count != g.totalCards {
		return invariantError("expected %d cards in play, counted %d", g.totalCards, count)
	}

	return nil
}
