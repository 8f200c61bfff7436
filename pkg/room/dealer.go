package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dragonante-server/pkg/playable"
	"dragonante-server/pkg/playable/dragonante"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Dealer is responsible for running a single game
type Dealer struct {
	ID string

	pitBoss    *PitBoss
	game       *dragonante.Game
	logger     logrus.FieldLogger
	startDelay time.Duration

	lock        sync.RWMutex
	clients     map[*Client]bool
	logMessages []*playable.LogMessage
	err         error

	joined chan struct{}
	done   chan struct{}
}

// NewDealer creates a new dealer object
// This is called from the pit boss run loop, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, options dragonante.Options, startDelay time.Duration, logger logrus.FieldLogger) (*Dealer, error) {
	id := uuid.New().String()
	logger = logger.WithField("dealer", id)

	game, err := dragonante.NewGame(options, logger)
	if err != nil {
		return nil, err
	}

	return &Dealer{
		ID:          id,
		pitBoss:     pitBoss,
		game:        game,
		logger:      logger,
		startDelay:  startDelay,
		clients:     make(map[*Client]bool),
		logMessages: make([]*playable.LogMessage, 0),
		joined:      make(chan struct{}, 1),
		done:        make(chan struct{}),
	}, nil
}

// Game returns the game this dealer runs
func (d *Dealer) Game() *dragonante.Game {
	return d.game
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// Join seats the client at the table
// msgCtx is echoed back on the OK response
func (d *Dealer) Join(client *Client, msgCtx string) error {
	player, err := d.game.AddPlayer(client.Name(), client.seat)
	if err != nil {
		return err
	}

	client.setSeat(d, player)

	d.lock.Lock()
	d.clients[client] = true
	backlog := append([]*playable.LogMessage{}, d.logMessages...)
	d.lock.Unlock()

	client.Send(playable.OK(msgCtx))
	if len(backlog) > 0 {
		client.Send(&playable.Response{Key: "log", Data: backlog})
	}

	d.announce("%s joined the table. (%d seated)", player.Name, len(d.game.Players()))
	d.sendClientState()

	select {
	case d.joined <- struct{}{}:
	default:
	}

	return nil
}

// RemoveClient removes a client
// The player stays seated; the game answers for them until the end
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	d.announce("%s left the table.", client.Name())
	if nClients > 0 {
		d.sendClientState()
		return false
	}

	return true
}

// StartShift starts the run loop
func (d *Dealer) StartShift(ctx context.Context) {
	go d.runLoop(ctx)
}

// Done is closed once the game has finished
func (d *Dealer) Done() <-chan struct{} {
	return d.done
}

// Err returns the error the game ended with, if any
func (d *Dealer) Err() error {
	d.lock.RLock()
	defer d.lock.RUnlock()

	return d.err
}

func (d *Dealer) runLoop(ctx context.Context) {
	d.logger.Debug("creating dealer run loop")

	var err error
	defer func() {
		d.lock.Lock()
		d.err = err
		d.lock.Unlock()

		close(d.done)
		if d.pitBoss != nil {
			d.pitBoss.dealerFinished(d)
		}

		d.logger.WithError(err).Debug("terminating dealer run loop")
	}()

	if err = d.waitForPlayers(ctx); err != nil {
		return
	}

	d.announce("The game is starting with %d players.", len(d.game.Players()))
	if err = d.game.Run(ctx); err != nil {
		d.logger.WithError(err).Error("game ended early")
		d.announce("The game ended early: %v", err)
	}

	d.sendGameEnded()
}

// announce sends a table message to every connected client and keeps it for late joiners
func (d *Dealer) announce(format string, a ...interface{}) {
	msg := playable.SimpleLogMessage("", format, a...)
	d.addLogMessages([]*playable.LogMessage{msg})

	for _, client := range d.Clients() {
		client.Send(playable.MessageResponse(msg.Message))
	}
}

func (d *Dealer) sendGameEnded() {
	standings := make([]*seatState, 0)
	for _, p := range d.game.Standings() {
		standings = append(standings, newSeatState(p, false))
	}

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  "gameEnded",
			Data: standings,
		})
	}
}

func (d *Dealer) sendClientState() {
	connected := make(map[*dragonante.Player]bool)
	for _, client := range d.Clients() {
		if _, player := client.seated(); player != nil {
			connected[player] = true
		}
	}

	seats := make([]*seatState, 0)
	for _, p := range d.game.Players() {
		seats = append(seats, newSeatState(p, connected[p]))
	}

	for _, client := range d.Clients() {
		client.Send(&playable.Response{
			Key:  "clientState",
			Data: seats,
		})
	}
}

func (d *Dealer) String() string {
	return fmt.Sprintf("dealer %s", d.ID)
}
