package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"dragonante-server/pkg/playable/dragonante"

	"github.com/sirupsen/logrus"
)

type joinRequest struct {
	client *Client
	msgCtx string
}

// TableSummary describes a table for the lobby listing
type TableSummary struct {
	ID      string   `json:"id"`
	Players []string `json:"players"`
	Started bool     `json:"started"`
	Pot     int      `json:"pot"`
	Gambits int      `json:"gambits"`
}

// PitBoss is responsible for dispatching players to games
type PitBoss struct {
	options    dragonante.Options
	startDelay time.Duration
	logger     logrus.FieldLogger

	// dealers is only modified from the run loop
	lock    sync.RWMutex
	dealers []*Dealer

	connect    chan joinRequest
	disconnect chan *Client
	finished   chan *Dealer
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(options dragonante.Options, startDelay time.Duration, logger logrus.FieldLogger) *PitBoss {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &PitBoss{
		options:    options,
		startDelay: startDelay,
		logger:     logger,
		dealers:    make([]*Dealer, 0),
		connect:    make(chan joinRequest, 256),
		disconnect: make(chan *Client, 256),
		finished:   make(chan *Dealer, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift(ctx context.Context) {
	go p.runLoop(ctx)
}

func (p *PitBoss) runLoop(ctx context.Context) {
	for {
		select {
		case req := <-p.connect:
			p.logger.WithField("player", req.client.String()).Debug("client joining")
			p.seat(ctx, req)
		case client := <-p.disconnect:
			p.logger.WithField("player", client.String()).Debug("client disconnected")
			client.seat.Close()

			if dealer, _ := client.seated(); dealer != nil {
				dealer.RemoveClient(client)
			}
		case dealer := <-p.finished:
			p.logger.WithField("dealer", dealer.ID).Debug("dealer finished")
			p.removeDealer(dealer)
		case <-ctx.Done():
			p.logger.Debug("terminating pit boss run loop")
			return
		}
	}
}

// seat puts the client at the first table that hasn't started and has room, opening a new one if needed
// NOTE: must only be called from the run loop
func (p *PitBoss) seat(ctx context.Context, req joinRequest) {
	for _, dealer := range p.Dealers() {
		if dealer.game.IsFull() {
			continue
		}

		err := dealer.Join(req.client, req.msgCtx)
		if err == nil {
			return
		}

		if errors.Is(err, dragonante.ErrGameStarted) || errors.Is(err, dragonante.ErrTableFull) {
			continue
		}

		req.client.rejectJoin(req.msgCtx, err)
		return
	}

	dealer, err := NewDealer(p, p.options, p.startDelay, p.logger)
	if err != nil {
		p.logger.WithError(err).Error("could not create dealer")
		req.client.rejectJoin(req.msgCtx, err)
		return
	}

	if err := dealer.Join(req.client, req.msgCtx); err != nil {
		req.client.rejectJoin(req.msgCtx, err)
		return
	}

	p.lock.Lock()
	p.dealers = append(p.dealers, dealer)
	p.lock.Unlock()

	dealer.StartShift(ctx)
}

func (p *PitBoss) removeDealer(dealer *Dealer) {
	p.lock.Lock()
	defer p.lock.Unlock()

	for i, d := range p.dealers {
		if d == dealer {
			p.dealers = append(p.dealers[:i], p.dealers[i+1:]...)
			return
		}
	}
}

// Dealers returns the active dealers, oldest first
func (p *PitBoss) Dealers() []*Dealer {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return append([]*Dealer{}, p.dealers...)
}

// Tables summarizes the active tables
func (p *PitBoss) Tables() []*TableSummary {
	dealers := p.Dealers()
	tables := make([]*TableSummary, len(dealers))
	for i, d := range dealers {
		players := d.game.Players()
		names := make([]string, len(players))
		for j, player := range players {
			names[j] = player.Name
		}

		tables[i] = &TableSummary{
			ID:      d.ID,
			Players: names,
			Started: d.game.Started(),
			Pot:     d.game.Pot(),
			Gambits: len(d.game.History()),
		}
	}

	return tables
}

// ClientConnected is called when a client asks to join a table
func (p *PitBoss) ClientConnected(client *Client, msgCtx string) {
	p.connect <- joinRequest{client: client, msgCtx: msgCtx}
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}

func (p *PitBoss) dealerFinished(d *Dealer) {
	p.finished <- d
}
