package room

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"dragonante-server/internal/util"
	"dragonante-server/pkg/playable"
	"dragonante-server/pkg/playable/dragonante"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ErrNotSeated is returned when a client sends input before joining a table
var ErrNotSeated = errors.New("you have not joined a table")

// ErrAlreadySeated is returned when a seated client tries to join again
var ErrAlreadySeated = errors.New("you have already joined a table")

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// send is a channel for sending messages to the client
	send chan interface{}

	// seat is the engine's view of this client
	seat *playable.Conn

	pitBoss *PitBoss

	lock    sync.RWMutex
	name    string
	joining bool
	dealer  *Dealer
	player  *dragonante.Player
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, pitBoss *PitBoss) *Client {
	c := &Client{
		Conn:    conn,
		Close:   make(chan string),
		send:    make(chan interface{}, 256),
		seat:    playable.NewConn(),
		pitBoss: pitBoss,
	}

	go c.forward()
	return c
}

// forward moves game messages from the seat queue to the websocket
func (c *Client) forward() {
	for {
		select {
		case <-c.seat.Pending():
			for {
				msg, ok := c.seat.Dequeue()
				if !ok {
					break
				}

				select {
				case c.send <- playable.MessageResponse(msg):
				case <-c.seat.Closed():
					return
				}
			}
		case <-c.seat.Closed():
			return
		}
	}
}

// Send sends a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("send buffer full, dropping message")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and table
func (c *Client) String() string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.dealer == nil {
		return c.name
	}

	return fmt.Sprintf("%s:%s", c.name, c.dealer.ID)
}

// Name returns the name the client joined with
func (c *Client) Name() string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.name
}

func (c *Client) seated() (*Dealer, *dragonante.Player) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.dealer, c.player
}

func (c *Client) setSeat(d *Dealer, p *dragonante.Player) {
	c.lock.Lock()
	c.dealer = d
	c.player = p
	c.joining = false
	c.lock.Unlock()
}

// rejectJoin lets the client try to join again after a failed join
func (c *Client) rejectJoin(msgCtx string, err error) {
	c.lock.Lock()
	c.joining = false
	c.lock.Unlock()

	c.Send(playable.ErrorResponse(msgCtx, err))
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	switch msg.Action {
	case "join":
		name := strings.TrimSpace(msg.Subject)
		if name == "" {
			name = util.GetRandomName()
		}

		c.lock.Lock()
		if c.joining || c.dealer != nil {
			c.lock.Unlock()
			c.Send(playable.ErrorResponse(msg.Context, ErrAlreadySeated))
			return
		}

		c.name = name
		c.joining = true
		c.lock.Unlock()

		c.pitBoss.ClientConnected(c, msg.Context)
	case "input":
		dealer, player := c.seated()
		if dealer == nil {
			c.Send(playable.ErrorResponse(msg.Context, ErrNotSeated))
			return
		}

		if answer, ok := dealer.game.Describe(player, msg.Subject); ok {
			res := playable.MessageResponse(answer)
			res.Context = msg.Context
			c.Send(res)
			return
		}

		if err := c.seat.Deliver(msg.Subject); err != nil {
			c.Send(playable.ErrorResponse(msg.Context, err))
			return
		}

		c.Send(playable.OK(msg.Context))
	case "history":
		dealer, _ := c.seated()
		if dealer == nil {
			c.Send(playable.ErrorResponse(msg.Context, ErrNotSeated))
			return
		}

		c.Send(&playable.Response{
			Key:     "history",
			Data:    dealer.game.History(),
			Context: msg.Context,
		})
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
		c.Send(playable.ErrorResponse(msg.Context, fmt.Errorf("unknown action: %s", msg.Action)))
	}
}
