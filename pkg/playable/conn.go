package playable

import (
	"context"
	"errors"
	"sync"
)

// ErrInputPending is returned when an earlier input has not been read by the engine yet
var ErrInputPending = errors.New("your previous input has not been read yet")

// ErrDisconnected is returned once the connection has been closed
var ErrDisconnected = errors.New("player disconnected")

// Seat is the I/O surface the game engine uses to talk to a single player
type Seat interface {
	// Enqueue queues a message for the player. It must never block
	Enqueue(msg string)

	// AwaitInput blocks until the player sends their next input
	AwaitInput(ctx context.Context) (string, error)
}

// Conn bridges the engine goroutine and a player's connection worker
// Outbound messages are a FIFO that never blocks the sender. Inbound input is a single slot:
// a token delivered before the engine asks for it is held until the next AwaitInput.
type Conn struct {
	lock     sync.Mutex
	queue    []string
	awaiting bool

	pending   chan struct{}
	input     chan string
	closed    chan struct{}
	closeOnce sync.Once
}

var _ Seat = (*Conn)(nil)

// NewConn returns a new connection bridge
func NewConn() *Conn {
	return &Conn{
		queue:   make([]string, 0),
		pending: make(chan struct{}, 1),
		input:   make(chan string, 1),
		closed:  make(chan struct{}),
	}
}

// Enqueue adds a message to the outbound queue
func (c *Conn) Enqueue(msg string) {
	c.lock.Lock()
	c.queue = append(c.queue, msg)
	c.lock.Unlock()

	select {
	case c.pending <- struct{}{}:
	default:
	}
}

// Dequeue pops the oldest outbound message
func (c *Conn) Dequeue() (string, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if len(c.queue) == 0 {
		return "", false
	}

	msg := c.queue[0]
	c.queue[0] = ""
	c.queue = c.queue[1:]
	return msg, true
}

// HasPending returns true if there are outbound messages waiting
func (c *Conn) HasPending() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return len(c.queue) > 0
}

// Pending receives a value whenever new messages were queued since the last receive
// The connection worker should drain with Dequeue() after each signal
func (c *Conn) Pending() <-chan struct{} {
	return c.pending
}

// Awaiting returns true if the engine is blocked on this player's input
func (c *Conn) Awaiting() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.awaiting
}

// Deliver hands the player's input to the engine
// The slot holds one token. A second token before the first is read gets ErrInputPending
func (c *Conn) Deliver(token string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.isClosed() {
		return ErrDisconnected
	}

	select {
	case c.input <- token:
	default:
		return ErrInputPending
	}

	c.awaiting = false
	return nil
}

// AwaitInput returns the held token, or blocks until Deliver() is called, the connection
// closes, or ctx is done
func (c *Conn) AwaitInput(ctx context.Context) (string, error) {
	c.lock.Lock()
	if c.isClosed() {
		c.lock.Unlock()
		return "", ErrDisconnected
	}

	select {
	case token := <-c.input:
		c.lock.Unlock()
		return token, nil
	default:
	}

	c.awaiting = true
	c.lock.Unlock()

	select {
	case token := <-c.input:
		c.stopAwaiting()
		return token, nil
	case <-c.closed:
		c.abandon()
		return "", ErrDisconnected
	case <-ctx.Done():
		c.abandon()
		return "", ctx.Err()
	}
}

func (c *Conn) stopAwaiting() {
	c.lock.Lock()
	c.awaiting = false
	c.lock.Unlock()
}

// abandon stops waiting and drops a late token meant for the prompt that was given up on
func (c *Conn) abandon() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.awaiting = false
	select {
	case <-c.input:
	default:
	}
}

// Close disconnects the player. Any pending or future AwaitInput returns ErrDisconnected
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// Closed returns a channel that is closed when the connection is closed
func (c *Conn) Closed() <-chan struct{} {
	return c.closed
}

func (c *Conn) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}
