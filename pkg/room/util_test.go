package room

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"dragonante-server/pkg/playable"
	"dragonante-server/pkg/playable/dragonante"

	"github.com/sirupsen/logrus"
)

var cbg = context.Background()

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testOptions() dragonante.Options {
	opts := dragonante.DefaultOptions()
	opts.MaxPlayers = 3
	opts.StartingHoard = 10
	opts.Seed = 1
	return opts
}

// recorder drains a client's outbound channel so the client never blocks
type recorder struct {
	lock      sync.Mutex
	responses []*playable.Response
}

func record(c *Client) *recorder {
	r := &recorder{}
	go func() {
		for msg := range c.SendChan() {
			if res, ok := msg.(*playable.Response); ok {
				r.lock.Lock()
				r.responses = append(r.responses, res)
				r.lock.Unlock()
			}
		}
	}()

	return r
}

func (r *recorder) find(key string) *playable.Response {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, res := range r.responses {
		if res.Key == key {
			return res
		}
	}

	return nil
}

func (r *recorder) has(key, value string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, res := range r.responses {
		if res.Key == key && res.Value == value {
			return true
		}
	}

	return false
}

// autoplay answers every prompt with the first option until ctx is done
func autoplay(ctx context.Context, c *Client) {
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.seat.Awaiting() {
					c.ReceivedMessage(&playable.PayloadIn{Action: "input", Subject: "0"})
				}
			}
		}
	}()
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(10 * time.Second):
		t.Fatal("timed out")
	}
}
