package playable

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn_queue(t *testing.T) {
	a := assert.New(t)
	c := NewConn()

	a.False(c.HasPending())
	_, ok := c.Dequeue()
	a.False(ok)

	c.Enqueue("one")
	c.Enqueue("two")
	c.Enqueue("three")

	select {
	case <-c.Pending():
	default:
		t.Fatal("expected a pending signal")
	}

	for _, want := range []string{"one", "two", "three"} {
		msg, ok := c.Dequeue()
		a.True(ok)
		a.Equal(want, msg)
	}

	a.False(c.HasPending())
}

func TestConn_EnqueueNeverBlocks(t *testing.T) {
	c := NewConn()

	done := make(chan bool)
	go func() {
		for i := 0; i < 10000; i++ {
			c.Enqueue("msg")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Enqueue blocked")
	}
}

func TestConn_DeliverBeforePrompt(t *testing.T) {
	a := assert.New(t)
	c := NewConn()

	a.NoError(c.Deliver("2"))
	a.Equal(ErrInputPending, c.Deliver("3"), "the slot holds a single token")
	a.False(c.Awaiting())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	token, err := c.AwaitInput(ctx)
	a.NoError(err)
	a.Equal("2", token)
	a.False(c.Awaiting())

	a.NoError(c.Deliver("3"), "the slot is free again once read")
}

func waitForAwaiting(t *testing.T, c *Conn) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !c.Awaiting() {
		if time.Now().After(deadline) {
			t.Fatal("engine never started waiting")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestConn_AwaitInput(t *testing.T) {
	a := assert.New(t)
	c := NewConn()

	var wg sync.WaitGroup
	var got string
	var err error
	wg.Add(1)
	go func() {
		defer wg.Done()
		got, err = c.AwaitInput(context.Background())
	}()

	waitForAwaiting(t, c)
	require.NoError(t, c.Deliver("4"))

	wg.Wait()
	a.NoError(err)
	a.Equal("4", got)
	a.False(c.Awaiting())
}

func TestConn_AwaitInputTimeout(t *testing.T) {
	c := NewConn()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.AwaitInput(ctx)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.False(t, c.Awaiting())

	// input after the timeout answers the next prompt
	assert.NoError(t, c.Deliver("1"))
	token, err := c.AwaitInput(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "1", token)
}

func TestConn_Close(t *testing.T) {
	c := NewConn()

	errs := make(chan error)
	go func() {
		_, err := c.AwaitInput(context.Background())
		errs <- err
	}()

	waitForAwaiting(t, c)
	c.Close()
	c.Close()

	assert.Equal(t, ErrDisconnected, <-errs)
	_, err := c.AwaitInput(context.Background())
	assert.Equal(t, ErrDisconnected, err)
	assert.Equal(t, ErrDisconnected, c.Deliver("1"))
}
