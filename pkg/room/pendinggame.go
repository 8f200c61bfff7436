package room

import (
	"context"
	"time"
)

// waitForPlayers blocks until the game has enough players to start
// Once the minimum is seated the table stays open for startDelay, or until it fills up
func (d *Dealer) waitForPlayers(ctx context.Context) error {
	select {
	case <-d.game.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}

	if d.startDelay <= 0 || d.game.IsFull() {
		return nil
	}

	d.announce("The game starts in %s unless the table fills up first.", d.startDelay)

	timer := time.NewTimer(d.startDelay)
	defer timer.Stop()

	for !d.game.IsFull() {
		select {
		case <-timer.C:
			return nil
		case <-d.joined:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
