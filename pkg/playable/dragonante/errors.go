package dragonante

import (
	"errors"
	"fmt"
)

// ErrTableFull is returned when a player tries to join a full table
var ErrTableFull = errors.New("the table is full")

// ErrGameStarted is returned when a player tries to join a game in progress
var ErrGameStarted = errors.New("the game has already started")

// ErrGameNotStarted is returned when a gambit is requested before Start()
var ErrGameNotStarted = errors.New("the game has not started")

// ErrGameIsOver is returned when a gambit is requested after a player went broke
var ErrGameIsOver = errors.New("game is over")

// ErrInvariant is a fatal internal error. The gambit is aborted when it is returned
var ErrInvariant = errors.New("invariant violated")

// ErrNegativeAmount is returned when a power asks to move a negative amount
var ErrNegativeAmount = errors.New("amount cannot be negative")

// ErrUnknownPlayer is returned when a power references a player who isn't seated
var ErrUnknownPlayer = errors.New("player is not seated at this table")

// ErrNoOptions is returned when a choice is presented with nothing to choose from
var ErrNoOptions = errors.New("no options to choose from")

// ErrNoFlight is returned when a flight operation happens outside of a gambit
var ErrNoFlight = errors.New("player has no active flight")

// ErrEmptyName is returned when a player joins without a name
var ErrEmptyName = errors.New("name cannot be empty")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}

func invariantError(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, a...))
}
