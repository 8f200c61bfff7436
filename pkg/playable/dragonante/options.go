package dragonante

import (
	"errors"
	"time"
)

// Options are options for creating a new game
type Options struct {
	MinPlayers      int           `yaml:"minPlayers"`
	MaxPlayers      int           `yaml:"maxPlayers"`
	StartingHoard   int           `yaml:"startingHoard"`
	InitialHand     int           `yaml:"initialHand"`
	ReplacementDraw int           `yaml:"replacementDraw"`
	MaxRounds       int           `yaml:"maxRounds"`
	PromptTimeout   time.Duration `yaml:"promptTimeout"`

	// Seed makes the shuffle reproducible. 0 uses crypto/rand
	Seed int64 `yaml:"seed"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		MinPlayers:      3,
		MaxPlayers:      6,
		StartingHoard:   50,
		InitialHand:     6,
		ReplacementDraw: 2,
		MaxRounds:       3,
		PromptTimeout:   0,
		Seed:            0,
	}
}

func (o Options) validate() error {
	if o.MinPlayers < 2 {
		return errors.New("minimum players must be at least 2")
	}

	if o.MaxPlayers < o.MinPlayers {
		return errors.New("maximum players cannot be less than the minimum")
	}

	if o.StartingHoard <= 0 {
		return errors.New("starting hoard must be greater than 0")
	}

	if o.InitialHand <= 0 {
		return errors.New("initial hand must be greater than 0")
	}

	if o.ReplacementDraw < 0 {
		return errors.New("replacement draw cannot be negative")
	}

	if o.MaxRounds <= 0 {
		return errors.New("max rounds must be greater than 0")
	}

	if o.PromptTimeout < 0 {
		return errors.New("prompt timeout cannot be negative")
	}

	return nil
}
