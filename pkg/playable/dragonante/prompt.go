package dragonante

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dragonante-server/pkg/deck"
	"dragonante-server/pkg/playable"
)

// sendMenu queues a numbered menu for the player
func (g *Game) sendMenu(p *Player, prompt string, options []string) {
	var sb strings.Builder
	sb.WriteString(prompt)
	for i, option := range options {
		sb.WriteString(fmt.Sprintf("\n%2d. %s", i, option))
	}

	p.io.Enqueue(sb.String())
}

// awaitChoice blocks until the player picks an index in [0, n)
// Invalid input is answered to the player alone and they are asked again. A player who times out
// or has disconnected gets the first option.
func (g *Game) awaitChoice(ctx context.Context, p *Player, n int) (int, error) {
	log := g.logger.WithField("player", p.Name)
	for {
		promptCtx, cancel := ctx, context.CancelFunc(func() {})
		if g.options.PromptTimeout > 0 {
			promptCtx, cancel = context.WithTimeout(ctx, g.options.PromptTimeout)
		}

		token, err := p.io.AwaitInput(promptCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}

			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, playable.ErrDisconnected) {
				log.WithError(err).Warn("no response, taking the first option")
				p.Send("No response. The first option was chosen for you.")
				return 0, nil
			}

			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || choice < 0 || choice >= n {
			log.WithField("input", token).Debug("invalid choice")
			p.Send("Invalid choice %q. Enter a number from 0 to %d.", token, n-1)
			continue
		}

		return choice, nil
	}
}

// presentChoice shows the options to the player and returns the index they picked
func (g *Game) presentChoice(ctx context.Context, p *Player, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	g.sendMenu(p, prompt, options)
	return g.awaitChoice(ctx, p, len(options))
}

func cardOptions(cards []*deck.Card) []string {
	options := make([]string, len(cards))
	for i, card := range cards {
		options[i] = card.String()
	}

	return options
}

// chooseFromHand has the player pick a card and removes it from their hand
func (g *Game) chooseFromHand(ctx context.Context, p *Player, prompt string) (*deck.Card, error) {
	hand := p.Hand()
	choice, err := g.presentChoice(ctx, p, fmt.Sprintf("%s (%d)", prompt, len(hand)), cardOptions(hand))
	if err != nil {
		return nil, err
	}

	return p.removeFromHand(choice)
}
