package dragonante

import (
	"context"
	"fmt"
	"sort"

	"dragonante-server/pkg/deck"
)

// Play is a single card played during a round
// Replacement and Discarded track what a power did to the card after it was played
type Play struct {
	Player      *Player    `json:"-"`
	Seat        int        `json:"seat"`
	Card        *deck.Card `json:"card"`
	Triggered   bool       `json:"triggered"`
	Replacement *deck.Card `json:"replacement,omitempty"`
	Discarded   bool       `json:"discarded,omitempty"`
}

// current returns the card standing in the flight for this play, or nil if it was discarded
func (p *Play) current() *deck.Card {
	if p.Discarded {
		return nil
	}

	if p.Replacement != nil {
		return p.Replacement
	}

	return p.Card
}

// leftFlight records that card left its flight during the current round
// A non-nil replacement takes its place; otherwise the play no longer counts toward the lead
func (gambit *Gambit) leftFlight(card, replacement *deck.Card) {
	if len(gambit.rounds) == 0 {
		return
	}

	for _, play := range gambit.rounds[len(gambit.rounds)-1].Plays {
		if play.current() != card {
			continue
		}

		if replacement == nil {
			play.Discarded = true
		} else {
			play.Replacement = replacement
		}

		return
	}
}

// Round is one circuit of plays starting at the leader's seat
type Round struct {
	Number  int     `json:"number"`
	Leader  int     `json:"leader"`
	Plays   []*Play `json:"plays"`
	Outcome int     `json:"outcome"`
}

// triggers returns true if card's power fires when played next
// A power fires on the first card of the round, or when the previous card is at least as strong
func (r *Round) triggers(card *deck.Card) bool {
	if len(r.Plays) == 0 {
		return true
	}

	return r.Plays[len(r.Plays)-1].Card.Strength >= card.Strength
}

// roundOutcome returns the seat that leads the next round
// Plays are ranked by the card still in the flight. Tied groups at the top are stripped until a
// single highest card remains. If nothing remains, the current leader keeps the lead.
func roundOutcome(plays []*Play, leader int) int {
	sorted := make([]*Play, 0, len(plays))
	for _, play := range plays {
		if play.current() != nil {
			sorted = append(sorted, play)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].current().Strength > sorted[j].current().Strength
	})

	for len(sorted) > 0 {
		top := sorted[0].current().Strength
		if len(sorted) == 1 || sorted[1].current().Strength != top {
			return sorted[0].Seat
		}

		i := 0
		for i < len(sorted) && sorted[i].current().Strength == top {
			i++
		}

		sorted = sorted[i:]
	}

	return leader
}

// playRound has every seat play one card, starting with the leader
func (g *Game) playRound(ctx context.Context, gambit *Gambit, leader *Player) (*Round, error) {
	round := &Round{
		Number: len(gambit.rounds) + 1,
		Leader: leader.seat,
		Plays:  make([]*Play, 0, len(g.players)),
	}
	gambit.rounds = append(gambit.rounds, round)

	g.broadcast("Round %d. %s leads.", round.Number, leader.Name)

	n := len(g.players)
	for i := 0; i < n; i++ {
		p := g.players[(leader.seat+i)%n]
		if !g.ensureCard(p) {
			g.broadcast("%s has no cards and sits this round out.", p.Name)
			continue
		}

		card, err := g.chooseFromHand(ctx, p, "Play a card!")
		if err != nil {
			return nil, err
		}

		if err := p.addToFlight(card); err != nil {
			return nil, err
		}

		play := &Play{
			Player:    p,
			Seat:      p.seat,
			Card:      card,
			Triggered: round.triggers(card),
		}
		round.Plays = append(round.Plays, play)
		g.broadcast("%s plays %s. (Flight: %s)", p.Name, card, deck.CardsToString(p.Flight()))

		if play.Triggered {
			if err := g.newActions(ctx, gambit, p).Trigger(card); err != nil {
				return nil, fmt.Errorf("%s: %w", card, err)
			}
		}

		if err := g.checkInvariants(gambit); err != nil {
			return nil, err
		}
	}

	round.Outcome = roundOutcome(round.Plays, round.Leader)
	return round, nil
}
