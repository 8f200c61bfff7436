package dragonante

import (
	"context"
	"fmt"

	"dragonante-server/pkg/deck"
)

// maxChainDepth bounds powers that trigger other powers (copies and replacements)
const maxChainDepth = 8

// Actions is the capability surface a card power uses to change the game
// It is only valid for the duration of the power that received it.
type Actions struct {
	ctx     context.Context
	game    *Game
	gambit  *Gambit
	current *Player
	depth   int
}

func (g *Game) newActions(ctx context.Context, gambit *Gambit, current *Player) *Actions {
	return &Actions{
		ctx:     ctx,
		game:    g,
		gambit:  gambit,
		current: current,
	}
}

// Trigger runs the power of card on behalf of the current player
// Powers that replace cards call this to chain. Chains deeper than maxChainDepth stop quietly.
func (a *Actions) Trigger(card *deck.Card) error {
	return a.trigger(card, card)
}

// TriggerCopy runs the power of copied as if source had it
// source is the copying card in the current player's flight. Powers that act on their own card act on source
func (a *Actions) TriggerCopy(source, copied *deck.Card) error {
	return a.trigger(source, copied)
}

func (a *Actions) trigger(source, card *deck.Card) error {
	power := powerFor(card.Variant)
	if power == nil {
		return nil
	}

	if a.depth >= maxChainDepth {
		a.game.logger.WithField("card", card.String()).Warn("power chain too deep, not triggering")
		return nil
	}

	a.depth++
	defer func() { a.depth-- }()

	a.game.broadcast("%s's power triggers for %s.", card, a.current.Name)
	return power(a, source)
}

func (a *Actions) checkSeated(players ...*Player) error {
	for _, p := range players {
		if p == nil || p.seat < 0 || p.seat >= len(a.game.players) || a.game.players[p.seat] != p {
			return ErrUnknownPlayer
		}
	}

	return nil
}

// TransferGold moves up to amount between two accounts and returns what actually moved
func (a *Actions) TransferGold(from Account, amount int, to Account) (int, error) {
	for _, acct := range []Account{from, to} {
		if p, ok := acct.(*Player); ok {
			if err := a.checkSeated(p); err != nil {
				return 0, err
			}
		} else if acct != &a.gambit.pot {
			return 0, fmt.Errorf("unknown account: %v", acct)
		}
	}

	return a.game.transferGold(from, amount, to)
}

// DrawCards has each player draw up to amount cards, capped by the space in their hand
func (a *Actions) DrawCards(amount int, players ...*Player) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	if err := a.checkSeated(players...); err != nil {
		return err
	}

	for _, p := range players {
		a.game.drawCards(p, amount)
	}

	return nil
}

// DiscardCards has the player choose amount cards from their hand to discard
func (a *Actions) DiscardCards(p *Player, amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	if err := a.checkSeated(p); err != nil {
		return err
	}

	if n := p.HandSize(); amount > n {
		amount = n
	}

	for i := 0; i < amount; i++ {
		card, err := a.game.chooseFromHand(a.ctx, p, "Choose a card to discard")
		if err != nil {
			return err
		}

		a.game.deck.Discard(card)
		a.game.broadcast("%s discards %s.", p.Name, card)
	}

	return nil
}

// GiftCards moves cards from one hand to another
// If random is true the cards are picked at random, otherwise the giver chooses
func (a *Actions) GiftCards(from *Player, amount int, to *Player, random bool) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	if err := a.checkSeated(from, to); err != nil {
		return err
	}

	if n := from.HandSize(); amount > n {
		amount = n
	}

	if space := to.HandSpace(); amount > space {
		amount = space
	}

	for i := 0; i < amount; i++ {
		var card *deck.Card
		var err error
		if random {
			card, err = from.removeFromHand(a.game.rng.Intn(from.HandSize()))
		} else {
			card, err = a.game.chooseFromHand(a.ctx, from, fmt.Sprintf("Choose a card to give to %s", to.Name))
		}

		if err != nil {
			return err
		}

		a.game.deck.Discard(to.addToHand(card)...)
		to.Send("%s gave you %s.", from.Name, card)
	}

	if amount > 0 {
		a.game.broadcast("%s gives %d card(s) to %s.", from.Name, amount, to.Name)
	}

	return nil
}

// PresentChoice asks the player to pick one of the options and returns its index
func (a *Actions) PresentChoice(p *Player, prompt string, options []string) (int, error) {
	if err := a.checkSeated(p); err != nil {
		return 0, err
	}

	return a.game.presentChoice(a.ctx, p, prompt, options)
}

// CurrentPlayer is the player whose power is executing
func (a *Actions) CurrentPlayer() *Player {
	return a.current
}

// Players returns every seated player in seat order
func (a *Actions) Players() []*Player {
	return append([]*Player{}, a.game.players...)
}

// Opponents returns everyone but p, in seat order starting to p's left
func (a *Actions) Opponents(p *Player) []*Player {
	n := len(a.game.players)
	opponents := make([]*Player, 0, n-1)
	for i := 1; i < n; i++ {
		opponents = append(opponents, a.game.players[(p.seat+i)%n])
	}

	return opponents
}

// PlayerToLeftOf returns the next player in turn order
func (a *Actions) PlayerToLeftOf(p *Player) *Player {
	return a.game.players[(p.seat+1)%len(a.game.players)]
}

// StrongestFlight returns the player with the strongest flight among the given players
// If none are given, every seated player is considered. Ties go to the earliest seat
func (a *Actions) StrongestFlight(among ...*Player) *Player {
	if len(among) == 0 {
		among = a.game.players
	}

	return StrongestFlightWins(among)
}

// PlayersWithFlightMatching returns the players whose flight satisfies the predicate
func (a *Actions) PlayersWithFlightMatching(match func(flight []*deck.Card) bool) []*Player {
	players := make([]*Player, 0)
	for _, p := range a.game.players {
		if match(p.Flight()) {
			players = append(players, p)
		}
	}

	return players
}

// PlayersWithFlightStrongerThan returns the players whose flight is stronger than strength
func (a *Actions) PlayersWithFlightStrongerThan(strength int) []*Player {
	return a.PlayersWithFlightMatching(func(flight []*deck.Card) bool {
		return deck.TotalStrength(flight) > strength
	})
}

// Pot returns the stakes of the current gambit
func (a *Actions) Pot() *Pot {
	return &a.gambit.pot
}

// Ante returns the cards still in the ante
func (a *Actions) Ante() []*deck.Card {
	return a.gambit.anteCards()
}

// TakeFromAnte moves an ante card into the player's hand
func (a *Actions) TakeFromAnte(p *Player, card *deck.Card) error {
	if err := a.checkSeated(p); err != nil {
		return err
	}

	for i, ac := range a.gambit.ante {
		if ac.card == card {
			a.gambit.ante = append(a.gambit.ante[:i], a.gambit.ante[i+1:]...)
			a.game.deck.Discard(p.addToHand(card)...)
			a.game.broadcast("%s takes %s from the ante.", p.Name, card)
			return nil
		}
	}

	return fmt.Errorf("%s is not in the ante", card)
}

// RemoveFromFlight discards a card from the owner's flight
func (a *Actions) RemoveFromFlight(owner *Player, card *deck.Card) error {
	if err := a.checkSeated(owner); err != nil {
		return err
	}

	if err := owner.removeFromFlight(card); err != nil {
		return err
	}

	a.game.deck.Discard(card)
	a.gambit.leftFlight(card, nil)
	a.game.broadcast("%s is discarded from %s's flight.", card, owner.Name)
	return nil
}

// ReplaceFromDeck swaps a card in the owner's flight for the top card of the deck
// The replaced card is discarded. Returns nil if the deck is exhausted, leaving the flight as is
func (a *Actions) ReplaceFromDeck(owner *Player, card *deck.Card) (*deck.Card, error) {
	if err := a.checkSeated(owner); err != nil {
		return nil, err
	}

	drawn := a.game.deck.Draw(1)
	if len(drawn) == 0 {
		return nil, nil
	}

	replacement := drawn[0]
	if err := owner.replaceInFlight(card, replacement); err != nil {
		a.game.deck.Discard(replacement)
		return nil, err
	}

	a.game.deck.Discard(card)
	a.gambit.leftFlight(card, replacement)
	a.game.broadcast("%s replaces %s with %s.", owner.Name, card, replacement)
	return replacement, nil
}

// OverrideWinnerRule replaces how the winner of this gambit is chosen
func (a *Actions) OverrideWinnerRule(rule WinnerRule) error {
	if rule == nil {
		return fmt.Errorf("winner rule cannot be nil")
	}

	a.gambit.winnerRule = rule
	return nil
}

// OverrideNextLeader makes the seat lead the next round of this gambit
func (a *Actions) OverrideNextLeader(seat int) error {
	if seat < 0 || seat >= len(a.game.players) {
		return fmt.Errorf("seat %d: %w", seat, ErrUnknownPlayer)
	}

	a.gambit.nextLeader = a.game.players[seat]
	return nil
}
