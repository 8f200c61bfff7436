package dragonante

import (
	"context"
	"fmt"
	"strings"

	"dragonante-server/pkg/deck"
	"dragonante-server/pkg/playable"

	"github.com/google/uuid"
)

// WinnerRule picks the winner of a gambit from the seated players
type WinnerRule func(players []*Player) *Player

// StrongestFlightWins is the default rule. Ties go to the earliest seat
func StrongestFlightWins(players []*Player) *Player {
	var winner *Player
	for _, p := range players {
		if winner == nil || p.FlightStrength() > winner.FlightStrength() {
			winner = p
		}
	}

	return winner
}

// WeakestFlightWins flips the contest. Ties go to the earliest seat
func WeakestFlightWins(players []*Player) *Player {
	var winner *Player
	for _, p := range players {
		if winner == nil || p.FlightStrength() < winner.FlightStrength() {
			winner = p
		}
	}

	return winner
}

type anteCard struct {
	player *Player
	card   *deck.Card
}

// Gambit is one betting cycle: ante, buy-in, up to MaxRounds rounds, payout
type Gambit struct {
	ID     string
	pot    Pot
	ante   []*anteCard
	leader *Player
	buyIn  int
	rounds []*Round

	// overrides installed by powers; they only live as long as the gambit
	winnerRule WinnerRule
	nextLeader *Player

	anted []*deck.Card
	log   []*playable.LogMessage
}

// GambitRecord is the archived result of a gambit
type GambitRecord struct {
	ID     string                 `json:"id"`
	Leader string                 `json:"leader"`
	BuyIn  int                    `json:"buyIn"`
	Ante   []*deck.Card           `json:"ante"`
	Rounds []*Round               `json:"rounds"`
	Winner string                 `json:"winner"`
	Payout int                    `json:"payout"`
	Log    []*playable.LogMessage `json:"log"`
}

func newGambit() *Gambit {
	return &Gambit{
		ID:     uuid.New().String(),
		ante:   make([]*anteCard, 0),
		rounds: make([]*Round, 0),
		log:    make([]*playable.LogMessage, 0),
	}
}

func (gambit *Gambit) isOver(maxRounds int) bool {
	return len(gambit.rounds) >= maxRounds || gambit.pot.Balance() == 0
}

func (gambit *Gambit) anteCards() []*deck.Card {
	cards := make([]*deck.Card, len(gambit.ante))
	for i, a := range gambit.ante {
		cards[i] = a.card
	}

	return cards
}

// PlayGambit plays a single gambit to completion
// Errors from player input are handled by asking again; any error returned here is fatal for the gambit
func (g *Game) PlayGambit(ctx context.Context) (*GambitRecord, error) {
	if !g.Started() {
		return nil, ErrGameNotStarted
	}

	if n := len(g.players); n < g.options.MinPlayers {
		return nil, PlayerCountError{Min: g.options.MinPlayers, Max: g.options.MaxPlayers, Got: n}
	}

	if g.IsOver() {
		return nil, ErrGameIsOver
	}

	gambit := newGambit()
	g.current.Store(gambit)
	defer g.current.Store(nil)

	log := g.logger.WithField("gambit", gambit.ID)
	log.Info("gambit started")

	if err := g.collectAnte(ctx, gambit); err != nil {
		return nil, err
	}

	if err := g.payBuyIn(gambit); err != nil {
		return nil, err
	}

	leader := gambit.leader
	for !gambit.isOver(g.options.MaxRounds) {
		round, err := g.playRound(ctx, gambit, leader)
		if err != nil {
			return nil, err
		}

		leader = g.players[round.Outcome]
		if gambit.nextLeader != nil {
			leader = gambit.nextLeader
			gambit.nextLeader = nil
		}

		log.WithField("round", round.Number).WithField("next", leader.Name).Debug("round complete")
		if !gambit.isOver(g.options.MaxRounds) {
			g.broadcast("%s leads the next round.", leader.Name)
		}
	}

	var rule WinnerRule = StrongestFlightWins
	if gambit.winnerRule != nil {
		rule = gambit.winnerRule
	}

	winner := rule(g.players)
	g.broadcast("%s wins the gambit with a flight of %d.", winner.Name, winner.FlightStrength())

	payout, err := g.transferGold(&gambit.pot, gambit.pot.Balance(), winner)
	if err != nil {
		return nil, err
	}

	g.endGambit(gambit)
	if err := g.checkInvariants(gambit); err != nil {
		return nil, err
	}

	record := &GambitRecord{
		ID:     gambit.ID,
		Leader: gambit.leader.Name,
		BuyIn:  gambit.buyIn,
		Ante:   gambit.anted,
		Rounds: gambit.rounds,
		Winner: winner.Name,
		Payout: payout,
		Log:    gambit.log,
	}

	g.historyLock.Lock()
	g.history = append(g.history, record)
	g.historyLock.Unlock()

	log.WithField("winner", winner.Name).WithField("payout", payout).Info("gambit complete")
	return record, nil
}

// collectAnte asks every player for an ante card at once, then collects the answers in seat order
func (g *Game) collectAnte(ctx context.Context, gambit *Gambit) error {
	for _, p := range g.players {
		if g.ensureCard(p) {
			hand := p.Hand()
			g.sendMenu(p, fmt.Sprintf("Select ante from hand (%d)", len(hand)), cardOptions(hand))
		}
	}

	for _, p := range g.players {
		n := p.HandSize()
		if n == 0 {
			g.broadcast("%s has no card to ante.", p.Name)
			continue
		}

		choice, err := g.awaitChoice(ctx, p, n)
		if err != nil {
			return err
		}

		card, err := p.removeFromHand(choice)
		if err != nil {
			return err
		}

		gambit.ante = append(gambit.ante, &anteCard{player: p, card: card})
	}

	if len(gambit.ante) == 0 {
		return invariantError("no ante was collected")
	}

	gambit.anted = gambit.anteCards()

	var sb strings.Builder
	sb.WriteString("Ante received:")
	for _, a := range gambit.ante {
		sb.WriteString(fmt.Sprintf("\n %s played %s", a.player.Name, a.card))
	}
	g.broadcast("%s", sb.String())

	return nil
}

// payBuyIn picks the gambit leader from the ante and has every player pay the buy-in
func (g *Game) payBuyIn(gambit *Gambit) error {
	best := gambit.ante[0]
	for _, a := range gambit.ante[1:] {
		if a.card.Strength > best.card.Strength {
			best = a
		}
	}

	gambit.leader = best.player
	gambit.buyIn = best.card.Strength
	g.broadcast("%s is leader of this gambit. The buy-in is %d.", gambit.leader.Name, gambit.buyIn)

	for _, p := range g.players {
		if _, err := g.transferGold(p, gambit.buyIn, &gambit.pot); err != nil {
			return err
		}

		p.startFlight()
	}

	return g.checkInvariants(gambit)
}

// endGambit discards the ante and every flight, then everyone draws replacements
func (g *Game) endGambit(gambit *Gambit) {
	for _, a := range gambit.ante {
		g.deck.Discard(a.card)
	}
	gambit.ante = gambit.ante[:0]

	for _, p := range g.players {
		g.deck.Discard(p.endFlight()...)
	}

	for _, p := range g.players {
		g.drawCards(p, g.options.ReplacementDraw)
	}

	gambit.winnerRule = nil
	gambit.nextLeader = nil
}

// transferGold moves up to amount from one account to another
// A player who can't cover the amount pays what they have and the rest becomes debt.
// The pot never pays out more than its balance.
func (g *Game) transferGold(from Account, amount int, to Account) (int, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}

	moved := from.withdraw(amount)
	to.deposit(moved)

	switch {
	case moved < amount && isPlayer(from):
		g.broadcast("%s pays all of their gold (%d) to %s. (Debt: %d)", from, moved, to, from.(*Player).Debt())
	default:
		g.broadcast("%s pays %d gold to %s.", from, moved, to)
	}

	return moved, nil
}

func isPlayer(a Account) bool {
	_, ok := a.(*Player)
	return ok
}
