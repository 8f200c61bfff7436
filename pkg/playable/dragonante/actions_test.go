package dragonante

import (
	"errors"
	"testing"

	"dragonante-server/pkg/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActions_TransferGold(t *testing.T) {
	a := assert.New(t)
	g, gambit, players, seats := powerTable(t, [][]*deck.Card{nil, nil, nil}, 2)
	actions := g.newActions(cbg, gambit, players[0])

	moved, err := actions.TransferGold(players[1], 5, players[0])
	a.NoError(err)
	a.Equal(5, moved)
	a.Equal(55, players[0].Hoard())
	a.Equal(45, players[1].Hoard())

	moved, err = actions.TransferGold(actions.Pot(), 5, players[2])
	a.NoError(err)
	a.Equal(2, moved, "the pot pays at most its balance")
	a.Equal(52, players[2].Hoard())
	a.Equal(0, actions.Pot().Balance())

	moved, err = actions.TransferGold(players[1], 50, actions.Pot())
	a.NoError(err)
	a.Equal(45, moved)
	a.Equal(5, players[1].Debt())
	a.True(seats[0].said("Bob pays all of their gold (45) to the stakes. (Debt: 5)"))

	_, err = actions.TransferGold(players[0], -1, players[1])
	a.Equal(ErrNegativeAmount, err)

	stranger := newPlayer("Mallory", 0, newScriptedSeat())
	_, err = actions.TransferGold(stranger, 1, players[0])
	a.Equal(ErrUnknownPlayer, err)

	_, err = actions.TransferGold(&Pot{}, 1, players[0])
	a.EqualError(err, "unknown account: the stakes")
	a.NoError(g.checkInvariants(gambit))
}

func TestActions_DrawCards(t *testing.T) {
	a := assert.New(t)
	g, gambit, players, _ := powerTable(t, [][]*deck.Card{nil, nil, nil}, 0)
	actions := g.newActions(cbg, gambit, players[0])

	a.Equal(ErrNegativeAmount, actions.DrawCards(-1, players[0]))
	a.NoError(actions.DrawCards(8, players[0]))
	a.Equal(deck.HandLimit, players[0].HandSize())
	a.Equal(4, g.deck.CardsLeft())

	a.NoError(actions.DrawCards(1, players[1], players[2]))
	a.Equal(5, players[1].HandSize())
	a.Equal(5, players[2].HandSize())
	a.NoError(g.checkInvariants(gambit))
}

func TestActions_DiscardCards(t *testing.T) {
	a := assert.New(t)
	g, gambit, players, seats := powerTable(t, [][]*deck.Card{nil, nil, nil}, 0)
	actions := g.newActions(cbg, gambit, players[0])

	seats[1].inputs = []string{"3", "0"}
	a.NoError(actions.DiscardCards(players[1], 10))
	a.Equal(0, players[1].HandSize())
	a.Equal(4, g.deck.DiscardsLeft())
	a.Equal(ErrNegativeAmount, actions.DiscardCards(players[1], -2))
	a.NoError(g.checkInvariants(gambit))
}

func TestActions_GiftCards(t *testing.T) {
	a := assert.New(t)
	g, gambit, players, _ := powerTable(t, [][]*deck.Card{nil, nil, nil}, 0)
	actions := g.newActions(cbg, gambit, players[0])

	a.NoError(actions.GiftCards(players[1], 10, players[0], true))
	a.Equal(0, players[1].HandSize())
	a.Equal(8, players[0].HandSize())

	a.NoError(actions.GiftCards(players[2], 4, players[0], false))
	a.Equal(deck.HandLimit, players[0].HandSize(), "capped by the space in the receiving hand")
	a.Equal(2, players[2].HandSize())

	a.Equal(ErrNegativeAmount, actions.GiftCards(players[2], -1, players[0], false))
	a.NoError(g.checkInvariants(gambit))
}

func TestActions_PresentChoice(t *testing.T) {
	a := assert.New(t)
	g, gambit, players, seats := powerTable(t, [][]*deck.Card{nil, nil, nil}, 0)
	actions := g.newActions(cbg, gambit, players[0])

	seats[2].inputs = []string{"1"}
	choice, err := actions.PresentChoice(players[2], "Pick one:", []string{"left", "right"})
	a.NoError(err)
	a.Equal(1, choice)
	a.True(seats[2].said("Pick one:\n 0. left\n 1. right"))
	a.False(seats[1].said("Pick one:"))

	_, err = actions.PresentChoice(players[2], "Pick one:", nil)
	a.Equal(ErrNoOptions, err)

	seats[2].fallback = ""
	_, err = actions.PresentChoice(players[2], "Pick one:", []string{"only"})
	a.EqualError(err, "script exhausted")
}

func TestActions_queries(t *testing.T) {
	a := assert.New(t)
	f := &cardFactory{}
	g, gambit, players, _ := powerTable(t, [][]*deck.Card{
		{f.card(deck.Gold, 4)},
		{f.card(deck.Red, 8)},
		{f.card(deck.Black, 5), f.card(deck.Silver, 3)},
	}, 0)
	actions := g.newActions(cbg, gambit, players[1])

	a.Same(players[1], actions.CurrentPlayer())
	a.Equal([]*Player{players[2], players[0]}, actions.Opponents(players[1]))
	a.Equal([]*Player{players[1], players[2]}, actions.Opponents(players[0]))
	a.Same(players[0], actions.PlayerToLeftOf(players[2]))
	a.Same(players[1], actions.PlayerToLeftOf(players[0]))
	a.Len(actions.Players(), 3)

	a.Same(players[1], actions.StrongestFlight(), "8 ties 8 and Bob sits first")
	a.Same(players[2], actions.StrongestFlight(players[2], players[0]))
	a.Equal([]*Player{players[0], players[2]}, actions.PlayersWithFlightMatching(hasTag(deck.TagDragon|deck.TagGood)))
	a.Equal([]*Player{players[1], players[2]}, actions.PlayersWithFlightStrongerThan(4))
}

func TestActions_ante(t *testing.T) {
	a := assert.New(t)
	f := &cardFactory{}
	g, gambit, players, _ := powerTable(t, [][]*deck.Card{nil, nil, nil}, 0)
	actions := g.newActions(cbg, gambit, players[0])

	ante := f.card(deck.Blue, 7)
	gambit.ante = []*anteCard{{player: players[1], card: ante}}
	g.totalCards++

	a.Equal([]*deck.Card{ante}, actions.Ante())
	a.EqualError(actions.TakeFromAnte(players[0], f.card(deck.Red, 2)), "Red dragon 2 is not in the ante")
	a.NoError(actions.TakeFromAnte(players[0], ante))
	a.Empty(actions.Ante())
	a.Contains(players[0].Hand(), ante)
	a.NoError(g.checkInvariants(gambit))
}

func TestActions_flightEdits(t *testing.T) {
	a := assert.New(t)
	f := &cardFactory{}
	red := f.card(deck.Red, 8)
	g, gambit, players, _ := powerTable(t, [][]*deck.Card{{red}, nil, nil}, 0)
	actions := g.newActions(cbg, gambit, players[0])

	replacement, err := actions.ReplaceFromDeck(players[0], red)
	a.NoError(err)
	a.NotNil(replacement)
	a.Equal([]*deck.Card{replacement}, players[0].Flight())
	a.Same(red, g.deck.LastDiscard())

	_, err = actions.ReplaceFromDeck(players[0], red)
	a.True(errors.Is(err, deck.ErrCardNotInFlight))
	a.NoError(g.checkInvariants(gambit), "a failed replacement discards the drawn card")

	a.NoError(actions.RemoveFromFlight(players[0], replacement))
	a.Empty(players[0].Flight())
	a.True(errors.Is(actions.RemoveFromFlight(players[0], replacement), deck.ErrCardNotInFlight))
	a.NoError(g.checkInvariants(gambit))
}

func TestActions_overrides(t *testing.T) {
	a := assert.New(t)
	g, gambit, players, _ := powerTable(t, [][]*deck.Card{nil, nil, nil}, 0)
	actions := g.newActions(cbg, gambit, players[0])

	a.EqualError(actions.OverrideWinnerRule(nil), "winner rule cannot be nil")
	a.NoError(actions.OverrideWinnerRule(WeakestFlightWins))
	a.NotNil(gambit.winnerRule)

	a.True(errors.Is(actions.OverrideNextLeader(3), ErrUnknownPlayer))
	a.True(errors.Is(actions.OverrideNextLeader(-1), ErrUnknownPlayer))
	a.NoError(actions.OverrideNextLeader(2))
	a.Same(players[2], gambit.nextLeader)

	g.endGambit(gambit)
	a.Nil(gambit.winnerRule)
	a.Nil(gambit.nextLeader)
}

func TestActions_TriggerDepth(t *testing.T) {
	a := assert.New(t)
	f := &cardFactory{}
	black := f.card(deck.Black, 3)
	g, gambit, players, _ := powerTable(t, [][]*deck.Card{{black}, nil, nil}, 10)

	actions := g.newActions(cbg, gambit, players[0])
	actions.depth = maxChainDepth
	a.NoError(actions.Trigger(black))
	a.Equal(50, players[0].Hoard())

	actions.depth = maxChainDepth - 1
	a.NoError(actions.Trigger(black))
	a.Equal(52, players[0].Hoard())
	a.Equal(maxChainDepth-1, actions.depth)
}

func TestActions_powerErrorAbortsRound(t *testing.T) {
	g, gambit, players, seats := powerTable(t, [][]*deck.Card{nil, nil, nil}, 10)

	f := &cardFactory{}
	green := f.card(deck.Green, 6)
	require.NoError(t, players[0].hand.Add(green))
	g.totalCards++

	// Alice plays the green dragon and Bob's answer can't be read
	seats[0].inputs = []string{"4"}
	seats[1].fallback = ""

	_, err := g.playRound(cbg, gambit, players[0])
	assert.EqualError(t, err, "Green dragon 6: script exhausted")
}
