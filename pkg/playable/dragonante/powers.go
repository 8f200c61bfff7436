package dragonante

import (
	"fmt"
	"sort"

	"dragonante-server/pkg/deck"
)

// Power is the effect a card has when it triggers
type Power func(a *Actions, card *deck.Card) error

// powerFor returns the power attached to the variant
func powerFor(v deck.Variant) Power {
	switch v {
	case deck.Black:
		return stealFromPot(2)
	case deck.Blue:
		return bluePower
	case deck.Brass:
		return brassPower
	case deck.Bronze:
		return bronzePower
	case deck.Copper:
		return copperPower
	case deck.Gold:
		return goldPower
	case deck.Green:
		return greenPower
	case deck.Red:
		return redPower
	case deck.Silver:
		return silverPower
	case deck.White:
		return whitePower
	case deck.Archmage:
		return archmagePower
	case deck.Bahamut:
		return bahamutPower
	case deck.Dracolich:
		return dracolichPower
	case deck.Dragonslayer:
		return dragonslayerPower
	case deck.Druid:
		return druidPower
	case deck.Fool:
		return foolPower
	case deck.Priest:
		return priestPower
	case deck.Princess:
		return princessPower
	case deck.Thief:
		return thiefPower
	case deck.Tiamat:
		return tiamatPower
	}

	return nil
}

func hasTag(required deck.Tag) func([]*deck.Card) bool {
	return func(flight []*deck.Card) bool {
		return deck.CountWithTag(flight, required) > 0
	}
}

func stealFromPot(amount int) Power {
	return func(a *Actions, _ *deck.Card) error {
		_, err := a.TransferGold(a.Pot(), amount, a.CurrentPlayer())
		return err
	}
}

// steal 1 gold per evil dragon in your flight, or opponents pay the pot 1 gold per evil dragon in theirs
func bluePower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	evil := deck.CountWithTag(self.Flight(), deck.TagDragon|deck.TagEvil)

	choice, err := a.PresentChoice(self, "Blue dragon power:", []string{
		fmt.Sprintf("Steal %d gold from the stakes", evil),
		"Each opponent pays 1 gold to the stakes for each evil dragon in their flight",
	})
	if err != nil {
		return err
	}

	if choice == 0 {
		_, err := a.TransferGold(a.Pot(), evil, self)
		return err
	}

	for _, opp := range a.Opponents(self) {
		n := deck.CountWithTag(opp.Flight(), deck.TagDragon|deck.TagEvil)
		if n == 0 {
			continue
		}

		if _, err := a.TransferGold(opp, n, a.Pot()); err != nil {
			return err
		}
	}

	return nil
}

// every opponent with a stronger flight pays you 1 gold
func brassPower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	for _, p := range a.PlayersWithFlightStrongerThan(self.FlightStrength()) {
		if _, err := a.TransferGold(p, 1, self); err != nil {
			return err
		}
	}

	return nil
}

// take the two weakest cards from the ante into your hand
func bronzePower(a *Actions, _ *deck.Card) error {
	ante := a.Ante()
	sort.SliceStable(ante, func(i, j int) bool {
		return ante[i].Strength < ante[j].Strength
	})

	for i := 0; i < 2 && i < len(ante); i++ {
		if err := a.TakeFromAnte(a.CurrentPlayer(), ante[i]); err != nil {
			return err
		}
	}

	return nil
}

// replace this card with the top card of the deck; the replacement's power triggers
func copperPower(a *Actions, card *deck.Card) error {
	replacement, err := a.ReplaceFromDeck(a.CurrentPlayer(), card)
	if err != nil || replacement == nil {
		return err
	}

	return a.Trigger(replacement)
}

// draw a card for each good dragon in your flight
func goldPower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	return a.DrawCards(deck.CountWithTag(self.Flight(), deck.TagDragon|deck.TagGood), self)
}

// the player to your left gives you a card of their choice or pays you 5 gold
func greenPower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	left := a.PlayerToLeftOf(self)

	options := []string{fmt.Sprintf("Pay %s 5 gold", self.Name)}
	if left.HandSize() > 0 && self.HandSpace() > 0 {
		options = append(options, fmt.Sprintf("Give %s a card", self.Name))
	}

	choice, err := a.PresentChoice(left, fmt.Sprintf("%s's green dragon demands tribute:", self.Name), options)
	if err != nil {
		return err
	}

	if choice == 0 {
		_, err := a.TransferGold(left, 5, self)
		return err
	}

	return a.GiftCards(left, 1, self, false)
}

// the opponent with the strongest flight pays you 1 gold and gives you a random card
func redPower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	target := a.StrongestFlight(a.Opponents(self)...)
	if target == nil {
		return nil
	}

	if _, err := a.TransferGold(target, 1, self); err != nil {
		return err
	}

	return a.GiftCards(target, 1, self, true)
}

// every player with a good dragon in their flight draws a card
func silverPower(a *Actions, _ *deck.Card) error {
	return a.DrawCards(1, a.PlayersWithFlightMatching(hasTag(deck.TagDragon|deck.TagGood))...)
}

// if any flight has a mortal, steal 3 gold from the stakes
func whitePower(a *Actions, card *deck.Card) error {
	if len(a.PlayersWithFlightMatching(hasTag(deck.TagMortal))) == 0 {
		return nil
	}

	return stealFromPot(3)(a, card)
}

// copy the power of a card in the ante
func archmagePower(a *Actions, card *deck.Card) error {
	candidates := make([]*deck.Card, 0)
	for _, c := range a.Ante() {
		if c.Variant != deck.Archmage && powerFor(c.Variant) != nil {
			candidates = append(candidates, c)
		}
	}

	return copyPower(a, card, "Copy the power of an ante card:", candidates)
}

// copy the power of an evil dragon in any flight
func dracolichPower(a *Actions, card *deck.Card) error {
	candidates := make([]*deck.Card, 0)
	for _, p := range a.Players() {
		for _, c := range p.Flight() {
			if c != card && c.Variant != deck.Dracolich && deck.HasTags(c, deck.TagDragon|deck.TagEvil) {
				candidates = append(candidates, c)
			}
		}
	}

	return copyPower(a, card, "Copy the power of an evil dragon:", candidates)
}

func copyPower(a *Actions, card *deck.Card, prompt string, candidates []*deck.Card) error {
	if len(candidates) == 0 {
		return nil
	}

	choice, err := a.PresentChoice(a.CurrentPlayer(), prompt, cardOptions(candidates))
	if err != nil {
		return err
	}

	return a.TriggerCopy(card, candidates[choice])
}

// every opponent with an evil dragon in their flight pays the stakes 10 gold
func bahamutPower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	for _, opp := range a.Opponents(self) {
		if hasTag(deck.TagDragon | deck.TagEvil)(opp.Flight()) {
			if _, err := a.TransferGold(opp, 10, a.Pot()); err != nil {
				return err
			}
		}
	}

	return nil
}

// every opponent with a good dragon in their flight pays you 10 gold
func tiamatPower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	for _, opp := range a.Opponents(self) {
		if hasTag(deck.TagDragon | deck.TagGood)(opp.Flight()) {
			if _, err := a.TransferGold(opp, 10, self); err != nil {
				return err
			}
		}
	}

	return nil
}

type flightCard struct {
	owner *Player
	card  *deck.Card
}

// discard a dragon weaker than the dragonslayer from an opponent's flight
func dragonslayerPower(a *Actions, card *deck.Card) error {
	self := a.CurrentPlayer()
	targets := make([]flightCard, 0)
	options := make([]string, 0)
	for _, opp := range a.Opponents(self) {
		for _, c := range opp.Flight() {
			if deck.HasTags(c, deck.TagDragon) && c.Strength < card.Strength {
				targets = append(targets, flightCard{owner: opp, card: c})
				options = append(options, fmt.Sprintf("%s's %s", opp.Name, c))
			}
		}
	}

	if len(targets) == 0 {
		return nil
	}

	choice, err := a.PresentChoice(self, "Slay a dragon:", options)
	if err != nil {
		return err
	}

	return a.RemoveFromFlight(targets[choice].owner, targets[choice].card)
}

// the weakest flight wins this gambit
func druidPower(a *Actions, _ *deck.Card) error {
	return a.OverrideWinnerRule(WeakestFlightWins)
}

// pay 1 gold to the stakes, then draw a card for each player with a stronger flight
func foolPower(a *Actions, _ *deck.Card) error {
	self := a.CurrentPlayer()
	if _, err := a.TransferGold(self, 1, a.Pot()); err != nil {
		return err
	}

	return a.DrawCards(len(a.PlayersWithFlightStrongerThan(self.FlightStrength())), self)
}

// you lead the next round
func priestPower(a *Actions, _ *deck.Card) error {
	return a.OverrideNextLeader(a.CurrentPlayer().Seat())
}

// steal 1 gold from the stakes for each good dragon in every flight
func princessPower(a *Actions, card *deck.Card) error {
	n := 0
	for _, p := range a.Players() {
		n += deck.CountWithTag(p.Flight(), deck.TagDragon|deck.TagGood)
	}

	return stealFromPot(n)(a, card)
}

// steal 7 gold from the stakes, then discard a card
func thiefPower(a *Actions, card *deck.Card) error {
	if err := stealFromPot(7)(a, card); err != nil {
		return err
	}

	return a.DiscardCards(a.CurrentPlayer(), 1)
}
