package deck

import (
	"fmt"
	"strings"
)

// Variant identifies the kind of card (e.g., a red dragon or the Druid)
type Variant string

// dragon variants
const (
	Black  Variant = "black"
	Blue   Variant = "blue"
	Green  Variant = "green"
	Red    Variant = "red"
	White  Variant = "white"
	Brass  Variant = "brass"
	Bronze Variant = "bronze"
	Copper Variant = "copper"
	Gold   Variant = "gold"
	Silver Variant = "silver"
)

// court variants
const (
	Archmage     Variant = "archmage"
	Bahamut      Variant = "bahamut"
	Dracolich    Variant = "dracolich"
	Dragonslayer Variant = "dragonslayer"
	Druid        Variant = "druid"
	Fool         Variant = "fool"
	Priest       Variant = "priest"
	Princess     Variant = "princess"
	Thief        Variant = "thief"
	Tiamat       Variant = "tiamat"
)

// Tag is a category a card belongs to
// Tags are combined as a bit set
type Tag uint32

// tag constants
const (
	TagDragon Tag = 1 << iota
	TagMortal
	TagGood
	TagEvil
	TagGod
	TagUndead
	TagBlack
	TagBlue
	TagGreen
	TagRed
	TagWhite
	TagBrass
	TagBronze
	TagCopper
	TagGold
	TagSilver
)

var tagNames = []struct {
	tag  Tag
	name string
}{
	{TagDragon, "dragon"},
	{TagMortal, "mortal"},
	{TagGood, "good"},
	{TagEvil, "evil"},
	{TagGod, "god"},
	{TagUndead, "undead"},
	{TagBlack, "black"},
	{TagBlue, "blue"},
	{TagGreen, "green"},
	{TagRed, "red"},
	{TagWhite, "white"},
	{TagBrass, "brass"},
	{TagBronze, "bronze"},
	{TagCopper, "copper"},
	{TagGold, "gold"},
	{TagSilver, "silver"},
}

// String returns the tag names joined by a comma
func (t Tag) String() string {
	names := make([]string, 0)
	for _, tn := range tagNames {
		if t&tn.tag != 0 {
			names = append(names, tn.name)
		}
	}

	return strings.Join(names, ",")
}

// Card is a single card instance
// Two copies of the same variant and strength are still distinct cards; use the ID to tell them apart
type Card struct {
	ID       int     `json:"id"`
	Variant  Variant `json:"variant"`
	Strength int     `json:"strength"`
	Tags     Tag     `json:"tags"`
}

func (c *Card) String() string {
	name := string(c.Variant)
	if c.Tags&TagDragon != 0 && c.Tags&(TagGod|TagUndead) == 0 {
		name += " dragon"
	}

	return fmt.Sprintf("%s%s %d", strings.ToUpper(name[:1]), name[1:], c.Strength)
}

// HasTags returns true if the card carries every tag in required
func HasTags(card *Card, required Tag) bool {
	return card != nil && card.Tags&required == required
}

// CountWithTag returns how many cards carry every tag in required
func CountWithTag(cards []*Card, required Tag) int {
	n := 0
	for _, card := range cards {
		if HasTags(card, required) {
			n++
		}
	}

	return n
}

// TotalStrength sums the strength of the cards
func TotalStrength(cards []*Card) int {
	sum := 0
	for _, card := range cards {
		sum += card.Strength
	}

	return sum
}

// CardsToString returns the cards as a comma separated list
func CardsToString(cards []*Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, ", ")
}
