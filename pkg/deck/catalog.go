package deck

// dragonStrengths are the six fixed strengths each dragon colour comes in
var dragonStrengths = map[Variant][6]int{
	Black:  {1, 2, 3, 5, 7, 9},
	Blue:   {1, 2, 4, 7, 9, 11},
	Brass:  {1, 2, 4, 5, 7, 9},
	Bronze: {1, 3, 6, 7, 9, 11},
	Copper: {1, 3, 5, 7, 8, 10},
	Gold:   {2, 4, 6, 9, 11, 13},
	Green:  {1, 2, 4, 6, 8, 10},
	Red:    {2, 3, 5, 8, 10, 12},
	Silver: {2, 3, 6, 8, 10, 12},
	White:  {1, 2, 3, 4, 6, 8},
}

// dragonOrder keeps Catalog() deterministic
var dragonOrder = []Variant{Black, Blue, Brass, Bronze, Copper, Gold, Green, Red, Silver, White}

var dragonTags = map[Variant]Tag{
	Black:  TagDragon | TagEvil | TagBlack,
	Blue:   TagDragon | TagEvil | TagBlue,
	Green:  TagDragon | TagEvil | TagGreen,
	Red:    TagDragon | TagEvil | TagRed,
	White:  TagDragon | TagEvil | TagWhite,
	Brass:  TagDragon | TagGood | TagBrass,
	Bronze: TagDragon | TagGood | TagBronze,
	Copper: TagDragon | TagGood | TagCopper,
	Gold:   TagDragon | TagGood | TagGold,
	Silver: TagDragon | TagGood | TagSilver,
}

type courtCard struct {
	variant  Variant
	strength int
	tags     Tag
}

// court cards are singletons
var court = []courtCard{
	{Archmage, 9, TagMortal},
	{Bahamut, 13, TagDragon | TagGood | TagGod},
	{Dracolich, 10, TagDragon | TagEvil | TagUndead},
	{Dragonslayer, 8, TagMortal},
	{Druid, 6, TagMortal},
	{Fool, 3, TagMortal},
	{Priest, 5, TagMortal},
	{Princess, 4, TagMortal},
	{Thief, 7, TagMortal},
	{Tiamat, 13, TagDragon | TagEvil | TagGod},
}

// CatalogSize is the number of cards Catalog() returns
const CatalogSize = 70

// Catalog returns a fresh set of every card in the game
// Each call returns new instances with IDs 1..CatalogSize
func Catalog() []*Card {
	cards := make([]*Card, 0, CatalogSize)
	add := func(v Variant, strength int, tags Tag) {
		cards = append(cards, &Card{
			ID:       len(cards) + 1,
			Variant:  v,
			Strength: strength,
			Tags:     tags,
		})
	}

	for _, c := range court {
		add(c.variant, c.strength, c.tags)
	}

	for _, v := range dragonOrder {
		for _, strength := range dragonStrengths[v] {
			add(v, strength, dragonTags[v])
		}
	}

	return cards
}

// NewCard builds a card of the given variant outside of the catalog
// It is intended for tests that need a specific card; strength is ignored for court cards
func NewCard(id int, v Variant, strength int) *Card {
	for _, c := range court {
		if c.variant == v {
			return &Card{ID: id, Variant: v, Strength: c.strength, Tags: c.tags}
		}
	}

	tags, ok := dragonTags[v]
	if !ok {
		panic("unknown variant: " + string(v))
	}

	return &Card{ID: id, Variant: v, Strength: strength, Tags: tags}
}
