package util

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var adjectives = []string{
	"Ancient", "Young", "Scaled", "Gilded", "Smoldering", "Frozen", "Venomous", "Thundering", "Shadowed", "Gleaming",
	"Hoarding", "Sleeping", "Roaring", "Winged", "Horned", "Crimson", "Azure", "Emerald", "Ivory", "Ebony",
	"Brazen", "Copper", "Silver", "Golden", "Wily", "Greedy", "Patient", "Clever", "Grim", "Fearless",
}

var creatures = []string{
	"Wyrm", "Drake", "Wyvern", "Hatchling", "Basilisk", "Griffon", "Kobold", "Knight", "Wizard", "Bard",
	"Rogue", "Cleric", "Ranger", "Paladin", "Dwarf", "Elf", "Halfling", "Gnome", "Sorcerer", "Warlock",
	"Squire", "Minstrel", "Sage", "Hermit", "Treasurer",
}

var (
	randomLock sync.Mutex
	random     = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec
)

// GetRandomName returns a random name by combining an adjective with a creature
func GetRandomName() string {
	randomLock.Lock()
	defer randomLock.Unlock()

	adjectivesIndex := random.Intn(len(adjectives))
	creaturesIndex := random.Intn(len(creatures))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], creatures[creaturesIndex])
}
