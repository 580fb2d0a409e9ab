package card

import "strings"

// Rarity is an ordered card rarity.
type Rarity string

// Rarity constants, lowest first.
const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

var rarityRank = map[Rarity]int{
	Common:    1,
	Uncommon:  2,
	Rare:      3,
	Epic:      4,
	Legendary: 5,
}

// Rarities returns every rarity in ascending rank order.
func Rarities() []Rarity {
	return []Rarity{Common, Uncommon, Rare, Epic, Legendary}
}

// ParseRarity resolves a case-insensitive rarity name.
func ParseRarity(s string) (Rarity, bool) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// IsValid checks if the rarity is one of the supported values.
func (r Rarity) IsValid() bool {
	_, ok := rarityRank[r]
	return ok
}

// Rank returns the sort rank (1 = common). Unknown rarities rank 0.
func (r Rarity) Rank() int { return rarityRank[r] }
