package card

import "strings"

// Category is the card shape.
type Category string

// Category constants. Only Creature carries a strength value.
const (
	Creature    Category = "creature"
	Spell       Category = "spell"
	Artifact    Category = "artifact"
	Enchantment Category = "enchantment"
)

var categories = []Category{Creature, Spell, Artifact, Enchantment}

// Categories returns every known category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// IsValid checks if the category is one of the supported values.
func (c Category) IsValid() bool {
	return c == Creature || c == Spell || c == Artifact || c == Enchantment
}

// IsCreatureLike reports whether cards of this category have a strength.
func (c Category) IsCreatureLike() bool { return c == Creature }
