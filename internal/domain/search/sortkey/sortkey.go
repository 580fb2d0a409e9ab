package sortkey

import "strings"

// Key is the attribute results are ordered by.
type Key string

// Sort keys.
const (
	Name     Key = "name"
	Cost     Key = "cost"
	Rarity   Key = "rarity"
	Category Key = "category"
	Strength Key = "strength"
	Set      Key = "set"
	Price    Key = "price"
)

// IsValid checks if the key is one of the supported values.
func (k Key) IsValid() bool {
	switch k {
	case Name, Cost, Rarity, Category, Strength, Set, Price:
		return true
	}
	return false
}

// Parse resolves a case-insensitive key name.
func Parse(s string) (Key, bool) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	return k, k.IsValid()
}

// Direction is the sort direction.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// IsValid checks if the direction is one of the supported values.
func (d Direction) IsValid() bool { return d == Asc || d == Desc }

// ParseDirection resolves a case-insensitive direction name.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	return d, d.IsValid()
}
