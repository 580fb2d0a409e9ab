package card

import "strings"

// Element is an element/color tag.
type Element string

// Element constants.
const (
	Fire   Element = "fire"
	Water  Element = "water"
	Earth  Element = "earth"
	Air    Element = "air"
	Light  Element = "light"
	Shadow Element = "shadow"
)

var elements = map[Element]struct{}{
	Fire: {}, Water: {}, Earth: {}, Air: {}, Light: {}, Shadow: {},
}

// ParseElement resolves a case-insensitive element name.
func ParseElement(s string) (Element, bool) {
	e := Element(strings.ToLower(strings.TrimSpace(s)))
	_, ok := elements[e]
	return e, ok
}

// ElementSet is an unordered set of elements.
type ElementSet map[Element]struct{}

// NewElementSet builds a set from a list; duplicates collapse.
func NewElementSet(es ...Element) ElementSet {
	s := make(ElementSet, len(es))
	for _, e := range es {
		s[e] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s ElementSet) Has(e Element) bool {
	_, ok := s[e]
	return ok
}

// SubsetOf reports whether every element of s is in other.
func (s ElementSet) SubsetOf(other ElementSet) bool {
	for e := range s {
		if !other.Has(e) {
			return false
		}
	}
	return true
}

// Equal reports set equality.
func (s ElementSet) Equal(other ElementSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Intersects reports whether the sets share at least one element.
func (s ElementSet) Intersects(other ElementSet) bool {
	for e := range s {
		if other.Has(e) {
			return true
		}
	}
	return false
}
