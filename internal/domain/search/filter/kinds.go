package filter

import (
	"strconv"
	"strings"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// Text is a case-insensitive substring filter. The zero value is inactive.
type Text struct {
	value string
	lower string
}

// NewText creates a text filter. Surrounding whitespace is ignored.
func NewText(value string) Text {
	v := strings.TrimSpace(value)
	return Text{value: v, lower: strings.ToLower(v)}
}

// Value returns the trimmed filter text.
func (t Text) Value() string { return t.value }

// IsActive reports whether the filter constrains results.
func (t Text) IsActive() bool { return t.value != "" }

// Match reports whether an already lower-cased field contains the filter text.
func (t Text) Match(lowered string) bool {
	return strings.Contains(lowered, t.lower)
}

// MatchAny reports whether any lower-cased value contains the filter text.
func (t Text) MatchAny(lowered []string) bool {
	for _, v := range lowered {
		if strings.Contains(v, t.lower) {
			return true
		}
	}
	return false
}

// Numeric pairs a comparison operator with a raw value. The raw value is kept
// as typed so partial input ("", "-", "1.") simply leaves the filter inactive.
type Numeric struct {
	op    Op
	raw   string
	value float64
	ok    bool
}

// NewNumeric creates a numeric comparison filter. An invalid operator or an
// unparseable value yields an inactive filter.
func NewNumeric(op Op, raw string) Numeric {
	if op == "" {
		op = OpEQ
	}
	n := Numeric{op: op, raw: strings.TrimSpace(raw)}
	if !op.IsValid() || n.raw == "" {
		return n
	}
	v, err := strconv.ParseFloat(n.raw, 64)
	if err != nil || !isFinite(v) {
		return n
	}
	n.value, n.ok = v, true
	return n
}

// Op returns the comparison operator.
func (n Numeric) Op() Op { return n.op }

// Value returns the parsed value and whether it parsed.
func (n Numeric) Value() (float64, bool) { return n.value, n.ok }

// IsActive reports whether the filter constrains results.
func (n Numeric) IsActive() bool { return n.ok }

// Match evaluates "v op value".
func (n Numeric) Match(v float64) bool { return n.op.Compare(v, n.value) }

// ElementMode selects how the element selection is compared with a card's elements.
type ElementMode string

// Element comparison modes.
const (
	// Exactly requires identical sets.
	Exactly ElementMode = "exactly"
	// Including requires the selection to be a subset of the card's elements.
	Including ElementMode = "including"
	// AtMost requires the card's elements to be a subset of the selection.
	AtMost ElementMode = "at_most"
	// Excluding requires no shared element.
	Excluding ElementMode = "excluding"
)

// IsValid checks if the mode is one of the supported values.
func (m ElementMode) IsValid() bool {
	return m == Exactly || m == Including || m == AtMost || m == Excluding
}

// Elements is the element selection filter. An empty selection is inactive.
type Elements struct {
	selected card.ElementSet
	mode     ElementMode
}

// NewElements creates an element filter. An unknown mode falls back to Including.
func NewElements(mode ElementMode, selected ...card.Element) Elements {
	if !mode.IsValid() {
		mode = Including
	}
	return Elements{selected: card.NewElementSet(selected...), mode: mode}
}

// Mode returns the comparison mode.
func (e Elements) Mode() ElementMode { return e.mode }

// Selected returns the selected elements in a stable order.
func (e Elements) Selected() []card.Element {
	out := make([]card.Element, 0, len(e.selected))
	for _, el := range orderedElements {
		if e.selected.Has(el) {
			out = append(out, el)
		}
	}
	return out
}

// IsActive reports whether the filter constrains results.
func (e Elements) IsActive() bool { return len(e.selected) > 0 }

// Match compares the card's element set with the selection.
func (e Elements) Match(cardSet card.ElementSet) bool {
	switch e.mode {
	case Exactly:
		return cardSet.Equal(e.selected)
	case Including:
		return e.selected.SubsetOf(cardSet)
	case AtMost:
		return cardSet.SubsetOf(e.selected)
	case Excluding:
		return !cardSet.Intersects(e.selected)
	}
	return false
}

var orderedElements = []card.Element{
	card.Fire, card.Water, card.Earth, card.Air, card.Light, card.Shadow,
}

// MultiSelect is an OR-within-field selection. An empty selection is inactive.
type MultiSelect[T comparable] struct {
	order    []T
	selected map[T]struct{}
}

// NewMultiSelect creates a selection; duplicates collapse.
func NewMultiSelect[T comparable](values ...T) MultiSelect[T] {
	m := MultiSelect[T]{selected: make(map[T]struct{}, len(values))}
	for _, v := range values {
		if _, dup := m.selected[v]; dup {
			continue
		}
		m.selected[v] = struct{}{}
		m.order = append(m.order, v)
	}
	return m
}

// Values returns the selection in insertion order.
func (m MultiSelect[T]) Values() []T { return append([]T(nil), m.order...) }

// IsActive reports whether the filter constrains results.
func (m MultiSelect[T]) IsActive() bool { return len(m.selected) > 0 }

// Match reports whether v is selected.
func (m MultiSelect[T]) Match(v T) bool {
	_, ok := m.selected[v]
	return ok
}

// Range is a closed interval with optional open ends.
type Range struct {
	min *float64
	max *float64
}

// NewRange creates a range. nil bounds are open; min > max matches nothing.
func NewRange(lo, hi *float64) Range {
	r := Range{}
	if lo != nil && isFinite(*lo) {
		v := *lo
		r.min = &v
	}
	if hi != nil && isFinite(*hi) {
		v := *hi
		r.max = &v
	}
	return r
}

// Min returns the lower bound (nil when open).
func (r Range) Min() *float64 { return r.min }

// Max returns the upper bound (nil when open).
func (r Range) Max() *float64 { return r.max }

// IsActive reports whether the filter constrains results.
func (r Range) IsActive() bool { return r.min != nil || r.max != nil }

// Match reports whether v lies in the interval. Absent values never match.
func (r Range) Match(v float64, present bool) bool {
	if !present {
		return false
	}
	if r.min != nil && v < *r.min {
		return false
	}
	if r.max != nil && v > *r.max {
		return false
	}
	return true
}
