package card

import (
	"fmt"
	"math"
	"strings"

	"github.com/kailas-cloud/cardquery/internal/domain"
)

// Limits for card text fields.
const (
	MaxIDLength   = 128
	MaxNameLength = 256
)

// Params carries the raw attributes of a card before validation.
// Strength and Price are optional; nil means absent.
type Params struct {
	ID          string
	Name        string
	Cost        float64
	Category    Category
	Description string
	Rarity      Rarity
	Elements    []Element
	Keywords    []string
	Strength    *float64
	Artist      string
	Set         string
	Flavor      string
	Price       *float64
}

// Card is the unit of search (immutable value object).
type Card struct {
	id          string
	name        string
	cost        float64
	category    Category
	description string
	rarity      Rarity
	elements    []Element
	keywords    []string
	strength    float64
	hasStrength bool
	artist      string
	set         string
	flavor      string
	price       float64
	hasPrice    bool
}

// New validates and creates a Card.
// Strength must be present if and only if the category is creature-like.
// Elements are deduplicated keeping first-seen order.
func New(p Params) (Card, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return Card{}, fmt.Errorf("%w: id is required", domain.ErrInvalidCard)
	}
	if len(id) > MaxIDLength {
		return Card{}, fmt.Errorf("%w: id too long (max %d)", domain.ErrInvalidCard, MaxIDLength)
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Card{}, fmt.Errorf("%w: card %q: name is required", domain.ErrInvalidCard, id)
	}
	if len(name) > MaxNameLength {
		return Card{}, fmt.Errorf("%w: card %q: name too long (max %d)", domain.ErrInvalidCard, id, MaxNameLength)
	}
	if !isFinite(p.Cost) {
		return Card{}, fmt.Errorf("%w: card %q: cost must be a finite number", domain.ErrInvalidCard, id)
	}
	if !p.Category.IsValid() {
		return Card{}, fmt.Errorf("%w: card %q: unknown category %q", domain.ErrInvalidCard, id, p.Category)
	}
	if !p.Rarity.IsValid() {
		return Card{}, fmt.Errorf("%w: card %q: unknown rarity %q", domain.ErrInvalidCard, id, p.Rarity)
	}
	if p.Category.IsCreatureLike() && p.Strength == nil {
		return Card{}, fmt.Errorf("%w: card %q: creature requires strength", domain.ErrInvalidCard, id)
	}
	if !p.Category.IsCreatureLike() && p.Strength != nil {
		return Card{}, fmt.Errorf("%w: card %q: only creatures have strength", domain.ErrInvalidCard, id)
	}

	els := make([]Element, 0, len(p.Elements))
	seen := make(map[Element]struct{}, len(p.Elements))
	for _, raw := range p.Elements {
		e, ok := ParseElement(string(raw))
		if !ok {
			return Card{}, fmt.Errorf("%w: card %q: unknown element %q", domain.ErrInvalidCard, id, raw)
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		els = append(els, e)
	}

	c := Card{
		id:          id,
		name:        name,
		cost:        p.Cost,
		category:    p.Category,
		description: p.Description,
		rarity:      p.Rarity,
		elements:    els,
		keywords:    append([]string(nil), p.Keywords...),
		artist:      p.Artist,
		set:         p.Set,
		flavor:      p.Flavor,
	}
	if p.Strength != nil {
		if !isFinite(*p.Strength) {
			return Card{}, fmt.Errorf("%w: card %q: strength must be a finite number", domain.ErrInvalidCard, id)
		}
		c.strength, c.hasStrength = *p.Strength, true
	}
	if p.Price != nil {
		if !isFinite(*p.Price) || *p.Price < 0 {
			return Card{}, fmt.Errorf("%w: card %q: price must be a non-negative number", domain.ErrInvalidCard, id)
		}
		c.price, c.hasPrice = *p.Price, true
	}
	return c, nil
}

// MustNew is New for static fixtures; it panics on invalid params.
func MustNew(p Params) Card {
	c, err := New(p)
	if err != nil {
		panic(err)
	}
	return c
}

// ID returns the stable card identifier.
func (c *Card) ID() string { return c.id }

// Name returns the card name.
func (c *Card) Name() string { return c.name }

// Cost returns the primary cost.
func (c *Card) Cost() float64 { return c.cost }

// Category returns the card shape.
func (c *Card) Category() Category { return c.category }

// Description returns the rules text.
func (c *Card) Description() string { return c.description }

// Rarity returns the card rarity.
func (c *Card) Rarity() Rarity { return c.rarity }

// Elements returns a copy of the element tags.
func (c *Card) Elements() []Element { return append([]Element(nil), c.elements...) }

// Keywords returns a copy of the keyword abilities.
func (c *Card) Keywords() []string { return append([]string(nil), c.keywords...) }

// Strength returns the strength and whether the card has one.
func (c *Card) Strength() (float64, bool) { return c.strength, c.hasStrength }

// Artist returns the artist name ("" when absent).
func (c *Card) Artist() string { return c.artist }

// Set returns the set/edition name ("" when absent).
func (c *Card) Set() string { return c.set }

// Flavor returns the flavor text ("" when absent).
func (c *Card) Flavor() string { return c.flavor }

// Price returns the price and whether the card has one.
func (c *Card) Price() (float64, bool) { return c.price, c.hasPrice }

// Params returns the card attributes, suitable for serialization.
func (c *Card) Params() Params {
	p := Params{
		ID:          c.id,
		Name:        c.name,
		Cost:        c.cost,
		Category:    c.category,
		Description: c.description,
		Rarity:      c.rarity,
		Elements:    c.Elements(),
		Keywords:    c.Keywords(),
		Artist:      c.artist,
		Set:         c.set,
		Flavor:      c.flavor,
	}
	if c.hasStrength {
		s := c.strength
		p.Strength = &s
	}
	if c.hasPrice {
		v := c.price
		p.Price = &v
	}
	return p
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
