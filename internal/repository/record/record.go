// Package record is the persisted shape of a card, shared by the file and
// catalog sources. JSON and YAML use the same field names.
package record

import (
	"fmt"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// Card is the serializable form of card.Card.
type Card struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Cost        float64  `json:"cost" yaml:"cost"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Rarity      string   `json:"rarity" yaml:"rarity"`
	Elements    []string `json:"elements,omitempty" yaml:"elements,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Strength    *float64 `json:"strength,omitempty" yaml:"strength,omitempty"`
	Artist      string   `json:"artist,omitempty" yaml:"artist,omitempty"`
	Set         string   `json:"set,omitempty" yaml:"set,omitempty"`
	Flavor      string   `json:"flavor,omitempty" yaml:"flavor,omitempty"`
	Price       *float64 `json:"price,omitempty" yaml:"price,omitempty"`
}

// FromCard converts a domain card.
func FromCard(c card.Card) Card {
	p := c.Params()
	r := Card{
		ID:          p.ID,
		Name:        p.Name,
		Cost:        p.Cost,
		Category:    string(p.Category),
		Description: p.Description,
		Rarity:      string(p.Rarity),
		Keywords:    p.Keywords,
		Strength:    p.Strength,
		Artist:      p.Artist,
		Set:         p.Set,
		Flavor:      p.Flavor,
		Price:       p.Price,
	}
	for _, e := range p.Elements {
		r.Elements = append(r.Elements, string(e))
	}
	return r
}

// ToCard validates the record and converts it to a domain card.
// Category, rarity and element names are case-insensitive.
func (r Card) ToCard() (card.Card, error) {
	p := card.Params{
		ID:          r.ID,
		Name:        r.Name,
		Cost:        r.Cost,
		Category:    card.Category(r.Category),
		Description: r.Description,
		Rarity:      card.Rarity(r.Rarity),
		Keywords:    r.Keywords,
		Strength:    r.Strength,
		Artist:      r.Artist,
		Set:         r.Set,
		Flavor:      r.Flavor,
		Price:       r.Price,
	}
	if c, ok := card.ParseCategory(r.Category); ok {
		p.Category = c
	}
	if rr, ok := card.ParseRarity(r.Rarity); ok {
		p.Rarity = rr
	}
	for _, e := range r.Elements {
		p.Elements = append(p.Elements, card.Element(e))
	}
	return card.New(p)
}

// ToCards converts records in order, failing on the first invalid one.
func ToCards(records []Card) ([]card.Card, error) {
	out := make([]card.Card, 0, len(records))
	for i, r := range records {
		c, err := r.ToCard()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// FromCards converts domain cards in order.
func FromCards(cards []card.Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = FromCard(c)
	}
	return out
}
