package card

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/cardquery/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func creatureParams() Params {
	return Params{
		ID:       "c1",
		Name:     "Fire Imp",
		Cost:     2,
		Category: Creature,
		Rarity:   Common,
		Elements: []Element{Fire},
		Keywords: []string{"Haste"},
		Strength: floatPtr(2),
	}
}

func TestNew_ValidCreature(t *testing.T) {
	c, err := New(creatureParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID() != "c1" || c.Name() != "Fire Imp" {
		t.Errorf("id/name = %q/%q", c.ID(), c.Name())
	}
	s, ok := c.Strength()
	if !ok || s != 2 {
		t.Errorf("Strength() = %v, %v", s, ok)
	}
	if _, ok := c.Price(); ok {
		t.Error("price should be absent")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
		want   string
	}{
		{"empty id", func(p *Params) { p.ID = " " }, "id is required"},
		{"empty name", func(p *Params) { p.Name = "" }, "name is required"},
		{"bad category", func(p *Params) { p.Category = "planet" }, "unknown category"},
		{"bad rarity", func(p *Params) { p.Rarity = "mythic" }, "unknown rarity"},
		{"creature without strength", func(p *Params) { p.Strength = nil }, "requires strength"},
		{"spell with strength", func(p *Params) { p.Category = Spell }, "only creatures"},
		{"bad element", func(p *Params) { p.Elements = []Element{"void"} }, "unknown element"},
		{"negative price", func(p *Params) { p.Price = floatPtr(-1) }, "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := creatureParams()
			tt.mutate(&p)
			_, err := New(p)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidCard) {
				t.Errorf("expected ErrInvalidCard, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestNew_DeduplicatesElements(t *testing.T) {
	p := creatureParams()
	p.Elements = []Element{"Fire", "water", "fire"}
	c, err := New(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	els := c.Elements()
	if len(els) != 2 || els[0] != Fire || els[1] != Water {
		t.Errorf("Elements() = %v, want [fire water]", els)
	}
}

func TestCard_AccessorsReturnCopies(t *testing.T) {
	c := MustNew(creatureParams())
	kw := c.Keywords()
	kw[0] = "mutated"
	if c.Keywords()[0] != "Haste" {
		t.Error("Keywords() exposed internal slice")
	}
}

func TestCard_ParamsRoundTrip(t *testing.T) {
	p := creatureParams()
	p.Price = floatPtr(1.5)
	c := MustNew(p)
	again, err := New(c.Params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := again.Strength(); s != 2 {
		t.Errorf("strength = %v", s)
	}
	if v, ok := again.Price(); !ok || v != 1.5 {
		t.Errorf("price = %v, %v", v, ok)
	}
}

func TestRarity_Rank(t *testing.T) {
	prev := 0
	for _, r := range Rarities() {
		if r.Rank() <= prev {
			t.Errorf("rank of %s = %d, not above %d", r, r.Rank(), prev)
		}
		prev = r.Rank()
	}
	if Rarity("mythic").Rank() != 0 {
		t.Error("unknown rarity should rank 0")
	}
}

func TestElementSet_Relations(t *testing.T) {
	fw := NewElementSet(Fire, Water)
	f := NewElementSet(Fire)
	empty := NewElementSet()

	if !f.SubsetOf(fw) || fw.SubsetOf(f) {
		t.Error("SubsetOf mismatch")
	}
	if !empty.SubsetOf(f) {
		t.Error("empty set is a subset of everything")
	}
	if !fw.Equal(NewElementSet(Water, Fire, Fire)) {
		t.Error("Equal should ignore order and duplicates")
	}
	if !fw.Intersects(f) || empty.Intersects(fw) {
		t.Error("Intersects mismatch")
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory(" Creature "); !ok || c != Creature {
		t.Errorf("ParseCategory = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("planet"); ok {
		t.Error("expected unknown category")
	}
}
