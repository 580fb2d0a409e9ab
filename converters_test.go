package cardquery

import (
	"testing"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/domain/search/result"
)

func TestToInternalCard_RoundTrip(t *testing.T) {
	in := Card{
		ID: "c1", Name: "Drowned Oracle", Cost: 4, Category: Creature, Rarity: Legendary,
		Elements: []Element{Water, Shadow}, Keywords: []string{"Ward"}, Strength: f64(3),
		Artist: "Ilo Brandt", Set: "Tides", Flavor: "Tide.", Price: f64(12.5),
		Description: "Look at the top card.",
	}
	ic, err := toInternalCard(in)
	if err != nil {
		t.Fatalf("toInternalCard: %v", err)
	}
	out := fromInternalCard(ic)

	if out.ID != in.ID || out.Name != in.Name || out.Cost != in.Cost || out.Description != in.Description {
		t.Errorf("scalar fields differ: %+v", out)
	}
	if out.Category != Creature || out.Rarity != Legendary {
		t.Errorf("closed sets = %s/%s", out.Category, out.Rarity)
	}
	if len(out.Elements) != 2 || out.Elements[1] != Shadow {
		t.Errorf("elements = %v", out.Elements)
	}
	if out.Strength == nil || *out.Strength != 3 || out.Price == nil || *out.Price != 12.5 {
		t.Errorf("optional numbers = %v/%v", out.Strength, out.Price)
	}
	if out.Artist != "Ilo Brandt" || out.Set != "Tides" || out.Flavor != "Tide." {
		t.Errorf("text fields = %+v", out)
	}
}

func TestToInternalCard_Invalid(t *testing.T) {
	tests := []Card{
		{Name: "No ID", Category: Spell, Rarity: Common},
		{ID: "x", Name: "Bad Rarity", Category: Spell, Rarity: "mythic"},
		{ID: "x", Name: "Spell With Strength", Category: Spell, Rarity: Common, Strength: f64(1)},
		{ID: "x", Name: "Void", Category: Spell, Rarity: Common, Elements: []Element{"void"}},
	}
	for _, c := range tests {
		if _, err := toInternalCard(c); err == nil {
			t.Errorf("expected error for %q", c.Name)
		}
	}
}

func TestFromInternalResult(t *testing.T) {
	c := card.MustNew(card.Params{ID: "a", Name: "A", Category: card.Spell, Rarity: card.Common})
	r := result.New([]card.Card{c}, 7, 0, []string{`"A"`}, []string{"w"}, 3)

	got := fromInternalResult(&r)
	if len(got.Cards) != 1 || got.Cards[0].ID != "a" || got.Total != 7 || got.Generation != 3 {
		t.Errorf("result = %+v", got)
	}
	if got.Suggestions[0] != `"A"` || got.Warnings[0] != "w" {
		t.Errorf("messages = %v / %v", got.Suggestions, got.Warnings)
	}
}

func TestPreferences_ZeroValueIsDefault(t *testing.T) {
	var p Preferences
	if p.SortKey() != SortName || p.Direction() != Asc || p.PageSize() != 20 || p.Page() != 1 {
		t.Errorf("zero preferences = %s %s %d %d", p.SortKey(), p.Direction(), p.PageSize(), p.Page())
	}
	q := p.WithSort(SortPrice, Desc).WithPage(3)
	if q.SortKey() != SortPrice || q.Direction() != Desc || q.Page() != 3 || q.PageSize() != 20 {
		t.Errorf("modified preferences = %s %s %d %d", q.SortKey(), q.Direction(), q.PageSize(), q.Page())
	}
}

func TestFilters_SettersDoNotMutate(t *testing.T) {
	var f Filters
	g := f.WithName("imp").WithCost(OpGTE, "2")
	if !f.IsEmpty() {
		t.Error("receiver mutated")
	}
	if g.IsEmpty() {
		t.Error("expected active filters")
	}
	if !f.WithCost(OpGTE, "-").IsEmpty() {
		t.Error("partial numeric input should stay inactive")
	}
}
