// Package index derives the lookup structures the search pipeline reads.
//
// A Snapshot is immutable once built. Corpus replacement builds a new
// snapshot and swaps it into a Holder, so a query that loaded a snapshot
// never observes a partial rebuild.
package index

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kailas-cloud/cardquery/internal/domain/card"
)

// Doc is an indexed card with its searchable fields lower-cased once at build time.
type Doc struct {
	Card        card.Card
	Name        string
	Description string
	Category    string
	Rarity      string
	Artist      string
	Set         string
	Flavor      string
	Keywords    []string
	Elements    []string
	ElementSet  card.ElementSet
}

// Snapshot is one generation of the index.
type Snapshot struct {
	generation uint64
	docs       []Doc
	byName     map[string]int
	tokens     map[string]map[string]struct{}
	positions  map[string][]int
	vocabulary []string
	names      []string
	keywords   []string
}

// Empty returns the snapshot of an unbuilt index.
func Empty() *Snapshot {
	return Build(nil)
}

// Build indexes the cards. The input slice is copied; cards keep their order.
func Build(cards []card.Card) *Snapshot {
	s := &Snapshot{
		docs:      make([]Doc, len(cards)),
		byName:    make(map[string]int, len(cards)),
		tokens:    make(map[string]map[string]struct{}),
		positions: make(map[string][]int, len(cards)),
	}
	seenNames := make(map[string]struct{}, len(cards))
	seenKeywords := make(map[string]struct{})

	for i := range cards {
		c := cards[i]
		d := newDoc(c)
		s.docs[i] = d

		s.byName[d.Name] = i
		s.positions[c.ID()] = append(s.positions[c.ID()], i)

		if _, ok := seenNames[d.Name]; !ok {
			seenNames[d.Name] = struct{}{}
			s.names = append(s.names, c.Name())
		}
		for _, kw := range c.Keywords() {
			k := strings.ToLower(strings.TrimSpace(kw))
			if k == "" {
				continue
			}
			if _, ok := seenKeywords[k]; !ok {
				seenKeywords[k] = struct{}{}
				s.keywords = append(s.keywords, strings.TrimSpace(kw))
			}
		}

		for _, field := range d.searchable() {
			for _, w := range Words(field) {
				ids, ok := s.tokens[w]
				if !ok {
					ids = make(map[string]struct{})
					s.tokens[w] = ids
				}
				ids[c.ID()] = struct{}{}
			}
		}
	}

	s.vocabulary = make([]string, 0, len(s.tokens))
	for w := range s.tokens {
		s.vocabulary = append(s.vocabulary, w)
	}
	sort.Strings(s.vocabulary)
	return s
}

func newDoc(c card.Card) Doc {
	d := Doc{
		Card:        c,
		Name:        strings.ToLower(c.Name()),
		Description: strings.ToLower(c.Description()),
		Category:    string(c.Category()),
		Rarity:      string(c.Rarity()),
		Artist:      strings.ToLower(c.Artist()),
		Set:         strings.ToLower(c.Set()),
		Flavor:      strings.ToLower(c.Flavor()),
	}
	els := c.Elements()
	d.ElementSet = card.NewElementSet(els...)
	d.Elements = make([]string, len(els))
	for i, e := range els {
		d.Elements[i] = string(e)
	}
	kws := c.Keywords()
	d.Keywords = make([]string, len(kws))
	for i, k := range kws {
		d.Keywords[i] = strings.ToLower(k)
	}
	return d
}

// searchable lists every lower-cased field free-text terms are matched against.
func (d *Doc) searchable() []string {
	out := make([]string, 0, 7+len(d.Keywords)+len(d.Elements))
	out = append(out, d.Name, d.Description, d.Category, d.Rarity, d.Artist, d.Set, d.Flavor)
	out = append(out, d.Keywords...)
	out = append(out, d.Elements...)
	return out
}

// ContainsText reports whether any searchable field contains the lower-cased term.
func (d *Doc) ContainsText(term string) bool {
	for _, f := range d.searchable() {
		if strings.Contains(f, term) {
			return true
		}
	}
	return false
}

// Generation returns the snapshot generation (0 for an unbuilt index).
func (s *Snapshot) Generation() uint64 { return s.generation }

// Len returns the corpus size.
func (s *Snapshot) Len() int { return len(s.docs) }

// Doc returns the indexed card at position i.
func (s *Snapshot) Doc(i int) *Doc { return &s.docs[i] }

// Cards returns the corpus in order.
func (s *Snapshot) Cards() []card.Card {
	out := make([]card.Card, len(s.docs))
	for i := range s.docs {
		out[i] = s.docs[i].Card
	}
	return out
}

// LookupName finds a card by exact name (case-insensitive). Duplicate names
// resolve to the last card in corpus order.
func (s *Snapshot) LookupName(name string) (card.Card, bool) {
	i, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return card.Card{}, false
	}
	return s.docs[i].Card, true
}

// TokenIDs returns the ids of cards whose searchable text contains the word.
func (s *Snapshot) TokenIDs(word string) []string {
	ids := s.tokens[word]
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// TokenCount returns the number of distinct indexed words.
func (s *Snapshot) TokenCount() int { return len(s.tokens) }

// Names returns distinct card names in first-seen corpus order.
func (s *Snapshot) Names() []string { return s.names }

// Keywords returns distinct keyword abilities in first-seen corpus order.
func (s *Snapshot) Keywords() []string { return s.keywords }

// Candidates returns a membership mask of cards that may contain term in a
// searchable field. ok is false when term cannot be answered from the word
// index (it spans non-word characters), in which case every card is a candidate.
func (s *Snapshot) Candidates(term string) (mask []bool, ok bool) {
	if !IsWord(term) {
		return nil, false
	}
	mask = make([]bool, len(s.docs))
	for _, w := range s.vocabulary {
		if !strings.Contains(w, term) {
			continue
		}
		for _, id := range s.TokenIDs(w) {
			for _, pos := range s.positions[id] {
				mask[pos] = true
			}
		}
	}
	return mask, true
}

// Words splits lower-cased text into maximal runs of letters and digits.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return !isWordRune(r) })
}

// IsWord reports whether s is non-empty and made only of letters and digits.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
