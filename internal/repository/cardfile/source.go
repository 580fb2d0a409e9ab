// Package cardfile loads card lists from YAML or JSON files.
package cardfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/cardquery/internal/domain"
	"github.com/kailas-cloud/cardquery/internal/domain/card"
	"github.com/kailas-cloud/cardquery/internal/repository/record"
)

// document is the wrapped file layout: a top-level "cards" list.
type document struct {
	Cards []record.Card `yaml:"cards"`
}

// Source reads one card file. JSON files are parsed by the YAML decoder.
type Source struct {
	path string
}

// New creates a file source.
func New(path string) *Source {
	return &Source{path: path}
}

// Name identifies the source in logs.
func (s *Source) Name() string { return "file:" + s.path }

// Load reads and validates the file. Either a bare list of cards or a
// document with a "cards" key is accepted.
func (s *Source) Load(ctx context.Context) ([]card.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrCorpusSource, s.path, err)
	}
	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCorpusSource, s.path, err)
	}
	cards, err := record.ToCards(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return cards, nil
}

// Decode parses card records from YAML or JSON bytes.
func Decode(data []byte) ([]record.Card, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse cards: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		var records []record.Card
		if err := root.Content[0].Decode(&records); err != nil {
			return nil, fmt.Errorf("decode cards: %w", err)
		}
		return records, nil
	case yaml.MappingNode:
		var doc document
		if err := root.Content[0].Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cards: %w", err)
		}
		return doc.Cards, nil
	default:
		return nil, fmt.Errorf("decode cards: expected a list or a mapping with a cards key")
	}
}
