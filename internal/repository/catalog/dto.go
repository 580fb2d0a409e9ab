package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/cardquery/internal/repository/record"
)

// entry is the JSON document stored per card. Position restores corpus order.
type entry struct {
	record.Card
	Position int `json:"position"`
}

func marshalEntry(r record.Card, pos int) ([]byte, error) {
	data, err := json.Marshal(entry{Card: r, Position: pos})
	if err != nil {
		return nil, fmt.Errorf("marshal card %s: %w", r.ID, err)
	}
	return data, nil
}

func unmarshalEntry(key string, data []byte) (entry, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return entry{}, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return e, nil
}
