package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/later/internal/domain"
)

// encodeDocument renders lists in the stored shape {"name": {list}, ...}.
func encodeDocument(lists domain.Lists) ([]byte, error) {
	data, err := json.Marshal(map[string]*domain.Node(lists))
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// decodeDocument validates data against the document schema and decodes it.
func decodeDocument(data []byte) (domain.Lists, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var raw map[string]*domain.Node
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	lists := make(domain.Lists, len(raw))
	for name, list := range raw {
		if list == nil {
			return nil, fmt.Errorf("decoding document: list %q is null", name)
		}
		lists[name] = list
	}
	return lists, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
