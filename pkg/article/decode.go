package article

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeDataset reads a JSON array of article objects from r and maps each
// object onto a Record using m. source only labels errors.
//
// A record without one of the mapped keys aborts the whole dataset with a
// *MissingFieldError; no records are returned in that case.
func DecodeDataset(r io.Reader, source string, m FieldMapping) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InputReadError{Source: source, Err: err}
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InputReadError{Source: source, Err: fmt.Errorf("parsing JSON: %w", err)}
	}

	records := make([]Record, 0, len(raw))
	for i, obj := range raw {
		rec, err := decodeRecord(obj, source, i, m)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(obj map[string]json.RawMessage, source string, index int, m FieldMapping) (Record, error) {
	if obj == nil {
		return Record{}, &InputReadError{Source: source, Err: fmt.Errorf("record %d: not an object", index)}
	}

	// Every key is checked for presence before any value is decoded so the
	// error names the first missing field in column order.
	for _, fk := range m.keys() {
		if v, ok := obj[fk.key]; !ok || isNull(v) {
			return Record{}, &MissingFieldError{Source: source, Index: index, Field: fk.field, Key: fk.key}
		}
	}

	rec := Record{Language: m.Language}
	targets := []struct {
		key string
		dst any
	}{
		{m.Title, &rec.Title},
		{m.Slug, &rec.Slug},
		{m.Content, &rec.Content},
		{m.Category, &rec.Category},
		{m.Tags, &rec.Tags},
	}
	for _, t := range targets {
		if err := json.Unmarshal(obj[t.key], t.dst); err != nil {
			return Record{}, &InputReadError{
				Source: source,
				Err:    fmt.Errorf("record %d: key %q: %w", index, t.key, err),
			}
		}
	}
	return rec, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
