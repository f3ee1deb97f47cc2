package docstore

import (
	"encoding/json"
	"fmt"
	"maps"
)

// IDField is the reserved identifier key. It lives outside the field bag but
// is addressable by clauses and projections under this name.
const IDField = "_id"

// Document is one record of a collection: a stable identifier plus an opaque
// mapping from field name to value.
type Document struct {
	ID     string
	Fields Fields
}

// Fields is a document's field bag.
type Fields map[string]Value

// Get returns the value of a field, with the identifier addressable as "_id".
// Missing fields read as null.
func (d Document) Get(field string) Value {
	if field == IDField {
		return String(d.ID)
	}
	return d.Fields[field]
}

// Project returns a copy restricted to the selected fields. An empty selection
// returns the full document. The identifier is always retained: callers need
// it to address the document afterwards.
func (d Document) Project(selected []string) Document {
	if len(selected) == 0 {
		return d.Clone()
	}

	fields := make(Fields, len(selected))
	for _, name := range selected {
		if name == IDField {
			continue
		}
		if v, ok := d.Fields[name]; ok {
			fields[name] = v
		}
	}
	return Document{ID: d.ID, Fields: fields}
}

// Clone returns a copy with an independent field map. Values are immutable,
// so a shallow copy of the map suffices.
func (d Document) Clone() Document {
	return Document{ID: d.ID, Fields: maps.Clone(d.Fields)}
}

// MarshalJSON flattens the document into one object with the identifier under
// "_id".
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Fields)+1)
	out[IDField] = d.ID
	for name, value := range d.Fields {
		out[name] = value.ToAny()
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses a flat object, splitting "_id" out of the field bag.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	doc := Document{Fields: make(Fields, len(raw))}
	for name, value := range raw {
		if name == IDField {
			id, ok := value.(string)
			if !ok {
				return fmt.Errorf("docstore: _id must be a string, got %T", value)
			}
			doc.ID = id
			continue
		}
		parsed, err := FromAny(value)
		if err != nil {
			return fmt.Errorf("docstore: field %q: %w", name, err)
		}
		doc.Fields[name] = parsed
	}

	*d = doc
	return nil
}
