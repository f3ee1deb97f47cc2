package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khitstore/khit-backend/internal/docstore"
)

// toBSON flattens a field bag into a bson map, without the identifier.
func toBSON(fields docstore.Fields) bson.M {
	out := make(bson.M, len(fields))
	for name, value := range fields {
		out[name] = value.ToAny()
	}
	return out
}

// fromBSON splits a raw document into id and typed fields. BSON arrays come
// back as primitive.A, which FromAny does not know about, so they are widened
// here first.
func fromBSON(raw bson.M) (docstore.Document, error) {
	doc := docstore.Document{Fields: make(docstore.Fields, len(raw))}

	for name, value := range raw {
		if name == docstore.IDField {
			id, ok := value.(string)
			if !ok {
				return docstore.Document{}, fmt.Errorf("mongo: non-string _id %v", value)
			}
			doc.ID = id
			continue
		}

		if arr, ok := value.(primitive.A); ok {
			value = []any(arr)
		}
		parsed, err := docstore.FromAny(value)
		if err != nil {
			return docstore.Document{}, fmt.Errorf("mongo: field %q: %w", name, err)
		}
		doc.Fields[name] = parsed
	}

	return doc, nil
}
