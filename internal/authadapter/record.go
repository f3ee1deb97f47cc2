package authadapter

import (
	"fmt"
	"time"

	"github.com/khitstore/khit-backend/internal/docstore"
)

// Record is an auth row as the caller sees it: date fields hold time.Time,
// everything else holds plain scalars or string/number slices.
type Record map[string]any

// dateFields are stored as epoch milliseconds and surfaced as time.Time.
var dateFields = map[string]struct{}{
	"createdAt":             {},
	"updatedAt":             {},
	"expiresAt":             {},
	"accessTokenExpiresAt":  {},
	"refreshTokenExpiresAt": {},
}

func isDateField(field string) bool {
	_, ok := dateFields[field]
	return ok
}

// marshalValue converts a caller value into its stored form. time.Time is
// accepted only on date fields; elsewhere it is rejected rather than silently
// stored as something else.
func marshalValue(field string, raw any) (docstore.Value, error) {
	if ts, ok := raw.(time.Time); ok {
		if !isDateField(field) {
			return docstore.Value{}, fmt.Errorf("field %q does not hold dates", field)
		}
		return docstore.Number(float64(ts.UnixMilli())), nil
	}

	value, err := docstore.FromAny(raw)
	if err != nil {
		return docstore.Value{}, fmt.Errorf("field %q: %w", field, err)
	}
	return value, nil
}

func marshalRecord(record Record) (docstore.Fields, error) {
	fields := make(docstore.Fields, len(record))
	for name, raw := range record {
		value, err := marshalValue(name, raw)
		if err != nil {
			return nil, err
		}
		fields[name] = value
	}
	return fields, nil
}

// unmarshalRecord converts a stored document back into a Record, reviving
// date fields. The document id is exposed under "_id".
func unmarshalRecord(doc docstore.Document) Record {
	record := make(Record, len(doc.Fields)+1)
	record[docstore.IDField] = doc.ID

	for name, value := range doc.Fields {
		if isDateField(name) {
			if millis, ok := value.AsNumber(); ok {
				record[name] = time.UnixMilli(int64(millis)).UTC()
				continue
			}
		}
		record[name] = value.ToAny()
	}
	return record
}

func unmarshalRecords(docs []docstore.Document) []Record {
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, unmarshalRecord(doc))
	}
	return records
}
