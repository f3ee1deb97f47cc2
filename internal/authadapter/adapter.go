package authadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/khitstore/khit-backend/internal/docstore"
	"github.com/khitstore/khit-backend/internal/query"
)

// Where is a filter clause with caller-side values; dates are converted to
// their stored millisecond form before being handed to the query layer.
type Where struct {
	Field     string
	Operator  query.Operator
	Value     any
	Connector query.Connector
}

// Relation controls how joined rows attach to a parent row.
type Relation string

const (
	RelationOneToOne   Relation = "one-to-one"
	RelationOneToMany  Relation = "one-to-many"
	RelationManyToMany Relation = "many-to-many"
)

// Join describes a fan-out lookup: for each parent row, query Model for rows
// whose To field equals the parent's From field. One-to-one joins attach a
// single Record or nil; every other relation attaches a []Record.
type Join struct {
	Model Model
	From  string
	To    string

	Relation Relation
	Limit    *int
}

// FindManyParams carries the optional parameters of FindMany.
type FindManyParams struct {
	Where  []Where
	Limit  *int
	Offset int
	Select []string
	SortBy *query.Sort
	Joins  []Join
}

// Adapter implements auth storage over the generic query service. It is the
// persistence backend for users, sessions, accounts, and verification tokens.
type Adapter struct {
	queries *query.Service
}

func New(queries *query.Service) *Adapter {
	return &Adapter{queries: queries}
}

func serializeWhere(where []Where) ([]query.Clause, error) {
	if len(where) == 0 {
		return nil, nil
	}

	clauses := make([]query.Clause, 0, len(where))
	for _, w := range where {
		raw := w.Value
		if ts, ok := raw.(time.Time); ok {
			raw = float64(ts.UnixMilli())
		}
		value, err := docstore.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("where %q: %w", w.Field, err)
		}
		clauses = append(clauses, query.Clause{
			Field:     w.Field,
			Operator:  w.Operator,
			Value:     value,
			Connector: w.Connector,
		})
	}
	return clauses, nil
}

// Create inserts a row and returns it as stored.
func (a *Adapter) Create(ctx context.Context, model Model, data Record) (Record, error) {
	if err := a.check(model); err != nil {
		return nil, err
	}

	fields, err := marshalRecord(data)
	if err != nil {
		return nil, err
	}

	created, err := a.queries.Create(ctx, string(model), fields)
	if err != nil {
		return nil, err
	}
	return unmarshalRecord(*created), nil
}

// FindOne returns the first matching row or nil. With joins the row is
// fetched through the list path so related rows can be attached.
func (a *Adapter) FindOne(ctx context.Context, model Model, where []Where, selected []string, joins []Join) (Record, error) {
	if err := a.check(model); err != nil {
		return nil, err
	}

	clauses, err := serializeWhere(where)
	if err != nil {
		return nil, err
	}

	if len(joins) > 0 {
		one := 1
		rows, err := a.findMany(ctx, model, query.FindManyOptions{
			Where:  clauses,
			Limit:  &one,
			Select: selected,
		}, joins)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, nil
		}
		return rows[0], nil
	}

	doc, err := a.queries.FindOne(ctx, string(model), clauses, selected)
	if err != nil || doc == nil {
		return nil, err
	}
	return unmarshalRecord(*doc), nil
}

// FindMany returns every matching row, sorted and paged, with joins attached.
func (a *Adapter) FindMany(ctx context.Context, model Model, params FindManyParams) ([]Record, error) {
	if err := a.check(model); err != nil {
		return nil, err
	}

	clauses, err := serializeWhere(params.Where)
	if err != nil {
		return nil, err
	}

	return a.findMany(ctx, model, query.FindManyOptions{
		Where:  clauses,
		Limit:  params.Limit,
		Offset: params.Offset,
		Select: params.Select,
		SortBy: params.SortBy,
	}, params.Joins)
}

func (a *Adapter) findMany(ctx context.Context, model Model, opts query.FindManyOptions, joins []Join) ([]Record, error) {
	docs, err := a.queries.FindMany(ctx, string(model), opts)
	if err != nil {
		return nil, err
	}

	records := unmarshalRecords(docs)
	if len(joins) == 0 || len(records) == 0 {
		return records, nil
	}
	return a.attachJoins(ctx, records, joins)
}

// attachJoins runs one lookup per row per join.
func (a *Adapter) attachJoins(ctx context.Context, rows []Record, joins []Join) ([]Record, error) {
	for _, row := range rows {
		for _, join := range joins {
			if err := a.check(join.Model); err != nil {
				return nil, err
			}

			related, err := a.FindMany(ctx, join.Model, FindManyParams{
				Where: []Where{{
					Field:    join.To,
					Operator: query.OpEq,
					Value:    joinKey(row[join.From]),
				}},
				Limit: join.Limit,
			})
			if err != nil {
				return nil, err
			}

			if join.Relation == RelationOneToOne {
				if len(related) > 0 {
					row[string(join.Model)] = related[0]
				} else {
					row[string(join.Model)] = nil
				}
				continue
			}
			row[string(join.Model)] = related
		}
	}
	return rows, nil
}

// joinKey normalizes the parent-side value into something the clause
// serializer accepts; anything exotic falls back to its string form.
// time.Time passes through so serializeWhere maps it to stored millis.
func joinKey(raw any) any {
	switch raw.(type) {
	case nil, string, bool, float64, int, int32, int64, time.Time:
		return raw
	default:
		return fmt.Sprint(raw)
	}
}

// Count returns the number of matching rows.
func (a *Adapter) Count(ctx context.Context, model Model, where []Where) (int, error) {
	if err := a.check(model); err != nil {
		return 0, err
	}

	clauses, err := serializeWhere(where)
	if err != nil {
		return 0, err
	}
	return a.queries.Count(ctx, string(model), clauses)
}

// Update patches the first matching row and returns it, or nil on a miss.
func (a *Adapter) Update(ctx context.Context, model Model, where []Where, update Record) (Record, error) {
	if err := a.check(model); err != nil {
		return nil, err
	}

	clauses, err := serializeWhere(where)
	if err != nil {
		return nil, err
	}
	fields, err := marshalRecord(update)
	if err != nil {
		return nil, err
	}

	updated, err := a.queries.Update(ctx, string(model), clauses, fields)
	if err != nil || updated == nil {
		return nil, err
	}
	return unmarshalRecord(*updated), nil
}

// UpdateMany patches every matching row and returns how many matched.
func (a *Adapter) UpdateMany(ctx context.Context, model Model, where []Where, update Record) (int, error) {
	if err := a.check(model); err != nil {
		return 0, err
	}

	clauses, err := serializeWhere(where)
	if err != nil {
		return 0, err
	}
	fields, err := marshalRecord(update)
	if err != nil {
		return 0, err
	}
	return a.queries.UpdateMany(ctx, string(model), clauses, fields)
}

// Delete removes the first matching row; a miss is a no-op.
func (a *Adapter) Delete(ctx context.Context, model Model, where []Where) error {
	if err := a.check(model); err != nil {
		return err
	}

	clauses, err := serializeWhere(where)
	if err != nil {
		return err
	}
	return a.queries.Delete(ctx, string(model), clauses)
}

// DeleteMany removes every matching row and returns how many matched.
func (a *Adapter) DeleteMany(ctx context.Context, model Model, where []Where) (int, error) {
	if err := a.check(model); err != nil {
		return 0, err
	}

	clauses, err := serializeWhere(where)
	if err != nil {
		return 0, err
	}
	return a.queries.DeleteMany(ctx, string(model), clauses)
}

func (a *Adapter) check(model Model) error {
	if !model.Valid() {
		_, err := ParseModel(string(model))
		return err
	}
	return nil
}
