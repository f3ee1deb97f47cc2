package query

import (
	"context"
	"sort"

	"github.com/khitstore/khit-backend/internal/docstore"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders results by a single field. Missing/null values sort first
// ascending and last descending; equal values keep their input order.
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// FindManyOptions carries the optional query parameters of FindMany.
type FindManyOptions struct {
	Where  []Clause
	Limit  *int
	Offset int
	Select []string
	SortBy *Sort
}

// Service answers filtered queries against named collections. Every query
// materializes the full collection and filters, sorts, and pages in memory;
// nothing beyond the store's iteration order is assumed.
type Service struct {
	store docstore.Store
}

// NewService creates a query service over the given store.
func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

// FindOne returns the first matching document in iteration order, optionally
// projected, or nil when nothing matches.
func (s *Service) FindOne(ctx context.Context, collection string, where []Clause, selected []string) (*docstore.Document, error) {
	docs, err := s.store.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if Matches(doc, where) {
			projected := doc.Project(selected)
			return &projected, nil
		}
	}
	return nil, nil
}

// FindMany returns all matching documents, filtered, projected, sorted, and
// paged. The result is never nil.
func (s *Service) FindMany(ctx context.Context, collection string, opts FindManyOptions) ([]docstore.Document, error) {
	docs, err := s.store.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	matched := make([]docstore.Document, 0, len(docs))
	for _, doc := range docs {
		if Matches(doc, opts.Where) {
			matched = append(matched, doc.Project(opts.Select))
		}
	}

	if opts.SortBy != nil {
		sortDocuments(matched, *opts.SortBy)
	}

	return page(matched, opts.Offset, opts.Limit), nil
}

// Count returns the number of matching documents.
func (s *Service) Count(ctx context.Context, collection string, where []Clause) (int, error) {
	docs, err := s.store.List(ctx, collection)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, doc := range docs {
		if Matches(doc, where) {
			count++
		}
	}
	return count, nil
}

// Create inserts a document and returns it as stored.
func (s *Service) Create(ctx context.Context, collection string, fields docstore.Fields) (*docstore.Document, error) {
	id, err := s.store.Insert(ctx, collection, fields)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, collection, id)
}

// Update patches the first matching document and returns it, or nil when
// nothing matches.
func (s *Service) Update(ctx context.Context, collection string, where []Clause, update docstore.Fields) (*docstore.Document, error) {
	matched, err := s.FindOne(ctx, collection, where, nil)
	if err != nil || matched == nil {
		return nil, err
	}

	if err := s.store.Patch(ctx, collection, matched.ID, update); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, collection, matched.ID)
}

// UpdateMany patches every matching document and returns how many matched.
func (s *Service) UpdateMany(ctx context.Context, collection string, where []Clause, update docstore.Fields) (int, error) {
	docs, err := s.store.List(ctx, collection)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, doc := range docs {
		if !Matches(doc, where) {
			continue
		}
		if err := s.store.Patch(ctx, collection, doc.ID, update); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// Delete removes the first matching document; a miss is a no-op.
func (s *Service) Delete(ctx context.Context, collection string, where []Clause) error {
	matched, err := s.FindOne(ctx, collection, where, nil)
	if err != nil || matched == nil {
		return err
	}
	return s.store.Delete(ctx, collection, matched.ID)
}

// DeleteMany removes every matching document and returns how many matched.
func (s *Service) DeleteMany(ctx context.Context, collection string, where []Clause) (int, error) {
	docs, err := s.store.List(ctx, collection)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, doc := range docs {
		if !Matches(doc, where) {
			continue
		}
		if err := s.store.Delete(ctx, collection, doc.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// sortDocuments stable-sorts in place. Non-null values compare by native
// ordering within a kind; cross-kind comparisons are unspecified, so callers
// are expected to sort homogeneously typed fields only.
func sortDocuments(docs []docstore.Document, by Sort) {
	asc := by.Direction != Desc

	sort.SliceStable(docs, func(i, j int) bool {
		a := docs[i].Get(by.Field)
		b := docs[j].Get(by.Field)

		if a.Equal(b) {
			return false
		}
		if a.IsNull() {
			return asc
		}
		if b.IsNull() {
			return !asc
		}

		less := compareValues(a, b) < 0
		if asc {
			return less
		}
		return !less
	})
}

func compareValues(a, b docstore.Value) int {
	if an, ok := a.AsNumber(); ok {
		if bn, ok := b.AsNumber(); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			return 0
		}
	}
	if as, ok := a.AsString(); ok {
		if bs, ok := b.AsString(); ok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			}
			return 0
		}
	}
	if ab, ok := a.AsBool(); ok {
		if bb, ok := b.AsBool(); ok {
			switch {
			case !ab && bb:
				return -1
			case ab && !bb:
				return 1
			}
			return 0
		}
	}
	return 0
}

func page(docs []docstore.Document, offset int, limit *int) []docstore.Document {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(docs) {
		return []docstore.Document{}
	}

	end := len(docs)
	if limit != nil {
		l := *limit
		if l < 0 {
			l = 0
		}
		if offset+l < end {
			end = offset + l
		}
	}
	return docs[offset:end]
}
