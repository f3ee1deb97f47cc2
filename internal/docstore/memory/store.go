// Package memory implements the collection store with in-process state.
// Each Store owns its own state and is handed to its consumers explicitly,
// so tests can run isolated instances concurrently.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/khitstore/khit-backend/internal/docstore"
)

// Store is an in-memory docstore.Store. Collections keep insertion order,
// which doubles as the store's natural iteration order. The mutex keeps the
// store data-race-free; it does not serialize logical read-modify-write
// cycles spanning multiple calls.
type Store struct {
	mu          sync.Mutex
	collections map[string][]docstore.Document
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{collections: make(map[string][]docstore.Document)}
}

func (s *Store) List(_ context.Context, collection string) ([]docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	out := make([]docstore.Document, len(docs))
	for i, doc := range docs {
		out[i] = doc.Clone()
	}
	return out, nil
}

func (s *Store) Get(_ context.Context, collection, id string) (*docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if doc.ID == id {
			clone := doc.Clone()
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *Store) Insert(_ context.Context, collection string, fields docstore.Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := docstore.Document{ID: uuid.NewString(), Fields: fields}
	s.collections[collection] = append(s.collections[collection], doc.Clone())
	return doc.ID, nil
}

func (s *Store) Patch(_ context.Context, collection, id string, fields docstore.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if doc.ID != id {
			continue
		}
		patched := doc.Clone()
		for name, value := range fields {
			patched.Fields[name] = value
		}
		docs[i] = patched
		return nil
	}
	return fmt.Errorf("memory: patch %s/%s: document does not exist", collection, id)
}

func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if doc.ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}
