package docstore

import "context"

// Store is the collection-store contract the query engine runs against:
// schemaless named collections with list/get/insert/patch/delete primitives.
// Implementations guarantee a stable per-collection iteration order (insertion
// order for the in-memory store, natural order for the hosted store); the
// query engine's "first match" semantics lean on it.
type Store interface {
	// List materializes every document of a collection.
	List(ctx context.Context, collection string) ([]Document, error)

	// Get returns a document by id, or nil when absent.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Insert adds a new document and returns its generated id.
	Insert(ctx context.Context, collection string, fields Fields) (string, error)

	// Patch merges the given fields into an existing document.
	// Returns an error wrapping a not-found condition when the id is unknown.
	Patch(ctx context.Context, collection, id string, fields Fields) error

	// Delete removes a document by id. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, collection, id string) error
}
