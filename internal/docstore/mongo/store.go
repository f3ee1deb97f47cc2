// Package mongo implements the collection store on a hosted MongoDB database.
// Documents are stored as flat maps with string _id values, so the same
// collections remain readable by the typed repositories.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/khitstore/khit-backend/internal/docstore"
)

// Store is a docstore.Store backed by a mongo database. Iteration order is
// the collection's natural order, which for untouched documents matches
// insertion order.
type Store struct {
	db *mongodrv.Database
}

// NewStore creates a store over the given database handle.
func NewStore(db *mongodrv.Database) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo: list %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []docstore.Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("mongo: decode %s: %w", collection, err)
		}
		doc, err := fromBSON(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo: iterate %s: %w", collection, err)
	}

	return docs, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{docstore.IDField: id}).Decode(&raw)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: get %s/%s: %w", collection, id, err)
	}

	doc, err := fromBSON(raw)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) Insert(ctx context.Context, collection string, fields docstore.Fields) (string, error) {
	id := uuid.NewString()
	payload := toBSON(fields)
	payload[docstore.IDField] = id

	if _, err := s.db.Collection(collection).InsertOne(ctx, payload); err != nil {
		return "", fmt.Errorf("mongo: insert %s: %w", collection, err)
	}
	return id, nil
}

func (s *Store) Patch(ctx context.Context, collection, id string, fields docstore.Fields) error {
	result, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{docstore.IDField: id},
		bson.M{"$set": toBSON(fields)},
	)
	if err != nil {
		return fmt.Errorf("mongo: patch %s/%s: %w", collection, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("mongo: patch %s/%s: document does not exist", collection, id)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{docstore.IDField: id}); err != nil {
		return fmt.Errorf("mongo: delete %s/%s: %w", collection, id, err)
	}
	return nil
}
