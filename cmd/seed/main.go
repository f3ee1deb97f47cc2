// Command seed populates the hosted store with the base category tree, and
// optionally the demo catalog, when the target database is empty. Running it
// against a non-empty store is a no-op.
//
// Exit codes: 0 = success (including skip), 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/khitstore/khit-backend/internal/app"
	"github.com/khitstore/khit-backend/internal/config"
	"github.com/khitstore/khit-backend/internal/seed"
)

func main() {
	demo := flag.Bool("demo", false, "also insert the demo catalog (products, users, orders)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Mongo.Configured() {
		logger.Error("MONGO_URI is not set; nothing to seed")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Error("connect to mongo", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("ping mongo", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := client.Database(cfg.Mongo.Database)

	count, err := db.Collection("categories").CountDocuments(ctx, map[string]any{})
	if err != nil {
		logger.Error("count categories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if count > 0 {
		logger.Info("store already seeded, skipping", slog.Int64("categories", count))
		return
	}

	snap := seed.NewSnapshot(time.Now())

	inserted, err := insertSnapshot(ctx, db, snap, *demo)
	if err != nil {
		logger.Error("seed store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("store seeded",
		slog.Int("documents", inserted),
		slog.Bool("demo", *demo),
	)
}

func insertSnapshot(ctx context.Context, db *mongodrv.Database, snap seed.Snapshot, demo bool) (int, error) {
	inserted := 0

	insert := func(collection string, docs []any) error {
		if len(docs) == 0 {
			return nil
		}
		if _, err := db.Collection(collection).InsertMany(ctx, docs); err != nil {
			return err
		}
		inserted += len(docs)
		return nil
	}

	categories := make([]any, 0, len(snap.Categories))
	for _, c := range snap.Categories {
		categories = append(categories, c)
	}
	if err := insert("categories", categories); err != nil {
		return inserted, err
	}

	if err := insert("storeSettings", []any{snap.Settings}); err != nil {
		return inserted, err
	}

	if !demo {
		return inserted, nil
	}

	products := make([]any, 0, len(snap.Products))
	for _, p := range snap.Products {
		products = append(products, p)
	}
	if err := insert("products", products); err != nil {
		return inserted, err
	}

	users := make([]any, 0, len(snap.Users))
	for _, u := range snap.Users {
		users = append(users, u)
	}
	if err := insert("users", users); err != nil {
		return inserted, err
	}

	orders := make([]any, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		orders = append(orders, o)
	}
	if err := insert("orders", orders); err != nil {
		return inserted, err
	}

	logs := make([]any, 0, len(snap.AuditLogs))
	for _, l := range snap.AuditLogs {
		logs = append(logs, l)
	}
	return inserted, insert("inventoryAuditLogs", logs)
}
