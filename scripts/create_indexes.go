package main

import (
	"context"
	"time"

	"github.com/developia-II/catalog-api/config"
	"github.com/developia-II/catalog-api/internal/adapters/repository"
	"github.com/sirupsen/logrus"
)

// Run this script once against a fresh database to create the catalog indexes.
// The API also ensures them at startup.
// Usage: go run scripts/create_indexes.go
func main() {
	cfg := config.Read()

	// Atlas can be slow to answer the first handshake.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logrus.Info("Connecting to MongoDB...")
	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := repository.EnsureIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Infof("All indexes created on %s", cfg.MongoDatabase)
	logrus.Info("Run 'db.categories.getIndexes()' and 'db.subcategories.getIndexes()' in the MongoDB shell to verify")
}
