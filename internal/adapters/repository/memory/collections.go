package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections answers the database probe when no MongoDB is configured.
type Collections struct{}

func (Collections) ListCollectionNames(_ context.Context, _ interface{}, _ ...*options.ListCollectionsOptions) ([]string, error) {
	return []string{"categories", "subcategories"}, nil
}
