package domain

import (
	"context"

	"github.com/developia-II/catalog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryRepository defines data access for the categories collection.
// The catalog service depends on this interface, not on MongoDB.
type CategoryRepository interface {
	FindAll(ctx context.Context, filter bson.M) ([]models.Category, error)

	// FindByID returns ErrNotFound when no category has the id.
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)

	// Insert returns ErrDuplicateName when the name is taken.
	Insert(ctx context.Context, category models.Category) (models.Category, error)

	// UpdateFields sets only the given fields, always refreshing updatedAt,
	// and returns the stored document after the update.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Category, error)

	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SubcategoryRepository defines data access for the subcategories collection.
type SubcategoryRepository interface {
	FindAll(ctx context.Context, filter bson.M) ([]models.Subcategory, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Subcategory, error)
	Insert(ctx context.Context, subcategory models.Subcategory) (models.Subcategory, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Subcategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteMany removes every matching subcategory and reports how many went.
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
}

// TxRunner runs fn so that every repository call made with txCtx commits or
// rolls back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(txCtx context.Context) error) error
}
