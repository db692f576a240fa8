package repository

import (
	"context"
	"errors"
	"time"

	"github.com/developia-II/catalog-api/internal/core/domain"
	"github.com/developia-II/catalog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCategoryRepository struct {
	DB *mongo.Database
}

func NewCategoryRepository(db *mongo.Database) domain.CategoryRepository {
	return &MongoCategoryRepository{DB: db}
}

func (r *MongoCategoryRepository) FindAll(ctx context.Context, filter bson.M) ([]models.Category, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.DB.Collection(CategoriesCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var category models.Category
	err := r.DB.Collection(CategoriesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Category{}, domain.ErrNotFound
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *MongoCategoryRepository) Insert(ctx context.Context, category models.Category) (models.Category, error) {
	now := timestamp()
	category.CreatedAt = now
	category.UpdatedAt = now
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	if _, err := r.DB.Collection(CategoriesCollection).InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Category{}, domain.ErrDuplicateName
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *MongoCategoryRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Category, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category models.Category
	err := r.DB.Collection(CategoriesCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": withUpdatedAt(fields)}, opts).
		Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Category{}, domain.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Category{}, domain.ErrDuplicateName
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.DB.Collection(CategoriesCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// timestamp is truncated to what BSON dates can hold so a document read back
// compares equal to the one that was written.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func withUpdatedAt(fields bson.M) bson.M {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = timestamp()
	return set
}
