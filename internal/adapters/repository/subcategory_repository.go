package repository

import (
	"context"
	"errors"

	"github.com/developia-II/catalog-api/internal/core/domain"
	"github.com/developia-II/catalog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSubcategoryRepository struct {
	DB *mongo.Database
}

func NewSubcategoryRepository(db *mongo.Database) domain.SubcategoryRepository {
	return &MongoSubcategoryRepository{DB: db}
}

func (r *MongoSubcategoryRepository) FindAll(ctx context.Context, filter bson.M) ([]models.Subcategory, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.DB.Collection(SubcategoriesCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subcategories := []models.Subcategory{}
	if err := cursor.All(ctx, &subcategories); err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *MongoSubcategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.DB.Collection(SubcategoriesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&subcategory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Subcategory{}, domain.ErrNotFound
		}
		return models.Subcategory{}, err
	}
	return subcategory, nil
}

func (r *MongoSubcategoryRepository) Insert(ctx context.Context, subcategory models.Subcategory) (models.Subcategory, error) {
	now := timestamp()
	subcategory.CreatedAt = now
	subcategory.UpdatedAt = now
	if subcategory.ID.IsZero() {
		subcategory.ID = primitive.NewObjectID()
	}

	if _, err := r.DB.Collection(SubcategoriesCollection).InsertOne(ctx, subcategory); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Subcategory{}, domain.ErrDuplicateName
		}
		return models.Subcategory{}, err
	}
	return subcategory, nil
}

func (r *MongoSubcategoryRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Subcategory, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var subcategory models.Subcategory
	err := r.DB.Collection(SubcategoriesCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": withUpdatedAt(fields)}, opts).
		Decode(&subcategory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Subcategory{}, domain.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Subcategory{}, domain.ErrDuplicateName
		}
		return models.Subcategory{}, err
	}
	return subcategory, nil
}

func (r *MongoSubcategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.DB.Collection(SubcategoriesCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoSubcategoryRepository) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := r.DB.Collection(SubcategoriesCollection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
