package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/developia-II/catalog-api/internal/core/domain"
	"github.com/developia-II/catalog-api/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service owns the rules that tie subcategories to their category: a
// subcategory may only reference a category that exists when the reference
// is written, and deleting a category deletes its subcategories.
//
// Neither rule takes a lock. A category deleted between the existence check
// and the subcategory write leaves an orphan; so does a failure between the
// two deletes of a cascade unless a TxRunner is supplied.
type Service struct {
	categories    domain.CategoryRepository
	subcategories domain.SubcategoryRepository
	tx            domain.TxRunner
}

// NewService builds the catalog service. tx may be nil, in which case a
// cascade runs as two independent deletes.
func NewService(categories domain.CategoryRepository, subcategories domain.SubcategoryRepository, tx domain.TxRunner) *Service {
	return &Service{categories: categories, subcategories: subcategories, tx: tx}
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx, bson.M{})
}

func (s *Service) GetCategory(ctx context.Context, id string) (models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Category{}, domain.ErrNotFound
	}
	return s.categories.FindByID(ctx, oid)
}

func (s *Service) CreateCategory(ctx context.Context, input models.CreateCategoryInput) (models.Category, error) {
	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		IsActive:    activeOrDefault(input.IsActive),
	}
	return s.categories.Insert(ctx, category)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, input models.UpdateCategoryInput) (models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Category{}, domain.ErrNotFound
	}

	fields := bson.M{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.IsActive != nil {
		fields["isActive"] = *input.IsActive
	}
	return s.categories.UpdateFields(ctx, oid, fields)
}

// DeleteCategory removes the category and then every subcategory that
// references it, returning how many subcategories went with it. A missing
// category returns ErrNotFound and touches no subcategory.
func (s *Service) DeleteCategory(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrNotFound
	}

	if s.tx == nil {
		return s.cascadeDelete(ctx, oid)
	}

	var removed int64
	err = s.tx.Run(ctx, func(txCtx context.Context) error {
		n, err := s.cascadeDelete(txCtx, oid)
		removed = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Service) cascadeDelete(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	if err := s.categories.Delete(ctx, categoryID); err != nil {
		return 0, err
	}

	removed, err := s.subcategories.DeleteMany(ctx, bson.M{"categoryId": categoryID})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"categoryId": categoryID.Hex(),
			"error":      err,
		}).Error("category deleted but its subcategories were not")
		return 0, fmt.Errorf("delete subcategories of %s: %w", categoryID.Hex(), err)
	}

	logrus.WithFields(logrus.Fields{
		"categoryId":    categoryID.Hex(),
		"subcategories": removed,
	}).Info("category deleted")
	return removed, nil
}

// ListSubcategories returns every subcategory, or only those of categoryID
// when it is non-empty. An id that cannot be an ObjectID matches nothing.
func (s *Service) ListSubcategories(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	filter := bson.M{}
	if categoryID != "" {
		oid, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			return []models.Subcategory{}, nil
		}
		filter["categoryId"] = oid
	}
	return s.subcategories.FindAll(ctx, filter)
}

func (s *Service) GetSubcategory(ctx context.Context, id string) (models.Subcategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Subcategory{}, domain.ErrNotFound
	}
	return s.subcategories.FindByID(ctx, oid)
}

func (s *Service) CreateSubcategory(ctx context.Context, input models.CreateSubcategoryInput) (models.Subcategory, error) {
	categoryID, err := s.existingCategory(ctx, input.CategoryID)
	if err != nil {
		return models.Subcategory{}, err
	}

	subcategory := models.Subcategory{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  categoryID,
		Image:       input.Image,
		IsActive:    activeOrDefault(input.IsActive),
	}
	return s.subcategories.Insert(ctx, subcategory)
}

func (s *Service) UpdateSubcategory(ctx context.Context, id string, input models.UpdateSubcategoryInput) (models.Subcategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Subcategory{}, domain.ErrNotFound
	}

	fields := bson.M{}
	if input.CategoryID != nil {
		categoryID, err := s.existingCategory(ctx, *input.CategoryID)
		if err != nil {
			return models.Subcategory{}, err
		}
		fields["categoryId"] = categoryID
	}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.IsActive != nil {
		fields["isActive"] = *input.IsActive
	}
	return s.subcategories.UpdateFields(ctx, oid, fields)
}

func (s *Service) DeleteSubcategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	return s.subcategories.Delete(ctx, oid)
}

// existingCategory resolves a category reference, mapping a malformed or
// unknown id to ErrInvalidCategory. Only the lowercase hex form is accepted,
// so the stored reference reads back exactly as it was sent.
func (s *Service) existingCategory(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil || oid.Hex() != id {
		return primitive.NilObjectID, domain.ErrInvalidCategory
	}
	category, err := s.categories.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return primitive.NilObjectID, domain.ErrInvalidCategory
		}
		return primitive.NilObjectID, err
	}
	return category.ID, nil
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}
