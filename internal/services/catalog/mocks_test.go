package catalog

import (
	"context"

	"github.com/developia-II/catalog-api/internal/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, filter bson.M) ([]models.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *mockCategoryRepo) Insert(ctx context.Context, category models.Category) (models.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *mockCategoryRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Category, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSubcategoryRepo struct {
	mock.Mock
}

func (m *mockSubcategoryRepo) FindAll(ctx context.Context, filter bson.M) ([]models.Subcategory, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Subcategory), args.Error(1)
}

func (m *mockSubcategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (models.Subcategory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Subcategory), args.Error(1)
}

func (m *mockSubcategoryRepo) Insert(ctx context.Context, subcategory models.Subcategory) (models.Subcategory, error) {
	args := m.Called(ctx, subcategory)
	return args.Get(0).(models.Subcategory), args.Error(1)
}

func (m *mockSubcategoryRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.Subcategory, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Subcategory), args.Error(1)
}

func (m *mockSubcategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSubcategoryRepo) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// recordingTxRunner runs fn inline and remembers that it did.
type recordingTxRunner struct {
	runs int
}

func (r *recordingTxRunner) Run(ctx context.Context, fn func(txCtx context.Context) error) error {
	r.runs++
	return fn(ctx)
}
