// Package memory keeps categories and subcategories in process memory. It
// honors the same contracts as the MongoDB repositories, including unique
// names, and is meant for local runs without a database and for tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/developia-II/catalog-api/internal/core/domain"
	"github.com/developia-II/catalog-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ domain.CategoryRepository    = (*CategoryRepository)(nil)
	_ domain.SubcategoryRepository = (*SubcategoryRepository)(nil)
	_ domain.TxRunner              = TxRunner{}
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) FindAll(_ context.Context, filter bson.M) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Category{}
	for _, c := range r.categories {
		ok, err := matches(filter, categoryField(c))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CategoryRepository) FindByID(_ context.Context, id primitive.ObjectID) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.categories[i], nil
	}
	return models.Category{}, domain.ErrNotFound
}

func (r *CategoryRepository) Insert(_ context.Context, category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(category.Name, primitive.NilObjectID) {
		return models.Category{}, domain.ErrDuplicateName
	}
	now := timestamp()
	category.CreatedAt = now
	category.UpdatedAt = now
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	r.categories = append(r.categories, category)
	return category, nil
}

func (r *CategoryRepository) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Category{}, domain.ErrNotFound
	}
	updated := r.categories[i]
	for k, v := range fields {
		switch k {
		case "name":
			updated.Name = v.(string)
		case "description":
			updated.Description = v.(string)
		case "image":
			updated.Image = v.(string)
		case "isActive":
			updated.IsActive = v.(bool)
		default:
			return models.Category{}, fmt.Errorf("memory: unsupported category field %q", k)
		}
	}
	if r.nameTaken(updated.Name, id) {
		return models.Category{}, domain.ErrDuplicateName
	}
	updated.UpdatedAt = timestamp()
	r.categories[i] = updated
	return updated, nil
}

func (r *CategoryRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.categories = append(r.categories[:i], r.categories[i+1:]...)
	return nil
}

func (r *CategoryRepository) indexOf(id primitive.ObjectID) int {
	for i, c := range r.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *CategoryRepository) nameTaken(name string, except primitive.ObjectID) bool {
	for _, c := range r.categories {
		if c.Name == name && c.ID != except {
			return true
		}
	}
	return false
}

type SubcategoryRepository struct {
	mu            sync.RWMutex
	subcategories []models.Subcategory
}

func NewSubcategoryRepository() *SubcategoryRepository {
	return &SubcategoryRepository{}
}

func (r *SubcategoryRepository) FindAll(_ context.Context, filter bson.M) ([]models.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Subcategory{}
	for _, s := range r.subcategories {
		ok, err := matches(filter, subcategoryField(s))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SubcategoryRepository) FindByID(_ context.Context, id primitive.ObjectID) (models.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.subcategories[i], nil
	}
	return models.Subcategory{}, domain.ErrNotFound
}

func (r *SubcategoryRepository) Insert(_ context.Context, subcategory models.Subcategory) (models.Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(subcategory.Name, primitive.NilObjectID) {
		return models.Subcategory{}, domain.ErrDuplicateName
	}
	now := timestamp()
	subcategory.CreatedAt = now
	subcategory.UpdatedAt = now
	if subcategory.ID.IsZero() {
		subcategory.ID = primitive.NewObjectID()
	}
	r.subcategories = append(r.subcategories, subcategory)
	return subcategory, nil
}

func (r *SubcategoryRepository) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (models.Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Subcategory{}, domain.ErrNotFound
	}
	updated := r.subcategories[i]
	for k, v := range fields {
		switch k {
		case "name":
			updated.Name = v.(string)
		case "description":
			updated.Description = v.(string)
		case "image":
			updated.Image = v.(string)
		case "isActive":
			updated.IsActive = v.(bool)
		case "categoryId":
			updated.CategoryID = v.(primitive.ObjectID)
		default:
			return models.Subcategory{}, fmt.Errorf("memory: unsupported subcategory field %q", k)
		}
	}
	if r.nameTaken(updated.Name, id) {
		return models.Subcategory{}, domain.ErrDuplicateName
	}
	updated.UpdatedAt = timestamp()
	r.subcategories[i] = updated
	return updated, nil
}

func (r *SubcategoryRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.subcategories = append(r.subcategories[:i], r.subcategories[i+1:]...)
	return nil
}

func (r *SubcategoryRepository) DeleteMany(_ context.Context, filter bson.M) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.subcategories[:0]
	var deleted int64
	for _, s := range r.subcategories {
		ok, err := matches(filter, subcategoryField(s))
		if err != nil {
			return 0, err
		}
		if ok {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.subcategories = kept
	return deleted, nil
}

func (r *SubcategoryRepository) indexOf(id primitive.ObjectID) int {
	for i, s := range r.subcategories {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (r *SubcategoryRepository) nameTaken(name string, except primitive.ObjectID) bool {
	for _, s := range r.subcategories {
		if s.Name == name && s.ID != except {
			return true
		}
	}
	return false
}

// TxRunner runs fn directly. The memory store has no rollback, so a failing
// fn leaves whatever it already changed.
type TxRunner struct{}

func (TxRunner) Run(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// matches supports equality filters only, which is all the catalog issues.
func matches(filter bson.M, field func(string) (interface{}, bool)) (bool, error) {
	for k, want := range filter {
		got, ok := field(k)
		if !ok {
			return false, fmt.Errorf("memory: unsupported filter key %q", k)
		}
		if got != want {
			return false, nil
		}
	}
	return true, nil
}

func categoryField(c models.Category) func(string) (interface{}, bool) {
	return func(key string) (interface{}, bool) {
		switch key {
		case "_id":
			return c.ID, true
		case "name":
			return c.Name, true
		case "isActive":
			return c.IsActive, true
		}
		return nil, false
	}
}

func subcategoryField(s models.Subcategory) func(string) (interface{}, bool) {
	return func(key string) (interface{}, bool) {
		switch key {
		case "_id":
			return s.ID, true
		case "name":
			return s.Name, true
		case "categoryId":
			return s.CategoryID, true
		case "isActive":
			return s.IsActive, true
		}
		return nil, false
	}
}

func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
