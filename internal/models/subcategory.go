package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subcategory belongs to exactly one Category through CategoryID.
// The reference is checked on write, there is no database-level constraint.
type Subcategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateSubcategoryInput struct {
	Name        string `json:"name" validate:"required,notblank,max=120"`
	CategoryID  string `json:"categoryId" validate:"required"`
	Description string `json:"description" validate:"max=1000"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateSubcategoryInput struct {
	Name        *string `json:"name" validate:"omitnil,min=1,notblank,max=120"`
	CategoryID  *string `json:"categoryId" validate:"omitnil,min=1"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
}
