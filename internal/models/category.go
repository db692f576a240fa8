package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,notblank,max=120"`
	Description string `json:"description" validate:"max=1000"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateCategoryInput carries a partial update; nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitnil,min=1,notblank,max=120"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
}
