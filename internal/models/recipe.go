package models

import (
	"time"

	"github.com/google/uuid"
)

type RecipeIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

type RecipeStep struct {
	Instruction string `json:"instruction"`
}

type Recipe struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string             `gorm:"not null" json:"name"`
	Description  string             `json:"description,omitempty"`
	Instructions []RecipeStep       `gorm:"serializer:json" json:"instructions"`
	Ingredients  []RecipeIngredient `gorm:"serializer:json" json:"ingredients"`
	CreatedAt    time.Time          `json:"created_at"`
}

func (Recipe) TableName() string { return "recipes" }
