package db

import (
	"github.com/rizeup/breadlog/internal/models"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	database *gorm.DB
}

func NewRecipeRepository(database *gorm.DB) *RecipeRepository {
	return &RecipeRepository{database: database}
}

func (repo *RecipeRepository) Create(recipe *models.Recipe) error {
	return repo.database.Create(recipe).Error
}
