package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rizeup/breadlog/internal/models"
)

var ErrInvalidRecipeName = errors.New("invalid recipe name")

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
}

type RecipeService struct {
	recipes RecipeRepository
}

func NewRecipeService(recipes RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

func (service *RecipeService) CreateRecipe(name string, description string, instructions []models.RecipeStep, ingredients []models.RecipeIngredient) (models.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Recipe{}, ErrInvalidRecipeName
	}

	recipe := models.Recipe{
		ID:           uuid.New(),
		Name:         name,
		Description:  strings.TrimSpace(description),
		Instructions: instructions,
		Ingredients:  ingredients,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.recipes.Create(&recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}
