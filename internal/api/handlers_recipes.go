package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rizeup/breadlog/internal/models"
)

type recipePayload struct {
	Name         string                    `json:"name"`
	Description  string                    `json:"description"`
	Instructions []models.RecipeStep       `json:"instructions"`
	Ingredients  []models.RecipeIngredient `json:"ingredients"`
}

func (handler *Handler) CreateRecipe(c *fiber.Ctx) error {
	if _, ok := currentAccount(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := recipePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	recipe, err := handler.recipes.CreateRecipe(payload.Name, payload.Description, payload.Instructions, payload.Ingredients)
	if err != nil {
		return makeErrorStatus(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": recipe.ID})
}
