package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rizeup/breadlog/internal/models"
)

type createAccountMakePayload struct {
	DisplayName string `json:"display_name"`
	Key         string `json:"key"`
}

type simpleMakeView struct {
	DisplayName string `json:"display_name"`
	Key         string `json:"key"`
}

func (handler *Handler) ListAccountMakes(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	makes, err := handler.accountMakes.ListForAccount(account.AccountID)
	if err != nil {
		return makeErrorStatus(c, err)
	}
	return c.JSON(toSimpleMakeViews(makes))
}

func (handler *Handler) RegisterAccountMake(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := createAccountMakePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	created, err := handler.accountMakes.RegisterMake(account.AccountID, account.AccountName, payload.DisplayName, payload.Key)
	if err != nil {
		return makeErrorStatus(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(simpleMakeView{
		DisplayName: created.DisplayName,
		Key:         created.Key,
	})
}

func toSimpleMakeViews(makes []models.AccountMake) []simpleMakeView {
	views := make([]simpleMakeView, 0, len(makes))
	for _, accountMake := range makes {
		views = append(views, simpleMakeView{
			DisplayName: accountMake.DisplayName,
			Key:         accountMake.Key,
		})
	}
	return views
}
