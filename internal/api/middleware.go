package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const contextAccountKey = "current_account"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	account, err := handler.auth.Authenticate(rawToken)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextAccountKey, account)
	return c.Next()
}

func currentAccount(c *fiber.Ctx) (AccountContext, bool) {
	account, ok := c.Locals(contextAccountKey).(AccountContext)
	return account, ok
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
