package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	makes := app.Group("/makes", handler.AuthRequired)
	makes.Get("", handler.ListAccountMakes)
	makes.Post("", handler.RegisterAccountMake)
	makes.Get("/:year/:month/:day", handler.ListMakesForDate)
	makes.Post("/:year/:month/:day/:name", handler.CreateMake)
	makes.Get("/:year/:month/:day/:name/:created_at", handler.GetMake)
	makes.Patch("/:year/:month/:day/:name/:created_at", handler.UpdateMake)
	makes.Delete("/:year/:month/:day/:name/:created_at", handler.DeleteMake)

	recipes := app.Group("/recipes", handler.AuthRequired)
	recipes.Post("", handler.CreateRecipe)
}
