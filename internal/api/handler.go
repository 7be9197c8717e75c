package api

import (
	"github.com/rizeup/breadlog/internal/db"
	"github.com/rizeup/breadlog/internal/services"
)

type Handler struct {
	makes        *services.MakeService
	accountMakes *services.AccountMakeService
	recipes      *services.RecipeService
	auth         Authenticator
}

func NewHandler(repos *db.Repositories, auth Authenticator) *Handler {
	return &Handler{
		makes:        services.NewMakeService(repos.DoughMakes),
		accountMakes: services.NewAccountMakeService(repos.AccountMakes),
		recipes:      services.NewRecipeService(repos.Recipes),
		auth:         auth,
	}
}
