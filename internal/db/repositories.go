package db

import "gorm.io/gorm"

type Repositories struct {
	DoughMakes   *DoughMakeRepository
	AccountMakes *AccountMakeRepository
	Recipes      *RecipeRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		DoughMakes:   NewDoughMakeRepository(database),
		AccountMakes: NewAccountMakeRepository(database),
		Recipes:      NewRecipeRepository(database),
	}
}
