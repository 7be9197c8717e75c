package db

import (
	"github.com/google/uuid"
	"github.com/rizeup/breadlog/internal/models"
	"gorm.io/gorm"
)

type AccountMakeRepository struct {
	database *gorm.DB
}

func NewAccountMakeRepository(database *gorm.DB) *AccountMakeRepository {
	return &AccountMakeRepository{database: database}
}

func (repo *AccountMakeRepository) ListByAccount(accountID uuid.UUID) ([]models.AccountMake, error) {
	makes := make([]models.AccountMake, 0)
	if err := repo.database.
		Where("account_id = ?", accountID).
		Order("display_name ASC").
		Find(&makes).Error; err != nil {
		return nil, err
	}
	return makes, nil
}

func (repo *AccountMakeRepository) ExistsKey(accountID uuid.UUID, key string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.AccountMake{}).
		Where("account_id = ? AND key = ?", accountID, key).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AccountMakeRepository) Create(accountMake *models.AccountMake) error {
	return repo.database.Create(accountMake).Error
}
