package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rizeup/breadlog/internal/models"
)

var (
	ErrDuplicateMakeKey   = errors.New("make key already registered")
	ErrInvalidMakeKey     = errors.New("invalid make key")
	ErrInvalidDisplayName = errors.New("invalid display name")
)

const maxMakeDisplayNameLength = 80

var makeKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type AccountMakeRepository interface {
	ListByAccount(accountID uuid.UUID) ([]models.AccountMake, error)
	ExistsKey(accountID uuid.UUID, key string) (bool, error)
	Create(accountMake *models.AccountMake) error
}

type AccountMakeService struct {
	accountMakes AccountMakeRepository
}

func NewAccountMakeService(accountMakes AccountMakeRepository) *AccountMakeService {
	return &AccountMakeService{accountMakes: accountMakes}
}

func (service *AccountMakeService) ListForAccount(accountID uuid.UUID) ([]models.AccountMake, error) {
	makes, err := service.accountMakes.ListByAccount(accountID)
	if err != nil {
		return nil, fmt.Errorf("list account makes: %w", err)
	}
	return makes, nil
}

// RegisterMake adds a make type to the account. The key must be unused within
// the account; the same key under a different account is fine.
func (service *AccountMakeService) RegisterMake(accountID uuid.UUID, accountName string, displayName string, key string) (models.AccountMake, error) {
	displayName = strings.TrimSpace(displayName)
	key = strings.ToLower(strings.TrimSpace(key))

	if displayName == "" || len(displayName) > maxMakeDisplayNameLength {
		return models.AccountMake{}, ErrInvalidDisplayName
	}
	if !makeKeyPattern.MatchString(key) {
		return models.AccountMake{}, ErrInvalidMakeKey
	}

	taken, err := service.accountMakes.ExistsKey(accountID, key)
	if err != nil {
		return models.AccountMake{}, fmt.Errorf("check make key: %w", err)
	}
	if taken {
		return models.AccountMake{}, ErrDuplicateMakeKey
	}

	accountMake := models.AccountMake{
		AccountID:   accountID,
		AccountName: accountName,
		DisplayName: displayName,
		Key:         key,
		CreatedAt:   time.Now().UTC(),
	}
	if err := service.accountMakes.Create(&accountMake); err != nil {
		return models.AccountMake{}, fmt.Errorf("create account make: %w", err)
	}
	return accountMake, nil
}
