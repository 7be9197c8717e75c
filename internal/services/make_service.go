package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rizeup/breadlog/internal/models"
)

var (
	ErrMakeNotFound = errors.New("dough make not found")
	ErrEmptyPatch   = errors.New("no fields to update")
)

type DoughMakeRepository interface {
	Insert(doughMake *models.DoughMake) error
	FindByIdentity(name string, day time.Time, createdAt time.Time) (models.DoughMake, bool, error)
	ListByDate(day time.Time) ([]models.DoughMake, error)
	UpdateFields(name string, day time.Time, createdAt time.Time, updates map[string]any) (int64, error)
	Delete(name string, day time.Time, createdAt time.Time) (int64, error)
}

type MakeService struct {
	makes DoughMakeRepository
}

func NewMakeService(makes DoughMakeRepository) *MakeService {
	return &MakeService{makes: makes}
}

// CreateMake validates the process timeline and inserts the record. When the
// client does not supply created_at, the server assigns it; created_at is part
// of the make's identity and disambiguates same-name makes on one date.
func (service *MakeService) CreateMake(doughMake *models.DoughMake) error {
	if doughMake.CreatedAt.IsZero() {
		doughMake.CreatedAt = time.Now().UTC()
	}
	if err := ValidateDoughMake(*doughMake); err != nil {
		return err
	}
	if err := service.makes.Insert(doughMake); err != nil {
		return fmt.Errorf("insert dough make: %w", err)
	}
	return nil
}

func (service *MakeService) FetchMake(name string, day time.Time, createdAt time.Time) (models.DoughMake, error) {
	doughMake, found, err := service.makes.FindByIdentity(name, day, createdAt)
	if err != nil {
		return models.DoughMake{}, fmt.Errorf("load dough make: %w", err)
	}
	if !found {
		return models.DoughMake{}, ErrMakeNotFound
	}
	return doughMake, nil
}

func (service *MakeService) FetchMakesForDate(day time.Time) ([]models.DoughMake, error) {
	makes, err := service.makes.ListByDate(day)
	if err != nil {
		return nil, fmt.Errorf("list dough makes: %w", err)
	}
	return makes, nil
}

// UpdateMake merges the patch over the stored record, re-validates the merged
// timeline, then persists only the patched columns plus a server-set
// updated_at. Concurrent patches to one identity follow read-merge-write with
// no locking; last write wins.
func (service *MakeService) UpdateMake(name string, day time.Time, createdAt time.Time, patch DoughMakePatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	existing, err := service.FetchMake(name, day, createdAt)
	if err != nil {
		return err
	}

	merged := MergePatch(existing, patch)
	if err := ValidateDoughMake(merged); err != nil {
		return err
	}

	updates := patch.Columns()
	updates["updated_at"] = time.Now().UTC()
	affected, err := service.makes.UpdateFields(name, day, createdAt, updates)
	if err != nil {
		return fmt.Errorf("update dough make: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update dough make: no rows affected")
	}
	return nil
}

func (service *MakeService) DeleteMake(name string, day time.Time, createdAt time.Time) error {
	affected, err := service.makes.Delete(name, day, createdAt)
	if err != nil {
		return fmt.Errorf("delete dough make: %w", err)
	}
	if affected == 0 {
		return ErrMakeNotFound
	}
	return nil
}
