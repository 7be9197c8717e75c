package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

const (
	TempUnitFahrenheit = "Fahrenheit"
	TempUnitCelsius    = "Celsius"
)

// StretchFold is one timestamped stretch-and-fold event during bulk
// fermentation.
type StretchFold struct {
	FoldNumber int       `json:"fold_number"`
	Timestamp  time.Time `json:"timestamp"`
}

// StretchFoldList is stored as a single JSON column on the dough make row.
// Reads tolerate both a plain JSON array and a double-encoded JSON string;
// malformed blobs degrade to an empty list with a logged warning instead of
// failing the whole read.
type StretchFoldList []StretchFold

func (list StretchFoldList) Value() (driver.Value, error) {
	if list == nil {
		list = StretchFoldList{}
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode stretch folds: %w", err)
	}
	return string(encoded), nil
}

func (list *StretchFoldList) Scan(value any) error {
	if value == nil {
		*list = StretchFoldList{}
		return nil
	}

	var raw []byte
	switch typed := value.(type) {
	case []byte:
		raw = typed
	case string:
		raw = []byte(typed)
	default:
		return fmt.Errorf("scan stretch folds: unsupported column type %T", value)
	}

	folds := make([]StretchFold, 0)
	if err := json.Unmarshal(raw, &folds); err == nil {
		*list = folds
		return nil
	}

	// Some rows carry the list double-encoded as a JSON string.
	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &folds); err == nil {
			*list = folds
			return nil
		}
	}

	log.Printf("discarding malformed stretch_folds blob: %q", raw)
	*list = StretchFoldList{}
	return nil
}

// DoughMake is one recorded bake of a named dough on a calendar date.
// Multiple makes of the same name on the same date are disambiguated by
// created_at.
type DoughMake struct {
	ID   uint      `gorm:"primaryKey" json:"-"`
	Name string    `gorm:"not null;uniqueIndex:uidx_make_identity" json:"name"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex:uidx_make_identity" json:"date"`

	AutolyseTS   time.Time `gorm:"column:autolyse_ts;not null" json:"autolyse_ts"`
	MixTS        time.Time `gorm:"column:mix_ts;not null" json:"mix_ts"`
	BulkTS       time.Time `gorm:"column:bulk_ts;not null" json:"bulk_ts"`
	PreshapeTS   time.Time `gorm:"column:preshape_ts;not null" json:"preshape_ts"`
	FinalShapeTS time.Time `gorm:"column:final_shape_ts;not null" json:"final_shape_ts"`
	FridgeTS     time.Time `gorm:"column:fridge_ts;not null" json:"fridge_ts"`

	RoomTemp        int    `gorm:"not null" json:"room_temp"`
	PrefermentTemp  *int   `json:"preferment_temp,omitempty"`
	WaterTemp       *int   `json:"water_temp,omitempty"`
	FlourTemp       *int   `json:"flour_temp,omitempty"`
	DoughDoneTemp   *int   `gorm:"column:dough_temp" json:"dough_temp,omitempty"`
	TemperatureUnit string `gorm:"not null;default:Fahrenheit" json:"temperature_unit"`

	StretchFolds StretchFoldList `gorm:"type:text" json:"stretch_folds"`
	Notes        string          `json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null;uniqueIndex:uidx_make_identity" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DoughMake) TableName() string { return "dough_makes" }
