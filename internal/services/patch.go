package services

import (
	"time"

	"github.com/rizeup/breadlog/internal/models"
)

// DoughMakePatch is a partial update to a stored dough make. Nil fields are
// left untouched; StretchFolds, when set, replaces the stored list as a whole.
type DoughMakePatch struct {
	AutolyseTS   *time.Time
	MixTS        *time.Time
	BulkTS       *time.Time
	PreshapeTS   *time.Time
	FinalShapeTS *time.Time
	FridgeTS     *time.Time

	RoomTemp        *int
	PrefermentTemp  *int
	WaterTemp       *int
	FlourTemp       *int
	DoughDoneTemp   *int
	TemperatureUnit *string

	StretchFolds models.StretchFoldList
	Notes        *string
}

func (patch DoughMakePatch) IsEmpty() bool {
	return len(patch.Columns()) == 0
}

// Columns maps the set fields to their storage column names for a partial
// UPDATE.
func (patch DoughMakePatch) Columns() map[string]any {
	columns := make(map[string]any)
	if patch.AutolyseTS != nil {
		columns["autolyse_ts"] = *patch.AutolyseTS
	}
	if patch.MixTS != nil {
		columns["mix_ts"] = *patch.MixTS
	}
	if patch.BulkTS != nil {
		columns["bulk_ts"] = *patch.BulkTS
	}
	if patch.PreshapeTS != nil {
		columns["preshape_ts"] = *patch.PreshapeTS
	}
	if patch.FinalShapeTS != nil {
		columns["final_shape_ts"] = *patch.FinalShapeTS
	}
	if patch.FridgeTS != nil {
		columns["fridge_ts"] = *patch.FridgeTS
	}
	if patch.RoomTemp != nil {
		columns["room_temp"] = *patch.RoomTemp
	}
	if patch.PrefermentTemp != nil {
		columns["preferment_temp"] = *patch.PrefermentTemp
	}
	if patch.WaterTemp != nil {
		columns["water_temp"] = *patch.WaterTemp
	}
	if patch.FlourTemp != nil {
		columns["flour_temp"] = *patch.FlourTemp
	}
	if patch.DoughDoneTemp != nil {
		columns["dough_temp"] = *patch.DoughDoneTemp
	}
	if patch.TemperatureUnit != nil {
		columns["temperature_unit"] = *patch.TemperatureUnit
	}
	if patch.StretchFolds != nil {
		columns["stretch_folds"] = patch.StretchFolds
	}
	if patch.Notes != nil {
		columns["notes"] = *patch.Notes
	}
	return columns
}

// MergePatch overlays the patch on a snapshot of the stored make without
// mutating it. The result carries the snapshot's identity and must pass
// timeline validation before it is persisted.
func MergePatch(existing models.DoughMake, patch DoughMakePatch) models.DoughMake {
	merged := existing

	if patch.AutolyseTS != nil {
		merged.AutolyseTS = *patch.AutolyseTS
	}
	if patch.MixTS != nil {
		merged.MixTS = *patch.MixTS
	}
	if patch.BulkTS != nil {
		merged.BulkTS = *patch.BulkTS
	}
	if patch.PreshapeTS != nil {
		merged.PreshapeTS = *patch.PreshapeTS
	}
	if patch.FinalShapeTS != nil {
		merged.FinalShapeTS = *patch.FinalShapeTS
	}
	if patch.FridgeTS != nil {
		merged.FridgeTS = *patch.FridgeTS
	}
	if patch.RoomTemp != nil {
		merged.RoomTemp = *patch.RoomTemp
	}
	if patch.PrefermentTemp != nil {
		value := *patch.PrefermentTemp
		merged.PrefermentTemp = &value
	}
	if patch.WaterTemp != nil {
		value := *patch.WaterTemp
		merged.WaterTemp = &value
	}
	if patch.FlourTemp != nil {
		value := *patch.FlourTemp
		merged.FlourTemp = &value
	}
	if patch.DoughDoneTemp != nil {
		value := *patch.DoughDoneTemp
		merged.DoughDoneTemp = &value
	}
	if patch.TemperatureUnit != nil {
		merged.TemperatureUnit = *patch.TemperatureUnit
	}
	if patch.StretchFolds != nil {
		merged.StretchFolds = append(models.StretchFoldList{}, patch.StretchFolds...)
	}
	if patch.Notes != nil {
		merged.Notes = *patch.Notes
	}

	return merged
}
