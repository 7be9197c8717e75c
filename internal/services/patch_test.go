package services

import (
	"testing"

	"github.com/rizeup/breadlog/internal/models"
)

func TestMergePatchLeavesSnapshotUntouched(t *testing.T) {
	t.Parallel()

	existing := buildMake(
		at(1, 4, 45), at(1, 5, 45), at(1, 6, 5),
		at(1, 8, 45), at(1, 9, 30), at(1, 11, 45),
	)
	existing.Notes = "original"
	existing.StretchFolds = models.StretchFoldList{{FoldNumber: 1, Timestamp: at(1, 6, 30)}}

	newNotes := "better crumb"
	newMix := at(1, 5, 50)
	merged := MergePatch(existing, DoughMakePatch{Notes: &newNotes, MixTS: &newMix})

	if existing.Notes != "original" || !existing.MixTS.Equal(at(1, 5, 45)) {
		t.Fatal("expected the stored snapshot to stay unchanged")
	}
	if merged.Notes != "better crumb" || !merged.MixTS.Equal(newMix) {
		t.Fatalf("expected patched fields applied, got notes=%q mix=%v", merged.Notes, merged.MixTS)
	}
	if !merged.AutolyseTS.Equal(existing.AutolyseTS) || merged.RoomTemp != existing.RoomTemp {
		t.Fatal("expected unpatched fields carried over")
	}
}

func TestMergePatchReplacesStretchFoldsAtomically(t *testing.T) {
	t.Parallel()

	existing := buildMake(
		at(1, 4, 45), at(1, 5, 45), at(1, 6, 5),
		at(1, 8, 45), at(1, 9, 30), at(1, 11, 45),
	)
	existing.StretchFolds = models.StretchFoldList{
		{FoldNumber: 1, Timestamp: at(1, 6, 30)},
		{FoldNumber: 2, Timestamp: at(1, 7, 0)},
	}

	replacement := models.StretchFoldList{{FoldNumber: 1, Timestamp: at(1, 6, 45)}}
	merged := MergePatch(existing, DoughMakePatch{StretchFolds: replacement})

	if len(merged.StretchFolds) != 1 || !merged.StretchFolds[0].Timestamp.Equal(at(1, 6, 45)) {
		t.Fatalf("expected whole-list replacement, got %+v", merged.StretchFolds)
	}
	if len(existing.StretchFolds) != 2 {
		t.Fatal("expected the stored fold list to stay unchanged")
	}
}

func TestMergePatchKeepsStretchFoldsWhenAbsent(t *testing.T) {
	t.Parallel()

	existing := buildMake(
		at(1, 4, 45), at(1, 5, 45), at(1, 6, 5),
		at(1, 8, 45), at(1, 9, 30), at(1, 11, 45),
	)
	existing.StretchFolds = models.StretchFoldList{{FoldNumber: 1, Timestamp: at(1, 6, 30)}}

	roomTemp := 70
	merged := MergePatch(existing, DoughMakePatch{RoomTemp: &roomTemp})
	if len(merged.StretchFolds) != 1 {
		t.Fatalf("expected folds preserved, got %+v", merged.StretchFolds)
	}
	if merged.RoomTemp != 70 {
		t.Fatalf("expected room temp patched, got %d", merged.RoomTemp)
	}
}

func TestPatchColumnsListsOnlySetFields(t *testing.T) {
	t.Parallel()

	if !(DoughMakePatch{}).IsEmpty() {
		t.Fatal("expected zero patch to be empty")
	}

	fridge := at(2, 9, 0)
	waterTemp := 80
	unit := models.TempUnitCelsius
	patch := DoughMakePatch{FridgeTS: &fridge, WaterTemp: &waterTemp, TemperatureUnit: &unit}

	columns := patch.Columns()
	if len(columns) != 3 {
		t.Fatalf("expected 3 columns, got %v", columns)
	}
	if _, ok := columns["fridge_ts"]; !ok {
		t.Fatal("expected fridge_ts column")
	}
	if columns["water_temp"] != 80 {
		t.Fatalf("expected water_temp 80, got %v", columns["water_temp"])
	}
	if columns["temperature_unit"] != models.TempUnitCelsius {
		t.Fatalf("expected Celsius unit, got %v", columns["temperature_unit"])
	}
}

func TestPatchWithEmptyFoldListCountsAsSet(t *testing.T) {
	t.Parallel()

	patch := DoughMakePatch{StretchFolds: models.StretchFoldList{}}
	if patch.IsEmpty() {
		t.Fatal("expected an explicit empty fold list to clear the stored list")
	}

	existing := buildMake(
		at(1, 4, 45), at(1, 5, 45), at(1, 6, 5),
		at(1, 8, 45), at(1, 9, 30), at(1, 11, 45),
	)
	existing.StretchFolds = models.StretchFoldList{{FoldNumber: 1, Timestamp: at(1, 6, 30)}}

	merged := MergePatch(existing, patch)
	if len(merged.StretchFolds) != 0 {
		t.Fatalf("expected folds cleared, got %+v", merged.StretchFolds)
	}
}
