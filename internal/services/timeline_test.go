package services

import (
	"errors"
	"testing"
	"time"

	"github.com/rizeup/breadlog/internal/models"
)

func buildMake(autolyse, mix, bulk, preshape, finalShape, fridge time.Time) models.DoughMake {
	return models.DoughMake{
		Name:         "hoagie",
		Date:         time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		AutolyseTS:   autolyse,
		MixTS:        mix,
		BulkTS:       bulk,
		PreshapeTS:   preshape,
		FinalShapeTS: finalShape,
		FridgeTS:     fridge,
		RoomTemp:     72,
	}
}

func at(day int, hour int, minute int) time.Time {
	return time.Date(2024, 12, day, hour, minute, 0, 0, time.UTC)
}

func TestValidateDoughMakeAcceptsIncreasingTimeline(t *testing.T) {
	t.Parallel()

	doughMake := buildMake(
		at(1, 4, 45), at(1, 5, 45), at(1, 6, 5),
		at(1, 8, 45), at(1, 9, 30), at(1, 11, 45),
	)
	if err := ValidateDoughMake(doughMake); err != nil {
		t.Fatalf("expected increasing timeline to validate, got %v", err)
	}
}

func TestValidateDoughMakeAcceptsOvernightMake(t *testing.T) {
	t.Parallel()

	doughMake := buildMake(
		time.Date(2024, 12, 1, 22, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 0, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 4, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 8, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 9, 0, 0, 0, time.UTC),
	)
	if err := ValidateDoughMake(doughMake); err != nil {
		t.Fatalf("expected overnight make to validate, got %v", err)
	}
}

func TestValidateDoughMakeAdjustsSameDateEntriesAcrossMidnight(t *testing.T) {
	t.Parallel()

	// Every step entered against the start date; mix lands after midnight and
	// shows up as a 22-hour backwards jump.
	doughMake := buildMake(
		at(1, 23, 0), at(1, 1, 0), at(1, 4, 0),
		at(1, 8, 0), at(1, 8, 30), at(1, 9, 0),
	)
	if err := ValidateDoughMake(doughMake); err != nil {
		t.Fatalf("expected rollover-adjusted timeline to validate, got %v", err)
	}
}

func TestValidateDoughMakeRejectsShortRegression(t *testing.T) {
	t.Parallel()

	// Bulk is two hours before mix: a true ordering violation, not a
	// midnight crossing.
	doughMake := buildMake(
		at(1, 4, 0), at(1, 6, 0), at(1, 4, 30),
		at(1, 8, 0), at(1, 9, 0), at(1, 10, 0),
	)
	err := ValidateDoughMake(doughMake)
	var orderingErr *OrderingError
	if !errors.As(err, &orderingErr) {
		t.Fatalf("expected OrderingError, got %v", err)
	}
	if orderingErr.Earlier != "Mix" || orderingErr.Later != "Bulk" {
		t.Fatalf("expected Mix/Bulk pair, got %s/%s", orderingErr.Earlier, orderingErr.Later)
	}
	if got := orderingErr.Error(); got != "Mix time must occur before Bulk time" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidateDoughMakeRejectsFridgeBeforeFinalShape(t *testing.T) {
	t.Parallel()

	doughMake := buildMake(
		time.Date(2024, 12, 1, 22, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 0, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 4, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 8, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 2, 7, 0, 0, 0, time.UTC),
	)
	err := ValidateDoughMake(doughMake)
	if err == nil {
		t.Fatal("expected fridge-before-final-shape to fail")
	}
	if got := err.Error(); got != "Final shape time must occur before Fridge time" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidateDoughMakeRejectsEqualTimestamps(t *testing.T) {
	t.Parallel()

	doughMake := buildMake(
		at(1, 4, 0), at(1, 5, 0), at(1, 5, 0),
		at(1, 8, 0), at(1, 9, 0), at(1, 10, 0),
	)
	var orderingErr *OrderingError
	if err := ValidateDoughMake(doughMake); !errors.As(err, &orderingErr) {
		t.Fatalf("expected OrderingError for equal timestamps, got %v", err)
	}
}

func TestValidateTimelineShiftsLaterStepsCumulatively(t *testing.T) {
	t.Parallel()

	// Once the rollover is discovered at the second step, later same-date
	// steps keep shifting forward and the sequence stays ordered.
	steps := []TimelineStep{
		{Label: "Autolyse", At: at(1, 23, 0)},
		{Label: "Mix", At: at(1, 0, 30)},
		{Label: "Bulk", At: at(1, 3, 0)},
	}
	if err := ValidateTimeline(steps); err != nil {
		t.Fatalf("expected cumulative shift to keep ordering, got %v", err)
	}
}
