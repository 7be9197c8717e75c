package services

import (
	"fmt"
	"time"

	"github.com/rizeup/breadlog/internal/models"
)

// Bakers enter every step time against the day the make started, so a step
// landing after midnight shows up as a large backwards jump. Anything more
// than this far behind the previous step is treated as next-day.
const dayRolloverThreshold = 12 * time.Hour

const (
	labelAutolyse   = "Autolyse"
	labelMix        = "Mix"
	labelBulk       = "Bulk"
	labelPreshape   = "Preshape"
	labelFinalShape = "Final shape"
	labelFridge     = "Fridge"
)

type TimelineStep struct {
	Label string
	At    time.Time
}

// OrderingError reports the first adjacent pair of process steps that is out
// of chronological order after day-rollover adjustment.
type OrderingError struct {
	Earlier string
	Later   string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("%s time must occur before %s time", e.Earlier, e.Later)
}

// ValidateTimeline checks that the steps run strictly forward in time.
// A cumulative day offset handles a single midnight crossing: when a raw
// timestamp falls more than 12 hours behind the previous adjusted one it is
// shifted forward a day, and every later step inherits the accumulated shift.
// Equal adjacent timestamps are rejected; process steps are discrete events.
func ValidateTimeline(steps []TimelineStep) error {
	adjusted := adjustForDayRollover(steps)
	for i := 0; i < len(adjusted)-1; i++ {
		if !adjusted[i+1].After(adjusted[i]) {
			return &OrderingError{Earlier: steps[i].Label, Later: steps[i+1].Label}
		}
	}
	return nil
}

func adjustForDayRollover(steps []TimelineStep) []time.Time {
	adjusted := make([]time.Time, 0, len(steps))
	daysAdded := 0

	for i, step := range steps {
		if i == 0 {
			adjusted = append(adjusted, step.At)
			continue
		}

		previous := adjusted[i-1]
		current := step.At
		if current.Before(previous) && previous.Sub(current) > dayRolloverThreshold {
			daysAdded++
		}
		if daysAdded > 0 {
			current = current.AddDate(0, 0, daysAdded)
		}
		adjusted = append(adjusted, current)
	}

	return adjusted
}

// ValidateDoughMake runs the six process timestamps of a make through the
// timeline check in their fixed order.
func ValidateDoughMake(doughMake models.DoughMake) error {
	return ValidateTimeline([]TimelineStep{
		{Label: labelAutolyse, At: doughMake.AutolyseTS},
		{Label: labelMix, At: doughMake.MixTS},
		{Label: labelBulk, At: doughMake.BulkTS},
		{Label: labelPreshape, At: doughMake.PreshapeTS},
		{Label: labelFinalShape, At: doughMake.FinalShapeTS},
		{Label: labelFridge, At: doughMake.FridgeTS},
	})
}
