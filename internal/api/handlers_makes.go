package api

import (
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rizeup/breadlog/internal/models"
	"github.com/rizeup/breadlog/internal/services"
)

type stretchFoldPayload struct {
	FoldNumber int       `json:"fold_number"`
	Timestamp  time.Time `json:"timestamp"`
}

// makePayload is the create-request body. The six process timestamps and the
// room temperature are required; pointer fields make a missing value
// distinguishable from a zero one. Temperatures arrive as floats and are
// stored rounded to whole units.
type makePayload struct {
	AutolyseTS   *time.Time `json:"autolyse_ts"`
	MixTS        *time.Time `json:"mix_ts"`
	BulkTS       *time.Time `json:"bulk_ts"`
	PreshapeTS   *time.Time `json:"preshape_ts"`
	FinalShapeTS *time.Time `json:"final_shape_ts"`
	FridgeTS     *time.Time `json:"fridge_ts"`

	RoomTemp        *float64 `json:"room_temp"`
	PrefermentTemp  *float64 `json:"preferment_temp"`
	WaterTemp       *float64 `json:"water_temp"`
	FlourTemp       *float64 `json:"flour_temp"`
	DoughTemp       *float64 `json:"dough_temp"`
	TemperatureUnit string   `json:"temperature_unit"`

	CreatedAt    *time.Time           `json:"created_at"`
	StretchFolds []stretchFoldPayload `json:"stretch_folds"`
	Notes        string               `json:"notes"`
}

type makePatchPayload struct {
	AutolyseTS   *time.Time `json:"autolyse_ts"`
	MixTS        *time.Time `json:"mix_ts"`
	BulkTS       *time.Time `json:"bulk_ts"`
	PreshapeTS   *time.Time `json:"preshape_ts"`
	FinalShapeTS *time.Time `json:"final_shape_ts"`
	FridgeTS     *time.Time `json:"fridge_ts"`

	RoomTemp        *float64 `json:"room_temp"`
	PrefermentTemp  *float64 `json:"preferment_temp"`
	WaterTemp       *float64 `json:"water_temp"`
	FlourTemp       *float64 `json:"flour_temp"`
	DoughTemp       *float64 `json:"dough_temp"`
	TemperatureUnit *string  `json:"temperature_unit"`

	StretchFolds []stretchFoldPayload `json:"stretch_folds"`
	Notes        *string              `json:"notes"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) CreateMake(c *fiber.Ctx) error {
	if _, ok := currentAccount(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	name := strings.TrimSpace(c.Params("name"))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid make name")
	}

	payload := makePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if missing := payload.missingFields(); missing != "" {
		return apiError(c, fiber.StatusBadRequest, "missing required field: "+missing)
	}

	doughMake := payload.toModel(name, date)
	if err := handler.makes.CreateMake(&doughMake); err != nil {
		return makeErrorStatus(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

func (handler *Handler) ListMakesForDate(c *fiber.Ctx) error {
	if _, ok := currentAccount(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	makes, err := handler.makes.FetchMakesForDate(date)
	if err != nil {
		return makeErrorStatus(c, err)
	}
	return c.JSON(makes)
}

func (handler *Handler) GetMake(c *fiber.Ctx) error {
	if _, ok := currentAccount(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	createdAt, err := parseCreatedAtParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid created_at timestamp format")
	}

	doughMake, err := handler.makes.FetchMake(c.Params("name"), date, createdAt)
	if err != nil {
		return makeErrorStatus(c, err)
	}
	return c.JSON(doughMake)
}

func (handler *Handler) UpdateMake(c *fiber.Ctx) error {
	if _, ok := currentAccount(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	createdAt, err := parseCreatedAtParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid created_at timestamp format")
	}

	payload := makePatchPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.makes.UpdateMake(c.Params("name"), date, createdAt, payload.toPatch()); err != nil {
		return makeErrorStatus(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteMake(c *fiber.Ctx) error {
	if _, ok := currentAccount(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date, err := parseDateParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	createdAt, err := parseCreatedAtParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid created_at timestamp format")
	}

	if err := handler.makes.DeleteMake(c.Params("name"), date, createdAt); err != nil {
		return makeErrorStatus(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (payload makePayload) missingFields() string {
	switch {
	case payload.AutolyseTS == nil:
		return "autolyse_ts"
	case payload.MixTS == nil:
		return "mix_ts"
	case payload.BulkTS == nil:
		return "bulk_ts"
	case payload.PreshapeTS == nil:
		return "preshape_ts"
	case payload.FinalShapeTS == nil:
		return "final_shape_ts"
	case payload.FridgeTS == nil:
		return "fridge_ts"
	case payload.RoomTemp == nil:
		return "room_temp"
	}
	return ""
}

func (payload makePayload) toModel(name string, date time.Time) models.DoughMake {
	doughMake := models.DoughMake{
		Name:            name,
		Date:            date,
		AutolyseTS:      *payload.AutolyseTS,
		MixTS:           *payload.MixTS,
		BulkTS:          *payload.BulkTS,
		PreshapeTS:      *payload.PreshapeTS,
		FinalShapeTS:    *payload.FinalShapeTS,
		FridgeTS:        *payload.FridgeTS,
		RoomTemp:        roundTemp(*payload.RoomTemp),
		PrefermentTemp:  roundOptionalTemp(payload.PrefermentTemp),
		WaterTemp:       roundOptionalTemp(payload.WaterTemp),
		FlourTemp:       roundOptionalTemp(payload.FlourTemp),
		DoughDoneTemp:   roundOptionalTemp(payload.DoughTemp),
		TemperatureUnit: payload.TemperatureUnit,
		StretchFolds:    toStretchFolds(payload.StretchFolds),
		Notes:           payload.Notes,
	}
	if doughMake.TemperatureUnit == "" {
		doughMake.TemperatureUnit = models.TempUnitFahrenheit
	}
	if payload.CreatedAt != nil {
		doughMake.CreatedAt = payload.CreatedAt.UTC()
	}
	return doughMake
}

func (payload makePatchPayload) toPatch() services.DoughMakePatch {
	return services.DoughMakePatch{
		AutolyseTS:      payload.AutolyseTS,
		MixTS:           payload.MixTS,
		BulkTS:          payload.BulkTS,
		PreshapeTS:      payload.PreshapeTS,
		FinalShapeTS:    payload.FinalShapeTS,
		FridgeTS:        payload.FridgeTS,
		RoomTemp:        roundOptionalTemp(payload.RoomTemp),
		PrefermentTemp:  roundOptionalTemp(payload.PrefermentTemp),
		WaterTemp:       roundOptionalTemp(payload.WaterTemp),
		FlourTemp:       roundOptionalTemp(payload.FlourTemp),
		DoughDoneTemp:   roundOptionalTemp(payload.DoughTemp),
		TemperatureUnit: payload.TemperatureUnit,
		StretchFolds:    toStretchFolds(payload.StretchFolds),
		Notes:           payload.Notes,
	}
}

func toStretchFolds(payloads []stretchFoldPayload) models.StretchFoldList {
	if payloads == nil {
		return nil
	}
	folds := make(models.StretchFoldList, 0, len(payloads))
	for _, fold := range payloads {
		folds = append(folds, models.StretchFold{
			FoldNumber: fold.FoldNumber,
			Timestamp:  fold.Timestamp,
		})
	}
	return folds
}

func roundTemp(value float64) int {
	return int(math.Round(value))
}

func roundOptionalTemp(value *float64) *int {
	if value == nil {
		return nil
	}
	rounded := roundTemp(*value)
	return &rounded
}
