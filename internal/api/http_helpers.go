package api

import (
	"errors"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rizeup/breadlog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseDateParams turns the year/month/day path segments into a calendar
// date. Components that do not form a real date (a February 30th, a month 13)
// are rejected.
func parseDateParams(c *fiber.Ctx) (time.Time, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return time.Time{}, err
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil {
		return time.Time{}, err
	}
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil {
		return time.Time{}, err
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, errors.New("no such calendar date")
	}
	return date, nil
}

// parseCreatedAtParam reads the identity disambiguator path segment as an
// RFC 3339 timestamp. A malformed value is a client error distinct from a
// missing record.
func parseCreatedAtParam(c *fiber.Ctx) (time.Time, error) {
	raw, err := url.PathUnescape(c.Params("created_at"))
	if err != nil {
		return time.Time{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, err
	}
	return createdAt.UTC(), nil
}

// makeErrorStatus translates service errors into responses. Validation
// details reach the client; storage failures are logged with their cause and
// answered generically.
func makeErrorStatus(c *fiber.Ctx, err error) error {
	var orderingErr *services.OrderingError
	switch {
	case errors.As(err, &orderingErr):
		return apiError(c, fiber.StatusBadRequest, orderingErr.Error())
	case errors.Is(err, services.ErrEmptyPatch):
		return apiError(c, fiber.StatusBadRequest, "no valid fields to update were provided")
	case errors.Is(err, services.ErrMakeNotFound):
		return apiError(c, fiber.StatusNotFound, "dough make not found")
	case errors.Is(err, services.ErrDuplicateMakeKey):
		return apiError(c, fiber.StatusConflict, "a make with a similar name already exists")
	case errors.Is(err, services.ErrInvalidMakeKey), errors.Is(err, services.ErrInvalidDisplayName), errors.Is(err, services.ErrInvalidRecipeName):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
