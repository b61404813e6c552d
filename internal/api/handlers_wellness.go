package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/services"
)

const selfCareWindowDays = 7

type moodInput struct {
	Date     string `json:"date"`
	Mood     string `json:"mood"`
	Symptoms string `json:"symptoms"`
}

type waterInput struct {
	Date       string  `json:"date"`
	DrankWater bool    `json:"drank_water"`
	Liters     float64 `json:"liters"`
}

type nutritionInput struct {
	Date        string `json:"date"`
	AteIronRich bool   `json:"ate_iron_rich"`
	AteHealthy  bool   `json:"ate_healthy"`
	Notes       string `json:"notes"`
}

type selfCareInput struct {
	Date            string `json:"date"`
	ActivityType    string `json:"activity_type"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

// TrackMood stores today's (or the given day's) mood, replacing any earlier
// entry for that day, and returns mood-matched tips alongside.
func (handler *Handler) TrackMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.requestDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	entry, err := handler.wellness.UpsertMood(user.ID, day, input.Mood, input.Symptoms)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWellnessInput) {
			return apiError(c, fiber.StatusBadRequest, "mood is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood")
	}

	return c.JSON(fiber.Map{
		"mood": fiber.Map{
			"date":     formatDate(entry.Date),
			"mood":     entry.Mood,
			"symptoms": entry.Symptoms,
		},
		"quote": handler.content.MotivationalQuote(entry.Mood),
		"tips":  services.TipsForMood(entry.Mood),
	})
}

func (handler *Handler) TrackWater(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := waterInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.requestDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	entry, err := handler.wellness.UpsertWater(user.ID, day, input.DrankWater, input.Liters)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWellnessInput) {
			return apiError(c, fiber.StatusBadRequest, "liters must not be negative")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save water entry")
	}

	stats, err := handler.wellness.WeeklyWaterStats(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load water stats")
	}

	return c.JSON(fiber.Map{
		"water": fiber.Map{
			"date":        formatDate(entry.Date),
			"drank_water": entry.DrankWater,
			"liters":      entry.Liters,
		},
		"week": stats,
	})
}

func (handler *Handler) TrackNutrition(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := nutritionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.requestDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	entry, err := handler.wellness.UpsertNutrition(user.ID, day, input.AteIronRich, input.AteHealthy, input.Notes)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save nutrition entry")
	}

	stats, err := handler.wellness.WeeklyNutritionStats(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load nutrition stats")
	}

	return c.JSON(fiber.Map{
		"nutrition": fiber.Map{
			"date":          formatDate(entry.Date),
			"ate_iron_rich": entry.AteIronRich,
			"ate_healthy":   entry.AteHealthy,
			"notes":         entry.Notes,
		},
		"week": stats,
	})
}

func (handler *Handler) ListSelfCare(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.wellness.RecentSelfCare(user.ID, handler.today(), selfCareWindowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load self-care activities")
	}

	views := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		views = append(views, fiber.Map{
			"id":               entry.ID,
			"date":             formatDate(entry.Date),
			"activity_type":    entry.ActivityType,
			"duration_minutes": entry.DurationMinutes,
			"notes":            entry.Notes,
		})
	}
	return c.JSON(fiber.Map{"activities": views})
}

func (handler *Handler) AddSelfCare(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := selfCareInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := handler.requestDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	entry, err := handler.wellness.AddSelfCare(user.ID, day, input.ActivityType, input.DurationMinutes, input.Notes)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWellnessInput) {
			return apiError(c, fiber.StatusBadRequest, "activity_type is required and duration must not be negative")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save self-care activity")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"activity": fiber.Map{
			"id":               entry.ID,
			"date":             formatDate(entry.Date),
			"activity_type":    entry.ActivityType,
			"duration_minutes": entry.DurationMinutes,
			"notes":            entry.Notes,
		},
	})
}
