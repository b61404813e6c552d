package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/models"
	"github.com/junipershade/petal/internal/services"
)

const historyWindowDays = 180

type periodLogInput struct {
	ExpectedDate    string `json:"expected_date"`
	ActualStartDate string `json:"actual_start_date"`
	Duration        *int   `json:"duration"`
	Notes           string `json:"notes"`
}

func periodLogView(entry *models.PeriodLog) fiber.Map {
	view := fiber.Map{
		"id":            entry.ID,
		"expected_date": formatDate(entry.ExpectedDate),
		"delay_days":    entry.DelayDays,
		"notes":         entry.Notes,
	}
	if entry.ActualStartDate != nil {
		view["actual_start_date"] = formatDate(*entry.ActualStartDate)
	}
	if entry.Duration != nil {
		view["duration"] = *entry.Duration
	}
	return view
}

// History returns the last six months of period logs and mood entries,
// newest first.
func (handler *Handler) History(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	today := handler.today()

	logs, err := handler.cycles.PeriodHistory(user.ID, today, historyWindowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load period history")
	}
	logViews := make([]fiber.Map, 0, len(logs))
	for i := range logs {
		logViews = append(logViews, periodLogView(&logs[i]))
	}

	moods, err := handler.wellness.MoodHistory(user.ID, today, historyWindowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load mood history")
	}
	moodViews := make([]fiber.Map, 0, len(moods))
	for _, entry := range moods {
		moodViews = append(moodViews, fiber.Map{
			"date":     formatDate(entry.Date),
			"mood":     entry.Mood,
			"symptoms": entry.Symptoms,
		})
	}

	return c.JSON(fiber.Map{"periods": logViews, "moods": moodViews})
}

func (handler *Handler) AddPeriodLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := periodLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	expected, err := handler.parseDate(input.ExpectedDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "expected_date must be YYYY-MM-DD")
	}
	actual, err := handler.parseOptionalDate(input.ActualStartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "actual_start_date must be YYYY-MM-DD")
	}

	entry, err := handler.cycles.AddPeriodLog(user.ID, expected, actual, input.Duration, input.Notes)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save period log")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"period": periodLogView(entry)})
}

func (handler *Handler) EditPeriodLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period log id")
	}

	input := periodLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	actual, err := handler.parseOptionalDate(input.ActualStartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "actual_start_date must be YYYY-MM-DD")
	}

	entry, err := handler.cycles.EditPeriodLog(user.ID, uint(logID), actual, input.Duration, input.Notes)
	if err != nil {
		if errors.Is(err, services.ErrPeriodLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "period log not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update period log")
	}
	return c.JSON(fiber.Map{"period": periodLogView(entry)})
}
