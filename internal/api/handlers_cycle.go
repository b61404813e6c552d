package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/activity"
	"github.com/junipershade/petal/internal/models"
	"github.com/junipershade/petal/internal/services"
)

type cycleSettingsInput struct {
	CycleLength  int    `json:"cycle_length"`
	PeriodLength int    `json:"period_length"`
	StartDate    string `json:"start_date"`
}

type confirmPeriodInput struct {
	HasStarted bool `json:"has_started"`
}

type completePeriodInput struct {
	Duration *int   `json:"duration"`
	Notes    string `json:"notes"`
}

func settingsView(settings *models.CycleSettings) fiber.Map {
	return fiber.Map{
		"cycle_length":  settings.CycleLength,
		"period_length": settings.PeriodLength,
		"start_date":    formatDate(settings.StartDate),
	}
}

func (handler *Handler) GetCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, err := handler.cycles.Settings(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	if settings == nil {
		return c.JSON(fiber.Map{"configured": false})
	}
	return c.JSON(fiber.Map{"configured": true, "settings": settingsView(settings)})
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := cycleSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.CycleLength == 0 {
		input.CycleLength = models.DefaultCycleLength
	}
	if input.PeriodLength == 0 {
		input.PeriodLength = models.DefaultPeriodLength
	}

	startDate, err := handler.parseDate(input.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}

	settings, err := handler.cycles.SaveSettings(user.ID, input.CycleLength, input.PeriodLength, startDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "cycle and period lengths must be positive")
	}
	return c.JSON(fiber.Map{"configured": true, "settings": settingsView(settings)})
}

// CycleProgress reports the derived status plus the predictions the
// dashboard widgets need.
func (handler *Handler) CycleProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status, err := handler.cycles.DeriveStatus(user.ID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to derive cycle status")
	}
	if status == nil {
		return c.JSON(fiber.Map{"configured": false})
	}

	response := fiber.Map{"configured": true, "status": status}
	if next, hasNext, err := handler.cycles.NextPeriod(user.ID); err == nil && hasNext {
		response["next_period"] = formatDate(next)
	}
	if start, end, hasWindow, err := handler.cycles.OvulationWindow(user.ID); err == nil && hasWindow {
		response["ovulation_window"] = fiber.Map{"start": formatDate(start), "end": formatDate(end)}
	}
	return c.JSON(response)
}

// ConfirmPeriod answers the "has your period started?" prompt. A yes swaps
// in a fresh active period; a no just returns the delay and a supportive
// message.
func (handler *Handler) ConfirmPeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := confirmPeriodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.HasStarted {
		status, err := handler.cycles.ConfirmPeriodStart(user.ID, handler.today())
		if err != nil {
			if errors.Is(err, services.ErrNoCycleSettings) {
				return apiError(c, fiber.StatusNotFound, "cycle settings not configured")
			}
			return apiError(c, fiber.StatusInternalServerError, "failed to confirm period")
		}
		handler.activity.Log(activity.NewEvent(activity.ActionPeriodConfirmed, user.ID, user.Email, user.Name, c.IP()))
		return c.JSON(fiber.Map{"status": status})
	}

	delay, message, err := handler.cycles.ConfirmPeriodDelayed(user.ID, handler.today())
	if err != nil {
		if errors.Is(err, services.ErrNoCycleSettings) {
			return apiError(c, fiber.StatusNotFound, "cycle settings not configured")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to record answer")
	}
	handler.activity.Log(activity.NewEvent(activity.ActionPeriodDelayed, user.ID, user.Email, user.Name, c.IP()))
	return c.JSON(fiber.Map{"delay_days": delay, "message": message})
}

func (handler *Handler) CompletePeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := completePeriodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Duration != nil && *input.Duration <= 0 {
		return apiError(c, fiber.StatusBadRequest, "duration must be positive")
	}

	status, err := handler.cycles.CompletePeriod(user.ID, input.Duration, input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoCycleSettings):
			return apiError(c, fiber.StatusNotFound, "cycle settings not configured")
		case errors.Is(err, services.ErrNoActivePeriod):
			return apiError(c, fiber.StatusConflict, "no active period to complete")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to complete period")
		}
	}

	handler.activity.Log(activity.NewEvent(activity.ActionPeriodCompleted, user.ID, user.Email, user.Name, c.IP()))
	return c.JSON(fiber.Map{"status": status})
}
