package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/services"
)

// Dashboard aggregates everything the landing view shows: cycle status and
// predictions, today's mood, weekly tracker stats, condition advice, and a
// tip and quote.
func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	today := handler.today()

	response := fiber.Map{
		"user": fiber.Map{
			"name":       user.Name,
			"email":      user.Email,
			"conditions": user.ConditionNames(),
		},
		"health_tip": handler.content.HealthTip(),
	}

	status, err := handler.cycles.DeriveStatus(user.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to derive cycle status")
	}
	response["configured"] = status != nil
	if status != nil {
		response["status"] = status

		if next, hasNext, err := handler.cycles.NextPeriod(user.ID); err == nil && hasNext {
			response["next_period"] = formatDate(next)
		}
		if start, end, hasWindow, err := handler.cycles.OvulationWindow(user.ID); err == nil && hasWindow {
			response["ovulation_window"] = fiber.Map{"start": formatDate(start), "end": formatDate(end)}
		}
		outlook, err := handler.cycles.Outlook(user.ID, today)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to derive outlook")
		}
		response["outlook"] = outlook
	}

	mood := ""
	if entry, found, err := handler.wellness.MoodForDay(user.ID, today); err == nil && found {
		mood = entry.Mood
		response["mood"] = fiber.Map{
			"mood":     entry.Mood,
			"symptoms": entry.Symptoms,
		}
	}
	response["quote"] = handler.content.MotivationalQuote(mood)

	water, err := handler.wellness.WeeklyWaterStats(user.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load water stats")
	}
	response["water_week"] = water

	nutrition, err := handler.wellness.WeeklyNutritionStats(user.ID, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load nutrition stats")
	}
	response["nutrition_week"] = nutrition

	if advice := services.LifestyleAdvice(user); len(advice) > 0 {
		response["lifestyle_advice"] = advice
	}

	return c.JSON(response)
}
