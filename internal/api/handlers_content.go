package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/models"
	"github.com/junipershade/petal/internal/services"
)

type favoriteTipInput struct {
	TipText  string `json:"tip_text"`
	Category string `json:"category"`
}

func (handler *Handler) HealthTip(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tip": handler.content.HealthTip()})
}

// CareTips returns the tip lists for a mood and, when given, a symptom.
// Defaults to today's tracked mood.
func (handler *Handler) CareTips(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	mood := strings.TrimSpace(c.Query("mood"))
	if mood == "" {
		if entry, found, err := handler.wellness.MoodForDay(user.ID, handler.today()); err == nil && found {
			mood = entry.Mood
		}
	}

	response := fiber.Map{"mood_tips": services.TipsForMood(mood)}
	if symptom := strings.TrimSpace(c.Query("symptom")); symptom != "" {
		response["symptom_tips"] = services.TipsForSymptom(symptom)
	}
	return c.JSON(response)
}

// MotivationalQuote picks a quote for the mood query parameter, or for
// today's tracked mood when none is given.
func (handler *Handler) MotivationalQuote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	mood := strings.TrimSpace(c.Query("mood"))
	if mood == "" {
		if entry, found, err := handler.wellness.MoodForDay(user.ID, handler.today()); err == nil && found {
			mood = entry.Mood
		}
	}
	return c.JSON(fiber.Map{"quote": handler.content.MotivationalQuote(mood)})
}

func (handler *Handler) LifestyleAdvice(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"conditions": user.ConditionNames(),
		"advice":     services.LifestyleAdvice(user),
	})
}

func (handler *Handler) ListFavoriteTips(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tips, err := handler.repositories.Wellness.ListFavorites(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load favorites")
	}

	views := make([]fiber.Map, 0, len(tips))
	for _, tip := range tips {
		views = append(views, fiber.Map{
			"id":       tip.ID,
			"tip_text": tip.TipText,
			"category": tip.Category,
		})
	}
	return c.JSON(fiber.Map{"favorites": views})
}

// SaveFavoriteTip stores a tip once per user; saving the same text again
// returns the existing row.
func (handler *Handler) SaveFavoriteTip(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := favoriteTipInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input.TipText = strings.TrimSpace(input.TipText)
	if input.TipText == "" {
		return apiError(c, fiber.StatusBadRequest, "tip_text is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		input.Category = "general"
	}

	existing, found, err := handler.repositories.Wellness.FindFavoriteByText(user.ID, input.TipText)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save favorite")
	}
	if found {
		return c.JSON(fiber.Map{"favorite": fiber.Map{
			"id":       existing.ID,
			"tip_text": existing.TipText,
			"category": existing.Category,
		}})
	}

	tip := models.FavoriteTip{
		UserID:   user.ID,
		TipText:  input.TipText,
		Category: input.Category,
	}
	if err := handler.repositories.Wellness.CreateFavorite(&tip); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save favorite")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"favorite": fiber.Map{
		"id":       tip.ID,
		"tip_text": tip.TipText,
		"category": tip.Category,
	}})
}

func (handler *Handler) RemoveFavoriteTip(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tipID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid favorite id")
	}

	deleted, err := handler.repositories.Wellness.DeleteFavorite(user.ID, uint(tipID))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete favorite")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "favorite not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
