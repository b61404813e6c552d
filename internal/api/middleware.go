package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/junipershade/petal/internal/models"
)

const (
	authCookieName = "petal_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// AuthRequired resolves the session cookie into the current user or rejects
// the request.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := c.Cookies(authCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	userID, err := handler.parseAuthToken(token)
	if err != nil {
		handler.clearAuthCookie(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		handler.clearAuthCookie(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}
