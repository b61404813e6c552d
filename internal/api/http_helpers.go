package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// parseDate parses a YYYY-MM-DD value in the handler's location.
func (handler *Handler) parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(raw), handler.location)
}

// parseOptionalDate returns nil for empty input.
func (handler *Handler) parseOptionalDate(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, trimmed, handler.location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// requestDay resolves an optional date field to its value or today.
func (handler *Handler) requestDay(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return handler.today(), nil
	}
	return handler.parseDate(raw)
}

func formatDate(value time.Time) string {
	return value.Format(dateLayout)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
