package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const exportLogLimit = 50

// ExportReport streams the user's cycle report as a PDF attachment.
func (handler *Handler) ExportReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.cycles.RecentPeriodLogs(user.ID, exportLogLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load period history")
	}

	report, err := handler.exporter.BuildReport(user, logs)
	if err != nil {
		handler.log.WithError(err).Error("report rendering failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to render report")
	}

	fileName := handler.exporter.ReportFileName(user, handler.today())
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(report)
}
