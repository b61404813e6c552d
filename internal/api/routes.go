package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/dashboard", handler.AuthRequired, handler.Dashboard)

	cycle := api.Group("/cycle", handler.AuthRequired)
	cycle.Get("/settings", handler.GetCycleSettings)
	cycle.Post("/settings", handler.UpdateCycleSettings)
	cycle.Get("/status", handler.CycleProgress)
	cycle.Post("/confirm", handler.ConfirmPeriod)
	cycle.Post("/complete", handler.CompletePeriod)

	history := api.Group("/history", handler.AuthRequired)
	history.Get("", handler.History)
	history.Post("/periods", handler.AddPeriodLog)
	history.Put("/periods/:id", handler.EditPeriodLog)

	wellness := api.Group("/wellness", handler.AuthRequired)
	wellness.Post("/mood", handler.TrackMood)
	wellness.Post("/water", handler.TrackWater)
	wellness.Post("/nutrition", handler.TrackNutrition)
	wellness.Get("/self-care", handler.ListSelfCare)
	wellness.Post("/self-care", handler.AddSelfCare)

	content := api.Group("/content", handler.AuthRequired)
	content.Get("/tip", handler.HealthTip)
	content.Get("/tips", handler.CareTips)
	content.Get("/quote", handler.MotivationalQuote)
	content.Get("/advice", handler.LifestyleAdvice)
	content.Get("/favorites", handler.ListFavoriteTips)
	content.Post("/favorites", handler.SaveFavoriteTip)
	content.Delete("/favorites/:id", handler.RemoveFavoriteTip)

	api.Get("/export/report", handler.AuthRequired, handler.ExportReport)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
