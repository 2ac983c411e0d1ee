package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	habits := api.Group("/habits")
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/checkin", handler.ToggleCheckIn)
	habits.Post("/:id/notes", handler.AddNote)

	stats := api.Group("/stats")
	stats.Get("/overview", handler.GetStatsOverview)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
