package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/setup", handler.Setup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	readings := api.Group("/readings", handler.AuthRequired)
	readings.Get("", handler.GetReadings)
	readings.Post("", handler.CreateReading)
	readings.Delete("/:id", handler.DeleteReading)

	notes := api.Group("/notes", handler.AuthRequired)
	notes.Get("", handler.GetNotes)
	notes.Post("", handler.CreateNote)
	notes.Delete("/:id", handler.DeleteNote)

	cycleStarts := api.Group("/cycle-starts", handler.AuthRequired)
	cycleStarts.Get("", handler.GetCycleStarts)
	cycleStarts.Post("", handler.CreateCycleStart)
	cycleStarts.Delete("/:id", handler.DeleteCycleStart)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)

	graph := api.Group("/graph", handler.AuthRequired)
	graph.Get("/series", handler.GetGraphSeries)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	api.Post("/import", handler.AuthRequired, handler.ImportSnapshot)
	api.Post("/maintenance/cleanup", handler.AuthRequired, handler.CleanupOldData)
}
