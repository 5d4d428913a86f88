package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("", handler.GetDays)
	days.Get("/:date/score", handler.GetDayScore)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	// Stateless calculators. They evaluate the posted snapshot as-is and
	// never touch stored data.
	api.Post("/score", handler.AuthRequired, handler.ComputeScore)
	api.Post("/srs/preview", handler.AuthRequired, handler.PreviewReview)
	api.Post("/streak", handler.AuthRequired, handler.ComputeStreak)
	api.Post("/aggregate", handler.AuthRequired, handler.Aggregate)

	api.Get("/streaks/:habit", handler.AuthRequired, handler.GetStreak)

	notes := api.Group("/notes", handler.AuthRequired)
	notes.Get("", handler.ListNotes)
	notes.Post("", handler.CreateNote)
	notes.Get("/due", handler.DueNotes)
	notes.Put("/:id", handler.UpdateNote)
	notes.Delete("/:id", handler.DeleteNote)
	notes.Post("/:id/review", handler.ReviewNote)

	library := api.Group("/library", handler.AuthRequired)
	library.Get("", handler.ListLibrary)
	library.Post("", handler.CreateLibraryItem)
	library.Put("/:id", handler.UpdateLibraryItem)
	library.Delete("/:id", handler.DeleteLibraryItem)

	sessions := api.Group("/sessions", handler.AuthRequired)
	sessions.Get("/reading", handler.ListReadingSessions)
	sessions.Post("/reading", handler.CreateReadingSession)
	sessions.Delete("/reading/:id", handler.DeleteReadingSession)
	sessions.Get("/media", handler.ListMediaSessions)
	sessions.Post("/media", handler.CreateMediaSession)
	sessions.Delete("/media/:id", handler.DeleteMediaSession)

	transactions := api.Group("/transactions", handler.AuthRequired)
	transactions.Get("", handler.ListTransactions)
	transactions.Post("", handler.CreateTransaction)
	transactions.Delete("/:id", handler.DeleteTransaction)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/range", handler.GetRangeStats)
	stats.Get("/scores", handler.GetScoreSummary)
	stats.Get("/heatmap", handler.GetScoreHeatmap)
	stats.Get("/ytd", handler.GetYearToDate)
	stats.Get("/media", handler.GetMediaMinutes)
	stats.Get("/review", handler.GetPeriodicReview)

	reviews := api.Group("/reviews", handler.AuthRequired)
	reviews.Get("", handler.ListPeriodicReviews)
	reviews.Post("", handler.SavePeriodicReview)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Post("/regenerate-recovery-code", handler.RegenerateRecoveryCode)
	settings.Post("/clear-data", handler.ClearData)
	settings.Delete("/delete-account", handler.DeleteAccount)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
