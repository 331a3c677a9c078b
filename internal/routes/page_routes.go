package routes

import (
	"absenteeism-system/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupPageRoutes(app *fiber.App, hdl *handler.PageHandler) {
	app.Get("/", hdl.Predictor)
	app.Post("/", hdl.SubmitPrediction)
	app.Get("/add-absence", hdl.AddAbsence)
	app.Post("/add-absence", hdl.SubmitAbsence)
	app.Get("/dashboard", hdl.Dashboard)
}
