package routes

import (
	"absenteeism-system/internal/handler"
	"absenteeism-system/internal/middleware"
	"absenteeism-system/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPredictionRoutes(app *fiber.App, uc *usecase.PredictionUsecase) {
	hdl := handler.NewPredictionHandler(uc)

	api := app.Group("/api")
	api.Post("/predict", middleware.RequireJSON, hdl.Predict)
	api.Get("/predictions/logs", hdl.GetLogs)
}
