package routes

import (
	"absenteeism-system/internal/handler"
	"absenteeism-system/internal/middleware"
	"absenteeism-system/internal/repository"
	"absenteeism-system/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAbsenceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAbsenceRepository(db)
	hdl := handler.NewAbsenceHandler(usecase.NewAbsenceUsecase(repo))

	api := app.Group("/api")
	api.Post("/add_absence", middleware.RequireJSON, hdl.AddAbsence)
	api.Get("/absences", hdl.GetAll)
	api.Get("/absences/:id", hdl.GetByID)
}
