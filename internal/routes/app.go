package routes

import (
	"net/http"

	"absenteeism-system/config"
	"absenteeism-system/internal/client"
	"absenteeism-system/internal/handler"
	"absenteeism-system/internal/middleware"
	"absenteeism-system/internal/repository"
	"absenteeism-system/internal/usecase"
	"absenteeism-system/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

// NewApp wires every route onto a fresh fiber app. The predictor page and
// /api/predict share one prediction usecase, so both write prediction logs.
func NewApp(cfg config.Config, db *gorm.DB) *fiber.App {
	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger)
	app.Use(cors.New())

	predictions := usecase.NewPredictionUsecase(
		client.NewPredictionClient(cfg.PredictionURL, cfg.RequestTimeout),
		repository.NewPredictionLogRepository(db),
	)
	absences := client.NewAbsenceClient(cfg.AbsenceEndpoint, cfg.RequestTimeout)

	SetupSystemRoutes(app, db, cfg.PredictionURL)
	SetupAbsenceRoutes(app, db)
	SetupPredictionRoutes(app, predictions)
	SetupPageRoutes(app, handler.NewPageHandler(predictions, absences, cfg.DashboardURL, cfg.DashboardEmbedded))

	return app
}
