package handler

import (
	"absenteeism-system/internal/client"
	"absenteeism-system/internal/model"
	"absenteeism-system/internal/view"

	"github.com/gofiber/fiber/v2"
)

// PageHandler renders the predictor, absence and dashboard pages. Each POST
// drives a request-scoped form from the client package.
type PageHandler struct {
	predictor         client.Predictor
	registrar         client.Registrar
	dashboardURL      string
	dashboardEmbedded bool
}

func NewPageHandler(predictor client.Predictor, registrar client.Registrar, dashboardURL string, dashboardEmbedded bool) *PageHandler {
	return &PageHandler{
		predictor:         predictor,
		registrar:         registrar,
		dashboardURL:      dashboardURL,
		dashboardEmbedded: dashboardEmbedded,
	}
}

func formValues(c *fiber.Ctx, fields []string) client.FormValues {
	values := make(client.FormValues, len(fields))
	for _, name := range fields {
		values[name] = c.FormValue(name)
	}
	return values
}

func (h *PageHandler) renderPredictor(c *fiber.Ctx, form *client.PredictionForm) error {
	return c.Render("predictor", fiber.Map{
		"Title":           "Predictor",
		"Nav":             view.Links(c.Path()),
		"ReasonGroups":    model.ReasonGroups(),
		"EducationLevels": model.EducationLevels(),
		"Values":          form.Values(),
		"Outcome":         form.Outcome(),
	})
}

func (h *PageHandler) Predictor(c *fiber.Ctx) error {
	return h.renderPredictor(c, client.NewPredictionForm(h.predictor))
}

func (h *PageHandler) SubmitPrediction(c *fiber.Ctx) error {
	form := client.NewPredictionForm(h.predictor)
	outcome := form.Submit(formValues(c, client.PredictionFields))
	if outcome.IsFailed() {
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return h.renderPredictor(c, form)
}

func (h *PageHandler) renderAddAbsence(c *fiber.Ctx, form *client.AbsenceForm) error {
	return c.Render("add_absence", fiber.Map{
		"Title":   "Register Absence",
		"Nav":     view.Links(c.Path()),
		"Reasons": model.Reasons(),
		"Values":  form.Values(),
		"Outcome": form.Outcome(),
	})
}

func (h *PageHandler) AddAbsence(c *fiber.Ctx) error {
	return h.renderAddAbsence(c, client.NewAbsenceForm(h.registrar))
}

func (h *PageHandler) SubmitAbsence(c *fiber.Ctx) error {
	form := client.NewAbsenceForm(h.registrar)
	outcome := form.Submit(formValues(c, client.AbsenceFields))
	if outcome.IsFailed() {
		c.Status(fiber.StatusUnprocessableEntity)
	}
	return h.renderAddAbsence(c, form)
}

func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return c.Render("dashboard", fiber.Map{
		"Title":        "Dashboard",
		"Nav":          view.Links(c.Path()),
		"DashboardURL": h.dashboardURL,
		"Embedded":     h.dashboardEmbedded,
	})
}
