package labels

import (
	"errors"

	"label-sync/core/logger"
	"label-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SyncResponse is the body returned by the sync endpoint.
type SyncResponse struct {
	Repository    string                  `json:"repository"`
	DeleteEnabled bool                    `json:"delete_enabled"`
	Summary       reconcile.ReportSummary `json:"summary"`
	Outcomes      []reconcile.Outcome     `json:"outcomes"`
	Error         string                  `json:"error,omitempty"`
}

// Handler handles HTTP requests for label synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the label routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/labels")
	group.Post("/sync", h.HandleSync)
	group.Get("/runs", h.HandleRuns)
}

// HandleSync reconciles the repository labels with the manifest.
// @Summary Sync Labels
// @Description Create, update and (when enabled) delete repository labels so they match the manifest.
// @Tags labels
// @Produce json
// @Success 200 {object} SyncResponse "Sync Report"
// @Failure 400 {object} SyncResponse "Invalid Manifest"
// @Failure 502 {object} SyncResponse "GitHub Error"
// @Failure 500 {object} SyncResponse "Internal Server Error"
// @Router /labels/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Sync(c.UserContext())

	resp := SyncResponse{
		Repository:    h.service.Repository(),
		DeleteEnabled: h.service.DeleteEnabled(),
		Outcomes:      []reconcile.Outcome{},
	}
	if report != nil {
		resp.Summary = report.Summary
		resp.Outcomes = report.Outcomes
	}
	if err != nil {
		l.Error("Label sync request failed", zap.Error(err))
		resp.Error = err.Error()
		return c.Status(statusFor(err)).JSON(resp)
	}

	return c.JSON(resp)
}

// HandleRuns lists recent journaled sync runs.
// @Summary List Sync Runs
// @Description Get the latest journaled label sync runs, newest first.
// @Tags labels
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} audit.Run "Runs"
// @Failure 404 {object} map[string]string "Journal Disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /labels/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.History(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		if errors.Is(err, ErrJournalDisabled) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to read sync runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrConfiguration):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrRemoteRead), errors.Is(err, reconcile.ErrRemoteWrite):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
