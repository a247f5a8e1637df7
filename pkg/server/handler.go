package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/helmcode/skillready/pkg/analyzer"
	"github.com/helmcode/skillready/pkg/model"
	"github.com/helmcode/skillready/pkg/parser"
)

type AssessHandler struct {
	analyzer   *analyzer.Analyzer
	production bool
}

func NewAssessHandler(a *analyzer.Analyzer, production bool) *AssessHandler {
	return &AssessHandler{analyzer: a, production: production}
}

func (h *AssessHandler) RegisterRoutes(app *fiber.App) {
	v1 := app.Group("/api/v1")
	v1.Post("/assess", h.Assess)
	v1.Get("/roles", h.Roles)
	v1.Get("/roles/resolve", h.Resolve)
}

// Assess scores the posted profile. Blank required fields are rejected before
// the analyzer runs.
func (h *AssessHandler) Assess(c *fiber.Ctx) error {
	profile, err := parser.ParseProfile(c.Body())
	if err != nil {
		return ErrorResponse(c, h.production, ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid profile document",
		}, err)
	}

	if err := profile.Validate(); err != nil {
		var mf *model.MissingFieldsError
		if errors.As(err, &mf) {
			return ErrorResponse(c, h.production, ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "profile is incomplete",
				Details: fiber.Map{"missing_fields": mf.Fields},
			}, err)
		}
		return err
	}

	result := h.analyzer.Analyze(profile)
	return SuccessResponse(c, SuccessResponseFormat{
		Message: "assessment complete",
		Data:    result,
		Meta: fiber.Map{
			"request_id":  requestID(c),
			"score_label": model.ScoreLabel(result.ReadinessScore),
		},
	})
}

func (h *AssessHandler) Roles(c *fiber.Ctx) error {
	return SuccessResponse(c, SuccessResponseFormat{
		Message: "roles",
		Data:    h.analyzer.Store().Roles(),
		Meta:    fiber.Map{"request_id": requestID(c)},
	})
}

// Resolve shows which profile a free-text role maps to.
func (h *AssessHandler) Resolve(c *fiber.Ctx) error {
	role := c.Query("role")
	return SuccessResponse(c, SuccessResponseFormat{
		Message: "role resolved",
		Data:    h.analyzer.Store().Lookup(role),
		Meta:    fiber.Map{"request_id": requestID(c), "role": role},
	})
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
