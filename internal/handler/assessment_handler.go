package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pcosrisk/internal/service"
)

// AssessmentHandler handles scoring and history endpoints.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(assessmentService service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// HistoryResponse is one page of a user's assessments.
type HistoryResponse struct {
	Assessments []service.AssessmentResult `json:"assessments"`
	TotalCount  int64                      `json:"total_count"`
}

// Create godoc
// @Summary Score a clinical input and record the assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssessmentRequest true "Clinical input"
// @Success 200 {object} service.AssessmentResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /assessments [post]
func (h *AssessmentHandler) Create(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return Unauthorized(c)
	}

	var req AssessmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.assessmentService.Assess(c.Request().Context(), user.ID, req.ToClinicalInput())
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// List godoc
// @Summary List the caller's assessments, oldest first
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /assessments [get]
func (h *AssessmentHandler) List(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return Unauthorized(c)
	}

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", service.DefaultHistoryLimit)
	if err != nil {
		return err
	}

	items, total, err := h.assessmentService.History(c.Request().Context(), user.ID, skip, limit)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, HistoryResponse{
		Assessments: items,
		TotalCount:  total,
	})
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, badRequest(name + " must be a non-negative integer")
	}
	return v, nil
}
