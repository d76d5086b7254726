package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pcosrisk/internal/service"
)

// HealthHandler reports liveness and predictor state.
type HealthHandler struct {
	assessmentService service.AssessmentService
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(assessmentService service.AssessmentService) *HealthHandler {
	return &HealthHandler{assessmentService: assessmentService}
}

// HealthResponse is returned by the liveness endpoints.
type HealthResponse struct {
	Message      string `json:"message,omitempty"`
	Status       string `json:"status"`
	ModelLoaded  bool   `json:"model_loaded"`
	ScalerLoaded bool   `json:"scaler_loaded"`
}

func (h *HealthHandler) status() HealthResponse {
	return HealthResponse{
		Status:       "healthy",
		ModelLoaded:  h.assessmentService.ModelLoaded(),
		ScalerLoaded: h.assessmentService.ScalerLoaded(),
	}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status())
}

// Root godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	resp := h.status()
	resp.Message = "PCOS Prediction API with Authentication"
	return c.JSON(http.StatusOK, resp)
}
