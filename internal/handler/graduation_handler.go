package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jehee0076-netizen/Academic-Support/internal/service"
	"github.com/jehee0076-netizen/Academic-Support/pkg/response"
)

// GraduationHandler exposes the derived readiness summary.
type GraduationHandler struct {
	stats *service.StatsService
}

// NewGraduationHandler constructs a graduation handler.
func NewGraduationHandler(stats *service.StatsService) *GraduationHandler {
	return &GraduationHandler{stats: stats}
}

// Summary godoc
// @Summary Graduation readiness against the configured thresholds
// @Tags Graduation
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /graduation [get]
func (h *GraduationHandler) Summary(c *gin.Context) {
	response.OK(c, h.stats.GraduationSummary())
}
