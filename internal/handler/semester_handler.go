package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jehee0076-netizen/Academic-Support/internal/dto"
	"github.com/jehee0076-netizen/Academic-Support/internal/service"
	appErrors "github.com/jehee0076-netizen/Academic-Support/pkg/errors"
	"github.com/jehee0076-netizen/Academic-Support/pkg/response"
)

// SemesterHandler handles timeline endpoints.
type SemesterHandler struct {
	planner *service.PlannerService
	stats   *service.StatsService
}

// NewSemesterHandler constructs a semester handler.
func NewSemesterHandler(planner *service.PlannerService, stats *service.StatsService) *SemesterHandler {
	return &SemesterHandler{planner: planner, stats: stats}
}

// List godoc
// @Summary List semester slots with assignments and credit subtotals
// @Tags Semesters
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /semesters [get]
func (h *SemesterHandler) List(c *gin.Context) {
	response.OK(c, h.stats.SemesterOverviews())
}

// UpdateRange godoc
// @Summary Reconfigure the timeline range
// @Tags Semesters
// @Accept json
// @Produce json
// @Param payload body dto.RangeRequest true "Inclusive start/end (year, term)"
// @Success 200 {object} response.Envelope
// @Router /semesters/range [put]
func (h *SemesterHandler) UpdateRange(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid range payload"))
		return
	}

	slots, err := h.planner.ReconfigureRange(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, slots)
}
