package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jehee0076-netizen/Academic-Support/internal/service"
	"github.com/jehee0076-netizen/Academic-Support/pkg/response"
)

// ActivityHandler exposes the recent-mutation trail.
type ActivityHandler struct {
	activity *service.ActivityService
}

// NewActivityHandler constructs an activity handler.
func NewActivityHandler(activity *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List godoc
// @Summary List recent plan mutations, newest first
// @Tags Activity
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	response.OK(c, h.activity.List())
}
