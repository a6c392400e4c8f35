package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jehee0076-netizen/Academic-Support/internal/dto"
	"github.com/jehee0076-netizen/Academic-Support/internal/service"
	appErrors "github.com/jehee0076-netizen/Academic-Support/pkg/errors"
	"github.com/jehee0076-netizen/Academic-Support/pkg/response"
)

// SubjectHandler handles catalog and placement endpoints.
type SubjectHandler struct {
	planner *service.PlannerService
	stats   *service.StatsService
}

// NewSubjectHandler constructs a subject handler.
func NewSubjectHandler(planner *service.PlannerService, stats *service.StatsService) *SubjectHandler {
	return &SubjectHandler{planner: planner, stats: stats}
}

// List godoc
// @Summary List catalog subjects
// @Tags Subjects
// @Produce json
// @Param search query string false "Case-insensitive match on name or ID"
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	response.OK(c, h.stats.CatalogSubjects(c.Query("search")))
}

// Unassigned godoc
// @Summary List unassigned subjects grouped by offered term
// @Tags Subjects
// @Produce json
// @Param search query string false "Case-insensitive match on name or ID"
// @Success 200 {object} response.Envelope
// @Router /subjects/unassigned [get]
func (h *SubjectHandler) Unassigned(c *gin.Context) {
	response.OK(c, h.stats.UnassignedSubjects(c.Query("search")))
}

// Save godoc
// @Summary Create or update a subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param payload body dto.SubjectDraft true "Subject draft"
// @Success 200 {object} response.Envelope
// @Router /subjects [put]
func (h *SubjectHandler) Save(c *gin.Context) {
	var draft dto.SubjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload"))
		return
	}

	subject, err := h.planner.SaveSubjectEdit(draft)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subject)
}

// Toggle godoc
// @Summary Toggle a subject between MANDATORY and ELECTIVE
// @Tags Subjects
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} response.Envelope
// @Router /subjects/{id}/toggle [post]
func (h *SubjectHandler) Toggle(c *gin.Context) {
	subject, err := h.planner.ToggleCategory(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subject)
}

// Move godoc
// @Summary Move a subject into a semester, or back to the pool
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param payload body dto.MoveSubjectRequest true "Target semester; null unassigns"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /subjects/{id}/move [post]
func (h *SubjectHandler) Move(c *gin.Context) {
	var req dto.MoveSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid move payload"))
		return
	}

	if err := h.planner.RequestMove(c.Param("id"), req.SemesterID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"moved": true})
}

// Delete godoc
// @Summary Delete a subject globally, or unassign it from one semester
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param payload body dto.DeleteSubjectRequest true "Delete intent"
// @Success 204 "No Content"
// @Failure 428 {object} response.Envelope
// @Router /subjects/{id} [delete]
func (h *SubjectHandler) Delete(c *gin.Context) {
	var req dto.DeleteSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid delete payload"))
		return
	}

	var scope service.DeleteScope
	if req.SemesterID == nil {
		scope = service.GlobalDelete{Confirmed: req.Confirm}
	} else {
		scope = service.ScopedDelete{
			SemesterID: *req.SemesterID,
			Choice:     service.DeleteChoice(req.Choice),
			Confirmed:  req.Confirm,
		}
	}

	if err := h.planner.RequestDelete(c.Param("id"), scope); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
