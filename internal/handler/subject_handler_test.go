package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jehee0076-netizen/Academic-Support/internal/models"
	"github.com/jehee0076-netizen/Academic-Support/internal/repository"
	"github.com/jehee0076-netizen/Academic-Support/internal/service"
)

func buildPlannerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := repository.NewCatalogRepository()
	catalog.Seed([]models.Subject{
		{ID: "BMED205", Name: "Engineering Mathematics I", Credits: 3, Category: models.CategoryElective, OfferedTerm: 1, Prerequisites: []string{}},
		{ID: "BMED202", Name: "Engineering Mathematics II", Credits: 3, Category: models.CategoryMandatory, OfferedTerm: 2, Prerequisites: []string{"BMED205"}},
	})
	timeline := repository.NewTimelineRepository()
	timeline.ReconfigureRange(models.PlanRange{StartYear: 25, StartTerm: 1, EndYear: 25, EndTerm: 2})

	requirements := models.GraduationRequirements{Mandatory: 5, Elective: 40}
	stats := service.NewStatsService(catalog, timeline, requirements, "en")
	planner := service.NewPlannerService(catalog, timeline, nil, nil, nil, nil)

	subjectHandler := NewSubjectHandler(planner, stats)
	semesterHandler := NewSemesterHandler(planner, stats)
	graduationHandler := NewGraduationHandler(stats)

	router := gin.New()
	router.GET("/subjects", subjectHandler.List)
	router.GET("/subjects/unassigned", subjectHandler.Unassigned)
	router.PUT("/subjects", subjectHandler.Save)
	router.POST("/subjects/:id/toggle", subjectHandler.Toggle)
	router.POST("/subjects/:id/move", subjectHandler.Move)
	router.DELETE("/subjects/:id", subjectHandler.Delete)
	router.GET("/semesters", semesterHandler.List)
	router.PUT("/semesters/range", semesterHandler.UpdateRange)
	router.GET("/graduation", graduationHandler.Summary)
	return router
}

func performRequest(router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("{}")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestMoveEndpointRejectsThenAccepts(t *testing.T) {
	router := buildPlannerRouter(t)

	resp := performRequest(router, http.MethodPost, "/subjects/BMED202/move", `{"semester_id":"sem25-2"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "UNMET_PREREQUISITE")

	resp = performRequest(router, http.MethodPost, "/subjects/BMED205/move", `{"semester_id":"sem25-1"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodPost, "/subjects/BMED202/move", `{"semester_id":"sem25-2"}`)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestMoveEndpointNullSemesterUnassigns(t *testing.T) {
	router := buildPlannerRouter(t)

	resp := performRequest(router, http.MethodPost, "/subjects/BMED205/move", `{"semester_id":"sem25-1"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodPost, "/subjects/BMED205/move", `{"semester_id":null}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodGet, "/subjects/unassigned", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "BMED205")
}

func TestDeleteEndpointRequiresConfirmationThenCascades(t *testing.T) {
	router := buildPlannerRouter(t)

	resp := performRequest(router, http.MethodDelete, "/subjects/BMED205", `{}`)
	require.Equal(t, http.StatusPreconditionRequired, resp.Code)
	assert.Contains(t, resp.Body.String(), "CONFIRMATION_REQUIRED")

	resp = performRequest(router, http.MethodDelete, "/subjects/BMED205", `{"confirm":true}`)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(router, http.MethodGet, "/subjects", "")
	assert.NotContains(t, resp.Body.String(), "BMED205")
}

func TestDeleteEndpointScopedRequiresChoice(t *testing.T) {
	router := buildPlannerRouter(t)
	performRequest(router, http.MethodPost, "/subjects/BMED205/move", `{"semester_id":"sem25-1"}`)

	resp := performRequest(router, http.MethodDelete, "/subjects/BMED205", `{"semester_id":"sem25-1"}`)
	require.Equal(t, http.StatusPreconditionRequired, resp.Code)
	assert.Contains(t, resp.Body.String(), "CHOICE_REQUIRED")

	resp = performRequest(router, http.MethodDelete, "/subjects/BMED205", `{"semester_id":"sem25-1","choice":"unassign"}`)
	require.Equal(t, http.StatusNoContent, resp.Code)

	// The subject survives in the catalog after a scoped unassign.
	resp = performRequest(router, http.MethodGet, "/subjects", "")
	assert.Contains(t, resp.Body.String(), "BMED205")
}

func TestSaveEndpointValidatesDraft(t *testing.T) {
	router := buildPlannerRouter(t)

	resp := performRequest(router, http.MethodPut, "/subjects", `{"id":"BMED409","name":"Tissue Engineering","credits":3,"category":"ELECTIVE","offered_term":1,"prerequisites":"BMED313"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodPut, "/subjects", `{"id":"","name":"","credits":3,"category":"ELECTIVE","offered_term":1}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSemesterEndpointsReportSubtotals(t *testing.T) {
	router := buildPlannerRouter(t)
	performRequest(router, http.MethodPost, "/subjects/BMED205/move", `{"semester_id":"sem25-1"}`)

	resp := performRequest(router, http.MethodGet, "/semesters", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope struct {
		Data []models.SemesterOverview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, 3, envelope.Data[0].TotalCredits)
}

func TestRangeEndpointRegeneratesTimeline(t *testing.T) {
	router := buildPlannerRouter(t)

	resp := performRequest(router, http.MethodPut, "/semesters/range", `{"start_year":25,"start_term":2,"end_year":27,"end_term":1}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "sem27-1")
	assert.NotContains(t, resp.Body.String(), "sem25-1")
}

func TestGraduationEndpoint(t *testing.T) {
	router := buildPlannerRouter(t)

	resp := performRequest(router, http.MethodGet, "/graduation", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"graduation_ready":false`)
	assert.Contains(t, resp.Body.String(), `"required_mandatory":5`)
}

func TestToggleEndpoint(t *testing.T) {
	router := buildPlannerRouter(t)

	resp := performRequest(router, http.MethodPost, "/subjects/BMED205/toggle", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"category":"MANDATORY"`)

	resp = performRequest(router, http.MethodPost, "/subjects/GONE999/toggle", "")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
