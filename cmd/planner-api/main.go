package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jehee0076-netizen/Academic-Support/api/swagger"
	"github.com/jehee0076-netizen/Academic-Support/internal/handler"
	internalmiddleware "github.com/jehee0076-netizen/Academic-Support/internal/middleware"
	"github.com/jehee0076-netizen/Academic-Support/internal/models"
	"github.com/jehee0076-netizen/Academic-Support/internal/repository"
	"github.com/jehee0076-netizen/Academic-Support/internal/seed"
	"github.com/jehee0076-netizen/Academic-Support/internal/service"
	"github.com/jehee0076-netizen/Academic-Support/pkg/config"
	"github.com/jehee0076-netizen/Academic-Support/pkg/logger"
	corsmiddleware "github.com/jehee0076-netizen/Academic-Support/pkg/middleware/cors"
	reqidmiddleware "github.com/jehee0076-netizen/Academic-Support/pkg/middleware/requestid"
)

// @title Academic Support Planner API
// @version 0.1.0
// @description Interactive curriculum planner: subject catalog, semester timeline and graduation tracking
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := repository.NewCatalogRepository()
	timeline := repository.NewTimelineRepository()
	timeline.ReconfigureRange(models.PlanRange{
		StartYear: cfg.Plan.StartYear,
		StartTerm: cfg.Plan.StartTerm,
		EndYear:   cfg.Plan.EndYear,
		EndTerm:   cfg.Plan.EndTerm,
	})
	if cfg.Plan.SeedCatalog {
		catalog.Seed(seed.Subjects())
		for _, a := range seed.InitialAssignments() {
			semesterID := a.SemesterID
			timeline.MoveSubject(a.SubjectID, &semesterID)
		}
	}

	requirements := models.GraduationRequirements{
		Mandatory: cfg.Graduation.MandatoryCredits,
		Elective:  cfg.Graduation.ElectiveCredits,
	}

	metricsSvc := service.NewMetricsService()
	activitySvc := service.NewActivityService(cfg.Activity.MaxEntries)
	statsSvc := service.NewStatsService(catalog, timeline, requirements, cfg.Plan.SortLocale)
	plannerSvc := service.NewPlannerService(catalog, timeline, nil, logr, activitySvc, metricsSvc)
	exportSvc := service.NewExportService(statsSvc)

	subjectHandler := handler.NewSubjectHandler(plannerSvc, statsSvc)
	semesterHandler := handler.NewSemesterHandler(plannerSvc, statsSvc)
	graduationHandler := handler.NewGraduationHandler(statsSvc)
	activityHandler := handler.NewActivityHandler(activitySvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/subjects", subjectHandler.List)
		api.GET("/subjects/unassigned", subjectHandler.Unassigned)
		api.PUT("/subjects", subjectHandler.Save)
		api.POST("/subjects/:id/toggle", subjectHandler.Toggle)
		api.POST("/subjects/:id/move", subjectHandler.Move)
		api.DELETE("/subjects/:id", subjectHandler.Delete)

		api.GET("/semesters", semesterHandler.List)
		api.PUT("/semesters/range", semesterHandler.UpdateRange)

		api.GET("/graduation", graduationHandler.Summary)
		api.GET("/activity", activityHandler.List)

		if cfg.Export.Enabled {
			exportHandler := handler.NewExportHandler(exportSvc)
			api.GET("/export/plan", exportHandler.Plan)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
