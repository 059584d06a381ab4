package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dutyhq/roster-api/api/swagger"
	"github.com/dutyhq/roster-api/internal/handler"
	"github.com/dutyhq/roster-api/internal/middleware"
	"github.com/dutyhq/roster-api/internal/scheduler"
	"github.com/dutyhq/roster-api/internal/service"
	"github.com/dutyhq/roster-api/pkg/cache"
	"github.com/dutyhq/roster-api/pkg/config"
	"github.com/dutyhq/roster-api/pkg/jobs"
	"github.com/dutyhq/roster-api/pkg/logger"
	corsmiddleware "github.com/dutyhq/roster-api/pkg/middleware/cors"
	reqidmiddleware "github.com/dutyhq/roster-api/pkg/middleware/requestid"
	"github.com/dutyhq/roster-api/pkg/storage"
)

// @title Duty Roster API
// @version 0.1.0
// @description Fair duty-roster scheduling with preference-aware assignment
// @BasePath /
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

	engine := scheduler.New(scheduler.Config{
		MaxSwapPasses:        cfg.Scheduler.MaxSwapPasses,
		MaxBalanceIterations: cfg.Scheduler.MaxBalanceIterations,
	}, logr)

	metricsSvc := service.NewMetricsService()
	svcCfg := service.ScheduleServiceConfig{RunTTL: cfg.Scheduler.RunTTL}

	var scheduleSvc *service.ScheduleService
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		scheduleSvc = service.NewScheduleService(engine, service.NewRedisRunStore(client), metricsSvc, nil, logr, svcCfg)
	} else {
		scheduleSvc = service.NewScheduleService(engine, nil, metricsSvc, nil, logr, svcCfg)
	}
	var archiveQueue *jobs.Queue
	if cfg.Export.ArchiveDir != "" {
		archive, err := storage.NewArchive(cfg.Export.ArchiveDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export archive", "error", err)
		}
		archiveQueue = jobs.NewQueue(func(ctx context.Context, job jobs.ArchiveJob) error {
			_, err := archive.Save(job.RunID, job.Filename, job.Payload)
			return err
		}, jobs.QueueConfig{Workers: cfg.Export.ArchiveWorkers, Logger: logr})
		archiveQueue.Start(context.Background())
		defer archiveQueue.Stop()
	}

	var exportSvc *service.ExportService
	if archiveQueue != nil {
		exportSvc = service.NewExportService(scheduleSvc, nil, nil, archiveQueue, service.ExportConfig{DefaultTeamName: cfg.Export.DefaultTeamName}, logr)
	} else {
		exportSvc = service.NewExportService(scheduleSvc, nil, nil, nil, service.ExportConfig{DefaultTeamName: cfg.Export.DefaultTeamName}, logr)
	}
	calendarSvc := service.NewCalendarService(scheduleSvc, logr)
	importSvc := service.NewImportService(scheduleSvc, logr)

	rosterHandler := handler.NewRosterHandler(scheduleSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	importHandler := handler.NewImportHandler(importSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	roster := r.Group("/roster")
	{
		roster.POST("", rosterHandler.AddPerson)
		roster.GET("", rosterHandler.List)
		roster.POST("/preferences/import", importHandler.ImportPreferences)
		roster.DELETE("/:email", rosterHandler.RemovePerson)
		roster.PUT("/:email/preferences", rosterHandler.SetPreferences)
		roster.GET("/:email/preferences", rosterHandler.Preferences)
	}

	schedule := r.Group("/schedule")
	{
		schedule.PUT("/config", scheduleHandler.Configure)
		schedule.GET("/config", scheduleHandler.Config)
		schedule.POST("/generate", scheduleHandler.Generate)
		schedule.GET("/runs/:id", scheduleHandler.Run)
		schedule.GET("/runs/:id/calendar", calendarHandler.Events)
		schedule.GET("/runs/:id/export/csv", exportHandler.CSV)
		schedule.GET("/runs/:id/export/whentowork", exportHandler.WhenToWork)
		schedule.GET("/runs/:id/export/pdf", exportHandler.PDF)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "run_ttl", cfg.Scheduler.RunTTL.String())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
