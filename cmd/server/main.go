package main

import (
	"fmt"
	"log"

	"legajos/internal/config"
	"legajos/internal/extractor/gemini"
	"legajos/internal/handler"
	filestore "legajos/internal/kvstore/file"
	"legajos/internal/router"
	"legajos/internal/service"
	"legajos/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	kv, err := filestore.New(cfg.State.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize state store: %w", err)
	}

	// Initialize the in-memory record store and the extraction client
	st := store.New()
	extractor := gemini.NewClient(&cfg.Gemini)

	// Initialize services
	ingestSvc := service.NewIngestService(st, extractor)
	employeeSvc := service.NewEmployeeService(st, extractor)
	templateSvc := service.NewTemplateService(extractor)
	trackingSvc := service.NewTrackingService(st, extractor)
	consultSvc := service.NewConsultService(extractor)
	appStateSvc := service.NewAppStateService(kv)

	// Initialize handlers
	recordH := handler.NewRecordHandler(ingestSvc, st, cfg.Upload.MaxFileSizeMB)
	employeeH := handler.NewEmployeeHandler(employeeSvc, cfg.Upload.MaxFileSizeMB)
	templateH := handler.NewTemplateHandler(templateSvc, cfg.Upload.MaxFileSizeMB)
	trackingH := handler.NewTrackingHandler(trackingSvc)
	consultH := handler.NewConsultHandler(consultSvc)
	stateH := handler.NewStateHandler(appStateSvc)
	healthH := handler.NewHealthHandler(cfg.State.Dir)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, recordH, employeeH, templateH, trackingH, consultH, stateH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
