package main

import (
	"fmt"
	"log"

	"ftzops/internal/config"
	"ftzops/internal/handler"
	"ftzops/internal/repository/static"
	"ftzops/internal/router"
	"ftzops/internal/service"
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

	// Reference data is built once here and injected read-only everywhere.
	store := static.NewSeedStore()

	// Initialize services
	countrySvc := service.NewCountryService(store)
	popularSvc := service.NewPopularService(store)
	searchSvc := service.NewSearchService(store)
	browseSvc := service.NewBrowseService(store)
	dutySvc := service.NewDutyService(store)
	systemSvc := service.NewSystemService(store, cfg.Service, cfg.Limits)
	authSvc := service.NewAuthService(cfg.JWT)

	// Initialize handlers
	htsH := handler.NewHTSHandler(countrySvc, popularSvc, searchSvc, browseSvc, dutySvc, systemSvc, authSvc, cfg.Limits)
	healthH := handler.NewHealthHandler(store)

	// Setup router
	r := router.Setup(htsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
