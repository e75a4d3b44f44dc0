package main

import (
	"fmt"
	"log"

	"datasieve/internal/config"
	"datasieve/internal/handler"
	"datasieve/internal/router"
	"datasieve/internal/schema"
	"datasieve/internal/service"
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

	// Build the schema registry: built-in industry schemas plus any
	// operator-defined schemas from the configured YAML file.
	registry := schema.Builtin()
	if cfg.Engine.SchemaFile != "" {
		extras, err := schema.LoadFile(cfg.Engine.SchemaFile)
		if err != nil {
			return fmt.Errorf("failed to load custom schemas: %w", err)
		}
		registry = registry.Merge(extras...)
		log.Printf("loaded %d custom schema(s) from %s", len(extras), cfg.Engine.SchemaFile)
	}

	validationSvc := service.NewValidationService(registry, &cfg.Engine)

	validationH := handler.NewValidationHandler(validationSvc)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, validationH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
