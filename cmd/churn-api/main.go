package main

import (
	"context"
	"log"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/api"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/api/handler"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/config"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/dataset"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/engine"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/export"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/store"
	"github.com/Bimsara-Yehan/Data-Analysis/pkg/router"
)

// @title Bank Customer Churn Analytics API
// @version 1.0
// @description Interactive churn analytics over the bank customer dataset: filters, per-dimension churn aggregation, filtered exports and a churn probability estimate.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		panic(err)
	}

	// Load dataset into memory
	data := dataset.NewHolder(cfg.DatasetPath)
	if err := data.Load(); err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	// Reload on file change
	if cfg.EnableWatcher {
		if err := dataset.NewWatcher(data).Start(context.Background()); err != nil {
			log.Printf("dataset watcher disabled: %v", err)
		}
	}

	h := handler.New(
		data,
		engine.NewPredictor(cfg.ScorerURL),
		export.NewManager(cfg.OutputDir),
		cfg.LowSampleThreshold,
	)

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r, h)

	// Start server
	r.Start(":" + cfg.HTTPPort)
}
