package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	_ "investment-dashboard/docs"
	"investment-dashboard/internal/api"
	"investment-dashboard/internal/api/handler"
	"investment-dashboard/internal/ckan"
	"investment-dashboard/internal/config"
	"investment-dashboard/internal/logger"
	"investment-dashboard/internal/metrics"
	"investment-dashboard/internal/pipeline"
	"investment-dashboard/internal/render"
	"investment-dashboard/pkg/router"
)

// @title Public Investment Dashboard API
// @version 1.0
// @description Aggregated public investment records fetched from the open-data datastore.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	client := ckan.NewClient(nil, appLog)
	endpoint := ckan.DatastoreURL(cfg.Datastore.BaseURL, cfg.Datastore.ResourceID, cfg.Datastore.Limit)
	loader := pipeline.NewLoader(client, endpoint, cfg.Datastore.ResourceID, appLog)

	r := router.New(appLog)
	r.OnServed(metrics.ObserveRequest)

	api.RegisterRoutes(r, handler.NewDashboardHandler(loader, appLog))
	r.GET("/", render.NewDashboard(loader, appLog).Index)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := r.Start(addr); err != nil {
		appLog.WithError(err).Fatal("server stopped")
	}
}
