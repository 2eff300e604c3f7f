package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"investment-dashboard/internal/ckan"
	"investment-dashboard/internal/config"
	"investment-dashboard/internal/export"
	"investment-dashboard/internal/logger"
	"investment-dashboard/internal/pipeline"
)

// snapshot loads the dataset once and exports its aggregates to files.
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

	ds, err := loader.Load(context.Background())
	if err != nil {
		_, headline, cause := pipeline.UserMessage(err)
		if cause != "" {
			headline = headline + ": " + cause
		}
		appLog.WithError(err).Error(headline)
		os.Exit(1)
	}

	results, err := export.WriteSnapshot(cfg.Export.Dir, cfg.Export.Formats, ds, cfg.Datastore.ResourceID)
	if err != nil {
		appLog.WithError(err).Error("snapshot export failed")
		os.Exit(1)
	}

	for _, result := range results {
		fmt.Printf("exported %d rows to %s (%s)\n", result.RecordCount, result.Path, result.Format)
	}
	fmt.Printf("snapshot complete: %d records, %d dropped, %d files\n",
		len(ds.Records), ds.Dropped, len(results))
}
