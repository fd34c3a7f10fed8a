// api/cmd/import/main.go
//
// One-shot bulk import of a historical pageviews dump. Run manually against
// the same database the live service uses; never reachable from the HTTP
// surface.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pagepulse/api/database"
	"pagepulse/api/models"
	"pagepulse/api/store"
	"pagepulse/api/utils"
)

var dumpFile string

var importCmd = &cobra.Command{
	Use:   "import-pageviews",
	Short: "Bulk-load a historical pageviews JSON dump into the counter store.",
	Long: `Reads a JSON array of {pathname, pageviews} records and applies one
absolute-value upsert per record. Imported counts overwrite existing rows
rather than incrementing them, so re-running the import is safe.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found or error loading .env: %v", err)
		}

		raw, err := os.ReadFile(dumpFile)
		if err != nil {
			log.Fatalf("Failed to read dump file %q: %v", dumpFile, err)
		}

		var records []models.ImportRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			log.Fatalf("Failed to parse dump file %q: %v", dumpFile, err)
		}
		log.Printf("Found %d records in %s", len(records), dumpFile)

		dbClient, err := database.NewPostgresDB()
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
		}
		defer dbClient.Close()

		counterStore := store.NewCounterStore(dbClient.DB)

		ctx := context.Background()
		if err := counterStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}

		applied, skipped := 0, 0
		for _, rec := range records {
			pathname, ok := utils.NormalizePathname(rec.Pathname)
			if !ok {
				log.Printf("Skipping record with invalid pathname: %q", rec.Pathname)
				skipped++
				continue
			}

			views := rec.Pageviews
			if views < 0 {
				views = 0
			}

			if err := counterStore.SetViews(ctx, pathname, views); err != nil {
				log.Fatalf("Failed to import %q: %v", pathname, err)
			}
			applied++
		}

		log.Printf("Import complete: %d applied, %d skipped.", applied, skipped)
	},
}

func main() {
	importCmd.Flags().StringVarP(&dumpFile, "file", "f", "pageviews.json", "path to the JSON dump")
	if err := importCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
