package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jiji-learning/jiji-backend/pkg/config"
	"github.com/jiji-learning/jiji-backend/pkg/database"
	"github.com/jiji-learning/jiji-backend/pkg/resources"
	"github.com/jiji-learning/jiji-backend/pkg/sanitize"
	"github.com/jiji-learning/jiji-backend/pkg/server"
)

var (
	seedFile string
	askQuery string
)

func main() {
	// Setup structured logging
	handler := slog.NewTextHandler(os.Stdout, nil)
	slog.SetDefault(slog.New(handler))

	// Load .env file
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, as long as env vars are set
	}

	rootCmd := &cobra.Command{
		Use:   "jiji",
		Short: "Admin CLI for the Jiji learning-assistant backend",
		Long:  `Jiji-CLI seeds the learning-resource catalog and runs the question pipeline from the terminal without going through HTTP.`,
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load resources from a JSON file into the database",
		Run: func(cmd *cobra.Command, args []string) {
			if seedFile == "" {
				slog.Error("--file is required")
				os.Exit(1)
			}

			data, err := os.ReadFile(seedFile)
			if err != nil {
				slog.Error("Failed to read seed file", "file", seedFile, "error", err)
				os.Exit(1)
			}

			var items []resources.Resource
			if err := json.Unmarshal(data, &items); err != nil {
				slog.Error("Failed to parse seed file", "file", seedFile, "error", err)
				os.Exit(1)
			}

			store, db := mustOpenStore()
			defer db.Close()

			for _, item := range items {
				if item.ID == "" {
					item.ID = uuid.New().String()
				}
				if err := store.Insert(context.Background(), item); err != nil {
					slog.Error("Failed to insert resource", "title", item.Title, "error", err)
					os.Exit(1)
				}
			}
			slog.Info("Seed complete", "count", len(items))
		},
	}
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to a JSON array of resources")

	askCmd := &cobra.Command{
		Use:   "ask",
		Short: "Run the matching pipeline for a query and print the result",
		Run: func(cmd *cobra.Command, args []string) {
			if askQuery == "" {
				slog.Error("--query is required")
				os.Exit(1)
			}

			store, db := mustOpenStore()
			defer db.Close()

			svc := server.NewService(store)
			result, err := svc.Ask(context.Background(), sanitize.Clean(askQuery), "")
			if err != nil {
				slog.Error("Failed to process query", "error", err)
				os.Exit(1)
			}

			fmt.Println(result.Answer)
			fmt.Println()
			for _, r := range result.Resources {
				fmt.Printf("- [%s] %s (%s)\n", r.Type, r.Title, r.URL)
			}
		},
	}
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "The question to ask")

	rootCmd.AddCommand(seedCmd, askCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}

func mustOpenStore() (*resources.Store, *database.PostgresDB) {
	cfg := config.Load()

	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.InitSchema(context.Background()); err != nil {
		slog.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	return resources.NewStore(db), db
}
