package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/config"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/server"
)

var (
	servePort       int
	serveStore      string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for rendering, storing, and retrieving resume documents.

Configuration can be loaded from a JSON file using --config. Command-line flags and environment variables override config file values.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveStore, "store", "",
		"Document store backend: postgres, firestore, or memory (default postgres)")
	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig layers explicit flags over the optional config file,
// then fills remaining gaps from the environment and built-in defaults.
func resolveServeConfig() (server.Config, error) {
	fileCfg, err := loadConfigFile(serveConfigPath)
	if err != nil {
		return server.Config{}, err
	}

	flagCfg := config.Config{
		Port:         servePort,
		StoreBackend: serveStore,
	}
	cfg := flagCfg.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.Config{
		Port:                 8080,
		StoreBackend:         config.StoreBackendPostgres,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		FirestoreProjectID:   os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCredentials: os.Getenv("FIRESTORE_CREDENTIALS"),
	})

	if err := cfg.Validate(); err != nil {
		return server.Config{}, err
	}

	// User accounts live in PostgreSQL regardless of the document backend
	if cfg.DatabaseURL == "" {
		return server.Config{}, fmt.Errorf("database URL is required (set DATABASE_URL or provide --config)")
	}

	return server.Config{
		Port:                 cfg.Port,
		DatabaseURL:          cfg.DatabaseURL,
		StoreBackend:         cfg.StoreBackend,
		FirestoreProjectID:   cfg.FirestoreProjectID,
		FirestoreCredentials: cfg.FirestoreCredentials,
	}, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
