// Package main provides the entry point for the resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume form-to-document toolchain",
	Long:  "Resume builder turns structured resume documents into print-ready HTML, migrates legacy payloads, and syncs documents to cloud storage via CLI or REST API.",
}

// loadConfigFile reads an optional JSON config file. An empty path yields a
// zero config. Validation happens after merging with flags and environment,
// so a file may leave required fields for those layers to fill.
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return *loaded, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
