package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade a resume document to the canonical schema",
	Long:  "Reads a resume document JSON file, upgrades any legacy single-entry fields, and writes the canonical form.",
	RunE:  runMigrate,
}

var (
	migrateInput  string
	migrateOutput string
)

func init() {
	migrateCmd.Flags().StringVarP(&migrateInput, "in", "i", "", "Path to document JSON file (required)")
	migrateCmd.Flags().StringVarP(&migrateOutput, "out", "o", "", "Path to output file (defaults to stdout)")

	if err := migrateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(migrateInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	record, err := ingestion.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	out = append(out, '\n')

	if migrateOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := os.WriteFile(migrateOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Migrated %s -> %s\n", migrateInput, migrateOutput)
	return nil
}
