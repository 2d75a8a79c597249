package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/config"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/db"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/store"
)

var cloudCmd = &cobra.Command{
	Use:   "cloud",
	Short: "Save and load resume documents in cloud storage",
}

var cloudSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Upload a resume document",
	Long:  "Reads a resume document JSON file, migrates legacy payloads, and stores the canonical form under the owner ID.",
	RunE:  runCloudSave,
}

var cloudLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Download a resume document",
	Long:  "Fetches the owner's stored document and writes it as canonical JSON.",
	RunE:  runCloudLoad,
}

var (
	cloudOwner       string
	cloudBackend     string
	cloudProjectID   string
	cloudCredentials string
	cloudDatabaseURL string
	cloudConfigPath  string
	cloudInput       string
	cloudOutput      string
)

func init() {
	cloudCmd.PersistentFlags().StringVar(&cloudConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cloudCmd.PersistentFlags().StringVar(&cloudOwner, "owner", "", "Owner ID the document belongs to (required)")
	cloudCmd.PersistentFlags().StringVar(&cloudBackend, "backend", "", "Storage backend: firestore or postgres (default firestore)")
	cloudCmd.PersistentFlags().StringVar(&cloudProjectID, "project", "", "GCP project ID (defaults to FIRESTORE_PROJECT_ID)")
	cloudCmd.PersistentFlags().StringVar(&cloudCredentials, "credentials", "", "Path to a service account key file (optional)")
	cloudCmd.PersistentFlags().StringVar(&cloudDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")

	cloudSaveCmd.Flags().StringVarP(&cloudInput, "in", "i", "", "Path to document JSON file (required)")
	if err := cloudSaveCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	cloudLoadCmd.Flags().StringVarP(&cloudOutput, "out", "o", "", "Path to output file (defaults to stdout)")

	cloudCmd.AddCommand(cloudSaveCmd)
	cloudCmd.AddCommand(cloudLoadCmd)
	rootCmd.AddCommand(cloudCmd)
}

// resolveCloudConfig layers explicit flags over the optional config file,
// then fills remaining gaps from the environment. The backend defaults to
// firestore, matching where the web client keeps its documents.
func resolveCloudConfig() (config.Config, error) {
	fileCfg, err := loadConfigFile(cloudConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flagCfg := config.Config{
		StoreBackend:         cloudBackend,
		DatabaseURL:          cloudDatabaseURL,
		FirestoreProjectID:   cloudProjectID,
		FirestoreCredentials: cloudCredentials,
	}
	cfg := flagCfg.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.Config{
		StoreBackend:       config.StoreBackendFirestore,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newDocumentStore builds the configured backend. The returned func releases
// its connections.
func newDocumentStore(ctx context.Context, cfg config.Config) (store.DocumentStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFirestore:
		if cfg.FirestoreProjectID == "" {
			return nil, nil, fmt.Errorf("firestore project ID is required (--project, FIRESTORE_PROJECT_ID, or a config file)")
		}

		var opts []option.ClientOption
		if cfg.FirestoreCredentials != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentials))
		}
		client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create firestore client: %w", err)
		}
		return store.NewFirestoreStore(client), func() { _ = client.Close() }, nil

	case config.StoreBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("database URL is required (--db-url, DATABASE_URL, or a config file)")
		}

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(database), database.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q (expected firestore or postgres)", cfg.StoreBackend)
	}
}

func runCloudSave(cmd *cobra.Command, _ []string) error {
	if cloudOwner == "" {
		return fmt.Errorf("--owner is required")
	}

	data, err := os.ReadFile(cloudInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	record, err := ingestion.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	cfg, err := resolveCloudConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	documents, closeStore, err := newDocumentStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := documents.Save(ctx, cloudOwner, record); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	fmt.Printf("Saved %s for owner %s\n", cloudInput, cloudOwner)
	return nil
}

func runCloudLoad(cmd *cobra.Command, _ []string) error {
	if cloudOwner == "" {
		return fmt.Errorf("--owner is required")
	}

	cfg, err := resolveCloudConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	documents, closeStore, err := newDocumentStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return writeLoadedDocument(ctx, documents)
}

// writeLoadedDocument fetches the owner's document and writes it as canonical
// JSON. A missing document is a normal outcome, not an error.
func writeLoadedDocument(ctx context.Context, documents store.DocumentStore) error {
	doc, err := documents.Load(ctx, cloudOwner)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Println("No cloud resume found yet.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	out, err := json.MarshalIndent(doc.Record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	out = append(out, '\n')

	if cloudOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := os.WriteFile(cloudOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Loaded document for owner %s (updated %s) -> %s\n", cloudOwner, doc.UpdatedAt.Format("2006-01-02 15:04:05"), cloudOutput)
	return nil
}
