package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/config"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/store"
)

func resetCloudFlags() {
	cloudOwner = ""
	cloudBackend = ""
	cloudProjectID = ""
	cloudCredentials = ""
	cloudDatabaseURL = ""
	cloudConfigPath = ""
	cloudInput = ""
	cloudOutput = ""
}

func TestResolveCloudConfig_DefaultsToFirestore(t *testing.T) {
	resetCloudFlags()
	t.Setenv("FIRESTORE_PROJECT_ID", "demo-project")
	t.Setenv("DATABASE_URL", "")

	cfg, err := resolveCloudConfig()

	require.NoError(t, err)
	assert.Equal(t, config.StoreBackendFirestore, cfg.StoreBackend)
	assert.Equal(t, "demo-project", cfg.FirestoreProjectID)
}

func TestResolveCloudConfig_MissingFirestoreProject(t *testing.T) {
	resetCloudFlags()
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("DATABASE_URL", "")

	_, err := resolveCloudConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "firestore_project_id")
}

func TestResolveCloudConfig_ConfigFileSelectsPostgres(t *testing.T) {
	resetCloudFlags()
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("DATABASE_URL", "")
	cloudConfigPath = writeConfigFile(t,
		`{"store_backend": "postgres", "database_url": "postgres://file/resumes"}`)

	cfg, err := resolveCloudConfig()

	require.NoError(t, err)
	assert.Equal(t, config.StoreBackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "postgres://file/resumes", cfg.DatabaseURL)
}

func TestResolveCloudConfig_FlagsOverrideConfigFile(t *testing.T) {
	resetCloudFlags()
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("DATABASE_URL", "")
	cloudConfigPath = writeConfigFile(t,
		`{"store_backend": "firestore", "firestore_project_id": "file-project"}`)
	cloudBackend = config.StoreBackendPostgres
	cloudDatabaseURL = "postgres://flag/resumes"

	cfg, err := resolveCloudConfig()

	require.NoError(t, err)
	assert.Equal(t, config.StoreBackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "postgres://flag/resumes", cfg.DatabaseURL)
}

func TestNewDocumentStore_RejectsUnknownBackend(t *testing.T) {
	cfg := config.Config{StoreBackend: config.StoreBackendMemory}

	_, _, err := newDocumentStore(context.Background(), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestWriteLoadedDocument_MissingDocumentIsNotAnError(t *testing.T) {
	resetCloudFlags()
	cloudOwner = "owner-1"

	err := writeLoadedDocument(context.Background(), store.NewMemoryStore())

	require.NoError(t, err)
}

func TestWriteLoadedDocument_WritesCanonicalJSON(t *testing.T) {
	resetCloudFlags()
	cloudOwner = "owner-1"
	cloudOutput = filepath.Join(t.TempDir(), "resume.json")

	documents := store.NewMemoryStore()
	record, err := ingestion.ParseDocument([]byte(`{"fullName": "Ada Lovelace"}`))
	require.NoError(t, err)
	require.NoError(t, documents.Save(context.Background(), "owner-1", record))

	require.NoError(t, writeLoadedDocument(context.Background(), documents))

	out, err := os.ReadFile(cloudOutput)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"fullName": "Ada Lovelace"`)
}
