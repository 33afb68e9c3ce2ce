package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "amazon.titan-embed-text-v2:0", cfg.EmbeddingModel)
	assert.Equal(t, "data/", cfg.DataPath)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"region: eu-west-1\nopensearch_endpoint: https://example.eu-west-1.aoss.amazonaws.com\nindex_name: docs\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "https://example.eu-west-1.aoss.amazonaws.com", cfg.Endpoint)
	assert.Equal(t, "docs", cfg.IndexName)
	// Unset keys keep defaults.
	assert.Equal(t, "amazon.titan-embed-text-v2:0", cfg.EmbeddingModel)
	assert.Equal(t, "default", cfg.Profile)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Endpoint = "https://example.us-east-1.aoss.amazonaws.com"
	require.NoError(t, cfg.Validate())

	cfg.Endpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "opensearch_endpoint")

	cfg = Default()
	cfg.Endpoint = "https://example.us-east-1.aoss.amazonaws.com"
	cfg.IndexName = ""
	assert.ErrorContains(t, cfg.Validate(), "index_name")

	cfg = Default()
	cfg.Endpoint = "https://example.us-east-1.aoss.amazonaws.com"
	cfg.EmbeddingModel = ""
	assert.ErrorContains(t, cfg.Validate(), "embedding_model_id")
}
