package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultCatalogPath, cfg.Catalog.Path)
	assert.Equal(t, int64(1), cfg.Catalog.DefaultLanguageID)
	assert.Equal(t, 25, cfg.Search.Limit)
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("CATALOG_PATH", "/tmp/other-catalog.sqlite")
	t.Setenv("DEFAULT_LANGUAGE_ID", "3")
	t.Setenv("SEARCH_LIMIT", "5")

	cfg := NewConfig()

	assert.Equal(t, "/tmp/other-catalog.sqlite", cfg.Catalog.Path)
	assert.Equal(t, int64(3), cfg.Catalog.DefaultLanguageID)
	assert.Equal(t, 5, cfg.Search.Limit)
}
