package config

import (
	"github.com/spf13/viper"
)

// DefaultCatalogPath is where the shipped catalog store is expected when no
// path is configured.
const DefaultCatalogPath = "./Catalog.sqlite"

type (
	Config struct {
		Catalog
		Search
	}

	Catalog struct {
		Path              string
		DefaultLanguageID int64 // language used when a command has no -lang flag
	}

	Search struct {
		Limit int // row cap for title search
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("catalog_path", DefaultCatalogPath)
	v.SetDefault("default_language_id", 1)
	v.SetDefault("search_limit", 25)

	return &Config{
		Catalog: Catalog{
			Path:              v.GetString("CATALOG_PATH"),
			DefaultLanguageID: v.GetInt64("DEFAULT_LANGUAGE_ID"),
		},
		Search: Search{
			Limit: v.GetInt("SEARCH_LIMIT"),
		},
	}
}
