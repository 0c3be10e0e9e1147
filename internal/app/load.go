// internal/app/load.go
package app

import (
	"fmt"

	"spelltower/internal/config"
	"spelltower/internal/defs"
)

// NewFromFiles builds a game from a YAML config file. An empty path means the
// built-in defaults; an empty catalog_path means the embedded catalog.
func NewFromFiles(configPath string, opts ...Option) (*Game, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	var (
		catalog *defs.Catalog
		err     error
	)
	if cfg.CatalogPath == "" {
		catalog, err = defs.DefaultCatalog()
	} else {
		catalog, err = defs.LoadCatalog(cfg.CatalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return New(cfg, catalog, opts...)
}
