package credstore

import (
	"fmt"
	"path/filepath"

	"njia-admin/internal/config"
)

// NewStoreFromConfig creates a Store implementation based on the credstore config type.
func NewStoreFromConfig(cfg config.CredstoreConfig) (Store, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite credstore")
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, "credentials.db"))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown credstore type: %s", cfg.Type)
	}
}
