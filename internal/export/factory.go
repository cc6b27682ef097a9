package export

import (
	"context"
	"fmt"

	"njia-admin/internal/config"
)

// NewSinkFromConfig creates a Sink implementation based on the export config type.
func NewSinkFromConfig(ctx context.Context, cfg config.ExportConfig) (Sink, error) {
	switch cfg.Type {
	case "filesystem":
		return NewFileSink(cfg.Dir)
	case "s3":
		return NewS3Sink(ctx, cfg)
	case "memory":
		return NewMemorySink(), nil
	default:
		return nil, fmt.Errorf("unknown export sink type: %s", cfg.Type)
	}
}
