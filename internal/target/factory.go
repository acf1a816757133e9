package target

import (
	"context"
	"fmt"

	"photosort/internal/config"
	"photosort/internal/photosort"
)

// Factory opens targets of the configured type.
type Factory struct {
	cfg config.TargetConfig
}

// NewFactory creates a Factory for cfg.
func NewFactory(cfg config.TargetConfig) *Factory {
	return &Factory{cfg: cfg}
}

// Open returns the target for a run. root is the run's target directory; s3
// targets write under s3_prefix instead.
func (f *Factory) Open(root string) (photosort.Target, error) {
	switch f.cfg.Type {
	case "filesystem", "":
		if root == "" {
			return nil, fmt.Errorf("filesystem target requires a target directory")
		}
		return NewFileSystemTarget(root)
	case "memory":
		return NewMemoryTarget(root), nil
	case "s3":
		return NewS3TargetFromConfig(context.Background(), f.cfg)
	default:
		return nil, fmt.Errorf("unknown target type: %s", f.cfg.Type)
	}
}

// Compile-time check that Factory implements photosort.TargetFactory
var _ photosort.TargetFactory = (*Factory)(nil)
