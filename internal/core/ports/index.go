package ports

import (
	"context"

	"github.com/pkgship/shipit/internal/core/domain"
)

// Index defines the distribution index operations.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type Index interface {
	// Register publishes the package metadata to the index.
	Register(ctx context.Context, cfg domain.IndexConfig, meta *domain.PackageMeta) error
	// Upload sends a built source distribution to the index. A duplicate
	// version is a hard failure surfaced as domain.ErrDuplicateUpload.
	Upload(ctx context.Context, cfg domain.IndexConfig, meta *domain.PackageMeta, artifact *domain.Artifact) error
}
