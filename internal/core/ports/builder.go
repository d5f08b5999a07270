package ports

import (
	"context"

	"github.com/pkgship/shipit/internal/core/domain"
)

// ArtifactBuilder builds a source distribution archive for the package.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ArtifactBuilder interface {
	// Build writes <name>-<version>.tar.gz under distDir and returns the
	// artifact description. Paths in excludes are skipped.
	Build(ctx context.Context, meta *domain.PackageMeta, srcDir, distDir string, excludes []string) (*domain.Artifact, error)
}
