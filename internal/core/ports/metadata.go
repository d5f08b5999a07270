package ports

import "github.com/pkgship/shipit/internal/core/domain"

// MetadataReader reads the declared package metadata from the packaging
// manifest. The version it returns is used verbatim as the tag name.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataReader interface {
	Read(dir, manifest string) (*domain.PackageMeta, error)
}
