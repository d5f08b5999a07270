package ports

import "context"

// Repository defines the version control operations the tag step needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// Verify checks that dir is inside a valid repository working tree.
	Verify(ctx context.Context, dir string) error
	// TagExists reports whether the tag is already present.
	TagExists(ctx context.Context, dir, tag string) (bool, error)
	// CreateTag creates an annotated tag at HEAD. It must never move or
	// overwrite an existing tag.
	CreateTag(ctx context.Context, dir, tag, message string) error
}
