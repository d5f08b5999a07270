package ports

import "context"

// Cleaner removes build output directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type Cleaner interface {
	// Clean removes each path relative to root. Absent paths are a no-op.
	// Paths escaping root are rejected, never deleted.
	Clean(ctx context.Context, root string, paths []string) error
}
