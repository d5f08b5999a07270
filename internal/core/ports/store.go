package ports

import "github.com/pkgship/shipit/internal/core/domain"

// ReleaseStore persists release history per version.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReleaseStore interface {
	// Get returns the recorded info for a version, or nil if none exists.
	Get(version string) (*domain.ReleaseInfo, error)
	// Put stores the release info.
	Put(info domain.ReleaseInfo) error
}
