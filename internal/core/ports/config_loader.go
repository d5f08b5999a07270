package ports

import "github.com/pkgship/shipit/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and resolves defaults and
	// index credentials.
	Load(path string) (*domain.Config, error)
}
