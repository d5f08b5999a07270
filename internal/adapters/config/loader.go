// Package config provides the configuration loader for shipit.
package config

import (
	"os"

	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file shipit looks for.
const DefaultFilename = "shipit.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}
	return Load(path)
}

// Load reads a configuration file from the given path and resolves it into a
// domain.Config with defaults applied and index credentials pulled from the
// environment.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Shipfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return resolve(&file)
}

func resolve(file *Shipfile) (*domain.Config, error) {
	cfg := &domain.Config{
		Package: domain.PackageConfig{
			Dir:      file.Package.Dir,
			Metadata: file.Package.Metadata,
		},
		Clean:   domain.CleanConfig{Paths: file.Clean.Paths},
		Format:  domain.CommandConfig{Command: file.Format.Command},
		Install: domain.CommandConfig{Command: file.Install.Command},
		Index: domain.IndexConfig{
			URL: file.Index.URL,
		},
		Tag: domain.TagConfig{Message: file.Tag.Message},
	}

	if cfg.Package.Dir == "" {
		cfg.Package.Dir = "."
	}
	if cfg.Package.Metadata == "" {
		cfg.Package.Metadata = "pyproject.toml"
	}
	if len(cfg.Clean.Paths) == 0 {
		cfg.Clean.Paths = []string{"build", "dist"}
	}
	if cfg.Index.URL == "" {
		cfg.Index.URL = "https://upload.pypi.org/legacy/"
	}
	if cfg.Tag.Message == "" {
		cfg.Tag.Message = "Release {version}"
	}

	usernameEnv := file.Index.UsernameEnv
	if usernameEnv == "" {
		usernameEnv = "SHIPIT_INDEX_USERNAME"
	}
	passwordEnv := file.Index.PasswordEnv
	if passwordEnv == "" {
		passwordEnv = "SHIPIT_INDEX_PASSWORD"
	}
	cfg.Index.Username = os.Getenv(usernameEnv)
	cfg.Index.Password = os.Getenv(passwordEnv)

	for _, p := range cfg.Clean.Paths {
		if p == "" || p == "." {
			return nil, zerr.With(zerr.New("clean path must name a build output directory"), "path", p)
		}
	}

	return cfg, nil
}
