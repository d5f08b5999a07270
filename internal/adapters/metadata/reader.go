// Package metadata reads the declared package metadata from pyproject.toml.
package metadata

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkgship/shipit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reader implements ports.MetadataReader for pyproject.toml manifests.
// Both the standard [project] table and the [tool.poetry] table are
// understood; [project] wins when both declare a version.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

type pyproject struct {
	Project projectTable `toml:"project"`
	Tool    toolTable    `toml:"tool"`
}

type projectTable struct {
	Name        string            `toml:"name"`
	Version     string            `toml:"version"`
	Description string            `toml:"description"`
	License     any               `toml:"license"`
	Authors     []authorTable     `toml:"authors"`
	URLs        map[string]string `toml:"urls"`
}

type authorTable struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

type toolTable struct {
	Poetry poetryTable `toml:"poetry"`
}

type poetryTable struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Description string   `toml:"description"`
	License     string   `toml:"license"`
	Homepage    string   `toml:"homepage"`
	Authors     []string `toml:"authors"`
}

// Read parses the manifest file inside dir and returns the declared metadata.
func (r *Reader) Read(dir, manifest string) (*domain.PackageMeta, error) {
	path := filepath.Join(dir, manifest)
	data, err := os.ReadFile(path) //nolint:gosec // path comes from project config
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read packaging manifest"), "path", path)
	}

	var pp pyproject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse packaging manifest"), "path", path)
	}

	meta := fromProject(&pp.Project)
	if meta.Version == "" {
		meta = fromPoetry(&pp.Tool.Poetry)
	}

	if err := meta.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return meta, nil
}

func fromProject(p *projectTable) *domain.PackageMeta {
	meta := &domain.PackageMeta{
		Name:    p.Name,
		Version: p.Version,
		Summary: p.Description,
	}

	// PEP 621 allows the license to be a plain string or a {text = "..."} table.
	switch lic := p.License.(type) {
	case string:
		meta.License = lic
	case map[string]any:
		if text, ok := lic["text"].(string); ok {
			meta.License = text
		}
	}

	if len(p.Authors) > 0 {
		meta.Author = p.Authors[0].Name
	}
	if home, ok := p.URLs["Homepage"]; ok {
		meta.Homepage = home
	}
	return meta
}

func fromPoetry(p *poetryTable) *domain.PackageMeta {
	meta := &domain.PackageMeta{
		Name:     p.Name,
		Version:  p.Version,
		Summary:  p.Description,
		License:  p.License,
		Homepage: p.Homepage,
	}
	if len(p.Authors) > 0 {
		meta.Author = p.Authors[0]
	}
	return meta
}
