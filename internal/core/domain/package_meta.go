package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageMeta is the declared metadata of the package being released, read
// from the packaging manifest at invocation time.
type PackageMeta struct {
	Name        string
	Version     string
	Summary     string
	Homepage    string
	Author      string
	License     string
}

// Validate checks that the metadata carries the fields a release needs.
// The version string is used verbatim as the tag name, so it must not be
// empty or contain whitespace.
func (m *PackageMeta) Validate() error {
	if m.Name == "" {
		return zerr.Wrap(ErrMetadataInvalid, "package name is empty")
	}
	if m.Version == "" {
		return zerr.With(zerr.Wrap(ErrMetadataInvalid, "package version is empty"), "package", m.Name)
	}
	if strings.ContainsAny(m.Version, " \t\n") {
		return zerr.With(zerr.Wrap(ErrMetadataInvalid, "package version contains whitespace"), "version", m.Version)
	}
	return nil
}
