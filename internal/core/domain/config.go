package domain

import "strings"

// Config is the resolved project configuration for a release run.
// All ambient state (paths, commands, index credentials) is threaded through
// here so individual steps stay testable in isolation.
type Config struct {
	Package PackageConfig
	Clean   CleanConfig
	Format  CommandConfig
	Install CommandConfig
	Index   IndexConfig
	Tag     TagConfig
}

// PackageConfig locates the package being released.
type PackageConfig struct {
	// Dir is the package root, relative to the working directory.
	Dir string
	// Metadata is the packaging manifest file within Dir.
	Metadata string
}

// CleanConfig lists the build output directories the clean step removes.
// Paths are relative to the package dir and must stay inside it.
type CleanConfig struct {
	Paths []string
}

// CommandConfig is an external command invocation (formatter, installer).
type CommandConfig struct {
	Command []string
}

// IndexConfig describes the distribution index endpoint and credentials.
type IndexConfig struct {
	URL      string
	Username string
	Password string
}

// TagConfig controls the annotation message of the version tag.
type TagConfig struct {
	// Message may contain the {version} placeholder.
	Message string
}

// RenderMessage expands the {version} placeholder in the tag message.
func (t TagConfig) RenderMessage(version string) string {
	return strings.ReplaceAll(t.Message, "{version}", version)
}
