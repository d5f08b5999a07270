package config

// Shipfile represents the structure of the shipit.yaml configuration file.
type Shipfile struct {
	Version string     `yaml:"version"`
	Package PackageDTO `yaml:"package"`
	Clean   CleanDTO   `yaml:"clean"`
	Format  CommandDTO `yaml:"format"`
	Install CommandDTO `yaml:"install"`
	Index   IndexDTO   `yaml:"index"`
	Tag     TagDTO     `yaml:"tag"`
}

// PackageDTO locates the package being released.
type PackageDTO struct {
	Dir      string `yaml:"dir"`
	Metadata string `yaml:"metadata"`
}

// CleanDTO lists build output directories, relative to the package dir.
type CleanDTO struct {
	Paths []string `yaml:"paths"`
}

// CommandDTO is an external command invocation.
type CommandDTO struct {
	Command []string `yaml:"command"`
}

// IndexDTO configures the distribution index endpoint. Credentials are never
// stored in the file; only the names of the environment variables are.
type IndexDTO struct {
	URL         string `yaml:"url"`
	UsernameEnv string `yaml:"usernameEnv"`
	PasswordEnv string `yaml:"passwordEnv"`
}

// TagDTO configures the version tag annotation.
type TagDTO struct {
	Message string `yaml:"message"`
}
