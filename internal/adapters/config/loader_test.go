package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkgship/shipit/internal/adapters/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Package.Dir)
	assert.Equal(t, "pyproject.toml", cfg.Package.Metadata)
	assert.Equal(t, []string{"build", "dist"}, cfg.Clean.Paths)
	assert.Equal(t, "https://upload.pypi.org/legacy/", cfg.Index.URL)
	assert.Equal(t, "Release {version}", cfg.Tag.Message)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
version: "1"
package:
  dir: pkg
  metadata: setup.toml
clean:
  paths:
    - build
    - dist
    - mingus.egg-info
format:
  command: ["black", "."]
install:
  command: ["pip", "install", "-e", "."]
index:
  url: https://test.pypi.org/legacy/
tag:
  message: "mingus {version}"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pkg", cfg.Package.Dir)
	assert.Equal(t, "setup.toml", cfg.Package.Metadata)
	assert.Equal(t, []string{"build", "dist", "mingus.egg-info"}, cfg.Clean.Paths)
	assert.Equal(t, []string{"black", "."}, cfg.Format.Command)
	assert.Equal(t, []string{"pip", "install", "-e", "."}, cfg.Install.Command)
	assert.Equal(t, "https://test.pypi.org/legacy/", cfg.Index.URL)
	assert.Equal(t, "mingus {version}", cfg.Tag.Message)
}

func TestLoad_CredentialsFromEnvironment(t *testing.T) {
	t.Setenv("SHIPIT_INDEX_USERNAME", "alice")
	t.Setenv("SHIPIT_INDEX_PASSWORD", "hunter2")

	path := writeConfig(t, "version: \"1\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.Index.Username)
	assert.Equal(t, "hunter2", cfg.Index.Password)
}

func TestLoad_CredentialEnvOverride(t *testing.T) {
	t.Setenv("PYPI_USER", "bob")
	t.Setenv("PYPI_PASS", "s3cret")

	path := writeConfig(t, `
version: "1"
index:
  usernameEnv: PYPI_USER
  passwordEnv: PYPI_PASS
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.Index.Username)
	assert.Equal(t, "s3cret", cfg.Index.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "clean: [unbalanced")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsDangerousCleanPath(t *testing.T) {
	path := writeConfig(t, `
clean:
  paths:
    - "."
`)

	_, err := config.Load(path)
	require.Error(t, err)
}
