// Package history persists release history in a flat JSON file.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkgship/shipit/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is where the release history lives relative to the working
// directory.
const DefaultPath = ".shipit/history.json"

// Store implements ports.ReleaseStore using a flat JSON file keyed by version.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ReleaseInfo
}

// NewStore creates a new ReleaseStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ReleaseInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read release history")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal release history")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal release history")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for release history")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write release history")
	}

	return nil
}

// Get retrieves the recorded info for a version, or nil if none exists.
func (s *Store) Get(version string) (*domain.ReleaseInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[version]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the release info.
func (s *Store) Put(info domain.ReleaseInfo) error {
	s.mu.Lock()
	s.cache[info.Version] = info
	s.mu.Unlock()

	return s.save()
}
