// Package sdist builds source distribution archives.
package sdist

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkgship/shipit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Builder implements ports.ArtifactBuilder. It produces a gzip-compressed
// tar archive named <name>-<version>.tar.gz with all entries under a
// <name>-<version>/ prefix, the shape index servers expect from an sdist.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build writes the archive under distDir and returns its description.
// The dist directory itself, the version control directory and the excludes
// are never packed into the archive.
func (b *Builder) Build(ctx context.Context, meta *domain.PackageMeta, srcDir, distDir string, excludes []string) (*domain.Artifact, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(distDir, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create dist directory")
	}

	name := fmt.Sprintf("%s-%s.tar.gz", meta.Name, meta.Version)
	outPath := filepath.Join(distDir, name)

	f, err := os.Create(outPath) //nolint:gosec // path derived from validated metadata
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create archive")
	}

	sha := sha256.New()
	xx := xxhash.New()
	out := io.MultiWriter(f, sha, xx)

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	prefix := fmt.Sprintf("%s-%s", meta.Name, meta.Version)
	walkErr := b.pack(ctx, tw, srcDir, distDir, prefix, excludes)

	// Close order matters: tar flushes into gzip, gzip into the file.
	if err := tw.Close(); err != nil && walkErr == nil {
		walkErr = zerr.Wrap(err, "failed to finalize archive")
	}
	if err := gz.Close(); err != nil && walkErr == nil {
		walkErr = zerr.Wrap(err, "failed to finalize compression")
	}
	if err := f.Close(); err != nil && walkErr == nil {
		walkErr = zerr.Wrap(err, "failed to close archive")
	}
	if walkErr != nil {
		_ = os.Remove(outPath)
		return nil, walkErr
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to stat archive")
	}

	return &domain.Artifact{
		Path:   outPath,
		SHA256: hex.EncodeToString(sha.Sum(nil)),
		XXHash: fmt.Sprintf("%016x", xx.Sum64()),
		Size:   info.Size(),
	}, nil
}

func (b *Builder) pack(ctx context.Context, tw *tar.Writer, srcDir, distDir, prefix string, excludes []string) error {
	absDist, err := filepath.Abs(distDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve dist directory")
	}

	return filepath.WalkDir(srcDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if skip(rel, path, absDist, excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() && !d.IsDir() {
			return nil
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = prefix + "/" + filepath.ToSlash(rel)
		if d.IsDir() {
			hdr.Name += "/"
		}

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		src, err := os.Open(path) //nolint:gosec // path produced by the walk
		if err != nil {
			return err
		}
		defer src.Close() //nolint:errcheck // Best effort close in defer

		_, err = io.Copy(tw, src)
		return err
	})
}

func skip(rel, path, absDist string, excludes []string) bool {
	base := filepath.Base(rel)
	if base == ".git" || base == ".shipit" {
		return true
	}

	if abs, err := filepath.Abs(path); err == nil && abs == absDist {
		return true
	}

	for _, ex := range excludes {
		ex = filepath.Clean(ex)
		if rel == ex || strings.HasPrefix(rel, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
