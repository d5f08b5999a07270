package domain

import "time"

// Artifact describes a built source distribution.
type Artifact struct {
	// Path is the location of the archive on disk.
	Path string
	// SHA256 is the hex digest sent to the index alongside the upload.
	SHA256 string
	// XXHash is the hex xxhash of the archive, used for local bookkeeping.
	XXHash string
	// Size is the archive size in bytes.
	Size int64
}

// ReleaseInfo records what happened to a version across pipeline runs.
// It is persisted by the release history store.
type ReleaseInfo struct {
	Package        string    `json:"package"`
	Version        string    `json:"version"`
	ArtifactDigest string    `json:"artifact_digest,omitempty"`
	UploadedAt     time.Time `json:"uploaded_at,omitzero"`
	TaggedAt       time.Time `json:"tagged_at,omitzero"`
}
