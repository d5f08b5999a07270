package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownStep is returned when a step name does not match any known step.
	ErrUnknownStep = zerr.New("unknown step")

	// ErrPipelineFailed is returned when a pipeline run stops at a failing step.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrMetadataInvalid is returned when the package metadata is missing required fields.
	ErrMetadataInvalid = zerr.New("invalid package metadata")

	// ErrTagExists is returned when the version tag already exists in the repository.
	ErrTagExists = zerr.New("tag already exists")

	// ErrNotARepository is returned when the working tree is not a valid repository.
	ErrNotARepository = zerr.New("not a repository")

	// ErrDuplicateUpload is returned when the index rejects an artifact because
	// the version already has one.
	ErrDuplicateUpload = zerr.New("version already uploaded")

	// ErrIndexRejected is returned when the index refuses a request for any
	// other reason (auth, metadata, server error).
	ErrIndexRejected = zerr.New("index rejected request")

	// ErrUnsafeCleanPath is returned when a configured clean path would escape
	// the package directory.
	ErrUnsafeCleanPath = zerr.New("unsafe clean path")
)
