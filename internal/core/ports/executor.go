// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv in the given working directory, streaming output to
	// the logger. It returns an error if the command exits non-zero.
	Execute(ctx context.Context, argv []string, dir string) error
}
