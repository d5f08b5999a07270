// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/pkgship/shipit/internal/adapters/config"
	_ "github.com/pkgship/shipit/internal/adapters/fs"
	_ "github.com/pkgship/shipit/internal/adapters/git"
	_ "github.com/pkgship/shipit/internal/adapters/history"
	_ "github.com/pkgship/shipit/internal/adapters/index"
	_ "github.com/pkgship/shipit/internal/adapters/logger"
	_ "github.com/pkgship/shipit/internal/adapters/metadata"
	_ "github.com/pkgship/shipit/internal/adapters/sdist"
	_ "github.com/pkgship/shipit/internal/adapters/shell"
	_ "github.com/pkgship/shipit/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/pkgship/shipit/internal/app"
	_ "github.com/pkgship/shipit/internal/engine/pipeline"
)
