// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/notmyrealname/apbuild/internal/adapters/fs"
	_ "github.com/notmyrealname/apbuild/internal/adapters/logger"
	_ "github.com/notmyrealname/apbuild/internal/adapters/manifest"
	_ "github.com/notmyrealname/apbuild/internal/adapters/python"
	_ "github.com/notmyrealname/apbuild/internal/adapters/shell"
	_ "github.com/notmyrealname/apbuild/internal/adapters/state"
	_ "github.com/notmyrealname/apbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/notmyrealname/apbuild/internal/app"
	_ "github.com/notmyrealname/apbuild/internal/engine/plan"
	_ "github.com/notmyrealname/apbuild/internal/engine/runner"
)
