// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/seed/internal/adapters/config"
	_ "go.trai.ch/seed/internal/adapters/fs"
	_ "go.trai.ch/seed/internal/adapters/logger"
	_ "go.trai.ch/seed/internal/adapters/shell"
	_ "go.trai.ch/seed/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/seed/internal/app"
)
