package app

import "go.trai.ch/seed/internal/core/ports"

// Components bundles the fully wired application with the adapters the CLI
// layer needs direct access to.
type Components struct {
	App       *App
	Logger    ports.Logger
	Loader    ports.ManifestLoader
	Probe     ports.FileProbe
	Runner    ports.CommandRunner
	Telemetry ports.Telemetry
}
