package ports

import "go.trai.ch/seed/internal/core/domain"

// ManifestLoader defines the interface for loading the synchronization plan.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest for the given target root, falling back to the
	// compiled-in defaults when no manifest file is present.
	Load(targetRoot string) (*domain.Manifest, error)
}
