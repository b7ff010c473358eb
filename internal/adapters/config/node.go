package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seed/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader adapter node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return NewLoader(), nil
		},
	})
}
