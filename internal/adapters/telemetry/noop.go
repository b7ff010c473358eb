// Package telemetry provides telemetry adapters.
package telemetry

import (
	"context"

	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/seed/internal/core/ports"
)

// Noop implements ports.Telemetry without recording anything. Used in tests
// and wherever stage recording is not wanted.
type Noop struct{}

// NewNoop creates a new no-op telemetry instance.
func NewNoop() ports.Telemetry {
	return &Noop{}
}

// Record returns an inert vertex.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

type noopVertex struct{}

func (v *noopVertex) Log(domain.LogLevel, string) {}
func (v *noopVertex) Complete(error)              {}
