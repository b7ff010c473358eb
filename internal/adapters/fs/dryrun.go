package fs

import (
	"go.trai.ch/seed/internal/core/ports"
)

// DryRunOps implements ports.FileOps as a recording no-op. Every operation
// only logs what would have been done; the filesystem is never touched.
type DryRunOps struct {
	logger ports.Logger

	// Actions holds the operations in decision order, for tests and reports.
	Actions []string
}

// NewDryRunOps creates the recording FileOps implementation.
func NewDryRunOps(logger ports.Logger) *DryRunOps {
	return &DryRunOps{logger: logger}
}

// Copy records the copy that a real run would perform.
func (o *DryRunOps) Copy(src, dst string) error {
	o.record("copy " + src + " -> " + dst)
	return nil
}

// MkdirAll records the directory creation that a real run would perform.
func (o *DryRunOps) MkdirAll(dir string) error {
	o.record("mkdir " + dir)
	return nil
}

// EnsureFile records the file creation that a real run would perform.
func (o *DryRunOps) EnsureFile(path string) error {
	o.record("create " + path)
	return nil
}

// AppendLine records the append that a real run would perform.
func (o *DryRunOps) AppendLine(path, line string) error {
	o.record("append " + line + " to " + path)
	return nil
}

func (o *DryRunOps) record(action string) {
	o.Actions = append(o.Actions, action)
	o.logger.Info("dry-run: would " + action)
}
