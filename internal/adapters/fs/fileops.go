// Package fs provides the filesystem adapters: the real side-effect set, a
// dry-run recording set, and the read-only probe shared by both modes.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/seed/internal/core/ports"
	"go.trai.ch/zerr"
)

// Ops implements ports.FileOps against the real filesystem.
type Ops struct {
	logger ports.Logger
}

// NewOps creates the real FileOps implementation.
func NewOps(logger ports.Logger) *Ops {
	return &Ops{logger: logger}
}

// Copy copies src to dst byte-for-byte, creating dst's parent directories.
func (o *Ops) Copy(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create destination directory")
	}

	in, err := os.Open(src) //nolint:gosec // path comes from the manifest
	if err != nil {
		return zerr.Wrap(err, "failed to open source")
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return zerr.Wrap(err, "failed to stat source")
	}

	// Preserve the source mode so stub scripts keep their executable bit.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // path comes from the manifest
	if err != nil {
		return zerr.Wrap(err, "failed to open destination")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy contents")
	}

	if err := out.Close(); err != nil {
		return zerr.Wrap(err, "failed to close destination")
	}
	o.logger.Info("copied " + dst)
	return nil
}

// MkdirAll creates dir and any missing parents.
func (o *Ops) MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}
	return nil
}

// EnsureFile creates an empty file at path when it does not exist.
func (o *Ops) EnsureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to stat destination")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create destination directory")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil { //nolint:gosec // accumulator files are world-readable
		return zerr.Wrap(err, "failed to create file")
	}
	o.logger.Info("created " + path)
	return nil
}

// AppendLine appends line as a new line at the end of path.
func (o *Ops) AppendLine(path, line string) error {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the manifest
	if err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to read destination")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644) //nolint:gosec // accumulator files are world-readable
	if err != nil {
		return zerr.Wrap(err, "failed to open destination")
	}
	defer func() { _ = f.Close() }()

	text := line + "\n"
	if len(content) > 0 && content[len(content)-1] != '\n' {
		text = "\n" + text
	}
	if _, err := f.WriteString(text); err != nil {
		return zerr.Wrap(err, "failed to append line")
	}
	o.logger.Info("appended " + line + " to " + path)
	return nil
}
