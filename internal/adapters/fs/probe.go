package fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Probe implements ports.FileProbe against the real filesystem.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Exists reports whether path exists.
func (p *Probe) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, zerr.Wrap(err, "failed to stat path")
}

// SameContent reports whether two files have identical bytes, compared by
// content hash.
func (p *Probe) SameContent(a, b string) (bool, error) {
	ha, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hb, err := hashFile(b)
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}

// ReadLines returns the lines of path. A missing file yields no lines.
func (p *Probe) ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the manifest
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read file")
	}
	if len(content) == 0 {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"), nil
}

// ListTree enumerates root recursively. Paths are relative to root and
// directories come before the files they contain, so mirroring the structure
// can create every directory before any copy into it. A missing root is
// "nothing to do" and yields empty slices.
func (p *Probe) ListTree(root string) ([]string, []string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, zerr.Wrap(err, "failed to stat tree root")
	}
	if !info.IsDir() {
		return nil, nil, zerr.With(zerr.New("tree root is not a directory"), "root", root)
	}

	var dirs, files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, rel)
		} else {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to walk tree")
	}
	return dirs, files, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the manifest
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open file for hashing")
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, zerr.Wrap(err, "failed to hash file")
	}
	return h.Sum64(), nil
}
