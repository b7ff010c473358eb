package ports

// FileOps is the side-effecting operation set of the synchronizer. The
// decision logic never mutates the filesystem directly; it goes through this
// interface so a dry run can substitute a recording implementation while the
// decisions themselves run identically.
//
//go:generate mockgen -source=fileops.go -destination=mocks/mock_fileops.go -package=mocks
type FileOps interface {
	// Copy copies src to dst byte-for-byte, creating dst's parent directories.
	Copy(src, dst string) error

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error

	// EnsureFile creates an empty file at path when it does not exist.
	EnsureFile(path string) error

	// AppendLine appends line as a new line at the end of path. When the
	// existing content does not end with a newline one is inserted first.
	AppendLine(path, line string) error
}

// FileProbe answers read-only questions about the filesystem. Probes always
// hit the real filesystem, in dry runs too, so the decision outcomes of both
// modes are identical over the same starting tree.
type FileProbe interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// SameContent reports whether two files have identical bytes.
	SameContent(a, b string) (bool, error)

	// ReadLines returns the lines of path. A missing file yields no lines.
	ReadLines(path string) ([]string, error)

	// ListTree enumerates root recursively, returning directory paths and
	// file paths relative to root, directories sorted before the files they
	// contain. A missing root yields empty slices, not an error.
	ListTree(root string) (dirs, files []string, err error)
}
