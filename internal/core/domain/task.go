// Package domain holds the core types for the template synchronizer.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Category classifies a sync task and selects its overwrite policy.
type Category int

const (
	// CategoryFile is a single template file copied byte-for-byte.
	CategoryFile Category = iota
	// CategoryStub is a placeholder source file merged from the stub tree.
	CategoryStub
	// CategoryWorkflow is a CI workflow definition merged from the workflow tree.
	CategoryWorkflow
	// CategoryIgnoreAppend is a line list appended into an accumulator file.
	CategoryIgnoreAppend
)

// String returns the category name as it appears in logs and force specs.
func (c Category) String() string {
	switch c {
	case CategoryFile:
		return "files"
	case CategoryStub:
		return "stubs"
	case CategoryWorkflow:
		return "workflows"
	case CategoryIgnoreAppend:
		return "ignore"
	default:
		return "unknown"
	}
}

// SyncTask is one unit of template synchronization. Source and Dest are
// relative to the template root and target root respectively. They differ
// when the manifest entry uses the "source:dest" rename syntax.
type SyncTask struct {
	Source   string
	Dest     string
	Category Category
}

// ParseTaskRef parses a manifest entry of the form "source" or "source:dest"
// into a SyncTask of the given category.
func ParseTaskRef(ref string, cat Category) (SyncTask, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return SyncTask{}, ErrInvalidTaskRef
	}

	src, dst, renamed := strings.Cut(ref, ":")
	if !renamed {
		dst = src
	}
	if src == "" || dst == "" || strings.Contains(dst, ":") {
		return SyncTask{}, zerr.With(ErrInvalidTaskRef, "ref", ref)
	}

	return SyncTask{Source: src, Dest: dst, Category: cat}, nil
}
