package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownForceToken is returned when a force spec names a category that does not exist.
	ErrUnknownForceToken = zerr.New("unknown force category")

	// ErrInvalidTaskRef is returned when a manifest task reference cannot be parsed.
	ErrInvalidTaskRef = zerr.New("invalid task reference")

	// ErrTemplateRootMissing is returned when the template root is absent or not a directory.
	ErrTemplateRootMissing = zerr.New("template root is not a directory")

	// ErrNotARepository is returned when git operations are requested outside a working tree.
	ErrNotARepository = zerr.New("not a git repository")

	// ErrDirtyWorktree is returned when the working tree has uncommitted changes.
	ErrDirtyWorktree = zerr.New("working tree has uncommitted changes")

	// ErrNoPrimaryBranch is returned when neither main nor master exists.
	ErrNoPrimaryBranch = zerr.New("no primary branch found")

	// ErrNonFastForward is returned when updating the primary branch would require a merge.
	ErrNonFastForward = zerr.New("primary branch cannot be fast-forwarded")
)
