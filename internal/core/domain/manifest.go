package domain

// TreeSpec names a directory tree merged from the template root into the
// target: Source relative to the template root, Dest relative to the target.
type TreeSpec struct {
	Source string
	Dest   string
}

// IgnoreMerge names one line-list source merged into an accumulator file.
type IgnoreMerge struct {
	Source string
	Dest   string
}

// Manifest is the full synchronization plan: which template paths go where,
// and the knobs for the git and audit phases. A seed.yaml in the target may
// override any part of it; everything else falls back to these defaults.
type Manifest struct {
	TemplateRoot string
	Files        []SyncTask
	Stubs        TreeSpec
	Workflows    TreeSpec
	Ignores      []IgnoreMerge
	AuditMarker  string
	WorkBranch   string
	LegacyHook   string
}

// DefaultManifest returns the compiled-in synchronization plan.
func DefaultManifest() *Manifest {
	return &Manifest{
		Files: []SyncTask{
			{Source: "flake.nix", Dest: "flake.nix", Category: CategoryFile},
			{Source: "flake.lock", Dest: "flake.lock", Category: CategoryFile},
			{Source: "dot-envrc", Dest: ".envrc", Category: CategoryFile},
		},
		Stubs:     TreeSpec{Source: "stubs", Dest: "."},
		Workflows: TreeSpec{Source: "workflows", Dest: ".github/workflows"},
		Ignores: []IgnoreMerge{
			{Source: "gitignore.lines", Dest: ".gitignore"},
			{Source: "cursorignore.lines", Dest: ".cursorignore"},
		},
		AuditMarker: "nolint",
		WorkBranch:  "chore/devkit-sync",
		LegacyHook:  ".pre-commit-config.yaml",
	}
}
