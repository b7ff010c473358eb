package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RunConfig carries every mode decision for a single run. It is built once
// from flags, environment and manifest, then threaded into each operation so
// nothing reads global state ad hoc.
type RunConfig struct {
	DryRun     bool
	GitEnabled bool
	// Force maps a category to its overwrite policy. Categories absent from
	// the map keep existing destination entries untouched.
	Force map[Category]bool
	// TemplateRoot is the absolute path of the template source directory.
	TemplateRoot string
	// TargetRoot is the absolute path of the repository being bootstrapped.
	TargetRoot string
}

// ForceAll is the --force token that enables overwriting for every forceable category.
const ForceAll = "all"

// forceableCategories are the categories a --force spec may name. Ignore
// accumulators are append-only and can never be forced.
var forceableCategories = map[string]Category{
	"files":     CategoryFile,
	"stubs":     CategoryStub,
	"workflows": CategoryWorkflow,
}

// ParseForceSpec parses a --force specification: empty (nothing forced),
// "all", or a comma-separated subset of {files, stubs, workflows}. Unknown
// tokens are a fatal configuration error.
func ParseForceSpec(spec string) (map[Category]bool, error) {
	force := make(map[Category]bool)
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return force, nil
	}

	if spec == ForceAll {
		for _, cat := range forceableCategories {
			force[cat] = true
		}
		return force, nil
	}

	for tok := range strings.SplitSeq(spec, ",") {
		tok = strings.TrimSpace(tok)
		cat, ok := forceableCategories[tok]
		if !ok {
			return nil, zerr.With(ErrUnknownForceToken, "token", tok)
		}
		force[cat] = true
	}
	return force, nil
}
