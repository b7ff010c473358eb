// Package config provides the manifest loader for seed.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file looked up in the target root.
const DefaultFilename = "seed.yaml"

// FileManifestLoader implements ports.ManifestLoader using a YAML file.
type FileManifestLoader struct {
	Filename string
}

// NewLoader creates a loader for the default manifest filename.
func NewLoader() *FileManifestLoader {
	return &FileManifestLoader{Filename: DefaultFilename}
}

// Load reads the manifest from the target root. A missing manifest file is
// not an error: the compiled-in defaults apply.
func (l *FileManifestLoader) Load(targetRoot string) (*domain.Manifest, error) {
	path := filepath.Join(targetRoot, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the target root
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultManifest(), nil
		}
		return nil, zerr.Wrap(err, "failed to read manifest")
	}
	return parse(data)
}

// seedfile represents the structure of the seed.yaml manifest.
type seedfile struct {
	Version      string    `yaml:"version"`
	TemplateRoot string    `yaml:"templateRoot"`
	Files        []string  `yaml:"files"`
	Stubs        *treeDTO  `yaml:"stubs"`
	Workflows    *treeDTO  `yaml:"workflows"`
	Ignore       []lineDTO `yaml:"ignore"`
	Audit        auditDTO  `yaml:"audit"`
	Git          gitDTO    `yaml:"git"`
}

type treeDTO struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

type lineDTO struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

type auditDTO struct {
	Marker string `yaml:"marker"`
}

type gitDTO struct {
	WorkBranch string `yaml:"workBranch"`
	LegacyHook string `yaml:"legacyHookConfig"`
}

// parse decodes a manifest document on top of the compiled-in defaults:
// sections present in the document replace the default, absent sections keep it.
func parse(data []byte) (*domain.Manifest, error) {
	var doc seedfile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	m := domain.DefaultManifest()
	m.TemplateRoot = doc.TemplateRoot

	if doc.Files != nil {
		tasks := make([]domain.SyncTask, 0, len(doc.Files))
		for _, ref := range doc.Files {
			task, err := domain.ParseTaskRef(ref, domain.CategoryFile)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
		}
		m.Files = tasks
	}

	if doc.Stubs != nil {
		m.Stubs = domain.TreeSpec{Source: doc.Stubs.Source, Dest: doc.Stubs.Dest}
	}
	if doc.Workflows != nil {
		m.Workflows = domain.TreeSpec{Source: doc.Workflows.Source, Dest: doc.Workflows.Dest}
	}
	if doc.Ignore != nil {
		merges := make([]domain.IgnoreMerge, 0, len(doc.Ignore))
		for _, dto := range doc.Ignore {
			if dto.Source == "" || dto.Dest == "" {
				return nil, zerr.New("ignore merge requires source and dest")
			}
			merges = append(merges, domain.IgnoreMerge{Source: dto.Source, Dest: dto.Dest})
		}
		m.Ignores = merges
	}

	if doc.Audit.Marker != "" {
		m.AuditMarker = doc.Audit.Marker
	}
	if doc.Git.WorkBranch != "" {
		m.WorkBranch = doc.Git.WorkBranch
	}
	if doc.Git.LegacyHook != "" {
		m.LegacyHook = doc.Git.LegacyHook
	}
	return m, nil
}
