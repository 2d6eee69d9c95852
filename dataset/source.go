// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/surveyspace/embed"
)

// Source resolves questions and loads their embed files.
type Source interface {
	Manifest() *Manifest
	Load(base string, mode embed.Mode) (Question, *EmbedFile, error)
}

// Dir is a Source backed by a data directory.
type Dir struct {
	root     string
	manifest *Manifest
}

var _ Source = (*Dir)(nil)

// OpenDir loads the manifest at manifestPath; embed files are resolved
// relative to root. A relative manifestPath is resolved against root too.
func OpenDir(root, manifestPath string) (*Dir, error) {
	if manifestPath == "" {
		manifestPath = ManifestFile
	}
	m, err := LoadManifest(resolve(root, manifestPath))
	if err != nil {
		return nil, err
	}

	return &Dir{root: root, manifest: m}, nil
}

// resolve keeps p when it is absolute or exists as given, else joins it to root.
func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	if _, err := os.Stat(p); err == nil {
		return p
	}

	return filepath.Join(root, p)
}

// Manifest implements Source.
func (d *Dir) Manifest() *Manifest { return d.manifest }

// Load implements Source.
func (d *Dir) Load(base string, mode embed.Mode) (Question, *EmbedFile, error) {
	q, err := d.manifest.Question(base)
	if err != nil {
		return Question{}, nil, err
	}
	ef, err := LoadEmbedFile(filepath.Join(d.root, q.EmbedFileFor(mode)))
	if err != nil {
		return Question{}, nil, err
	}

	return q, ef, nil
}

// Static is an in-memory Source keyed by embed file name.
type Static struct {
	manifest *Manifest
	files    map[string]*EmbedFile
}

var _ Source = (*Static)(nil)

// NewStatic returns a Source serving files by the names EmbedFileFor resolves.
func NewStatic(m *Manifest, files map[string]*EmbedFile) *Static {
	return &Static{manifest: m, files: files}
}

// Manifest implements Source.
func (s *Static) Manifest() *Manifest { return s.manifest }

// Load implements Source.
func (s *Static) Load(base string, mode embed.Mode) (Question, *EmbedFile, error) {
	q, err := s.manifest.Question(base)
	if err != nil {
		return Question{}, nil, err
	}
	name := q.EmbedFileFor(mode)
	ef, ok := s.files[name]
	if !ok {
		return Question{}, nil, fmt.Errorf("dataset: %s: %w", name, os.ErrNotExist)
	}

	return q, ef, nil
}
