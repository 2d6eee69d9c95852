// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/surveyspace/embed"
)

// ManifestFile is the conventional manifest name inside a data directory.
const ManifestFile = "question_manifest.json"

// Question is one manifest entry.
type Question struct {
	Base          string   `json:"base"`
	Columns       []string `json:"columns"`
	QuestionFull  string   `json:"question_full,omitempty"`
	OptionsText   string   `json:"options_text,omitempty"`
	EmbedFile     string   `json:"embed_file,omitempty"`
	EmbedFilePCA  string   `json:"embed_file_pca,omitempty"`
	EmbedFileUMAP string   `json:"embed_file_umap,omitempty"`
}

// Manifest lists every question of a survey.
type Manifest struct {
	Questions []Question `json:"questions"`

	// Labels maps a column to a display label (stored as q25_labels).
	Labels map[string]string `json:"q25_labels,omitempty"`
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return ParseManifest(raw)
}

// ParseManifest decodes manifest JSON. Every question needs a base.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("dataset: manifest: %w", err)
	}
	for i, q := range m.Questions {
		if q.Base == "" {
			return nil, fmt.Errorf("dataset: manifest question %d has no base: %w", i, ErrMalformed)
		}
	}

	return &m, nil
}

// Question returns the entry for base.
func (m *Manifest) Question(base string) (Question, error) {
	for _, q := range m.Questions {
		if q.Base == base {
			return q, nil
		}
	}

	return Question{}, fmt.Errorf("question %q: %w", base, ErrUnknownQuestion)
}

// Bases returns the question bases in manifest order.
func (m *Manifest) Bases() []string {
	out := make([]string, len(m.Questions))
	for i, q := range m.Questions {
		out[i] = q.Base
	}

	return out
}

// ColumnLabel returns the display label of col, or col itself.
func (m *Manifest) ColumnLabel(col string) string {
	if l, ok := m.Labels[col]; ok && l != "" {
		return l
	}

	return col
}

// EmbedFileFor returns the embed file that serves mode:
//   - PreUMAP: embed_file_umap, else embed_file with its "embed_" prefix
//     replaced by "embed_umap_", else "embed_umap_{base}.json".
//   - PrePCA and PCAJS: embed_file_pca, else embed_file, else
//     "embed_pca_{base}.json". PCAJS reads answers from the same file.
func (q Question) EmbedFileFor(mode embed.Mode) string {
	if mode == embed.PreUMAP {
		switch {
		case q.EmbedFileUMAP != "":
			return q.EmbedFileUMAP
		case q.EmbedFile != "":
			if rest, ok := strings.CutPrefix(q.EmbedFile, "embed_"); ok {
				return "embed_umap_" + rest
			}
			return q.EmbedFile
		default:
			return "embed_umap_" + q.Base + ".json"
		}
	}

	switch {
	case q.EmbedFilePCA != "":
		return q.EmbedFilePCA
	case q.EmbedFile != "":
		return q.EmbedFile
	default:
		return "embed_pca_" + q.Base + ".json"
	}
}

// Options decodes OptionsText.
func (q Question) Options() map[string]string { return ParseOptions(q.OptionsText) }

// ParseOptions splits "code:label | code:label" into a map. Parts without a
// colon or with an empty code are skipped; the first colon separates code
// from label and both are trimmed.
func ParseOptions(text string) map[string]string {
	out := make(map[string]string)
	if text == "" {
		return out
	}
	for _, part := range strings.Split(text, "|") {
		part = strings.TrimSpace(part)
		i := strings.Index(part, ":")
		if i <= 0 {
			continue
		}
		out[strings.TrimSpace(part[:i])] = strings.TrimSpace(part[i+1:])
	}

	return out
}
