// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"os"

	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/feature"
)

// MethodCSV is the meta method reported for questions served from a CSV table.
const MethodCSV = "CSV"

// CSV is a Source backed by one respondent table: every question reads its
// answer columns from the same rows. When the table carries x, y and z they
// serve pre_pca; pre_umap is always refused by the method check.
type CSV struct {
	manifest *Manifest
	records  []feature.Record
	names    map[string]string
}

var _ Source = (*CSV)(nil)

// OpenCSV loads the manifest and the respondent table. Relative paths are
// resolved against root the same way OpenDir does.
func OpenCSV(root, manifestPath, csvPath, idCol, groupCol string) (*CSV, error) {
	if manifestPath == "" {
		manifestPath = ManifestFile
	}
	m, err := LoadManifest(resolve(root, manifestPath))
	if err != nil {
		return nil, err
	}

	path := resolve(root, csvPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	recs, err := ReadCSV(f, idCol, groupCol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return NewCSV(m, recs), nil
}

// NewCSV serves records for every question of m. A "name" column is moved
// out of the answer cells into the name map.
func NewCSV(m *Manifest, records []feature.Record) *CSV {
	c := &CSV{manifest: m, records: records, names: make(map[string]string)}
	for _, r := range records {
		if cell, ok := r.Cells[keyName]; ok {
			if s := cell.String(); s != "" {
				c.names[r.ID] = s
			}
			delete(r.Cells, keyName)
		}
	}

	return c
}

// Manifest implements Source.
func (c *CSV) Manifest() *Manifest { return c.manifest }

// Load implements Source. The mode only matters to the caller's method check.
func (c *CSV) Load(base string, _ embed.Mode) (Question, *EmbedFile, error) {
	q, err := c.manifest.Question(base)
	if err != nil {
		return Question{}, nil, err
	}

	return q, &EmbedFile{
		Meta:    Meta{Method: MethodCSV, Base: base},
		Records: c.records,
		Names:   c.names,
	}, nil
}
