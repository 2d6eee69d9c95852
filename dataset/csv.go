// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
)

// ReadCSV reads one record per row. The first row is the header; idCol and
// groupCol name the id and group columns (groupCol may be empty). Columns
// named x, y and z become coordinates when all three parse as numbers.
// Every other column is kept as a text cell, so "-" and "" stay placeholders.
func ReadCSV(r io.Reader, idCol, groupCol string) ([]feature.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("dataset: csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idIdx, groupIdx := -1, -1
	xyz := [3]int{-1, -1, -1}
	for i, h := range header {
		switch h {
		case idCol:
			idIdx = i
		case groupCol:
			groupIdx = i
		case keyX:
			xyz[0] = i
		case keyY:
			xyz[1] = i
		case keyZ:
			xyz[2] = i
		}
	}
	if idIdx < 0 {
		return nil, fmt.Errorf("dataset: csv id column %q: %w", idCol, ErrMissingColumn)
	}
	if groupCol != "" && groupIdx < 0 {
		return nil, fmt.Errorf("dataset: csv group column %q: %w", groupCol, ErrMissingColumn)
	}

	var out []feature.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: csv line %d: %w", line, err)
		}
		field := func(i int) string {
			if i < 0 || i >= len(row) {
				return ""
			}
			return row[i]
		}

		rec := feature.Record{
			ID:    strings.TrimSpace(field(idIdx)),
			Group: strings.TrimSpace(field(groupIdx)),
			Cells: make(map[string]feature.Cell, len(header)),
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("dataset: csv line %d: empty id: %w", line, ErrMalformed)
		}
		if xyz[0] >= 0 && xyz[1] >= 0 && xyz[2] >= 0 {
			rec.Coords = parseCoords(field(xyz[0]), field(xyz[1]), field(xyz[2]))
		}
		for i, h := range header {
			if i == idIdx || i == groupIdx || i == xyz[0] || i == xyz[1] || i == xyz[2] {
				continue
			}
			rec.Cells[h] = feature.TextCell(field(i))
		}
		out = append(out, rec)
	}

	return out, nil
}

func parseCoords(xs, ys, zs string) *geom.Vec3 {
	var c geom.Vec3
	for k, s := range []string{xs, ys, zs} {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		c[k] = f
	}

	return &c
}
