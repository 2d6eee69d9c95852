// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
)

// Reserved record keys; every other key of a data record is an answer cell.
const (
	keyID    = "id"
	keyName  = "name"
	keyParty = "party"
	keyGroup = "group"
	keyX     = "x"
	keyY     = "y"
	keyZ     = "z"
)

// Meta is the "meta" object of an embed file.
type Meta struct {
	Method  string
	Base    string
	NoiseSD float64

	// Raw keeps every key, including the ones above.
	Raw map[string]any
}

// EmbedFile is a decoded embed file.
type EmbedFile struct {
	Meta    Meta
	Records []feature.Record

	// Names maps record id to respondent name when the file has one.
	Names map[string]string
}

type embedJSON struct {
	Meta map[string]any   `json:"meta"`
	Data []map[string]any `json:"data"`
}

// LoadEmbedFile reads an embed file from disk.
func LoadEmbedFile(path string) (*EmbedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	ef, err := ReadEmbedFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ef, nil
}

// ParseEmbedFile decodes embed JSON held in memory.
func ParseEmbedFile(raw []byte) (*EmbedFile, error) { return ReadEmbedFile(bytes.NewReader(raw)) }

// ReadEmbedFile decodes an embed file.
//   - id may be a JSON number or string; a record without id is an error.
//   - party becomes Record.Group.
//   - x, y, z become Record.Coords only when all three are numbers.
//   - every other non-reserved key becomes a cell.
func ReadEmbedFile(r io.Reader) (*EmbedFile, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc embedJSON
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataset: embed file: %w", err)
	}

	ef := &EmbedFile{
		Meta:    parseMeta(doc.Meta),
		Records: make([]feature.Record, 0, len(doc.Data)),
		Names:   make(map[string]string),
	}
	for i, row := range doc.Data {
		rec, name, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("dataset: record %d: %w", i, err)
		}
		if name != "" {
			ef.Names[rec.ID] = name
		}
		ef.Records = append(ef.Records, rec)
	}

	return ef, nil
}

func parseMeta(m map[string]any) Meta {
	out := Meta{Raw: m}
	if s, ok := m["method"].(string); ok {
		out.Method = s
	}
	if s, ok := m["base"].(string); ok {
		out.Base = s
	}
	if n, ok := m["noise_sd"].(json.Number); ok {
		out.NoiseSD, _ = n.Float64()
	}

	return out
}

func parseRecord(row map[string]any) (feature.Record, string, error) {
	var rec feature.Record
	id, ok := row[keyID]
	if !ok || id == nil {
		return rec, "", fmt.Errorf("no id: %w", ErrMalformed)
	}
	rec.ID = scalarString(id)
	rec.Group = scalarString(row[keyParty])
	name := scalarString(row[keyName])

	var c geom.Vec3
	have := 0
	for k, key := range []string{keyX, keyY, keyZ} {
		n, ok := row[key].(json.Number)
		if !ok {
			break
		}
		f, err := n.Float64()
		if err != nil {
			break
		}
		c[k] = f
		have++
	}
	if have == 3 {
		rec.Coords = &c
	}

	rec.Cells = make(map[string]feature.Cell, len(row))
	for k, v := range row {
		switch k {
		case keyID, keyName, keyParty, keyGroup, keyX, keyY, keyZ:
			continue
		}
		rec.Cells[k] = feature.ParseCell(v)
	}

	return rec, name, nil
}

// scalarString renders a decoded JSON scalar; nil becomes "".
func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
