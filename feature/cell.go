// SPDX-License-Identifier: MIT

package feature

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellKind tags the dynamic type of a raw answer.
type CellKind uint8

const (
	// Missing marks an absent answer (null or no such column).
	Missing CellKind = iota

	// Number holds a decoded numeric answer.
	Number

	// Text holds a string answer, including placeholders such as "-".
	Text
)

// String implements fmt.Stringer.
func (k CellKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Number:
		return "number"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Cell is one raw answer value.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell { return Cell{Kind: Number, Num: v} }

// TextCell returns a string cell.
func TextCell(s string) Cell { return Cell{Kind: Text, Str: s} }

// ParseCell converts a value decoded from JSON (or built by hand) into a Cell.
// Booleans become 1 and 0; unknown types are kept as text.
func ParseCell(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Cell{}
	case bool:
		if x {
			return NumberCell(1)
		}
		return NumberCell(0)
	case float64:
		return NumberCell(x)
	case float32:
		return NumberCell(float64(x))
	case int:
		return NumberCell(float64(x))
	case int64:
		return NumberCell(float64(x))
	case int32:
		return NumberCell(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return TextCell(x.String())
		}
		return NumberCell(f)
	case string:
		return TextCell(x)
	case Cell:
		return x
	default:
		return TextCell(fmt.Sprint(x))
	}
}

// String renders the cell the way answers are compared against option codes:
// integral numbers print without a fraction, Missing prints as "".
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Text:
		return c.Str
	default:
		return ""
	}
}

// IsPlaceholder reports whether c carries no answer ("-", "" or Missing).
func (c Cell) IsPlaceholder() bool {
	switch c.Kind {
	case Missing:
		return true
	case Text:
		return c.Str == "-" || c.Str == ""
	default:
		return false
	}
}

// Coerce returns the numeric value of c or fill when there is none.
//   - Number: the value when finite.
//   - Text: "-" and "" give fill; otherwise read as a numeric literal.
//   - Anything non-finite or unparseable gives fill.
func Coerce(c Cell, fill float64) float64 {
	var v float64
	switch c.Kind {
	case Number:
		v = c.Num
	case Text:
		if c.Str == "" || c.Str == "-" {
			return fill
		}
		f, ok := parseNumber(c.Str)
		if !ok {
			return fill
		}
		v = f
	default:
		return fill
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fill
	}

	return v
}

// parseNumber reads s with JavaScript Number() rules: surrounding whitespace
// is ignored, blank text is 0, and unsigned 0x/0o/0b integers are accepted.
// Spelled-out infinities and NaN are reported as unparseable.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil || strings.Contains(s[2:], "_") {
				return 0, false
			}
			return float64(u), true
		}
	}
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "nan") || strings.HasPrefix(lower, "0x") || strings.Contains(s, "_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
