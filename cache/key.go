// SPDX-License-Identifier: MIT

package cache

import "strings"

const (
	// KindGlobal labels whole-population entries.
	KindGlobal = "global"

	// KindGroup labels per-group entries.
	KindGroup = "group"

	baseSep  = "|"
	groupSep = "::"
)

// Key identifies one cached clustering result.
type Key struct {
	Base  string
	Mode  string
	Group string // empty for the whole population
}

// GlobalKey returns the key of the whole-population result.
func GlobalKey(base, mode string) Key { return Key{Base: base, Mode: mode} }

// GroupKey returns the key of a per-group result.
func GroupKey(base, mode, group string) Key { return Key{Base: base, Mode: mode, Group: group} }

// String renders "base|mode" or "base|mode::group".
func (k Key) String() string {
	s := k.Base + baseSep + k.Mode
	if k.Group != "" {
		s += groupSep + k.Group
	}

	return s
}

// Kind returns KindGlobal or KindGroup.
func (k Key) Kind() string {
	if k.Group != "" {
		return KindGroup
	}

	return KindGlobal
}

// basePrefix is the common prefix of every key of base.
func basePrefix(base string) string { return base + baseSep }

// globEscape quotes the glob metacharacters understood by Redis KEYS.
func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
