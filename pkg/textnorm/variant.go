package textnorm

import (
	"encoding/json"
	"io/fs"
	"strings"
	"sync"
)

// VariantMap is a single-character substitution table mapping
// orthographic variants to their canonical forms. It is loaded at most
// once and immutable afterwards.
type VariantMap struct {
	fsys fs.FS
	path string

	mu      sync.Mutex
	loaded  bool
	entries map[rune]string
}

// NewVariantMap returns a VariantMap backed by path inside fsys. The
// file, when present, is a flat JSON object of single-character keys
// to single-character replacements. Absence of the file yields an
// empty table.
func NewVariantMap(fsys fs.FS, path string) *VariantMap {
	return &VariantMap{fsys: fsys, path: path}
}

// Apply returns a copy of text with every mapped character replaced.
func (v *VariantMap) Apply(text string) string {
	entries := v.load()
	if len(entries) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if repl, ok := entries[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Len returns the number of entries in the table, loading it if needed.
func (v *VariantMap) Len() int {
	return len(v.load())
}

func (v *VariantMap) load() map[rune]string {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loaded {
		return v.entries
	}
	v.loaded = true
	v.entries = map[rune]string{}

	data, err := fs.ReadFile(v.fsys, v.path)
	if err != nil {
		// A missing table is the normal case for installs without
		// variant characters.
		return v.entries
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return v.entries
	}

	for key, repl := range raw {
		runes := []rune(key)
		if len(runes) != 1 {
			continue
		}
		v.entries[runes[0]] = repl
	}
	return v.entries
}
