// Package textnorm cleans raw Hakka text before segmentation.
//
// Normalization is a fixed, order-sensitive pipeline: case folding,
// NFKC compatibility normalization, punctuation width folding, a
// character-class strip, whitespace collapsing and an optional
// variant-character substitution. The pipeline is idempotent:
// Normalize(Normalize(x)) == Normalize(x).
package textnorm

import (
	"io/fs"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// reStrip removes every character outside the classes the lexicons
// cover: CJK ideographs (radicals and the basic block, compatibility
// ideographs, extensions B through H), the private-use areas reserved
// for dialect-specific characters, ASCII letters and digits,
// whitespace, and the four canonical full-width marks.
var reStrip = regexp.MustCompile(`[^` +
	`\x{2e80}-\x{9fff}` +
	`\x{f900}-\x{faff}` +
	`\x{20000}-\x{323af}` +
	`\x{e000}-\x{f8ff}` +
	`\x{f0000}-\x{10fffd}` +
	`a-zA-Z0-9\s，。？！]`)

// reWhitespace collapses runs of whitespace and tabs.
var reWhitespace = regexp.MustCompile(`[\s\t]+`)

// Normalizer owns the normalization pipeline and the lazily loaded
// variant-character table.
type Normalizer struct {
	variants *VariantMap
}

// NewNormalizer returns a Normalizer that reads the optional
// variant-character table from variantPath inside fsys on first use.
// A missing table is treated as empty, never as an error.
func NewNormalizer(fsys fs.FS, variantPath string) *Normalizer {
	return &Normalizer{variants: NewVariantMap(fsys, variantPath)}
}

// Normalize runs the full cleanup pipeline on text. It returns the
// empty string when nothing survives; callers must treat that as
// "no work to do", not as an error.
func (n *Normalizer) Normalize(text string, useVariantMap bool) string {
	text = strings.ToUpper(text)
	text = norm.NFKC.String(text)
	text = markerHalfToFull.Replace(text)
	text = reStrip.ReplaceAllString(text, "")
	text = reWhitespace.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if useVariantMap {
		text = n.ApplyVariantMap(text)
	}

	return text
}

// ApplyVariantMap substitutes orthographic variant characters with
// their canonical forms, character by character. Characters absent
// from the table pass through unchanged.
func (n *Normalizer) ApplyVariantMap(text string) string {
	return n.variants.Apply(text)
}
