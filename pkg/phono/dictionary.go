// Package phono loads and caches the pronunciation lexicons.
//
// A lexicon source is a flat JSON object mapping a headword to an
// ordered, non-empty list of pronunciation strings; the first entry is
// the canonical one. One file exists per (pronunciation scheme,
// dialect group) pair, plus optional loanword files per scheme that
// are merged in at load time.
package phono

// Expression is a headword encoded as a UTF-8 string.
type Expression = string

// Pronunciation is a phonetic transcription (IPA or romanization),
// treated as an opaque string.
type Pronunciation = string

// Dictionary maps a headword to its ordered pronunciation variants.
// The first pronunciation is the canonical / preferred one.
type Dictionary map[Expression][]Pronunciation

// Lookup returns the pronunciation variants for word, or nil when the
// word is absent. Lookup is by exact string key only.
func (d Dictionary) Lookup(word string) []Pronunciation {
	return d[word]
}

// Contains reports whether word is a key of the dictionary.
func (d Dictionary) Contains(word string) bool {
	_, ok := d[word]
	return ok
}

// Words returns the headwords of the dictionary, in map order.
func (d Dictionary) Words() []string {
	words := make([]string, 0, len(d))
	for w := range d {
		words = append(words, w)
	}
	return words
}

// Merge folds other into d: headwords absent from d are copied
// wholesale, and for headwords already present, pronunciations not yet
// listed are appended after the existing ones. Existing order is never
// disturbed and no duplicates are introduced.
func (d Dictionary) Merge(other Dictionary) {
	for word, prons := range other {
		existing, ok := d[word]
		if !ok {
			d[word] = append([]Pronunciation(nil), prons...)
			continue
		}
		for _, p := range prons {
			if !containsString(existing, p) {
				existing = append(existing, p)
			}
		}
		d[word] = existing
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Lexicon groups the per-scheme dictionaries of one dialect group,
// keyed by scheme name.
type Lexicon map[string]Dictionary
