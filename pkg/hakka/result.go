package hakka

import "strings"

// WordPronunciation is the per-token detail of a G2P run.
type WordPronunciation struct {
	Word string `json:"word"`
	// Pronunciation is the chosen transcription; empty when the word
	// was not found in the lexicon.
	Pronunciation string `json:"pronunciation,omitempty"`
	// Known is false for out-of-vocabulary words.
	Known bool `json:"known"`
}

// Result is the output record of a G2P run.
type Result struct {
	// Pronunciations is the emitted pronunciation sequence, one entry
	// per recognized or markable token. When unknown words are
	// dropped, this sequence is shorter than the token sequence.
	Pronunciations []string `json:"pronunciations"`
	// UnknownWords lists the out-of-vocabulary words in segmentation
	// order. Canonical punctuation marks never appear here.
	UnknownWords []string `json:"unknown_words"`
	// Details records every token in order, known or not.
	Details []WordPronunciation `json:"details"`
}

// HasUnknown reports whether any out-of-vocabulary word was seen.
func (r Result) HasUnknown() bool {
	return len(r.UnknownWords) > 0
}

// String joins the pronunciation sequence with spaces.
func (r Result) String() string {
	return strings.Join(r.Pronunciations, " ")
}
