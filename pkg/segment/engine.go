// Package segment wraps the word-segmentation capability used by the
// G2P pipeline.
//
// The pipeline does not care how tokens are produced, only that the
// engine performs deterministic, dictionary-weighted maximum matching
// with no statistical smoothing: identical input against identical
// dictionary state must always yield the identical token sequence.
// Engines are seeded from a lexicon with per-word weights proportional
// to word length, so longer dictionary entries outrank any shorter
// decomposition.
package segment

// Engine is the pluggable word-segmentation capability. Any compliant
// engine can be substituted; the package ships a self-contained
// weighted maximum-matching engine (NewEngine) and an adapter for the
// sego segmenter (NewSegoEngine).
type Engine interface {
	// AddWord inserts word with the given priority weight. Inserting
	// an existing word replaces its weight.
	AddWord(word string, freq int)

	// Cut splits text into an ordered token sequence. Whitespace and
	// unknown characters come back as tokens too; callers decide what
	// to drop.
	Cut(text string) ([]string, error)
}

// wordWeightScale spreads lexicon weights far apart so that a single
// longer entry always outweighs any combination of shorter ones.
const wordWeightScale = 10000

// WordWeight is the seeding weight for a lexicon word: rune length
// times a large constant.
func WordWeight(word string) int {
	return len([]rune(word)) * wordWeightScale
}
