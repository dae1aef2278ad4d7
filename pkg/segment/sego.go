package segment

import (
	"fmt"
	"os"
	"sort"

	"github.com/huichen/sego"
)

// segoEngine adapts the sego segmenter to the Engine interface.
//
// sego only loads dictionaries from files, so added words are buffered
// and materialized into a temporary dictionary file before the first
// cut, and again whenever the word set changed since the last rebuild.
type segoEngine struct {
	freqs map[string]int
	seg   *sego.Segmenter
	dirty bool
}

// NewSegoEngine returns an Engine backed by github.com/huichen/sego.
func NewSegoEngine() Engine {
	return &segoEngine{freqs: make(map[string]int)}
}

func (e *segoEngine) AddWord(word string, freq int) {
	if word == "" || freq <= 0 {
		return
	}
	e.freqs[word] = freq
	e.dirty = true
}

func (e *segoEngine) Cut(text string) ([]string, error) {
	if e.dirty || e.seg == nil {
		if err := e.rebuild(); err != nil {
			return nil, err
		}
	}

	segments := e.seg.Segment([]byte(text))
	tokens := make([]string, 0, len(segments))
	for _, s := range segments {
		tokens = append(tokens, s.Token().Text())
	}
	return tokens, nil
}

// rebuild writes the buffered words to a sego dictionary file and
// loads a fresh segmenter from it. The file only lives for the
// duration of the load.
func (e *segoEngine) rebuild() error {
	tmp, err := os.CreateTemp("", "hakka-sego-*.txt")
	if err != nil {
		return fmt.Errorf("materialize sego dictionary: %w", err)
	}
	defer os.Remove(tmp.Name())

	words := make([]string, 0, len(e.freqs))
	for w := range e.freqs {
		words = append(words, w)
	}
	sort.Strings(words)

	for _, w := range words {
		if _, err := fmt.Fprintf(tmp, "%s %d x\n", w, e.freqs[w]); err != nil {
			tmp.Close()
			return fmt.Errorf("materialize sego dictionary: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("materialize sego dictionary: %w", err)
	}

	var seg sego.Segmenter
	seg.LoadDictionary(tmp.Name())

	e.seg = &seg
	e.dirty = false
	return nil
}
