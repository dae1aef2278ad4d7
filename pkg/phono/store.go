package phono

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"
)

// ErrLexiconNotFound is returned when the dictionary file expected for
// a (scheme, group) pair does not exist.
var ErrLexiconNotFound = errors.New("lexicon file not found")

// LoanwordPrefix is the filename prefix of auxiliary loanword
// dictionaries scanned per scheme directory.
const LoanwordPrefix = "eng_"

// Store loads and caches lexicons per dialect group over an fs.FS with
// the layout <dir>/<scheme>/<group>.json.
//
// The cache is lazy and memoized for the lifetime of the Store; a
// lexicon is loaded at most once per group. Access is serialized by an
// internal mutex, and Clear resets the cache (for tests or memory
// reclamation). There is no eviction.
type Store struct {
	fsys    fs.FS
	dir     string
	schemes []string

	mu       sync.Mutex
	lexicons map[string]Lexicon
}

// NewStore returns a Store reading scheme subdirectories under dir in
// fsys. schemes names the per-lexicon sub-tables to load for every
// group (one file each).
func NewStore(fsys fs.FS, dir string, schemes []string) *Store {
	return &Store{
		fsys:     fsys,
		dir:      dir,
		schemes:  append([]string(nil), schemes...),
		lexicons: make(map[string]Lexicon),
	}
}

// Get returns the lexicon for group, loading it on first use.
//
// The cache key is the group alone: includeLoanwords only takes effect
// on the call that actually performs the load. A group first loaded
// without loanwords stays non-merged for the lifetime of the Store,
// even when a later call passes includeLoanwords=true. Callers that
// need the merged view must request it on first use, or Clear first.
func (s *Store) Get(group string, includeLoanwords bool) (Lexicon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lex, ok := s.lexicons[group]; ok {
		return lex, nil
	}

	lex, err := s.load(group, includeLoanwords)
	if err != nil {
		return nil, err
	}
	s.lexicons[group] = lex
	return lex, nil
}

// Cached returns the groups currently held by the store, sorted.
func (s *Store) Cached() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]string, 0, len(s.lexicons))
	for g := range s.lexicons {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Clear drops every cached lexicon.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexicons = make(map[string]Lexicon)
}

func (s *Store) load(group string, includeLoanwords bool) (Lexicon, error) {
	lex := make(Lexicon, len(s.schemes))

	for _, scheme := range s.schemes {
		base := path.Join(s.dir, scheme, group+".json")

		dict, err := loadDictionary(s.fsys, base)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrLexiconNotFound, base)
			}
			return nil, err
		}

		if includeLoanwords {
			if err := s.mergeLoanwords(dict, scheme); err != nil {
				return nil, err
			}
		}

		lex[scheme] = dict
	}

	return lex, nil
}

// mergeLoanwords folds every auxiliary loanword file of the scheme
// directory into dict, in filename order.
func (s *Store) mergeLoanwords(dict Dictionary, scheme string) error {
	pattern := path.Join(s.dir, scheme, LoanwordPrefix+"*.json")
	matches, err := fs.Glob(s.fsys, pattern)
	if err != nil {
		return fmt.Errorf("scan loanword files: %w", err)
	}

	for _, match := range matches {
		loan, err := loadDictionary(s.fsys, match)
		if err != nil {
			return err
		}
		dict.Merge(loan)
	}
	return nil
}
