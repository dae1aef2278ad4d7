// Package hakka converts written Hakka text into phonetic
// transcriptions (IPA or Pinyin-style romanization).
//
// The pipeline is strictly linear and synchronous: raw text is
// normalized, segmented into lexicon-recognized words, and each word
// is mapped to its canonical pronunciation, with a configurable
// placeholder policy for out-of-vocabulary words. All state (lexicons,
// variant table, segmenters) lives on a Processor owned by the caller;
// caches fill lazily, once per key, and persist until cleared.
package hakka

import (
	"errors"
	"fmt"
	"strings"
)

// Group identifies a Hakka dialect group. The set is closed.
type Group string

const (
	// GroupSixian is Sixian (四縣).
	GroupSixian Group = "hak_sx"
	// GroupNorthSixian is Northern Sixian (北四縣).
	GroupNorthSixian Group = "hak_nsx"
	// GroupHailu is Hailu (海陸).
	GroupHailu Group = "hak_hl"
	// GroupDapu is Dapu (大埔).
	GroupDapu Group = "hak_dp"
	// GroupRaoping is Raoping (饒平).
	GroupRaoping Group = "hak_rp"
	// GroupZhaoan is Zhao'an (詔安).
	GroupZhaoan Group = "hak_za"
)

// Groups returns the closed set of supported dialect groups.
func Groups() []Group {
	return []Group{
		GroupSixian,
		GroupNorthSixian,
		GroupHailu,
		GroupDapu,
		GroupRaoping,
		GroupZhaoan,
	}
}

// Valid reports whether g is one of the supported groups.
func (g Group) Valid() bool {
	switch g {
	case GroupSixian, GroupNorthSixian, GroupHailu, GroupDapu, GroupRaoping, GroupZhaoan:
		return true
	}
	return false
}

func (g Group) String() string { return string(g) }

// Scheme selects which pronunciation sub-table to query.
type Scheme string

const (
	// SchemeIPA selects the phonetic-alphabet transcriptions.
	SchemeIPA Scheme = "ipa"
	// SchemePinyin selects the romanized-syllabary transcriptions.
	SchemePinyin Scheme = "pinyin"
)

// Schemes returns the supported pronunciation schemes.
func Schemes() []Scheme {
	return []Scheme{SchemeIPA, SchemePinyin}
}

func (s Scheme) String() string { return string(s) }

// ErrUnsupportedGroup is returned for a dialect group outside the
// closed set.
var ErrUnsupportedGroup = errors.New("unsupported dialect group")

func unsupportedGroup(g Group) error {
	names := make([]string, 0, len(Groups()))
	for _, g := range Groups() {
		names = append(names, string(g))
	}
	return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedGroup, g, strings.Join(names, ", "))
}
