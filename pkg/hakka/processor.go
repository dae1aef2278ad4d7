package hakka

import (
	"io/fs"
	"strings"

	"github.com/hungshinlee/formospeech-g2p/pkg/phono"
	"github.com/hungshinlee/formospeech-g2p/pkg/segment"
	"github.com/hungshinlee/formospeech-g2p/pkg/textnorm"
)

// Data layout inside the FS handed to New.
const (
	lexiconDir     = "lexicon"
	variantMapPath = "share/variant_map.json"
)

// Processor is the configuration-scoped G2P service. It owns the
// lexicon store, the variant-character table and the per-group
// segmenter registry. Every cache fills lazily, at most once per key,
// and persists until explicitly cleared.
type Processor struct {
	store      *phono.Store
	norm       *textnorm.Normalizer
	segmenters *segment.Registry
}

// Option configures a Processor.
type Option func(*config)

type config struct {
	engineFactory func() segment.Engine
}

// WithEngineFactory substitutes the segmentation engine used for every
// dialect group. The default is the built-in weighted maximum-matching
// engine; segment.NewSegoEngine is a drop-in alternative.
func WithEngineFactory(factory func() segment.Engine) Option {
	return func(c *config) { c.engineFactory = factory }
}

// New returns a Processor reading its data files from dataFS, expected
// to contain lexicon/<scheme>/<group>.json dictionaries and the
// optional share/variant_map.json table.
func New(dataFS fs.FS, opts ...Option) *Processor {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	schemes := make([]string, 0, len(Schemes()))
	for _, s := range Schemes() {
		schemes = append(schemes, string(s))
	}

	return &Processor{
		store:      phono.NewStore(dataFS, lexiconDir, schemes),
		norm:       textnorm.NewNormalizer(dataFS, variantMapPath),
		segmenters: segment.NewRegistry(cfg.engineFactory),
	}
}

// Normalize runs the text cleanup pipeline (case and width folding,
// character-class strip, whitespace collapse, optional variant-map
// substitution). Empty output means "no work to do".
func (p *Processor) Normalize(text string, useVariantMap bool) string {
	return p.norm.Normalize(text, useVariantMap)
}

// ApplyVariantMap substitutes orthographic variant characters with
// their canonical forms.
func (p *Processor) ApplyVariantMap(text string) string {
	return p.norm.ApplyVariantMap(text)
}

// InitSegmenter builds the segmenter for group, seeding it with every
// headword of the scheme's lexicon, weighted by word length so longer
// dictionary entries win ambiguous splits. It is a no-op when the
// group is already initialized.
func (p *Processor) InitSegmenter(group Group, scheme Scheme, includeLoanwords bool) error {
	if !group.Valid() {
		return unsupportedGroup(group)
	}
	if p.segmenters.Initialized(string(group)) {
		return nil
	}

	lex, err := p.store.Get(string(group), includeLoanwords)
	if err != nil {
		return err
	}

	p.segmenters.Init(string(group), lex[string(scheme)].Words())
	return nil
}

// InitAllSegmenters warms the segmenter of every dialect group.
func (p *Processor) InitAllSegmenters(scheme Scheme, includeLoanwords bool) error {
	for _, group := range Groups() {
		if err := p.InitSegmenter(group, scheme, includeLoanwords); err != nil {
			return err
		}
	}
	return nil
}

// ClearSegmenterCache invalidates every cached segmenter.
func (p *Processor) ClearSegmenterCache() {
	p.segmenters.Clear()
}

// CachedSegmenters lists the groups with an initialized segmenter.
func (p *Processor) CachedSegmenters() []Group {
	keys := p.segmenters.Keys()
	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group(k))
	}
	return groups
}

// Segment cuts text into words using the group's segmenter, dropping
// empty and whitespace-only tokens. With returnOOV, it also reports
// the words absent from the scheme's lexicon, in order; canonical
// punctuation marks are never out-of-vocabulary.
//
// The group's segmenter must have been initialized first; segmenting
// never auto-initializes.
func (p *Processor) Segment(text string, group Group, scheme Scheme, returnOOV bool) (words, oovs []string, err error) {
	cut, err := p.segmenters.Cut(string(group), text)
	if err != nil {
		return nil, nil, err
	}

	words = make([]string, 0, len(cut))
	for _, w := range cut {
		if strings.TrimSpace(w) == "" {
			continue
		}
		words = append(words, w)
	}

	if !returnOOV {
		return words, nil, nil
	}

	lex, err := p.store.Get(string(group), false)
	if err != nil {
		return nil, nil, err
	}
	dict := lex[string(scheme)]

	for _, w := range words {
		if textnorm.IsMarker(w) {
			continue
		}
		if !dict.Contains(w) {
			oovs = append(oovs, w)
		}
	}

	return words, oovs, nil
}

// GetPronunciation returns the pronunciation variants of word in the
// scheme's lexicon, first entry canonical, or nil when the word is
// unknown.
func (p *Processor) GetPronunciation(word string, group Group, scheme Scheme) ([]string, error) {
	if !group.Valid() {
		return nil, unsupportedGroup(group)
	}

	lex, err := p.store.Get(string(group), false)
	if err != nil {
		return nil, err
	}
	return lex[string(scheme)].Lookup(word), nil
}

// SegmentWithPronunciation cuts text and annotates every word with its
// IPA pronunciation variants, leaving unknown words marked as such.
func (p *Processor) SegmentWithPronunciation(text string, group Group) ([]WordPronunciation, error) {
	words, _, err := p.Segment(text, group, SchemeIPA, true)
	if err != nil {
		return nil, err
	}

	details := make([]WordPronunciation, 0, len(words))
	for _, w := range words {
		prons, err := p.GetPronunciation(w, group, SchemeIPA)
		if err != nil {
			return nil, err
		}
		d := WordPronunciation{Word: w}
		if len(prons) > 0 {
			d.Pronunciation = prons[0]
			d.Known = true
		}
		details = append(details, d)
	}
	return details, nil
}

// TextToPronunciation cuts text and joins the first pronunciation of
// every word with separator, substituting unknownMarker for words
// absent from the IPA lexicon.
func (p *Processor) TextToPronunciation(text string, group Group, separator, unknownMarker string) (string, error) {
	words, _, err := p.Segment(text, group, SchemeIPA, false)
	if err != nil {
		return "", err
	}

	prons := make([]string, 0, len(words))
	for _, w := range words {
		variants, err := p.GetPronunciation(w, group, SchemeIPA)
		if err != nil {
			return "", err
		}
		if len(variants) > 0 {
			prons = append(prons, variants[0])
		} else {
			prons = append(prons, unknownMarker)
		}
	}

	return strings.Join(prons, separator), nil
}
