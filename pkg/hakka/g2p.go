package hakka

import "github.com/hungshinlee/formospeech-g2p/pkg/textnorm"

type g2pConfig struct {
	scheme           Scheme
	unknownToken     string
	hasUnknownToken  bool
	keepUnknown      bool
	useVariantMap    bool
	includeLoanwords bool
	mandarinFallback bool
}

// G2POption adjusts one G2P run.
type G2POption func(*g2pConfig)

// WithScheme selects the pronunciation scheme (default SchemeIPA).
func WithScheme(s Scheme) G2POption {
	return func(c *g2pConfig) { c.scheme = s }
}

// WithUnknownToken emits token in place of every unknown word instead
// of the raw word itself.
func WithUnknownToken(token string) G2POption {
	return func(c *g2pConfig) {
		c.unknownToken = token
		c.hasUnknownToken = true
	}
}

// WithoutUnknown drops unknown words from the pronunciation sequence
// entirely; they still appear in UnknownWords and Details.
func WithoutUnknown() G2POption {
	return func(c *g2pConfig) { c.keepUnknown = false }
}

// WithoutVariantMap skips the variant-character substitution during
// normalization.
func WithoutVariantMap() G2POption {
	return func(c *g2pConfig) { c.useVariantMap = false }
}

// WithLoanwords merges the auxiliary loanword dictionaries into the
// lexicon. Only effective on the call that first loads the group's
// lexicon; see phono.Store.Get.
func WithLoanwords() G2POption {
	return func(c *g2pConfig) { c.includeLoanwords = true }
}

// WithMandarinFallback fills unknown all-CJK words with a Mandarin
// pinyin reading when no unknown token is set. Off by default.
func WithMandarinFallback() G2POption {
	return func(c *g2pConfig) { c.mandarinFallback = true }
}

// G2P converts text into a pronunciation sequence.
//
// The text is normalized first; input that normalizes to nothing
// yields an empty Result. The normalized text is then segmented with
// OOV detection, and each word is resolved against the scheme's
// lexicon: canonical punctuation marks pass through verbatim, known
// words emit their first listed pronunciation, and unknown words
// follow the configured placeholder policy.
//
// The group's segmenter must have been initialized with InitSegmenter
// (or InitAllSegmenters) first.
func (p *Processor) G2P(text string, group Group, opts ...G2POption) (Result, error) {
	cfg := g2pConfig{
		scheme:        SchemeIPA,
		keepUnknown:   true,
		useVariantMap: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	normalized := p.Normalize(text, cfg.useVariantMap)
	if normalized == "" {
		return Result{}, nil
	}

	words, oovs, err := p.Segment(normalized, group, cfg.scheme, true)
	if err != nil {
		return Result{}, err
	}

	lex, err := p.store.Get(string(group), cfg.includeLoanwords)
	if err != nil {
		return Result{}, err
	}
	dict := lex[string(cfg.scheme)]

	result := Result{
		Pronunciations: make([]string, 0, len(words)),
		UnknownWords:   oovs,
		Details:        make([]WordPronunciation, 0, len(words)),
	}

	for _, word := range words {
		if textnorm.IsMarker(word) {
			result.Pronunciations = append(result.Pronunciations, word)
			result.Details = append(result.Details, WordPronunciation{
				Word:          word,
				Pronunciation: word,
				Known:         true,
			})
			continue
		}

		if prons := dict.Lookup(word); len(prons) > 0 {
			result.Pronunciations = append(result.Pronunciations, prons[0])
			result.Details = append(result.Details, WordPronunciation{
				Word:          word,
				Pronunciation: prons[0],
				Known:         true,
			})
			continue
		}

		result.Details = append(result.Details, WordPronunciation{Word: word})

		if !cfg.keepUnknown {
			continue
		}
		result.Pronunciations = append(result.Pronunciations, p.unknownFiller(word, cfg))
	}

	return result, nil
}

// unknownFiller picks the placeholder emitted for an unknown word when
// unknown words are kept: the configured token when one is set, then
// the optional Mandarin pinyin reading, then the raw word itself.
func (p *Processor) unknownFiller(word string, cfg g2pConfig) string {
	if cfg.hasUnknownToken {
		return cfg.unknownToken
	}
	if cfg.mandarinFallback {
		if reading := mandarinReading(word); reading != "" {
			return reading
		}
	}
	return word
}
