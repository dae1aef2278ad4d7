package textnorm

import "strings"

// markers is the closed set of canonical full-width punctuation marks
// that survive normalization and pass through segmentation untouched.
var markers = map[string]struct{}{
	"，": {},
	"。": {},
	"？": {},
	"！": {},
}

// markerHalfToFull folds the half-width forms of the canonical marks
// into their full-width counterparts. Applied after NFKC, which maps
// full-width ASCII punctuation back to half-width.
var markerHalfToFull = strings.NewReplacer(
	",", "，",
	"?", "？",
	"!", "！",
	".", "。",
)

// IsMarker reports whether the token is one of the canonical
// punctuation marks. Marker tokens are never out-of-vocabulary.
func IsMarker(token string) bool {
	_, ok := markers[token]
	return ok
}

// Markers returns the canonical punctuation set in a stable order.
func Markers() []string {
	return []string{"，", "。", "？", "！"}
}
