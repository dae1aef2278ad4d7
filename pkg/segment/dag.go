package segment

import "math"

// dagEngine is the default segmentation engine: dictionary-weighted
// maximum matching over rune positions, scored as a max-probability
// path through the word lattice.
//
// For every start position the engine considers all dictionary words
// beginning there, plus the single rune as a last-resort fallback, and
// picks the segmentation maximizing the summed log-weight. Ties are
// broken in favor of the longer candidate, so the engine is fully
// deterministic for a given dictionary state. There is no statistical
// smoothing of any kind.
type dagEngine struct {
	freqs  map[string]int
	total  int
	maxLen int
}

// NewEngine returns an empty default engine.
func NewEngine() Engine {
	return &dagEngine{freqs: make(map[string]int)}
}

func (e *dagEngine) AddWord(word string, freq int) {
	if word == "" || freq <= 0 {
		return
	}
	if old, ok := e.freqs[word]; ok {
		e.total -= old
	}
	e.freqs[word] = freq
	e.total += freq
	if l := len([]rune(word)); l > e.maxLen {
		e.maxLen = l
	}
}

func (e *dagEngine) Cut(text string) ([]string, error) {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil, nil
	}

	logTotal := math.Log(float64(e.total) + 1)

	// best[i] scores the best segmentation of runes[i:];
	// choice[i] is the rune length of its first word.
	best := make([]float64, n+1)
	choice := make([]int, n+1)

	for i := n - 1; i >= 0; i-- {
		best[i] = math.Inf(-1)

		lmax := e.maxLen
		if lmax < 1 {
			lmax = 1
		}
		if lmax > n-i {
			lmax = n - i
		}

		// Longest candidates first: a shorter split must score
		// strictly better to displace a longer match.
		for l := lmax; l >= 1; l-- {
			freq, known := e.freqs[string(runes[i:i+l])]
			if !known {
				if l > 1 {
					continue
				}
				// Unknown single rune, minimal weight.
				freq = 1
			}

			score := math.Log(float64(freq)) - logTotal + best[i+l]
			if score > best[i] {
				best[i] = score
				choice[i] = l
			}
		}
	}

	return e.emit(runes, choice), nil
}

// emit walks the chosen lattice path and materializes tokens,
// coalescing runs of single ASCII letters or digits that fell through
// the dictionary into one token ("O" "K" becomes "OK").
func (e *dagEngine) emit(runes []rune, choice []int) []string {
	tokens := make([]string, 0, len(runes)/2+1)
	var ascii []rune

	flush := func() {
		if len(ascii) > 0 {
			tokens = append(tokens, string(ascii))
			ascii = nil
		}
	}

	for i := 0; i < len(runes); {
		l := choice[i]
		if l < 1 {
			l = 1
		}
		if l == 1 && isASCIIAlnum(runes[i]) {
			ascii = append(ascii, runes[i])
			i++
			continue
		}
		flush()
		tokens = append(tokens, string(runes[i:i+l]))
		i += l
	}
	flush()

	return tokens
}

func isASCIIAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
