package hakka

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// mandarinReading derives a Mandarin pinyin reading (tone numbers
// appended) for a token. It returns "" unless every rune of the token
// has a reading, so partial or non-CJK tokens are never half-filled.
func mandarinReading(word string) string {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3

	readings := pinyin.LazyPinyin(word, args)
	if len(readings) == 0 || len(readings) != len([]rune(word)) {
		return ""
	}
	return strings.Join(readings, " ")
}
