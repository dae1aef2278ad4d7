package phono

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeReader wraps r so that UTF-8 and UTF-16 sources (with or
// without a byte order mark) all decode to plain UTF-8. Lexicon files
// exported from spreadsheet tools frequently carry a BOM.
func decodeReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// loadDictionary reads one JSON lexicon file from fsys.
func loadDictionary(fsys fs.FS, path string) (Dictionary, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dict Dictionary
	if err := json.NewDecoder(decodeReader(f)).Decode(&dict); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if dict == nil {
		dict = Dictionary{}
	}
	return dict, nil
}
