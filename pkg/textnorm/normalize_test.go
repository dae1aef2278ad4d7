package textnorm

import (
	"testing"
	"testing/fstest"
)

func newTestNormalizer(files fstest.MapFS) *Normalizer {
	if files == nil {
		files = fstest.MapFS{}
	}
	return NewNormalizer(files, "share/variant_map.json")
}

func TestNormalizeFoldsHalfWidthMarkers(t *testing.T) {
	n := newTestNormalizer(nil)

	cases := []struct {
		in   string
		want string
	}{
		{"你好,世界!", "你好，世界！"},
		{"食飽吂?", "食飽吂？"},
		{"恁仔細.", "恁仔細。"},
		{"來尞!", "來尞！"},
	}

	for _, c := range cases {
		if got := n.Normalize(c.in, true); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newTestNormalizer(nil)

	inputs := []string{
		"",
		"   ",
		"你好,世界!",
		"ＡＢＣ ａｂｃ １２３",
		"  雲林縣 \t 崙背鄉  ",
		"卡拉 OK 比賽，蓋鬧熱。",
		"３.１４",
	}

	for _, in := range inputs {
		once := n.Normalize(in, true)
		twice := n.Normalize(once, true)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeStripsForeignCharacters(t *testing.T) {
	n := newTestNormalizer(nil)

	// Semicolons and symbols outside the kept classes vanish; CJK
	// ideographs and ASCII alphanumerics survive.
	got := n.Normalize("你好;世界@#$ abc123", true)
	want := "你好世界 ABC123"
	if got != want {
		t.Errorf("Normalize strip = %q, want %q", got, want)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	n := newTestNormalizer(nil)

	got := n.Normalize("  你好 \t\t 世界  \n 再見 ", true)
	want := "你好 世界 再見"
	if got != want {
		t.Errorf("Normalize whitespace = %q, want %q", got, want)
	}
}

func TestNormalizeUppercasesASCII(t *testing.T) {
	n := newTestNormalizer(nil)

	if got, want := n.Normalize("ok ｋａｒａｏｋｅ", true), "OK KARAOKE"; got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeEmptyResult(t *testing.T) {
	n := newTestNormalizer(nil)

	for _, in := range []string{"", "   ", "\t\n", "@#$%^&*"} {
		if got := n.Normalize(in, true); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", in, got)
		}
	}
}

func TestNormalizeAppliesVariantMap(t *testing.T) {
	files := fstest.MapFS{
		"share/variant_map.json": &fstest.MapFile{
			Data: []byte(`{"着": "著"}`),
		},
	}
	n := newTestNormalizer(files)

	if got, want := n.Normalize("受着限制", true), "受著限制"; got != want {
		t.Errorf("Normalize with variant map = %q, want %q", got, want)
	}

	// Disabled variant map leaves the original character in place.
	if got, want := n.Normalize("受着限制", false), "受着限制"; got != want {
		t.Errorf("Normalize without variant map = %q, want %q", got, want)
	}
}

func TestIsMarker(t *testing.T) {
	for _, m := range Markers() {
		if !IsMarker(m) {
			t.Errorf("IsMarker(%q) = false, want true", m)
		}
	}
	for _, s := range []string{",", ".", "、", "你", ""} {
		if IsMarker(s) {
			t.Errorf("IsMarker(%q) = true, want false", s)
		}
	}
}
