package hakka

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestInitSegmenterUnsupportedGroup(t *testing.T) {
	p := New(testDataFS())

	err := p.InitSegmenter(Group("hak_xx"), SchemeIPA, false)
	if !errors.Is(err, ErrUnsupportedGroup) {
		t.Fatalf("InitSegmenter error = %v, want ErrUnsupportedGroup", err)
	}
	// The error lists the supported set.
	for _, g := range Groups() {
		if !strings.Contains(err.Error(), string(g)) {
			t.Errorf("error %q does not list %q", err, g)
		}
	}
}

func TestInitSegmenterIdempotent(t *testing.T) {
	p := newTestProcessor(t)

	// A second init for the same group is a no-op, not a rebuild.
	if err := p.InitSegmenter(GroupSixian, SchemeIPA, false); err != nil {
		t.Fatalf("second InitSegmenter: %v", err)
	}
	if got, want := p.CachedSegmenters(), []Group{GroupSixian}; !reflect.DeepEqual(got, want) {
		t.Errorf("CachedSegmenters = %v, want %v", got, want)
	}
}

func TestClearSegmenterCache(t *testing.T) {
	p := newTestProcessor(t)

	p.ClearSegmenterCache()

	if got := p.CachedSegmenters(); len(got) != 0 {
		t.Errorf("CachedSegmenters after clear = %v, want none", got)
	}
	if _, _, err := p.Segment("你好", GroupSixian, SchemeIPA, false); err == nil {
		t.Error("Segment after clear succeeded, want not-initialized error")
	}
}

func TestSegmentReturnsOOVs(t *testing.T) {
	p := newTestProcessor(t)

	words, oovs, err := p.Segment("你好嗚，世界", GroupSixian, SchemeIPA, true)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if want := []string{"你好", "嗚", "，", "世界"}; !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
	if want := []string{"嗚"}; !reflect.DeepEqual(oovs, want) {
		t.Errorf("oovs = %v, want %v", oovs, want)
	}
}

func TestSegmentDropsWhitespaceTokens(t *testing.T) {
	p := newTestProcessor(t)

	words, _, err := p.Segment("你好 世界", GroupSixian, SchemeIPA, false)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if want := []string{"你好", "世界"}; !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestGetPronunciation(t *testing.T) {
	p := newTestProcessor(t)

	prons, err := p.GetPronunciation("你好", GroupSixian, SchemeIPA)
	if err != nil {
		t.Fatalf("GetPronunciation: %v", err)
	}
	if want := []string{"ni2 hau5"}; !reflect.DeepEqual(prons, want) {
		t.Errorf("prons = %v, want %v", prons, want)
	}

	prons, err = p.GetPronunciation("無沒", GroupSixian, SchemeIPA)
	if err != nil {
		t.Fatalf("GetPronunciation: %v", err)
	}
	if prons != nil {
		t.Errorf("prons for unknown word = %v, want nil", prons)
	}

	if _, err := p.GetPronunciation("你好", Group("nope"), SchemeIPA); !errors.Is(err, ErrUnsupportedGroup) {
		t.Errorf("error = %v, want ErrUnsupportedGroup", err)
	}
}

func TestSegmentWithPronunciation(t *testing.T) {
	p := newTestProcessor(t)

	details, err := p.SegmentWithPronunciation("你好嗚世界", GroupSixian)
	if err != nil {
		t.Fatalf("SegmentWithPronunciation: %v", err)
	}

	want := []WordPronunciation{
		{Word: "你好", Pronunciation: "ni2 hau5", Known: true},
		{Word: "嗚"},
		{Word: "世界", Pronunciation: "se3 gie3", Known: true},
	}
	if !reflect.DeepEqual(details, want) {
		t.Errorf("details = %+v, want %+v", details, want)
	}
}

func TestTextToPronunciation(t *testing.T) {
	p := newTestProcessor(t)

	got, err := p.TextToPronunciation("你好嗚世界", GroupSixian, " | ", "?")
	if err != nil {
		t.Fatalf("TextToPronunciation: %v", err)
	}
	if want := "ni2 hau5 | ? | se3 gie3"; got != want {
		t.Errorf("TextToPronunciation = %q, want %q", got, want)
	}
}

func TestGroupsAndSchemes(t *testing.T) {
	if got, want := len(Groups()), 6; got != want {
		t.Errorf("len(Groups()) = %d, want %d", got, want)
	}
	for _, g := range Groups() {
		if !g.Valid() {
			t.Errorf("Group %q reported invalid", g)
		}
	}
	if Group("hak_xx").Valid() {
		t.Error("invalid group reported valid")
	}
	if got, want := len(Schemes()), 2; got != want {
		t.Errorf("len(Schemes()) = %d, want %d", got, want)
	}
}
