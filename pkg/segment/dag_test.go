package segment

import (
	"reflect"
	"testing"
)

func newSeededEngine(words ...string) Engine {
	e := NewEngine()
	for _, w := range words {
		e.AddWord(w, WordWeight(w))
	}
	return e
}

func TestCutPrefersLongestMatch(t *testing.T) {
	e := newSeededEngine("客", "客話", "話")

	got, err := e.Cut("客話")
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if want := []string{"客話"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cut = %v, want %v", got, want)
	}
}

func TestCutWeightedAmbiguousSplit(t *testing.T) {
	// "比賽" outweighs the single-character entries around it.
	e := newSeededEngine("比", "賽", "比賽", "參加")

	got, err := e.Cut("參加比賽")
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if want := []string{"參加", "比賽"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cut = %v, want %v", got, want)
	}
}

func TestCutUnknownCJKFallsBackToSingleRunes(t *testing.T) {
	e := newSeededEngine("世界")

	got, err := e.Cut("你好世界")
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if want := []string{"你", "好", "世界"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cut = %v, want %v", got, want)
	}
}

func TestCutCoalescesASCIIRuns(t *testing.T) {
	e := newSeededEngine("卡拉")

	got, err := e.Cut("卡拉OK")
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if want := []string{"卡拉", "OK"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cut = %v, want %v", got, want)
	}

	// Whitespace interrupts an ASCII run.
	got, err = e.Cut("卡拉 OK 123")
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if want := []string{"卡拉", " ", "OK", " ", "123"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cut = %v, want %v", got, want)
	}
}

func TestCutDeterministic(t *testing.T) {
	e := newSeededEngine("南京", "南京市", "市長", "長江", "大橋", "江大橋")

	text := "南京市長江大橋"
	first, err := e.Cut(text)
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := e.Cut(text)
		if err != nil {
			t.Fatalf("Cut: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestCutEmptyInput(t *testing.T) {
	e := newSeededEngine("你好")

	got, err := e.Cut("")
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Cut(\"\") = %v, want no tokens", got)
	}
}

func TestAddWordReplacesWeight(t *testing.T) {
	e := NewEngine()
	e.AddWord("你好", 1)
	e.AddWord("你好", WordWeight("你好"))

	got, err := e.Cut("你好")
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if want := []string{"你好"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Cut = %v, want %v", got, want)
	}
}

func TestWordWeightScalesWithRuneLength(t *testing.T) {
	if got, want := WordWeight("你好"), 2*wordWeightScale; got != want {
		t.Errorf("WordWeight(你好) = %d, want %d", got, want)
	}
	if got, want := WordWeight("a"), wordWeightScale; got != want {
		t.Errorf("WordWeight(a) = %d, want %d", got, want)
	}
}
