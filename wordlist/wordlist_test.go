package wordlist

import (
	"strings"
	"testing"
)

func TestWordsCount(t *testing.T) {
	if got := len(Words()); got != Count {
		t.Fatalf("len(Words()) = %d, want %d", got, Count)
	}
}

func TestWordsUniqueAndClean(t *testing.T) {
	seen := make(map[string]int, Count)
	for i, w := range Words() {
		if w == "" {
			t.Fatalf("blank word at rank %d", i)
		}
		if strings.TrimSpace(w) != w {
			t.Fatalf("word %q at rank %d has surrounding whitespace", w, i)
		}
		if w != strings.ToLower(w) {
			t.Fatalf("word %q at rank %d is not lowercase", w, i)
		}
		if prev, dup := seen[w]; dup {
			t.Fatalf("word %q appears at ranks %d and %d", w, prev, i)
		}
		seen[w] = i
	}
}

func TestMostFrequentWord(t *testing.T) {
	if got := Words()[0]; got != "the" {
		t.Fatalf("rank 0 word = %q, want %q", got, "the")
	}
}

func TestWordsStable(t *testing.T) {
	a := Words()
	b := Words()
	if len(a) != len(b) {
		t.Fatalf("length drift: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("rank %d drift: %q vs %q", i, a[i], b[i])
		}
	}
}
