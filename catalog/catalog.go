// Package catalog answers read-only rank queries over a fixed list of the
// most common English words.
//
// A Catalog is built once and never mutated, so any number of goroutines may
// query it without locking. Every query is a pure function of its arguments:
// absent results (unknown word, rank past the end, invalid span) come back as
// a comma-ok false, never as an error or a panic.
package catalog

import (
	"slices"
	"sync"

	"github.com/flarebyte/seshat-lexis/wordlist"
)

// Text is any string-shaped type a query can materialize words into.
type Text interface{ ~string }

// Catalog is an immutable rank-ordered word list. Rank 0 is the most
// frequent word.
type Catalog struct {
	words []string
}

// New builds a catalog over the given rank-ordered words. The input is
// copied, so later changes to it do not reach the catalog.
func New(words []string) *Catalog {
	return &Catalog{words: slices.Clone(words)}
}

var (
	topOnce sync.Once
	top     *Catalog
)

// Top returns the process-wide catalog over the embedded top English words
// list. It is built on first use and shared afterwards.
func Top() *Catalog {
	topOnce.Do(func() {
		top = &Catalog{words: wordlist.Words()}
	})
	return top
}

// Len reports the number of words in the catalog.
func (c *Catalog) Len() int { return len(c.words) }

// Rank reports the 0-based frequency rank of word, matched exactly and
// case-sensitively. The scan is linear; the catalog is small and fixed.
func (c *Catalog) Rank(word string) (int, bool) {
	for i, w := range c.words {
		if w == word {
			return i, true
		}
	}
	return 0, false
}

// All returns every word in rank order.
func All[T Text](c *Catalog) []T {
	return materialize[T](c.words)
}

// AllAlphabetical returns every word sorted in byte order.
func AllAlphabetical[T Text](c *Catalog) []T {
	out := materialize[T](c.words)
	slices.Sort(out)
	return out
}

// Range returns the words whose rank falls within span, in rank order.
// The second return is false when the span is invalid for this catalog.
func Range[T Text](c *Catalog, span Span) ([]T, bool) {
	lo, hi, ok := span.Bounds(len(c.words))
	if !ok {
		return nil, false
	}
	return materialize[T](c.words[lo : hi+1]), true
}

// RangeAlphabetical returns the words whose rank falls within span, sorted
// in byte order. Invalid spans behave exactly as in Range.
func RangeAlphabetical[T Text](c *Catalog, span Span) ([]T, bool) {
	out, ok := Range[T](c, span)
	if !ok {
		return nil, false
	}
	slices.Sort(out)
	return out, true
}

// Word returns the word at the given rank, or false when rank is out of
// bounds.
func Word[T Text](c *Catalog, rank int) (T, bool) {
	if rank < 0 || rank >= len(c.words) {
		var zero T
		return zero, false
	}
	return T(c.words[rank]), true
}

func materialize[T Text](words []string) []T {
	out := make([]T, 0, len(words))
	for _, w := range words {
		out = append(out, T(w))
	}
	return out
}
