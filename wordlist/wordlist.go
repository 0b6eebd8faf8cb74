// Package wordlist supplies the embedded top English words data set.
//
// The list is rank ordered: line 0 of words.txt is the most frequent word.
// It is parsed once and never modified afterwards.
package wordlist

import (
	_ "embed"
	"strings"
	"sync"
)

// Count is the fixed size of the embedded list.
const Count = 1000

//go:embed words.txt
var raw string

var (
	once  sync.Once
	words []string
)

// Words returns the rank-ordered word list. The returned slice is shared;
// callers must not modify it.
func Words() []string {
	once.Do(func() {
		words = strings.Split(strings.TrimRight(raw, "\n"), "\n")
	})
	return words
}
