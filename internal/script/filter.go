// Package script evaluates sandboxed Lua predicates over catalog words.
//
// A predicate sees two globals per word: word (string) and rank (number).
// Bare expressions are wrapped in a return, so both of these work:
//
//	seshat words --where '#word > 5'
//	seshat words --where 'return rank < 100 and word:find("a") ~= nil'
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Predicate is a compiled-once Lua expression applied per word.
type Predicate struct {
	code string
}

// NewPredicate prepares code as a predicate, wrapping expressions without an
// explicit return. It rejects scripts the static cost estimate deems too
// expensive to run at all.
func NewPredicate(code string) (*Predicate, error) {
	if instructionLimitWouldTrip(code, defaultInstructionLimit) {
		return nil, fmt.Errorf("where: %v", errSandboxInstruction)
	}
	if !containsReturn(code) {
		code = "return (" + code + ")"
	}
	return &Predicate{code: code}, nil
}

// Keep reports whether the word at the given rank passes the predicate.
// Each evaluation runs in a fresh sandboxed state with a hard timeout.
func (p *Predicate) Keep(word string, rank int) (bool, error) {
	L := newSandboxState()
	defer L.Close()

	ctx, cancel := contextWithDefaultTimeout()
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("word", lua.LString(word))
	L.SetGlobal("rank", lua.LNumber(rank))

	fn, err := L.LoadString(p.code)
	if err != nil {
		return false, fmt.Errorf("where: %v", err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeoutError(err) {
			return false, fmt.Errorf("where: %v", errSandboxTimeout)
		}
		return false, fmt.Errorf("where: %v", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// FilterWords keeps the words passing the predicate. Ranks passed to the
// predicate start at startRank and follow the slice order.
func FilterWords(words []string, startRank int, code string) ([]string, error) {
	pred, err := NewPredicate(code)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(words))
	for i, w := range words {
		keep, err := pred.Keep(w, startRank+i)
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, w)
		}
	}
	return kept, nil
}
