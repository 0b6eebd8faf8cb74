package script

import (
	"context"
	"errors"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const (
	defaultTimeout          = 250 * time.Millisecond
	defaultInstructionLimit = 100000
)

var (
	errSandboxTimeout     = errors.New("sandbox timeout")
	errSandboxInstruction = errors.New("sandbox instruction limit")
)

// newSandboxState builds a Lua state with only the safe libraries opened.
// No io, os or package access is available to predicates.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  4096,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}

// instructionLimitWouldTrip is a static cost estimate that rejects scripts
// likely to exceed the instruction budget before running them.
func instructionLimitWouldTrip(code string, limit int) bool {
	if limit <= 0 {
		return false
	}
	cost := len(code) * 10
	lower := strings.ToLower(code)
	if strings.Contains(lower, "while ") || strings.Contains(lower, "repeat") || strings.Contains(lower, "for ") {
		cost += 1000000
	}
	return cost > limit
}

func contextWithDefaultTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), defaultTimeout)
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}

func containsReturn(code string) bool {
	return strings.Contains(code, "return ") || strings.HasPrefix(strings.TrimSpace(code), "return")
}
