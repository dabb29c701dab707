package rules

import (
	"errors"
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// AdjustFn is the global function a rule script must define.
const AdjustFn = "adjust_split"

// Errors returned by rule operations.
var (
	// ErrRuleClosed is returned when a closed rule is invoked.
	ErrRuleClosed = errors.New("split rule is closed")

	// ErrNoAdjustFn indicates the script does not define adjust_split.
	ErrNoAdjustFn = errors.New("script does not define adjust_split")

	// ErrBadResult indicates adjust_split returned a non-numeric value.
	ErrBadResult = errors.New("adjust_split returned a non-numeric value")
)

// LuaRule runs a Lua adjust_split function as a paginate.SplitRule.
type LuaRule struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewLuaRule compiles and runs a rule script from source.
// The script runs in a restricted state: only the base, table, string,
// and math libraries are available.
func NewLuaRule(source string) (*LuaRule, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("opening lua lib %s: %w", lib.name, err)
		}
	}

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading rule script: %w", err)
	}

	if L.GetGlobal(AdjustFn).Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoAdjustFn
	}

	return &LuaRule{state: L}, nil
}

// LoadLuaRule reads and compiles a rule script from a file.
func LoadLuaRule(path string) (*LuaRule, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule script %s: %w", path, err)
	}
	return NewLuaRule(string(src))
}

// AdjustSplit calls the script with the suffix and proposed offset and
// returns the adjusted offset. Implements paginate.SplitRule.
func (r *LuaRule) AdjustSplit(suffix string, offset int) (adjusted int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrRuleClosed
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("rule script panic: %v", rec)
		}
	}()

	L := r.state
	if err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal(AdjustFn),
		NRet:    1,
		Protect: true,
	}, lua.LString(suffix), lua.LNumber(offset)); err != nil {
		return 0, fmt.Errorf("calling %s: %w", AdjustFn, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, ErrBadResult
	}
	return int(n), nil
}

// Close releases the Lua state. Safe to call more than once.
func (r *LuaRule) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.state.Close()
}
