package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/snipstorm/internal/config"
	"github.com/dshills/snipstorm/internal/editor"
)

const (
	cursorTypeName = "snipstorm.cursor"
	bufferTypeName = "snipstorm.buffer"
	windowTypeName = "snipstorm.window"
)

// Engine owns one sandboxed Lua state and runs snippet script fragments in
// it. All matching and script execution happen synchronously on the editor's
// event-processing thread; Engine is not safe for concurrent use.
type Engine struct {
	L *lua.LState

	// instructionLimit caps instructions per run. Advisory: gopher-lua does
	// not expose an instruction hook, the field mirrors the configured limit
	// for hosts that want to report it.
	instructionLimit int64

	// base holds the global names present after sandbox installation.
	// Everything outside it is scrubbed between runs.
	base map[string]bool

	closed bool
}

// Call describes one script execution: the definition's preamble, the role
// fragment, and the enumerated variables the fragment may observe.
type Call struct {
	// Host is the editor the script runs against.
	Host editor.Host

	// Preamble is the definition's compiled global preamble, or nil.
	Preamble *Compiled

	// Code is the compiled role fragment.
	Code *Compiled

	// Context seeds snip.context. Nil means no context.
	Context lua.LValue

	// Locals are role-specific extra variables, converted to Lua values and
	// installed both as globals and as snip fields.
	Locals map[string]any
}

// Result is what the engine reads back after a successful run.
type Result struct {
	// Context is the value of snip.context after the run.
	Context lua.LValue

	// Cursor is the cursor handle the script saw as snip.cursor.
	Cursor *Cursor
}

// NewEngine creates a sandboxed engine.
func NewEngine(cfg config.SandboxConfig) (*Engine, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	openSafeLibraries(L)

	e := &Engine{
		L:                L,
		instructionLimit: cfg.InstructionLimit,
	}
	e.installSandbox()
	e.registerTypes()
	e.captureBase()
	return e, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	// io, os, debug and package stay closed: snippet scripts talk to the
	// editor through the injected handles only.
}

// installSandbox removes the escape hatches from the base library.
func (e *Engine) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		e.L.SetGlobal(name, lua.LNil)
	}
}

// registerTypes registers the metatables for the injected handles.
func (e *Engine) registerTypes() {
	L := e.L

	cursorMT := L.NewTypeMetatable(cursorTypeName)
	L.SetField(cursorMT, "__index", L.SetFuncs(L.NewTable(), cursorMethods))

	bufferMT := L.NewTypeMetatable(bufferTypeName)
	L.SetField(bufferMT, "__index", L.NewFunction(bufferIndex))
	L.SetField(bufferMT, "__newindex", L.NewFunction(bufferNewIndex))
	L.SetField(bufferMT, "__len", L.NewFunction(bufferLen))

	windowMT := L.NewTypeMetatable(windowTypeName)
	L.SetField(windowMT, "__index", L.NewFunction(windowIndex))
}

// captureBase records the globals that survive between runs.
func (e *Engine) captureBase() {
	e.base = make(map[string]bool)
	globals := e.L.Get(lua.GlobalsIndex).(*lua.LTable)
	globals.ForEach(func(k, _ lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			e.base[string(ks)] = true
		}
	})
}

// InstructionLimit returns the configured (advisory) instruction limit.
func (e *Engine) InstructionLimit() int64 { return e.instructionLimit }

// Close releases the Lua state.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.L.Close()
	e.closed = true
}

// Exec runs the call's preamble and fragment in one namespace and reads the
// result back. The namespace is fully enumerated per call and scrubbed
// afterwards. Errors are returned raw; the caller attaches Diagnostics.
func (e *Engine) Exec(call *Call) (*Result, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	L := e.L
	host := call.Host
	pos := host.Cursor()
	cur := NewCursor(pos)

	defer e.reset()

	curUD := e.newCursorValue(cur, host)
	bufUD := e.newHandle(bufferTypeName, host)
	winUD := e.newHandle(windowTypeName, host)

	ctx := call.Context
	if ctx == nil {
		ctx = lua.LNil
	}

	snip := L.NewTable()
	snip.RawSetString("context", ctx)
	snip.RawSetString("cursor", curUD)
	snip.RawSetString("buffer", bufUD)
	snip.RawSetString("window", winUD)
	snip.RawSetString("line", lua.LNumber(pos.Line))
	snip.RawSetString("column", lua.LNumber(pos.Col))

	L.SetGlobal("window", winUD)
	L.SetGlobal("buffer", bufUD)
	L.SetGlobal("line", lua.LNumber(pos.Line))
	L.SetGlobal("column", lua.LNumber(pos.Col))
	L.SetGlobal("cursor", curUD)
	L.SetGlobal("snip", snip)
	L.SetGlobal("context", ctx)

	for name, v := range call.Locals {
		lv := toLuaValue(L, v)
		L.SetGlobal(name, lv)
		snip.RawSetString(name, lv)
	}

	if call.Preamble != nil {
		if err := e.runProto(call.Preamble); err != nil {
			return nil, err
		}
	}
	if err := e.runProto(call.Code); err != nil {
		return nil, err
	}

	res := &Result{Cursor: cur, Context: lua.LNil}
	if v := snip.RawGetString("context"); v != nil {
		res.Context = v
	}
	return res, nil
}

// runProto executes one compiled fragment in the current namespace.
func (e *Engine) runProto(c *Compiled) error {
	fn := e.L.NewFunctionFromProto(c.Proto)
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// reset scrubs every global that was not present after sandbox install.
func (e *Engine) reset() {
	globals := e.L.Get(lua.GlobalsIndex).(*lua.LTable)

	var remove []string
	globals.ForEach(func(k, _ lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if !e.base[string(ks)] {
				remove = append(remove, string(ks))
			}
		}
	})
	for _, name := range remove {
		e.L.SetGlobal(name, lua.LNil)
	}
}

// newCursorValue wraps a cursor handle for Lua.
func (e *Engine) newCursorValue(cur *Cursor, host editor.Host) *lua.LUserData {
	ud := e.L.NewUserData()
	ud.Value = &cursorHandle{cur: cur, host: host}
	e.L.SetMetatable(ud, e.L.GetTypeMetatable(cursorTypeName))
	return ud
}

// newHandle wraps the host under the named metatable.
func (e *Engine) newHandle(typeName string, host editor.Host) *lua.LUserData {
	ud := e.L.NewUserData()
	ud.Value = host
	e.L.SetMetatable(ud, e.L.GetTypeMetatable(typeName))
	return ud
}

// Truthy applies the truthiness the context predicate contract requires:
// nil, false, zero, the empty string and the empty table all gate the match
// off.
func Truthy(v lua.LValue) bool {
	switch val := v.(type) {
	case *lua.LNilType:
		return false
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return float64(val) != 0
	case lua.LString:
		return string(val) != ""
	case *lua.LTable:
		empty := true
		val.ForEach(func(_, _ lua.LValue) { empty = false })
		return !empty
	default:
		return v != nil
	}
}
