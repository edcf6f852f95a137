package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/snipstorm/internal/editor"
)

// cursorHandle pairs the cursor handle with the host so preserve() can read
// the real cursor.
type cursorHandle struct {
	cur  *Cursor
	host editor.Host
}

func checkCursor(L *lua.LState) *cursorHandle {
	ud := L.CheckUserData(1)
	if h, ok := ud.Value.(*cursorHandle); ok {
		return h
	}
	L.ArgError(1, "cursor expected")
	return nil
}

// cursorMethods are exposed on the snip.cursor userdata.
var cursorMethods = map[string]lua.LGFunction{
	"set": func(L *lua.LState) int {
		h := checkCursor(L)
		line := L.CheckInt(2)
		col := L.CheckInt(3)
		h.cur.Set(line, col)
		return 0
	},
	"set_line": func(L *lua.LState) int {
		h := checkCursor(L)
		h.cur.SetLine(L.CheckInt(2))
		return 0
	},
	"set_column": func(L *lua.LState) int {
		h := checkCursor(L)
		h.cur.SetCol(L.CheckInt(2))
		return 0
	},
	"preserve": func(L *lua.LState) int {
		h := checkCursor(L)
		h.cur.Preserve(h.host)
		return 0
	},
	"line": func(L *lua.LState) int {
		h := checkCursor(L)
		L.Push(lua.LNumber(h.cur.Position().Line))
		return 1
	},
	"column": func(L *lua.LState) int {
		h := checkCursor(L)
		L.Push(lua.LNumber(h.cur.Position().Col))
		return 1
	},
	"is_set": func(L *lua.LState) int {
		h := checkCursor(L)
		L.Push(lua.LBool(h.cur.IsSet()))
		return 1
	},
}

func checkHost(L *lua.LState) editor.Host {
	ud := L.CheckUserData(1)
	if h, ok := ud.Value.(editor.Host); ok {
		return h
	}
	L.ArgError(1, "editor handle expected")
	return nil
}

// bufferMethods are the named operations on the buffer handle. Numeric
// indexing reads and writes whole lines, zero-based to match the injected
// line variable.
var bufferMethods = map[string]lua.LGFunction{
	"insert": func(L *lua.LState) int {
		h := checkHost(L)
		n := L.CheckInt(2)
		h.InsertLine(n, L.CheckString(3))
		return 0
	},
	"remove": func(L *lua.LState) int {
		h := checkHost(L)
		h.DeleteLine(L.CheckInt(2))
		return 0
	},
	"count": func(L *lua.LState) int {
		h := checkHost(L)
		L.Push(lua.LNumber(h.LineCount()))
		return 1
	},
}

func bufferIndex(L *lua.LState) int {
	h := checkHost(L)
	switch key := L.Get(2).(type) {
	case lua.LNumber:
		L.Push(lua.LString(h.Line(int(key))))
		return 1
	case lua.LString:
		if fn, ok := bufferMethods[string(key)]; ok {
			L.Push(L.NewFunction(fn))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

func bufferNewIndex(L *lua.LState) int {
	h := checkHost(L)
	n := L.CheckInt(2)
	h.SetLine(n, L.CheckString(3))
	return 0
}

func bufferLen(L *lua.LState) int {
	h := checkHost(L)
	L.Push(lua.LNumber(h.LineCount()))
	return 1
}

// windowIndex exposes the window handle. Only the cursor is surfaced, as a
// two-element array in the host's 1-based line convention.
func windowIndex(L *lua.LState) int {
	h := checkHost(L)
	key := L.CheckString(2)
	if key != "cursor" {
		L.Push(lua.LNil)
		return 1
	}
	pos := h.Cursor()
	t := L.NewTable()
	t.RawSetInt(1, lua.LNumber(editor.ToHostLine(pos.Line)))
	t.RawSetInt(2, lua.LNumber(pos.Col))
	L.Push(t)
	return 1
}
