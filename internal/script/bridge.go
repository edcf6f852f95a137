package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/snipstorm/internal/editor"
)

// toLuaValue converts the Go values used in call locals to Lua values.
// Positions become {line, col} tables in zero-based coordinates.
func toLuaValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case editor.Position:
		t := L.NewTable()
		t.RawSetString("line", lua.LNumber(val.Line))
		t.RawSetString("col", lua.LNumber(val.Col))
		return t
	case []string:
		t := L.NewTable()
		for i, s := range val {
			t.RawSetInt(i+1, lua.LString(s))
		}
		return t
	case []any:
		t := L.NewTable()
		for i, item := range val {
			t.RawSetInt(i+1, toLuaValue(L, item))
		}
		return t
	case map[string]any:
		t := L.NewTable()
		for k, item := range val {
			t.RawSetString(k, toLuaValue(L, item))
		}
		return t
	case lua.LValue:
		return val
	default:
		ud := L.NewUserData()
		ud.Value = v
		return ud
	}
}
