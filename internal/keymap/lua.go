package keymap

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LoadLuaFile runs a Lua script and converts its return value into a
// keymap. The script must return a table of the form:
//
//	return {
//	  name = "editing",
//	  priority = 10,
//	  bindings = {
//	    { keys = "ctrl+s", action = "file.save" },
//	    { keys = "alt+up", action = "line.move_up" },
//	  },
//	}
//
// The state is sandboxed: only the base, table and string libraries are
// opened, mirroring how plugin scripts are confined elsewhere.
func LoadLuaFile(path string) (*Keymap, error) {
	L, err := newLuaState()
	if err != nil {
		return nil, err
	}
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("running keymap script: %w", err)
	}
	km, err := keymapFromLua(L.Get(-1))
	if err != nil {
		return nil, fmt.Errorf("keymap script %s: %w", path, err)
	}
	km.Source = "lua:" + path
	return km, nil
}

// LoadLuaScript is LoadLuaFile for in-memory source.
func LoadLuaScript(src string) (*Keymap, error) {
	L, err := newLuaState()
	if err != nil {
		return nil, err
	}
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("running keymap script: %w", err)
	}
	km, err := keymapFromLua(L.Get(-1))
	if err != nil {
		return nil, err
	}
	km.Source = "lua"
	return km, nil
}

// newLuaState creates a Lua state with a restricted library set.
func newLuaState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("opening lua library %s: %w", lib.name, err)
		}
	}
	return L, nil
}

// keymapFromLua converts the script's return value into a Keymap.
func keymapFromLua(v lua.LValue) (*Keymap, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("script must return a table, got %s", v.Type())
	}

	km := &Keymap{
		Name: lua.LVAsString(tbl.RawGetString("name")),
	}
	if p, ok := tbl.RawGetString("priority").(lua.LNumber); ok {
		km.Priority = int(p)
	}

	bindings, ok := tbl.RawGetString("bindings").(*lua.LTable)
	if !ok {
		return km, nil
	}

	bindings.ForEach(func(_, entry lua.LValue) {
		bt, ok := entry.(*lua.LTable)
		if !ok {
			return
		}
		b := Binding{
			Keys:        lua.LVAsString(bt.RawGetString("keys")),
			Action:      lua.LVAsString(bt.RawGetString("action")),
			Description: lua.LVAsString(bt.RawGetString("description")),
		}
		if p, ok := bt.RawGetString("priority").(lua.LNumber); ok {
			b.Priority = int(p)
		}
		km.Bindings = append(km.Bindings, b)
	})

	return km, nil
}
