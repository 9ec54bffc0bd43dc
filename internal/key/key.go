package key

import "fmt"

// Key identifies a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key (an unrecognized sequence).
	KeyNone Key = iota

	// Special keys
	KeyReturn
	KeyLinefeed
	KeyEscape
	KeyTab
	KeyBackspace
	KeySpace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyClear

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is used for character keys (letters, digits, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// keyNames maps keys to their semantic names as used in key bindings.
// KeyNone and KeyRune are intentionally absent: KeyNone has no name and
// KeyRune takes its name from the rune itself.
var keyNames = map[Key]string{
	KeyReturn:    "return",
	KeyLinefeed:  "linefeed",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyClear:     "clear",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

// Name returns the semantic name of the key ("up", "f5", "return").
// KeyNone and KeyRune return "" — a rune key's name lives on the Event.
func (k Key) Name() string {
	return keyNames[k]
}

// String returns a human-readable identifier for debugging.
func (k Key) String() string {
	if k == KeyRune {
		return "Rune"
	}
	if k == KeyNone {
		return "None"
	}
	if name := keyNames[k]; name != "" {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigationKey returns true if this is an arrow or paging key.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown
}

// keyNameLookup is the inverse of keyNames, built once at init.
var keyNameLookup = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	// Common aliases used in keymap files.
	m["enter"] = KeyReturn
	m["cr"] = KeyReturn
	m["esc"] = KeyEscape
	m["bs"] = KeyBackspace
	m["del"] = KeyDelete
	m["ins"] = KeyInsert
	m["pgup"] = KeyPageUp
	m["pgdn"] = KeyPageDown
	return m
}()

// FromName returns the Key for a given semantic name or alias.
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	return keyNameLookup[name]
}
