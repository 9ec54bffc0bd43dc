package key

import (
	"fmt"
	"strings"
)

// EventType distinguishes press, repeat and release events. Only the
// Kitty keyboard protocol encodes repeat and release; every other wire
// format produces Press.
type EventType uint8

const (
	// Press is a key press (the default for all encodings).
	Press EventType = iota
	// Repeat is an auto-repeat of a held key.
	Repeat
	// Release is a key release.
	Release
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	default:
		return "press"
	}
}

// Source identifies which decoder path produced an event.
type Source uint8

const (
	// SourceRaw is the legacy escape-sequence decoder.
	SourceRaw Source = iota
	// SourceKitty is the Kitty keyboard protocol decoder.
	SourceKitty
)

// String returns the source name.
func (s Source) String() string {
	if s == SourceKitty {
		return "kitty"
	}
	return "raw"
}

// Event is a single decoded keystroke. It is a value type: the decoder
// constructs it once and never aliases or mutates it afterwards.
type Event struct {
	// Key identifies the key. KeyRune for character keys, KeyNone for
	// unrecognized sequences.
	Key Key

	// Rune is the character for KeyRune events. Lowercase for shifted
	// letters, except ESC-prefixed uppercase letters which keep their
	// original case (a legacy terminal quirk that bindings rely on).
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier

	// Number is true for bare digit keys.
	Number bool

	// Sequence is the normalized form used for key-binding comparison.
	// Usually equal to Raw; digit keys and modifyOtherKeys-encoded
	// characters collapse to the bare character.
	Sequence string

	// Raw is the exact original input.
	Raw string

	// Code is the matched escape-code fragment (e.g. "[A", "[15~"),
	// retained for diagnostics and raw-code binding lookups. Empty when
	// no function-key code matched.
	Code string

	// Type is press, repeat or release.
	Type EventType

	// Source is the decoder path that produced the event.
	Source Source

	// Extended fields reported only by the Kitty protocol.
	CapsLock bool
	NumLock  bool
	BaseCode rune
	Repeated bool
}

// Name returns the semantic key name: "a".."z" and digits for character
// keys, symbolic tokens ("return", "up", "f5") for special keys, and ""
// for unrecognized sequences.
func (e Event) Name() string {
	if e.Key == KeyRune {
		if e.Rune == 0 {
			return ""
		}
		return string(e.Rune)
	}
	return e.Key.Name()
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsUnknown returns true for a structurally unmatched input: a non-nil
// event with no name. Distinct from a filtered terminal report, which
// produces no event at all.
func (e Event) IsUnknown() bool {
	return e.Key == KeyNone && e.Rune == 0
}

// Chord returns the canonical binding form: modifiers in fixed order
// joined to the key name, e.g. "ctrl+shift+up", "meta+a". Events with no
// name return "".
func (e Event) Chord() string {
	name := e.Name()
	if name == "" {
		return ""
	}

	var parts []string
	if e.Mods.HasCtrl() {
		parts = append(parts, "ctrl")
	}
	if e.Mods.HasAlt() {
		parts = append(parts, "alt")
	} else if e.Mods.HasMeta() {
		parts = append(parts, "meta")
	}
	if e.Mods.HasShift() && !e.IsRune() {
		parts = append(parts, "shift")
	}
	if e.Mods.HasSuper() {
		parts = append(parts, "super")
	}
	if e.Mods.HasHyper() {
		parts = append(parts, "hyper")
	}
	parts = append(parts, strings.ToLower(name))
	return strings.Join(parts, "+")
}

// Equals returns true if two events represent the same keystroke.
// Raw bytes and diagnostics are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Mods == other.Mods &&
		e.Type == other.Type
}

// String returns a debug representation.
func (e Event) String() string {
	return fmt.Sprintf("Event{Name: %q, Mods: %s, Type: %s, Source: %s, Raw: %q}",
		e.Name(), e.Mods, e.Type, e.Source, e.Raw)
}
