package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS). Set only when the
	// encoding carries an explicit Alt bit, never inferred from an ESC
	// prefix.
	ModAlt

	// ModMeta indicates a meta-style modifier: an ESC prefix on the
	// sequence or the explicit Alt bit. ModAlt always implies ModMeta;
	// the reverse does not hold.
	ModMeta

	// ModSuper indicates the Super key (bit 3 of the ANSI modifier byte).
	ModSuper

	// ModHyper indicates the Hyper key (bit 4 of the ANSI modifier byte).
	ModHyper
)

// ANSI modifier-parameter bits. Terminals encode modifiers as a decimal
// parameter equal to 1 + the bitwise OR of these.
const (
	ansiShift = 1
	ansiAlt   = 2
	ansiCtrl  = 4
	ansiSuper = 8
	ansiHyper = 16
)

// FromANSI decodes an ANSI escape-sequence modifier parameter.
// The Alt bit sets both ModAlt and ModMeta: Alt/Option is one physical
// key and the meta flag is a superset signal.
func FromANSI(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	bits := param - 1

	var m Modifier
	if bits&ansiShift != 0 {
		m |= ModShift
	}
	if bits&ansiAlt != 0 {
		m |= ModAlt | ModMeta
	}
	if bits&ansiCtrl != 0 {
		m |= ModCtrl
	}
	if bits&ansiSuper != 0 {
		m |= ModSuper
	}
	if bits&ansiHyper != 0 {
		m |= ModHyper
	}
	return m
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt returns true if the explicit Alt/Option bit is set.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta returns true if the meta signal is set (ESC prefix or Alt bit).
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// HasSuper returns true if Super is pressed.
func (m Modifier) HasSuper() bool { return m.Has(ModSuper) }

// HasHyper returns true if Hyper is pressed.
func (m Modifier) HasHyper() bool { return m.Has(ModHyper) }

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasSuper() {
		parts = append(parts, "Super")
	}
	if m.HasHyper() {
		parts = append(parts, "Hyper")
	}
	return strings.Join(parts, "+")
}

// modifierNames maps modifier names (lowercase) to Modifier values,
// for parsing keymap chord strings.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt | ModMeta,
	"option":  ModAlt | ModMeta,
	"opt":     ModAlt | ModMeta,
	"shift":   ModShift,
	"meta":    ModMeta,
	"super":   ModSuper,
	"hyper":   ModHyper,
}

// FromModifierName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func FromModifierName(name string) Modifier {
	return modifierNames[strings.ToLower(name)]
}
