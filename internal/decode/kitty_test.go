package decode

import (
	"testing"

	"github.com/dshills/termkey/internal/key"
)

func kitty(t *testing.T, s string) key.Event {
	t.Helper()
	ev, ok := decodeKitty(s, s)
	if !ok {
		t.Fatalf("decodeKitty(%q): no structural match", s)
	}
	return ev
}

func TestKittyPrintable(t *testing.T) {
	ev := kitty(t, "\x1b[97u")
	if ev.Name() != "a" || !ev.Mods.IsEmpty() {
		t.Errorf("got name %q mods %v, want bare a", ev.Name(), ev.Mods)
	}
	if ev.Source != key.SourceKitty {
		t.Errorf("Source = %v, want kitty", ev.Source)
	}
}

func TestKittyModifiers(t *testing.T) {
	tests := []struct {
		in   string
		want key.Modifier
	}{
		{"\x1b[97;5u", key.ModCtrl},
		{"\x1b[97;2u", key.ModShift},
		{"\x1b[97;3u", key.ModAlt | key.ModMeta},
		{"\x1b[97;9u", key.ModSuper},
		{"\x1b[97;17u", key.ModHyper},
		{"\x1b[97;33u", key.ModMeta},
	}

	for _, tt := range tests {
		t.Run(tt.in[2:], func(t *testing.T) {
			ev := kitty(t, tt.in)
			if ev.Mods != tt.want {
				t.Errorf("decodeKitty(%q).Mods = %v, want %v", tt.in, ev.Mods, tt.want)
			}
		})
	}
}

func TestKittyFunctionalKeys(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\x1b[13u", "return"},
		{"\x1b[9u", "tab"},
		{"\x1b[27u", "escape"},
		{"\x1b[127u", "backspace"},
		{"\x1b[57348u", "insert"},
		{"\x1b[57349u", "delete"},
		{"\x1b[57349~", "delete"}, // tilde-terminated shape
		{"\x1b[57350u", "left"},
		{"\x1b[57351u", "right"},
		{"\x1b[57352u", "up"},
		{"\x1b[57353u", "down"},
		{"\x1b[57354u", "pageup"},
		{"\x1b[57355u", "pagedown"},
		{"\x1b[57356u", "home"},
		{"\x1b[57357u", "end"},
		{"\x1b[57364u", "f1"},
		{"\x1b[57375u", "f12"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ev := kitty(t, tt.in)
			if ev.Name() != tt.want {
				t.Errorf("decodeKitty(%q).Name() = %q, want %q", tt.in, ev.Name(), tt.want)
			}
		})
	}
}

func TestKittyAltDelete(t *testing.T) {
	ev := kitty(t, "\x1b[57349;3u")
	if ev.Name() != "delete" {
		t.Errorf("Name() = %q, want delete", ev.Name())
	}
	if !ev.Mods.HasAlt() || !ev.Mods.HasMeta() {
		t.Errorf("Mods = %v, want Alt+Meta", ev.Mods)
	}
}

func TestKittyEventTypes(t *testing.T) {
	tests := []struct {
		in           string
		wantType     key.EventType
		wantRepeated bool
	}{
		{"\x1b[97;1:1u", key.Press, false},
		{"\x1b[97;1:2u", key.Repeat, true},
		{"\x1b[97;1:3u", key.Release, false},
		{"\x1b[97;5u", key.Press, false}, // no event sub-field
	}

	for _, tt := range tests {
		t.Run(tt.wantType.String(), func(t *testing.T) {
			ev := kitty(t, tt.in)
			if ev.Type != tt.wantType {
				t.Errorf("decodeKitty(%q).Type = %v, want %v", tt.in, ev.Type, tt.wantType)
			}
			if ev.Repeated != tt.wantRepeated {
				t.Errorf("decodeKitty(%q).Repeated = %v, want %v", tt.in, ev.Repeated, tt.wantRepeated)
			}
		})
	}
}

func TestKittyLockModifiers(t *testing.T) {
	ev := kitty(t, "\x1b[97;65u") // bits 64 = caps lock
	if !ev.CapsLock || ev.NumLock {
		t.Errorf("caps: got caps=%v num=%v", ev.CapsLock, ev.NumLock)
	}
	if !ev.Mods.IsEmpty() {
		t.Errorf("lock bits must not leak into modifiers: %v", ev.Mods)
	}

	ev = kitty(t, "\x1b[97;129u") // bits 128 = num lock
	if ev.CapsLock || !ev.NumLock {
		t.Errorf("num: got caps=%v num=%v", ev.CapsLock, ev.NumLock)
	}
}

func TestKittyAlternateKeys(t *testing.T) {
	// code:shifted:base — the base layout key is retained.
	ev := kitty(t, "\x1b[97:65:113;2u")
	if ev.Name() != "a" || !ev.Mods.HasShift() {
		t.Errorf("got name %q mods %v, want shift+a", ev.Name(), ev.Mods)
	}
	if ev.BaseCode != 'q' {
		t.Errorf("BaseCode = %q, want q", ev.BaseCode)
	}
}

func TestKittyUnknownCode(t *testing.T) {
	// Structurally valid, unmapped functional code: still a Kitty event,
	// just nameless. The dispatcher must not fall through to legacy.
	ev, ok := decodeKitty("\x1b[57399u", "\x1b[57399u")
	if !ok {
		t.Fatal("expected a structural match")
	}
	if !ev.IsUnknown() {
		t.Errorf("expected nameless event, got %v", ev)
	}
	if ev.Source != key.SourceKitty {
		t.Errorf("Source = %v, want kitty", ev.Source)
	}
}

func TestKittyNonMatch(t *testing.T) {
	inputs := []string{
		"\x1b[A",        // legacy arrow
		"\x1b[1;5A",     // legacy modified arrow
		"\x1b[27;5;13~", // modifyOtherKeys has two semicolons
		"a",
		"\x1bOP",
	}
	for _, in := range inputs {
		if _, ok := decodeKitty(in, in); ok {
			t.Errorf("decodeKitty(%q) matched, want fallthrough", in)
		}
	}
}
