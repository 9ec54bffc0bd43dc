package key

import "testing"

func TestEventName(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"rune", Event{Key: KeyRune, Rune: 'a'}, "a"},
		{"digit", Event{Key: KeyRune, Rune: '7', Number: true}, "7"},
		{"case preserved", Event{Key: KeyRune, Rune: 'Q', Mods: ModShift | ModMeta}, "Q"},
		{"special", Event{Key: KeyPageUp}, "pageup"},
		{"unknown", Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Name(); got != tt.want {
				t.Errorf("Event.Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventChord(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"plain rune", Event{Key: KeyRune, Rune: 'a'}, "a"},
		{"ctrl rune", Event{Key: KeyRune, Rune: 'a', Mods: ModCtrl}, "ctrl+a"},
		{"meta only", Event{Key: KeyUp, Mods: ModMeta}, "meta+up"},
		{"alt wins over meta", Event{Key: KeyUp, Mods: ModAlt | ModMeta}, "alt+up"},
		{"shift on special", Event{Key: KeyTab, Mods: ModShift}, "shift+tab"},
		{"shift folded into rune", Event{Key: KeyRune, Rune: 'A', Mods: ModShift}, "a"},
		{"full stack", Event{Key: KeyUp, Mods: ModCtrl | ModShift | ModSuper | ModHyper}, "ctrl+shift+super+hyper+up"},
		{"unknown", Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Chord(); got != tt.want {
				t.Errorf("Event.Chord() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventIsUnknown(t *testing.T) {
	if !(Event{}).IsUnknown() {
		t.Error("zero event should be unknown")
	}
	if (Event{Key: KeyRune, Rune: 'x'}).IsUnknown() {
		t.Error("rune event should not be unknown")
	}
	if (Event{Key: KeyEscape}).IsUnknown() {
		t.Error("escape should not be unknown")
	}
}

func TestEventEquals(t *testing.T) {
	a := Event{Key: KeyRune, Rune: 'x', Mods: ModCtrl, Raw: "\x18"}
	b := Event{Key: KeyRune, Rune: 'x', Mods: ModCtrl, Raw: "different"}
	if !a.Equals(b) {
		t.Error("events differing only in raw bytes should be equal")
	}

	c := Event{Key: KeyRune, Rune: 'x', Mods: ModCtrl, Type: Release}
	if a.Equals(c) {
		t.Error("press and release should not be equal")
	}
}

func TestEventTypeString(t *testing.T) {
	if Press.String() != "press" || Repeat.String() != "repeat" || Release.String() != "release" {
		t.Error("EventType.String() mismatch")
	}
}

func TestSourceString(t *testing.T) {
	if SourceRaw.String() != "raw" || SourceKitty.String() != "kitty" {
		t.Error("Source.String() mismatch")
	}
}
