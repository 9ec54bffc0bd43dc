package decode

import "testing"

func TestClassifyFilteredFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"sgr mouse press", "\x1b[<0;10;5M"},
		{"sgr mouse release", "\x1b[<0;10;5m"},
		{"sgr mouse wheel", "\x1b[<64;80;24M"},
		{"x10 mouse", "\x1b[M abc"[:6]},
		{"size report", "\x1b[8;24;80t"},
		{"cursor position report", "\x1b[12;40R"},
		{"device attributes", "\x1b[?1;2c"},
		{"device attributes long", "\x1b[?62;1;2;6;9;15;22c"},
		{"decrqm report", "\x1b[?2026;2$y"},
		{"focus in", "\x1b[I"},
		{"focus out", "\x1b[O"},
		{"osc bel terminated", "\x1b]11;rgb:1e/1e/2e\x07"},
		{"osc st terminated", "\x1b]10;rgb:cd/d6/f4\x1b\\"},
		{"paste start", "\x1b[200~"},
		{"paste end", "\x1b[201~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !isTerminalReport(tt.in) {
				t.Errorf("isTerminalReport(%q) = false, want true", tt.in)
			}
			if ev := DecodeString(tt.in, Options{}); ev != nil {
				t.Errorf("Decode(%q) = %v, want nil", tt.in, ev)
			}
		})
	}
}

func TestClassifyNotFiltered(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"plain char", "a"},
		{"arrow", "\x1b[A"},
		{"modified arrow", "\x1b[1;5A"},
		{"kitty", "\x1b[97;5u"},
		{"incomplete osc", "\x1b]11;rgb:1e/1e/2e"},
		{"focus-like with trailing", "\x1b[Ix"},
		{"cursor-report-like fn key", "\x1b[12;40~"},
		{"x10 prefix wrong length", "\x1b[M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if isTerminalReport(tt.in) {
				t.Errorf("isTerminalReport(%q) = true, want false", tt.in)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// CSI row;col R shares its shape with modifier-decorated sequences
	// but is always a cursor report, even with Kitty mode enabled.
	if ev := DecodeString("\x1b[1;5R", Options{UseKittyKeyboard: true}); ev != nil {
		t.Errorf("cursor report decoded as %v, want nil", ev)
	}
}
