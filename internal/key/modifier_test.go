package key

import "testing"

func TestFromANSI(t *testing.T) {
	tests := []struct {
		param int
		want  Modifier
	}{
		{0, ModNone},
		{1, ModNone},
		{2, ModShift},
		{3, ModAlt | ModMeta},
		{4, ModShift | ModAlt | ModMeta},
		{5, ModCtrl},
		{6, ModCtrl | ModShift},
		{7, ModCtrl | ModAlt | ModMeta},
		{8, ModCtrl | ModAlt | ModMeta | ModShift},
		{9, ModSuper},
		{17, ModHyper},
		{16, ModShift | ModAlt | ModMeta | ModCtrl | ModSuper},
	}

	for _, tt := range tests {
		got := FromANSI(tt.param)
		if got != tt.want {
			t.Errorf("FromANSI(%d) = %v, want %v", tt.param, got, tt.want)
		}
	}
}

func TestAltImpliesMeta(t *testing.T) {
	// The explicit Alt bit always sets the meta signal as well.
	for param := 2; param <= 17; param++ {
		m := FromANSI(param)
		if m.HasAlt() && !m.HasMeta() {
			t.Errorf("FromANSI(%d): Alt set without Meta", param)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModAlt | ModMeta, "Alt+Meta"},
		{ModMeta, "Meta"},
		{ModSuper | ModHyper, "Super+Hyper"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromModifierName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"alt", ModAlt | ModMeta},
		{"option", ModAlt | ModMeta},
		{"meta", ModMeta},
		{"shift", ModShift},
		{"super", ModSuper},
		{"hyper", ModHyper},
		{"bogus", ModNone},
	}

	for _, tt := range tests {
		if got := FromModifierName(tt.name); got != tt.want {
			t.Errorf("FromModifierName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
