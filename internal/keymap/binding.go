package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/termkey/internal/key"
)

// Binding errors.
var (
	ErrEmptyChord   = errors.New("empty key chord")
	ErrUnknownKey   = errors.New("unknown key name")
	ErrNoAction     = errors.New("binding has no action")
	ErrEmptyKeymap  = errors.New("keymap has no name")
	ErrDuplicateMap = errors.New("keymap already registered")
)

// Binding is a single chord-to-action mapping.
type Binding struct {
	// Keys is the chord that triggers this binding, e.g. "ctrl+s",
	// "alt+up", "f5", or a raw code form like "code:[15~".
	Keys string

	// Action is the command name to execute.
	Action string

	// Description is optional human-readable help text.
	Description string

	// Priority breaks ties when multiple keymaps bind the same chord.
	// Higher wins.
	Priority int
}

// Validate checks that the binding is well formed.
func (b Binding) Validate() error {
	if strings.TrimSpace(b.Keys) == "" {
		return ErrEmptyChord
	}
	if strings.TrimSpace(b.Action) == "" {
		return fmt.Errorf("%w: chord %q", ErrNoAction, b.Keys)
	}
	if !strings.HasPrefix(b.Keys, "code:") {
		if _, err := NormalizeChord(b.Keys); err != nil {
			return err
		}
	}
	return nil
}

// Keymap is a named group of bindings.
type Keymap struct {
	// Name identifies the keymap.
	Name string

	// Priority orders this keymap against others. Higher wins.
	Priority int

	// Source records where the keymap came from (file path, "lua",
	// "default").
	Source string

	// Bindings are the chord-to-action mappings.
	Bindings []Binding
}

// Validate checks the keymap and all of its bindings.
func (k *Keymap) Validate() error {
	if strings.TrimSpace(k.Name) == "" {
		return ErrEmptyKeymap
	}
	for _, b := range k.Bindings {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("keymap %q: %w", k.Name, err)
		}
	}
	return nil
}

// NormalizeChord parses a chord specification and returns its canonical
// form: modifiers in fixed order joined to the lowercase key name,
// matching what Event.Chord produces. "Ctrl+Shift+PgUp" normalizes to
// "ctrl+shift+pageup".
func NormalizeChord(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", ErrEmptyChord
	}

	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	// A doubled trailing "+" means the key itself is "+" ("ctrl++").
	// A single trailing "+" is a chord with no key.
	if keyPart == "" {
		if len(modParts) == 0 || modParts[len(modParts)-1] != "" {
			return "", fmt.Errorf("%w: %q", ErrEmptyChord, spec)
		}
		keyPart = "+"
		modParts = modParts[:len(modParts)-1]
	}

	var mods key.Modifier
	for _, p := range modParts {
		m := key.FromModifierName(strings.TrimSpace(p))
		if m == key.ModNone {
			return "", fmt.Errorf("%w: modifier %q in %q", ErrUnknownKey, p, spec)
		}
		mods = mods.With(m)
	}

	keyPart = strings.ToLower(strings.TrimSpace(keyPart))
	isRune := len([]rune(keyPart)) == 1
	if !isRune && key.FromName(keyPart) == key.KeyNone {
		return "", fmt.Errorf("%w: %q in %q", ErrUnknownKey, keyPart, spec)
	}
	if !isRune {
		// Canonicalize aliases: "enter" and "return" are one chord.
		keyPart = key.FromName(keyPart).Name()
	}

	var out []string
	if mods.HasCtrl() {
		out = append(out, "ctrl")
	}
	if mods.HasAlt() {
		out = append(out, "alt")
	} else if mods.HasMeta() {
		out = append(out, "meta")
	}
	if mods.HasShift() && !isRune {
		out = append(out, "shift")
	}
	if mods.HasSuper() {
		out = append(out, "super")
	}
	if mods.HasHyper() {
		out = append(out, "hyper")
	}
	out = append(out, keyPart)
	return strings.Join(out, "+"), nil
}
