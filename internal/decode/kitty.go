package decode

import (
	"regexp"
	"strconv"
	"unicode"

	"github.com/dshills/termkey/internal/key"
)

// kittyRe matches the CSI-u family used by the Kitty keyboard protocol:
//
//	CSI code[:shifted[:base]][;modifier[:event]] u
//	CSI code[;modifier[:event]] ~
//
// The ~ terminator covers functional keys that reuse the legacy tilde
// shape (delete is 57349).
var kittyRe = regexp.MustCompile(`^\x1b\[(\d+)(?::(\d+))?(?::(\d+))?(?:;(\d+)(?::(\d+))?)?([u~])$`)

// Kitty modifier bits beyond the shared ANSI set.
const (
	kittyMeta    = 32
	kittyCapsOn  = 64
	kittyNumOn   = 128
	kittyAnsiMax = 31
)

// decodeKitty attempts to parse a Kitty keyboard protocol sequence.
// The second return value reports a structural match: when false the
// caller must fall through to the legacy decoder, not stop.
func decodeKitty(s, raw string) (key.Event, bool) {
	m := kittyRe.FindStringSubmatch(s)
	if m == nil {
		return key.Event{}, false
	}

	ev := key.Event{Sequence: s, Raw: raw, Type: key.Press, Source: key.SourceKitty}

	code, _ := strconv.Atoi(m[1])

	if m[4] != "" {
		param, _ := strconv.Atoi(m[4])
		bits := param - 1
		ev.Mods = key.FromANSI(bits&kittyAnsiMax + 1)
		if bits&kittyMeta != 0 {
			ev.Mods |= key.ModMeta
		}
		ev.CapsLock = bits&kittyCapsOn != 0
		ev.NumLock = bits&kittyNumOn != 0
	}

	switch m[5] {
	case "2":
		ev.Type = key.Repeat
		ev.Repeated = true
	case "3":
		ev.Type = key.Release
	}

	if m[3] != "" {
		base, _ := strconv.Atoi(m[3])
		ev.BaseCode = rune(base)
	}

	if k, ok := kittyKeyTable[code]; ok {
		ev.Key = k
		return ev, true
	}

	r := rune(code)
	if unicode.IsPrint(r) {
		// Printable codepoints map directly to their character; case and
		// shift arrive in the modifier bits.
		ev.Key = key.KeyRune
		ev.Rune = r
		return ev, true
	}

	// A structurally valid sequence with an unmapped code is still a
	// Kitty event, just one with no name.
	return ev, true
}
