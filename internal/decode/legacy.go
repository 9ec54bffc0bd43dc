package decode

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/termkey/internal/key"
)

// literalKeys covers the fixed one- and two-byte forms. The ESC-prefixed
// variants add the meta flag; \x00 is the Ctrl+Space convention.
var literalKeys = map[string]key.Key{
	"\r":       key.KeyReturn,
	"\x1b\r":   key.KeyReturn,
	"\n":       key.KeyLinefeed,
	"\x1b\n":   key.KeyLinefeed,
	"\t":       key.KeyTab,
	"\b":       key.KeyBackspace,
	"\x1b\b":   key.KeyBackspace,
	"\x7f":     key.KeyBackspace,
	"\x1b\x7f": key.KeyBackspace,
	"\x1b":     key.KeyEscape,
	"\x1b\x1b": key.KeyEscape,
	" ":        key.KeySpace,
	"\x1b ":    key.KeySpace,
	"\x00":     key.KeySpace,
}

// metaCharRe matches ESC followed by a single alphanumeric: the classic
// meta-key encoding.
var metaCharRe = regexp.MustCompile(`^\x1b([a-zA-Z0-9])$`)

// modifyOtherKeysRe matches the xterm modifyOtherKeys encoding:
// CSI 27 ; modifier ; charcode ~
var modifyOtherKeysRe = regexp.MustCompile(`^\x1b\[27;(\d+);(\d+)~$`)

// fnKeyRe matches the union of SS3 (ESC O letter), the CSI bracket
// dialects and the Cygwin doubled bracket, with an extra leading ESC for
// terminals that encode Alt by doubling the escape. Captures: prefix,
// numeric code, modifier (tilde form), terminator (~ ^ $), modifier
// (letter form), terminating letter. A redundant "1;" before the
// modifier is consumed without capture.
var fnKeyRe = regexp.MustCompile(`^(?:\x1b+)(O|\[|\[\[)(?:(\d+)(?:;(\d+))?([~^$])|(?:1;)?(\d+)?([a-zA-Z]))$`)

// decodeLegacy decodes the classic terminal dialects. It always returns
// an event: inputs that match nothing produce the unknown event (no
// name, no flags), never nil. Rules are ordered; the first match wins.
func decodeLegacy(s, raw string) key.Event {
	ev := key.Event{Sequence: s, Raw: raw, Type: key.Press, Source: key.SourceRaw}

	// Fixed literal forms.
	if k, ok := literalKeys[s]; ok {
		ev.Key = k
		if len(s) == 2 && s[0] == 0x1b {
			ev.Mods |= key.ModMeta
		}
		if s == "\x00" {
			ev.Mods |= key.ModCtrl
		}
		return ev
	}

	// C0 control byte: Ctrl+letter.
	if len(s) == 1 && s[0] >= 0x01 && s[0] <= 0x1a {
		ev.Key = key.KeyRune
		ev.Rune = rune(s[0] + 'a' - 1)
		ev.Mods |= key.ModCtrl
		return ev
	}

	// Single character: digit, letter, or anything else. Control bytes
	// and DEL were consumed by the rules above.
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		ev.Key = key.KeyRune
		switch {
		case r >= '0' && r <= '9':
			ev.Rune = r
			ev.Number = true
			ev.Sequence = string(r)
		case unicode.IsUpper(r):
			ev.Rune = unicode.ToLower(r)
			ev.Mods |= key.ModShift
		default:
			ev.Rune = r
		}
		return ev
	}

	// ESC + single alphanumeric.
	if m := metaCharRe.FindStringSubmatch(s); m != nil {
		ev.Mods |= key.ModMeta
		c := rune(m[1][0])
		switch {
		case c == 'F':
			// Legacy Emacs-style meta+shift-letter arrow aliasing.
			// Lowercase f/b stay plain meta+letter.
			ev.Key = key.KeyRight
		case c == 'B':
			ev.Key = key.KeyLeft
		case unicode.IsUpper(c):
			// Case is preserved in the name; Shift is flagged.
			ev.Key = key.KeyRune
			ev.Rune = c
			ev.Mods |= key.ModShift
		default:
			ev.Key = key.KeyRune
			ev.Rune = c
		}
		return ev
	}

	// ESC + control byte: Meta+Ctrl+letter.
	if len(s) == 2 && s[0] == 0x1b && s[1] >= 0x01 && s[1] <= 0x1a {
		ev.Key = key.KeyRune
		ev.Rune = rune(s[1] + 'a' - 1)
		ev.Mods |= key.ModMeta | key.ModCtrl
		return ev
	}

	// xterm modifyOtherKeys: CSI 27;modifier;charcode~
	if m := modifyOtherKeysRe.FindStringSubmatch(s); m != nil {
		return decodeModifyOtherKeys(m, ev)
	}

	// Function-key escape sequences.
	if m := fnKeyRe.FindStringSubmatch(s); m != nil {
		return decodeFunctionKey(s, m, ev)
	}

	return ev
}

// decodeModifyOtherKeys decodes the CSI 27 form. The sequence collapses
// to the bare character so bindings match it like a plain keystroke.
func decodeModifyOtherKeys(m []string, ev key.Event) key.Event {
	param, _ := strconv.Atoi(m[1])
	code, _ := strconv.Atoi(m[2])
	ev.Mods |= key.FromANSI(param)

	r := rune(code)
	ev.Sequence = string(r)

	switch r {
	case '\r':
		ev.Key = key.KeyReturn
	case '\n':
		ev.Key = key.KeyLinefeed
	case '\t':
		ev.Key = key.KeyTab
	case 0x1b:
		ev.Key = key.KeyEscape
	case 0x7f, '\b':
		ev.Key = key.KeyBackspace
	case ' ':
		ev.Key = key.KeySpace
	default:
		ev.Key = key.KeyRune
		if unicode.IsUpper(r) {
			ev.Rune = unicode.ToLower(r)
			ev.Mods |= key.ModShift
		} else {
			ev.Rune = r
		}
	}
	return ev
}

// decodeFunctionKey decodes an SS3/CSI function-key sequence against the
// static code table.
func decodeFunctionKey(s string, m []string, ev key.Event) key.Event {
	// Two leading escapes are the doubled-ESC Alt encoding.
	if strings.HasPrefix(s, "\x1b\x1b") {
		ev.Mods |= key.ModAlt | key.ModMeta
	}

	// Reassemble the normalized code: prefix + digits + terminator.
	code := m[1] + m[2] + m[4] + m[6]

	modStr := m[3]
	if modStr == "" {
		modStr = m[5]
	}
	if modStr != "" {
		param, _ := strconv.Atoi(modStr)
		ev.Mods |= key.FromANSI(param)
	}

	k, ok := fnKeyTable[code]
	if !ok {
		// Structural match with no table entry: unknown event, not a
		// partially populated one.
		return key.Event{Sequence: ev.Sequence, Raw: ev.Raw, Type: key.Press, Source: key.SourceRaw}
	}

	ev.Key = k
	ev.Code = code
	if shiftOverrides[code] {
		ev.Mods |= key.ModShift
	}
	if ctrlOverrides[code] {
		ev.Mods |= key.ModCtrl
	}
	return ev
}
