package decode

import "github.com/dshills/termkey/internal/key"

// Options configures a decode call.
type Options struct {
	// UseKittyKeyboard enables the Kitty keyboard protocol decoder.
	// The caller is responsible for having negotiated the protocol with
	// the terminal; this flag only selects the decode path.
	UseKittyKeyboard bool
}

// Decode turns one complete input chunk into a key event.
//
// It returns nil when the chunk is a terminal response (mouse report,
// cursor reply, OSC reply, paste marker and friends) — those must never
// surface as keystrokes. Every other input produces an event; inputs
// that match no known encoding produce an event with no name so the
// caller can log or drop them. Empty input produces the zero-valued
// event, which is distinct from the filtered nil.
func Decode(data []byte, opts Options) *key.Event {
	raw := string(data)
	s := raw

	// High-bit meta convention: a lone byte with the top bit set is the
	// 8-bit encoding of ESC + (byte & 0x7f). Normalize before
	// classification so both decoder paths see the same shape.
	if len(data) == 1 && data[0] >= 0x80 {
		s = "\x1b" + string(rune(data[0]-0x80))
	}

	if isTerminalReport(s) {
		return nil
	}

	if len(s) == 0 {
		ev := key.Event{Type: key.Press, Source: key.SourceRaw}
		return &ev
	}

	if opts.UseKittyKeyboard {
		if ev, ok := decodeKitty(s, raw); ok {
			return &ev
		}
	}

	ev := decodeLegacy(s, raw)
	return &ev
}

// DecodeString is Decode for string input.
func DecodeString(s string, opts Options) *key.Event {
	return Decode([]byte(s), opts)
}
