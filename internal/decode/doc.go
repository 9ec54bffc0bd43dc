// Package decode turns raw terminal input bytes into normalized key
// events.
//
// Terminals interleave plain characters, C0 control codes, several
// generations of ANSI escape dialects (xterm CSI, SS3, rxvt, Cygwin,
// modifyOtherKeys) and the modern Kitty keyboard protocol on one byte
// stream, together with responses that are not keystrokes at all: mouse
// reports, cursor-position replies, device attributes, OSC replies and
// bracketed-paste markers. Decode recognizes and discards the responses,
// then decodes the rest.
//
// The entry point is Decode: a pure function over its arguments with no
// retained state. All lookup tables are package-level and read-only, so
// concurrent calls are safe without locking. Callers that need arrival
// order preserved must serialize calls themselves.
//
// Decode expects complete, already-reassembled chunks; splitting escape
// sequences across calls and timeout-flushing partial reads belong to
// the upstream stream buffer.
package decode
