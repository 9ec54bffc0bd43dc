// Package key defines the event model produced by the terminal input
// decoder.
//
// The fundamental types are:
//
//   - Key: identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: modifier-key bitmask (Shift, Ctrl, Alt, Meta, Super, Hyper)
//   - Event: a single decoded keystroke with its raw wire form attached
//
// An Event is a value type constructed once by the decoder and never
// mutated. Events carry both a semantic name ("up", "f5", "a") and the
// exact bytes that produced them, so callers can bind on either.
package key
