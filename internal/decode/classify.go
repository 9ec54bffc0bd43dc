package decode

import (
	"regexp"
	"strings"
)

// Terminal response formats that share the keyboard byte stream but are
// not keystrokes. Matching is byte-for-byte; these take precedence over
// every decode path, including sequences that look key-like (a cursor
// position report `CSI row;col R` is never a keypress).
var (
	// SGR extended mouse report: CSI < b ; x ; y M|m
	sgrMouseRe = regexp.MustCompile(`^\x1b\[<\d+;\d+;\d+[Mm]$`)

	// Window/cell size report: CSI h ; w ; t t
	sizeReportRe = regexp.MustCompile(`^\x1b\[\d+;\d+;\d+t$`)

	// Cursor position report (DSR reply): CSI row ; col R
	cursorReportRe = regexp.MustCompile(`^\x1b\[\d+;\d+R$`)

	// Device Attributes reply: CSI ? n ; ... c
	deviceAttrRe = regexp.MustCompile(`^\x1b\[\?\d+(?:;\d+)*c$`)

	// DECRQM mode report: CSI ? n ; ... $ y
	modeReportRe = regexp.MustCompile(`^\x1b\[\?\d+(?:;\d+)*\$y$`)

	// OSC reply terminated by ST (ESC \) or BEL. An OSC without its
	// terminator is still in flight and must not be filtered.
	oscReplyRe = regexp.MustCompile(`(?s)^\x1b\].*(?:\x1b\\|\x07)$`)
)

// isTerminalReport returns true when the input is a terminal response
// that must be discarded rather than decoded as a key.
func isTerminalReport(s string) bool {
	switch s {
	case "\x1b[I", "\x1b[O": // focus in / focus out
		return true
	case "\x1b[200~", "\x1b[201~": // bracketed paste start / end
		return true
	}

	// Legacy X10 mouse report: ESC [ M followed by exactly three bytes.
	if len(s) == 6 && strings.HasPrefix(s, "\x1b[M") {
		return true
	}

	return sgrMouseRe.MatchString(s) ||
		sizeReportRe.MatchString(s) ||
		cursorReportRe.MatchString(s) ||
		deviceAttrRe.MatchString(s) ||
		modeReportRe.MatchString(s) ||
		oscReplyRe.MatchString(s)
}
