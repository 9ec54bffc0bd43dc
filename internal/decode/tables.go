package decode

import "github.com/dshills/termkey/internal/key"

// fnKeyTable maps normalized escape-code fragments to keys. It covers
// the xterm CSI letter forms, SS3 forms, the numbered tilde forms, the
// rxvt shift ($) and ctrl (^) variants, the rxvt lowercase-letter arrow
// forms, and the Cygwin doubled-bracket function keys.
var fnKeyTable = map[string]key.Key{
	// SS3 function keys (xterm/gnome)
	"OP": key.KeyF1,
	"OQ": key.KeyF2,
	"OR": key.KeyF3,
	"OS": key.KeyF4,

	// CSI numbered function keys
	"[11~": key.KeyF1,
	"[12~": key.KeyF2,
	"[13~": key.KeyF3,
	"[14~": key.KeyF4,
	"[15~": key.KeyF5,
	"[17~": key.KeyF6,
	"[18~": key.KeyF7,
	"[19~": key.KeyF8,
	"[20~": key.KeyF9,
	"[21~": key.KeyF10,
	"[23~": key.KeyF11,
	"[24~": key.KeyF12,

	// Cygwin and libuv
	"[[A": key.KeyF1,
	"[[B": key.KeyF2,
	"[[C": key.KeyF3,
	"[[D": key.KeyF4,
	"[[E": key.KeyF5,

	// CSI letter forms
	"[A": key.KeyUp,
	"[B": key.KeyDown,
	"[C": key.KeyRight,
	"[D": key.KeyLeft,
	"[E": key.KeyClear,
	"[F": key.KeyEnd,
	"[H": key.KeyHome,

	// SS3 letter forms
	"OA": key.KeyUp,
	"OB": key.KeyDown,
	"OC": key.KeyRight,
	"OD": key.KeyLeft,
	"OE": key.KeyClear,
	"OF": key.KeyEnd,
	"OH": key.KeyHome,

	// CSI numbered navigation keys
	"[1~": key.KeyHome,
	"[2~": key.KeyInsert,
	"[3~": key.KeyDelete,
	"[4~": key.KeyEnd,
	"[5~": key.KeyPageUp,
	"[6~": key.KeyPageDown,
	"[7~": key.KeyHome,
	"[8~": key.KeyEnd,

	// rxvt arrows (shift implied, see shiftOverrides)
	"[a": key.KeyUp,
	"[b": key.KeyDown,
	"[c": key.KeyRight,
	"[d": key.KeyLeft,
	"[e": key.KeyClear,

	// rxvt shifted navigation
	"[2$": key.KeyInsert,
	"[3$": key.KeyDelete,
	"[5$": key.KeyPageUp,
	"[6$": key.KeyPageDown,
	"[7$": key.KeyHome,
	"[8$": key.KeyEnd,

	// rxvt ctrl arrows (ctrl implied, see ctrlOverrides)
	"Oa": key.KeyUp,
	"Ob": key.KeyDown,
	"Oc": key.KeyRight,
	"Od": key.KeyLeft,
	"Oe": key.KeyClear,

	// rxvt ctrl navigation
	"[2^": key.KeyInsert,
	"[3^": key.KeyDelete,
	"[5^": key.KeyPageUp,
	"[6^": key.KeyPageDown,
	"[7^": key.KeyHome,
	"[8^": key.KeyEnd,

	// Shift+Tab
	"[Z": key.KeyTab,
}

// shiftOverrides lists codes that imply Shift regardless of the numeric
// modifier parameter (rxvt encodes Shift in the code itself).
var shiftOverrides = map[string]bool{
	"[a": true, "[b": true, "[c": true, "[d": true, "[e": true,
	"[2$": true, "[3$": true, "[5$": true, "[6$": true, "[7$": true, "[8$": true,
	"[Z": true,
}

// ctrlOverrides lists codes that imply Ctrl regardless of the numeric
// modifier parameter (rxvt SS3 and caret forms).
var ctrlOverrides = map[string]bool{
	"Oa": true, "Ob": true, "Oc": true, "Od": true, "Oe": true,
	"[2^": true, "[3^": true, "[5^": true, "[6^": true, "[7^": true, "[8^": true,
}

// kittyKeyTable maps Kitty keyboard protocol numeric codes to keys.
// Printable codepoints are handled directly and are not listed here.
// See the functional key definitions of the Kitty protocol: the private
// use area starts at 57344; 57349 is delete.
var kittyKeyTable = map[int]key.Key{
	9:     key.KeyTab,
	13:    key.KeyReturn,
	27:    key.KeyEscape,
	32:    key.KeySpace,
	127:   key.KeyBackspace,
	57348: key.KeyInsert,
	57349: key.KeyDelete,
	57350: key.KeyLeft,
	57351: key.KeyRight,
	57352: key.KeyUp,
	57353: key.KeyDown,
	57354: key.KeyPageUp,
	57355: key.KeyPageDown,
	57356: key.KeyHome,
	57357: key.KeyEnd,
	57364: key.KeyF1,
	57365: key.KeyF2,
	57366: key.KeyF3,
	57367: key.KeyF4,
	57368: key.KeyF5,
	57369: key.KeyF6,
	57370: key.KeyF7,
	57371: key.KeyF8,
	57372: key.KeyF9,
	57373: key.KeyF10,
	57374: key.KeyF11,
	57375: key.KeyF12,
	57427: key.KeyClear, // keypad begin
}
