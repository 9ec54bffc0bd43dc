// Package keymap maps decoded key events to named actions.
//
// Bindings are declared against chord strings ("ctrl+s", "alt+up",
// "shift+f5") which are normalized to the same canonical form the
// decoder produces via Event.Chord, so lookup is a single map hit.
// Bindings may also target a raw escape-code fragment ("code:[15~") for
// terminals whose sequences have no semantic name.
//
// Keymaps load from JSON or YAML files, or from Lua scripts for
// programmatic generation.
package keymap
