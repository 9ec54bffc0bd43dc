package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/dshills/termkey/internal/config"
	"github.com/dshills/termkey/internal/decode"
	"github.com/dshills/termkey/internal/key"
	"github.com/dshills/termkey/internal/keymap"
	"github.com/dshills/termkey/internal/logging"
)

// errQuit signals a clean exit requested by a key binding.
var errQuit = errors.New("quit")

// Kitty keyboard protocol push/pop. The push enables disambiguated
// escape codes; the pop restores the terminal's previous mode.
const (
	kittyPush = "\x1b[>1u"
	kittyPop  = "\x1b[<u"
)

// inspector reads raw terminal input, decodes it, and prints one line
// per key event.
type inspector struct {
	mu   sync.RWMutex
	opts decode.Options

	logger   *logging.Logger
	registry *keymap.Registry

	in  *os.File
	out *os.File

	restoreMu sync.Mutex
	oldState  *term.State
	kittyOn   bool
}

// newInspector prepares the inspector: keymaps are loaded up front so a
// broken keymap fails before the terminal enters raw mode.
func newInspector(cfg *config.Config, logger *logging.Logger) (*inspector, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal")
	}

	insp := &inspector{
		opts:     decode.Options{UseKittyKeyboard: cfg.Input.KittyKeyboard},
		logger:   logger,
		registry: keymap.NewRegistry(),
		in:       os.Stdin,
		out:      os.Stdout,
	}

	if err := insp.registry.Register(defaultKeymap()); err != nil {
		return nil, err
	}
	insp.loadKeymaps(cfg.Keymaps.Paths)

	return insp, nil
}

// defaultKeymap provides the exit bindings so the inspector is always
// escapable.
func defaultKeymap() *keymap.Keymap {
	return &keymap.Keymap{
		Name:     "default",
		Priority: -100,
		Source:   "default",
		Bindings: []keymap.Binding{
			{Keys: "ctrl+c", Action: "quit", Description: "Exit the inspector"},
			{Keys: "ctrl+d", Action: "quit", Description: "Exit the inspector"},
		},
	}
}

// loadKeymaps loads JSON, YAML, and Lua keymaps from the configured
// directories. Failures are logged and skipped.
func (insp *inspector) loadKeymaps(paths []string) {
	loader := keymap.NewLoader()
	for _, dir := range paths {
		loader.AddSearchPath(dir)
	}
	if err := loader.LoadAndRegister(insp.registry); err != nil {
		insp.logger.Warn("loading keymaps: %v", err)
	}

	for _, dir := range paths {
		matches, err := filepath.Glob(filepath.Join(dir, "*.lua"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			km, err := keymap.LoadLuaFile(path)
			if err != nil {
				insp.logger.Warn("loading %s: %v", path, err)
				continue
			}
			if err := insp.registry.Replace(km); err != nil {
				insp.logger.Warn("registering %s: %v", path, err)
			}
		}
	}

	insp.logger.Debug("keymaps loaded: %v", insp.registry.Keymaps())
}

// ApplyConfig picks up decoder and logging changes from a reloaded
// configuration.
func (insp *inspector) ApplyConfig(cfg *config.Config) {
	insp.mu.Lock()
	insp.opts.UseKittyKeyboard = cfg.Input.KittyKeyboard
	insp.mu.Unlock()

	insp.logger.SetLevel(logging.ParseLevel(cfg.Logging.Level))
	insp.logger.Info("config reloaded")
}

// Run puts the terminal into raw mode and decodes input until a quit
// binding fires.
func (insp *inspector) Run() error {
	fd := int(insp.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}

	insp.restoreMu.Lock()
	insp.oldState = oldState
	insp.mu.RLock()
	kitty := insp.opts.UseKittyKeyboard
	insp.mu.RUnlock()
	if kitty {
		fmt.Fprint(insp.out, kittyPush)
		insp.kittyOn = true
	}
	insp.restoreMu.Unlock()

	defer insp.Close()

	fmt.Fprint(insp.out, "Press keys to inspect events. Ctrl+C exits.\r\n\r\n")

	buf := make([]byte, 256)
	for {
		n, err := insp.in.Read(buf)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if n == 0 {
			continue
		}

		chunk := make([]byte, n)
		copy(chunk, buf[:n])

		insp.mu.RLock()
		opts := insp.opts
		insp.mu.RUnlock()

		ev := decode.Decode(chunk, opts)
		if ev == nil {
			insp.logger.Debug("filtered terminal report: %q", chunk)
			continue
		}

		insp.printEvent(ev)

		if b, ok := insp.registry.Lookup(*ev); ok {
			insp.logger.Debug("chord %q resolved to %q", ev.Chord(), b.Action)
			if b.Action == "quit" {
				return errQuit
			}
		}
	}
}

// Close restores the terminal. Safe to call more than once.
func (insp *inspector) Close() {
	insp.restoreMu.Lock()
	defer insp.restoreMu.Unlock()

	if insp.kittyOn {
		fmt.Fprint(insp.out, kittyPop)
		insp.kittyOn = false
	}
	if insp.oldState != nil {
		_ = term.Restore(int(insp.in.Fd()), insp.oldState)
		insp.oldState = nil
	}
}

// printEvent writes one aligned line per event: raw bytes, chord, key
// name, event type, and decode source.
func (insp *inspector) printEvent(ev *key.Event) {
	chord := ev.Chord()
	if chord == "" {
		chord = "(unknown)"
	}

	name := ev.Name()
	if name == "" {
		name = "-"
	}

	fmt.Fprintf(insp.out, "%s %s %s %-7s %s\r\n",
		pad(fmt.Sprintf("%q", ev.Raw), 18),
		pad(chord, 20),
		pad(name, 12),
		ev.Type,
		ev.Source)
}

// pad right-pads s to the given display width. Width is measured in
// terminal columns, not bytes, so wide runes stay aligned.
func pad(s string, width int) string {
	w := uniseg.StringWidth(s)
	for w < width {
		s += " "
		w++
	}
	return s
}
