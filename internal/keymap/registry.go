package keymap

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/termkey/internal/key"
)

// Registry holds registered keymaps and resolves events to actions.
// Registration normally happens once at startup; lookup is read-mostly
// and safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*Keymap

	// byChord indexes bindings by canonical chord, best first.
	byChord map[string][]resolved

	// byCode indexes bindings declared as "code:<fragment>".
	byCode map[string][]resolved
}

// resolved is a binding with its effective priority.
type resolved struct {
	binding  Binding
	priority int
	keymap   string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*Keymap),
		byChord: make(map[string][]resolved),
		byCode:  make(map[string][]resolved),
	}
}

// Register adds a keymap. Registering a name twice is an error; use
// Replace for reload.
func (r *Registry) Register(km *Keymap) error {
	if err := km.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keymaps[km.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMap, km.Name)
	}
	r.keymaps[km.Name] = km
	r.reindex()
	return nil
}

// Replace registers a keymap, overwriting any existing keymap with the
// same name.
func (r *Registry) Replace(km *Keymap) error {
	if err := km.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.keymaps[km.Name] = km
	r.reindex()
	return nil
}

// Unregister removes a keymap by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.keymaps, name)
	r.reindex()
}

// Keymaps returns the names of all registered keymaps, sorted.
func (r *Registry) Keymaps() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.keymaps))
	for name := range r.keymaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a decoded event to its best binding. Chord bindings
// are consulted first, then raw-code bindings for events that carry an
// escape-code fragment.
func (r *Registry) Lookup(ev key.Event) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if chord := ev.Chord(); chord != "" {
		if rs := r.byChord[chord]; len(rs) > 0 {
			return rs[0].binding, true
		}
	}
	if ev.Code != "" {
		if rs := r.byCode[ev.Code]; len(rs) > 0 {
			return rs[0].binding, true
		}
	}
	return Binding{}, false
}

// LookupChord resolves a canonical chord string directly.
func (r *Registry) LookupChord(chord string) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rs := r.byChord[chord]; len(rs) > 0 {
		return rs[0].binding, true
	}
	return Binding{}, false
}

// reindex rebuilds the lookup indexes. Caller holds the write lock.
func (r *Registry) reindex() {
	r.byChord = make(map[string][]resolved)
	r.byCode = make(map[string][]resolved)

	for _, km := range r.keymaps {
		for _, b := range km.Bindings {
			res := resolved{
				binding:  b,
				priority: km.Priority + b.Priority,
				keymap:   km.Name,
			}
			if code, ok := strings.CutPrefix(b.Keys, "code:"); ok {
				r.byCode[code] = append(r.byCode[code], res)
				continue
			}
			chord, err := NormalizeChord(b.Keys)
			if err != nil {
				// Validate rejected this at Register time.
				continue
			}
			r.byChord[chord] = append(r.byChord[chord], res)
		}
	}

	for _, idx := range []map[string][]resolved{r.byChord, r.byCode} {
		for chord := range idx {
			rs := idx[chord]
			sort.SliceStable(rs, func(i, j int) bool {
				return rs[i].priority > rs[j].priority
			})
		}
	}
}
