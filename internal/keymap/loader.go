package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads keymaps from configuration files. JSON and YAML are
// chosen by file extension.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a JSON or YAML file.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	var km *Keymap
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		km, err = l.LoadYAML(f)
	default:
		km, err = l.LoadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if km.Source == "" {
		km.Source = path
	}
	return km, nil
}

// LoadJSON loads a keymap from JSON.
func (l *Loader) LoadJSON(r io.Reader) (*Keymap, error) {
	var config keymapConfig
	if err := json.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return config.toKeymap(), nil
}

// LoadYAML loads a keymap from YAML.
func (l *Loader) LoadYAML(r io.Reader) (*Keymap, error) {
	var config keymapConfig
	if err := yaml.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return config.toKeymap(), nil
}

// LoadAll loads every keymap found in the search paths. Files that fail
// to parse are skipped so one bad keymap does not take out the rest.
func (l *Loader) LoadAll() []*Keymap {
	keymaps := make([]*Keymap, 0)

	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			for _, path := range matches {
				km, err := l.LoadFile(path)
				if err != nil {
					continue
				}
				keymaps = append(keymaps, km)
			}
		}
	}

	return keymaps
}

// LoadAndRegister loads all keymaps from the search paths and registers
// them, replacing same-named keymaps already present.
func (l *Loader) LoadAndRegister(registry *Registry) error {
	for _, km := range l.LoadAll() {
		if err := registry.Replace(km); err != nil {
			return fmt.Errorf("registering keymap %q: %w", km.Name, err)
		}
	}
	return nil
}

// keymapConfig is the file structure for keymap files.
type keymapConfig struct {
	Name     string          `json:"name" yaml:"name"`
	Priority int             `json:"priority,omitempty" yaml:"priority,omitempty"`
	Source   string          `json:"source,omitempty" yaml:"source,omitempty"`
	Bindings []bindingConfig `json:"bindings" yaml:"bindings"`
}

type bindingConfig struct {
	Keys        string `json:"keys" yaml:"keys"`
	Action      string `json:"action" yaml:"action"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    int    `json:"priority,omitempty" yaml:"priority,omitempty"`
}

func (c *keymapConfig) toKeymap() *Keymap {
	km := &Keymap{
		Name:     c.Name,
		Priority: c.Priority,
		Source:   c.Source,
		Bindings: make([]Binding, 0, len(c.Bindings)),
	}
	for _, bc := range c.Bindings {
		km.Bindings = append(km.Bindings, Binding(bc))
	}
	return km
}
