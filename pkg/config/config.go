// Package config loads style preset definitions from YAML, TOML or JSON
// files and feeds them, validated, into a style registry.
package config

import (
	"fmt"
	"sort"

	"github.com/plotkit/stylebook/pkg/style"
)

// PresetDef is one preset entry in a config file. Options use the same
// dotted keys the registry schema recognizes. Inherit names a previously
// registered preset (typically a built-in) whose options form the base;
// entries in Options override it.
type PresetDef struct {
	Inherit string         `yaml:"inherit,omitempty" toml:"inherit,omitempty" json:"inherit,omitempty"`
	Options map[string]any `yaml:"options,omitempty" toml:"options,omitempty" json:"options,omitempty"`
}

// Config represents a full preset config file.
type Config struct {
	Presets map[string]PresetDef `yaml:"presets" toml:"presets" json:"presets"`
}

// LoadFile loads a config file, picking the loader by file extension.
func LoadFile(path string) (*Config, error) {
	registry := NewLoaderRegistry()
	return registry.Load(path)
}

func (c *Config) setDefaults() {
	for name, def := range c.Presets {
		if def.Options == nil {
			def.Options = make(map[string]any)
			c.Presets[name] = def
		}
	}
}

// Validate checks the structural shape of the config. Option keys and
// values are checked later, by the registry schema, during Apply.
func (c *Config) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("at least one preset is required")
	}

	for name, def := range c.Presets {
		if name == "" {
			return fmt.Errorf("preset name cannot be empty")
		}
		if def.Inherit == "" && len(def.Options) == 0 {
			return fmt.Errorf("preset %q: either inherit or options is required", name)
		}
	}
	return nil
}

// Apply registers every preset in the config into reg, resolving
// inheritance against presets already registered there. Presets are
// applied in name order so results do not depend on map iteration.
// Validation failures surface the registry's schema errors unchanged.
func (c *Config) Apply(reg *style.Registry) error {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := c.Presets[name]

		options := make(map[string]any, len(def.Options))
		if def.Inherit != "" {
			base, err := reg.Get(def.Inherit)
			if err != nil {
				return fmt.Errorf("preset %q inherits %q: %w", name, def.Inherit, err)
			}
			options = base.Options()
		}
		for key, v := range def.Options {
			options[key] = v
		}

		if err := reg.Register(name, options); err != nil {
			return err
		}
	}
	return nil
}
