package style

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages named style presets. It is built once during process
// initialization and treated as read-only afterwards; a mutex serializes
// Register so late registration is also safe.
type Registry struct {
	mu      sync.RWMutex
	schema  *Schema
	presets map[string]*Preset
	order   []string
}

// NewRegistry creates an empty registry validating against schema.
// A nil schema means DefaultSchema.
func NewRegistry(schema *Schema) *Registry {
	if schema == nil {
		schema = DefaultSchema()
	}
	return &Registry{
		schema:  schema,
		presets: make(map[string]*Preset),
	}
}

// Schema returns the schema this registry validates against.
func (r *Registry) Schema() *Schema { return r.schema }

// Register validates a raw preset definition and stores an immutable copy
// under name. Every key must be recognized by the schema and every value
// must pass its kind and range checks; failures wrap ErrSchemaViolation.
// Registering an existing name wraps ErrDuplicateName. Register either
// fully commits the preset or commits nothing.
func (r *Registry) Register(name string, options map[string]any) error {
	if name == "" {
		return fmt.Errorf("%w: preset name cannot be empty", ErrSchemaViolation)
	}

	// Validate and normalize everything before touching registry state, so
	// a failing definition leaves no partial preset behind.
	keys := make([]string, 0, len(options))
	opts := make(map[string]any, len(options))
	for key, raw := range options {
		normalized, err := r.schema.Normalize(key, raw)
		if err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		keys = append(keys, key)
		opts[key] = normalized
	}
	sort.Strings(keys)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.presets[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	r.presets[name] = &Preset{name: name, keys: keys, opts: opts}
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a preset by name.
func (r *Registry) Get(name string) (*Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	preset, exists := r.presets[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return preset, nil
}

// Names returns all registered preset names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}
