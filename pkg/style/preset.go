// Package style provides a validated registry of named plotting style
// presets. A preset is an immutable mapping from dotted option keys
// (e.g. "xtick.major.size") to rendering option values, checked against a
// fixed schema before it is accepted. The flat mapping a preset exposes is
// the hand-off shape consumed by an external rendering engine.
package style

// Preset is a named, immutable bundle of rendering options. Presets are
// constructed by Registry.Register and never mutated afterwards; accessors
// return copies so callers cannot alias internal state.
type Preset struct {
	name string
	keys []string // sorted
	opts map[string]any
}

// Name returns the preset's registered name.
func (p *Preset) Name() string { return p.name }

// Len returns the number of options in the preset.
func (p *Preset) Len() int { return len(p.keys) }

// Keys returns the preset's option keys in sorted order.
func (p *Preset) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Lookup returns the normalized value for key. Values are float64, bool,
// string, [2]float64 or []string depending on the option's kind. The
// returned value is a copy; mutating it does not affect the preset.
func (p *Preset) Lookup(key string) (any, bool) {
	v, ok := p.opts[key]
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// Options returns the preset's full option mapping, the flat shape handed
// to the rendering engine. The map and any slice values are fresh copies.
func (p *Preset) Options() map[string]any {
	out := make(map[string]any, len(p.opts))
	for key, v := range p.opts {
		out[key] = copyValue(v)
	}
	return out
}

// ColorCycle returns the preset's color cycle, if it declares one.
func (p *Preset) ColorCycle() ([]string, bool) {
	v, ok := p.opts["axes.colorcycle"]
	if !ok {
		return nil, false
	}
	colors, ok := v.([]string)
	if !ok {
		return nil, false
	}
	return append([]string(nil), colors...), true
}

func copyValue(v any) any {
	if colors, ok := v.([]string); ok {
		return append([]string(nil), colors...)
	}
	// float64, bool, string and [2]float64 are value types.
	return v
}
