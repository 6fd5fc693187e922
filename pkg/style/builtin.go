package style

// Built-in presets. All three share the same base geometry and differ only
// in color cycle and tick/spine visibility.

// baseOptions returns the shared option set: 1.5pt lines, 16pt base font,
// inward ticks on all sides, tight PNG output.
func baseOptions() map[string]any {
	return map[string]any{
		"lines.linewidth":   1.5,
		"lines.antialiased": true,

		"font.size": 16.0,

		"axes.linewidth":     1.5,
		"axes.titlesize":     "x-large",
		"axes.labelsize":     "large",
		"axes.spines.top":    true,
		"axes.spines.right":  true,
		"axes.spines.bottom": true,
		"axes.spines.left":   true,

		"xtick.major.size":  6.0,
		"xtick.minor.size":  4.0,
		"xtick.major.width": 1.5,
		"xtick.minor.width": 1.5,
		"xtick.major.pad":   6.0,
		"xtick.minor.pad":   6.0,
		"xtick.labelsize":   "medium",
		"xtick.direction":   "in",
		"xtick.top":         true,
		"xtick.bottom":      true,

		"ytick.major.size":  6.0,
		"ytick.minor.size":  4.0,
		"ytick.major.width": 1.5,
		"ytick.minor.width": 1.5,
		"ytick.major.pad":   6.0,
		"ytick.minor.pad":   6.0,
		"ytick.labelsize":   "medium",
		"ytick.direction":   "in",
		"ytick.left":        true,
		"ytick.right":       true,

		"legend.fancybox":      true,
		"legend.fontsize":      "large",
		"legend.scatterpoints": 5.0,
		"legend.loc":           "best",

		"figure.figsize":   []float64{8, 6},
		"figure.titlesize": "large",

		"image.cmap":   "magma",
		"image.origin": "lower",

		"savefig.bbox":   "tight",
		"savefig.format": "png",
	}
}

func withOverrides(overrides map[string]any) map[string]any {
	opts := baseOptions()
	for key, v := range overrides {
		opts[key] = v
	}
	return opts
}

// BuiltinDefinitions returns the raw definitions of the built-in presets
// keyed by name: "classic" (full box, ticks mirrored on all sides),
// "minimal" (open top/right, outward ticks) and "bright" (high-saturation
// palette on the classic geometry).
func BuiltinDefinitions() map[string]map[string]any {
	return map[string]map[string]any{
		"classic": withOverrides(map[string]any{
			"axes.colorcycle": []string{
				"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
				"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
			},
		}),
		"minimal": withOverrides(map[string]any{
			"axes.colorcycle": []string{
				"#4878d0", "#ee854a", "#6acc64", "#d65f5f", "#956cb4",
				"#8c613c", "#dc7ec0", "#797979", "#d5bb67", "#82c6e2",
			},
			"axes.spines.top":   false,
			"axes.spines.right": false,
			"xtick.direction":   "out",
			"ytick.direction":   "out",
			"xtick.top":         false,
			"ytick.right":       false,
		}),
		"bright": withOverrides(map[string]any{
			"axes.colorcycle": []string{
				"#023eff", "#ff7c00", "#1ac938", "#e8000b", "#8b2be2",
				"#9f4800", "#f14cc1", "#a3a3a3", "#ffc400", "#00d7ff",
			},
			"xtick.top":   false,
			"ytick.right": false,
		}),
	}
}

// builtinOrder fixes the registration order of the built-in presets.
var builtinOrder = []string{"classic", "minimal", "bright"}

// DefaultRegistry returns a new registry pre-populated with the built-in
// presets. It panics only if a built-in definition fails its own schema,
// which is a programming error.
func DefaultRegistry() *Registry {
	reg := NewRegistry(nil)
	defs := BuiltinDefinitions()
	for _, name := range builtinOrder {
		if err := reg.Register(name, defs[name]); err != nil {
			panic("style: invalid built-in preset: " + err.Error())
		}
	}
	return reg
}
