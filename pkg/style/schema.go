package style

import (
	"fmt"
	"regexp"
	"sort"
)

// Kind identifies the value kind an option accepts.
type Kind int

const (
	// KindNumber is a positive numeric value (widths, sizes, pads).
	KindNumber Kind = iota
	// KindBool is a boolean flag (visibility, antialiasing).
	KindBool
	// KindEnum is a string restricted to a fixed allowed set.
	KindEnum
	// KindString is a free-form string (colormap names).
	KindString
	// KindPair is an ordered pair of positive numbers (figure size).
	KindPair
	// KindColorCycle is a non-empty ordered list of #RRGGBB color strings.
	KindColorCycle
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindString:
		return "string"
	case KindPair:
		return "pair"
	case KindColorCycle:
		return "color cycle"
	default:
		return "unknown"
	}
}

// OptionSpec describes the accepted value for a single option key.
type OptionSpec struct {
	Kind Kind
	Enum []string // allowed values when Kind is KindEnum
}

// Schema is the fixed set of recognized option keys. Definitions are
// validated against it at registration time; unknown keys are rejected,
// never passed through.
type Schema struct {
	specs map[string]OptionSpec
}

// NewSchema builds a schema from a spec table. Extending the recognized
// option set means adding entries here, not bypassing validation.
func NewSchema(specs map[string]OptionSpec) *Schema {
	copied := make(map[string]OptionSpec, len(specs))
	for key, spec := range specs {
		copied[key] = spec
	}
	return &Schema{specs: copied}
}

// Named font sizes accepted wherever a text size option takes a keyword.
var fontSizes = []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large"}

var legendLocations = []string{
	"best",
	"upper right", "upper left", "lower left", "lower right",
	"right", "center left", "center right", "lower center", "upper center",
	"center",
}

var tickDirections = []string{"in", "out", "inout"}

// DefaultSchema returns the schema of recognized plotting options: line,
// font, axes, tick, legend, figure, image and save-output families.
func DefaultSchema() *Schema {
	specs := map[string]OptionSpec{
		"lines.linewidth":   {Kind: KindNumber},
		"lines.antialiased": {Kind: KindBool},

		"font.size": {Kind: KindNumber},

		"axes.linewidth":     {Kind: KindNumber},
		"axes.titlesize":     {Kind: KindEnum, Enum: fontSizes},
		"axes.labelsize":     {Kind: KindEnum, Enum: fontSizes},
		"axes.spines.top":    {Kind: KindBool},
		"axes.spines.right":  {Kind: KindBool},
		"axes.spines.bottom": {Kind: KindBool},
		"axes.spines.left":   {Kind: KindBool},
		"axes.colorcycle":    {Kind: KindColorCycle},

		"legend.fancybox":      {Kind: KindBool},
		"legend.fontsize":      {Kind: KindEnum, Enum: fontSizes},
		"legend.scatterpoints": {Kind: KindNumber},
		"legend.loc":           {Kind: KindEnum, Enum: legendLocations},

		"figure.figsize":   {Kind: KindPair},
		"figure.titlesize": {Kind: KindEnum, Enum: fontSizes},

		"image.cmap":   {Kind: KindString},
		"image.origin": {Kind: KindEnum, Enum: []string{"upper", "lower"}},

		"savefig.bbox":   {Kind: KindEnum, Enum: []string{"tight", "standard"}},
		"savefig.format": {Kind: KindEnum, Enum: []string{"png", "pdf", "svg", "eps"}},
	}

	for axis, sides := range map[string][]string{
		"xtick": {"top", "bottom"},
		"ytick": {"left", "right"},
	} {
		specs[axis+".major.size"] = OptionSpec{Kind: KindNumber}
		specs[axis+".minor.size"] = OptionSpec{Kind: KindNumber}
		specs[axis+".major.width"] = OptionSpec{Kind: KindNumber}
		specs[axis+".minor.width"] = OptionSpec{Kind: KindNumber}
		specs[axis+".major.pad"] = OptionSpec{Kind: KindNumber}
		specs[axis+".minor.pad"] = OptionSpec{Kind: KindNumber}
		specs[axis+".labelsize"] = OptionSpec{Kind: KindEnum, Enum: fontSizes}
		specs[axis+".direction"] = OptionSpec{Kind: KindEnum, Enum: tickDirections}
		for _, side := range sides {
			specs[axis+"."+side] = OptionSpec{Kind: KindBool}
		}
	}

	return NewSchema(specs)
}

// Keys returns all recognized option keys in sorted order.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.specs))
	for key := range s.specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the spec for key, if key is recognized.
func (s *Schema) Lookup(key string) (OptionSpec, bool) {
	spec, ok := s.specs[key]
	return spec, ok
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Normalize validates a raw option value against the spec for key and
// returns its canonical form: float64, bool, string, [2]float64 or
// []string depending on the key's kind. All failures wrap
// ErrSchemaViolation.
func (s *Schema) Normalize(key string, raw any) (any, error) {
	spec, ok := s.specs[key]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized option %q", ErrSchemaViolation, key)
	}

	switch spec.Kind {
	case KindNumber:
		n, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: option %q expects a number, got %T", ErrSchemaViolation, key, raw)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: option %q must be positive, got %v", ErrSchemaViolation, key, n)
		}
		return n, nil

	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: option %q expects a bool, got %T", ErrSchemaViolation, key, raw)
		}
		return b, nil

	case KindEnum:
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: option %q expects a string, got %T", ErrSchemaViolation, key, raw)
		}
		for _, allowed := range spec.Enum {
			if str == allowed {
				return str, nil
			}
		}
		return nil, fmt.Errorf("%w: option %q does not accept %q (allowed: %v)", ErrSchemaViolation, key, str, spec.Enum)

	case KindString:
		str, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: option %q expects a string, got %T", ErrSchemaViolation, key, raw)
		}
		if str == "" {
			return nil, fmt.Errorf("%w: option %q cannot be empty", ErrSchemaViolation, key)
		}
		return str, nil

	case KindPair:
		nums, ok := toFloatSlice(raw)
		if !ok || len(nums) != 2 {
			return nil, fmt.Errorf("%w: option %q expects a pair of numbers, got %v", ErrSchemaViolation, key, raw)
		}
		if nums[0] <= 0 || nums[1] <= 0 {
			return nil, fmt.Errorf("%w: option %q must be a pair of positive numbers, got %v", ErrSchemaViolation, key, nums)
		}
		return [2]float64{nums[0], nums[1]}, nil

	case KindColorCycle:
		colors, ok := toStringSlice(raw)
		if !ok {
			return nil, fmt.Errorf("%w: option %q expects a list of color strings, got %T", ErrSchemaViolation, key, raw)
		}
		if len(colors) == 0 {
			return nil, fmt.Errorf("%w: option %q cannot be an empty color cycle", ErrSchemaViolation, key)
		}
		for _, c := range colors {
			if !hexColorPattern.MatchString(c) {
				return nil, fmt.Errorf("%w: option %q contains %q, want #RRGGBB", ErrSchemaViolation, key, c)
			}
		}
		return colors, nil

	default:
		return nil, fmt.Errorf("%w: option %q has unsupported kind %v", ErrSchemaViolation, key, spec.Kind)
	}
}

// toFloat accepts the numeric representations produced by the YAML, TOML
// and JSON decoders as well as literal Go numbers.
func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toFloatSlice(raw any) ([]float64, bool) {
	switch vs := raw.(type) {
	case []float64:
		return append([]float64(nil), vs...), true
	case [2]float64:
		return []float64{vs[0], vs[1]}, true
	case []int:
		out := make([]float64, len(vs))
		for i, v := range vs {
			out[i] = float64(v)
		}
		return out, true
	case []any:
		out := make([]float64, len(vs))
		for i, v := range vs {
			n, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

func toStringSlice(raw any) ([]string, bool) {
	switch vs := raw.(type) {
	case []string:
		return append([]string(nil), vs...), true
	case []any:
		out := make([]string, len(vs))
		for i, v := range vs {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
