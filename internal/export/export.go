// Package export writes a style preset in the flat key/value shapes a
// rendering engine or its config file consumes.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/plotkit/stylebook/pkg/style"
)

// Format identifies an output encoding.
type Format string

const (
	// FormatRC is the renderer's native "key: value" line format.
	FormatRC   Format = "rc"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "rc":
		return FormatRC, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want rc, json, yaml or toml)", name)
	}
}

// Write encodes preset to w in the given format.
func Write(w io.Writer, preset *style.Preset, format Format) error {
	switch format {
	case FormatRC:
		return writeRC(w, preset)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(preset.Options())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(preset.Options())
	case FormatTOML:
		return toml.NewEncoder(w).Encode(preset.Options())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeRC emits one "key: value" line per option, in the preset's key
// order.
func writeRC(w io.Writer, preset *style.Preset) error {
	for _, key := range preset.Keys() {
		v, _ := preset.Lookup(key)
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, formatRCValue(v)); err != nil {
			return err
		}
	}
	return nil
}

func formatRCValue(v any) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case [2]float64:
		return formatRCValue(val[0]) + ", " + formatRCValue(val[1])
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
