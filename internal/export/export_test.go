package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/plotkit/stylebook/pkg/style"
)

func testPreset(t *testing.T) *style.Preset {
	t.Helper()
	reg := style.NewRegistry(nil)
	require.NoError(t, reg.Register("test", map[string]any{
		"lines.linewidth":   1.5,
		"lines.antialiased": true,
		"xtick.direction":   "in",
		"figure.figsize":    []float64{8, 6},
		"axes.colorcycle":   []string{"#1f77b4", "#ff7f0e"},
	}))
	preset, err := reg.Get("test")
	require.NoError(t, err)
	return preset
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"rc":   FormatRC,
		"json": FormatJSON,
		"yaml": FormatYAML,
		"yml":  FormatYAML,
		"TOML": FormatTOML,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestWrite_RC(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testPreset(t), FormatRC))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"axes.colorcycle: #1f77b4, #ff7f0e",
		"figure.figsize: 8, 6",
		"lines.antialiased: true",
		"lines.linewidth: 1.5",
		"xtick.direction: in",
	}, lines)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testPreset(t), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1.5, decoded["lines.linewidth"])
	assert.Equal(t, []any{8.0, 6.0}, decoded["figure.figsize"])
	assert.Equal(t, []any{"#1f77b4", "#ff7f0e"}, decoded["axes.colorcycle"])
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testPreset(t), FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1.5, decoded["lines.linewidth"])
	assert.Equal(t, true, decoded["lines.antialiased"])
}

func TestWrite_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testPreset(t), FormatTOML))

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1.5, decoded["lines.linewidth"])
	assert.Equal(t, "in", decoded["xtick.direction"])
}
