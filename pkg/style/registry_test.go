package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() map[string]any {
	return map[string]any{
		"lines.linewidth": 2.0,
		"font.size":       14.0,
		"xtick.direction": "in",
		"figure.figsize":  []float64{8, 6},
		"axes.colorcycle": []string{"#1f77b4", "#ff7f0e"},
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("registers valid preset", func(t *testing.T) {
		reg := NewRegistry(nil)

		err := reg.Register("test", validDefinition())
		require.NoError(t, err)

		assert.Contains(t, reg.Names(), "test")
	})

	t.Run("round-trips definition through Get", func(t *testing.T) {
		reg := NewRegistry(nil)

		require.NoError(t, reg.Register("test", validDefinition()))

		preset, err := reg.Get("test")
		require.NoError(t, err)

		assert.Equal(t, "test", preset.Name())
		assert.Equal(t, map[string]any{
			"lines.linewidth": 2.0,
			"font.size":       14.0,
			"xtick.direction": "in",
			"figure.figsize":  [2]float64{8, 6},
			"axes.colorcycle": []string{"#1f77b4", "#ff7f0e"},
		}, preset.Options())
	})

	t.Run("prevents duplicate registration", func(t *testing.T) {
		reg := NewRegistry(nil)

		require.NoError(t, reg.Register("test", map[string]any{"font.size": 16.0}))

		err := reg.Register("test", map[string]any{"font.size": 12.0})
		require.ErrorIs(t, err, ErrDuplicateName)

		// The failed attempt must not disturb the first preset.
		preset, err := reg.Get("test")
		require.NoError(t, err)
		v, ok := preset.Lookup("font.size")
		require.True(t, ok)
		assert.Equal(t, 16.0, v)
	})

	t.Run("rejects unrecognized key and commits nothing", func(t *testing.T) {
		reg := NewRegistry(nil)

		err := reg.Register("test", map[string]any{
			"font.size":    16.0,
			"bogus.option": 1.0,
		})
		require.ErrorIs(t, err, ErrSchemaViolation)
		assert.Empty(t, reg.Names())
	})

	t.Run("rejects non-hex color cycle entry", func(t *testing.T) {
		reg := NewRegistry(nil)

		err := reg.Register("test", map[string]any{
			"axes.colorcycle": []string{"#1f77b4", "blue"},
		})
		require.ErrorIs(t, err, ErrSchemaViolation)
		assert.Empty(t, reg.Names())
	})

	t.Run("rejects empty color cycle", func(t *testing.T) {
		reg := NewRegistry(nil)

		err := reg.Register("test", map[string]any{"axes.colorcycle": []string{}})
		require.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		reg := NewRegistry(nil)

		err := reg.Register("", map[string]any{"font.size": 16.0})
		require.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("copies definition on register", func(t *testing.T) {
		reg := NewRegistry(nil)

		def := map[string]any{
			"font.size":       16.0,
			"axes.colorcycle": []string{"#1f77b4", "#ff7f0e"},
		}
		require.NoError(t, reg.Register("test", def))

		// Mutating the caller's map and slice after registration must not
		// leak into the stored preset.
		def["font.size"] = 99.0
		def["axes.colorcycle"].([]string)[0] = "#000000"

		preset, err := reg.Get("test")
		require.NoError(t, err)

		v, _ := preset.Lookup("font.size")
		assert.Equal(t, 16.0, v)
		cycle, ok := preset.ColorCycle()
		require.True(t, ok)
		assert.Equal(t, []string{"#1f77b4", "#ff7f0e"}, cycle)
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Run("retrieves registered preset", func(t *testing.T) {
		reg := NewRegistry(nil)

		require.NoError(t, reg.Register("test", validDefinition()))

		preset, err := reg.Get("test")
		require.NoError(t, err)
		assert.Equal(t, "test", preset.Name())
	})

	t.Run("returns ErrNotFound on empty registry", func(t *testing.T) {
		reg := NewRegistry(nil)

		_, err := reg.Get("missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lookups do not alias preset state", func(t *testing.T) {
		reg := NewRegistry(nil)

		require.NoError(t, reg.Register("test", map[string]any{
			"axes.colorcycle": []string{"#1f77b4", "#ff7f0e"},
		}))

		preset, err := reg.Get("test")
		require.NoError(t, err)

		first, ok := preset.ColorCycle()
		require.True(t, ok)
		first[0] = "#ffffff"

		second, _ := preset.ColorCycle()
		assert.Equal(t, "#1f77b4", second[0])
	})
}

func TestRegistry_Names(t *testing.T) {
	t.Run("empty registry has no names", func(t *testing.T) {
		reg := NewRegistry(nil)
		assert.Empty(t, reg.Names())
	})

	t.Run("preserves registration order", func(t *testing.T) {
		reg := NewRegistry(nil)

		require.NoError(t, reg.Register("a", map[string]any{"font.size": 16.0}))
		require.NoError(t, reg.Register("b", map[string]any{"font.size": 12.0}))

		assert.Equal(t, []string{"a", "b"}, reg.Names())
		// Repeatable with the same result.
		assert.Equal(t, []string{"a", "b"}, reg.Names())
	})

	t.Run("failed registration leaves order untouched", func(t *testing.T) {
		reg := NewRegistry(nil)

		require.NoError(t, reg.Register("a", map[string]any{"font.size": 16.0}))
		require.Error(t, reg.Register("x", map[string]any{"bogus": 1}))

		assert.Equal(t, []string{"a"}, reg.Names())
	})
}
