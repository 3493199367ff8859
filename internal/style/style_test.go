package style_test

import (
	"testing"

	"bennypowers.dev/imstyle/internal/collections"
	"bennypowers.dev/imstyle/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorCatalog(t *testing.T) {
	names := style.ColorNames()
	require.Len(t, names, style.ColorCount)

	t.Run("names are unique", func(t *testing.T) {
		assert.Len(t, collections.NewSet(names...), style.ColorCount)
	})

	t.Run("constants line up with names", func(t *testing.T) {
		assert.Equal(t, "Text", style.ColorName(style.ColorText))
		assert.Equal(t, "WindowBg", style.ColorName(style.ColorWindowBg))
		assert.Equal(t, "TabUnfocusedActive", style.ColorName(style.ColorTabUnfocusedActive))
		assert.Equal(t, "ModalWindowDimBg", style.ColorName(style.ColorModalWindowDimBg))
		assert.Equal(t, "ModalWindowDimBg", names[style.ColorCount-1])
	})

	t.Run("out of range", func(t *testing.T) {
		assert.Equal(t, "", style.ColorName(-1))
		assert.Equal(t, "", style.ColorName(style.ColorIndex(style.ColorCount)))
		assert.False(t, style.ColorIndex(style.ColorCount).Valid())
	})

	t.Run("returned names are a copy", func(t *testing.T) {
		names[0] = "Mutated"
		assert.Equal(t, "Text", style.ColorName(0))
	})
}

func TestFindColorFrom(t *testing.T) {
	t.Run("from the start", func(t *testing.T) {
		i, ok := style.FindColorFrom("Border", -1)
		require.True(t, ok)
		assert.Equal(t, style.ColorBorder, i)
	})

	t.Run("wraps around behind the previous match", func(t *testing.T) {
		i, ok := style.FindColorFrom("Text", style.ColorPlotLines)
		require.True(t, ok)
		assert.Equal(t, style.ColorText, i)
	})

	t.Run("previous match itself is reachable", func(t *testing.T) {
		i, ok := style.FindColorFrom("Button", style.ColorButton)
		require.True(t, ok)
		assert.Equal(t, style.ColorButton, i)
	})

	t.Run("after the last slot", func(t *testing.T) {
		i, ok := style.FindColorFrom("Text", style.ColorModalWindowDimBg)
		require.True(t, ok)
		assert.Equal(t, style.ColorText, i)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := style.FindColorFrom("Sparkle", style.ColorTab)
		assert.False(t, ok)
		_, ok = style.FindColorFrom("Sparkle", -1)
		assert.False(t, ok)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		_, ok := style.FindColorFrom("text", -1)
		assert.False(t, ok)
	})
}

func TestColorConversions(t *testing.T) {
	t.Run("RGBA255 truncates", func(t *testing.T) {
		r, g, b, a := style.Color{R: 1, G: 0.5, B: 0.999, A: 0}.RGBA255()
		assert.Equal(t, 255, r)
		assert.Equal(t, 127, g)
		assert.Equal(t, 254, b)
		assert.Equal(t, 0, a)
	})

	t.Run("ColorFrom255", func(t *testing.T) {
		c := style.ColorFrom255(255, 0, 51, 255)
		assert.InDelta(t, 1.0, c.R, 1e-6)
		assert.InDelta(t, 0.0, c.G, 1e-6)
		assert.InDelta(t, 0.2, c.B, 1e-6)
		assert.InDelta(t, 1.0, c.A, 1e-6)
	})
}

func TestDefault(t *testing.T) {
	s := style.Default()
	assert.Equal(t, float32(1), s.Alpha)
	assert.Equal(t, style.Vec2{X: 8, Y: 8}, s.WindowPadding)
	assert.Equal(t, float32(14), s.ScrollbarSize)
	assert.Equal(t, style.Color{R: 1, G: 1, B: 1, A: 1}, s.Color(style.ColorText))

	t.Run("every slot has a value", func(t *testing.T) {
		for i := 0; i < style.ColorCount; i++ {
			c := s.Colors[i]
			for _, v := range []float32{c.R, c.G, c.B, c.A} {
				assert.GreaterOrEqual(t, v, float32(0), style.ColorName(style.ColorIndex(i)))
				assert.LessOrEqual(t, v, float32(1), style.ColorName(style.ColorIndex(i)))
			}
		}
	})

	t.Run("Reset restores defaults", func(t *testing.T) {
		mutated := style.Default()
		mutated.Alpha = 0.1
		mutated.SetColor(style.ColorText, style.Color{})
		mutated.Reset()
		assert.Equal(t, style.Default(), mutated)
	})
}

func TestVariableCatalog(t *testing.T) {
	t.Run("scalar lookup and set", func(t *testing.T) {
		v, ok := style.LookupVariable("WindowRounding")
		require.True(t, ok)
		assert.Equal(t, style.Scalar, v.Kind)

		s := style.Default()
		assert.True(t, v.Set(&s, []float32{6}))
		assert.Equal(t, float32(6), s.WindowRounding)
		assert.Equal(t, []float32{6}, v.Values(&s))
	})

	t.Run("vector lookup and set", func(t *testing.T) {
		v, ok := style.LookupVariable("ItemSpacing")
		require.True(t, ok)
		assert.Equal(t, style.Vector, v.Kind)
		assert.Equal(t, 2, v.Kind.Components())

		s := style.Default()
		assert.True(t, v.Set(&s, []float32{10, 12}))
		assert.Equal(t, style.Vec2{X: 10, Y: 12}, s.ItemSpacing)
	})

	t.Run("wrong arity is rejected", func(t *testing.T) {
		v, _ := style.LookupVariable("ItemSpacing")
		s := style.Default()
		assert.False(t, v.Set(&s, []float32{10}))
		assert.Equal(t, style.Vec2{X: 8, Y: 4}, s.ItemSpacing)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		_, ok := style.LookupVariable("itemspacing")
		assert.False(t, ok)
		_, ok = style.LookupVariable("HoverDelay")
		assert.False(t, ok)
	})

	t.Run("catalog names are unique", func(t *testing.T) {
		names := collections.NewSet[string]()
		for _, v := range style.Variables() {
			assert.False(t, names.Has(v.Name), v.Name)
			names.Add(v.Name)
		}
	})
}

func TestSavedVariables(t *testing.T) {
	saved := style.SavedVariables()
	require.Len(t, saved, 22)
	assert.Equal(t, "Alpha", saved[0].Name)
	assert.Equal(t, "TabBorderSize", saved[len(saved)-1].Name)

	for _, v := range saved {
		_, ok := style.LookupVariable(v.Name)
		assert.True(t, ok, v.Name)
	}
}
