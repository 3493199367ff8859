package tokens_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"bennypowers.dev/imstyle/internal/style"
	"bennypowers.dev/imstyle/internal/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffffffff", tokens.Hex(style.Color{R: 1, G: 1, B: 1, A: 1}))
	assert.Equal(t, "#0f0f0fef", tokens.Hex(style.Color{R: 0.06, G: 0.06, B: 0.06, A: 0.94}))
	assert.Equal(t, "#00000000", tokens.Hex(style.Color{}))
}

func TestFromStyle(t *testing.T) {
	s := style.Default()
	doc := tokens.FromStyle(&s)

	colors, ok := doc[tokens.ColorGroup].(map[string]any)
	require.True(t, ok)
	assert.Len(t, colors, style.ColorCount)
	assert.Equal(t, tokens.Token{Type: "color", Value: "#ffffffff"}, colors["Text"])

	spacing, ok := doc[tokens.SpacingGroup].(map[string]any)
	require.True(t, ok)
	assert.Len(t, spacing, len(style.SavedVariables()))
	assert.Equal(t, tokens.Token{Type: "number", Value: float32(1)}, spacing["Alpha"])

	padding, ok := spacing["WindowPadding"].(map[string]any)
	require.True(t, ok, "vectors are split into groups")
	assert.Equal(t, tokens.Token{Type: "number", Value: float32(8)}, padding["x"])
	assert.Equal(t, tokens.Token{Type: "number", Value: float32(8)}, padding["y"])
}

func TestEncodeJSON(t *testing.T) {
	s := style.Default()
	var buf bytes.Buffer
	require.NoError(t, tokens.EncodeJSON(&buf, tokens.FromStyle(&s)))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	text, ok := decoded["color"]["Text"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "color", text["$type"])
	assert.Equal(t, "#ffffffff", text["$value"])
}

func TestEncodeYAML(t *testing.T) {
	s := style.Default()
	var buf bytes.Buffer
	require.NoError(t, tokens.EncodeYAML(&buf, tokens.FromStyle(&s)))
	assert.Contains(t, buf.String(), "$type: color")

	var decoded map[string]map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "#ffffffff", decoded["color"]["Text"]["$value"])
	assert.Equal(t, "number", decoded["spacing"]["Alpha"]["$type"])
}

func TestImport(t *testing.T) {
	t.Run("applies color tokens", func(t *testing.T) {
		data := []byte(`{
  "color": {
    "Text": { "$type": "color", "$value": "#ff0000" },
    "WindowBg": { "$type": "color", "$value": "rgba(0, 0, 255, 0.5)" },
    "Bogus": { "$type": "color", "$value": "#00ff00" },
    "Button": { "$type": "color", "$value": "not-a-color" }
  },
  "spacing": {
    "Alpha": { "$type": "number", "$value": 0.5 }
  }
}`)
		s := style.Default()
		n, err := tokens.Import(data, &s)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, style.Color{R: 1, G: 0, B: 0, A: 1}, s.Color(style.ColorText))
		assert.InDelta(t, 1, s.Color(style.ColorWindowBg).B, 1e-6)
		assert.InDelta(t, 0.5, s.Color(style.ColorWindowBg).A, 1e-6)
		assert.Equal(t, style.Default().Color(style.ColorButton), s.Color(style.ColorButton))
		assert.Equal(t, float32(1), s.Alpha, "spacing tokens are not imported")
	})

	t.Run("round trips an export", func(t *testing.T) {
		src := style.Default()
		src.SetColor(style.ColorButton, style.ColorFrom255(10, 20, 30, 40))
		var buf bytes.Buffer
		require.NoError(t, tokens.EncodeJSON(&buf, tokens.FromStyle(&src)))

		var dst style.Style
		dst.Reset()
		n, err := tokens.Import(buf.Bytes(), &dst)
		require.NoError(t, err)
		assert.Equal(t, style.ColorCount, n)
		want, got := src.Color(style.ColorButton), dst.Color(style.ColorButton)
		assert.InDelta(t, want.R, got.R, 1.0/255+1e-6)
		assert.InDelta(t, want.G, got.G, 1.0/255+1e-6)
		assert.InDelta(t, want.B, got.B, 1.0/255+1e-6)
		assert.InDelta(t, want.A, got.A, 1.0/255+1e-6)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		s := style.Default()
		_, err := tokens.Import([]byte(`{"color": `), &s)
		assert.Error(t, err)
	})
}
