// Package tokens converts themes to and from DTCG design token documents
// (https://design-tokens.github.io/community-group/format/).
//
// Colors become `color.<Slot>` tokens with 8 digit hex values; variables
// become `spacing.<Name>` number tokens, vectors split into x and y children.
package tokens

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	asimonimParser "bennypowers.dev/asimonim/parser"
	asimonimSchema "bennypowers.dev/asimonim/schema"
	"bennypowers.dev/imstyle/internal/extensions"
	"bennypowers.dev/imstyle/internal/log"
	"bennypowers.dev/imstyle/internal/style"
	"gopkg.in/yaml.v3"
)

// Group names used in exported documents
const (
	ColorGroup   = "color"
	SpacingGroup = "spacing"
)

// Token is a single DTCG token
type Token struct {
	Type  string `json:"$type" yaml:"$type"`
	Value any    `json:"$value" yaml:"$value"`
}

// Document is a DTCG token tree: group name → token or nested group
type Document map[string]any

// FromStyle builds the token document for s
func FromStyle(s *style.Style) Document {
	colors := make(map[string]any, style.ColorCount)
	for i := 0; i < style.ColorCount; i++ {
		idx := style.ColorIndex(i)
		colors[style.ColorName(idx)] = Token{Type: "color", Value: Hex(s.Color(idx))}
	}

	spacing := make(map[string]any)
	for _, v := range style.SavedVariables() {
		vals := v.Values(s)
		if v.Kind == style.Vector {
			spacing[v.Name] = map[string]any{
				"x": Token{Type: "number", Value: vals[0]},
				"y": Token{Type: "number", Value: vals[1]},
			}
			continue
		}
		spacing[v.Name] = Token{Type: "number", Value: vals[0]}
	}

	return Document{
		ColorGroup:   colors,
		SpacingGroup: spacing,
	}
}

// Hex formats c as #rrggbbaa, truncating channels like theme files do
func Hex(c style.Color) string {
	r, g, b, a := c.RGBA255()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// EncodeJSON writes doc as indented JSON
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode tokens as JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes doc as YAML
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode tokens as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode tokens as YAML: %w", err)
	}
	return nil
}

// Import applies the color tokens of a DTCG JSON document to dst. Tokens are
// matched by name `color-<Slot>`; values may be any CSS color. Tokens that do
// not name a slot or whose value is not a color are skipped. It returns the
// number of slots assigned.
func Import(data []byte, dst *style.Style) (int, error) {
	parser := asimonimParser.NewJSONParser()
	parsed, err := parser.Parse(data, asimonimParser.Options{
		SchemaVersion: asimonimSchema.Draft,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to parse tokens: %w", err)
	}

	applied := 0
	for _, tok := range parsed {
		name := strings.ReplaceAll(tok.Name, ".", "-")
		slot, ok := strings.CutPrefix(name, ColorGroup+"-")
		if !ok {
			continue
		}
		idx, ok := lookupSlot(slot)
		if !ok {
			log.Debug("Token %s does not name a color slot", tok.Name)
			continue
		}
		c, err := extensions.ParseColor(tok.Value)
		if err != nil {
			log.Warn("Token %s: %v", tok.Name, err)
			continue
		}
		dst.SetColor(idx, c)
		applied++
	}
	return applied, nil
}

// lookupSlot matches exactly first, then ignoring case, since token tools
// often lowercase names
func lookupSlot(name string) (style.ColorIndex, bool) {
	if idx, ok := style.FindColorFrom(name, -1); ok {
		return idx, true
	}
	for i, n := range style.ColorNames() {
		if strings.EqualFold(n, name) {
			return style.ColorIndex(i), true
		}
	}
	return -1, false
}
