// Package extensions collects theme entries from sections the style catalog
// does not own. Entries are stored as `section.key` → raw value and are never
// interpreted by the loader; ParseColor is offered to consumers that keep
// colors there, such as the `[imrad.colors]` section.
package extensions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"bennypowers.dev/imstyle/internal/collections"
	"bennypowers.dev/imstyle/internal/style"
	"github.com/mazznoer/csscolorparser"
)

// Sink receives extension entries during a theme load
type Sink interface {
	Set(key, value string)
}

// Map is a Sink backed by a map
type Map map[string]string

// Set stores value under key, replacing earlier values
func (m Map) Set(key, value string) {
	m[key] = value
}

// Key joins a section and an entry key the way the loader does
func Key(section, key string) string {
	return section + "." + key
}

// Section returns the entries of one section with the "section." prefix
// removed
func (m Map) Section(section string) map[string]string {
	prefix := section + "."
	out := make(map[string]string)
	for k, v := range m {
		if name, ok := strings.CutPrefix(k, prefix); ok {
			out[name] = v
		}
	}
	return out
}

// Keys returns all keys in sorted order
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sections returns the distinct section names in sorted order. A key is
// split at its last dot, so entry keys must not contain dots themselves.
func (m Map) Sections() []string {
	sections := collections.NewSet[string]()
	for k := range m {
		if i := strings.LastIndexByte(k, '.'); i >= 0 {
			sections.Add(k[:i])
		}
	}
	return collections.Sorted(sections)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(key, value string)

// Set calls f
func (f SinkFunc) Set(key, value string) {
	f(key, value)
}

// ParseColor reads an extension color value. Four whitespace separated
// integers are taken as 0-255 RGBA, matching the [colors] section; anything
// else is parsed as a CSS color literal (hex, rgb(), hsl(), named colors).
func ParseColor(value string) (style.Color, error) {
	value = strings.TrimSpace(value)
	if c, ok := parseRGBA255(value); ok {
		return c, nil
	}

	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return style.Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return style.Color{
		R: float32(parsed.R),
		G: float32(parsed.G),
		B: float32(parsed.B),
		A: float32(parsed.A),
	}, nil
}

func parseRGBA255(value string) (style.Color, bool) {
	fields := strings.Fields(value)
	if len(fields) != 4 {
		return style.Color{}, false
	}
	var ch [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return style.Color{}, false
		}
		ch[i] = n
	}
	return style.ColorFrom255(ch[0], ch[1], ch[2], ch[3]), true
}
