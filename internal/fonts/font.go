// Package fonts provides the font side of theme loading: the Loader and
// DefaultProvider capabilities the parser calls, a file-backed Atlas that
// implements both, and the Registry that maps theme font keys to handles.
package fonts

import (
	"errors"
	"fmt"
)

// DefaultSize is the pixel size used when a font record omits `size`
const DefaultSize float32 = 20

var (
	// ErrNotAFont indicates the file does not carry a TrueType/OpenType signature
	ErrNotAFont = errors.New("not a TrueType or OpenType font")

	// ErrNoMergeTarget indicates a merge record arrived before any font was added
	ErrNoMergeTarget = errors.New("merge mode requires a previously added font")
)

// FontConfig describes one font record handed to a Loader
type FontConfig struct {
	// Name is the record key from the theme file
	Name string

	// Path is the resolved font file path
	Path string

	// SizePixels is the final size, scaling already applied
	SizePixels float32

	// Ranges selects the glyph coverage; zero means the loader's default
	Ranges RangeHandle

	// MergeMode adds this file's glyphs to the previously added font
	MergeMode bool
}

// Source is one file contributing glyphs to a Font
type Source struct {
	Path       string
	SizePixels float32

	// Ranges is the zero-terminated buffer from the registry's arena, nil
	// for default coverage
	Ranges []rune
}

// Font is the opaque handle returned by a Loader
type Font struct {
	Name       string
	SizePixels float32
	Sources    []Source

	// Builtin marks the embedded fallback font
	Builtin bool
}

// String describes the font for listings
func (f *Font) String() string {
	if f == nil {
		return "<nil>"
	}
	if f.Builtin {
		return fmt.Sprintf("%s (builtin)", f.Name)
	}
	return fmt.Sprintf("%s %gpx, %d source(s)", f.Name, f.SizePixels, len(f.Sources))
}

// Loader loads one font record. In merge mode it returns the font the
// glyphs were merged into.
type Loader interface {
	AddFont(cfg FontConfig, arena *RangeArena) (*Font, error)
}

// DefaultProvider supplies the fallback font when a theme declares none
type DefaultProvider interface {
	AddFontDefault() *Font
}
