package fonts

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"bennypowers.dev/imstyle/internal/log"
)

const (
	defaultFontName = "ProggyClean.ttf, 13px"
	defaultFontSize = 13
)

var fontSignatures = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("OTTO"),
	[]byte("true"),
	[]byte("typ1"),
	[]byte("ttcf"),
}

type atlasEntry struct {
	cfg FontConfig
	dst *Font
}

// Atlas is a file-backed Loader and DefaultProvider. It keeps every config
// it was given, in order, so fonts can be looked up by record name later.
type Atlas struct {
	mu       sync.Mutex
	entries  []atlasEntry
	fonts    []*Font
	readFile func(string) ([]byte, error)
}

// NewAtlas creates an empty atlas reading font files from disk
func NewAtlas() *Atlas {
	return &Atlas{readFile: os.ReadFile}
}

// AddFont reads cfg.Path and either creates a new font or, in merge mode,
// appends the file as another source of the most recently added font
func (a *Atlas) AddFont(cfg FontConfig, arena *RangeArena) (*Font, error) {
	data, err := a.readFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", cfg.Path, err)
	}
	if !hasFontSignature(data) {
		return nil, fmt.Errorf("%s: %w", cfg.Path, ErrNotAFont)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	src := Source{
		Path:       cfg.Path,
		SizePixels: cfg.SizePixels,
		Ranges:     arena.Ranges(cfg.Ranges),
	}

	var dst *Font
	if cfg.MergeMode {
		if len(a.fonts) == 0 {
			return nil, fmt.Errorf("%s: %w", cfg.Name, ErrNoMergeTarget)
		}
		dst = a.fonts[len(a.fonts)-1]
		dst.Sources = append(dst.Sources, src)
		log.Debug("Merged %s into font %q", cfg.Path, dst.Name)
	} else {
		dst = &Font{
			Name:       cfg.Name,
			SizePixels: cfg.SizePixels,
			Sources:    []Source{src},
		}
		a.fonts = append(a.fonts, dst)
		log.Debug("Added font %q from %s at %gpx", cfg.Name, cfg.Path, cfg.SizePixels)
	}

	a.entries = append(a.entries, atlasEntry{cfg: cfg, dst: dst})
	return dst, nil
}

// AddFontDefault adds the builtin fallback font
func (a *Atlas) AddFontDefault() *Font {
	a.mu.Lock()
	defer a.mu.Unlock()

	f := &Font{Name: defaultFontName, SizePixels: defaultFontSize, Builtin: true}
	a.fonts = append(a.fonts, f)
	a.entries = append(a.entries, atlasEntry{
		cfg: FontConfig{Name: defaultFontName, SizePixels: defaultFontSize},
		dst: f,
	})
	return f
}

// FontByName returns the font created by the first non-merge record named
// name, or nil. Merge records never match since they do not own a font.
func (a *Atlas) FontByName(name string) *Font {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, e := range a.entries {
		if e.cfg.MergeMode {
			continue
		}
		if e.cfg.Name == name {
			return e.dst
		}
	}
	return nil
}

// Fonts returns the fonts in the order they were added
func (a *Atlas) Fonts() []*Font {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*Font, len(a.fonts))
	copy(out, a.fonts)
	return out
}

func hasFontSignature(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range fontSignatures {
		if bytes.Equal(data[:4], sig) {
			return true
		}
	}
	return false
}
