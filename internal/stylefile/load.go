package stylefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bennypowers.dev/imstyle/internal/extensions"
	"bennypowers.dev/imstyle/internal/fonts"
	"bennypowers.dev/imstyle/internal/log"
	"bennypowers.dev/imstyle/internal/style"
)

// ErrInvalidOptions indicates Load was called with an unusable Options value
var ErrInvalidOptions = errors.New("invalid load options")

// separators between a key and its value
const separators = "=\t "

// maxLineSize bounds a single theme line
const maxLineSize = 1 << 20

// Options configures a theme load
type Options struct {
	// FontScale multiplies every font size. Zero means 1.
	FontScale float32

	// Style receives the theme. It is reset to style.Default() first.
	Style *style.Style

	// Fonts receives font handles keyed by record name, "" being the default
	// font. Optional; when set, Loader and Defaults are required.
	Fonts *fonts.Registry

	// Loader loads font records. Without it [fonts] records are skipped.
	Loader fonts.Loader

	// Defaults supplies the default font when the theme declares none
	Defaults fonts.DefaultProvider

	// Extensions receives entries of sections other than colors, variables
	// and fonts. Optional.
	Extensions extensions.Sink
}

func (o *Options) validate() error {
	if o.Style == nil {
		return fmt.Errorf("%w: destination style is required", ErrInvalidOptions)
	}
	if o.FontScale < 0 {
		return fmt.Errorf("%w: font scale must not be negative, got %g", ErrInvalidOptions, o.FontScale)
	}
	if o.Fonts != nil && (o.Loader == nil || o.Defaults == nil) {
		return fmt.Errorf("%w: a font registry needs both a loader and a default font provider", ErrInvalidOptions)
	}
	return nil
}

func (o *Options) fontScale() float32 {
	if o.FontScale == 0 {
		return 1
	}
	return o.FontScale
}

// LoadFile reads the theme at path into opts. Relative font paths are
// resolved against the directory of path.
func LoadFile(path string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	f, err := os.Open(path) //nolint:gosec // G304: theme path is chosen by the caller
	if err != nil {
		return NewSourceError(path, err)
	}
	defer f.Close()

	if err := load(f, path, opts); err != nil {
		return err
	}
	log.Info("Loaded theme: %s", path)
	return nil
}

// Load reads a theme from r. path is the theme's location and is only used
// to resolve relative font paths and to label errors.
//
// Loading is not atomic: when a font fails to load, colors and variables
// read before that record stay applied and the error wraps ErrFontLoad.
func Load(r io.Reader, path string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	return load(r, path, opts)
}

// parser holds the state carried from one line to the next
type parser struct {
	opts    Options
	path    string
	baseDir string
	arena   *fonts.RangeArena

	line      int
	section   string
	lastColor style.ColorIndex
	lastFont  string

	applied int
	skipped int
}

func load(r io.Reader, path string, opts Options) error {
	p := &parser{
		opts:      opts,
		path:      path,
		baseDir:   baseDir(path),
		lastColor: -1,
	}
	if opts.Fonts != nil {
		p.arena = opts.Fonts.Arena()
	} else {
		p.arena = fonts.NewRangeArena()
	}

	opts.Style.Reset()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		p.line++
		if err := p.parseLine(strings.TrimSuffix(scanner.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return NewSourceError(path, err)
	}

	p.finish()
	log.Debug("%s: %d entries applied, %d lines skipped", path, p.applied, p.skipped)
	return nil
}

func (p *parser) parseLine(line string) error {
	if line == "" || line[0] == ';' || line[0] == '#' {
		return nil
	}
	if line[0] == '[' && line[len(line)-1] == ']' {
		p.section = line[1 : len(line)-1]
		return nil
	}

	key, value, ok := splitRecord(line)
	if !ok {
		p.skip("malformed line")
		return nil
	}

	switch p.section {
	case SectionColors:
		p.parseColor(key, value)
	case SectionVariables:
		p.parseVariable(key, value)
	case SectionFonts:
		return p.parseFont(key, value)
	default:
		if p.opts.Extensions != nil {
			p.opts.Extensions.Set(extensions.Key(p.section, key), value)
			p.applied++
		}
	}
	return nil
}

// splitRecord splits `key<sep>value`. The value keeps everything after the
// separator run, trailing whitespace included.
func splitRecord(line string) (key, value string, ok bool) {
	start := strings.IndexFunc(line, notSeparator)
	if start < 0 {
		return "", "", false
	}
	rest := line[start:]
	end := strings.IndexAny(rest, separators)
	if end < 0 {
		return "", "", false
	}
	key = rest[:end]
	rest = rest[end:]
	vstart := strings.IndexFunc(rest, notSeparator)
	if vstart < 0 {
		return "", "", false
	}
	return key, rest[vstart:], true
}

func notSeparator(r rune) bool {
	return !strings.ContainsRune(separators, r)
}

func (p *parser) parseColor(key, value string) {
	idx, ok := style.FindColorFrom(key, p.lastColor)
	if !ok {
		p.skip("unknown color " + key)
		return
	}
	p.lastColor = idx

	ch, ok := parseInts(value, 4)
	if !ok {
		p.skip("invalid color value for " + key)
		return
	}
	p.opts.Style.SetColor(idx, style.ColorFrom255(clamp255(ch[0]), clamp255(ch[1]), clamp255(ch[2]), clamp255(ch[3])))
	p.applied++
}

func (p *parser) parseVariable(key, value string) {
	v, ok := style.LookupVariable(key)
	if !ok {
		p.skip("unknown variable " + key)
		return
	}
	vals, ok := parseFloats(value, v.Kind.Components())
	if !ok || !v.Set(p.opts.Style, vals) {
		p.skip("invalid value for variable " + key)
		return
	}
	p.applied++
}

func (p *parser) parseFont(key, value string) error {
	rec := parseFontRecord(value)
	cfg := fonts.FontConfig{
		Name:       key,
		Path:       resolveFontPath(p.baseDir, rec.path),
		SizePixels: rec.size * p.opts.fontScale(),
		MergeMode:  key == p.lastFont,
	}
	if rec.hasRange {
		cfg.Ranges = p.arena.Alloc(rec.rangeLo, rec.rangeHi)
	}

	if p.opts.Loader == nil {
		p.lastFont = key
		p.skip("no font loader for " + key)
		return nil
	}

	f, err := p.opts.Loader.AddFont(cfg, p.arena)
	if err != nil {
		return NewFontLoadError(p.path, p.line, key, cfg.Path, err)
	}

	if !cfg.MergeMode && p.opts.Fonts != nil {
		// The first font record of a load becomes the default font whatever
		// its key; later non-merge records register under their own key.
		regKey := key
		if p.lastFont == "" {
			regKey = fonts.DefaultKey
		}
		p.opts.Fonts.Set(regKey, f)
		log.Debug("Registered font %q as %q", key, regKey)
	}

	p.lastFont = key
	p.applied++
	return nil
}

func (p *parser) finish() {
	if p.opts.Fonts == nil || p.opts.Fonts.Has(fonts.DefaultKey) {
		return
	}
	p.opts.Fonts.Set(fonts.DefaultKey, p.opts.Defaults.AddFontDefault())
	log.Info("%s declares no fonts, using the builtin default", p.path)
}

func (p *parser) skip(reason string) {
	p.skipped++
	log.Debug("%s:%d: skipped (%s)", p.path, p.line, reason)
}

func parseInts(value string, n int) ([]int, bool) {
	fields := strings.Fields(value)
	if len(fields) < n {
		return nil, false
	}
	out := make([]int, n)
	for i := range out {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseFloats(value string, n int) ([]float32, bool) {
	fields := strings.Fields(value)
	if len(fields) < n {
		return nil, false
	}
	out := make([]float32, n)
	for i := range out {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, false
		}
		out[i] = float32(v)
	}
	return out, true
}

func clamp255(v int) int {
	return max(0, min(255, v))
}
