package stylefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bennypowers.dev/imstyle/internal/log"
	"bennypowers.dev/imstyle/internal/style"
)

// Section names understood by Load
const (
	SectionColors    = "colors"
	SectionVariables = "variables"
	SectionFonts     = "fonts"
)

// documentation-only sections appended after the generated ones
var templateSections = []struct {
	name  string
	lines []string
}{
	{SectionFonts, []string{`# Default = "Roboto-Medium.ttf" size 20`}},
	{"imrad.colors", []string{
		"# Hovered 255 255 0 255",
		"# Selected 255 0 0 255",
		"# Snap1 ...",
	}},
}

// Save writes s as a theme document. Color channels are written as 0-255
// integers truncated from the float value, so saving and loading again
// reproduces each channel only to within 1/255.
func Save(w io.Writer, s *style.Style) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "[%s]\n", SectionColors)
	for i := 0; i < style.ColorCount; i++ {
		idx := style.ColorIndex(i)
		r, g, b, a := s.Color(idx).RGBA255()
		fmt.Fprintf(bw, "%s = %d %d %d %d\n", style.ColorName(idx), r, g, b, a)
	}

	fmt.Fprintf(bw, "\n[%s]\n", SectionVariables)
	for _, v := range style.SavedVariables() {
		fmt.Fprintf(bw, "%s = %s\n", v.Name, formatFloats(v.Values(s)))
	}

	for _, sec := range templateSections {
		fmt.Fprintf(bw, "\n[%s]\n", sec.name)
		for _, line := range sec.lines {
			fmt.Fprintln(bw, line)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}

// SaveFile writes s to path, creating or truncating the file
func SaveFile(path string, s *style.Style) (err error) {
	f, err := os.Create(path) //nolint:gosec // G304: path is chosen by the caller
	if err != nil {
		return NewSinkError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := Save(f, s); err != nil {
		return err
	}
	log.Info("Saved theme: %s", path)
	return nil
}

func formatFloats(vals []float32) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(parts, " ")
}
