package stylefile

import (
	"strconv"
	"strings"

	"bennypowers.dev/imstyle/internal/fonts"
)

// fontRecord is the value part of a [fonts] line:
//
//	"path with spaces.ttf" size 16 range 57344 63743
type fontRecord struct {
	path     string
	size     float32
	hasRange bool
	rangeLo  rune
	rangeHi  rune
}

func parseFontRecord(value string) fontRecord {
	rec := fontRecord{size: fonts.DefaultSize}

	path, rest := cutPathToken(value)
	rec.path = path

	tokens := strings.Fields(rest)
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "size":
			if i+1 >= len(tokens) {
				return rec
			}
			if v, err := strconv.ParseFloat(tokens[i+1], 32); err == nil {
				rec.size = float32(v)
				i++
			}
		case "range":
			if i+2 >= len(tokens) {
				return rec
			}
			lo, errLo := parseCodepoint(tokens[i+1])
			hi, errHi := parseCodepoint(tokens[i+2])
			if errLo == nil && errHi == nil {
				// a record owns one buffer, so a later range replaces an earlier one
				rec.hasRange = true
				rec.rangeLo = lo
				rec.rangeHi = hi
				i += 2
			}
		}
	}
	return rec
}

// parseCodepoint reads a decimal codepoint, or hex with a 0x prefix
func parseCodepoint(s string) (rune, error) {
	base := 10
	if h, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s, base = h, 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, err
	}
	return rune(v), nil
}

// cutPathToken splits off the leading path, which is either a double quoted
// string (no escapes) or a run of non-whitespace
func cutPathToken(value string) (path, rest string) {
	value = strings.TrimLeft(value, " \t")
	if strings.HasPrefix(value, `"`) {
		body := value[1:]
		end := strings.IndexByte(body, '"')
		if end < 0 {
			return body, ""
		}
		return body[:end], body[end+1:]
	}
	end := strings.IndexAny(value, " \t")
	if end < 0 {
		return value, ""
	}
	return value[:end], value[end:]
}

// isAbsolutePath accepts /unix, \\windows and drive-letter paths
func isAbsolutePath(p string) bool {
	return len(p) >= 2 && (p[0] == '/' || p[0] == '\\' || p[1] == ':')
}

func resolveFontPath(dir, p string) string {
	if isAbsolutePath(p) {
		return p
	}
	return dir + p
}

// baseDir returns the directory part of path including its trailing
// separator, or "" for a bare file name
func baseDir(path string) string {
	i := strings.LastIndexAny(path, `/\`)
	if i < 0 {
		return ""
	}
	return path[:i+1]
}
