package stylefile

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking
var (
	// ErrSourceUnreadable indicates the theme source could not be opened or read
	ErrSourceUnreadable = errors.New("theme source unreadable")

	// ErrFontLoad indicates a font declared by the theme could not be loaded
	ErrFontLoad = errors.New("font load failed")

	// ErrSinkUnwritable indicates the destination of a save could not be created
	ErrSinkUnwritable = errors.New("theme sink unwritable")
)

// SourceError represents a theme file that could not be read
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("can't read %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnreadable, e.Err}
}

// NewSourceError creates a new source error
func NewSourceError(path string, err error) error {
	return &SourceError{
		Path: path,
		Err:  err,
	}
}

// FontLoadError represents a font record whose file could not be loaded.
// Everything parsed before the record stays applied.
type FontLoadError struct {
	// Path is the theme file
	Path string
	// Line is the 1-based line of the font record
	Line int
	// Key is the font record key
	Key string
	// FontPath is the resolved font file path
	FontPath string
	Err      error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("%s:%d: can't load font %q from %s: %v", e.Path, e.Line, e.Key, e.FontPath, e.Err)
}

func (e *FontLoadError) Unwrap() []error {
	return []error{ErrFontLoad, e.Err}
}

// NewFontLoadError creates a new font load error
func NewFontLoadError(path string, line int, key, fontPath string, err error) error {
	return &FontLoadError{
		Path:     path,
		Line:     line,
		Key:      key,
		FontPath: fontPath,
		Err:      err,
	}
}

// SinkError represents a save destination that could not be created
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("can't write %s: %v", e.Path, e.Err)
}

func (e *SinkError) Unwrap() []error {
	return []error{ErrSinkUnwritable, e.Err}
}

// NewSinkError creates a new sink error
func NewSinkError(path string, err error) error {
	return &SinkError{
		Path: path,
		Err:  err,
	}
}
