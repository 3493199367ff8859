package fonts

import "sync"

// RangeHandle refers to one glyph range buffer inside a RangeArena.
// The zero value means "no ranges" (the loader's default coverage).
type RangeHandle int

// IsZero reports whether h refers to no buffer
func (h RangeHandle) IsZero() bool {
	return h == 0
}

// RangeArena owns zero-terminated codepoint range buffers. Buffers are only
// ever appended, so a handle stays valid for the arena's lifetime and fonts
// may keep slices returned by Ranges.
type RangeArena struct {
	mu      sync.Mutex
	buffers [][]rune
}

// NewRangeArena creates an empty arena
func NewRangeArena() *RangeArena {
	return &RangeArena{}
}

// Alloc stores the pair [lo, hi] followed by the 0 terminator
func (a *RangeArena) Alloc(lo, hi rune) RangeHandle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buffers = append(a.buffers, []rune{lo, hi, 0})
	return RangeHandle(len(a.buffers))
}

// Ranges returns the buffer for h, terminator included, or nil for the zero
// handle and unknown handles
func (a *RangeArena) Ranges(h RangeHandle) []rune {
	if a == nil || h.IsZero() {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	i := int(h) - 1
	if i < 0 || i >= len(a.buffers) {
		return nil
	}
	return a.buffers[i]
}

// Len returns the number of buffers allocated so far
func (a *RangeArena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buffers)
}
