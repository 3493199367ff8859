// Package style holds the in-memory theme: a fixed palette of named color
// slots and a fixed set of named scalar and vector metrics.
//
// Both catalogs are ordered tables so that the persistence layer can walk
// them without per-field code.
package style

// Color is an RGBA color with components in [0,1]
type Color struct {
	R, G, B, A float32
}

// RGBA255 returns the channels scaled to 0-255, truncated toward zero
func (c Color) RGBA255() (r, g, b, a int) {
	return to255(c.R), to255(c.G), to255(c.B), to255(c.A)
}

// ColorFrom255 builds a Color from 0-255 channels
func ColorFrom255(r, g, b, a int) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

func to255(v float32) int {
	return int(v * 255)
}

// Vec2 is a two component float vector
type Vec2 struct {
	X, Y float32
}

// Style is a complete theme snapshot
type Style struct {
	Alpha                     float32
	DisabledAlpha             float32
	WindowPadding             Vec2
	WindowRounding            float32
	WindowBorderSize          float32
	WindowMinSize             Vec2
	WindowTitleAlign          Vec2
	ChildRounding             float32
	ChildBorderSize           float32
	PopupRounding             float32
	PopupBorderSize           float32
	FramePadding              Vec2
	FrameRounding             float32
	FrameBorderSize           float32
	ItemSpacing               Vec2
	ItemInnerSpacing          Vec2
	CellPadding               Vec2
	TouchExtraPadding         Vec2
	IndentSpacing             float32
	ColumnsMinSpacing         float32
	ScrollbarSize             float32
	ScrollbarRounding         float32
	GrabMinSize               float32
	GrabRounding              float32
	LogSliderDeadzone         float32
	TabRounding               float32
	TabBorderSize             float32
	TabMinWidthForCloseButton float32
	ButtonTextAlign           Vec2
	SelectableTextAlign       Vec2
	DisplayWindowPadding      Vec2
	DisplaySafeAreaPadding    Vec2
	MouseCursorScale          float32

	Colors [ColorCount]Color
}

// Default returns the stock style: default metrics and the dark palette
func Default() Style {
	return Style{
		Alpha:                     1,
		DisabledAlpha:             0.6,
		WindowPadding:             Vec2{8, 8},
		WindowRounding:            0,
		WindowBorderSize:          1,
		WindowMinSize:             Vec2{32, 32},
		WindowTitleAlign:          Vec2{0, 0.5},
		ChildRounding:             0,
		ChildBorderSize:           1,
		PopupRounding:             0,
		PopupBorderSize:           1,
		FramePadding:              Vec2{4, 3},
		FrameRounding:             0,
		FrameBorderSize:           0,
		ItemSpacing:               Vec2{8, 4},
		ItemInnerSpacing:          Vec2{4, 4},
		CellPadding:               Vec2{4, 2},
		TouchExtraPadding:         Vec2{0, 0},
		IndentSpacing:             21,
		ColumnsMinSpacing:         6,
		ScrollbarSize:             14,
		ScrollbarRounding:         9,
		GrabMinSize:               12,
		GrabRounding:              0,
		LogSliderDeadzone:         4,
		TabRounding:               4,
		TabBorderSize:             0,
		TabMinWidthForCloseButton: 0,
		ButtonTextAlign:           Vec2{0.5, 0.5},
		SelectableTextAlign:       Vec2{0, 0},
		DisplayWindowPadding:      Vec2{19, 19},
		DisplaySafeAreaPadding:    Vec2{3, 3},
		MouseCursorScale:          1,
		Colors:                    darkPalette,
	}
}

// Reset restores every slot and variable to its default value
func (s *Style) Reset() {
	*s = Default()
}

// Color returns the value of slot i
func (s *Style) Color(i ColorIndex) Color {
	return s.Colors[i]
}

// SetColor assigns slot i
func (s *Style) SetColor(i ColorIndex, c Color) {
	s.Colors[i] = c
}

var darkPalette = [ColorCount]Color{
	ColorText:                  {1.00, 1.00, 1.00, 1.00},
	ColorTextDisabled:          {0.50, 0.50, 0.50, 1.00},
	ColorWindowBg:              {0.06, 0.06, 0.06, 0.94},
	ColorChildBg:               {0.00, 0.00, 0.00, 0.00},
	ColorPopupBg:               {0.08, 0.08, 0.08, 0.94},
	ColorBorder:                {0.43, 0.43, 0.50, 0.50},
	ColorBorderShadow:          {0.00, 0.00, 0.00, 0.00},
	ColorFrameBg:               {0.16, 0.29, 0.48, 0.54},
	ColorFrameBgHovered:        {0.26, 0.59, 0.98, 0.40},
	ColorFrameBgActive:         {0.26, 0.59, 0.98, 0.67},
	ColorTitleBg:               {0.04, 0.04, 0.04, 1.00},
	ColorTitleBgActive:         {0.16, 0.29, 0.48, 1.00},
	ColorTitleBgCollapsed:      {0.00, 0.00, 0.00, 0.51},
	ColorMenuBarBg:             {0.14, 0.14, 0.14, 1.00},
	ColorScrollbarBg:           {0.02, 0.02, 0.02, 0.53},
	ColorScrollbarGrab:         {0.31, 0.31, 0.31, 1.00},
	ColorScrollbarGrabHovered:  {0.41, 0.41, 0.41, 1.00},
	ColorScrollbarGrabActive:   {0.51, 0.51, 0.51, 1.00},
	ColorCheckMark:             {0.26, 0.59, 0.98, 1.00},
	ColorSliderGrab:            {0.24, 0.52, 0.88, 1.00},
	ColorSliderGrabActive:      {0.26, 0.59, 0.98, 1.00},
	ColorButton:                {0.26, 0.59, 0.98, 0.40},
	ColorButtonHovered:         {0.26, 0.59, 0.98, 1.00},
	ColorButtonActive:          {0.06, 0.53, 0.98, 1.00},
	ColorHeader:                {0.26, 0.59, 0.98, 0.31},
	ColorHeaderHovered:         {0.26, 0.59, 0.98, 0.80},
	ColorHeaderActive:          {0.26, 0.59, 0.98, 1.00},
	ColorSeparator:             {0.43, 0.43, 0.50, 0.50},
	ColorSeparatorHovered:      {0.10, 0.40, 0.75, 0.78},
	ColorSeparatorActive:       {0.10, 0.40, 0.75, 1.00},
	ColorResizeGrip:            {0.26, 0.59, 0.98, 0.20},
	ColorResizeGripHovered:     {0.26, 0.59, 0.98, 0.67},
	ColorResizeGripActive:      {0.26, 0.59, 0.98, 0.95},
	ColorTab:                   {0.18, 0.35, 0.58, 0.86},
	ColorTabHovered:            {0.26, 0.59, 0.98, 0.80},
	ColorTabActive:             {0.20, 0.41, 0.68, 1.00},
	ColorTabUnfocused:          {0.07, 0.10, 0.15, 0.97},
	ColorTabUnfocusedActive:    {0.14, 0.26, 0.42, 1.00},
	ColorPlotLines:             {0.61, 0.61, 0.61, 1.00},
	ColorPlotLinesHovered:      {1.00, 0.43, 0.35, 1.00},
	ColorPlotHistogram:         {0.90, 0.70, 0.00, 1.00},
	ColorPlotHistogramHovered:  {1.00, 0.60, 0.00, 1.00},
	ColorTableHeaderBg:         {0.19, 0.19, 0.20, 1.00},
	ColorTableBorderStrong:     {0.31, 0.31, 0.35, 1.00},
	ColorTableBorderLight:      {0.23, 0.23, 0.25, 1.00},
	ColorTableRowBg:            {0.00, 0.00, 0.00, 0.00},
	ColorTableRowBgAlt:         {1.00, 1.00, 1.00, 0.06},
	ColorTextSelectedBg:        {0.26, 0.59, 0.98, 0.35},
	ColorDragDropTarget:        {1.00, 1.00, 0.00, 0.90},
	ColorNavHighlight:          {0.26, 0.59, 0.98, 1.00},
	ColorNavWindowingHighlight: {1.00, 1.00, 1.00, 0.70},
	ColorNavWindowingDimBg:     {0.80, 0.80, 0.80, 0.20},
	ColorModalWindowDimBg:      {0.80, 0.80, 0.80, 0.35},
}
