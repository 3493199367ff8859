package style

// ColorIndex identifies one slot of the color catalog
type ColorIndex int

// Color slots in catalog order. The order is part of the file format: the
// serializer writes slots in this order and the parser's slot search starts
// from the position of the previous match.
const (
	ColorText ColorIndex = iota
	ColorTextDisabled
	ColorWindowBg
	ColorChildBg
	ColorPopupBg
	ColorBorder
	ColorBorderShadow
	ColorFrameBg
	ColorFrameBgHovered
	ColorFrameBgActive
	ColorTitleBg
	ColorTitleBgActive
	ColorTitleBgCollapsed
	ColorMenuBarBg
	ColorScrollbarBg
	ColorScrollbarGrab
	ColorScrollbarGrabHovered
	ColorScrollbarGrabActive
	ColorCheckMark
	ColorSliderGrab
	ColorSliderGrabActive
	ColorButton
	ColorButtonHovered
	ColorButtonActive
	ColorHeader
	ColorHeaderHovered
	ColorHeaderActive
	ColorSeparator
	ColorSeparatorHovered
	ColorSeparatorActive
	ColorResizeGrip
	ColorResizeGripHovered
	ColorResizeGripActive
	ColorTab
	ColorTabHovered
	ColorTabActive
	ColorTabUnfocused
	ColorTabUnfocusedActive
	ColorPlotLines
	ColorPlotLinesHovered
	ColorPlotHistogram
	ColorPlotHistogramHovered
	ColorTableHeaderBg
	ColorTableBorderStrong
	ColorTableBorderLight
	ColorTableRowBg
	ColorTableRowBgAlt
	ColorTextSelectedBg
	ColorDragDropTarget
	ColorNavHighlight
	ColorNavWindowingHighlight
	ColorNavWindowingDimBg
	ColorModalWindowDimBg

	// ColorCount is the size of the palette
	ColorCount int = iota
)

var colorNames = [ColorCount]string{
	"Text",
	"TextDisabled",
	"WindowBg",
	"ChildBg",
	"PopupBg",
	"Border",
	"BorderShadow",
	"FrameBg",
	"FrameBgHovered",
	"FrameBgActive",
	"TitleBg",
	"TitleBgActive",
	"TitleBgCollapsed",
	"MenuBarBg",
	"ScrollbarBg",
	"ScrollbarGrab",
	"ScrollbarGrabHovered",
	"ScrollbarGrabActive",
	"CheckMark",
	"SliderGrab",
	"SliderGrabActive",
	"Button",
	"ButtonHovered",
	"ButtonActive",
	"Header",
	"HeaderHovered",
	"HeaderActive",
	"Separator",
	"SeparatorHovered",
	"SeparatorActive",
	"ResizeGrip",
	"ResizeGripHovered",
	"ResizeGripActive",
	"Tab",
	"TabHovered",
	"TabActive",
	"TabUnfocused",
	"TabUnfocusedActive",
	"PlotLines",
	"PlotLinesHovered",
	"PlotHistogram",
	"PlotHistogramHovered",
	"TableHeaderBg",
	"TableBorderStrong",
	"TableBorderLight",
	"TableRowBg",
	"TableRowBgAlt",
	"TextSelectedBg",
	"DragDropTarget",
	"NavHighlight",
	"NavWindowingHighlight",
	"NavWindowingDimBg",
	"ModalWindowDimBg",
}

// ColorName returns the canonical name of a slot, or "" when out of range
func ColorName(i ColorIndex) string {
	if !i.Valid() {
		return ""
	}
	return colorNames[i]
}

// ColorNames returns the catalog names in slot order
func ColorNames() []string {
	names := make([]string, ColorCount)
	copy(names, colorNames[:])
	return names
}

// Valid reports whether i addresses a slot of the catalog
func (i ColorIndex) Valid() bool {
	return i >= 0 && int(i) < ColorCount
}

// String returns the slot name
func (i ColorIndex) String() string {
	return ColorName(i)
}

// FindColorFrom searches the catalog for name starting just after the slot
// `after` and wrapping around once, so every slot is reachable while a file
// written in catalog order resolves each line on the first comparison.
// Pass -1 to start from the first slot.
func FindColorFrom(name string, after ColorIndex) (ColorIndex, bool) {
	start := int(after) + 1
	if start < 0 || start >= ColorCount {
		start = 0
	}
	for n := 0; n < ColorCount; n++ {
		i := (start + n) % ColorCount
		if colorNames[i] == name {
			return ColorIndex(i), true
		}
	}
	return -1, false
}
