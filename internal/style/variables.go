package style

// Kind is the shape of a style variable
type Kind int

const (
	// Scalar variables hold one float
	Scalar Kind = iota
	// Vector variables hold two floats
	Vector
)

// Components returns how many floats a variable of this kind holds
func (k Kind) Components() int {
	if k == Vector {
		return 2
	}
	return 1
}

// Variable is one entry of the variable catalog. Exactly one of Float and
// Vec is set, matching Kind.
type Variable struct {
	Name  string
	Kind  Kind
	Float func(*Style) *float32
	Vec   func(*Style) *Vec2
}

// Values returns the variable's components read from s
func (v Variable) Values(s *Style) []float32 {
	if v.Kind == Vector {
		p := v.Vec(s)
		return []float32{p.X, p.Y}
	}
	return []float32{*v.Float(s)}
}

// Set assigns the variable from vals, which must hold Kind.Components() floats
func (v Variable) Set(s *Style, vals []float32) bool {
	if len(vals) != v.Kind.Components() {
		return false
	}
	if v.Kind == Vector {
		*v.Vec(s) = Vec2{vals[0], vals[1]}
		return true
	}
	*v.Float(s) = vals[0]
	return true
}

func scalar(name string, f func(*Style) *float32) Variable {
	return Variable{Name: name, Kind: Scalar, Float: f}
}

func vector(name string, f func(*Style) *Vec2) Variable {
	return Variable{Name: name, Kind: Vector, Vec: f}
}

// variables is the catalog, in Style field order
var variables = []Variable{
	scalar("Alpha", func(s *Style) *float32 { return &s.Alpha }),
	scalar("DisabledAlpha", func(s *Style) *float32 { return &s.DisabledAlpha }),
	vector("WindowPadding", func(s *Style) *Vec2 { return &s.WindowPadding }),
	scalar("WindowRounding", func(s *Style) *float32 { return &s.WindowRounding }),
	scalar("WindowBorderSize", func(s *Style) *float32 { return &s.WindowBorderSize }),
	vector("WindowMinSize", func(s *Style) *Vec2 { return &s.WindowMinSize }),
	vector("WindowTitleAlign", func(s *Style) *Vec2 { return &s.WindowTitleAlign }),
	scalar("ChildRounding", func(s *Style) *float32 { return &s.ChildRounding }),
	scalar("ChildBorderSize", func(s *Style) *float32 { return &s.ChildBorderSize }),
	scalar("PopupRounding", func(s *Style) *float32 { return &s.PopupRounding }),
	scalar("PopupBorderSize", func(s *Style) *float32 { return &s.PopupBorderSize }),
	vector("FramePadding", func(s *Style) *Vec2 { return &s.FramePadding }),
	scalar("FrameRounding", func(s *Style) *float32 { return &s.FrameRounding }),
	scalar("FrameBorderSize", func(s *Style) *float32 { return &s.FrameBorderSize }),
	vector("ItemSpacing", func(s *Style) *Vec2 { return &s.ItemSpacing }),
	vector("ItemInnerSpacing", func(s *Style) *Vec2 { return &s.ItemInnerSpacing }),
	vector("CellPadding", func(s *Style) *Vec2 { return &s.CellPadding }),
	vector("TouchExtraPadding", func(s *Style) *Vec2 { return &s.TouchExtraPadding }),
	scalar("IndentSpacing", func(s *Style) *float32 { return &s.IndentSpacing }),
	scalar("ColumnsMinSpacing", func(s *Style) *float32 { return &s.ColumnsMinSpacing }),
	scalar("ScrollbarSize", func(s *Style) *float32 { return &s.ScrollbarSize }),
	scalar("ScrollbarRounding", func(s *Style) *float32 { return &s.ScrollbarRounding }),
	scalar("GrabMinSize", func(s *Style) *float32 { return &s.GrabMinSize }),
	scalar("GrabRounding", func(s *Style) *float32 { return &s.GrabRounding }),
	scalar("LogSliderDeadzone", func(s *Style) *float32 { return &s.LogSliderDeadzone }),
	scalar("TabRounding", func(s *Style) *float32 { return &s.TabRounding }),
	scalar("TabBorderSize", func(s *Style) *float32 { return &s.TabBorderSize }),
	scalar("TabMinWidthForCloseButton", func(s *Style) *float32 { return &s.TabMinWidthForCloseButton }),
	vector("ButtonTextAlign", func(s *Style) *Vec2 { return &s.ButtonTextAlign }),
	vector("SelectableTextAlign", func(s *Style) *Vec2 { return &s.SelectableTextAlign }),
	vector("DisplayWindowPadding", func(s *Style) *Vec2 { return &s.DisplayWindowPadding }),
	vector("DisplaySafeAreaPadding", func(s *Style) *Vec2 { return &s.DisplaySafeAreaPadding }),
	scalar("MouseCursorScale", func(s *Style) *float32 { return &s.MouseCursorScale }),
}

var variableIndex = func() map[string]int {
	m := make(map[string]int, len(variables))
	for i, v := range variables {
		m[v.Name] = i
	}
	return m
}()

// savedVariables is the order in which theme files list variables
var savedVariables = []string{
	"Alpha",
	"DisabledAlpha",
	"WindowPadding",
	"WindowRounding",
	"WindowBorderSize",
	"WindowMinSize",
	"WindowTitleAlign",
	"ChildRounding",
	"ChildBorderSize",
	"PopupRounding",
	"PopupBorderSize",
	"FramePadding",
	"FrameRounding",
	"FrameBorderSize",
	"ItemSpacing",
	"ItemInnerSpacing",
	"CellPadding",
	"IndentSpacing",
	"ScrollbarSize",
	"ScrollbarRounding",
	"TabRounding",
	"TabBorderSize",
}

// Variables returns the full catalog
func Variables() []Variable {
	out := make([]Variable, len(variables))
	copy(out, variables)
	return out
}

// LookupVariable finds a catalog entry by its exact name
func LookupVariable(name string) (Variable, bool) {
	i, ok := variableIndex[name]
	if !ok {
		return Variable{}, false
	}
	return variables[i], true
}

// SavedVariables returns the variables a theme file contains, in file order
func SavedVariables() []Variable {
	out := make([]Variable, 0, len(savedVariables))
	for _, name := range savedVariables {
		v, _ := LookupVariable(name)
		out = append(out, v)
	}
	return out
}
