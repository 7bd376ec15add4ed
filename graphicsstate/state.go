package graphicsstate

import "github.com/Ohio15/PDFManager-sub002/model"

// ColorSpace identifies the device color space of a Color.
type ColorSpace int

const (
	DeviceGray ColorSpace = iota
	DeviceRGB
	DeviceCMYK
)

// String returns the color space name.
func (s ColorSpace) String() string {
	switch s {
	case DeviceRGB:
		return "DeviceRGB"
	case DeviceCMYK:
		return "DeviceCMYK"
	default:
		return "DeviceGray"
	}
}

// Color is a device color: one component for gray, three for RGB, four
// for CMYK.
type Color struct {
	Space      ColorSpace
	Components [4]float64
}

// Gray creates a DeviceGray color.
func Gray(g float64) Color {
	return Color{Space: DeviceGray, Components: [4]float64{g}}
}

// RGB creates a DeviceRGB color.
func RGB(r, g, b float64) Color {
	return Color{Space: DeviceRGB, Components: [4]float64{r, g, b}}
}

// CMYK creates a DeviceCMYK color.
func CMYK(c, m, y, k float64) Color {
	return Color{Space: DeviceCMYK, Components: [4]float64{c, m, y, k}}
}

// TextState holds text-specific parameters. It is scoped to the graphics
// state: saved and restored with q/Q, changed only by explicit operators,
// and deliberately not reset by entering or leaving a text object.
type TextState struct {
	CharSpacing       float64
	WordSpacing       float64
	HorizontalScaling float64 // percent, 100 = no scaling
	Leading           float64
	FontName          string
	FontSize          float64
	RenderingMode     int
	Rise              float64
}

// GraphicsState is the full state replayed by the interpreter. It is a
// value type: copying it snapshots everything except DashPattern, which
// Clone duplicates explicitly.
type GraphicsState struct {
	CTM model.Matrix

	StrokeColor Color
	FillColor   Color

	LineWidth   float64
	LineCap     int
	LineJoin    int
	DashPattern []float64
	DashPhase   float64

	Text TextState
}

// NewGraphicsState returns a state with the standard defaults: identity
// CTM, black colors, line width 1, 100% horizontal scaling.
func NewGraphicsState() GraphicsState {
	return GraphicsState{
		CTM:         model.Identity(),
		StrokeColor: Gray(0),
		FillColor:   Gray(0),
		LineWidth:   1.0,
		Text: TextState{
			HorizontalScaling: 100.0,
		},
	}
}

// Clone returns a deep copy of the state.
func (gs GraphicsState) Clone() GraphicsState {
	clone := gs
	if gs.DashPattern != nil {
		clone.DashPattern = make([]float64, len(gs.DashPattern))
		copy(clone.DashPattern, gs.DashPattern)
	}
	return clone
}

// Concat composes a matrix into the CTM using the pre-multiplication
// convention: CTM' = m × CTM.
func (gs *GraphicsState) Concat(m model.Matrix) {
	gs.CTM = m.Multiply(gs.CTM)
}

// Stack is the graphics-state stack driven by the q and Q operators.
type Stack struct {
	current GraphicsState
	saved   []GraphicsState
}

// NewStack creates a stack whose current state has the standard defaults.
func NewStack() *Stack {
	return &Stack{current: NewGraphicsState()}
}

// Current returns the live state for reading and mutation.
func (s *Stack) Current() *GraphicsState {
	return &s.current
}

// Save pushes a snapshot of the current state (q operator).
func (s *Stack) Save() {
	s.saved = append(s.saved, s.current.Clone())
}

// Restore pops the most recent snapshot (Q operator). A Q with no
// matching q leaves the state unchanged.
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Depth returns the number of saved states.
func (s *Stack) Depth() int {
	return len(s.saved)
}
