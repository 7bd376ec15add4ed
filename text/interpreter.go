package text

import (
	"github.com/Ohio15/PDFManager-sub002/contentstream"
	"github.com/Ohio15/PDFManager-sub002/core"
	"github.com/Ohio15/PDFManager-sub002/font"
	"github.com/Ohio15/PDFManager-sub002/graphicsstate"
	"github.com/Ohio15/PDFManager-sub002/model"
)

// Interpreter replays content-stream operations and accumulates text
// runs. One Interpreter handles one content stream; create a fresh one
// per page.
type Interpreter struct {
	states *graphicsstate.Stack
	fonts  font.Table

	tm     model.Matrix // text matrix
	tlm    model.Matrix // line matrix
	inText bool

	glyphs []model.Glyph
	runs   []model.TextRun
}

// NewInterpreter creates an interpreter with default graphics state and
// the given font table. A nil table is valid and makes every code fall
// back to default width and rune decoding.
func NewInterpreter(fonts font.Table) *Interpreter {
	return &Interpreter{
		states: graphicsstate.NewStack(),
		fonts:  fonts,
		tm:     model.Identity(),
		tlm:    model.Identity(),
	}
}

// Interpret runs the operations through a fresh interpreter and returns
// the text runs in stream order.
func Interpret(ops []contentstream.Operation, fonts font.Table) []model.TextRun {
	in := NewInterpreter(fonts)
	for _, op := range ops {
		in.process(op)
	}
	return in.Finish()
}

// Finish flushes any pending glyphs and returns the accumulated runs.
// Streams that end inside a text object still yield their glyphs.
func (in *Interpreter) Finish() []model.TextRun {
	in.flush()
	return in.runs
}

func (in *Interpreter) process(op contentstream.Operation) {
	gs := in.states.Current()

	switch op.Operator {
	// Graphics state.
	case "q":
		in.states.Save()
	case "Q":
		in.states.Restore()
	case "cm":
		gs.Concat(operandsToMatrix(op.Operands))
	case "w":
		gs.LineWidth = numberAt(op.Operands, 0)
	case "J":
		gs.LineCap = int(numberAt(op.Operands, 0))
	case "j":
		gs.LineJoin = int(numberAt(op.Operands, 0))
	case "d":
		in.setDash(gs, op.Operands)

	// Color.
	case "g":
		gs.FillColor = graphicsstate.Gray(numberAt(op.Operands, 0))
	case "G":
		gs.StrokeColor = graphicsstate.Gray(numberAt(op.Operands, 0))
	case "rg":
		gs.FillColor = graphicsstate.RGB(numberAt(op.Operands, 0), numberAt(op.Operands, 1), numberAt(op.Operands, 2))
	case "RG":
		gs.StrokeColor = graphicsstate.RGB(numberAt(op.Operands, 0), numberAt(op.Operands, 1), numberAt(op.Operands, 2))
	case "k":
		gs.FillColor = graphicsstate.CMYK(numberAt(op.Operands, 0), numberAt(op.Operands, 1), numberAt(op.Operands, 2), numberAt(op.Operands, 3))
	case "K":
		gs.StrokeColor = graphicsstate.CMYK(numberAt(op.Operands, 0), numberAt(op.Operands, 1), numberAt(op.Operands, 2), numberAt(op.Operands, 3))

	// Text objects.
	case "BT":
		in.flush()
		in.inText = true
		in.tm = model.Identity()
		in.tlm = model.Identity()
	case "ET":
		in.flush()
		in.inText = false

	// Text state.
	case "Tf":
		gs.Text.FontName = nameAt(op.Operands, 0)
		gs.Text.FontSize = numberAt(op.Operands, 1)
	case "Tc":
		gs.Text.CharSpacing = numberAt(op.Operands, 0)
	case "Tw":
		gs.Text.WordSpacing = numberAt(op.Operands, 0)
	case "Tz":
		gs.Text.HorizontalScaling = numberAt(op.Operands, 0)
	case "TL":
		gs.Text.Leading = numberAt(op.Operands, 0)
	case "Tr":
		gs.Text.RenderingMode = int(numberAt(op.Operands, 0))
	case "Ts":
		gs.Text.Rise = numberAt(op.Operands, 0)

	// Text positioning. Each repositioning flushes the pending run.
	case "Tm":
		in.flush()
		in.tm = operandsToMatrix(op.Operands)
		in.tlm = in.tm
	case "Td":
		in.flush()
		in.moveLine(numberAt(op.Operands, 0), numberAt(op.Operands, 1))
	case "TD":
		in.flush()
		gs.Text.Leading = -numberAt(op.Operands, 1)
		in.moveLine(numberAt(op.Operands, 0), numberAt(op.Operands, 1))
	case "T*":
		in.flush()
		in.moveLine(0, -gs.Text.Leading)

	// Text showing.
	case "Tj":
		in.showString(stringAt(op.Operands, 0))
	case "TJ":
		in.showArray(op.Operands)
	case "'":
		in.flush()
		in.moveLine(0, -gs.Text.Leading)
		in.showString(stringAt(op.Operands, 0))
	case "\"":
		gs.Text.WordSpacing = numberAt(op.Operands, 0)
		gs.Text.CharSpacing = numberAt(op.Operands, 1)
		in.flush()
		in.moveLine(0, -gs.Text.Leading)
		in.showString(stringAt(op.Operands, 2))
	}
}

// moveLine translates the line matrix by (tx, ty) in its own basis and
// resets the text matrix to it.
func (in *Interpreter) moveLine(tx, ty float64) {
	in.tlm = model.Translate(tx, ty).Multiply(in.tlm)
	in.tm = in.tlm
}

func (in *Interpreter) setDash(gs *graphicsstate.GraphicsState, operands []core.Object) {
	gs.DashPattern = nil
	if len(operands) > 0 {
		if arr, ok := operands[0].(core.Array); ok {
			pattern := make([]float64, 0, len(arr))
			for i := range arr {
				if n, ok := arr.GetNumber(i); ok {
					pattern = append(pattern, float64(n))
				}
			}
			gs.DashPattern = pattern
		}
	}
	gs.DashPhase = numberAt(operands, 1)
}

// showString resolves and places each character code of a shown string.
func (in *Interpreter) showString(s core.String) {
	gs := in.states.Current()
	ts := gs.Text
	fnt := in.fonts.Lookup(ts.FontName)
	th := ts.HorizontalScaling / 100.0

	for _, b := range s.Raw {
		code := int(b)
		w0 := fnt.Width(code)
		txt := fnt.Decode(code)

		trm := model.Matrix{
			ts.FontSize * th, 0,
			0, ts.FontSize,
			0, ts.Rise,
		}.Multiply(in.tm).Multiply(gs.CTM)

		in.glyphs = append(in.glyphs, model.Glyph{
			Code:      code,
			Text:      txt,
			Width:     w0 / 1000.0 * trm.ScaleX(),
			X:         trm[4],
			Y:         trm[5],
			FontName:  ts.FontName,
			FontSize:  trm.ScaleY(),
			Transform: trm,
		})

		advance := w0/1000.0*ts.FontSize + ts.CharSpacing
		if txt == " " {
			advance += ts.WordSpacing
		}
		in.tm = model.Translate(advance*th, 0).Multiply(in.tm)
	}
}

// showArray handles TJ: strings are shown, numbers translate the text
// matrix by -n/1000 of an em, scaled by font size and horizontal scale.
func (in *Interpreter) showArray(operands []core.Object) {
	if len(operands) == 0 {
		return
	}
	arr, ok := operands[0].(core.Array)
	if !ok {
		return
	}
	for _, el := range arr {
		switch v := el.(type) {
		case core.String:
			in.showString(v)
		case core.Number:
			ts := in.states.Current().Text
			tx := -float64(v) / 1000.0 * ts.FontSize * ts.HorizontalScaling / 100.0
			in.tm = model.Translate(tx, 0).Multiply(in.tm)
		}
	}
}

// flush finalizes the pending glyph buffer into a run. An empty buffer
// produces nothing.
func (in *Interpreter) flush() {
	if len(in.glyphs) == 0 {
		return
	}
	run := model.TextRun{
		Glyphs: in.glyphs,
		BBox:   model.ComputeRunBBox(in.glyphs),
	}
	run.Direction = DetectDirection(run.Text())
	in.runs = append(in.runs, run)
	in.glyphs = nil
}

// numberAt returns the numeric operand at index i, or 0 when it is
// missing or not a number.
func numberAt(operands []core.Object, i int) float64 {
	if i < len(operands) {
		if n, ok := operands[i].(core.Number); ok {
			return float64(n)
		}
	}
	return 0
}

// nameAt returns the name operand at index i, or "" when missing.
func nameAt(operands []core.Object, i int) string {
	if i < len(operands) {
		if n, ok := operands[i].(core.Name); ok {
			return string(n)
		}
	}
	return ""
}

// stringAt returns the string operand at index i, or an empty string
// object when missing.
func stringAt(operands []core.Object, i int) core.String {
	if i < len(operands) {
		if s, ok := operands[i].(core.String); ok {
			return s
		}
	}
	return core.String{}
}

// operandsToMatrix builds a matrix from six numeric operands, defaulting
// missing entries to 0.
func operandsToMatrix(operands []core.Object) model.Matrix {
	var m model.Matrix
	for i := 0; i < 6; i++ {
		m[i] = numberAt(operands, i)
	}
	return m
}
