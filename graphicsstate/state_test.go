package graphicsstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ohio15/PDFManager-sub002/model"
)

func TestDefaults(t *testing.T) {
	gs := NewGraphicsState()

	assert.True(t, gs.CTM.IsIdentity())
	assert.Equal(t, Gray(0), gs.StrokeColor)
	assert.Equal(t, Gray(0), gs.FillColor)
	assert.Equal(t, 1.0, gs.LineWidth)
	assert.Equal(t, 100.0, gs.Text.HorizontalScaling)
	assert.Equal(t, 0.0, gs.Text.FontSize)
}

func TestSaveRestore(t *testing.T) {
	stack := NewStack()

	stack.Current().Text.FontSize = 12
	stack.Current().FillColor = RGB(1, 0, 0)
	stack.Save()

	stack.Current().Text.FontSize = 24
	stack.Current().FillColor = Gray(0.5)
	stack.Current().Concat(model.Scale(2, 2))

	stack.Restore()
	assert.Equal(t, 12.0, stack.Current().Text.FontSize)
	assert.Equal(t, RGB(1, 0, 0), stack.Current().FillColor)
	assert.True(t, stack.Current().CTM.IsIdentity())
}

func TestRestoreOnEmptyStackIsNoOp(t *testing.T) {
	stack := NewStack()
	stack.Current().Text.FontSize = 9

	stack.Restore()
	assert.Equal(t, 9.0, stack.Current().Text.FontSize)
	assert.Equal(t, 0, stack.Depth())
}

func TestNestedSaveRestore(t *testing.T) {
	stack := NewStack()

	stack.Current().LineWidth = 1
	stack.Save()
	stack.Current().LineWidth = 2
	stack.Save()
	stack.Current().LineWidth = 3

	assert.Equal(t, 2, stack.Depth())
	stack.Restore()
	assert.Equal(t, 2.0, stack.Current().LineWidth)
	stack.Restore()
	assert.Equal(t, 1.0, stack.Current().LineWidth)
}

func TestCloneDoesNotAliasDashPattern(t *testing.T) {
	stack := NewStack()
	stack.Current().DashPattern = []float64{3, 1}
	stack.Save()

	stack.Current().DashPattern[0] = 99
	stack.Restore()
	assert.Equal(t, []float64{3, 1}, stack.Current().DashPattern)
}

func TestConcatPreMultiplies(t *testing.T) {
	gs := NewGraphicsState()
	gs.Concat(model.Translate(10, 0))
	gs.Concat(model.Scale(2, 2))

	// The later matrix applies first against points, so a point at the
	// origin lands at the scaled translation.
	p := gs.CTM.Transform(model.Point{X: 0, Y: 0})
	assert.Equal(t, model.Point{X: 10, Y: 0}, p)

	p = model.Scale(2, 2).Multiply(model.Translate(10, 0)).Transform(model.Point{X: 1, Y: 1})
	assert.Equal(t, model.Point{X: 12, Y: 2}, p)
}

func TestColorConstructors(t *testing.T) {
	assert.Equal(t, DeviceGray, Gray(0.5).Space)
	assert.Equal(t, DeviceRGB, RGB(1, 0, 0).Space)
	assert.Equal(t, DeviceCMYK, CMYK(0, 0, 0, 1).Space)
	assert.Equal(t, "DeviceRGB", DeviceRGB.String())
}
