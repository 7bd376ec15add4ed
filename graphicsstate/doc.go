// Package graphicsstate implements the graphics-state machinery the
// interpreter replays operators against: the current transformation
// matrix, stroke/fill colors, line attributes, and the text state, with
// an explicit save/restore stack.
//
// GraphicsState is a plain value. Save pushes a copy and Restore pops
// one, so a restored state can never alias a state that is still live.
package graphicsstate
