// Package text turns parsed content-stream operations into positioned
// text runs. The interpreter replays each operation against a graphics
// state, tracks the text and line matrices inside text objects, and
// resolves shown strings through the page's font table into glyphs with
// page-space positions.
//
// The interpreter never fails: operators with missing operands run with
// zero values, unknown operators are ignored, and an unbalanced stream
// still yields whatever runs it produced.
package text
