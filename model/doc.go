// Package model defines the shared geometric and textual value types of
// the pipeline: points, bounding boxes, affine matrices, positioned
// glyphs, text runs, and text direction.
//
// All coordinates are in page space with the PDF-native convention: the
// origin at the bottom-left corner and Y increasing upward. Every stage
// of the pipeline uses this convention uniformly; "top of the page" means
// larger Y.
package model
