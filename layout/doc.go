// Package layout reconstructs page structure from positioned text runs.
// The Analyzer chains the detection stages: runs merge into words, words
// bucket into lines, lines cluster into columns, paragraphs, and tables,
// and a reading order is inferred over the paragraphs.
//
// Every threshold is relative to page geometry or font metrics, so the
// same configuration works at any page size. Analysis never fails:
// degenerate input yields trivial structures.
package layout
