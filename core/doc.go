// Package core provides the lexical layer of the content-stream pipeline:
// a tolerant tokenizer for content-stream syntax and the typed object model
// (number, string, name, array, dictionary, boolean, null) that operands
// are reduced into.
//
// # Tokenization
//
// The [Lexer] converts a raw byte buffer into a flat sequence of [Token]
// values ordered by byte offset. Tokenization is total: it never fails,
// regardless of input. Bytes that do not begin any recognized construct
// are skipped, whitespace and %-comments are consumed silently, and a
// truncated construct yields whatever was accumulated before the end of
// the buffer.
//
// # Object Types
//
// Operand values are represented as types satisfying the [Object]
// interface:
//
//   - [Null] - the null object
//   - [Bool] - booleans (true/false)
//   - [Number] - numeric values (integers and reals share one type)
//   - [String] - string objects, literal or hexadecimal
//   - [Name] - name objects (e.g. /F1, /DeviceRGB)
//   - [Array] - ordered heterogeneous sequences
//   - [Dict] - dictionaries with insertion-ordered keys
package core
