// Package contentstream groups a lexed token sequence into operations.
//
// An operation is an operator keyword together with the operand values
// accumulated on the stack since the previous operator. Parsing is
// tolerant by construction: unexpected tokens inside composite values are
// dropped, and the parser never returns an error.
package contentstream
