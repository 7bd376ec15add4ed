package contentstream

import (
	"strconv"

	"github.com/Ohio15/PDFManager-sub002/core"
)

// Operation represents a single content-stream operation: an operator and
// the operands that preceded it. Start and End delimit the operation's
// approximate byte range in the source buffer, from the first token that
// contributed an operand through the end of the operator keyword. The
// range is best-effort provenance metadata, not a correctness-critical
// value.
type Operation struct {
	Operator string
	Operands []core.Object
	Start    int
	End      int
}

// Parser reduces a token sequence into a sequence of operations. Each
// Parser owns its operand stack, so independent parses never share state.
type Parser struct {
	tokens []core.Token
	pos    int

	stack      []core.Object
	stackStart int // byte offset of the first token on the stack
	ops        []Operation
}

// NewParser creates a parser over the given token sequence.
func NewParser(tokens []core.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse groups tokens into operations. It consumes the whole token
// sequence and never fails; operands left on the stack at end of input
// (with no trailing operator) are discarded.
func (p *Parser) Parse() []Operation {
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++

		switch tok.Type {
		case core.TokenEOF:
			return p.ops

		case core.TokenKeyword:
			p.handleKeyword(tok)

		case core.TokenArrayStart:
			p.push(p.parseArray(), tok.Start)

		case core.TokenDictStart:
			p.push(p.parseDict(), tok.Start)

		case core.TokenArrayEnd, core.TokenDictEnd:
			// Unmatched closer at the top level: drop it.

		default:
			if obj, ok := literalValue(tok); ok {
				p.push(obj, tok.Start)
			}
		}
	}
	return p.ops
}

// Parse is a convenience wrapper: tokens in, operations out.
func Parse(tokens []core.Token) []Operation {
	return NewParser(tokens).Parse()
}

// ParseBytes tokenizes and parses raw content-stream bytes.
func ParseBytes(data []byte) []Operation {
	return Parse(core.Tokenize(data))
}

// push adds a value to the operand stack, recording the byte offset of
// the first contributor.
func (p *Parser) push(obj core.Object, start int) {
	if len(p.stack) == 0 {
		p.stackStart = start
	}
	p.stack = append(p.stack, obj)
}

// handleKeyword emits an operation for an operator keyword, or pushes a
// value for the three pseudo-keywords true/false/null.
func (p *Parser) handleKeyword(tok core.Token) {
	switch string(tok.Value) {
	case "true":
		p.push(core.Bool(true), tok.Start)
		return
	case "false":
		p.push(core.Bool(false), tok.Start)
		return
	case "null":
		p.push(core.Null{}, tok.Start)
		return
	}

	start := tok.Start
	if len(p.stack) > 0 {
		start = p.stackStart
	}

	operands := make([]core.Object, len(p.stack))
	copy(operands, p.stack)

	p.ops = append(p.ops, Operation{
		Operator: string(tok.Value),
		Operands: operands,
		Start:    start,
		End:      tok.End,
	})
	p.stack = p.stack[:0]
}

// parseArray consumes tokens until the matching ]. Tokens that are not
// recognized value kinds are dropped. A missing closer ends the array at
// end of input.
func (p *Parser) parseArray() core.Array {
	var arr core.Array

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++

		switch tok.Type {
		case core.TokenArrayEnd:
			return arr
		case core.TokenEOF:
			p.pos--
			return arr
		case core.TokenArrayStart:
			arr = append(arr, p.parseArray())
		case core.TokenDictStart:
			arr = append(arr, p.parseDict())
		case core.TokenKeyword:
			if v, ok := pseudoValue(tok); ok {
				arr = append(arr, v)
			}
			// Other keywords inside an array carry no value: dropped.
		default:
			if obj, ok := literalValue(tok); ok {
				arr = append(arr, obj)
			}
		}
	}
	return arr
}

// parseDict consumes tokens until the matching >>, strictly alternating
// name keys and values. A value token that arrives while a key is
// expected is silently discarded.
func (p *Parser) parseDict() *core.Dict {
	dict := core.NewDict()
	var key string
	haveKey := false

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++

		switch tok.Type {
		case core.TokenDictEnd:
			return dict
		case core.TokenEOF:
			p.pos--
			return dict
		case core.TokenName:
			if haveKey {
				dict.Set(key, core.Name(tok.Value))
				haveKey = false
			} else {
				key = string(tok.Value)
				haveKey = true
			}
		case core.TokenArrayStart:
			if haveKey {
				dict.Set(key, p.parseArray())
				haveKey = false
			} else {
				p.parseArray()
			}
		case core.TokenDictStart:
			if haveKey {
				dict.Set(key, p.parseDict())
				haveKey = false
			} else {
				p.parseDict()
			}
		case core.TokenKeyword:
			if v, ok := pseudoValue(tok); ok && haveKey {
				dict.Set(key, v)
				haveKey = false
			}
		default:
			obj, ok := literalValue(tok)
			if !ok {
				continue
			}
			if haveKey {
				dict.Set(key, obj)
				haveKey = false
			}
			// Awaiting a key: the value is dropped.
		}
	}
	return dict
}

// literalValue converts a simple literal token into its object value.
func literalValue(tok core.Token) (core.Object, bool) {
	switch tok.Type {
	case core.TokenNumber:
		val, err := strconv.ParseFloat(string(tok.Value), 64)
		if err != nil {
			return nil, false
		}
		return core.Number(val), true
	case core.TokenString:
		return core.NewString(tok.Value, core.EncodingLiteral), true
	case core.TokenHexString:
		return core.NewString(tok.Value, core.EncodingHex), true
	case core.TokenName:
		return core.Name(tok.Value), true
	}
	return nil, false
}

// pseudoValue converts the true/false/null keywords into values.
func pseudoValue(tok core.Token) (core.Object, bool) {
	switch string(tok.Value) {
	case "true":
		return core.Bool(true), true
	case "false":
		return core.Bool(false), true
	case "null":
		return core.Null{}, true
	}
	return nil, false
}
