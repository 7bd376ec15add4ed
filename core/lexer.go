package core

import "bytes"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber     // 123, -4.5, .5
	TokenString     // (hello)
	TokenHexString  // <48656C6C6F>
	TokenName       // /F1
	TokenArrayStart // [
	TokenArrayEnd   // ]
	TokenDictStart  // <<
	TokenDictEnd    // >>
	TokenKeyword    // Tj, BT, q, true, false, null, ...
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "Number"
	case TokenString:
		return "String"
	case TokenHexString:
		return "HexString"
	case TokenName:
		return "Name"
	case TokenArrayStart:
		return "ArrayStart"
	case TokenArrayEnd:
		return "ArrayEnd"
	case TokenDictStart:
		return "DictStart"
	case TokenDictEnd:
		return "DictEnd"
	case TokenKeyword:
		return "Keyword"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token. Value holds the decoded payload:
// for strings the unescaped bytes, for hex strings the decoded bytes,
// for names the name without the leading slash with #XX escapes applied,
// for numbers and keywords the raw text. Start and End delimit the
// token's byte range in the source buffer.
type Token struct {
	Type  TokenType
	Value []byte
	Start int
	End   int
}

// Lexer performs lexical analysis of content-stream bytes.
type Lexer struct {
	data []byte
	pos  int
}

// NewLexer creates a new lexer over the given data.
func NewLexer(data []byte) *Lexer {
	return &Lexer{data: data}
}

// Tokenize converts raw content-stream bytes into the complete token
// sequence, terminated by a TokenEOF. It is a convenience wrapper around
// NewLexer and NextToken.
func Tokenize(data []byte) []Token {
	l := NewLexer(data)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// NextToken returns the next token from the input. Unrecognized bytes are
// skipped and lexing resumes at the next recognizable construct, so the
// only terminal token is TokenEOF.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespaceAndComments()

		if l.pos >= len(l.data) {
			return Token{Type: TokenEOF, Start: l.pos, End: l.pos}
		}

		start := l.pos
		c := l.data[l.pos]

		switch {
		case c == '[':
			l.pos++
			return Token{Type: TokenArrayStart, Value: l.data[start:l.pos], Start: start, End: l.pos}
		case c == ']':
			l.pos++
			return Token{Type: TokenArrayEnd, Value: l.data[start:l.pos], Start: start, End: l.pos}
		case c == '(':
			return l.readString()
		case c == '<':
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '<' {
				l.pos += 2
				return Token{Type: TokenDictStart, Value: l.data[start:l.pos], Start: start, End: l.pos}
			}
			return l.readHexString()
		case c == '>':
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '>' {
				l.pos += 2
				return Token{Type: TokenDictEnd, Value: l.data[start:l.pos], Start: start, End: l.pos}
			}
			// Stray '>' with no matching construct.
			l.pos++
			continue
		case c == '/':
			return l.readName()
		case l.startsNumber():
			return l.readNumber()
		case !isDelimiter(c):
			return l.readKeyword()
		default:
			// Unmatched delimiter such as ')', '{' or '}'.
			l.pos++
			continue
		}
	}
}

// skipWhitespaceAndComments advances past whitespace and %-comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if isWhitespace(c) {
			l.pos++
			continue
		}
		if c == '%' {
			for l.pos < len(l.data) && l.data[l.pos] != '\r' && l.data[l.pos] != '\n' {
				l.pos++
			}
			continue
		}
		return
	}
}

// startsNumber reports whether the bytes at the current position begin a
// number: a digit, or a sign/decimal point leading into digits.
func (l *Lexer) startsNumber() bool {
	c := l.data[l.pos]
	if isDigit(c) {
		return true
	}
	if c == '+' || c == '-' {
		if l.pos+1 >= len(l.data) {
			return false
		}
		next := l.data[l.pos+1]
		if isDigit(next) {
			return true
		}
		return next == '.' && l.pos+2 < len(l.data) && isDigit(l.data[l.pos+2])
	}
	if c == '.' {
		return l.pos+1 < len(l.data) && isDigit(l.data[l.pos+1])
	}
	return false
}

// readNumber reads a number: optional sign, digits, at most one decimal
// point. A second decimal point terminates the number and is left for the
// next token.
func (l *Lexer) readNumber() Token {
	start := l.pos
	hasDecimal := false

	if l.data[l.pos] == '+' || l.data[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if isDigit(c) {
			l.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			l.pos++
		} else {
			break
		}
	}

	return Token{Type: TokenNumber, Value: l.data[start:l.pos], Start: start, End: l.pos}
}

// readString reads a literal string (...) with balanced-paren nesting,
// backslash escapes, line continuations, and 1-3 digit octal escapes.
// An unterminated string consumes the rest of the buffer.
func (l *Lexer) readString() Token {
	start := l.pos
	l.pos++ // skip '('

	var buf bytes.Buffer
	depth := 1

	for l.pos < len(l.data) && depth > 0 {
		c := l.data[l.pos]

		switch c {
		case '(':
			depth++
			buf.WriteByte(c)
			l.pos++
		case ')':
			depth--
			if depth > 0 {
				buf.WriteByte(c)
			}
			l.pos++
		case '\\':
			l.pos++
			if l.pos >= len(l.data) {
				break
			}
			next := l.data[l.pos]
			switch next {
			case 'n':
				buf.WriteByte('\n')
				l.pos++
			case 'r':
				buf.WriteByte('\r')
				l.pos++
			case 't':
				buf.WriteByte('\t')
				l.pos++
			case 'b':
				buf.WriteByte('\b')
				l.pos++
			case 'f':
				buf.WriteByte('\f')
				l.pos++
			case '(', ')', '\\':
				buf.WriteByte(next)
				l.pos++
			case '\r':
				// Line continuation: elide backslash and newline.
				l.pos++
				if l.pos < len(l.data) && l.data[l.pos] == '\n' {
					l.pos++
				}
			case '\n':
				l.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				val := int(next - '0')
				l.pos++
				for i := 0; i < 2 && l.pos < len(l.data); i++ {
					d := l.data[l.pos]
					if d < '0' || d > '7' {
						break
					}
					val = val*8 + int(d-'0')
					l.pos++
				}
				buf.WriteByte(byte(val & 0xFF))
			default:
				// Unknown escape: the backslash is dropped.
				buf.WriteByte(next)
				l.pos++
			}
		default:
			buf.WriteByte(c)
			l.pos++
		}
	}

	return Token{Type: TokenString, Value: buf.Bytes(), Start: start, End: l.pos}
}

// readHexString reads a hexadecimal string <...>. Whitespace between
// digits is skipped, non-hex bytes are ignored, and an odd trailing
// nibble is padded with 0.
func (l *Lexer) readHexString() Token {
	start := l.pos
	l.pos++ // skip '<'

	var buf bytes.Buffer
	var pending byte
	havePending := false

	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if c == '>' {
			l.pos++
			break
		}
		l.pos++
		if !isHexDigit(c) {
			continue
		}
		if havePending {
			buf.WriteByte(pending<<4 | hexValue(c))
			havePending = false
		} else {
			pending = hexValue(c)
			havePending = true
		}
	}
	if havePending {
		buf.WriteByte(pending << 4)
	}

	return Token{Type: TokenHexString, Value: buf.Bytes(), Start: start, End: l.pos}
}

// readName reads a name /Name, decoding #XX hex escapes.
func (l *Lexer) readName() Token {
	start := l.pos
	l.pos++ // skip '/'

	var buf bytes.Buffer
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && l.pos+2 < len(l.data) && isHexDigit(l.data[l.pos+1]) && isHexDigit(l.data[l.pos+2]) {
			buf.WriteByte(hexValue(l.data[l.pos+1])<<4 | hexValue(l.data[l.pos+2]))
			l.pos += 3
			continue
		}
		buf.WriteByte(c)
		l.pos++
	}

	return Token{Type: TokenName, Value: buf.Bytes(), Start: start, End: l.pos}
}

// readKeyword reads a maximal run of non-whitespace, non-delimiter bytes.
// Operators such as T*, ' and " lex as keywords, as do true/false/null;
// distinguishing value keywords from operators is the parser's job.
func (l *Lexer) readKeyword() Token {
	start := l.pos
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if isWhitespace(c) || isDelimiter(c) {
			break
		}
		l.pos++
	}
	return Token{Type: TokenKeyword, Value: l.data[start:l.pos], Start: start, End: l.pos}
}

// Helper functions

// isWhitespace reports whether c is a content-stream whitespace
// character: space, tab, LF, CR, FF, or NUL.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

// isDelimiter reports whether c is a delimiter character.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
