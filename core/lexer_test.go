package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds strips the trailing EOF and returns just the token types.
func kinds(tokens []Token) []TokenType {
	var out []TokenType
	for _, tok := range tokens {
		if tok.Type == TokenEOF {
			break
		}
		out = append(out, tok.Type)
	}
	return out
}

func TestTokenizeEmpty(t *testing.T) {
	tokens := Tokenize(nil)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Type)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"-42", "-42"},
		{"+7", "+7"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"-.25", "-.25"},
	}

	for _, tt := range tests {
		tokens := Tokenize([]byte(tt.input))
		require.GreaterOrEqual(t, len(tokens), 2, "input %q", tt.input)
		assert.Equal(t, TokenNumber, tokens[0].Type, "input %q", tt.input)
		assert.Equal(t, tt.want, string(tokens[0].Value), "input %q", tt.input)
	}
}

func TestTokenizeDoubleDecimalPoint(t *testing.T) {
	// The second point ends the number; the lexer takes only the first.
	tokens := Tokenize([]byte("1.2.3"))
	require.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, "1.2", string(tokens[0].Value))
	require.Equal(t, TokenNumber, tokens[1].Type)
	assert.Equal(t, ".3", string(tokens[1].Value))
}

func TestTokenizeLiteralString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "(hello)", "hello"},
		{"nested parens", "((a)(b))", "(a)(b)"},
		{"escaped parens", `(\(test\))`, "(test)"},
		{"standard escapes", `(a\nb\tc)`, "a\nb\tc"},
		{"backslash", `(a\\b)`, `a\b`},
		{"octal", `(\101\102)`, "AB"},
		{"octal short", `(\53)`, "+"},
		{"line continuation", "(ab\\\ncd)", "abcd"},
		{"unknown escape keeps char", `(\z)`, "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize([]byte(tt.input))
			require.Equal(t, TokenString, tokens[0].Type)
			assert.Equal(t, tt.want, string(tokens[0].Value))
		})
	}
}

func TestTokenizeHexString(t *testing.T) {
	tokens := Tokenize([]byte("<4142>"))
	require.Equal(t, TokenHexString, tokens[0].Type)
	assert.Equal(t, "AB", string(tokens[0].Value))

	// Whitespace inside is skipped.
	tokens = Tokenize([]byte("<41 42>"))
	require.Equal(t, TokenHexString, tokens[0].Type)
	assert.Equal(t, "AB", string(tokens[0].Value))

	// Odd trailing nibble is padded with zero.
	tokens = Tokenize([]byte("<414>"))
	require.Equal(t, TokenHexString, tokens[0].Type)
	assert.Equal(t, []byte{0x41, 0x40}, tokens[0].Value)
}

func TestTokenizeName(t *testing.T) {
	tokens := Tokenize([]byte("/F1"))
	require.Equal(t, TokenName, tokens[0].Type)
	assert.Equal(t, "F1", string(tokens[0].Value))

	// #XX hex escapes decode.
	tokens = Tokenize([]byte("/A#20B"))
	require.Equal(t, TokenName, tokens[0].Type)
	assert.Equal(t, "A B", string(tokens[0].Value))
}

func TestTokenizeDelimiters(t *testing.T) {
	tokens := Tokenize([]byte("[ ] << >>"))
	assert.Equal(t, []TokenType{TokenArrayStart, TokenArrayEnd, TokenDictStart, TokenDictEnd}, kinds(tokens))
}

func TestTokenizeKeywords(t *testing.T) {
	tokens := Tokenize([]byte("BT T* ' \" true null Tj"))
	require.Len(t, kinds(tokens), 7)
	want := []string{"BT", "T*", "'", "\"", "true", "null", "Tj"}
	for i, w := range want {
		assert.Equal(t, TokenKeyword, tokens[i].Type)
		assert.Equal(t, w, string(tokens[i].Value))
	}
}

func TestTokenizeComments(t *testing.T) {
	tokens := Tokenize([]byte("1 % a comment\n2"))
	assert.Equal(t, []TokenType{TokenNumber, TokenNumber}, kinds(tokens))
}

func TestTokenizeSkipsUnrecognizedBytes(t *testing.T) {
	// Stray ')', '{', '}' and a lone '>' carry no meaning at the top
	// level and are skipped without error.
	tokens := Tokenize([]byte(") { } > 5"))
	require.Equal(t, []TokenType{TokenNumber}, kinds(tokens))
	assert.Equal(t, "5", string(tokens[0].Value))
}

func TestTokenizeTotalOnArbitraryBytes(t *testing.T) {
	// Tokenization must terminate and never fail on any input.
	inputs := [][]byte{
		{0xFF, 0xFE, 0x00, 0x01},
		[]byte("(unterminated"),
		[]byte("<4 14"),
		[]byte("/"),
		[]byte("\\"),
		[]byte("<<<"),
	}
	for _, in := range inputs {
		tokens := Tokenize(in)
		require.NotEmpty(t, tokens)
		assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type)
	}
}

func TestTokenByteRanges(t *testing.T) {
	data := []byte("10 (ab) /F1")
	tokens := Tokenize(data)

	require.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 2, tokens[0].End)

	require.Equal(t, TokenString, tokens[1].Type)
	assert.Equal(t, 3, tokens[1].Start)
	assert.Equal(t, 7, tokens[1].End)

	require.Equal(t, TokenName, tokens[2].Type)
	assert.Equal(t, 8, tokens[2].Start)
	assert.Equal(t, 11, tokens[2].End)
}
