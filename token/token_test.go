package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjrsjz/fJson/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.EOF, "EOF"},
		{token.Comment, "Comment"},
		{token.Number, "Number"},
		{token.String, "String"},
		{token.Symbol, "Symbol"},
		{token.Identifier, "Identifier"},
		{token.Base64, "Base64"},
		{token.Kind(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestIsSymbol(t *testing.T) {
	tok := token.Token{Kind: token.Symbol, Lexeme: "+"}
	assert.True(t, tok.IsSymbol("+"))
	assert.False(t, tok.IsSymbol("-"))

	word := token.Token{Kind: token.Identifier, Lexeme: "+"}
	assert.False(t, word.IsSymbol("+"), "a non-Symbol token never matches IsSymbol regardless of lexeme")
}

func TestOpenerCloser(t *testing.T) {
	open := token.Token{Kind: token.Symbol, Lexeme: token.LBrace}
	require.True(t, open.IsOpener())
	require.False(t, open.IsCloser())

	closer, ok := token.CloserFor(token.LBrace)
	require.True(t, ok)
	assert.Equal(t, token.RBrace, closer)

	close := token.Token{Kind: token.Symbol, Lexeme: token.RBracket}
	assert.True(t, close.IsCloser())
	assert.False(t, close.IsOpener())

	_, ok = token.CloserFor(token.RBrace)
	assert.False(t, ok, "a closer is not itself an opener")
}
