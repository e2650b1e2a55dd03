package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjrsjz/fJson/lexer"
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	return lexer.RejectComments(toks)
}

func TestNextSingleToken(t *testing.T) {
	toks := lex(t, "1,2")
	unit, err := segment.Next(toks)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{toks[0]}, unit)
}

func TestNextBalancedGroup(t *testing.T) {
	toks := lex(t, "(1,2),3")
	unit, err := segment.Next(toks)
	require.NoError(t, err)
	assert.Equal(t, toks[:5], unit, "the whole (1,2) group is one unit")
}

func TestNextNested(t *testing.T) {
	toks := lex(t, "[1,[2,3]]")
	unit, err := segment.Next(toks)
	require.NoError(t, err)
	assert.Equal(t, toks, unit)
}

func TestNextStrayCloserStopsWithoutConsuming(t *testing.T) {
	toks := lex(t, ")")
	unit, err := segment.Next(toks)
	require.NoError(t, err)
	assert.Empty(t, unit)
}

func TestNextMismatchedBracketErrors(t *testing.T) {
	toks := lex(t, "(1]")
	_, err := segment.Next(toks)
	assert.Error(t, err)
}

func TestWalkCompleteness(t *testing.T) {
	toks := lex(t, "1,2,3")
	units, complete, err := segment.Walk(toks)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Len(t, units, 5) // 1 , 2 , 3

	toks = lex(t, "(1,2")
	_, complete, err = segment.Walk(toks)
	require.NoError(t, err)
	assert.False(t, complete, "unterminated bracket group is incomplete")
}

func TestSplitOnTopLevel(t *testing.T) {
	toks := lex(t, "1,(2,3),4")
	parts, complete, err := segment.SplitOnTopLevel(toks, ",")
	require.NoError(t, err)
	assert.True(t, complete)
	require.Len(t, parts, 3)
	assert.Equal(t, toks[2:7], parts[1], "the parenthesized group stays intact inside its partition")
}

func TestSplitOnTopLevelKeepsEmptyPartitions(t *testing.T) {
	toks := lex(t, "1,,2")
	parts, _, err := segment.SplitOnTopLevel(toks, ",")
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Empty(t, parts[1])
}
