package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjrsjz/fJson/eval"
	"github.com/sjrsjz/fJson/lexer"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

func evaluate(t *testing.T, e *eval.Evaluator, src string) value.Value {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	toks = lexer.FuseNegatives(lexer.RejectComments(toks))
	v, err := e.Evaluate(toks)
	require.NoError(t, err)
	return v
}

func TestNewWithDefaultsEvaluates(t *testing.T) {
	e := eval.New()
	got := evaluate(t, e, "1+2")
	assert.Equal(t, value.Integer(3), got)
}

func TestWithMaxDepthRejectsDeepNesting(t *testing.T) {
	e := eval.New(eval.WithMaxDepth(2))
	src := "((1))"
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	toks = lexer.RejectComments(toks)
	_, err = e.Evaluate(toks)
	assert.Error(t, err, "grouping recurses past the configured depth cap")
}

func TestWithTraceDoesNotBreakEvaluation(t *testing.T) {
	e := eval.New(eval.WithTrace())
	got := evaluate(t, e, `[1,2,3]`)
	want := value.List{value.Integer(1), value.Integer(2), value.Integer(3)}
	assert.True(t, value.Equal(want, got))
}

func TestEvaluateEmptyTokensIsParseError(t *testing.T) {
	e := eval.New()
	_, err := e.Evaluate(nil)
	assert.Error(t, err)
}

func TestEvaluateBareSymbolIsTypeError(t *testing.T) {
	e := eval.New()
	_, err := e.Evaluate([]token.Token{{Kind: token.Symbol, Lexeme: "+", Position: 0}})
	assert.Error(t, err)
}

func TestEvaluateUnrecognizedShapeIsParseError(t *testing.T) {
	e := eval.New()
	toks, err := lexer.Lex(`1 2 3`)
	require.NoError(t, err)
	_, err = e.Evaluate(toks)
	assert.Error(t, err, "three bare atoms in a row form no recognized grammar")
}

func TestIntegerOverflowIsValueError(t *testing.T) {
	e := eval.New()
	toks, err := lexer.Lex(`99999999999999999999999999999999`)
	require.NoError(t, err)
	_, err = e.Evaluate(toks)
	assert.Error(t, err)
}

func TestFloatAtomDecoding(t *testing.T) {
	e := eval.New()
	assert.Equal(t, value.Float(3.14), evaluate(t, e, "3.14"))
	assert.Equal(t, value.Float(0.5), evaluate(t, e, ".5"))
}

func TestIdentifierVersusKeyword(t *testing.T) {
	e := eval.New()
	assert.Equal(t, value.Boolean(true), evaluate(t, e, "true"))
	assert.Equal(t, value.Null{}, evaluate(t, e, "null"))
	assert.Equal(t, value.Identifier("foo"), evaluate(t, e, "foo"))
}
