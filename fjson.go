// Package fjson decodes the extended, permissive JSON dialect described
// by its component packages: token (the lexer's output alphabet), lexer
// (scanning and normalization), segment (bracket-balanced grouping), eval
// (the ordered matcher list), and value (the result variant set).
package fjson

import (
	"github.com/sjrsjz/fJson/eval"
	"github.com/sjrsjz/fJson/lexer"
	"github.com/sjrsjz/fJson/value"
)

// Decode is the sole external entry point: lex, drop comments, fuse unary
// minus, and evaluate the full token slice. Adjacent-string concatenation
// is implemented in lexer.ConcatAdjacentStrings but intentionally not
// applied here, per spec.md §4.4.
func Decode(text string, opts ...eval.Option) (value.Value, error) {
	tokens, err := lexer.Lex(text)
	if err != nil {
		return nil, err
	}
	tokens = lexer.RejectComments(tokens)
	tokens = lexer.FuseNegatives(tokens)

	e := eval.New(opts...)
	return e.Evaluate(tokens)
}
