package eval

import (
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchGrouping implements `(...)`, a pure precedence change: strip the
// parens and re-enter the full matcher list on the inner tokens. This is
// the last matcher tried, so by this point Tuple has already declined on
// the same slice (a comma inside would have been swallowed as one
// top-level bracket unit, per spec.md §4.3.4) — stripping the parens here
// is what lets Tuple see that comma on the next pass.
func matchGrouping(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	if len(tokens) < 2 || !tokens[0].IsSymbol(token.LParen) || !tokens[len(tokens)-1].IsSymbol(token.RParen) {
		return nil, false, nil
	}
	v, err := e.Evaluate(tokens[1 : len(tokens)-1])
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}
