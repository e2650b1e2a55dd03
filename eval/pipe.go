package eval

import (
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchPipe implements `A |> B`. The result is the bound pair, not an
// applied call: the dialect has nothing to apply the right side to.
func matchPipe(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	left, right, _, ok, err := splitBinaryOp(tokens, "|>")
	if err != nil || !ok {
		return nil, false, err
	}
	leftValue, err := e.Evaluate(left)
	if err != nil {
		return nil, false, err
	}
	rightValue, err := e.Evaluate(right)
	if err != nil {
		return nil, false, err
	}
	return value.Pipe{Left: leftValue, Right: rightValue}, true, nil
}
