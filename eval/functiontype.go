package eval

import (
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchFunctionType implements `A -> B`, coercing each side to a Tuple.
func matchFunctionType(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	left, right, _, ok, err := splitBinaryOp(tokens, "->")
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
	return value.FunctionType{
		Domain:   asTuple(leftValue),
		Codomain: asTuple(rightValue),
	}, true, nil
}

func asTuple(v value.Value) value.Tuple {
	if t, ok := v.(value.Tuple); ok {
		return t
	}
	return value.Tuple{v}
}
