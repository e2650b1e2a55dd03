package eval

import (
	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchIf implements `cond ? then : else`. Both branches are evaluated
// eagerly (matching original_source/fjson.py's fJsonIfExpression, which
// evaluates both sides before picking one) so that a malformed untaken
// branch still surfaces its error, per spec.md §4.3.2's note that tests
// must not depend on short-circuiting.
func matchIf(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	offset := 0
	cond, err := segment.Next(tokens)
	if err != nil {
		return nil, false, err
	}
	offset += len(cond)
	if len(cond) == 0 || offset >= len(tokens) || !tokens[offset].IsSymbol("?") {
		return nil, false, nil
	}
	offset++

	thenTokens, err := segment.Next(tokens[offset:])
	if err != nil {
		return nil, false, err
	}
	offset += len(thenTokens)
	if len(thenTokens) == 0 || offset >= len(tokens) || !tokens[offset].IsSymbol(":") {
		return nil, false, nil
	}
	offset++

	elseTokens := tokens[offset:]

	condValue, err := e.Evaluate(cond)
	if err != nil {
		return nil, false, err
	}
	thenValue, err := e.Evaluate(thenTokens)
	if err != nil {
		return nil, false, err
	}
	elseValue, err := e.Evaluate(elseTokens)
	if err != nil {
		return nil, false, err
	}

	condBool, ok := condValue.(value.Boolean)
	if !ok {
		return nil, false, ferr.NewType(firstPosition(cond), "invalid if condition: expected Boolean, got %s", value.TypeName(condValue))
	}
	if condBool {
		return thenValue, true, nil
	}
	return elseValue, true, nil
}
