package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchSet implements `{ a, b, c }` with no top-level colon. There is no
// explicit colon check here: when Dict (tried first) declines on
// colon-bearing input, any entry that still carries an unconsumed
// top-level `:` fails when evaluated recursively below (it is neither a
// single atom nor a complete grammatical form), which is what actually
// keeps Dict-shaped input from ever becoming a Set. Empty partitions from
// a trailing comma are dropped, unlike the original, which would surface
// a spurious null member — dropped for consistency with List/Tuple's
// "empty partitions are dropped" rule.
func matchSet(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	if len(tokens) < 2 || !tokens[0].IsSymbol(token.LBrace) || !tokens[len(tokens)-1].IsSymbol(token.RBrace) {
		return nil, false, nil
	}
	inner := tokens[1 : len(tokens)-1]

	parts, _, err := segment.SplitOnTopLevel(inner, ",")
	if err != nil {
		return nil, false, err
	}

	out := value.NewSet()
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		v, err := e.Evaluate(p)
		if err != nil {
			return nil, false, err
		}
		if err := out.Add(v); err != nil {
			return nil, false, err
		}
	}
	return out, true, nil
}
