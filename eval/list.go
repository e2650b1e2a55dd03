package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchList implements `[a, b, c]`, dropping empty partitions so a
// trailing comma is tolerated.
func matchList(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	if len(tokens) < 2 || !tokens[0].IsSymbol(token.LBracket) || !tokens[len(tokens)-1].IsSymbol(token.RBracket) {
		return nil, false, nil
	}
	inner := tokens[1 : len(tokens)-1]

	parts, _, err := segment.SplitOnTopLevel(inner, ",")
	if err != nil {
		return nil, false, err
	}

	out := make(value.List, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		v, err := e.Evaluate(p)
		if err != nil {
			return nil, false, err
		}
		out = append(out, v)
	}
	return out, true, nil
}
