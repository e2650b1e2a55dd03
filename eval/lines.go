package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchLines implements the `;` statement-sequencing form: splitting on
// top-level semicolons and, when at least two partitions result,
// evaluating each and returning the results as a List. This is tried
// before every other matcher (spec.md §9's open question: Lines must run
// before Tuple so that `a, b; c, d` parses as Lines(Tuple(a,b),
// Tuple(c,d))).
//
// Unlike Tuple/List/Set/Dict, empty partitions here are not dropped: a
// stray or trailing `;` produces a genuinely empty slice, which the
// evaluator then reports as a ParseError rather than silently yielding a
// null entry.
func matchLines(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	parts, _, err := segment.SplitOnTopLevel(tokens, ";")
	if err != nil {
		return nil, false, err
	}
	if len(parts) < 2 {
		return nil, false, nil
	}
	out := make(value.List, 0, len(parts))
	for _, p := range parts {
		v, err := e.Evaluate(p)
		if err != nil {
			return nil, false, err
		}
		out = append(out, v)
	}
	return out, true, nil
}
