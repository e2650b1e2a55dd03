package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchTuple implements the top-level-comma tuple form. It operates on
// the raw, unstripped token slice (no bracket requirement): when the
// whole slice is one bracketed run, the segmenter's first unit
// swallows all of it, so no top-level comma is ever found
// and this matcher declines — exactly the mechanism spec.md §4.3.4
// describes for why `{a,b}` falls through to Dict/Set instead of Tuple.
// `(a,b)` declines the same way here; Grouping strips the parens and
// re-enters the full matcher list, where Tuple then matches the bare
// "a,b" correctly.
func matchTuple(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	parts, _, err := segment.SplitOnTopLevel(tokens, ",")
	if err != nil {
		return nil, false, err
	}
	if len(parts) < 2 {
		return nil, false, nil
	}
	out := make(value.Tuple, 0, len(parts))
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
