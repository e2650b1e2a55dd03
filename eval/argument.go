package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchArgument implements repeating `-- key [segment...]` groups,
// activating only when the first token is exactly `--`. Grounded on
// fJsonArgument in original_source/fjson.py: walk top-level units,
// starting a new (key, values) pair at every `--` and accumulating
// subsequent units as that key's value segments until the next `--`.
func matchArgument(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	if len(tokens) < 2 || !tokens[0].IsSymbol("--") {
		return nil, false, nil
	}

	units, _, err := segment.Walk(tokens)
	if err != nil {
		return nil, false, err
	}

	type pair struct {
		key    []token.Token
		values [][]token.Token
	}
	var pairs []pair
	var current *pair

	for _, u := range units {
		if len(u) == 1 && u[0].IsSymbol("--") {
			if current != nil && current.key != nil {
				pairs = append(pairs, *current)
			}
			current = &pair{}
			continue
		}
		if current == nil {
			// A unit before the first "--": matchArgument already required
			// the slice to start with "--", so this cannot happen.
			return nil, false, nil
		}
		if current.key == nil {
			current.key = u
			continue
		}
		current.values = append(current.values, u)
	}
	if current != nil && current.key != nil {
		pairs = append(pairs, *current)
	}
	if len(pairs) == 0 {
		return nil, false, nil
	}

	out := make(value.Mapping, len(pairs))
	for _, p := range pairs {
		keyValue, err := e.Evaluate(p.key)
		if err != nil {
			return nil, false, err
		}
		key, err := value.Stringify(keyValue)
		if err != nil {
			return nil, false, err
		}
		values := make(value.List, 0, len(p.values))
		for _, seg := range p.values {
			v, err := e.Evaluate(seg)
			if err != nil {
				return nil, false, err
			}
			values = append(values, v)
		}
		out[key] = values
	}
	return out, true, nil
}
