package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchDict implements `{ key: value, ... }`. Grounded on fJsonDict in
// original_source/fjson.py, with one deliberate deviation: the empty
// body `{}` returns an empty Mapping directly rather than being treated
// as one entry with an empty value (which the original's algorithm
// would decline), per spec.md §8 invariant 4 ("decode(\"{}\") ==
// Mapping{}"). Any entry lacking a top-level `:` or whose value segment
// is empty (including a trailing comma's phantom final entry) declines
// the whole match, matching the original exactly.
func matchDict(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	if len(tokens) < 2 || !tokens[0].IsSymbol(token.LBrace) || !tokens[len(tokens)-1].IsSymbol(token.RBrace) {
		return nil, false, nil
	}
	inner := tokens[1 : len(tokens)-1]
	if len(inner) == 0 {
		return value.Mapping{}, true, nil
	}

	entries, _, err := segment.SplitOnTopLevel(inner, ",")
	if err != nil {
		return nil, false, err
	}

	out := make(value.Mapping, len(entries))
	for _, entry := range entries {
		keyTokens, valueTokens, err := splitDictEntry(entry)
		if err != nil {
			return nil, false, err
		}
		if len(valueTokens) == 0 {
			return nil, false, nil
		}
		keyValue, err := e.Evaluate(keyTokens)
		if err != nil {
			return nil, false, err
		}
		key, err := value.Stringify(keyValue)
		if err != nil {
			return nil, false, err
		}
		v, err := e.Evaluate(valueTokens)
		if err != nil {
			return nil, false, err
		}
		out[key] = v
	}
	return out, true, nil
}

// splitDictEntry partitions one dict entry into its key and value token
// runs at the first top-level ":", silently dropping any further
// top-level colons the way the original accumulates everything after the
// first colon into the value stream.
func splitDictEntry(entry []token.Token) (key, value []token.Token, err error) {
	units, _, err := segment.Walk(entry)
	if err != nil {
		return nil, nil, err
	}
	seenColon := false
	for _, u := range units {
		if len(u) == 1 && u[0].IsSymbol(":") {
			seenColon = true
			continue
		}
		if seenColon {
			value = append(value, u...)
		} else {
			key = append(key, u...)
		}
	}
	return key, value, nil
}
