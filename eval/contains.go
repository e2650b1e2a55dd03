package eval

import (
	"bytes"
	"strings"

	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchContains implements `A :> B` (membership), per spec.md §4.3.2.
func matchContains(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	left, right, _, ok, err := splitBinaryOp(tokens, ":>")
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
	v, err := contains(leftValue, rightValue)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func contains(needle, haystack value.Value) (value.Value, error) {
	switch h := haystack.(type) {
	case value.List:
		for _, v := range h {
			if value.Equal(v, needle) {
				return value.Boolean(true), nil
			}
		}
		return value.Boolean(false), nil
	case value.Tuple:
		for _, v := range h {
			if value.Equal(v, needle) {
				return value.Boolean(true), nil
			}
		}
		return value.Boolean(false), nil
	case *value.Set:
		return value.Boolean(h.Contains(needle)), nil
	case value.Mapping:
		// The original never coerces the needle: fJsonDict.match() stores
		// keys as str(key), but fJsonContains.match() does a bare
		// `left_value in right_value`, so a non-string needle compares
		// against string keys with no coercion and is always False (e.g.
		// `4 in {"4": 1}` is False in Python). Only String/Identifier
		// needles are matched directly against the map's string keys.
		var key string
		switch n := needle.(type) {
		case value.String:
			key = string(n)
		case value.Identifier:
			key = string(n)
		default:
			return value.Boolean(false), nil
		}
		_, present := h[key]
		return value.Boolean(present), nil
	case value.String:
		n, ok := needle.(value.String)
		if !ok {
			break
		}
		return value.Boolean(strings.Contains(string(h), string(n))), nil
	case value.Bytes:
		n, ok := needle.(value.Bytes)
		if !ok {
			break
		}
		return value.Boolean(bytes.Contains(h, n)), nil
	}
	return nil, ferr.NewType(-1, "invalid contains operation: %s :> %s", value.TypeName(needle), value.TypeName(haystack))
}
