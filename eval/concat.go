package eval

import (
	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchConcat implements `A + B`, per spec.md §4.3.2's Concat rules.
func matchConcat(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	left, right, _, ok, err := splitBinaryOp(tokens, "+")
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
	v, err := concatValues(leftValue, rightValue)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func concatValues(l, r value.Value) (value.Value, error) {
	switch a := l.(type) {
	case value.String:
		if b, ok := r.(value.String); ok {
			return a + b, nil
		}
	case value.List:
		if b, ok := r.(value.List); ok {
			out := make(value.List, 0, len(a)+len(b))
			out = append(out, a...)
			out = append(out, b...)
			return out, nil
		}
	case value.Tuple:
		if b, ok := r.(value.Tuple); ok {
			out := make(value.Tuple, 0, len(a)+len(b))
			out = append(out, a...)
			out = append(out, b...)
			return out, nil
		}
	case value.Bytes:
		if b, ok := r.(value.Bytes); ok {
			out := make(value.Bytes, 0, len(a)+len(b))
			out = append(out, a...)
			out = append(out, b...)
			return out, nil
		}
	case value.Mapping:
		if b, ok := r.(value.Mapping); ok {
			out := make(value.Mapping, len(a)+len(b))
			for k, v := range a {
				out[k] = v
			}
			for k, v := range b {
				out[k] = v
			}
			return out, nil
		}
	case *value.Set:
		if b, ok := r.(*value.Set); ok {
			out := value.NewSet()
			for _, v := range a.Items() {
				if err := out.Add(v); err != nil {
					return nil, err
				}
			}
			for _, v := range b.Items() {
				if err := out.Add(v); err != nil {
					return nil, err
				}
			}
			return out, nil
		}
	case value.Integer:
		switch b := r.(type) {
		case value.Integer:
			return a + b, nil
		case value.Float:
			return value.Float(float64(a)) + b, nil
		}
	case value.Float:
		switch b := r.(type) {
		case value.Integer:
			return a + value.Float(float64(b)), nil
		case value.Float:
			return a + b, nil
		}
	}
	return nil, ferr.NewType(-1, "invalid concat operation: %s + %s", value.TypeName(l), value.TypeName(r))
}
