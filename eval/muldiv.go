package eval

import (
	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchMulDiv implements `A * B` and `A / B`, per spec.md §4.3.2's
// MulDiv rules.
func matchMulDiv(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	left, right, op, ok, err := splitBinaryOp(tokens, "*", "/")
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
	v, err := applyMulDiv(op, leftValue, rightValue)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func applyMulDiv(op string, l, r value.Value) (value.Value, error) {
	if la, ok := l.(value.List); ok {
		if ra, ok := r.(value.List); ok {
			if len(la) != len(ra) {
				return nil, ferr.NewType(-1, "invalid mul/div operation: expected same length, got %d and %d", len(la), len(ra))
			}
			out := make(value.List, len(la))
			for i := range la {
				v, err := applyMulDiv(op, la[i], ra[i])
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		}
	}

	if isNumeric(l) && isNumeric(r) {
		return numericMulDiv(op, l, r)
	}

	if op == "/" {
		return nil, ferr.NewType(-1, "invalid div operation: %s / %s", value.TypeName(l), value.TypeName(r))
	}

	switch a := l.(type) {
	case value.String:
		if n, ok := r.(value.Integer); ok {
			return replicateString(a, int64(n)), nil
		}
	case value.Integer:
		switch b := r.(type) {
		case value.String:
			return replicateString(b, int64(a)), nil
		case value.List:
			return replicateList(b, int64(a)), nil
		case value.Bytes:
			return replicateBytes(b, int64(a)), nil
		}
	case value.List:
		if n, ok := r.(value.Integer); ok {
			return replicateList(a, int64(n)), nil
		}
	case value.Bytes:
		if n, ok := r.(value.Integer); ok {
			return replicateBytes(a, int64(n)), nil
		}
	case *value.Set:
		if b, ok := r.(*value.Set); ok {
			return cartesianProduct(a, b)
		}
	}

	return nil, ferr.NewType(-1, "invalid mul/div operation: %s %s %s", value.TypeName(l), op, value.TypeName(r))
}

func isNumeric(v value.Value) bool {
	switch v.(type) {
	case value.Integer, value.Float:
		return true
	default:
		return false
	}
}

func numericMulDiv(op string, l, r value.Value) (value.Value, error) {
	li, lIsInt := l.(value.Integer)
	ri, rIsInt := r.(value.Integer)
	if op == "*" {
		if lIsInt && rIsInt {
			return li * ri, nil
		}
		return asFloat(l) * asFloat(r), nil
	}
	// "/" is always true division, matching Python 3 semantics.
	rf := asFloat(r)
	if rf == 0 {
		return nil, ferr.NewValue(-1, "division by zero")
	}
	return asFloat(l) / rf, nil
}

func asFloat(v value.Value) value.Float {
	switch x := v.(type) {
	case value.Integer:
		return value.Float(float64(x))
	case value.Float:
		return x
	default:
		return 0
	}
}

func replicateString(s value.String, n int64) value.String {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return value.String(out)
}

func replicateBytes(b value.Bytes, n int64) value.Bytes {
	if n <= 0 {
		return value.Bytes{}
	}
	out := make(value.Bytes, 0, len(b)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, b...)
	}
	return out
}

func replicateList(l value.List, n int64) value.List {
	if n <= 0 {
		return value.List{}
	}
	out := make(value.List, 0, len(l)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, l...)
	}
	return out
}

func cartesianProduct(a, b *value.Set) (value.Value, error) {
	out := value.NewSet()
	for _, x := range a.Items() {
		for _, y := range b.Items() {
			if err := out.Add(value.Tuple{x, y}); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
