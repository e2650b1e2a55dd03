// Package value defines the variant set produced by eval: the materialized
// result of decoding fJson source, plus the handful of helpers (equality,
// stringification, hashing, pretty-printing) that the arithmetic matchers
// and dict/set construction need.
//
// Grounded on the fJsonValue union-by-convention in
// original_source/fjson.py (a Python value is just whatever native type a
// matcher returns: int, float, str, bytes, bool, None, dict, list, set,
// tuple); here it becomes a closed Go interface the way lukeod-gosmi
// models its SMI node kinds as a sum of concrete struct types switched on
// by a Kind enum, except dispatch here is by type switch rather than an
// explicit Kind field, since each variant's shape is already distinct.
package value

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/token"
)

// Value is implemented by every concrete result type the evaluator can
// produce. The method is unexported so the variant set is closed to this
// package.
type Value interface {
	valueNode()
}

type Integer int64

type Float float64

type String string

type Bytes []byte

type Boolean bool

// Null is the singleton absence-of-value, produced by the `null`/`none`
// keywords.
type Null struct{}

// Identifier is an opaque bare word that is not a recognized keyword.
type Identifier string

type List []Value

type Tuple []Value

// Set stores its elements keyed by a canonical hash computed by HashKey,
// preserving first-insertion order for Dump/iteration.
type Set struct {
	order []Value
	seen  map[string]bool
}

func NewSet() *Set { return &Set{seen: map[string]bool{}} }

// Add inserts v into the set, reporting a TypeError if v is not hashable.
// Duplicate insertions (by canonical hash) are no-ops.
func (s *Set) Add(v Value) error {
	key, err := HashKey(v)
	if err != nil {
		return err
	}
	if s.seen[key] {
		return nil
	}
	s.seen[key] = true
	s.order = append(s.order, v)
	return nil
}

func (s *Set) Len() int          { return len(s.order) }
func (s *Set) Items() []Value    { return s.order }
func (s *Set) Contains(v Value) bool {
	key, err := HashKey(v)
	if err != nil {
		return false
	}
	return s.seen[key]
}

type Mapping map[string]Value

// Pipe is the structural result of the `|>` matcher: a bound pair rather
// than an applied call, since the dialect has no function values to apply
// the right side to.
type Pipe struct {
	Left, Right Value
}

// FunctionType is the structural result of the `->` matcher.
type FunctionType struct {
	Domain, Codomain Tuple
}

// Declaration is the structural result of `name : type := value`. Value is
// preserved as raw, unevaluated tokens: the binding is deferred.
type Declaration struct {
	Name  Value
	Type  Value
	Value []token.Token
}

func (Integer) valueNode()      {}
func (Float) valueNode()        {}
func (String) valueNode()       {}
func (Bytes) valueNode()        {}
func (Boolean) valueNode()      {}
func (Null) valueNode()         {}
func (Identifier) valueNode()   {}
func (List) valueNode()         {}
func (Tuple) valueNode()        {}
func (*Set) valueNode()         {}
func (Mapping) valueNode()      {}
func (Pipe) valueNode()         {}
func (FunctionType) valueNode() {}
func (Declaration) valueNode()  {}

// Truthy implementations are deliberately absent: spec.md requires `if`
// conditions to be exactly Boolean (TypeError otherwise), so there is no
// general truthiness coercion anywhere in this package.

// Keywords recognized case-insensitively as atoms, per spec.md §4.3.3.
func KeywordValue(lexeme string) (Value, bool) {
	switch strings.ToLower(lexeme) {
	case "true":
		return Boolean(true), true
	case "false":
		return Boolean(false), true
	case "null", "none":
		return Null{}, true
	default:
		return nil, false
	}
}

// Stringify coerces v to its string form for use as a Mapping key, per the
// Dict matcher's "keys are evaluated then stringified" rule.
func Stringify(v Value) (string, error) {
	switch x := v.(type) {
	case String:
		return string(x), nil
	case Identifier:
		return string(x), nil
	case Integer:
		return strconv.FormatInt(int64(x), 10), nil
	case Float:
		return formatFloat(float64(x)), nil
	case Boolean:
		if x {
			return "true", nil
		}
		return "false", nil
	case Null:
		return "null", nil
	case Bytes:
		return string(x), nil
	default:
		return "", ferr.NewType(-1, "cannot use %s as a mapping key", TypeName(v))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// HashKey computes a canonical string key for set membership and
// deduplication. Only the hashable variants named in spec.md §3
// (integers, floats, strings, bytes, booleans, null, tuples of hashables)
// plus identifiers are supported; anything else is a TypeError.
func HashKey(v Value) (string, error) {
	switch x := v.(type) {
	case Integer:
		return "i:" + strconv.FormatInt(int64(x), 10), nil
	case Float:
		return "f:" + formatFloat(float64(x)), nil
	case String:
		return "s:" + string(x), nil
	case Bytes:
		return "b:" + string(x), nil
	case Boolean:
		if x {
			return "t", nil
		}
		return "F", nil
	case Null:
		return "n", nil
	case Identifier:
		return "d:" + string(x), nil
	case Tuple:
		parts := make([]string, len(x))
		for i, elem := range x {
			k, err := HashKey(elem)
			if err != nil {
				return "", err
			}
			parts[i] = k
		}
		return "T(" + strings.Join(parts, ",") + ")", nil
	default:
		return "", ferr.NewType(-1, "unhashable value: %s", TypeName(v))
	}
}

// TypeName names a Value's variant for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Bytes:
		return "Bytes"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case Identifier:
		return "Identifier"
	case List:
		return "List"
	case Tuple:
		return "Tuple"
	case *Set:
		return "Set"
	case Mapping:
		return "Mapping"
	case Pipe:
		return "Pipe"
	case FunctionType:
		return "FunctionType"
	case Declaration:
		return "Declaration"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Equal reports deep, type-strict structural equality: Integer(1) and
// Float(1.0) are not Equal, matching spec.md's treatment of Integer and
// Float as distinct variants. Declarations compare by Name and Type only;
// their raw Value tokens are not compared.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && (x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y))))
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Null:
		_, ok := b.(Null)
		return ok
	case Identifier:
		y, ok := b.(Identifier)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Tuple:
		y, ok := b.(Tuple)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Set:
		y, ok := b.(*Set)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for _, v := range x.Items() {
			if !y.Contains(v) {
				return false
			}
		}
		return true
	case Mapping:
		y, ok := b.(Mapping)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			yv, present := y[k]
			if !present || !Equal(v, yv) {
				return false
			}
		}
		return true
	case Pipe:
		y, ok := b.(Pipe)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case FunctionType:
		y, ok := b.(FunctionType)
		return ok && Equal(x.Domain, y.Domain) && Equal(x.Codomain, y.Codomain)
	case Declaration:
		y, ok := b.(Declaration)
		return ok && Equal(x.Name, y.Name) && Equal(x.Type, y.Type)
	default:
		return false
	}
}

// Dump renders v for debugging/tracing via repr, which already handles
// Go's recursive struct/slice/map shapes well; used by tests that want a
// readable mismatch diff.
func Dump(v Value) string {
	return repr.String(v, repr.Indent("  "))
}
