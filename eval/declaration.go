package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matchDeclaration implements `name : type := value`. The value
// component is preserved as raw tokens rather than evaluated: the
// binding is deferred, per spec.md §4.3.2.
func matchDeclaration(e *Evaluator, tokens []token.Token) (value.Value, bool, error) {
	offset := 0
	name, err := segment.Next(tokens)
	if err != nil {
		return nil, false, err
	}
	offset += len(name)
	if len(name) == 0 || offset >= len(tokens) || !tokens[offset].IsSymbol(":") {
		return nil, false, nil
	}
	offset++

	typ, err := segment.Next(tokens[offset:])
	if err != nil {
		return nil, false, err
	}
	offset += len(typ)
	if len(typ) == 0 || offset >= len(tokens) || !tokens[offset].IsSymbol(":=") {
		return nil, false, nil
	}
	offset++

	rest := tokens[offset:]

	nameValue, err := e.Evaluate(name)
	if err != nil {
		return nil, false, err
	}
	typeValue, err := e.Evaluate(typ)
	if err != nil {
		return nil, false, err
	}

	return value.Declaration{Name: nameValue, Type: typeValue, Value: rest}, true, nil
}
