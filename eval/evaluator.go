// Package eval implements the ordered-backtracking matcher/evaluator:
// given a flat token slice, it tries a fixed sequence of grammar matchers
// and returns the first one that claims the slice, constructing a
// value.Value eagerly as it goes. There is no explicit AST: each matcher
// both recognizes its grammatical form and computes its result in the
// same pass, following original_source/fjson.py's fJsonXxx.match() classes
// (fJsonDict, fJsonList, fJsonTuple, fJsonSet, fJsonPipe, ...), one
// function per file here instead of one class per form there.
package eval

import (
	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// matcher tries to interpret the whole of tokens as its grammatical form.
// matched is false to mean "does not apply, try the next matcher" — the
// Option<Expr>::None of spec.md §9. Any error aborts the whole evaluation,
// matching the "first error aborts" policy of spec.md §7.
type matcher struct {
	name string
	try  func(e *Evaluator, tokens []token.Token) (value.Value, bool, error)
}

// matchers is the authoritative ordered list from spec.md §4.3.1. The
// order is load-bearing: it encodes operator precedence, weakest-binding
// first, and must never be reordered or short-circuited.
var matchers = []matcher{
	{"Lines", matchLines},
	{"Tuple", matchTuple},
	{"Declaration", matchDeclaration},
	{"Pipe", matchPipe},
	{"If", matchIf},
	{"Concat", matchConcat},
	{"MulDiv", matchMulDiv},
	{"Contains", matchContains},
	{"Argument", matchArgument},
	{"FunctionType", matchFunctionType},
	{"Dict", matchDict},
	{"Set", matchSet},
	{"List", matchList},
	{"Grouping", matchGrouping},
}

// Evaluate runs the token slice through the fixed matcher list and returns
// the resulting value.
func (e *Evaluator) Evaluate(tokens []token.Token) (value.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.maxDepth {
		return nil, ferr.NewParse(firstPosition(tokens), "depth exceeded")
	}

	for _, m := range matchers {
		e.traceTry(m.name, tokens)
		v, matched, err := m.try(e, tokens)
		if err != nil {
			return nil, err
		}
		if matched {
			e.traceMatch(m.name)
			return v, nil
		}
	}

	if len(tokens) == 1 {
		return decodeAtom(tokens[0])
	}

	return nil, invalidValueError(tokens)
}

// invalidValueError produces a more specific ParseError when the token
// slice is obviously malformed (an unterminated bracket group), and a
// generic "invalid value" error otherwise.
func invalidValueError(tokens []token.Token) error {
	if len(tokens) == 0 {
		return ferr.NewParse(-1, "invalid value: empty token slice")
	}
	if _, complete, err := segment.Walk(tokens); err == nil && !complete {
		return ferr.NewParse(tokens[0].Position, "unmatched bracket")
	}
	return ferr.NewParse(tokens[0].Position, "invalid value")
}

func firstPosition(tokens []token.Token) int {
	if len(tokens) == 0 {
		return -1
	}
	return tokens[0].Position
}
