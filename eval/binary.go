package eval

import (
	"github.com/sjrsjz/fJson/segment"
	"github.com/sjrsjz/fJson/token"
)

// splitBinaryOp implements the shared left/middle/right walk used by
// Pipe, Concat, MulDiv, Contains, and FunctionType: the first top-level
// segment is the left operand, the second top-level segment must be a
// single Symbol token naming one of ops, and everything after it is the
// right operand, evaluated right-recursively by the caller rather than
// split any further here.
//
// Grounded on fJsonConcat/fJsonMulAndDiv/fJsonContains/fJsonPipe/
// fJsonFunctionType in original_source/fjson.py, which all repeat this
// exact three-step NextToken walk.
func splitBinaryOp(tokens []token.Token, ops ...string) (left, right []token.Token, op string, ok bool, err error) {
	left, err = segment.Next(tokens)
	if err != nil {
		return nil, nil, "", false, err
	}
	if len(left) == 0 {
		return nil, nil, "", false, nil
	}
	rest := tokens[len(left):]
	middle, err := segment.Next(rest)
	if err != nil {
		return nil, nil, "", false, err
	}
	if len(middle) != 1 || middle[0].Kind != token.Symbol {
		return nil, nil, "", false, nil
	}
	for _, o := range ops {
		if middle[0].Lexeme == o {
			return left, rest[len(middle):], o, true, nil
		}
	}
	return nil, nil, "", false, nil
}
