package eval

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/token"
	"github.com/sjrsjz/fJson/value"
)

// decodeAtom decodes a single token per spec.md §4.3.3.
func decodeAtom(t token.Token) (value.Value, error) {
	switch t.Kind {
	case token.Number:
		return decodeNumber(t)
	case token.String:
		return value.String(t.Lexeme), nil
	case token.Base64:
		raw, err := base64.StdEncoding.DecodeString(t.Lexeme)
		if err != nil {
			return nil, ferr.NewValue(t.Position, "invalid base64")
		}
		return value.Bytes(raw), nil
	case token.Identifier:
		if kw, ok := value.KeywordValue(t.Lexeme); ok {
			return kw, nil
		}
		return value.Identifier(t.Lexeme), nil
	case token.Symbol:
		return nil, ferr.NewType(t.Position, "invalid value")
	default:
		return nil, ferr.NewParse(t.Position, "invalid value")
	}
}

// decodeNumber implements "integer if all-digits (possibly -prefixed),
// else float".
func decodeNumber(t token.Token) (value.Value, error) {
	digits := strings.TrimPrefix(t.Lexeme, "-")
	if isAllDigits(digits) {
		n, err := strconv.ParseInt(t.Lexeme, 10, 64)
		if err != nil {
			return nil, ferr.NewValue(t.Position, "integer literal out of i64 range: %s", t.Lexeme)
		}
		return value.Integer(n), nil
	}
	f, err := strconv.ParseFloat(t.Lexeme, 64)
	if err != nil {
		return nil, ferr.NewValue(t.Position, "malformed numeric literal: %s", t.Lexeme)
	}
	return value.Float(f), nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
