package lexer

import "github.com/sjrsjz/fJson/token"

// RejectComments drops every Comment token, mirroring reject_comments in
// the original tokenizer. Comments carry no evaluation meaning; this must
// run before the token slice reaches the evaluator.
func RejectComments(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.Comment {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FuseNegatives merges a unary-minus Symbol into the Number token that
// follows it, producing a single Number token whose lexeme is prefixed
// with "-". A minus is unary when it is the first token in the slice or
// the token directly preceding it is itself a Symbol (an operator or an
// opening/closing bracket can never be followed by a binary minus).
func FuseNegatives(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind == token.Symbol && t.Lexeme == "-" && i+1 < len(tokens) && tokens[i+1].Kind == token.Number {
			prevIsOperandBoundary := len(out) == 0 || out[len(out)-1].Kind == token.Symbol
			if prevIsOperandBoundary {
				next := tokens[i+1]
				out = append(out, token.Token{
					Kind:     token.Number,
					Lexeme:   "-" + next.Lexeme,
					Position: t.Position,
				})
				i++
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// ConcatAdjacentStrings merges runs of consecutive String tokens into a
// single String token, as concat_multi_line_string does in the original
// tokenizer. Decode does not call this by default: spec.md treats
// adjacency of string literals as a parse error rather than implicit
// concatenation, so this pass is offered only for callers that want the
// original's more permissive behavior.
func ConcatAdjacentStrings(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind != token.String {
			out = append(out, t)
			continue
		}
		merged := t.Lexeme
		j := i + 1
		for j < len(tokens) && tokens[j].Kind == token.String {
			merged += tokens[j].Lexeme
			j++
		}
		out = append(out, token.Token{Kind: token.String, Lexeme: merged, Position: t.Position})
		i = j - 1
	}
	return out
}
