// Package segment implements the bracket-balanced token grouping shared
// by every matcher in eval: given a flat token slice, pull out the next
// "unit" — either a single non-bracket token or a whole `(...)`/`[...]`/
// `{...}` run — without knowing anything about what the unit means.
//
// Grounded on NextToken in original_source/fjson.py: every fJsonXxx.match
// method there calls NextToken(tokens).next(offset) in a loop to walk its
// token slice one top-level unit at a time. This package is that primitive,
// plus the top-level-separator split every matcher builds on top of it.
package segment

import (
	"github.com/sjrsjz/fJson/ferr"
	"github.com/sjrsjz/fJson/token"
)

// Next returns the next top-level unit starting at tokens[0]: either a
// single token, or a full bracket-balanced run beginning with an opener.
// It returns the consumed tokens. A stray closing bracket
// at the top of the (empty) stack ends the scan without consuming it,
// matching NextToken's "return what we have so far" behavior on an
// unmatched closer — callers see a zero-length result in that case.
//
// Next never reports an error for an unmatched *opening* bracket: it
// simply consumes to the end of tokens, and callers detect the
// incompleteness via Walk's second return value.
func Next(tokens []token.Token) ([]token.Token, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	var stack []string
	i := 0
	for {
		t := tokens[i]
		switch {
		case t.IsOpener():
			stack = append(stack, t.Lexeme)
		case t.IsCloser():
			if len(stack) == 0 {
				return tokens[:i], nil
			}
			top := stack[len(stack)-1]
			want, _ := token.CloserFor(top)
			if want != t.Lexeme {
				return nil, ferr.NewParse(t.Position, "mismatched closing bracket %q, expected %q", t.Lexeme, want)
			}
			stack = stack[:len(stack)-1]
		}
		i++
		if len(stack) == 0 || i >= len(tokens) {
			break
		}
	}
	return tokens[:i], nil
}

// Walk partitions tokens into consecutive top-level units via repeated
// calls to Next. complete is false when the final unit was cut short by
// running out of input while brackets were still open (an unterminated
// group) or when a stray top-level closing bracket stopped the walk, and
// true when every unit closed cleanly.
func Walk(tokens []token.Token) (units [][]token.Token, complete bool, err error) {
	offset := 0
	for offset < len(tokens) {
		unit, err := Next(tokens[offset:])
		if err != nil {
			return nil, false, err
		}
		if len(unit) == 0 {
			// A stray top-level closer: stop, leaving it unconsumed.
			return units, false, nil
		}
		units = append(units, unit)
		offset += len(unit)
		if isOpenEnded(unit) {
			return units, false, nil
		}
	}
	return units, true, nil
}

// isOpenEnded reports whether unit is a bracket run whose last token is
// not the matching closer, i.e. Next ran off the end of the slice with
// brackets still open.
func isOpenEnded(unit []token.Token) bool {
	depth := 0
	for _, t := range unit {
		switch {
		case t.IsOpener():
			depth++
		case t.IsCloser():
			depth--
		}
	}
	return depth > 0
}

// SplitOnTopLevel splits tokens on every top-level occurrence of a
// single-character Symbol separator (e.g. "," or ";"), the way
// fJsonDict/fJsonTuple/fJsonList/fJsonSet accumulate key_list/value_list
// between commas. Empty leading/trailing/consecutive partitions are
// included verbatim; callers that want them dropped (Tuple, List, Set)
// filter afterward, per the "empty partitions are dropped before
// evaluation" rule, while Dict declines on an empty entry. complete
// mirrors Walk's.
func SplitOnTopLevel(tokens []token.Token, sep string) (parts [][]token.Token, complete bool, err error) {
	units, complete, err := Walk(tokens)
	if err != nil {
		return nil, false, err
	}
	var current []token.Token
	for _, u := range units {
		if len(u) == 1 && u[0].IsSymbol(sep) {
			parts = append(parts, current)
			current = nil
			continue
		}
		current = append(current, u...)
	}
	parts = append(parts, current)
	return parts, complete, nil
}
