package eval

import (
	"go.uber.org/zap"

	"github.com/sjrsjz/fJson/token"
)

// Evaluator walks a token slice through the fixed matcher list and
// produces a value.Value. Build one with New: with no options it logs
// nothing and caps recursion at defaultMaxDepth. The zero value is not
// usable: its depth cap is 0, so Evaluate rejects every input with a
// "depth exceeded" error.
type Evaluator struct {
	logger   *zap.Logger
	maxDepth int
	depth    int
}

const defaultMaxDepth = 256

// New builds an Evaluator, applying opts over sane defaults.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{logger: zap.NewNop(), maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger attaches a caller-supplied zap logger; every matcher attempt
// emits a Debug record naming the matcher and the token count, and a
// matcher that claims the slice emits a second one (declines and result
// values are not logged), reviving the
// DEBUG=True per-matcher print() trace from the original tokenizer/matcher
// without forcing stdout output on every caller.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithTrace is a development convenience: a console-encoded, debug-level
// logger suitable for watching matcher dispatch while iterating on the
// grammar.
func WithTrace() Option {
	return func(e *Evaluator) {
		cfg := zap.NewDevelopmentConfig()
		logger, err := cfg.Build()
		if err != nil {
			return
		}
		e.logger = logger
	}
}

// WithMaxDepth overrides the recursion depth cap (default 256, per
// spec.md §5's "recommended ≥ 256").
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) { e.maxDepth = n }
}

// traceTry logs a matcher's attempt at a token slice.
func (e *Evaluator) traceTry(matcher string, tokens []token.Token) {
	if ce := e.logger.Check(zap.DebugLevel, "matcher try"); ce != nil {
		ce.Write(zap.String("matcher", matcher), zap.Int("tokens", len(tokens)))
	}
}

// traceMatch logs that a matcher claimed a token slice.
func (e *Evaluator) traceMatch(matcher string) {
	if ce := e.logger.Check(zap.DebugLevel, "matcher matched"); ce != nil {
		ce.Write(zap.String("matcher", matcher))
	}
}
