package query

import (
	"fmt"
	"strings"

	"github.com/TimelordUK/logcli/internal/source"
)

// RangeSelector restricts lines by position. The implementations are
// Head, Tail and LineRange; a nil selector keeps every line.
type RangeSelector interface {
	// Flag is the command line flag that requests the selector.
	Flag() string
	validate() error
	relative() bool
	apply(lines []source.Line) []source.Line
}

// Head keeps the first N lines of a file.
type Head struct {
	N int
}

// Tail keeps the last N lines of a file.
type Tail struct {
	N int
}

// LineRange keeps lines whose index lies in [Lower, Upper].
type LineRange struct {
	Lower int
	Upper int
}

// SingleLine is a LineRange selecting only index n.
func SingleLine(n int) LineRange {
	return LineRange{Lower: n, Upper: n}
}

func (Head) Flag() string      { return "head" }
func (Tail) Flag() string      { return "tail" }
func (LineRange) Flag() string { return "line-range" }

func (Head) relative() bool      { return true }
func (Tail) relative() bool      { return true }
func (LineRange) relative() bool { return false }

func (h Head) validate() error {
	if h.N < 0 {
		return fmt.Errorf("%w: --head %d must not be negative", ErrInvalidValue, h.N)
	}
	return nil
}

func (t Tail) validate() error {
	if t.N < 0 {
		return fmt.Errorf("%w: --tail %d must not be negative", ErrInvalidValue, t.N)
	}
	return nil
}

func (r LineRange) validate() error {
	if r.Lower < 0 || r.Upper < 0 {
		return fmt.Errorf("%w: --line-range %d %d must not be negative", ErrInvalidValue, r.Lower, r.Upper)
	}
	return nil
}

func (h Head) String() string      { return fmt.Sprintf("head(%d)", h.N) }
func (t Tail) String() string      { return fmt.Sprintf("tail(%d)", t.N) }
func (r LineRange) String() string { return fmt.Sprintf("line-range(%d..=%d)", r.Lower, r.Upper) }

// EvalStrategy decides how multiple keywords combine.
type EvalStrategy int

const (
	// EvalAll keeps a line only when it contains every keyword.
	EvalAll EvalStrategy = iota
	// EvalAny keeps a line when it contains at least one keyword.
	EvalAny
)

// String returns the flag name of the strategy
func (e EvalStrategy) String() string {
	if e == EvalAny {
		return "any"
	}
	return "all"
}

// Criteria is a validated selection. Build it with a Builder.
type Criteria struct {
	keywords []string
	rng      RangeSelector
	eval     EvalStrategy
	latest   *int
}

// Keywords returns a copy of the keyword list
func (c *Criteria) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

// Range returns the range selector, nil when none is set
func (c *Criteria) Range() RangeSelector {
	return c.rng
}

// Eval returns the keyword evaluation strategy
func (c *Criteria) Eval() EvalStrategy {
	return c.eval
}

// Latest returns the latest-N trim and whether it is set
func (c *Criteria) Latest() (int, bool) {
	if c.latest == nil {
		return 0, false
	}
	return *c.latest, true
}

// IsEmpty reports whether the criteria keep every line
func (c *Criteria) IsEmpty() bool {
	return len(c.keywords) == 0 && c.rng == nil && c.latest == nil
}

// String describes the criteria for diagnostics
func (c *Criteria) String() string {
	var parts []string
	if c.rng != nil {
		parts = append(parts, fmt.Sprint(c.rng))
	}
	if len(c.keywords) > 0 {
		parts = append(parts, fmt.Sprintf("keywords(%s: %q)", c.eval, c.keywords))
	}
	if c.latest != nil {
		parts = append(parts, fmt.Sprintf("latest(%d)", *c.latest))
	}
	if len(parts) == 0 {
		return "all lines"
	}
	return strings.Join(parts, ", ")
}

// Builder accumulates a selection and validates it as it goes.
// The first error is kept and later calls become no-ops.
type Builder struct {
	c       Criteria
	evalSet bool
	err     error
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// AddKeyword appends a keyword
func (b *Builder) AddKeyword(word string) *Builder {
	if b.err != nil {
		return b
	}
	b.c.keywords = append(b.c.keywords, word)
	return b
}

// SetRange sets the range selector. Only one selector may be set.
func (b *Builder) SetRange(sel RangeSelector) *Builder {
	if b.err != nil || sel == nil {
		return b
	}
	if b.c.rng != nil {
		b.err = fmt.Errorf("%w (got --%s and --%s)", ErrConflictingRangeSelectors, b.c.rng.Flag(), sel.Flag())
		return b
	}
	if err := sel.validate(); err != nil {
		b.err = err
		return b
	}
	b.c.rng = sel
	return b
}

// SetEval sets the keyword evaluation strategy. Asking for a different
// strategy than one already set is a conflict.
func (b *Builder) SetEval(strategy EvalStrategy) *Builder {
	if b.err != nil {
		return b
	}
	if strategy != EvalAll && strategy != EvalAny {
		b.err = fmt.Errorf("%w: unknown evaluation strategy %d", ErrInvalidValue, int(strategy))
		return b
	}
	if b.evalSet && b.c.eval != strategy {
		b.err = ErrConflictingEvalStrategy
		return b
	}
	b.c.eval = strategy
	b.evalSet = true
	return b
}

// SetLatest trims the result to its last n lines
func (b *Builder) SetLatest(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("%w: --latest %d must not be negative", ErrInvalidValue, n)
		return b
	}
	b.c.latest = &n
	return b
}

// Finish returns the criteria or the first error encountered
func (b *Builder) Finish() (*Criteria, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := b.c
	c.keywords = append([]string(nil), b.c.keywords...)
	if b.c.latest != nil {
		n := *b.c.latest
		c.latest = &n
	}
	return &c, nil
}
