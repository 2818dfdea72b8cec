package cli

import (
	"fmt"
	"strconv"

	"github.com/TimelordUK/logcli/internal/config"
	"github.com/TimelordUK/logcli/internal/query"
)

// buildCriteria turns the parsed flags into validated criteria. Nothing
// here touches the input files.
func buildCriteria(opts *options, defaults config.DefaultsConfig) (*query.Criteria, error) {
	b := query.NewBuilder()

	for _, kw := range opts.keywords {
		b.AddKeyword(kw)
	}

	if len(opts.lineRange) > 0 {
		sel, err := parseLineRange(opts.lineRange)
		if err != nil {
			return nil, err
		}
		b.SetRange(sel)
	}
	if opts.head.set {
		n, err := parseCount("head", &opts.head, defaults.Head)
		if err != nil {
			return nil, err
		}
		b.SetRange(query.Head{N: n})
	}
	if opts.tail.set {
		n, err := parseCount("tail", &opts.tail, defaults.Tail)
		if err != nil {
			return nil, err
		}
		b.SetRange(query.Tail{N: n})
	}

	if opts.all {
		b.SetEval(query.EvalAll)
	}
	if opts.any {
		b.SetEval(query.EvalAny)
	}

	if opts.latest.set {
		n, err := parseCount("latest", &opts.latest, defaults.Latest)
		if err != nil {
			return nil, err
		}
		b.SetLatest(n)
	}

	return b.Finish()
}

func parseCount(name string, c *countFlag, def int) (int, error) {
	n, err := c.value(def)
	if err != nil {
		return 0, fmt.Errorf("%w: --%s %q is not a number", query.ErrInvalidValue, name, c.raw)
	}
	return n, nil
}

func parseLineRange(values []string) (query.RangeSelector, error) {
	bounds := make([]int, len(values))
	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: --line-range %q is not a number", query.ErrInvalidValue, v)
		}
		bounds[i] = n
	}

	switch len(bounds) {
	case 1:
		return query.SingleLine(bounds[0]), nil
	case 2:
		return query.LineRange{Lower: bounds[0], Upper: bounds[1]}, nil
	default:
		return nil, fmt.Errorf("%w: --line-range takes one or two values, got %d", query.ErrInvalidValue, len(bounds))
	}
}
