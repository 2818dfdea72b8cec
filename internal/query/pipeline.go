package query

import (
	"strings"

	"github.com/TimelordUK/logcli/internal/source"
)

// Stats records how many lines survived each stage
type Stats struct {
	Input    int
	Relative int
	Absolute int
	Keywords int
	Latest   int
}

// Pipeline applies Criteria to the lines of a file
type Pipeline struct {
	criteria *Criteria
}

// NewPipeline creates a pipeline for criteria. A nil criteria keeps every line.
func NewPipeline(criteria *Criteria) *Pipeline {
	if criteria == nil {
		criteria = &Criteria{}
	}
	return &Pipeline{criteria: criteria}
}

// Apply returns the selected lines in their original order
func (p *Pipeline) Apply(lines []source.Line) []source.Line {
	res, _ := p.ApplyWithStats(lines)
	return res
}

// ApplyWithStats is Apply plus per-stage survivor counts
func (p *Pipeline) ApplyWithStats(lines []source.Line) ([]source.Line, Stats) {
	c := p.criteria
	stats := Stats{Input: len(lines)}
	res := lines

	if c.rng != nil && c.rng.relative() {
		res = c.rng.apply(res)
	}
	stats.Relative = len(res)

	if c.rng != nil && !c.rng.relative() {
		res = c.rng.apply(res)
	}
	stats.Absolute = len(res)

	if len(c.keywords) > 0 {
		res = filterKeywords(res, c.keywords, c.eval)
	}
	stats.Keywords = len(res)

	if c.latest != nil {
		res = keepLatest(res, *c.latest)
	}
	stats.Latest = len(res)

	return res, stats
}

func (h Head) apply(lines []source.Line) []source.Line {
	n := min(h.N, len(lines))
	return lines[:n:n]
}

func (t Tail) apply(lines []source.Line) []source.Line {
	n := min(t.N, len(lines))
	return lines[len(lines)-n:]
}

func (r LineRange) apply(lines []source.Line) []source.Line {
	if r.Lower > r.Upper {
		return nil
	}
	var res []source.Line
	for _, line := range lines {
		if line.Index >= r.Lower && line.Index <= r.Upper {
			res = append(res, line)
		}
	}
	return res
}

func filterKeywords(lines []source.Line, keywords []string, eval EvalStrategy) []source.Line {
	var res []source.Line
	for _, line := range lines {
		if matchKeywords(line.Text, keywords, eval) {
			res = append(res, line)
		}
	}
	return res
}

// matchKeywords is a case-sensitive substring test
func matchKeywords(text string, keywords []string, eval EvalStrategy) bool {
	if eval == EvalAny {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}

	for _, k := range keywords {
		if !strings.Contains(text, k) {
			return false
		}
	}
	return true
}

func keepLatest(lines []source.Line, n int) []source.Line {
	if n >= len(lines) {
		return lines
	}
	return lines[len(lines)-n:]
}
