// Package query selects lines from a file.
//
// A Criteria value is assembled with a Builder, which rejects conflicting
// selections (two range selectors, or both evaluation strategies) before
// any file is read. A Pipeline then applies the criteria to the lines of
// one file in a fixed order:
//
//  1. relative range (Head, Tail)
//  2. absolute range (LineRange)
//  3. keywords, combined with EvalAll or EvalAny
//  4. latest-N trim
//
// Stages only remove lines. The result is always a subsequence of the
// input in its original order, and original line indices are kept.
package query
