package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Empty(t *testing.T) {
	c, err := NewBuilder().Finish()
	require.NoError(t, err)

	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.Range())
	assert.Equal(t, EvalAll, c.Eval())
	_, ok := c.Latest()
	assert.False(t, ok)
	assert.Equal(t, "all lines", c.String())
}

func TestBuilder_AddKeyword(t *testing.T) {
	c, err := NewBuilder().
		AddKeyword("word1").
		AddKeyword("word2").
		Finish()
	require.NoError(t, err)
	assert.Equal(t, []string{"word1", "word2"}, c.Keywords())
}

func TestBuilder_ConflictingRanges(t *testing.T) {
	tests := []struct {
		name   string
		first  RangeSelector
		second RangeSelector
	}{
		{name: "head and line-range", first: Head{N: 5}, second: LineRange{Lower: 0, Upper: 1}},
		{name: "line-range and tail", first: LineRange{Lower: 0, Upper: 1}, second: Tail{N: 5}},
		{name: "head and tail", first: Head{N: 5}, second: Tail{N: 5}},
		{name: "head twice", first: Head{N: 1}, second: Head{N: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().SetRange(tt.first).SetRange(tt.second).Finish()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConflictingRangeSelectors))
			assert.True(t, errors.Is(err, ErrConflictingSelectors))
			assert.Contains(t, err.Error(), "--"+tt.first.Flag())
			assert.Contains(t, err.Error(), "--"+tt.second.Flag())
		})
	}
}

func TestBuilder_Eval(t *testing.T) {
	t.Run("any", func(t *testing.T) {
		c, err := NewBuilder().SetEval(EvalAny).Finish()
		require.NoError(t, err)
		assert.Equal(t, EvalAny, c.Eval())
	})

	t.Run("same strategy twice", func(t *testing.T) {
		c, err := NewBuilder().SetEval(EvalAll).SetEval(EvalAll).Finish()
		require.NoError(t, err)
		assert.Equal(t, EvalAll, c.Eval())
	})

	t.Run("all and any", func(t *testing.T) {
		_, err := NewBuilder().SetEval(EvalAll).SetEval(EvalAny).Finish()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConflictingEvalStrategy))
		assert.True(t, errors.Is(err, ErrConflictingSelectors))
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := NewBuilder().SetEval(EvalStrategy(7)).Finish()
		assert.True(t, errors.Is(err, ErrInvalidValue))
	})
}

func TestBuilder_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{name: "negative head", b: NewBuilder().SetRange(Head{N: -1})},
		{name: "negative tail", b: NewBuilder().SetRange(Tail{N: -3})},
		{name: "negative range", b: NewBuilder().SetRange(LineRange{Lower: -1, Upper: 2})},
		{name: "negative latest", b: NewBuilder().SetLatest(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Finish()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidValue))
			assert.False(t, errors.Is(err, ErrConflictingSelectors))
		})
	}
}

func TestBuilder_KeepsFirstError(t *testing.T) {
	b := NewBuilder().
		SetEval(EvalAll).
		SetEval(EvalAny).
		SetRange(Head{N: 1}).
		SetRange(Tail{N: 1})

	_, err := b.Finish()
	assert.True(t, errors.Is(err, ErrConflictingEvalStrategy))
	assert.False(t, errors.Is(err, ErrConflictingRangeSelectors))
}

func TestBuilder_FinishIsImmutable(t *testing.T) {
	b := NewBuilder().AddKeyword("a").SetLatest(2)
	c, err := b.Finish()
	require.NoError(t, err)

	b.AddKeyword("b").SetLatest(9)

	assert.Equal(t, []string{"a"}, c.Keywords())
	n, ok := c.Latest()
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	kw := c.Keywords()
	kw[0] = "mutated"
	assert.Equal(t, []string{"a"}, c.Keywords())
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, LineRange{Lower: 4, Upper: 4}, SingleLine(4))
}

func TestCriteria_String(t *testing.T) {
	c, err := NewBuilder().
		SetRange(Tail{N: 3}).
		AddKeyword("error").
		SetEval(EvalAny).
		SetLatest(1).
		Finish()
	require.NoError(t, err)
	assert.Equal(t, `tail(3), keywords(any: ["error"]), latest(1)`, c.String())
}
