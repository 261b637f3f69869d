package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mergeSample is a three-state automaton over two source letters with one
// final state, used to exercise letter-merging determinization.
func mergeSample(t *testing.T) *Automaton {
	a, err := DeterministicFromEdges([]Edge{{0, 1, 0}, {0, 2, 1}, {2, 2, 0}}, 0, []int{1})
	assert.Nil(t, err)
	return a
}

func Test_determinize(t *testing.T) {
	t.Run("merging letters", func(t *testing.T) {
		// both source letters collapse onto destination letter 0
		r, err := Determinize(mergeSample(t), Dict{0, 0}, DeterminizeOptions{})
		assert.Nil(t, err)
		assert.Equal(t, 1, r.NumLetters())
		assert.Equal(t, 3, r.NumStates())
		assert.False(t, runWord(r, []int{}))
		assert.True(t, runWord(r, []int{0}))
		assert.False(t, runWord(r, []int{0, 0}))
		assert.False(t, runWord(r, []int{0, 0, 0}))
	})

	t.Run("empty subset sink", func(t *testing.T) {
		a, err := DeterministicFromEdges([]Edge{{0, 1, 0}}, 0, []int{1})
		assert.Nil(t, err)

		r, err := Determinize(a, Dict{0}, DeterminizeOptions{})
		assert.Nil(t, err)
		assert.Equal(t, 3, r.NumStates())
		assert.True(t, IsComplete(r))
		assert.True(t, runWord(r, []int{0}))
		assert.False(t, runWord(r, []int{0, 0}))

		r, err = Determinize(a, Dict{0}, DeterminizeOptions{NoEmpty: true})
		assert.Nil(t, err)
		assert.Equal(t, 2, r.NumStates())
		assert.False(t, IsComplete(r))
		assert.Equal(t, NoState, r.Step(1, 0))
	})

	t.Run("only finals", func(t *testing.T) {
		r, err := Determinize(mergeSample(t), Dict{0, 0}, DeterminizeOptions{OnlyFinals: true})
		assert.Nil(t, err)
		// the subset after one letter contains the final state, its
		// successor does not and is never expanded
		assert.Equal(t, 2, r.NumStates())
		assert.True(t, runWord(r, []int{0}))
		assert.False(t, runWord(r, []int{0, 0}))
	})

	t.Run("no finals", func(t *testing.T) {
		r, err := Determinize(mergeSample(t), Dict{0, 0}, DeterminizeOptions{NoFinals: true})
		assert.Nil(t, err)
		// every successor subset touches the final state, so only the
		// initial state survives, forced final
		assert.Equal(t, 1, r.NumStates())
		assert.True(t, runWord(r, []int{}))
		assert.False(t, runWord(r, []int{0}))
	})

	t.Run("no initial state", func(t *testing.T) {
		r, err := Determinize(NewEmpty(2), Dict{0, 0}, DeterminizeOptions{})
		assert.Nil(t, err)
		assert.Equal(t, 0, r.NumStates())
		assert.False(t, r.HasInitial())

		r, err = Determinize(NewEmpty(2), Dict{0, 0}, DeterminizeOptions{NoFinals: true})
		assert.Nil(t, err)
		assert.Equal(t, 1, r.NumStates())
		assert.True(t, runWord(r, []int{}))
		assert.True(t, runWord(r, []int{0, 0, 0}))
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := Determinize(mergeSample(t), Dict{0}, DeterminizeOptions{})
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func Test_determinizeN(t *testing.T) {
	t.Run("words ending in letter 0", func(t *testing.T) {
		n, err := NonDeterministicFromEdges(
			[]Edge{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}}, []int{0}, []int{1})
		assert.Nil(t, err)

		r, err := DeterminizeN(n, false)
		assert.Nil(t, err)
		assert.Equal(t, 2, r.NumStates())
		assert.True(t, runWord(r, []int{0}))
		assert.True(t, runWord(r, []int{1, 0}))
		assert.True(t, runWord(r, []int{0, 1, 0}))
		assert.False(t, runWord(r, []int{}))
		assert.False(t, runWord(r, []int{1}))
		assert.False(t, runWord(r, []int{0, 1}))
	})

	t.Run("sink materialization", func(t *testing.T) {
		n, err := NonDeterministicFromEdges([]Edge{{0, 1, 0}}, []int{0}, []int{1})
		assert.Nil(t, err)

		r, err := DeterminizeN(n, true)
		assert.Nil(t, err)
		assert.Equal(t, 3, r.NumStates())
		assert.True(t, IsComplete(r))

		r, err = DeterminizeN(n, false)
		assert.Nil(t, err)
		assert.Equal(t, 2, r.NumStates())
		assert.False(t, IsComplete(r))
	})

	t.Run("no initial state", func(t *testing.T) {
		n, err := NonDeterministicFromEdges([]Edge{{0, 1, 0}}, nil, []int{1})
		assert.Nil(t, err)
		r, err := DeterminizeN(n, false)
		assert.Nil(t, err)
		assert.False(t, r.HasInitial())
		assert.True(t, EmptyLanguage(r))
	})
}

func Test_determinizeAfterMinimizeKeepsLanguage(t *testing.T) {
	a, err := DeterministicFromEdges([]Edge{{0, 1, 0}, {0, 2, 1}, {1, 2, 1}}, 0, []int{2})
	assert.Nil(t, err)

	m := Minimize(a)
	r, err := Determinize(m, Dict{0, 1}, DeterminizeOptions{})
	assert.Nil(t, err)

	same, err := SameLanguage(r, a, Dict{0, 1})
	assert.Nil(t, err)
	assert.True(t, same)
}
