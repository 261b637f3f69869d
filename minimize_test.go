package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_minimize(t *testing.T) {
	t.Run("all-final complete automaton collapses", func(t *testing.T) {
		// three states over three letters, total transition function,
		// every state final: all states are equivalent
		a, err := DeterministicFromEdges([]Edge{
			{10, 10, 0}, {10, 20, 1}, {10, 30, 2},
			{20, 30, 0}, {20, 10, 1}, {20, 20, 2},
			{30, 20, 0}, {30, 30, 1}, {30, 10, 2},
		}, 10, nil)
		assert.Nil(t, err)

		m := Minimize(a)
		assert.Equal(t, 1, m.NumStates())
		assert.True(t, IsComplete(m))
		assert.True(t, runWord(m, []int{}))
		assert.True(t, runWord(m, []int{2, 0, 1, 1, 0}))
	})

	t.Run("distinguishable states survive", func(t *testing.T) {
		a, err := DeterministicFromEdges([]Edge{{0, 1, 0}}, 0, []int{1})
		assert.Nil(t, err)

		m := Minimize(a)
		assert.Equal(t, 2, m.NumStates())
		assert.False(t, runWord(m, []int{}))
		assert.True(t, runWord(m, []int{0}))
		assert.False(t, runWord(m, []int{0, 0}))
	})

	t.Run("redundant cycle", func(t *testing.T) {
		// a three-state cycle recognizing every word over one letter
		a, err := DeterministicFromEdges([]Edge{{0, 1, 0}, {1, 2, 0}, {2, 0, 0}}, 0, nil)
		assert.Nil(t, err)

		m := Minimize(a)
		assert.Equal(t, 1, m.NumStates())
		assert.True(t, runWord(m, []int{0, 0, 0, 0}))
	})

	t.Run("dead state joins the sink class", func(t *testing.T) {
		// state 2 is reachable but no final state is, so it behaves
		// like the completion sink and stays merged with it
		a, err := DeterministicFromEdges([]Edge{{0, 1, 0}, {0, 2, 1}, {2, 2, 0}}, 0, []int{1})
		assert.Nil(t, err)

		m := Minimize(a)
		assert.Equal(t, 3, m.NumStates())
		assert.True(t, runWord(m, []int{0}))
		assert.False(t, runWord(m, []int{1}))
		assert.False(t, runWord(m, []int{1, 0}))
	})

	t.Run("empty automaton", func(t *testing.T) {
		m := Minimize(NewEmpty(1))
		assert.Equal(t, 0, m.NumStates())
		assert.False(t, m.HasInitial())
	})

	t.Run("idempotent", func(t *testing.T) {
		a, err := DeterministicFromEdges([]Edge{
			{0, 1, 0}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}, {3, 3, 0},
		}, 0, []int{3})
		assert.Nil(t, err)

		m1 := Minimize(a)
		m2 := Minimize(m1)
		assert.Equal(t, m1.NumStates(), m2.NumStates())
		same, err := SameLanguage(m1, m2, Dict{0, 1})
		assert.Nil(t, err)
		assert.True(t, same)
		same, err = SameLanguage(m1, a, Dict{0, 1})
		assert.Nil(t, err)
		assert.True(t, same)
	})
}
