package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_accessible(t *testing.T) {
	// state 2 feeds the final state but is unreachable
	a, err := DeterministicFromEdges([]Edge{{0, 1, 0}, {2, 1, 0}}, 0, []int{1})
	assert.Nil(t, err)

	acc := Accessible(a)
	assert.Equal(t, 2, acc.NumStates())
	assert.True(t, runWord(acc, []int{0}))

	coacc := CoAccessible(a)
	assert.Equal(t, 3, coacc.NumStates())

	p := Prune(a)
	assert.Equal(t, 2, p.NumStates())
}

func Test_accessibleWithoutInitial(t *testing.T) {
	a, err := DeterministicFromEdges([]Edge{{0, 1, 0}}, 0, []int{1})
	assert.Nil(t, err)
	a.ClearInitial()
	assert.Equal(t, 0, Accessible(a).NumStates())
	assert.Equal(t, 0, Prune(a).NumStates())
}

func Test_pruneKeepsLanguage(t *testing.T) {
	// state 3 is a reachable dead loop
	a, err := DeterministicFromEdges([]Edge{
		{0, 1, 0}, {1, 2, 1}, {1, 3, 0}, {3, 3, 0},
	}, 0, []int{2})
	assert.Nil(t, err)

	p := Prune(a)
	assert.Equal(t, 3, p.NumStates())
	assert.True(t, runWord(p, []int{0, 1}))
	assert.False(t, runWord(p, []int{0, 0}))

	same, err := SameLanguage(p, a, Dict{0, 1})
	assert.Nil(t, err)
	assert.True(t, same)
}

func Test_pruneInf(t *testing.T) {
	t.Run("acyclic part goes away", func(t *testing.T) {
		a, err := DeterministicFromEdges([]Edge{{0, 1, 0}}, 0, []int{1})
		assert.Nil(t, err)
		assert.Equal(t, 0, PruneInf(a).NumStates())
	})

	t.Run("states reaching a cycle stay", func(t *testing.T) {
		// 0 and 1 reach the loop on 1; state 2, the only final one,
		// does not, so the finite-word language is not preserved
		a, err := DeterministicFromEdges([]Edge{
			{0, 1, 0}, {1, 1, 0}, {1, 2, 1},
		}, 0, []int{2})
		assert.Nil(t, err)

		p := PruneInf(a)
		assert.Equal(t, 2, p.NumStates())
		assert.True(t, EmptyLanguage(p))
		assert.False(t, EmptyLanguage(a))
	})
}

func Test_stronglyConnectedComponents(t *testing.T) {
	t.Run("chain in reverse topological order", func(t *testing.T) {
		a, err := DeterministicFromEdges([]Edge{{0, 1, 0}, {1, 2, 0}}, 0, []int{2})
		assert.Nil(t, err)

		comp, count := StronglyConnectedComponents(a)
		assert.Equal(t, 3, count)
		// every transition goes from a higher component id to a lower
		assert.Greater(t, comp[0], comp[1])
		assert.Greater(t, comp[1], comp[2])
	})

	t.Run("cycle is one component", func(t *testing.T) {
		a, err := DeterministicFromEdges([]Edge{
			{0, 1, 0}, {1, 2, 0}, {2, 0, 0}, {2, 3, 1},
		}, 0, []int{3})
		assert.Nil(t, err)

		comp, count := StronglyConnectedComponents(a)
		assert.Equal(t, 2, count)
		assert.Equal(t, comp[0], comp[1])
		assert.Equal(t, comp[0], comp[2])
		assert.NotEqual(t, comp[0], comp[3])
		assert.Greater(t, comp[0], comp[3])
	})

	t.Run("unreachable states are covered", func(t *testing.T) {
		a := NewAutomaton(3, 1)
		assert.Nil(t, a.SetInitial(0))
		assert.Nil(t, a.SetTransition(1, 0, 2))
		assert.Nil(t, a.SetTransition(2, 0, 1))

		comp, count := StronglyConnectedComponents(a)
		assert.Equal(t, 2, count)
		assert.Equal(t, comp[1], comp[2])
		assert.NotEqual(t, comp[0], comp[1])
	})
}

func Test_componentAdjacency(t *testing.T) {
	a, err := DeterministicFromEdges([]Edge{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, 0, nil)
	assert.Nil(t, err)

	comp, count := StronglyConnectedComponents(a)
	assert.Equal(t, 1, count)

	m := ComponentAdjacency(a, comp, comp[0])
	assert.Equal(t, [][]int{{1, 1}, {1, 0}}, m)
}
