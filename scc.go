package automata

import "github.com/bits-and-blooms/bitset"

// StronglyConnectedComponents runs Tarjan's algorithm over the automaton's
// transition graph. comp maps every state to its component id; ids are
// assigned in completion order, which is the reverse of a topological order
// of the condensation: whenever some state of component c1 reaches a state
// of component c2, c2 <= c1. The traversal uses explicit stacks, so the
// state count bounds memory but not goroutine stack depth.
func StronglyConnectedComponents(a *Automaton) (comp []int, count int) {
	n := a.NumStates()
	na := a.numLetters
	comp = make([]int, n)
	low := make([]int, n)
	index := make([]int, n)
	for i := range comp {
		comp[i] = -1
		index[i] = -1
	}
	onStack := bitset.New(uint(n))
	stack := make([]int, 0, n)

	type frame struct {
		state  int
		letter int
	}
	var frames []frame
	next := 0

	for root := 0; root < n; root++ {
		if index[root] != -1 {
			continue
		}
		frames = append(frames[:0], frame{state: root})
		index[root] = next
		low[root] = next
		next++
		stack = append(stack, root)
		onStack.Set(uint(root))

		for len(frames) > 0 {
			fr := &frames[len(frames)-1]
			s := fr.state
			if fr.letter < na {
				f := a.Step(s, fr.letter)
				fr.letter++
				if f == NoState {
					continue
				}
				if index[f] == -1 {
					index[f] = next
					low[f] = next
					next++
					stack = append(stack, f)
					onStack.Set(uint(f))
					frames = append(frames, frame{state: f})
				} else if onStack.Test(uint(f)) {
					if low[f] < low[s] {
						low[s] = low[f]
					}
				}
				continue
			}
			// state finished: pop its component if it is a root
			if low[s] == index[s] {
				for {
					t := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack.Clear(uint(t))
					comp[t] = count
					if t == s {
						break
					}
				}
				count++
			}
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].state
				if low[s] < low[parent] {
					low[parent] = low[s]
				}
			}
		}
	}
	return comp, count
}

// ComponentAdjacency returns the adjacency matrix of one strongly connected
// component, counting per state pair how many letters carry a transition.
// Nontrivial components' matrices feed an external spectral-radius
// estimator; comp and id come from StronglyConnectedComponents.
func ComponentAdjacency(a *Automaton, comp []int, id int) [][]int {
	var states []int
	for s := range comp {
		if comp[s] == id {
			states = append(states, s)
		}
	}
	local := make(map[int]int, len(states))
	for i, s := range states {
		local[s] = i
	}
	m := make([][]int, len(states))
	for i := range m {
		m[i] = make([]int, len(states))
	}
	for _, s := range states {
		for l := 0; l < a.numLetters; l++ {
			f := a.Step(s, l)
			if f == NoState {
				continue
			}
			if j, ok := local[f]; ok {
				m[local[s]][j]++
			}
		}
	}
	return m
}
