package automata

import "github.com/bits-and-blooms/bitset"

// accessibleStates flags every state reachable from the initial state.
func accessibleStates(a *Automaton) *bitset.BitSet {
	n := a.NumStates()
	seen := bitset.New(uint(n))
	if !a.HasInitial() {
		return seen
	}
	seen.Set(uint(a.initial))
	stack := []int{a.initial}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for l := 0; l < a.numLetters; l++ {
			f := a.Step(s, l)
			if f != NoState && !seen.Test(uint(f)) {
				seen.Set(uint(f))
				stack = append(stack, f)
			}
		}
	}
	return seen
}

// coAccessibleStates flags every state with a path to a final state. It
// works on the condensation: a component is co-accessible when it contains
// a final state or reaches a co-accessible component; component ids are in
// reverse topological order, so walking states grouped by ascending id
// resolves every successor before its predecessors.
func coAccessibleStates(a *Automaton) *bitset.BitSet {
	n := a.NumStates()
	comp, count := StronglyConnectedComponents(a)
	coacc := make([]bool, count)
	for s := 0; s < n; s++ {
		if a.IsFinal(s) {
			coacc[comp[s]] = true
		}
	}
	buckets := make([][]int, count)
	for s := 0; s < n; s++ {
		buckets[comp[s]] = append(buckets[comp[s]], s)
	}
	for c := 0; c < count; c++ {
		if coacc[c] {
			continue
		}
		for _, s := range buckets[c] {
			for l := 0; l < a.numLetters; l++ {
				f := a.Step(s, l)
				if f != NoState && coacc[comp[f]] {
					coacc[c] = true
					break
				}
			}
			if coacc[c] {
				break
			}
		}
	}
	res := bitset.New(uint(n))
	for s := 0; s < n; s++ {
		if coacc[comp[s]] {
			res.Set(uint(s))
		}
	}
	return res
}

// keepStates builds the automaton restricted to the flagged states,
// renumbered in ascending original order.
func keepStates(a *Automaton, keep *bitset.BitSet) *Automaton {
	n := a.NumStates()
	na := a.numLetters
	l := make([]int, n)
	cnt := 0
	for s := 0; s < n; s++ {
		if keep.Test(uint(s)) {
			l[s] = cnt
			cnt++
		} else {
			l[s] = NoState
		}
	}
	r := NewAutomaton(cnt, na)
	for s := 0; s < n; s++ {
		if l[s] == NoState {
			continue
		}
		r.finals.SetTo(uint(l[s]), a.IsFinal(s))
		for j := 0; j < na; j++ {
			f := a.Step(s, j)
			if f != NoState && l[f] != NoState {
				r.trans[l[s]*na+j] = l[f]
			}
		}
	}
	if a.initial != NoState && l[a.initial] != NoState {
		r.initial = l[a.initial]
	}
	return r
}

// Accessible removes every state not reachable from the initial state. An
// automaton without an initial state prunes to the empty automaton.
func Accessible(a *Automaton) *Automaton {
	return keepStates(a, accessibleStates(a))
}

// CoAccessible removes every state that cannot reach a final state.
func CoAccessible(a *Automaton) *Automaton {
	return keepStates(a, coAccessibleStates(a))
}

// Prune keeps exactly the states that are both accessible and co-accessible.
// It preserves the language and is safe as a general simplification step
// after any transformation.
func Prune(a *Automaton) *Automaton {
	keep := accessibleStates(a)
	keep.InPlaceIntersection(coAccessibleStates(a))
	return keepStates(a, keep)
}

// PruneInf keeps the states from which an infinite path exists, found by a
// three-color depth-first search from the initial state. This does not
// preserve the finite-word language; it only makes sense where acceptance
// at infinity is intended.
func PruneInf(a *Automaton) *Automaton {
	n := a.NumStates()
	na := a.numLetters
	const (
		white = iota
		gray
		done
	)
	color := make([]int, n)
	keep := bitset.New(uint(n))

	if a.HasInitial() {
		type frame struct {
			state  int
			letter int
		}
		var frames []frame
		frames = append(frames, frame{state: a.initial})
		color[a.initial] = gray
		for len(frames) > 0 {
			fr := &frames[len(frames)-1]
			s := fr.state
			if fr.letter < na {
				f := a.Step(s, fr.letter)
				fr.letter++
				if f == NoState {
					continue
				}
				switch {
				case color[f] == gray:
					// back edge: s reaches a cycle
					keep.Set(uint(s))
				case color[f] == white:
					color[f] = gray
					frames = append(frames, frame{state: f})
				case keep.Test(uint(f)):
					keep.Set(uint(s))
				}
				continue
			}
			color[s] = done
			frames = frames[:len(frames)-1]
			if keep.Test(uint(s)) && len(frames) > 0 {
				keep.Set(uint(frames[len(frames)-1].state))
			}
		}
	}
	return keepStates(a, keep)
}
