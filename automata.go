package automata

import "fmt"

// Edge describes one labeled transition for the edge-list constructors.
// Source and Target are caller-chosen state labels; Letter is an index into
// the caller's alphabet.
type Edge struct {
	Source int
	Target int
	Letter int
}

// NewEmpty returns a deterministic automaton with the empty language: no
// states, no initial state, an alphabet of numLetters letters.
func NewEmpty(numLetters int) *Automaton {
	return NewAutomaton(0, numLetters)
}

// edgeStates numbers the distinct state labels of an edge list in order of
// first appearance (sources before targets within an edge), then any labels
// appearing only as initial or final states.
func edgeStates(edges []Edge, extra ...int) map[int]int {
	index := make(map[int]int)
	add := func(label int) {
		if _, ok := index[label]; !ok {
			index[label] = len(index)
		}
	}
	for _, e := range edges {
		add(e.Source)
		add(e.Target)
	}
	for _, label := range extra {
		add(label)
	}
	return index
}

func maxLetter(edges []Edge) (int, error) {
	na := 0
	for _, e := range edges {
		if e.Letter < 0 {
			return 0, fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, e.Letter)
		}
		if e.Letter >= na {
			na = e.Letter + 1
		}
	}
	return na, nil
}

// DeterministicFromEdges builds a deterministic automaton from an edge list,
// an initial state label and a set of final state labels. State labels are
// renumbered in order of first appearance; the alphabet has max letter + 1
// letters. A nil finals slice marks every state final. Two edges sharing a
// (source, letter) pair with different targets make the specification
// non-deterministic and are reported as ErrNotDeterministic, never silently
// dropped.
func DeterministicFromEdges(edges []Edge, initial int, finals []int) (*Automaton, error) {
	na, err := maxLetter(edges)
	if err != nil {
		return nil, err
	}
	index := edgeStates(edges, append(append([]int{}, finals...), initial)...)
	a := NewAutomaton(len(index), na)
	for _, e := range edges {
		src, dst := index[e.Source], index[e.Target]
		if prev := a.Step(src, e.Letter); prev != NoState && prev != dst {
			return nil, fmt.Errorf("%w: state %d has two targets on letter %d",
				ErrNotDeterministic, e.Source, e.Letter)
		}
		a.trans[src*na+e.Letter] = dst
	}
	if finals == nil {
		for s := 0; s < a.NumStates(); s++ {
			a.finals.Set(uint(s))
		}
	} else {
		for _, label := range finals {
			a.finals.Set(uint(index[label]))
		}
	}
	a.initial = index[initial]
	return a, nil
}

// NonDeterministicFromEdges builds a non-deterministic automaton from an
// edge list, initial state labels and final state labels. Duplicate edges
// and several initial states are allowed. A nil finals slice marks every
// state final.
func NonDeterministicFromEdges(edges []Edge, initials, finals []int) (*NAutomaton, error) {
	na, err := maxLetter(edges)
	if err != nil {
		return nil, err
	}
	index := edgeStates(edges, append(append([]int{}, initials...), finals...)...)
	a := NewNAutomaton(len(index), na)
	for _, e := range edges {
		a.arrows[index[e.Source]] = append(a.arrows[index[e.Source]],
			Arrow{Letter: e.Letter, Dest: index[e.Target]})
	}
	for _, label := range initials {
		a.initials.Set(uint(index[label]))
	}
	if finals == nil {
		for s := 0; s < a.NumStates(); s++ {
			a.finals.Set(uint(s))
		}
	} else {
		for _, label := range finals {
			a.finals.Set(uint(index[label]))
		}
	}
	return a, nil
}
