package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Arrow is one outgoing edge of a non-deterministic automaton state.
type Arrow struct {
	Letter int
	Dest   int
}

// NAutomaton is a non-deterministic finite automaton: each state carries a
// variable-length arrow list (duplicates allowed, several arrows may share a
// letter) and any number of states may be initial.
type NAutomaton struct {
	numLetters int
	arrows     [][]Arrow
	initials   *bitset.BitSet
	finals     *bitset.BitSet
}

// NewNAutomaton returns a non-deterministic automaton with numStates states
// and no arrows.
func NewNAutomaton(numStates, numLetters int) *NAutomaton {
	return &NAutomaton{
		numLetters: numLetters,
		arrows:     make([][]Arrow, numStates),
		initials:   bitset.New(uint(numStates)),
		finals:     bitset.New(uint(numStates)),
	}
}

// NumStates returns how many states this automaton has.
func (a *NAutomaton) NumStates() int {
	return len(a.arrows)
}

// NumLetters returns the size of the automaton's alphabet.
func (a *NAutomaton) NumLetters() int {
	return a.numLetters
}

// AddState appends a new state and returns its index.
func (a *NAutomaton) AddState(initial, final bool) int {
	s := len(a.arrows)
	a.arrows = append(a.arrows, nil)
	a.initials.SetTo(uint(s), initial)
	a.finals.SetTo(uint(s), final)
	return s
}

// AddArrow adds the arrow src --letter--> dst. Duplicate arrows are kept.
func (a *NAutomaton) AddArrow(src, letter, dst int) error {
	n := len(a.arrows)
	if src < 0 || src >= n {
		return fmt.Errorf("%w: source state %d", ErrStateOutOfRange, src)
	}
	if dst < 0 || dst >= n {
		return fmt.Errorf("%w: target state %d", ErrStateOutOfRange, dst)
	}
	if letter < 0 || letter >= a.numLetters {
		return fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, letter)
	}
	a.arrows[src] = append(a.arrows[src], Arrow{Letter: letter, Dest: dst})
	return nil
}

// Arrows returns the outgoing arrows of state s. The slice is owned by the
// automaton and must not be mutated.
func (a *NAutomaton) Arrows(s int) []Arrow {
	return a.arrows[s]
}

// SetInitial marks or unmarks state s as initial.
func (a *NAutomaton) SetInitial(s int, initial bool) error {
	if s < 0 || s >= len(a.arrows) {
		return fmt.Errorf("%w: state %d", ErrStateOutOfRange, s)
	}
	a.initials.SetTo(uint(s), initial)
	return nil
}

// SetFinal marks or unmarks state s as final.
func (a *NAutomaton) SetFinal(s int, final bool) error {
	if s < 0 || s >= len(a.arrows) {
		return fmt.Errorf("%w: state %d", ErrStateOutOfRange, s)
	}
	a.finals.SetTo(uint(s), final)
	return nil
}

// IsInitial reports whether state s is initial.
func (a *NAutomaton) IsInitial(s int) bool {
	return s >= 0 && s < len(a.arrows) && a.initials.Test(uint(s))
}

// IsFinal reports whether state s is final.
func (a *NAutomaton) IsFinal(s int) bool {
	return s >= 0 && s < len(a.arrows) && a.finals.Test(uint(s))
}

// HasInitial reports whether any state is initial.
func (a *NAutomaton) HasInitial() bool {
	_, ok := a.initials.NextSet(0)
	return ok
}

// ToNondeterministic views a deterministic automaton as a trivial
// non-deterministic one with the same states and at most one initial state.
func (a *Automaton) ToNondeterministic() *NAutomaton {
	n := a.NumStates()
	r := NewNAutomaton(n, a.numLetters)
	for s := 0; s < n; s++ {
		r.finals.SetTo(uint(s), a.IsFinal(s))
		for j := 0; j < a.numLetters; j++ {
			if f := a.Step(s, j); f != NoState {
				r.arrows[s] = append(r.arrows[s], Arrow{Letter: j, Dest: f})
			}
		}
	}
	if a.initial != NoState {
		r.initials.Set(uint(a.initial))
	}
	return r
}
