package automata

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// NoState is the transition-matrix sentinel for "no successor". It is also
// returned by Initial when an automaton has no initial state.
const NoState = -1

var (
	ErrStateOutOfRange  = errors.New("state out of range")
	ErrLetterOutOfRange = errors.New("letter out of range")
	ErrShapeMismatch    = errors.New("alphabet shape mismatch")
	ErrNotDeterministic = errors.New("specification is not deterministic")
)

// Automaton is a deterministic finite automaton over an alphabet of
// numLetters opaque letter indices. Transitions are kept in a flat
// states x letters matrix; an entry of NoState means the transition is
// undefined, so an Automaton is not necessarily complete. States are owned
// by their automaton and never shared: every operation combining automata
// allocates freshly numbered result states.
type Automaton struct {
	numStates  int
	numLetters int

	// trans[s*numLetters+l] is the successor of state s on letter l,
	// or NoState.
	trans []int

	finals *bitset.BitSet

	// initial state, or NoState
	initial int
}

// NewAutomaton returns an automaton with numStates states, no transitions,
// no final states and no initial state.
func NewAutomaton(numStates, numLetters int) *Automaton {
	a := &Automaton{
		numStates:  numStates,
		numLetters: numLetters,
		trans:      make([]int, numStates*numLetters),
		finals:     bitset.New(uint(numStates)),
		initial:    NoState,
	}
	for i := range a.trans {
		a.trans[i] = NoState
	}
	return a
}

// NumStates returns how many states this automaton has.
func (a *Automaton) NumStates() int {
	return a.numStates
}

// NumLetters returns the size of the automaton's alphabet.
func (a *Automaton) NumLetters() int {
	return a.numLetters
}

// AddState appends a new state with no transitions and returns its index.
func (a *Automaton) AddState(final bool) int {
	s := a.numStates
	for i := 0; i < a.numLetters; i++ {
		a.trans = append(a.trans, NoState)
	}
	a.numStates++
	a.finals.SetTo(uint(s), final)
	return s
}

// SetInitial marks state s as the initial state.
func (a *Automaton) SetInitial(s int) error {
	if s < 0 || s >= a.NumStates() {
		return fmt.Errorf("%w: initial state %d", ErrStateOutOfRange, s)
	}
	a.initial = s
	return nil
}

// ClearInitial removes the initial state, leaving the automaton with an
// empty language.
func (a *Automaton) ClearInitial() {
	a.initial = NoState
}

// Initial returns the initial state, or NoState if there is none.
func (a *Automaton) Initial() int {
	return a.initial
}

// HasInitial reports whether the automaton has an initial state.
func (a *Automaton) HasInitial() bool {
	return a.initial != NoState
}

// SetFinal marks or unmarks state s as final. This mutates the automaton
// in place.
func (a *Automaton) SetFinal(s int, final bool) error {
	if s < 0 || s >= a.NumStates() {
		return fmt.Errorf("%w: state %d", ErrStateOutOfRange, s)
	}
	a.finals.SetTo(uint(s), final)
	return nil
}

// IsFinal reports whether state s is final. Out-of-range states are not
// final.
func (a *Automaton) IsFinal(s int) bool {
	return s >= 0 && s < a.NumStates() && a.finals.Test(uint(s))
}

// SetTransition defines (or, with dst == NoState, removes) the successor of
// src on letter.
func (a *Automaton) SetTransition(src, letter, dst int) error {
	n := a.NumStates()
	if src < 0 || src >= n {
		return fmt.Errorf("%w: source state %d", ErrStateOutOfRange, src)
	}
	if letter < 0 || letter >= a.numLetters {
		return fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, letter)
	}
	if dst != NoState && (dst < 0 || dst >= n) {
		return fmt.Errorf("%w: target state %d", ErrStateOutOfRange, dst)
	}
	a.trans[src*a.numLetters+letter] = dst
	return nil
}

// Step performs an unchecked successor lookup. The caller must pass a valid
// state and letter; use Successor for boundary-checked lookups.
func (a *Automaton) Step(s, letter int) int {
	return a.trans[s*a.numLetters+letter]
}

// Successor returns the successor of s on letter, or NoState if the
// transition is undefined. An error is returned for out-of-range indices,
// which keeps a range mistake distinguishable from a legitimately missing
// transition.
func (a *Automaton) Successor(s, letter int) (int, error) {
	if s < 0 || s >= a.NumStates() {
		return NoState, fmt.Errorf("%w: state %d", ErrStateOutOfRange, s)
	}
	if letter < 0 || letter >= a.numLetters {
		return NoState, fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, letter)
	}
	return a.trans[s*a.numLetters+letter], nil
}

// Copy returns an independent copy of the automaton.
func (a *Automaton) Copy() *Automaton {
	r := &Automaton{
		numStates:  a.numStates,
		numLetters: a.numLetters,
		trans:      make([]int, len(a.trans)),
		finals:     a.finals.Clone(),
		initial:    a.initial,
	}
	copy(r.trans, a.trans)
	return r
}

// Equal reports structural equality: same shape, same transition matrix,
// same final set and same initial state. Automata recognizing the same
// language with permuted states are not Equal; use SameLanguage for that.
func (a *Automaton) Equal(b *Automaton) bool {
	if a.NumStates() != b.NumStates() || a.numLetters != b.numLetters {
		return false
	}
	if a.initial != b.initial {
		return false
	}
	for i, f := range a.trans {
		if f != b.trans[i] {
			return false
		}
	}
	n := uint(a.NumStates())
	for s := uint(0); s < n; s++ {
		if a.finals.Test(s) != b.finals.Test(s) {
			return false
		}
	}
	return true
}

// SubAutomaton keeps exactly the listed states, renumbered 0..len(states)-1
// in list order. Transitions into dropped states are removed; the initial
// state is kept only if listed.
func (a *Automaton) SubAutomaton(states []int) (*Automaton, error) {
	n := a.NumStates()
	l := make([]int, n)
	for i := range l {
		l[i] = NoState
	}
	for i, s := range states {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: state %d", ErrStateOutOfRange, s)
		}
		l[s] = i
	}
	r := NewAutomaton(len(states), a.numLetters)
	for s := 0; s < n; s++ {
		if l[s] == NoState {
			continue
		}
		r.finals.SetTo(uint(l[s]), a.IsFinal(s))
		for j := 0; j < a.numLetters; j++ {
			f := a.Step(s, j)
			if f != NoState {
				r.trans[l[s]*a.numLetters+j] = l[f]
			}
		}
	}
	if a.initial != NoState && l[a.initial] != NoState {
		r.initial = l[a.initial]
	}
	return r, nil
}

// DeleteStateInPlace removes state e, shifting every higher state index down
// by one. Transitions into e disappear; if e was initial the automaton is
// left without an initial state. Prior indices into the automaton are
// invalidated.
func (a *Automaton) DeleteStateInPlace(e int) error {
	n := a.NumStates()
	if e < 0 || e >= n {
		return fmt.Errorf("%w: state %d", ErrStateOutOfRange, e)
	}
	na := a.numLetters
	for i := 0; i < n-1; i++ {
		src := i
		if i >= e {
			src = i + 1
		}
		for j := 0; j < na; j++ {
			f := a.trans[src*na+j]
			switch {
			case f == e:
				f = NoState
			case f != NoState && f > e:
				f--
			}
			a.trans[i*na+j] = f
		}
		a.finals.SetTo(uint(i), a.finals.Test(uint(src)))
	}
	a.trans = a.trans[:(n-1)*na]
	a.numStates--
	a.finals.SetTo(uint(n-1), false)
	switch {
	case a.initial == e:
		a.initial = NoState
	case a.initial > e:
		a.initial--
	}
	return nil
}

// DeleteState returns a copy of the automaton with state e removed.
func (a *Automaton) DeleteState(e int) (*Automaton, error) {
	r := a.Copy()
	if err := r.DeleteStateInPlace(e); err != nil {
		return nil, err
	}
	return r, nil
}

// BiggerAlphabet copies the automaton onto a wider alphabet of newNumLetters
// letters; d maps every current letter to its index in the new alphabet.
func (a *Automaton) BiggerAlphabet(d Dict, newNumLetters int) (*Automaton, error) {
	if len(d) != a.numLetters {
		return nil, fmt.Errorf("%w: dict has %d letters, automaton has %d",
			ErrShapeMismatch, len(d), a.numLetters)
	}
	for _, nl := range d {
		if nl < 0 || nl >= newNumLetters {
			return nil, fmt.Errorf("%w: image letter %d", ErrLetterOutOfRange, nl)
		}
	}
	n := a.NumStates()
	r := NewAutomaton(n, newNumLetters)
	for s := 0; s < n; s++ {
		r.finals.SetTo(uint(s), a.IsFinal(s))
		for j := 0; j < a.numLetters; j++ {
			r.trans[s*newNumLetters+d[j]] = a.Step(s, j)
		}
	}
	r.initial = a.initial
	return r, nil
}
