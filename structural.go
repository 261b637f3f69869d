package automata

import "fmt"

// Mirror reverses every transition. The initial-state set of the result is
// the final-state set of a, and a's initial state becomes the sole final
// state; the result is in general non-deterministic.
func Mirror(a *Automaton) *NAutomaton {
	n := a.NumStates()
	r := NewNAutomaton(n, a.numLetters)
	for s := 0; s < n; s++ {
		if a.IsFinal(s) {
			r.initials.Set(uint(s))
		}
		for l := 0; l < a.numLetters; l++ {
			if f := a.Step(s, l); f != NoState {
				r.arrows[f] = append(r.arrows[f], Arrow{Letter: l, Dest: s})
			}
		}
	}
	if a.initial != NoState {
		r.finals.Set(uint(a.initial))
	}
	return r
}

// MirrorDet reverses every transition assuming the reversed automaton is
// again deterministic (each state has at most one predecessor per letter and
// at most one state is final). With several final states the last one wins
// as the new initial state.
func MirrorDet(a *Automaton) *Automaton {
	n := a.NumStates()
	r := NewAutomaton(n, a.numLetters)
	for s := 0; s < n; s++ {
		if a.IsFinal(s) {
			r.initial = s
		}
		for l := 0; l < a.numLetters; l++ {
			if f := a.Step(s, l); f != NoState {
				r.trans[f*a.numLetters+l] = s
			}
		}
	}
	if a.initial != NoState {
		r.finals.Set(uint(a.initial))
	}
	return r
}

// Permute relabels letters without touching states: l gives, for every new
// letter index, the old letter it replaces, or NoLetter to leave the new
// letter without transitions. Old letters absent from l are dropped.
func Permute(a *Automaton, l []int) (*Automaton, error) {
	for _, old := range l {
		if old != NoLetter && (old < 0 || old >= a.numLetters) {
			return nil, fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, old)
		}
	}
	n := a.NumStates()
	na2 := len(l)
	r := NewAutomaton(n, na2)
	for s := 0; s < n; s++ {
		r.finals.SetTo(uint(s), a.IsFinal(s))
		for j, old := range l {
			if old != NoLetter {
				r.trans[s*na2+j] = a.Step(s, old)
			}
		}
	}
	r.initial = a.initial
	return r, nil
}

// PermuteInPlace relabels letters in place; l must not be longer than the
// alphabet, and new letters beyond len(l) lose their transitions. Prior
// aliases into the transition table are invalidated.
func PermuteInPlace(a *Automaton, l []int) error {
	if len(l) > a.numLetters {
		return fmt.Errorf("%w: %d new letters for an alphabet of %d",
			ErrShapeMismatch, len(l), a.numLetters)
	}
	for _, old := range l {
		if old != NoLetter && (old < 0 || old >= a.numLetters) {
			return fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, old)
		}
	}
	saved := make([]int, a.numLetters)
	n := a.NumStates()
	for s := 0; s < n; s++ {
		row := a.trans[s*a.numLetters : (s+1)*a.numLetters]
		copy(saved, row)
		for j := range row {
			row[j] = NoState
		}
		for j, old := range l {
			if old != NoLetter {
				row[j] = saved[old]
			}
		}
	}
	return nil
}

// Duplicate fans out each source letter into several destination letters:
// id lists, per source letter, the destination letters it becomes. The
// source is deterministic and the result stays deterministic because the
// fan-out is uniform across states.
func Duplicate(a *Automaton, id InvertDict, numLetters2 int) (*Automaton, error) {
	if len(id) != a.numLetters {
		return nil, fmt.Errorf("%w: invert dict has %d letters, automaton has %d",
			ErrShapeMismatch, len(id), a.numLetters)
	}
	for _, dsts := range id {
		for _, nl := range dsts {
			if nl < 0 || nl >= numLetters2 {
				return nil, fmt.Errorf("%w: destination letter %d", ErrLetterOutOfRange, nl)
			}
		}
	}
	n := a.NumStates()
	r := NewAutomaton(n, numLetters2)
	for s := 0; s < n; s++ {
		r.finals.SetTo(uint(s), a.IsFinal(s))
		for j := 0; j < a.numLetters; j++ {
			for _, nl := range id[j] {
				r.trans[s*numLetters2+nl] = a.Step(s, j)
			}
		}
	}
	r.initial = a.initial
	return r, nil
}

// IsComplete reports whether every (state, letter) pair has a defined
// successor and an initial state exists.
func IsComplete(a *Automaton) bool {
	if !a.HasInitial() {
		return false
	}
	for _, f := range a.trans {
		if f == NoState {
			return false
		}
	}
	return true
}

// Complete completes the automaton in place: missing transitions are routed
// to a fresh non-final sink state that loops on every letter, and a missing
// initial state becomes the sink. Nothing is added when the automaton is
// already complete, so completing twice is a no-op. Reports whether a sink
// was added.
func Complete(a *Automaton) bool {
	if IsComplete(a) {
		return false
	}
	sink := a.AddState(false)
	for i, f := range a.trans {
		if f == NoState {
			a.trans[i] = sink
		}
	}
	if a.initial == NoState {
		a.initial = sink
	}
	return true
}

// ZeroComplete marks final, in place, every state from which some chain of
// letter0 transitions reaches a final state, closing the language under
// removal of trailing letter0 letters.
func ZeroComplete(a *Automaton, letter0 int) error {
	if letter0 < 0 || letter0 >= a.numLetters {
		return fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, letter0)
	}
	n := a.NumStates()
	for changed := true; changed; {
		changed = false
		for s := 0; s < n; s++ {
			if a.IsFinal(s) {
				continue
			}
			if f := a.Step(s, letter0); f != NoState && a.IsFinal(f) {
				a.finals.Set(uint(s))
				changed = true
			}
		}
	}
	return nil
}
