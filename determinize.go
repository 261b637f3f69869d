package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// DeterminizeOptions control the subset construction.
//
// NoEmpty suppresses materializing the empty-subset sink state, which leaves
// the result incomplete instead of carrying an explicit dead state.
// OnlyFinals restricts the expansion to successor subsets containing at
// least one source-final state. NoFinals skips successor subsets containing
// a source-final state and forces every state of the result to be final;
// it is used to realize closure-style constructions. OnlyFinals and NoFinals
// filter successors before NoFinals marks survivors final, so combining both
// expands nothing and is useful only for its degenerate initial state.
type DeterminizeOptions struct {
	NoEmpty    bool
	OnlyFinals bool
	NoFinals   bool
}

// Determinize builds a deterministic automaton over the destination alphabet
// of d recognizing every destination word obtainable by relabeling an
// accepted source word through d. d has one entry per source letter and may
// be non-injective; discarded letters contribute no transitions.
//
// The construction keeps a table of already-seen source-state subsets and
// walks destination letters depth-first over an explicit work stack, so the
// subset count bounds memory but not goroutine stack depth.
func Determinize(a *Automaton, d Dict, opts DeterminizeOptions) (*Automaton, error) {
	if len(d) != a.numLetters {
		return nil, fmt.Errorf("%w: dict has %d letters, automaton has %d",
			ErrShapeMismatch, len(d), a.numLetters)
	}
	id := d.Invert()
	na2 := len(id)

	if !a.HasInitial() {
		if opts.NoFinals {
			// Closure of an empty language: a single final state
			// looping on every destination letter.
			r := NewAutomaton(1, na2)
			r.initial = 0
			r.finals.Set(0)
			for l := 0; l < na2; l++ {
				r.trans[l] = 0
			}
			return r, nil
		}
		return NewEmpty(na2), nil
	}

	table := newSubsetTable()
	var init stateSet
	init.add(a.initial)
	table.insert(&init)

	r := NewAutomaton(1, na2)
	r.initial = 0
	if opts.NoFinals || a.IsFinal(a.initial) {
		r.finals.Set(0)
	}

	var succ stateSet
	seen := bitset.New(uint(a.NumStates()))
	stack := []int{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		subset := table.states(cur)

		for l := 0; l < na2; l++ {
			// Union of successors over every source letter mapping
			// to destination letter l.
			succ.reset()
			seen.ClearAll()
			final := false
			for _, s := range subset {
				for _, src := range id[l] {
					f := a.Step(s, src)
					if f == NoState || seen.Test(uint(f)) {
						continue
					}
					seen.Set(uint(f))
					succ.add(f)
					if a.IsFinal(f) {
						final = true
					}
				}
			}
			if opts.OnlyFinals && !final {
				continue
			}
			if opts.NoFinals && final {
				continue
			}
			if opts.NoEmpty && len(succ.states) == 0 {
				continue
			}
			dst, ok := table.lookup(&succ)
			if !ok {
				dst = table.insert(&succ)
				r.AddState(opts.NoFinals || final)
				stack = append(stack, dst)
			}
			r.trans[cur*na2+l] = dst
		}
	}
	return r, nil
}

// DeterminizeN converts a non-deterministic automaton into a deterministic
// one over the same alphabet by subset construction. With keepSink true the
// empty subset is materialized as an explicit non-final sink, making the
// result complete; otherwise missing successors stay undefined.
func DeterminizeN(a *NAutomaton, keepSink bool) (*Automaton, error) {
	na := a.numLetters

	var init stateSet
	initFinal := false
	for s := 0; s < a.NumStates(); s++ {
		if a.IsInitial(s) {
			init.add(s)
			if a.IsFinal(s) {
				initFinal = true
			}
		}
	}
	if len(init.states) == 0 {
		return NewEmpty(na), nil
	}

	table := newSubsetTable()
	table.insert(&init)

	r := NewAutomaton(1, na)
	r.initial = 0
	if initFinal {
		r.finals.Set(0)
	}

	var succ stateSet
	seen := bitset.New(uint(a.NumStates()))
	stack := []int{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		subset := table.states(cur)

		for l := 0; l < na; l++ {
			succ.reset()
			seen.ClearAll()
			final := false
			for _, s := range subset {
				for _, ar := range a.arrows[s] {
					if ar.Letter != l || seen.Test(uint(ar.Dest)) {
						continue
					}
					seen.Set(uint(ar.Dest))
					succ.add(ar.Dest)
					if a.IsFinal(ar.Dest) {
						final = true
					}
				}
			}
			if !keepSink && len(succ.states) == 0 {
				continue
			}
			dst, ok := table.lookup(&succ)
			if !ok {
				dst = table.insert(&succ)
				r.AddState(final)
				stack = append(stack, dst)
			}
			r.trans[cur*na+l] = dst
		}
	}
	return r, nil
}
