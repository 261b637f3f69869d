package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// EmptyLanguage reports whether the automaton accepts no word at all: it
// has no initial state, or no final state is reachable from it.
func EmptyLanguage(a *Automaton) bool {
	if !a.HasInitial() {
		return true
	}
	if a.IsFinal(a.initial) {
		return false
	}
	seen := bitset.New(uint(a.NumStates()))
	seen.Set(uint(a.initial))
	workList := []int{a.initial}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		if a.IsFinal(s) {
			return false
		}
		for l := 0; l < a.numLetters; l++ {
			f := a.Step(s, l)
			if f != NoState && !seen.Test(uint(f)) {
				seen.Set(uint(f))
				workList = append(workList, f)
			}
		}
	}
	return true
}

// SameLanguage reports whether a1 and a2 recognize the same language up to
// the letter correspondence d, which maps each letter of a1 to a letter of
// a2 (NoLetter for letters a1 never uses) and must be injective. Both
// operands are pruned and minimized, then walked in lock-step from their initial
// states, memoizing visited state pairs to terminate on cycles; the walk
// fails as soon as either side defines a transition the other does not
// mirror or the paired states disagree on finality.
func SameLanguage(a1, a2 *Automaton, d Dict) (bool, error) {
	if len(d) != a1.numLetters {
		return false, fmt.Errorf("%w: dict has %d letters, first operand has %d",
			ErrShapeMismatch, len(d), a1.numLetters)
	}
	if !d.Injective() {
		return false, fmt.Errorf("%w: letter correspondence is not injective", ErrShapeMismatch)
	}
	inv := NewDict(a2.numLetters)
	for l1, l2 := range d {
		if l2 == NoLetter {
			continue
		}
		if l2 < 0 || l2 >= a2.numLetters {
			return false, fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, l2)
		}
		inv[l2] = l1
	}

	// Pruning first puts a complete operand and an incomplete one into the
	// same convention: dead states vanish either way, so the minimal forms
	// are isomorphic exactly when the languages agree.
	m1 := Minimize(Prune(a1))
	m2 := Minimize(Prune(a2))
	if e1, e2 := EmptyLanguage(m1), EmptyLanguage(m2); e1 || e2 {
		return e1 == e2, nil
	}

	type pair struct{ s1, s2 int }
	visited := make(map[pair]struct{})
	stack := []pair{{m1.initial, m2.initial}}
	visited[stack[0]] = struct{}{}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if m1.IsFinal(p.s1) != m2.IsFinal(p.s2) {
			return false, nil
		}
		for l1 := 0; l1 < m1.numLetters; l1++ {
			f1 := m1.Step(p.s1, l1)
			if f1 == NoState {
				continue
			}
			l2 := d[l1]
			if l2 == NoLetter {
				return false, nil
			}
			f2 := m2.Step(p.s2, l2)
			if f2 == NoState {
				return false, nil
			}
			next := pair{f1, f2}
			if _, ok := visited[next]; !ok {
				visited[next] = struct{}{}
				stack = append(stack, next)
			}
		}
		// the walk above only mirrors a1's transitions; a2 must not
		// have extra ones
		for l2 := 0; l2 < m2.numLetters; l2++ {
			if m2.Step(p.s2, l2) == NoState {
				continue
			}
			if inv[l2] == NoLetter || m1.Step(p.s1, inv[l2]) == NoState {
				return false, nil
			}
		}
	}
	return true, nil
}

// Included reports whether L(a1) is a subset of L(a2) for two automata over
// the same alphabet, by completing a copy of a2, complementing it and
// testing the intersection product for emptiness.
func Included(a1, a2 *Automaton) (bool, error) {
	if a1.numLetters != a2.numLetters {
		return false, fmt.Errorf("%w: operands have %d and %d letters",
			ErrShapeMismatch, a1.numLetters, a2.numLetters)
	}
	b := a2.Copy()
	Complete(b)
	for s := 0; s < b.NumStates(); s++ {
		b.finals.Flip(uint(s))
	}
	p, err := Product(a1, b, IdentityPairDict(a1.numLetters), FinalsIntersection)
	if err != nil {
		return false, err
	}
	return EmptyLanguage(p), nil
}

// Intersects reports whether the two languages share at least one word.
func Intersects(a1, a2 *Automaton) (bool, error) {
	if a1.numLetters != a2.numLetters {
		return false, fmt.Errorf("%w: operands have %d and %d letters",
			ErrShapeMismatch, a1.numLetters, a2.numLetters)
	}
	p, err := Product(a1, a2, IdentityPairDict(a1.numLetters), FinalsIntersection)
	if err != nil {
		return false, err
	}
	return !EmptyLanguage(p), nil
}

// Piece returns an automaton recognizing w(w⁻¹L), the words of L starting
// with the prefix w, where L is the language of a taken from state `from`.
// If following w from `from` dies, the result is the empty automaton.
func Piece(a *Automaton, w []int, from int) (*Automaton, error) {
	if from < 0 || from >= a.NumStates() {
		return nil, fmt.Errorf("%w: state %d", ErrStateOutOfRange, from)
	}
	q := from
	for _, l := range w {
		if l < 0 || l >= a.numLetters {
			return nil, fmt.Errorf("%w: letter %d", ErrLetterOutOfRange, l)
		}
		q = a.Step(q, l)
		if q == NoState {
			return NewEmpty(a.numLetters), nil
		}
	}
	n := a.NumStates()
	na := a.numLetters
	m := len(w)
	r := NewAutomaton(m+n, na)
	// chain states 0..m-1 spelling w, then a fresh copy of a
	for k, l := range w {
		next := k + 1
		if k == m-1 {
			next = m + q
		}
		r.trans[k*na+l] = next
	}
	for s := 0; s < n; s++ {
		r.finals.SetTo(uint(m+s), a.IsFinal(s))
		for l := 0; l < na; l++ {
			if f := a.Step(s, l); f != NoState {
				r.trans[(m+s)*na+l] = m + f
			}
		}
	}
	if m == 0 {
		r.initial = m + q
	} else {
		r.initial = 0
	}
	return r, nil
}
