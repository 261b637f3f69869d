package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// FinalsMode selects how the product combines the operands' final flags.
type FinalsMode int

const (
	// FinalsIntersection marks a product state final when both components
	// are final, recognizing the intersection of the languages.
	FinalsIntersection FinalsMode = iota

	// FinalsUnion marks a product state final when either component is
	// final. The operands must be complete, otherwise a missing
	// transition on one side silently drops words of the other side's
	// language.
	FinalsUnion
)

// contract packs a state pair into the product's state numbering.
func contract(i1, i2, n1 int) int {
	return i1 + n1*i2
}

func geti1(c, n1 int) int { return c % n1 }
func geti2(c, n1 int) int { return c / n1 }

// Product builds the synchronized product of two deterministic automata
// under a letter-pair dict: the product reads destination letter d.At(l1,l2)
// whenever a1 reads l1 and a2 reads l2, and pairs with no destination letter
// produce no transition. Product states are numbered i1 + n1*i2; the
// construction explores depth-first from the contracted initial pair and
// touches at most n1*n2 states. The operands are never written to.
func Product(a1, a2 *Automaton, d *PairDict, mode FinalsMode) (*Automaton, error) {
	if d.na1 != a1.numLetters || d.na2 != a2.numLetters {
		return nil, fmt.Errorf("%w: pair dict is %dx%d, operands have %d and %d letters",
			ErrShapeMismatch, d.na1, d.na2, a1.numLetters, a2.numLetters)
	}
	if mode == FinalsUnion && (!IsComplete(a1) || !IsComplete(a2)) {
		return nil, fmt.Errorf("%w: union product requires complete operands", ErrShapeMismatch)
	}

	n1, n2 := a1.NumStates(), a2.NumStates()
	na := d.ImageSize()
	r := NewAutomaton(n1*n2, na)
	if !a1.HasInitial() || !a2.HasInitial() {
		return r, nil
	}
	r.initial = contract(a1.initial, a2.initial, n1)

	visited := bitset.New(uint(n1 * n2))
	visited.Set(uint(r.initial))
	stack := []int{r.initial}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i1, i2 := geti1(c, n1), geti2(c, n1)
		for l1 := 0; l1 < a1.numLetters; l1++ {
			e1 := a1.Step(i1, l1)
			if e1 == NoState {
				continue
			}
			for l2 := 0; l2 < a2.numLetters; l2++ {
				l := d.At(l1, l2)
				if l == NoLetter {
					continue
				}
				e2 := a2.Step(i2, l2)
				if e2 == NoState {
					continue
				}
				next := contract(e1, e2, n1)
				r.trans[c*na+l] = next
				if !visited.Test(uint(next)) {
					visited.Set(uint(next))
					stack = append(stack, next)
				}
			}
		}
	}

	for c := 0; c < n1*n2; c++ {
		f1 := a1.IsFinal(geti1(c, n1))
		f2 := a2.IsFinal(geti2(c, n1))
		if mode == FinalsUnion {
			r.finals.SetTo(uint(c), f1 || f2)
		} else {
			r.finals.SetTo(uint(c), f1 && f2)
		}
	}
	return r, nil
}
