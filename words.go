package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// FindWord returns some word of the automaton's language, found depth-first
// from the initial state. The second result is false when the language is
// empty (no initial state, or no reachable final state). An initial state
// that is itself final yields the empty word.
func FindWord(a *Automaton) ([]int, bool) {
	if !a.HasInitial() {
		return nil, false
	}
	if a.IsFinal(a.initial) {
		return []int{}, true
	}
	type frame struct {
		state  int
		letter int
	}
	visited := bitset.New(uint(a.NumStates()))
	visited.Set(uint(a.initial))
	frames := []frame{{state: a.initial}}
	var path []int
	for len(frames) > 0 {
		fr := &frames[len(frames)-1]
		if fr.letter < a.numLetters {
			l := fr.letter
			fr.letter++
			f := a.Step(fr.state, l)
			if f == NoState || visited.Test(uint(f)) {
				continue
			}
			if a.IsFinal(f) {
				return append(path, l), true
			}
			visited.Set(uint(f))
			path = append(path, l)
			frames = append(frames, frame{state: f})
			continue
		}
		frames = frames[:len(frames)-1]
		if len(path) > 0 {
			path = path[:len(path)-1]
		}
	}
	return nil, false
}

// bfsParents runs one breadth-first search from state from, layer by layer
// with letters scanned in increasing order, so the recorded parent chain of
// every state spells the lexicographically-least among its shortest words.
func bfsParents(a *Automaton, from int) (prevState, prevLetter []int) {
	n := a.NumStates()
	prevState = make([]int, n)
	prevLetter = make([]int, n)
	for i := 0; i < n; i++ {
		prevState[i] = NoState
		prevLetter[i] = NoLetter
	}
	seen := bitset.New(uint(n))
	seen.Set(uint(from))
	queue := []int{from}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for l := 0; l < a.numLetters; l++ {
			f := a.Step(s, l)
			if f == NoState || seen.Test(uint(f)) {
				continue
			}
			seen.Set(uint(f))
			prevState[f] = s
			prevLetter[f] = l
			queue = append(queue, f)
		}
	}
	return prevState, prevLetter
}

// rebuild spells the word leading to state to by walking the parent chain
// back to the BFS origin; nil when to was never reached.
func rebuild(prevState, prevLetter []int, from, to int) []int {
	if to == from {
		return []int{}
	}
	if prevState[to] == NoState {
		return nil
	}
	var word []int
	for s := to; s != from; s = prevState[s] {
		word = append(word, prevLetter[s])
	}
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		word[i], word[j] = word[j], word[i]
	}
	return word
}

// ShortestWord returns a shortest word leading from state from to state to,
// or, with to == NoState, to any final state. Ties are broken by increasing
// letter index at every step. The second result is false when no such path
// exists.
func ShortestWord(a *Automaton, from, to int) ([]int, bool, error) {
	if from < 0 || from >= a.NumStates() {
		return nil, false, fmt.Errorf("%w: state %d", ErrStateOutOfRange, from)
	}
	if to != NoState && (to < 0 || to >= a.NumStates()) {
		return nil, false, fmt.Errorf("%w: state %d", ErrStateOutOfRange, to)
	}
	prevState, prevLetter := bfsParents(a, from)
	if to != NoState {
		w := rebuild(prevState, prevLetter, from, to)
		return w, w != nil, nil
	}
	// nearest final state wins; scan every state, shortest word first
	var best []int
	found := false
	for s := 0; s < a.NumStates(); s++ {
		if !a.IsFinal(s) {
			continue
		}
		w := rebuild(prevState, prevLetter, from, s)
		if w == nil {
			continue
		}
		if !found || len(w) < len(best) || (len(w) == len(best) && lexLess(w, best)) {
			best = w
			found = true
		}
	}
	return best, found, nil
}

// ShortestWords returns, for every state, a shortest word leading to it from
// state from, computed by a single breadth-first search; entries for
// unreachable states are nil, and the entry for from itself is the empty
// word.
func ShortestWords(a *Automaton, from int) ([][]int, error) {
	if from < 0 || from >= a.NumStates() {
		return nil, fmt.Errorf("%w: state %d", ErrStateOutOfRange, from)
	}
	prevState, prevLetter := bfsParents(a, from)
	words := make([][]int, a.NumStates())
	for s := range words {
		words[s] = rebuild(prevState, prevLetter, from, s)
	}
	return words, nil
}

func lexLess(x, y []int) bool {
	for i := range x {
		if i >= len(y) {
			return false
		}
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}
	return len(x) < len(y)
}
