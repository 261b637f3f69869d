package automata

// Hopcroft partition refinement. States live in a permutation array and its
// inverse; a class is a contiguous index range, never a dynamic set. Keeping
// classes as ranges is what gives refinement its O(n*na*log n) bound.
type partition struct {
	perm    []int    // index -> state
	permInv []int    // state -> index
	class_  []int    // state -> class id
	bounds  [][2]int // class id -> [low, high) index range
	nclass  int
}

// swapStates exchanges the positions of states i and j in the permutation.
func (p *partition) swapStates(i, j int) {
	if i == j {
		return
	}
	k := p.permInv[i]
	p.permInv[i] = p.permInv[j]
	p.permInv[j] = k
	p.perm[k] = j
	p.perm[p.permInv[i]] = i
}

// minimizer carries the function-local scratch of one Hopcroft run.
type minimizer struct {
	a    *Automaton
	sink int // virtual sink state index (a.NumStates())
	part partition

	// inv[s*na+l] lists the preimage of state s under letter l, the
	// virtual sink included on both sides.
	inv [][]int

	worklist []int // class ids still to refine against

	// per-split scratch
	splitPoint []int // class id -> first unvisited index, -1 when untouched
	touched    []int // class ids touched by the current split
	members    []int // snapshot of the class being split
}

// Minimize returns the canonical minimal deterministic automaton recognizing
// the same language as a, via Hopcroft's partition-refinement algorithm. If
// a is incomplete a virtual sink state participates for the duration of the
// refinement and its class is dropped from the result when it remained a
// singleton. The input is left untouched.
func Minimize(a *Automaton) *Automaton {
	n := a.NumStates()
	na := a.numLetters
	m := &minimizer{a: a, sink: n}

	m.part = partition{
		perm:    make([]int, n+1),
		permInv: make([]int, n+1),
		class_:  make([]int, n+1),
		bounds:  make([][2]int, n+1),
	}
	for i := 0; i <= n; i++ {
		m.part.perm[i] = i
		m.part.permInv[i] = i
	}
	m.splitPoint = make([]int, n+1)
	for i := range m.splitPoint {
		m.splitPoint[i] = -1
	}
	m.members = make([]int, n+1)

	// Inverse transition index; missing transitions go to the sink, and
	// the sink loops on every letter.
	m.inv = make([][]int, (n+1)*na)
	for s := 0; s < n; s++ {
		for l := 0; l < na; l++ {
			f := a.Step(s, l)
			if f == NoState {
				f = m.sink
			}
			m.inv[f*na+l] = append(m.inv[f*na+l], s)
		}
	}
	for l := 0; l < na; l++ {
		m.inv[m.sink*na+l] = append(m.inv[m.sink*na+l], m.sink)
	}

	// Seed: class 0 holds the final states, class 1 everything else
	// (sink included).
	nf := 0
	for s := 0; s < n; s++ {
		if a.IsFinal(s) {
			m.part.class_[s] = 0
			m.part.swapStates(m.part.perm[nf], s)
			nf++
		} else {
			m.part.class_[s] = 1
		}
	}
	m.part.class_[m.sink] = 1
	m.part.bounds[0] = [2]int{0, nf}
	m.part.bounds[1] = [2]int{nf, n + 1}
	m.part.nclass = 2

	if nf <= (n+1)/2 {
		m.worklist = append(m.worklist, 0)
	} else {
		m.worklist = append(m.worklist, 1)
	}

	for len(m.worklist) > 0 {
		c := m.worklist[len(m.worklist)-1]
		m.worklist = m.worklist[:len(m.worklist)-1]
		for l := 0; l < na; l++ {
			m.split(c, l)
		}
	}

	return m.readOff()
}

// split refines every class against the preimage of class c under letter l.
// Hit states are swapped to the front of their class; a class is split only
// when properly divided, and the smaller half becomes the new class and is
// queued for further refinement.
func (m *minimizer) split(c, l int) {
	lo, hi := m.part.bounds[c][0], m.part.bounds[c][1]
	na := m.a.numLetters

	// Snapshot the class: the permutation moves under our feet while
	// parents are swapped into place.
	copy(m.members[lo:hi], m.part.perm[lo:hi])

	for i := lo; i < hi; i++ {
		e := m.members[i]
		for _, p := range m.inv[e*na+l] {
			cp := m.part.class_[p]
			if m.splitPoint[cp] == -1 {
				m.touched = append(m.touched, cp)
				m.splitPoint[cp] = m.part.bounds[cp][0]
			}
			if m.splitPoint[cp] > m.part.permInv[p] {
				continue // parent already counted in this split
			}
			m.part.swapStates(m.part.perm[m.splitPoint[cp]], p)
			m.splitPoint[cp]++
		}
	}

	for _, cp := range m.touched {
		clo, chi := m.part.bounds[cp][0], m.part.bounds[cp][1]
		mid := m.splitPoint[cp]
		m.splitPoint[cp] = -1
		if mid >= chi {
			continue // every member was hit, nothing to divide
		}
		nc := m.part.nclass
		if chi-mid > mid-clo {
			// keep the right part as cp, the left is smaller
			m.part.bounds[cp][0] = mid
			m.part.bounds[nc] = [2]int{clo, mid}
		} else {
			m.part.bounds[cp][1] = mid
			m.part.bounds[nc] = [2]int{mid, chi}
		}
		for i := m.part.bounds[nc][0]; i < m.part.bounds[nc][1]; i++ {
			m.part.class_[m.part.perm[i]] = nc
		}
		m.part.nclass++
		m.worklist = append(m.worklist, nc)
	}
	m.touched = m.touched[:0]
}

// readOff builds the quotient automaton, one state per non-empty class, and
// drops the virtual sink's class when it stayed a singleton (meaning the
// input had no state equivalent to it).
func (m *minimizer) readOff() *Automaton {
	a, na := m.a, m.a.numLetters

	// Renumber classes compactly; the seed class of finals can be empty
	// when the automaton has none.
	classID := make([]int, m.part.nclass)
	nc := 0
	for c := 0; c < m.part.nclass; c++ {
		if m.part.bounds[c][0] == m.part.bounds[c][1] {
			classID[c] = -1
			continue
		}
		classID[c] = nc
		nc++
	}

	r := NewAutomaton(nc, na)
	for c := 0; c < m.part.nclass; c++ {
		i := classID[c]
		if i == -1 {
			continue
		}
		e := m.part.perm[m.part.bounds[c][0]] // one representative
		if e >= m.sink {
			// pure sink class: no transitions, not final
			continue
		}
		for l := 0; l < na; l++ {
			if f := a.Step(e, l); f != NoState {
				r.trans[i*na+l] = classID[m.part.class_[f]]
			}
		}
		r.finals.SetTo(uint(i), a.IsFinal(e))
	}
	if a.initial != NoState {
		r.initial = classID[m.part.class_[a.initial]]
	}

	sc := m.part.class_[m.sink]
	if m.part.bounds[sc][1] == m.part.bounds[sc][0]+1 {
		_ = r.DeleteStateInPlace(classID[sc])
	}
	return r
}
