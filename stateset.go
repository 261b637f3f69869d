package automata

import "encoding/binary"

// stateSet is a scratch set of source states, deduplicated and kept sorted
// so equal subsets produce equal canonical keys.
type stateSet struct {
	states []int
}

func (s *stateSet) reset() {
	s.states = s.states[:0]
}

// add inserts state e, keeping the slice sorted and duplicate-free.
func (s *stateSet) add(e int) {
	lo, hi := 0, len(s.states)
	for lo < hi {
		mid := (lo + hi) >> 1
		if s.states[mid] < e {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.states) && s.states[lo] == e {
		return
	}
	s.states = append(s.states, 0)
	copy(s.states[lo+1:], s.states[lo:])
	s.states[lo] = e
}

// key encodes the sorted states into buf as a canonical map key.
func (s *stateSet) key(buf []byte) []byte {
	buf = buf[:0]
	for _, e := range s.states {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e))
	}
	return buf
}

// subsetTable is the arena+index table of subsets seen during a subset
// construction: sets holds each subset's states, index maps a subset's
// canonical key to its destination-state number. Function-local, never
// shared between runs.
type subsetTable struct {
	index map[string]int
	sets  [][]int
	buf   []byte
}

func newSubsetTable() *subsetTable {
	return &subsetTable{index: make(map[string]int)}
}

// lookup returns the destination state of the subset if it was seen before.
func (t *subsetTable) lookup(s *stateSet) (int, bool) {
	t.buf = s.key(t.buf)
	id, ok := t.index[string(t.buf)]
	return id, ok
}

// insert registers the subset under the next free destination-state number
// and returns it; the subset's states are copied into the arena.
func (t *subsetTable) insert(s *stateSet) int {
	t.buf = s.key(t.buf)
	id := len(t.sets)
	t.index[string(t.buf)] = id
	t.sets = append(t.sets, append([]int(nil), s.states...))
	return id
}

func (t *subsetTable) states(id int) []int {
	return t.sets[id]
}
