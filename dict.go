package automata

import "fmt"

// NoLetter is the Dict sentinel for a discarded letter.
const NoLetter = -1

// Dict maps letter indices of a source alphabet to letter indices of a
// destination alphabet, one entry per source letter; NoLetter discards the
// source letter. A Dict may be non-injective and non-surjective.
type Dict []int

// NewDict returns a Dict of n entries, all discarded.
func NewDict(n int) Dict {
	d := make(Dict, n)
	for i := range d {
		d[i] = NoLetter
	}
	return d
}

// ImageSize returns the size of the destination alphabet, taken as the
// largest image letter plus one.
func (d Dict) ImageSize() int {
	n := 0
	for _, v := range d {
		if v >= n {
			n = v + 1
		}
	}
	return n
}

// Injective reports whether no two kept source letters share an image.
func (d Dict) Injective() bool {
	seen := make(map[int]struct{}, len(d))
	for _, v := range d {
		if v == NoLetter {
			continue
		}
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Invert returns, for every destination letter, the list of source letters
// mapping to it. Needed wherever an algorithm asks "which source letters
// produce this destination letter" (determinization, duplication).
func (d Dict) Invert() InvertDict {
	id := make(InvertDict, d.ImageSize())
	for src, dst := range d {
		if dst != NoLetter {
			id[dst] = append(id[dst], src)
		}
	}
	return id
}

// InvertDict lists, per destination letter, the source letters mapping to it.
type InvertDict [][]int

// PairDict maps pairs of letters (one from each operand alphabet of a
// product) to a destination letter; undefined pairs produce no transition
// and no destination letter.
type PairDict struct {
	na1, na2 int
	e        []int
}

// NewPairDict returns a PairDict for operand alphabets of na1 and na2
// letters with every pair undefined.
func NewPairDict(na1, na2 int) *PairDict {
	d := &PairDict{na1: na1, na2: na2, e: make([]int, na1*na2)}
	for i := range d.e {
		d.e[i] = NoLetter
	}
	return d
}

// IdentityPairDict returns the PairDict pairing each letter of an na-letter
// alphabet with itself, the usual dict for same-alphabet intersections.
func IdentityPairDict(na int) *PairDict {
	d := NewPairDict(na, na)
	for l := 0; l < na; l++ {
		d.e[l+na*l] = l
	}
	return d
}

// Set maps the pair (l1, l2) to the destination letter dst.
func (d *PairDict) Set(l1, l2, dst int) error {
	if l1 < 0 || l1 >= d.na1 {
		return fmt.Errorf("%w: first letter %d", ErrLetterOutOfRange, l1)
	}
	if l2 < 0 || l2 >= d.na2 {
		return fmt.Errorf("%w: second letter %d", ErrLetterOutOfRange, l2)
	}
	if dst < 0 {
		return fmt.Errorf("%w: destination letter %d", ErrLetterOutOfRange, dst)
	}
	d.e[l1+d.na1*l2] = dst
	return nil
}

// At returns the destination letter for the pair (l1, l2), or NoLetter.
func (d *PairDict) At(l1, l2 int) int {
	return d.e[l1+d.na1*l2]
}

// ImageSize returns the size of the destination alphabet.
func (d *PairDict) ImageSize() int {
	n := 0
	for _, v := range d.e {
		if v >= n {
			n = v + 1
		}
	}
	return n
}
