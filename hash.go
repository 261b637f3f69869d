package automata

// Golden ratio constant for the polynomial fingerprint.
const phi64 = uint64(0x9e3779b97f4a7c15)

// mix64 is the murmur-style 64-bit finalizer.
func mix64(v uint64) uint64 {
	v = (v ^ (v >> 33)) * 0xff51afd7ed558ccd
	v = (v ^ (v >> 33)) * 0xc4ceb9fe1a85ec53
	return v ^ (v >> 33)
}

// Hash returns a fingerprint of the automaton's exact structure: shape,
// transition matrix, final flags and initial state. Equal automata hash
// equal; language-equivalent automata generally do not.
func (a *Automaton) Hash() uint64 {
	h := mix64(uint64(a.NumStates())*phi64 + uint64(a.numLetters))
	for _, f := range a.trans {
		h = mix64(h*phi64 + uint64(uint32(f)))
	}
	n := a.NumStates()
	for s := 0; s < n; s++ {
		if a.IsFinal(s) {
			h = mix64(h*phi64 + uint64(s))
		}
	}
	return mix64(h*phi64 + uint64(uint32(a.initial)))
}
