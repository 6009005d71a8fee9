package dat

// DAT is a frozen double-array trie over Roman symbol sequences.
//   - States are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Values:
//   - If Value[s] != 0, state s is terminal and Value[s] is the ID of the
//     output unit registered for the sequence ending in s.
//
// Mapping:
//   - Alphabet maps runes to dense alphabet IDs. 0 means "not part of the
//     alphabet"; a transition with 0 never succeeds.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Value holds the unit ID for terminal states, 0 for inner states.
	Value []uint32 // len == N

	// Alphabet maps BMP runes to dense IDs [0..Sigma].
	Alphabet PageMap
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// ValueAt returns the unit ID stored at state, or 0 for non-terminal states.
func (d *DAT) ValueAt(state uint32) uint32 {
	if int(state) >= len(d.Value) {
		return 0
	}
	return d.Value[state]
}

// Dense maps a rune to its dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 { return d.Alphabet.Lookup(r) }

// Grow makes sure idx is a valid slot index for Base, Check and Value.
func (d *DAT) Grow(idx int) {
	if idx < len(d.Base) {
		return
	}
	n := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, n)...)
	d.Check = append(d.Check, make([]int32, n)...)
	d.Value = append(d.Value, make([]uint32, n)...)
}
