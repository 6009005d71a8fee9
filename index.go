package lipi

// Backend selects the prefix index used for multi-character symbols.
type Backend string

const (
	BackendDAT  Backend = "dat"  // frozen double-array trie (default)
	BackendTrie Backend = "trie" // github.com/derekparker/trie
)

// symbolIterator walks successive prefix states for one cursor position.
//
// Next consumes one (lowercased) rune. It returns the unit ID registered for
// the prefix read so far (0 if the prefix is not itself a key) and whether
// any key may still be reached by extending the prefix.
type symbolIterator interface {
	Next(r rune) (unit int, alive bool)
}

// IndexStats reports density metrics for a symbol index.
type IndexStats struct {
	Backend    string
	Keys       int
	UsedSlots  int
	TotalSlots int
}

// FillRatio is UsedSlots/TotalSlots, 0 for an empty index.
func (s IndexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// symbolIndex is the internal backend abstraction for multi-character keys.
// Insert is legal only before Freeze, Iterator only after.
type symbolIndex interface {
	Insert(key string, unit int) error
	Freeze()
	Iterator() symbolIterator
	Stats() IndexStats
}

func newSymbolIndex(b Backend) (symbolIndex, error) {
	switch b {
	case "", BackendDAT:
		return newDATBackend(), nil
	case BackendTrie:
		return newTrieBackend(), nil
	}
	return nil, errLipi("unknown symbol index backend %q", b)
}
