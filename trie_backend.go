package lipi

import (
	"strings"

	"github.com/derekparker/trie"
)

// trieBackend keeps multi-character symbols in a derekparker/trie.
// It is slower than the DAT but convenient for cross-checking tables.
type trieBackend struct {
	frozen bool
	t      *trie.Trie
	keys   int
}

func newTrieBackend() *trieBackend {
	return &trieBackend{t: trie.New()}
}

func (tb *trieBackend) Insert(key string, unit int) error {
	assert(!tb.frozen, "insert into frozen trie backend")
	if key == "" || unit <= 0 {
		return errLipi("invalid symbol key %q for unit %d", key, unit)
	}
	if _, found := tb.t.Find(key); !found {
		tb.keys++
	}
	tb.t.Add(key, unit)
	return nil
}

func (tb *trieBackend) Freeze() {
	tb.frozen = true
}

func (tb *trieBackend) Iterator() symbolIterator {
	assert(tb.frozen, "trie backend must be frozen before lookup")
	return &trieIterator{t: tb.t}
}

func (tb *trieBackend) Stats() IndexStats {
	return IndexStats{
		Backend:    string(BackendTrie),
		Keys:       tb.keys,
		UsedSlots:  tb.keys,
		TotalSlots: tb.keys,
	}
}

type trieIterator struct {
	t      *trie.Trie
	prefix strings.Builder
	dead   bool
}

func (it *trieIterator) Next(r rune) (int, bool) {
	if it.dead {
		return 0, false
	}
	it.prefix.WriteRune(r)
	key := it.prefix.String()
	if node, found := it.t.Find(key); found {
		if unit, ok := node.Meta().(int); ok {
			return unit, true
		}
		return 0, true
	}
	if !it.t.HasKeysWithPrefix(key) {
		it.dead = true
		return 0, false
	}
	return 0, true
}
