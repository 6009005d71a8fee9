package lipi

import (
	"fmt"
	"sort"

	"github.com/npillmayer/lipi/dat"
)

type datBuildNode struct {
	unit     int
	state    uint32
	children map[uint16]*datBuildNode
}

type datBackend struct {
	frozen      bool
	root        *datBuildNode
	keys        int
	nextDenseID uint16
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	return &datBackend{
		root: &datBuildNode{children: make(map[uint16]*datBuildNode)},
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

// encode maps key to dense IDs, growing the alphabet as needed.
func (db *datBackend) encode(key string) ([]uint16, error) {
	dense := make([]uint16, 0, len(key))
	for _, r := range key {
		id := db.compiled.Dense(r)
		if id == 0 {
			if db.nextDenseID == ^uint16(0) {
				return nil, fmt.Errorf("alphabet exhausted at rune %q", r)
			}
			db.nextDenseID++
			id = db.nextDenseID
			if !db.compiled.Alphabet.Assign(r, id) {
				return nil, fmt.Errorf("rune %q outside the Basic Multilingual Plane", r)
			}
		}
		dense = append(dense, id)
	}
	return dense, nil
}

func (db *datBackend) Insert(key string, unit int) error {
	assert(!db.frozen, "insert into frozen DAT backend")
	if key == "" || unit <= 0 {
		return fmt.Errorf("invalid symbol key %q for unit %d", key, unit)
	}
	dense, err := db.encode(key)
	if err != nil {
		return err
	}
	n := db.root
	for _, c := range dense {
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.unit == 0 {
		db.keys++
	}
	n.unit = unit // later insertions override earlier ones
	return nil
}

// Freeze lays out the build tree breadth-first into the double array.
func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	d.Grow(int(d.Root))
	db.root.state = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.Value[n.state] = uint32(n.unit)
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels, d.Root)
		d.Grow(base + int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.frozen = true
}

func (db *datBackend) Iterator() symbolIterator {
	assert(db.frozen, "DAT backend must be frozen before lookup")
	return &datIterator{
		d:     db.compiled,
		state: db.compiled.Root,
	}
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (it *datIterator) Next(r rune) (int, bool) {
	if it.dead {
		return 0, false
	}
	next, ok := it.d.Transition(it.state, it.d.Dense(r))
	if !ok {
		it.dead = true
		return 0, false
	}
	it.state = next
	return int(it.d.ValueAt(next)), true
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findDATBase returns the first base for which every child slot is free.
// Slots at or below root are reserved.
func findDATBase(check []int32, labels []uint16, root uint32) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t <= int(root) || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() IndexStats {
	stats := IndexStats{
		Backend:    string(BackendDAT),
		Keys:       db.keys,
		TotalSlots: db.compiled.NStates(),
	}
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			stats.UsedSlots++
		}
	}
	return stats
}
