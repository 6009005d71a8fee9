package lipi

import "testing"

func walk(idx symbolIndex, s string) []int {
	it := idx.Iterator()
	var units []int
	for _, r := range s {
		unit, alive := it.Next(r)
		units = append(units, unit)
		if !alive {
			break
		}
	}
	return units
}

func TestSymbolIndexPrefixWalk(t *testing.T) {
	for _, backend := range []Backend{BackendDAT, BackendTrie} {
		idx, err := newSymbolIndex(backend)
		if err != nil {
			t.Fatal(err)
		}
		for key, unit := range map[string]int{"sh": 1, "shr": 2, "shri": 3, "ch": 4, "chh": 5, "kh": 6} {
			if err := idx.Insert(key, unit); err != nil {
				t.Fatalf("%s: insert %q failed: %v", backend, key, err)
			}
		}
		idx.Freeze()
		got := walk(idx, "shrik")
		want := []int{0, 1, 2, 3, 0}
		if len(got) != len(want) {
			t.Fatalf("%s: walk(shrik) = %v, want %v", backend, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: walk(shrik) = %v, want %v", backend, got, want)
			}
		}
		if got := walk(idx, "x"); len(got) != 1 || got[0] != 0 {
			t.Fatalf("%s: walk(x) = %v, want [0]", backend, got)
		}
		if got := walk(idx, "chh"); got[len(got)-1] != 5 {
			t.Fatalf("%s: walk(chh) = %v, want final unit 5", backend, got)
		}
	}
}

func TestSymbolIndexRejectsInvalidKeys(t *testing.T) {
	for _, backend := range []Backend{BackendDAT, BackendTrie} {
		idx, _ := newSymbolIndex(backend)
		if err := idx.Insert("", 1); err == nil {
			t.Fatalf("%s: expected empty key to be rejected", backend)
		}
		if err := idx.Insert("ab", 0); err == nil {
			t.Fatalf("%s: expected unit 0 to be rejected", backend)
		}
	}
	db := newDATBackend()
	if err := db.Insert("a😀", 1); err == nil {
		t.Fatalf("expected rune outside the BMP to be rejected")
	}
}

func TestDATBackendString(t *testing.T) {
	db := newDATBackend()
	_ = db.Insert("ab", 1)
	db.Freeze()
	db.Freeze() // idempotent
	if s := db.String(); s == "" {
		t.Fatalf("expected a description")
	}
	if stats := db.Stats(); stats.Keys != 1 || stats.UsedSlots != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
