package iteratable

import "testing"

type keyedInt int

func (k keyedInt) Key() string {
	return string(rune('a' + int(k)))
}

func TestAddDeduplicatesByKey(t *testing.T) {
	s := New()
	if !s.Add(keyedInt(1)) {
		t.Fatalf("first Add should report true")
	}
	if s.Add(keyedInt(1)) {
		t.Errorf("second Add of the same key should report false")
	}
	if s.Size() != 1 {
		t.Errorf("Size() = %d, want 1", s.Size())
	}
}

func TestUnionGrowsOnlyWithNewKeys(t *testing.T) {
	a := New()
	a.Add(keyedInt(1))
	b := New()
	b.Add(keyedInt(1))
	b.Add(keyedInt(2))
	if grew := a.Union(b); !grew {
		t.Errorf("expected Union to report growth")
	}
	if a.Size() != 2 {
		t.Errorf("Size() = %d, want 2", a.Size())
	}
	if grew := a.Union(b); grew {
		t.Errorf("expected a second identical Union to report no growth")
	}
}

func TestEqualsIsOrderIndependent(t *testing.T) {
	a := New()
	a.Add(keyedInt(1))
	a.Add(keyedInt(2))
	b := New()
	b.Add(keyedInt(2))
	b.Add(keyedInt(1))
	if !a.Equals(b) {
		t.Errorf("expected sets with the same elements in different insertion order to be Equal")
	}
}

func TestDifference(t *testing.T) {
	a := New()
	a.Add(keyedInt(1))
	a.Add(keyedInt(2))
	b := New()
	b.Add(keyedInt(1))
	d := a.Difference(b)
	if d.Size() != 1 || !d.Contains(keyedInt(2)) {
		t.Errorf("Difference() = %v, want {2}", d.Values())
	}
}

func TestIterateOnceSnapshotsBeforeMutation(t *testing.T) {
	s := New()
	s.Add(keyedInt(1))
	s.IterateOnce()
	s.Add(keyedInt(2)) // added mid-iteration; must not appear in this pass
	count := 0
	for s.Next() {
		count++
	}
	if count != 1 {
		t.Errorf("iteration visited %d elements, want 1 (snapshot at IterateOnce time)", count)
	}
}

func TestSortedKeyIsOrderIndependent(t *testing.T) {
	a := New()
	a.Add(keyedInt(1))
	a.Add(keyedInt(2))
	b := New()
	b.Add(keyedInt(2))
	b.Add(keyedInt(1))
	if a.SortedKey() != b.SortedKey() {
		t.Errorf("SortedKey differs for sets with the same content in different order")
	}
}
