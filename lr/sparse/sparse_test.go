package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	m := NewIntMatrix(4, 4, DefaultNullValue)
	m.Set(1, 2, 42)
	if got := m.Value(1, 2); got != 42 {
		t.Errorf("Value(1,2) = %d, want 42", got)
	}
	if got := m.Value(0, 0); got != DefaultNullValue {
		t.Errorf("Value(0,0) = %d, want null value", got)
	}
}

func TestSetOverwritesExistingCell(t *testing.T) {
	m := NewIntMatrix(2, 2, DefaultNullValue)
	m.Set(0, 0, 1)
	m.Set(0, 0, 2)
	if m.ValueCount() != 1 {
		t.Fatalf("ValueCount() = %d, want 1 (overwrite, not append)", m.ValueCount())
	}
	if got := m.Value(0, 0); got != 2 {
		t.Errorf("Value(0,0) = %d, want 2", got)
	}
}

func TestEachVisitsEveryPopulatedCell(t *testing.T) {
	m := NewIntMatrix(3, 3, DefaultNullValue)
	m.Set(0, 1, 10)
	m.Set(2, 0, 20)
	seen := map[[2]int]int32{}
	m.Each(func(i, j int, v int32) {
		seen[[2]int{i, j}] = v
	})
	if len(seen) != 2 || seen[[2]int{0, 1}] != 10 || seen[[2]int{2, 0}] != 20 {
		t.Errorf("Each() visited %v, want {(0,1):10, (2,0):20}", seen)
	}
}
