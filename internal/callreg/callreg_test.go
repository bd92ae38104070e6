package callreg

import "testing"

func TestAddCallIdempotent(t *testing.T) {
	reg := NewRegistry(5)

	reg.AddCall(3)
	reg.AddCall(3)

	calls := reg.ActiveCalls()
	if len(calls) != 1 || calls[0] != 3 {
		t.Errorf("ActiveCalls() after double AddCall(3) = %v, expected [3]", calls)
	}
}

func TestClearCall(t *testing.T) {
	reg := NewRegistry(5)

	reg.AddCall(1)
	reg.AddCall(4)
	reg.ClearCall(1)

	if reg.Has(1) {
		t.Errorf("Has(1) = true after ClearCall(1), expected false")
	}
	if !reg.Has(4) {
		t.Errorf("Has(4) = false, expected true")
	}

	reg.ClearCall(1) // clearing an inactive floor is a no-op
	if reg.Empty() {
		t.Errorf("Empty() = true with call at 4 active, expected false")
	}
}

func TestActiveCallsSortedSnapshot(t *testing.T) {
	reg := NewRegistry(5)

	reg.AddCall(5)
	reg.AddCall(0)
	reg.AddCall(2)

	calls := reg.ActiveCalls()
	expected := []int{0, 2, 5}
	if len(calls) != len(expected) {
		t.Fatalf("ActiveCalls() = %v, expected %v", calls, expected)
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Errorf("ActiveCalls()[%d] = %d, expected %d", i, calls[i], expected[i])
		}
	}

	calls[0] = 99
	if reg.Has(99) || !reg.Has(0) {
		t.Errorf("Mutating the ActiveCalls() slice leaked into the registry")
	}
}

func TestDirectionalScans(t *testing.T) {
	reg := NewRegistry(5)
	reg.AddCall(2)

	if !reg.AnyAbove(0) {
		t.Errorf("AnyAbove(0) = false with call at 2, expected true")
	}
	if reg.AnyAbove(2) {
		t.Errorf("AnyAbove(2) = true with only call at 2, expected false")
	}
	if !reg.AnyBelow(5) {
		t.Errorf("AnyBelow(5) = false with call at 2, expected true")
	}
	if reg.AnyBelow(2) {
		t.Errorf("AnyBelow(2) = true with only call at 2, expected false")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	reg := NewRegistry(5)

	defer func() {
		if recover() == nil {
			t.Errorf("AddCall(6) on a 5-floor registry did not panic")
		}
	}()
	reg.AddCall(6)
}
