package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrix(33)
	for y := 0; y < 33; y++ {
		for x := 0; x < 33; x++ {
			if bm.Get(x, y) {
				t.Fatalf("bit (%d, %d) should not be set", x, y)
			}
		}
	}
	bm.Set(0, 0)
	bm.Set(31, 2)
	bm.Set(32, 32)
	if !bm.Get(0, 0) || !bm.Get(31, 2) || !bm.Get(32, 32) {
		t.Error("bits should be set")
	}
	if bm.Get(1, 0) || bm.Get(0, 1) {
		t.Error("bits should not be set")
	}
}

func TestBitMatrixUnsetFlip(t *testing.T) {
	bm := NewBitMatrix(8)
	bm.Set(3, 4)
	bm.Unset(3, 4)
	if bm.Get(3, 4) {
		t.Error("bit should be unset")
	}
	bm.Flip(3, 4)
	if !bm.Get(3, 4) {
		t.Error("bit should be set after flip")
	}
	bm.Flip(3, 4)
	if bm.Get(3, 4) {
		t.Error("bit should be unset after double flip")
	}
}

func TestBitMatrixRegions(t *testing.T) {
	bm := NewBitMatrix(21)
	bm.SetRegion(2, 3, 4, 5)
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			inside := x >= 2 && x < 6 && y >= 3 && y < 8
			if bm.Get(x, y) != inside {
				t.Fatalf("bit (%d, %d) = %v, want %v", x, y, bm.Get(x, y), inside)
			}
		}
	}
	bm.UnsetRegion(3, 4, 2, 2)
	if bm.Get(3, 4) || bm.Get(4, 5) {
		t.Error("unset region bits should be cleared")
	}
	if !bm.Get(2, 3) || !bm.Get(5, 7) {
		t.Error("bits outside the unset region should stay set")
	}
}

func TestBitMatrixCount(t *testing.T) {
	bm := NewBitMatrix(21)
	if bm.Count() != 0 {
		t.Errorf("Count() = %d, want 0", bm.Count())
	}
	bm.SetRegion(0, 0, 7, 7)
	if bm.Count() != 49 {
		t.Errorf("Count() = %d, want 49", bm.Count())
	}
	bm.Clear()
	if bm.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", bm.Count())
	}
}

func TestBitMatrixCloneEquals(t *testing.T) {
	bm := NewBitMatrix(25)
	bm.SetRegion(10, 10, 5, 5)
	clone := bm.Clone()
	if !bm.Equals(clone) {
		t.Error("clone should equal original")
	}
	clone.Flip(0, 0)
	if bm.Equals(clone) {
		t.Error("modified clone should not equal original")
	}
	if bm.Get(0, 0) {
		t.Error("modifying clone should not affect original")
	}
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrix(2)
	bm.Set(0, 0)
	bm.Set(1, 1)
	want := "X   \n  X \n"
	if got := bm.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
