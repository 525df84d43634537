package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(8, 12); !ok || got != 96 {
		t.Fatalf("MulOverflowSafe(8,12)=%d,%v want 96,true", got, ok)
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt, 2); ok {
		t.Fatalf("expected overflow multiplying MaxInt by 2")
	}
}

func TestCheckTableBounds(t *testing.T) {
	// 24-byte header followed by two 8-byte records.
	end, err := CheckTableBounds(40, 24, 2, 8)
	if err != nil || end != 40 {
		t.Fatalf("CheckTableBounds = %d, %v; want 40, nil", end, err)
	}
	if _, err := CheckTableBounds(39, 24, 2, 8); err == nil {
		t.Fatalf("expected bounds error for short buffer")
	}
	if _, err := CheckTableBounds(40, 24, math.MaxInt, 8); err == nil {
		t.Fatalf("expected overflow error for huge count")
	}
	if _, err := CheckTableBounds(40, -1, 1, 8); err == nil {
		t.Fatalf("expected error for negative offset")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice past end should fail")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("negative offset should fail")
	}
	if !Has(data, 0, 5) || Has(data, 0, 6) {
		t.Fatalf("Has bounds check wrong")
	}
}
