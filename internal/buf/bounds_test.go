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

func TestCheckWindow(t *testing.T) {
	tests := []struct {
		name      string
		size, off int
		n         int
		wantEnd   int
		wantErr   bool
	}{
		{"full", 10, 0, 10, 10, false},
		{"empty at end", 10, 10, 0, 10, false},
		{"middle", 10, 3, 4, 7, false},
		{"past end", 10, 8, 3, 0, true},
		{"negative offset", 10, -1, 1, 0, true},
		{"negative count", 10, 1, -1, 0, true},
		{"overflow", 10, math.MaxInt, 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := CheckWindow(tt.size, tt.off, tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got end=%d", end)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckWindow: %v", err)
			}
			if end != tt.wantEnd {
				t.Fatalf("end=%d want %d", end, tt.wantEnd)
			}
		})
	}
}

func TestWindowAndHas(t *testing.T) {
	data := []int{0, 1, 2, 3, 4}
	got, ok := Window(data, 1, 3)
	if !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Window returned unexpected result: %v, %v", got, ok)
	}
	if cap(got) != 3 {
		t.Fatalf("Window capacity not clipped: %d", cap(got))
	}
	if _, ok := Window(data, 4, 2); ok {
		t.Fatalf("Window should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Window(data, -1, 1); ok {
		t.Fatalf("Window should reject negative offset")
	}
}
