package sim

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(77), NewRNG(77)
	for rep := 0; rep < 100; rep++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(0) // Zero seed is remapped
	for rep := 0; rep < 10000; rep++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v out of [0, 1)", v)
		}
		if v := r.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn(3) = %d out of [0, 3)", v)
		}
		if v := r.Range(20, 50); v < 20 || v >= 50 {
			t.Fatalf("Range(20, 50) = %v out of [20, 50)", v)
		}
		if v := r.Spread(0.1); v < -0.05 || v >= 0.05 {
			t.Fatalf("Spread(0.1) = %v out of [-0.05, 0.05)", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestRNGCoversAllKinds(t *testing.T) {
	r := NewRNG(2024)
	seen := make(map[int]bool)
	for rep := 0; rep < 300; rep++ {
		seen[r.Intn(3)] = true
	}
	if len(seen) != 3 {
		t.Errorf("Intn(3) produced %d distinct values, expected 3", len(seen))
	}
}
