package collision

import "testing"

func TestPartitionCoversAllIndicesExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ m, w int }{
		{0, 4}, {1, 4}, {3, 4}, {100, 4}, {101, 4}, {103, 8}, {7, 1}, {1000000, 32},
	} {
		slices := Partition(tc.m, tc.w)
		if len(slices) != tc.w {
			t.Fatalf("m=%d w=%d: expected %d slices, got %d", tc.m, tc.w, tc.w, len(slices))
		}
		covered := make([]bool, tc.m)
		next := 0
		for i, sl := range slices {
			if sl.Lo != next {
				t.Fatalf("m=%d w=%d slot %d: expected contiguous Lo=%d, got %d", tc.m, tc.w, i, next, sl.Lo)
			}
			if sl.Lo > sl.Hi {
				t.Fatalf("m=%d w=%d slot %d: Lo(%d) > Hi(%d)", tc.m, tc.w, i, sl.Lo, sl.Hi)
			}
			for j := sl.Lo; j < sl.Hi; j++ {
				if covered[j] {
					t.Fatalf("m=%d w=%d: index %d covered twice", tc.m, tc.w, j)
				}
				covered[j] = true
			}
			next = sl.Hi
		}
		if next != tc.m {
			t.Fatalf("m=%d w=%d: slices end at %d, expected %d", tc.m, tc.w, next, tc.m)
		}
		for i, c := range covered {
			if !c {
				t.Fatalf("m=%d w=%d: index %d never covered", tc.m, tc.w, i)
			}
		}
	}
}

func TestPartitionNonOrchestratorSlotsAreEqualSized(t *testing.T) {
	slices := Partition(101, 4)
	base := 101 / 4
	for i := 0; i < len(slices)-1; i++ {
		if slices[i].Len() != base {
			t.Fatalf("worker slot %d: expected len %d, got %d", i, base, slices[i].Len())
		}
	}
	last := slices[len(slices)-1]
	if last.Len() != 101-3*base {
		t.Fatalf("orchestrator slot: expected len %d, got %d", 101-3*base, last.Len())
	}
}

func TestPartitionStableAcrossCalls(t *testing.T) {
	a := Partition(257, 8)
	b := Partition(257, 8)
	if len(a) != len(b) {
		t.Fatalf("differing slice counts across calls")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs across calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPartitionPanicsOnNonPositiveWorkerCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for w=0")
		}
	}()
	Partition(10, 0)
}
