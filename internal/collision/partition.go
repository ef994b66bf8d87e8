package collision

// Slice is a half-open, contiguous range of moving indices owned by
// exactly one executor for exactly one tick.
type Slice struct {
	Lo, Hi int
}

// Len reports the number of indices in the slice.
func (s Slice) Len() int { return s.Hi - s.Lo }

// Partition splits M moving indices across W executors (one orchestrator
// plus W-1 workers). Each of the W-1 workers gets exactly floor(M/W)
// contiguous indices starting at k*floor(M/W); the orchestrator — slot
// index W-1 — takes the remainder, from (W-1)*floor(M/W) to M. Slices are
// contiguous, non-overlapping, and stable across ticks for a fixed
// (M, W).
func Partition(m, w int) []Slice {
	if w <= 0 {
		panic("collision: partition requires at least one executor")
	}
	base := m / w
	slices := make([]Slice, w)
	for k := 0; k < w-1; k++ {
		slices[k] = Slice{Lo: k * base, Hi: (k + 1) * base}
	}
	slices[w-1] = Slice{Lo: (w - 1) * base, Hi: m}
	return slices
}
