package collision

// SpatialIndex exposes the bounded-interval locate over a stationary
// store's sorted collision array. It holds no state of its own — the
// sort order it relies on lives in the store and is established once at
// construction.
type SpatialIndex struct {
	store *StationaryStore
}

// NewSpatialIndex wraps a stationary store. The store must already be
// x-sorted; the index never sorts or re-sorts it.
func NewSpatialIndex(store *StationaryStore) *SpatialIndex {
	return &SpatialIndex{store: store}
}

// LowerBoundedSearch returns any index whose x lies strictly inside
// (left, right), both ends excluded, or (0, false) if no such index exists.
//
// It is a bounded-interval locate, not a lower-bound locate: on each
// halving step, if right <= x[m] the upper bound narrows past m; if
// left >= x[m] the lower bound narrows past m; otherwise m is itself a
// hit. Either side of a hit may still hold further in-interval
// candidates — the sweep (kernel.go) walks outward from here.
func (idx *SpatialIndex) LowerBoundedSearch(left, right float64) (int, bool) {
	arr := idx.store.collision
	s, e := 0, len(arr)
	for e-s > 1 {
		m := s + (e-s)/2
		x := arr[m].Position.X
		switch {
		case right <= x:
			e = m
		case left >= x:
			s = m
		default:
			return m, true
		}
	}
	// The halving loop narrows to a single untested index s (or an empty
	// range, s == e) without ever checking it directly — left unguarded,
	// that silently drops a genuine one-element population, even though
	// such a candidate can legitimately lie strictly inside the interval.
	if s < e && left < arr[s].Position.X && arr[s].Position.X < right {
		return s, true
	}
	return 0, false
}
