package collision

import "sync"

// StationaryStore holds the stationary population: a sorted, read-only
// collision array, its parallel identity array, and one lock per circle
// protecting that circle's identity hit points. All three arrays share a
// single length fixed at construction; index i's collision, identity, and
// lock always refer to the same circle, and StationaryCollision.BackIndex
// is permanently i.
type StationaryStore struct {
	collision []StationaryCollision
	identity  []StationaryIdentity
	locks     []sync.Mutex
}

// NewStationaryStore builds a store from pre-populated, already
// back-index-correct collision and identity slices. collision must
// already be sorted ascending by X (construction does not sort) — callers
// that need sorting should sort before calling this, since sorting here
// would have to re-pair identity/back-index; every producer in this
// module sorts its input with spawn.SortStationaryByX first.
func NewStationaryStore(collision []StationaryCollision, identity []StationaryIdentity) *StationaryStore {
	if len(collision) != len(identity) {
		panic("collision: stationary collision/identity length mismatch")
	}
	return &StationaryStore{
		collision: collision,
		identity:  identity,
		locks:     make([]sync.Mutex, len(collision)),
	}
}

// Len returns the fixed stationary circle count.
func (s *StationaryStore) Len() int { return len(s.collision) }

// Collision returns a read-only handle to the sorted collision array, for
// use by the spatial index and the sweep. Callers must not mutate it.
func (s *StationaryStore) Collision() []StationaryCollision { return s.collision }

// At returns the collision record at index i.
func (s *StationaryStore) At(i int) StationaryCollision { return s.collision[i] }

// Name reads the identity name at back-index i. Safe without the lock
// because names are immutable after construction.
func (s *StationaryStore) Name(i int) string { return s.identity[i].Name }

// Color reads the identity color at back-index i. Immutable after
// construction, like Name.
func (s *StationaryStore) Color(i int) Color { return s.identity[i].Color }

// ApplyDamage decrements the hit points at back-index i by amount under
// that circle's lock and returns the resulting hp. This is the only
// permitted write path onto stationary identity state.
func (s *StationaryStore) ApplyDamage(i int, amount int32) int32 {
	s.locks[i].Lock()
	s.identity[i].HP -= amount
	hp := s.identity[i].HP
	s.locks[i].Unlock()
	return hp
}

// HP reads the current hit points at back-index i under the lock.
func (s *StationaryStore) HP(i int) int32 {
	s.locks[i].Lock()
	hp := s.identity[i].HP
	s.locks[i].Unlock()
	return hp
}

// MovingStore holds the moving population. Callers must partition the
// index space into disjoint ranges before handing out concurrent access;
// the store itself performs no synchronization — overlapping concurrent
// ranges are undefined behavior.
type MovingStore struct {
	collision []MovingCollision
	identity  []MovingIdentity
}

// NewMovingStore builds a store from pre-populated slices of equal length.
func NewMovingStore(collision []MovingCollision, identity []MovingIdentity) *MovingStore {
	if len(collision) != len(identity) {
		panic("collision: moving collision/identity length mismatch")
	}
	return &MovingStore{collision: collision, identity: identity}
}

// Len returns the moving circle count.
func (m *MovingStore) Len() int { return len(m.collision) }

// Range returns a mutable slice view over [lo, hi) of both the collision
// and identity arrays. The caller is responsible for ensuring no other
// goroutine holds an overlapping range concurrently.
func (m *MovingStore) Range(lo, hi int) ([]MovingCollision, []MovingIdentity) {
	return m.collision[lo:hi], m.identity[lo:hi]
}

// Collision returns the full collision slice, for single-threaded passes
// such as the per-tick position advance.
func (m *MovingStore) Collision() []MovingCollision { return m.collision }

// Snapshot copies the current moving collision records (position,
// velocity, radius) for a read-only boundary consumer (cmd/tui, cmd/gui).
// Identity fields such as colors are not copied. Safe to call only
// between ticks.
func (m *MovingStore) Snapshot() []MovingCollision {
	out := make([]MovingCollision, len(m.collision))
	copy(out, m.collision)
	return out
}
