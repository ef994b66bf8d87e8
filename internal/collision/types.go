package collision

import "github.com/0x5844/physics2d/internal/vecmath"

// MaxWorkers is the implementation-defined ceiling on pool size
// (orchestrator included), matching the original source's
// MAX_WORKERS = 31 (+1 orchestrator).
const MaxWorkers = 32

// Color is a display color triple, carried on identity records only.
type Color struct {
	R, G, B uint8
}

// StationaryCollision is the hot, read-only-after-construction payload
// the sweep walks: position, radius, and a permanent back-index into the
// identity/lock arrays. The stationary store keeps these sorted
// ascending by X.
type StationaryCollision struct {
	Position  vecmath.Vec2
	Radius    float64
	BackIndex int
}

// StationaryIdentity is the cold payload: display name, hit points, and
// color. Name is copied at construction and never mutated, so it can be
// read without the matching lock (resolves the torn-read open question).
type StationaryIdentity struct {
	Name string
	HP   int32
	Color
}

// MovingCollision is the per-tick mutable payload of a moving circle.
// Mutated only by the worker that owns its slice for the tick.
type MovingCollision struct {
	Position vecmath.Vec2
	Velocity vecmath.Vec2
	Radius   float64
}

// MovingIdentity is the moving circle's cold payload, mutated only by the
// owning worker.
type MovingIdentity struct {
	Name string
	HP   int32
	Color
}

// TickMetrics is the per-tick record emitted to the boundary sink.
type TickMetrics struct {
	TickIndex       uint64
	CircleCount     uint64
	ElapsedSeconds  float32
	TotalCollisions uint32
}

// CollisionEvent is the optional per-collision record emitted when the
// engine is configured with EmitPerCollision.
type CollisionEvent struct {
	MovingName        string
	MovingHPAfter     int32
	StationaryName    string
	StationaryHPAfter int32
}
