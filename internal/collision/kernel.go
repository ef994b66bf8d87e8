package collision

// DamagePerHit is the fixed hit-point cost applied to both sides of a
// collision.
const DamagePerHit int32 = 20

// Kernel runs the broad- and narrow-phase collision check for one moving
// circle against the stationary store, via the spatial index.
type Kernel struct {
	index      *SpatialIndex
	store      *StationaryStore
	maxRadius  float64
	emitEvents bool
}

// NewKernel builds a kernel bound to a stationary store/index and the
// maximum radius across all circles, used to size the conservative
// x-window: 2*maxRadius is used unconditionally rather than the tighter
// but circle-dependent r_moving+r_maxStationary bound.
func NewKernel(index *SpatialIndex, store *StationaryStore, maxRadius float64, emitEvents bool) *Kernel {
	return &Kernel{index: index, store: store, maxRadius: maxRadius, emitEvents: emitEvents}
}

// Result accumulates one worker's tick-local outcome.
type Result struct {
	Collisions int
	Events     []CollisionEvent
}

// Process runs the kernel against one moving circle, in place, appending
// any optional per-collision events to res.
func (k *Kernel) Process(mc *MovingCollision, mi *MovingIdentity, res *Result) {
	window := 2 * k.maxRadius
	left := mc.Position.X - window
	right := mc.Position.X + window

	start, ok := k.index.LowerBoundedSearch(left, right)
	if !ok {
		return
	}

	arr := k.store.collision
	n := len(arr)

	for i := start; i < n && arr[i].Position.X < right; i++ {
		k.tryCollide(mc, mi, arr[i], res)
	}
	for i := start - 1; i >= 0 && arr[i].Position.X > left; i-- {
		k.tryCollide(mc, mi, arr[i], res)
	}
}

func (k *Kernel) tryCollide(mc *MovingCollision, mi *MovingIdentity, sc StationaryCollision, res *Result) {
	d := sc.Position.Sub(mc.Position)
	dist := d.Mag()

	if dist >= mc.Radius+sc.Radius {
		return
	}

	mi.HP -= DamagePerHit
	stationaryHP := k.store.ApplyDamage(sc.BackIndex, DamagePerHit)

	if dist > 0 {
		n := d.Scale(1 / dist)
		vn := mc.Velocity.Dot(n)
		mc.Velocity = mc.Velocity.Sub(n.Scale(2 * vn))
	}
	// dist == 0 is a coincident-center pair: reflection is skipped since
	// there is no well-defined normal, but hp effects above still apply.

	res.Collisions++
	if k.emitEvents {
		res.Events = append(res.Events, CollisionEvent{
			MovingName:        mi.Name,
			MovingHPAfter:     mi.HP,
			StationaryName:    k.store.Name(sc.BackIndex),
			StationaryHPAfter: stationaryHP,
		})
	}
}
