package collision

import "time"

// Sink is the boundary interface (C7) the driver reports to each tick.
type Sink interface {
	Record(TickMetrics) error
}

// CollisionSink additionally accepts optional per-collision records.
type CollisionSink interface {
	Sink
	RecordCollision(CollisionEvent) error
}

// Driver runs ticks: advance moving positions, dispatch to the pool, join,
// sum counters, report metrics.
type Driver struct {
	Stationary *StationaryStore
	Moving     *MovingStore
	Index      *SpatialIndex
	Kernel     *Kernel
	Pool       *Pool
	Sink       Sink

	EmitPerCollision bool

	// PauseAfterTick, when set, makes Tick block after reporting metrics
	// until something sends on Resume(). The boundary consumer (or the
	// entry point, reading stdin) is responsible for sending; the core
	// never decides what "external input" means.
	PauseAfterTick bool

	tickIndex uint64
	slices    []Slice
	resume    chan struct{}
}

// NewDriver wires the components produced by construction. maxRadius must
// be the maximum radius across both populations.
func NewDriver(stationary *StationaryStore, moving *MovingStore, pool *Pool, sink Sink, maxRadius float64, emitPerCollision bool) *Driver {
	index := NewSpatialIndex(stationary)
	kernel := NewKernel(index, stationary, maxRadius, emitPerCollision)
	return &Driver{
		Stationary:       stationary,
		Moving:           moving,
		Index:            index,
		Kernel:           kernel,
		Pool:             pool,
		Sink:             sink,
		EmitPerCollision: emitPerCollision,
		slices:           Partition(moving.Len(), pool.Workers()),
		resume:           make(chan struct{}),
	}
}

// Resume returns the channel a boundary consumer or the entry point sends
// on to release a tick blocked by PauseAfterTick. The channel is
// unbuffered and Tick only receives from it while paused, so a send blocks
// until a paused Tick takes it.
func (d *Driver) Resume() chan<- struct{} { return d.resume }

// Tick advances every moving position by its velocity, dispatches the
// partitioned sweep, joins, and reports one TickMetrics record. It
// returns the number of collisions observed this tick.
func (d *Driver) Tick() uint32 {
	start := time.Now()

	collision := d.Moving.Collision()
	for i := range collision {
		collision[i].Position = collision[i].Position.Add(collision[i].Velocity)
	}

	results := d.Pool.Dispatch(d.slices, d.Kernel, d.Moving)

	var total uint32
	for _, r := range results {
		total += uint32(r.Collisions)
		if d.EmitPerCollision {
			if cs, ok := d.Sink.(CollisionSink); ok {
				for _, ev := range r.Events {
					_ = cs.RecordCollision(ev)
				}
			}
		}
	}

	d.tickIndex++
	metrics := TickMetrics{
		TickIndex:       d.tickIndex,
		CircleCount:     uint64(d.Stationary.Len() + d.Moving.Len()),
		ElapsedSeconds:  float32(time.Since(start).Seconds()),
		TotalCollisions: total,
	}
	_ = d.Sink.Record(metrics)

	if d.PauseAfterTick {
		<-d.resume
	}

	return total
}

// Close tears down the driver's worker pool.
func (d *Driver) Close() {
	d.Pool.Close()
}
