// Package boundary is the initialization interface: it accepts a
// resolved configuration, seeds or receives pre-populated stores, and
// wires a Driver. It is the only package that constructs a collision.Pool,
// so process exit codes have one place to originate from.
package boundary

import (
	"fmt"

	"github.com/0x5844/physics2d/internal/collision"
	"github.com/0x5844/physics2d/internal/config"
	"github.com/0x5844/physics2d/internal/spawn"
)

// New builds a fully wired Driver from a resolved Config and a sink. If
// cfg.SceneFile is set, the population is read from that file (see
// scene.go); otherwise it is generated with the seeded spawner. A
// worker-count rejection comes back wrapping a ConfigurationInvalid
// collision.Error; scene-file and spawner failures come back as plain
// wrapped errors. The worker pool construction path
// (collision.NewPool) never raises ResourceExhausted itself; that kind is
// instead resolved earlier, in config.defaultWorkers, by falling back to
// a sentinel worker count and warning.
func New(cfg config.Config, sink collision.Sink) (*collision.Driver, error) {
	if cfg.SceneFile != "" {
		scene, err := LoadSceneFromFile(cfg.SceneFile)
		if err != nil {
			return nil, fmt.Errorf("boundary: %w", err)
		}
		return NewFromScene(scene, cfg.MaxWorkers, cfg.EmitPerCollision, cfg.PauseAfterTick, sink)
	}

	radius := spawn.Fixed(cfg.RadiusFixed)
	if cfg.RadiusUniform {
		radius = spawn.Uniform(cfg.RadiusLo, cfg.RadiusHi)
	}

	stationary, moving, maxRadius, err := spawn.Populate(spawn.Config{
		TotalCircles:   cfg.TotalCircles,
		Seed:           cfg.SpawnSeed,
		XSpawnRange:    spawn.Range{Lo: cfg.XSpawnRangeLo, Hi: cfg.XSpawnRangeHi},
		YSpawnRange:    spawn.Range{Lo: cfg.YSpawnRangeLo, Hi: cfg.YSpawnRangeHi},
		XVelocityRange: spawn.Range{Lo: cfg.XVelocityRangeLo, Hi: cfg.XVelocityRangeHi},
		YVelocityRange: spawn.Range{Lo: cfg.YVelocityRangeLo, Hi: cfg.YVelocityRangeHi},
		Radius:         radius,
	})
	if err != nil {
		return nil, fmt.Errorf("boundary: %w", err)
	}

	return NewFromStores(stationary, moving, maxRadius, cfg.MaxWorkers, cfg.EmitPerCollision, cfg.PauseAfterTick, sink)
}

// NewFromStores wires a Driver directly over caller-supplied, already
// populated stores — the primary supported path for hosts that do their
// own spawning.
func NewFromStores(stationary *collision.StationaryStore, moving *collision.MovingStore, maxRadius float64, workers int, emitPerCollision, pauseAfterTick bool, sink collision.Sink) (*collision.Driver, error) {
	pool, err := collision.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("boundary: %w", err)
	}
	driver := collision.NewDriver(stationary, moving, pool, sink, maxRadius, emitPerCollision)
	driver.PauseAfterTick = pauseAfterTick
	return driver, nil
}

// Snapshot is a read-only copy of both populations taken between ticks,
// for a boundary consumer (cmd/tui, cmd/gui). It never aliases driver
// state.
type Snapshot struct {
	Stationary []collision.StationaryCollision
	Moving     []collision.MovingCollision
	Tick       collision.TickMetrics
}

// TakeSnapshot copies the current moving positions and the (immutable)
// stationary collision array. Safe to call only between ticks.
func TakeSnapshot(d *collision.Driver, last collision.TickMetrics) Snapshot {
	return Snapshot{
		Stationary: append([]collision.StationaryCollision(nil), d.Stationary.Collision()...),
		Moving:     d.Moving.Snapshot(),
		Tick:       last,
	}
}
