// Package spawn is the deterministic population generator that feeds the
// collision engine's stores. It sits outside the collision core proper
// and is one of two producers of a from-scratch world, the other being
// the scene-file loader in internal/boundary; callers that already have
// pre-populated stores bypass this package entirely.
package spawn

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/0x5844/physics2d/internal/collision"
	"github.com/0x5844/physics2d/internal/vecmath"
)

// RadiusMode selects how per-circle radius is sampled.
type RadiusMode struct {
	Fixed       bool
	FixedRadius float64
	Lo, Hi      float64
}

// Fixed builds a RadiusMode that assigns r to every circle.
func Fixed(r float64) RadiusMode { return RadiusMode{Fixed: true, FixedRadius: r} }

// Uniform builds a RadiusMode that draws uniformly from [lo, hi).
func Uniform(lo, hi float64) RadiusMode { return RadiusMode{Lo: lo, Hi: hi} }

func (m RadiusMode) sample(r *rand.Rand) float64 {
	if m.Fixed {
		return m.FixedRadius
	}
	return r.Float64()*(m.Hi-m.Lo) + m.Lo
}

// Range is an inclusive-exclusive uniform sampling bound.
type Range struct{ Lo, Hi float64 }

func (rg Range) sample(r *rand.Rand) float64 {
	return r.Float64()*(rg.Hi-rg.Lo) + rg.Lo
}

// Config carries the recognized spawn options.
type Config struct {
	TotalCircles    int
	Seed            int64
	XSpawnRange     Range
	YSpawnRange     Range
	XVelocityRange  Range
	YVelocityRange  Range
	Radius          RadiusMode
}

var namePalette = []string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel",
	"India", "Juliet", "Kilo", "Lima", "Mike", "November", "Oscar", "Papa",
}

var colorPalette = []collision.Color{
	{R: 220, G: 50, B: 50},
	{R: 50, G: 200, B: 90},
	{R: 60, G: 110, B: 220},
	{R: 230, G: 200, B: 40},
	{R: 190, G: 60, B: 220},
	{R: 40, G: 200, B: 200},
}

// Populate deterministically builds a stationary store of
// floor(cfg.TotalCircles/2) circles and a moving store of the remainder,
// from the same seed. Stationary circles are sorted ascending by X and
// back-indexed before the store is built, satisfying the store's
// construction invariant. MaxRadius is the maximum radius sampled across both
// populations, for the kernel's x-window.
func Populate(cfg Config) (stationary *collision.StationaryStore, moving *collision.MovingStore, maxRadius float64, err error) {
	if cfg.TotalCircles < 2 {
		return nil, nil, 0, fmt.Errorf("spawn: total_circles must be at least 2, got %d", cfg.TotalCircles)
	}
	if cfg.XSpawnRange.Lo > cfg.XSpawnRange.Hi || cfg.YSpawnRange.Lo > cfg.YSpawnRange.Hi {
		return nil, nil, 0, fmt.Errorf("spawn: inverted spawn range")
	}
	if cfg.XVelocityRange.Lo > cfg.XVelocityRange.Hi || cfg.YVelocityRange.Lo > cfg.YVelocityRange.Hi {
		return nil, nil, 0, fmt.Errorf("spawn: inverted velocity range")
	}

	nStationary := cfg.TotalCircles / 2
	nMoving := cfg.TotalCircles - nStationary

	rng := rand.New(rand.NewSource(cfg.Seed))

	sc := make([]collision.StationaryCollision, nStationary)
	si := make([]collision.StationaryIdentity, nStationary)
	for i := 0; i < nStationary; i++ {
		radius := cfg.Radius.sample(rng)
		if radius > maxRadius {
			maxRadius = radius
		}
		sc[i] = collision.StationaryCollision{
			Position: vecmath.New(cfg.XSpawnRange.sample(rng), cfg.YSpawnRange.sample(rng)),
			Radius:   radius,
		}
		si[i] = collision.StationaryIdentity{
			Name:  fmt.Sprintf("%s-%d", namePalette[i%len(namePalette)], i),
			HP:    100,
			Color: colorPalette[i%len(colorPalette)],
		}
	}
	sortStationaryByX(sc, si)
	for i := range sc {
		sc[i].BackIndex = i
	}

	mc := make([]collision.MovingCollision, nMoving)
	mi := make([]collision.MovingIdentity, nMoving)
	for i := 0; i < nMoving; i++ {
		radius := cfg.Radius.sample(rng)
		if radius > maxRadius {
			maxRadius = radius
		}
		mc[i] = collision.MovingCollision{
			Position: vecmath.New(cfg.XSpawnRange.sample(rng), cfg.YSpawnRange.sample(rng)),
			Velocity: vecmath.New(cfg.XVelocityRange.sample(rng), cfg.YVelocityRange.sample(rng)),
			Radius:   radius,
		}
		mi[i] = collision.MovingIdentity{
			Name:  fmt.Sprintf("%s-%d", namePalette[(i+1)%len(namePalette)], i),
			HP:    100,
			Color: colorPalette[(i+1)%len(colorPalette)],
		}
	}

	return collision.NewStationaryStore(sc, si), collision.NewMovingStore(mc, mi), maxRadius, nil
}

// byX sorts a stationary collision slice ascending by X while keeping the
// parallel identity slice in the same permutation.
type byX struct {
	sc []collision.StationaryCollision
	si []collision.StationaryIdentity
}

func (b byX) Len() int      { return len(b.sc) }
func (b byX) Less(i, j int) bool { return b.sc[i].Position.X < b.sc[j].Position.X }
func (b byX) Swap(i, j int) {
	b.sc[i], b.sc[j] = b.sc[j], b.sc[i]
	b.si[i], b.si[j] = b.si[j], b.si[i]
}

// SortStationaryByX sorts sc ascending by X in place, permuting si
// identically so the two stay index-paired. Callers still owe the sorted
// result a fresh BackIndex pass — sorting is not construction. Exported
// so any producer of a stationary population (the seeder here, or a
// scene-file loader) can satisfy the store's sorted-at-construction
// invariant without re-deriving the permutation logic.
func SortStationaryByX(sc []collision.StationaryCollision, si []collision.StationaryIdentity) {
	sort.Sort(byX{sc: sc, si: si})
}

func sortStationaryByX(sc []collision.StationaryCollision, si []collision.StationaryIdentity) {
	SortStationaryByX(sc, si)
}
