package collision

import (
	"math"
	"testing"

	"github.com/0x5844/physics2d/internal/vecmath"
)

func buildStationary(positions []float64, radius float64) *StationaryStore {
	sc := make([]StationaryCollision, len(positions))
	si := make([]StationaryIdentity, len(positions))
	for i, x := range positions {
		sc[i] = StationaryCollision{Position: vecmath.New(x, 0), Radius: radius, BackIndex: i}
		si[i] = StationaryIdentity{Name: "S", HP: 100}
	}
	return NewStationaryStore(sc, si)
}

// Scenario A — single deterministic collision.
func TestKernelSingleDeterministicCollision(t *testing.T) {
	stationary := buildStationary([]float64{0}, 1)
	index := NewSpatialIndex(stationary)
	kernel := NewKernel(index, stationary, 2, false)

	mc := MovingCollision{Position: vecmath.New(-2, 0), Velocity: vecmath.New(1, 0), Radius: 1}
	mi := MovingIdentity{Name: "M", HP: 100}

	mc.Position = mc.Position.Add(mc.Velocity)
	if mc.Position.X != -1 {
		t.Fatalf("expected advanced position -1, got %v", mc.Position)
	}

	var res Result
	kernel.Process(&mc, &mi, &res)

	if res.Collisions != 1 {
		t.Fatalf("expected 1 collision, got %d", res.Collisions)
	}
	if mi.HP != 80 {
		t.Fatalf("expected moving hp 80, got %d", mi.HP)
	}
	if stationary.HP(0) != 80 {
		t.Fatalf("expected stationary hp 80, got %d", stationary.HP(0))
	}
	if mc.Velocity.X != -1 || mc.Velocity.Y != 0 {
		t.Fatalf("expected reflected velocity (-1,0), got %v", mc.Velocity)
	}
}

// Scenario B — no candidates in window.
func TestKernelNoCandidatesInWindow(t *testing.T) {
	stationary := buildStationary([]float64{-1000}, 1)
	index := NewSpatialIndex(stationary)
	kernel := NewKernel(index, stationary, 1, false)

	mc := MovingCollision{Position: vecmath.New(1000, 0), Velocity: vecmath.New(0, 0), Radius: 1}
	mi := MovingIdentity{Name: "M", HP: 100}

	var res Result
	kernel.Process(&mc, &mi, &res)

	if res.Collisions != 0 {
		t.Fatalf("expected 0 collisions, got %d", res.Collisions)
	}
	if mi.HP != 100 {
		t.Fatalf("expected unchanged hp, got %d", mi.HP)
	}
}

// Scenario C — multi-hit in one tick.
func TestKernelMultiHitInOneTick(t *testing.T) {
	stationary := buildStationary([]float64{0, 1.5, 3}, 1)
	index := NewSpatialIndex(stationary)
	kernel := NewKernel(index, stationary, 2, false)

	mc := MovingCollision{Position: vecmath.New(-2, 0), Velocity: vecmath.New(2, 0), Radius: 1}
	mi := MovingIdentity{Name: "M", HP: 100}
	mc.Position = mc.Position.Add(mc.Velocity)

	var res Result
	kernel.Process(&mc, &mi, &res)

	if res.Collisions != 2 {
		t.Fatalf("expected 2 collisions, got %d", res.Collisions)
	}
	if mi.HP != 60 {
		t.Fatalf("expected moving hp 60, got %d", mi.HP)
	}
	if stationary.HP(0) != 80 {
		t.Fatalf("expected S0 hp 80, got %d", stationary.HP(0))
	}
	if stationary.HP(1) != 80 {
		t.Fatalf("expected S1 hp 80, got %d", stationary.HP(1))
	}
	if stationary.HP(2) != 100 {
		t.Fatalf("expected S2 hp unchanged 100, got %d", stationary.HP(2))
	}
}

// Scenario D — right/left sweep termination. The window x ∈ (1, 5) around
// a moving circle at x=3 (2*maxRadius=2) strictly contains only x=2,3,4;
// each is within the r=1+r=1 distance threshold, so 3 circles collide —
// x=1 and x=5 sit exactly on the window boundary and the grazing
// distance (exactly 2), so the strict inequalities in both the bounded
// search (§4.2) and the narrow phase (§4.3) exclude them.
func TestKernelRightLeftSweepTermination(t *testing.T) {
	stationary := buildStationary([]float64{0, 1, 2, 3, 4, 5, 6}, 1)
	index := NewSpatialIndex(stationary)
	kernel := NewKernel(index, stationary, 1, false)

	mc := MovingCollision{Position: vecmath.New(3, 0), Velocity: vecmath.New(0, 0), Radius: 1}
	mi := MovingIdentity{Name: "M", HP: 100}

	var res Result
	kernel.Process(&mc, &mi, &res)

	if res.Collisions != 3 {
		t.Fatalf("expected 3 collisions, got %d", res.Collisions)
	}
	if mi.HP != 40 {
		t.Fatalf("expected moving hp 40, got %d", mi.HP)
	}
}

// Degenerate pair (|d| == 0): hp effects apply, reflection is skipped.
func TestKernelDegeneratePairSkipsReflection(t *testing.T) {
	stationary := buildStationary([]float64{0}, 1)
	index := NewSpatialIndex(stationary)
	kernel := NewKernel(index, stationary, 1, false)

	mc := MovingCollision{Position: vecmath.New(0, 0), Velocity: vecmath.New(3, 4), Radius: 1}
	mi := MovingIdentity{Name: "M", HP: 100}

	var res Result
	kernel.Process(&mc, &mi, &res)

	if res.Collisions != 1 {
		t.Fatalf("expected 1 collision, got %d", res.Collisions)
	}
	if mi.HP != 80 {
		t.Fatalf("expected moving hp 80, got %d", mi.HP)
	}
	if mc.Velocity.X != 3 || mc.Velocity.Y != 4 {
		t.Fatalf("expected velocity unchanged on degenerate pair, got %v", mc.Velocity)
	}
}

// Reflection geometry law: v'.n = -(v.n), v'.t = v.t.
func TestKernelReflectionGeometry(t *testing.T) {
	stationary := buildStationary([]float64{0}, 1)
	index := NewSpatialIndex(stationary)
	kernel := NewKernel(index, stationary, 1, false)

	mc := MovingCollision{Position: vecmath.New(-0.5, 0), Velocity: vecmath.New(2, 3), Radius: 1}
	mi := MovingIdentity{Name: "M", HP: 100}

	d := stationary.At(0).Position.Sub(mc.Position)
	dist := d.Mag()
	n := d.Scale(1 / dist)
	tangent := vecmath.New(-n.Y, n.X)

	vnBefore := mc.Velocity.Dot(n)
	vtBefore := mc.Velocity.Dot(tangent)

	var res Result
	kernel.Process(&mc, &mi, &res)

	vnAfter := mc.Velocity.Dot(n)
	vtAfter := mc.Velocity.Dot(tangent)

	if math.Abs(vnAfter-(-vnBefore)) > 1e-9 {
		t.Fatalf("expected normal component reversed: before=%v after=%v", vnBefore, vnAfter)
	}
	if math.Abs(vtAfter-vtBefore) > 1e-9 {
		t.Fatalf("expected tangent component unchanged: before=%v after=%v", vtBefore, vtAfter)
	}
}
