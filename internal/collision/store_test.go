package collision

import (
	"testing"

	"github.com/0x5844/physics2d/internal/vecmath"
)

func TestNewStationaryStorePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on mismatched collision/identity lengths")
		}
	}()
	NewStationaryStore(
		make([]StationaryCollision, 2),
		make([]StationaryIdentity, 1),
	)
}

func TestNewMovingStorePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on mismatched collision/identity lengths")
		}
	}()
	NewMovingStore(
		make([]MovingCollision, 1),
		make([]MovingIdentity, 2),
	)
}

func TestStationaryStoreAccessors(t *testing.T) {
	sc := []StationaryCollision{
		{Position: vecmath.New(0, 0), Radius: 1, BackIndex: 0},
		{Position: vecmath.New(5, 0), Radius: 1, BackIndex: 1},
	}
	si := []StationaryIdentity{
		{Name: "S0", HP: 100, Color: Color{R: 1}},
		{Name: "S1", HP: 100, Color: Color{G: 1}},
	}
	store := NewStationaryStore(sc, si)

	if store.Len() != 2 {
		t.Fatalf("expected Len 2, got %d", store.Len())
	}
	if store.At(1).Position.X != 5 {
		t.Fatalf("expected At(1).Position.X == 5, got %v", store.At(1).Position.X)
	}
	if store.Name(0) != "S0" || store.Name(1) != "S1" {
		t.Fatalf("unexpected names: %q, %q", store.Name(0), store.Name(1))
	}
	if store.Color(0) != (Color{R: 1}) {
		t.Fatalf("unexpected color at 0: %+v", store.Color(0))
	}
	if len(store.Collision()) != 2 {
		t.Fatalf("expected Collision() to return both records")
	}
}

func TestStationaryStoreApplyDamageAndHP(t *testing.T) {
	store := NewStationaryStore(
		[]StationaryCollision{{Position: vecmath.New(0, 0), Radius: 1, BackIndex: 0}},
		[]StationaryIdentity{{Name: "S0", HP: 100}},
	)

	if hp := store.ApplyDamage(0, 20); hp != 80 {
		t.Fatalf("expected hp 80 after ApplyDamage, got %d", hp)
	}
	if store.HP(0) != 80 {
		t.Fatalf("expected HP() to reflect the applied damage, got %d", store.HP(0))
	}

	store.ApplyDamage(0, 30)
	if store.HP(0) != 50 {
		t.Fatalf("expected cumulative damage to settle at hp 50, got %d", store.HP(0))
	}
}

func TestStationaryStoreApplyDamageIsConcurrencySafe(t *testing.T) {
	store := NewStationaryStore(
		[]StationaryCollision{{Position: vecmath.New(0, 0), Radius: 1, BackIndex: 0}},
		[]StationaryIdentity{{Name: "S0", HP: 1000}},
	)

	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func() {
			store.ApplyDamage(0, 1)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 50; i++ {
		<-done
	}

	if store.HP(0) != 950 {
		t.Fatalf("expected hp 950 after 50 concurrent unit-damage applications, got %d", store.HP(0))
	}
}

func TestMovingStoreAccessorsAndRange(t *testing.T) {
	mc := []MovingCollision{
		{Position: vecmath.New(0, 0), Velocity: vecmath.New(1, 0), Radius: 1},
		{Position: vecmath.New(1, 0), Velocity: vecmath.New(0, 1), Radius: 2},
		{Position: vecmath.New(2, 0), Velocity: vecmath.New(0, 0), Radius: 3},
	}
	mi := []MovingIdentity{
		{Name: "M0", HP: 100},
		{Name: "M1", HP: 100},
		{Name: "M2", HP: 100},
	}
	store := NewMovingStore(mc, mi)

	if store.Len() != 3 {
		t.Fatalf("expected Len 3, got %d", store.Len())
	}

	rangeCollision, rangeIdentity := store.Range(1, 3)
	if len(rangeCollision) != 2 || len(rangeIdentity) != 2 {
		t.Fatalf("expected Range(1,3) to return 2 records, got %d/%d", len(rangeCollision), len(rangeIdentity))
	}
	rangeCollision[0].Radius = 99
	if store.Collision()[1].Radius != 99 {
		t.Fatalf("expected Range to expose a mutable view aliasing the backing store")
	}
}

func TestMovingStoreSnapshotDoesNotAliasLiveState(t *testing.T) {
	store := NewMovingStore(
		[]MovingCollision{{Position: vecmath.New(0, 0), Radius: 1}},
		[]MovingIdentity{{Name: "M0", HP: 100}},
	)

	snap := store.Snapshot()
	store.Collision()[0].Position = vecmath.New(100, 100)

	if snap[0].Position.X == 100 {
		t.Fatalf("expected Snapshot to copy, not alias, the moving collision array")
	}
}
