package boundary

import (
	"fmt"
	"os"
	"strings"

	"github.com/sugawarayuuta/sonnet"

	"github.com/0x5844/physics2d/internal/collision"
	"github.com/0x5844/physics2d/internal/spawn"
	"github.com/0x5844/physics2d/internal/vecmath"
)

// SceneConfig is a caller-authored, file-based population — an
// alternative to the seeded generator for hosts that want an exact,
// reproducible starting layout instead of a pseudo-random one.
type SceneConfig struct {
	Stationary []CircleConfig `json:"stationary"`
	Moving     []CircleConfig `json:"moving"`
}

// CircleConfig is one circle's file-declared state. Velocity is ignored
// for stationary circles, matching the data model's invariant that
// stationary circles never move.
type CircleConfig struct {
	Name     string          `json:"name"`
	Position vecmath.Vec2    `json:"position"`
	Velocity vecmath.Vec2    `json:"velocity"`
	Radius   float64         `json:"radius"`
	HP       int32           `json:"hp"`
	Color    collision.Color `json:"color"`
}

// LoadSceneFromFile reads and parses a scene file, decoding with sonnet,
// the same JSON engine the websocket sink already depends on, instead of
// pulling in encoding/json for a second time.
func LoadSceneFromFile(filename string) (*SceneConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("boundary: reading scene %s: %w", filename, err)
	}

	var scene SceneConfig
	if err := sonnet.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("boundary: parsing scene %s: %w", filename, err)
	}
	return &scene, nil
}

// NewFromScene builds a Driver directly from a parsed scene. It is the
// sole constructor of the stores in this path, since a scene is a
// from-scratch population source like spawn.Populate, not a mutation of
// an existing one.
func NewFromScene(scene *SceneConfig, workers int, emitPerCollision, pauseAfterTick bool, sink collision.Sink) (*collision.Driver, error) {
	if len(scene.Stationary) == 0 {
		return nil, fmt.Errorf("boundary: scene declares no stationary circles")
	}
	if len(scene.Moving) == 0 {
		return nil, fmt.Errorf("boundary: scene declares no moving circles")
	}

	sc := make([]collision.StationaryCollision, len(scene.Stationary))
	si := make([]collision.StationaryIdentity, len(scene.Stationary))
	var maxRadius float64
	for i, c := range scene.Stationary {
		if c.Radius <= 0 {
			return nil, fmt.Errorf("boundary: stationary circle %d: radius must be positive", i)
		}
		hp := c.HP
		if hp == 0 {
			hp = 100
		}
		sc[i] = collision.StationaryCollision{Position: c.Position, Radius: c.Radius}
		si[i] = collision.StationaryIdentity{Name: nameOrDefault(c.Name, "S", i), HP: hp, Color: c.Color}
		if c.Radius > maxRadius {
			maxRadius = c.Radius
		}
	}
	spawn.SortStationaryByX(sc, si)
	for i := range sc {
		sc[i].BackIndex = i
	}

	mc := make([]collision.MovingCollision, len(scene.Moving))
	mi := make([]collision.MovingIdentity, len(scene.Moving))
	for i, c := range scene.Moving {
		if c.Radius <= 0 {
			return nil, fmt.Errorf("boundary: moving circle %d: radius must be positive", i)
		}
		hp := c.HP
		if hp == 0 {
			hp = 100
		}
		mc[i] = collision.MovingCollision{Position: c.Position, Velocity: c.Velocity, Radius: c.Radius}
		mi[i] = collision.MovingIdentity{Name: nameOrDefault(c.Name, "M", i), HP: hp, Color: c.Color}
		if c.Radius > maxRadius {
			maxRadius = c.Radius
		}
	}

	stationary := collision.NewStationaryStore(sc, si)
	moving := collision.NewMovingStore(mc, mi)
	return NewFromStores(stationary, moving, maxRadius, workers, emitPerCollision, pauseAfterTick, sink)
}

func nameOrDefault(name, prefix string, i int) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return fmt.Sprintf("%s-%d", prefix, i)
}
