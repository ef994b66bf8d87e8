// Package vecmath fixes the two-component floating-point vector used
// throughout the collision engine's data model.
package vecmath

import "github.com/setanarut/vec"

// Vec2 is the position/velocity/normal representation for every circle
// record. It is a direct alias of vec.Vec2 so callers get Add, Sub,
// Scale, Dot, Mag, Unit, Dist and friends for free.
type Vec2 = vec.Vec2

// New builds a Vec2 from components.
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}
