package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is a world-space box, the only collider shape the simulation uses.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter builds a box around a center point from its full extents.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Intersects reports overlap. Exactly touching faces count, which is what
// lets ground contact register at zero separation.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Center returns the midpoint of the box.
func (a AABB) Center() rl.Vector3 {
	return rl.Vector3{
		X: (a.Min.X + a.Max.X) / 2,
		Y: (a.Min.Y + a.Max.Y) / 2,
		Z: (a.Min.Z + a.Max.Z) / 2,
	}
}
