package components

import (
	"transmute3d/internal/engine"
	"transmute3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// AABB returns the collider's box in world space, scaled by the owning
// object's world scale.
func (b *BoxCollider) AABB() physics.AABB {
	g := b.GetGameObject()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	scale := g.WorldScale()
	size := rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
	return physics.NewAABBFromCenter(center, size)
}
