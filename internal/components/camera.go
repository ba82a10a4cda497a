package components

import (
	"math"

	"transmute3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

// GetRaylibCamera builds the raylib camera for this frame. The look
// direction comes from the nearest LookProvider on this object or a parent;
// objects without one look along their own yaw.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()

	var look engine.LookProvider
	for obj := g; obj != nil && look == nil; obj = obj.Parent {
		for _, comp := range obj.Components() {
			if lp, ok := comp.(engine.LookProvider); ok {
				look = lp
				break
			}
		}
	}

	var target rl.Vector3
	if look != nil {
		x, y, z := look.GetLookDirection()
		target = rl.Vector3Add(eyePos, rl.Vector3{X: x, Y: y, Z: z})
	} else {
		yawRad := float64(g.WorldRotation().Y) * math.Pi / 180
		forward := rl.Vector3{
			X: float32(-math.Sin(yawRad)),
			Y: 0,
			Z: float32(-math.Cos(yawRad)),
		}
		target = rl.Vector3Add(eyePos, forward)
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
