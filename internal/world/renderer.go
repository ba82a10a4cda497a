package world

import (
	"transmute3d/internal/components"
	"transmute3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the stage flat-shaded: what a prop does is exactly what its
// color says, and transmutations show up the instant the material changes.
type Renderer struct {
	// ShowColliders overlays every live registry entry's box, including
	// ray-transparent ones, for debugging.
	ShowColliders bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders one frame of the current stage from the avatar's camera.
func (r *Renderer) Draw(w *World) {
	cam := w.Camera.GetRaylibCamera()
	rl.BeginMode3D(cam)

	rl.DrawGrid(40, 1.0)

	for _, e := range w.Registry.Entries() {
		if !e.Live() {
			continue
		}
		box := e.Collider.AABB()
		center := box.Center()
		size := rl.Vector3Subtract(box.Max, box.Min)

		if e.Surface != nil && e.Surface.Decorative {
			rl.DrawCubeWiresV(center, size, rl.Gray)
			continue
		}

		fill, wire := propColors(e)
		rl.DrawCubeV(center, size, fill)
		rl.DrawCubeWiresV(center, size, wire)

		if r.ShowColliders {
			rl.DrawCubeWiresV(center, rl.Vector3AddValue(size, 0.02), rl.Magenta)
		}
	}

	r.drawShots(w)
	r.drawGoalPlane(w)

	rl.EndMode3D()
}

// propColors picks the fill and outline for a live entry. Interactive
// material wins over the static surface flags; a phased prop stays visible
// but clearly immaterial.
func propColors(e Entry) (fill, wire rl.Color) {
	if e.Interactive != nil {
		switch e.Interactive.Material {
		case components.ElementBounce:
			fill = rl.Orange
		case components.ElementPhase:
			fill = rl.Fade(rl.Purple, 0.35)
		case components.ElementReflect:
			fill = rl.SkyBlue
		default:
			fill = rl.Beige
		}
		return fill, rl.DarkGray
	}
	if e.Surface != nil {
		switch {
		case e.Surface.Lava:
			return rl.Red, rl.Maroon
		case e.Surface.Target:
			return rl.Lime, rl.DarkGreen
		case e.Surface.Safe:
			return rl.LightGray, rl.DarkGray
		}
	}
	return rl.Gray, rl.DarkGray
}

// ElementColor is the signature tint for an element, shared by the
// renderer and the HUD.
func ElementColor(tag components.ElementTag) rl.Color {
	switch tag {
	case components.ElementBounce:
		return rl.Orange
	case components.ElementPhase:
		return rl.Purple
	case components.ElementReflect:
		return rl.SkyBlue
	}
	return rl.White
}

// drawShots renders every projectile in flight as a small spinning cube, and
// a phase explosion as the same cube mid-growth.
func (r *Renderer) drawShots(w *World) {
	for _, g := range w.Scene.GameObjects {
		p := engine.GetComponent[*components.Projectile](g)
		if p == nil {
			continue
		}
		pos := g.Transform.Position
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(g.Transform.Rotation.Y, 0, 1, 0)
		rl.DrawCubeV(rl.Vector3{}, g.Transform.Scale, ElementColor(p.Element))
		rl.DrawCubeWiresV(rl.Vector3{}, g.Transform.Scale, rl.White)
		rl.PopMatrix()
	}
}

// drawGoalPlane marks the finish as a translucent slab across the course.
func (r *Renderer) drawGoalPlane(w *World) {
	stage := w.CurrentStage()
	center := rl.Vector3{X: stage.Spawn.RL().X, Y: 2.5, Z: stage.GoalZ}
	size := rl.Vector3{X: 14, Y: 7, Z: 0.05}
	rl.DrawCubeV(center, size, rl.Fade(rl.Green, 0.2))
}
