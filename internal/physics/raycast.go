package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayHit describes where a ray crossed a box surface.
type RayHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastBox intersects a ray with an axis-aligned box by clipping it
// against the three slab pairs. The direction must be normalized. A ray
// starting inside the box reports the exit face, so probes fired from within
// geometry still resolve to a surface.
func RaycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RayHit, bool) {
	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tEnter := float32(-math.MaxFloat32)
	tExit := float32(math.MaxFloat32)
	enterAxis, exitAxis := -1, -1

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			// Parallel to this slab pair: either always inside it or never.
			if o[i] < lo[i] || o[i] > hi[i] {
				return RayHit{}, false
			}
			continue
		}
		tNear := (lo[i] - o[i]) / d[i]
		tFar := (hi[i] - o[i]) / d[i]
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}
		if tNear > tEnter {
			tEnter = tNear
			enterAxis = i
		}
		if tFar < tExit {
			tExit = tFar
			exitAxis = i
		}
	}

	if tEnter > tExit || tExit < 0 {
		return RayHit{}, false
	}

	t, axis, outward := tEnter, enterAxis, float32(-1)
	if tEnter < 0 {
		t, axis, outward = tExit, exitAxis, 1
	}
	if t > maxDistance || axis < 0 {
		return RayHit{}, false
	}

	// The crossed face sits on the hit axis; its outward normal opposes the
	// ray on entry and follows it on exit.
	var normal [3]float32
	if d[axis] > 0 {
		normal[axis] = outward
	} else {
		normal[axis] = -outward
	}

	return RayHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   rl.Vector3{X: normal[0], Y: normal[1], Z: normal[2]},
		Distance: t,
	}, true
}
