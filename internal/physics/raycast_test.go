package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func vec3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func TestRaycastBoxStraightDown(t *testing.T) {
	box := NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2))

	hit, ok := RaycastBox(vec3(0, 5, 0), vec3(0, -1, 0), box, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Distance != 4 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if hit.Normal.Y != 1 {
		t.Errorf("Expected +Y face normal, got %+v", hit.Normal)
	}
	if hit.Point.Y != 1 {
		t.Errorf("Expected hit point on top face, got %+v", hit.Point)
	}
}

func TestRaycastBoxMiss(t *testing.T) {
	box := NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2))

	// Ray is axis-parallel but offset beyond the X slab
	if _, ok := RaycastBox(vec3(5, 5, 5), vec3(0, -1, 0), box, 100); ok {
		t.Error("Expected miss for ray outside the box's slabs")
	}

	// Ray pointing away from the box
	if _, ok := RaycastBox(vec3(0, 5, 0), vec3(0, 1, 0), box, 100); ok {
		t.Error("Expected miss for ray pointing away")
	}
}

func TestRaycastBoxMaxDistance(t *testing.T) {
	box := NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2))

	if _, ok := RaycastBox(vec3(0, 5, 0), vec3(0, -1, 0), box, 3); ok {
		t.Error("Hit beyond maxDistance should be rejected")
	}
	if _, ok := RaycastBox(vec3(0, 5, 0), vec3(0, -1, 0), box, 4.5); !ok {
		t.Error("Hit within maxDistance should be accepted")
	}
}

func TestRaycastBoxFromInside(t *testing.T) {
	box := NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2))

	hit, ok := RaycastBox(vec3(0, 0, 0), vec3(1, 0, 0), box, 100)
	if !ok {
		t.Fatal("Ray starting inside should report the exit face")
	}
	if hit.Distance != 1 {
		t.Errorf("Expected exit distance 1, got %f", hit.Distance)
	}
	if hit.Normal.X != 1 {
		t.Errorf("Expected +X exit normal, got %+v", hit.Normal)
	}
}

func TestRaycastBoxSideFaceNormal(t *testing.T) {
	box := NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2))

	hit, ok := RaycastBox(vec3(-5, 0, 0), vec3(1, 0, 0), box, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Normal.X != -1 {
		t.Errorf("Expected -X face normal, got %+v", hit.Normal)
	}
}
