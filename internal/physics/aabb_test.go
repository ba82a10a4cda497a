package physics

import "testing"

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(vec3(2, 4, 6), vec3(2, 2, 2))

	if box.Min.X != 1 || box.Min.Y != 3 || box.Min.Z != 5 {
		t.Errorf("Unexpected Min: %+v", box.Min)
	}
	if box.Max.X != 3 || box.Max.Y != 5 || box.Max.Z != 7 {
		t.Errorf("Unexpected Max: %+v", box.Max)
	}
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2))
	b := NewAABBFromCenter(vec3(1.5, 0, 0), vec3(2, 2, 2))
	c := NewAABBFromCenter(vec3(5, 0, 0), vec3(2, 2, 2))

	if !a.Intersects(b) {
		t.Error("Overlapping boxes should intersect")
	}
	if a.Intersects(c) {
		t.Error("Separated boxes should not intersect")
	}
}

func TestAABBIntersectsTouching(t *testing.T) {
	a := NewAABBFromCenter(vec3(0, 0, 0), vec3(2, 2, 2))
	b := NewAABBFromCenter(vec3(2, 0, 0), vec3(2, 2, 2))

	// Faces exactly touching count as intersecting
	if !a.Intersects(b) {
		t.Error("Face-touching boxes should intersect")
	}
}

func TestAABBCenter(t *testing.T) {
	box := NewAABBFromCenter(vec3(3, -2, 7), vec3(4, 6, 8))
	c := box.Center()

	if c.X != 3 || c.Y != -2 || c.Z != 7 {
		t.Errorf("Expected center (3, -2, 7), got %+v", c)
	}
}
