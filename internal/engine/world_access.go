package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with the world package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies. The world implementation
// answers both queries from its collider registry snapshot, never from a
// scene walk, so per-frame cost stays flat as levels grow.
type WorldAccess interface {
	// GetCollidableObjects returns the registry's current snapshot of
	// mounted, collision-relevant objects.
	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	// Raycast returns the nearest blocking hit along the ray. Pass-through
	// and decorative geometry never appears in results.
	Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastResult, bool)
}
