package components

import "transmute3d/internal/engine"

// Surface marks world geometry for the avatar's ground classification and the
// projectile hit filter. Plain floors carry only this; transmutable props
// carry an Interactive alongside it.
type Surface struct {
	engine.BaseComponent
	// Safe means the avatar can stand here without consequence.
	Safe bool
	// Target counts as valid footing for goal logic even when not Safe.
	Target bool
	// Lava kills the avatar whose feet reach it.
	Lava bool
	// Decorative marks line/wireframe-only geometry that no query may hit.
	Decorative bool
}

func NewSurface() *Surface {
	return &Surface{}
}

// RaySolid reports whether probes and projectiles can hit the object.
// Decorations are invisible to rays, and so are phased interactives.
func RaySolid(obj *engine.GameObject) bool {
	return RaySolidParts(engine.GetComponent[*Surface](obj), engine.GetComponent[*Interactive](obj))
}

// BodySolid reports whether the object stops the avatar's body. Everything
// transparent to rays is transparent here too, and so is lava: the avatar
// sinks into it instead of standing on it.
func BodySolid(obj *engine.GameObject) bool {
	return BodySolidParts(engine.GetComponent[*Surface](obj), engine.GetComponent[*Interactive](obj))
}

// RaySolidParts is the same filter over already-resolved components, for
// callers that cache them.
func RaySolidParts(surf *Surface, it *Interactive) bool {
	if surf != nil && surf.Decorative {
		return false
	}
	if it != nil && !it.Blocking() {
		return false
	}
	return true
}

// BodySolidParts is BodySolid over already-resolved components.
func BodySolidParts(surf *Surface, it *Interactive) bool {
	if !RaySolidParts(surf, it) {
		return false
	}
	if surf != nil && surf.Lava {
		return false
	}
	return true
}
