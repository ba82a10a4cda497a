package components

// ElementTag identifies one of the three transmutation effects a projectile
// carries and writes onto the interactive prop it strikes.
type ElementTag int

const (
	ElementNone ElementTag = iota
	ElementBounce
	ElementPhase
	ElementReflect
)

func (e ElementTag) String() string {
	switch e {
	case ElementBounce:
		return "bounce"
	case ElementPhase:
		return "phase"
	case ElementReflect:
		return "reflect"
	default:
		return "none"
	}
}

// ElementTagFromName maps a level-file material name to its tag. Unknown
// names report false so the loader can warn without guessing.
func ElementTagFromName(name string) (ElementTag, bool) {
	switch name {
	case "", "none":
		return ElementNone, true
	case "bounce", "bouncy":
		return ElementBounce, true
	case "phase":
		return ElementPhase, true
	case "reflect", "reflective":
		return ElementReflect, true
	}
	return ElementNone, false
}
