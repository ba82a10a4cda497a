package components

import (
	"transmute3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interactive is a transmutable world prop. It holds the mutable material
// state and nothing else; what a material means for movement or projectiles
// is interpreted entirely by the Avatar and Projectile code.
type Interactive struct {
	engine.BaseComponent
	Material ElementTag
	// Boost is an optional velocity kick granted when the avatar lands on
	// this prop while it is Reflective. Zero means none.
	Boost rl.Vector3

	initial ElementTag
	blocker bool
}

func NewInteractive(initial ElementTag) *Interactive {
	return &Interactive{
		Material: initial,
		initial:  initial,
		blocker:  initial != ElementPhase,
	}
}

// OnHit applies a transmutation. This is a pure state transition: the
// material takes the projectile's tag, and a prop that has been phased stops
// blocking until the level resets.
func (it *Interactive) OnHit(tag ElementTag) {
	it.Material = tag
	it.blocker = it.blocker && tag != ElementPhase
}

// Blocking reports whether the prop currently stops movement and rays.
func (it *Interactive) Blocking() bool {
	return it.blocker
}

// ResetMaterial restores the level-declared initial material. Called on
// every registered prop when the level's reset token changes.
func (it *Interactive) ResetMaterial() {
	it.Material = it.initial
	it.blocker = it.initial != ElementPhase
}
