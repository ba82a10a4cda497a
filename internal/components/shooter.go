package components

import (
	"fmt"

	"transmute3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Firing constants
const (
	FireCooldown    = 0.15 // seconds between shots
	MuzzleOffset    = 0.5  // units in front of the eye where shots appear
	ProjectileScale = 0.12 // units - visual size of a shot
)

// Shooter spawns projectiles for the avatar. The host asks it to fire; the
// shooter owns only the cooldown and the muzzle math.
type Shooter struct {
	engine.BaseComponent
	World engine.WorldAccess

	Cooldown  float32 // seconds between shots
	remaining float32
	shotCount int
}

func NewShooter(world engine.WorldAccess) *Shooter {
	return &Shooter{
		World:    world,
		Cooldown: FireCooldown,
	}
}

func (s *Shooter) Update(dt float32) {
	if s.remaining > 0 {
		s.remaining -= dt
	}
}

// TryFire spawns a projectile of the given element from the avatar's eye
// along its look direction. Reports whether a shot actually left.
func (s *Shooter) TryFire(element ElementTag) bool {
	if element == ElementNone || s.remaining > 0 {
		return false
	}
	g := s.GetGameObject()
	if g == nil {
		return false
	}
	av := engine.GetComponent[*Avatar](g)
	if av == nil {
		return false
	}

	s.remaining = s.Cooldown
	s.shotCount++

	dir := av.lookDirection()
	shot := engine.NewGameObject(fmt.Sprintf("Shot_%d", s.shotCount))
	shot.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(dir, MuzzleOffset))
	shot.Transform.Scale = rl.Vector3{X: ProjectileScale, Y: ProjectileScale, Z: ProjectileScale}
	shot.AddComponent(NewProjectile(element, dir))
	shot.Start()
	s.World.SpawnObject(shot)
	return true
}
