package components

import (
	"transmute3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Projectile travel constants
const (
	ProjectileSpeed      = 50.0   // units/sec
	ProjectileRange      = 120.0  // units before an unanswered shot gives up
	ProjectileRayEpsilon = 0.01   // units - pads the step ray so grazing hits register
	ExplosionDuration    = 0.3    // seconds of the phase shot's grow-and-spin state
	ExplosionGrowRate    = 8.0    // scale units/sec while exploding
	ExplosionSpinAccel   = 1440.0 // degrees/sec^2 - the explosion's spin-up
	ReflectSpinRate      = 90.0   // degrees/sec - the reflect shot's idle spin
)

// Projectile is a short-lived shot traveling along a fixed direction. The
// three element variants share travel and hit resolution and differ in what
// happens afterwards: bounce and reflect shots vanish on impact, phase shots
// play a brief explosion first.
type Projectile struct {
	engine.BaseComponent
	Element   ElementTag
	Direction rl.Vector3 // unit
	Speed     float32    // units/sec
	MaxRange  float32    // units

	traveled   float32
	exploding  bool
	explodeAge float32
	spinRate   float32
}

func NewProjectile(element ElementTag, direction rl.Vector3) *Projectile {
	return &Projectile{
		Element:   element,
		Direction: rl.Vector3Normalize(direction),
		Speed:     ProjectileSpeed,
		MaxRange:  ProjectileRange,
	}
}

// Exploding reports whether a phase shot is in its post-hit visual state.
func (p *Projectile) Exploding() bool {
	return p.exploding
}

func (p *Projectile) Update(dt float32) {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return
	}
	world := g.Scene.World

	if p.exploding {
		p.stepExplosion(dt, g, world)
		return
	}

	if p.Element == ElementReflect {
		g.Transform.Rotation.Y += ReflectSpinRate * dt
	}

	// The whole step's displacement is tested as one ray against the
	// registry. Anything the registry never held (the avatar's own weapon
	// geometry, decorations) cannot stop a shot.
	stepLen := p.Speed * dt
	if hit, ok := world.Raycast(g.Transform.Position, p.Direction, stepLen+ProjectileRayEpsilon); ok {
		if it := engine.GetComponent[*Interactive](hit.GameObject); it != nil {
			it.OnHit(p.Element)
		}
		g.Transform.Position = hit.Point
		if p.Element == ElementPhase {
			p.exploding = true
		} else {
			world.Destroy(g)
		}
		return
	}

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(p.Direction, stepLen))
	p.traveled += stepLen
	if p.traveled > p.MaxRange {
		world.Destroy(g)
	}
}

func (p *Projectile) stepExplosion(dt float32, g *engine.GameObject, world engine.WorldAccess) {
	p.explodeAge += dt
	g.Transform.Scale = rl.Vector3AddValue(g.Transform.Scale, ExplosionGrowRate*dt)
	p.spinRate += ExplosionSpinAccel * dt
	g.Transform.Rotation.Y += p.spinRate * dt
	if p.explodeAge >= ExplosionDuration {
		world.Destroy(g)
	}
}
