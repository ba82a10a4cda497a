package components

import (
	"math"

	"transmute3d/internal/engine"
	"transmute3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DeathReason tells the level collaborator what killed the avatar.
type DeathReason int

const (
	DeathLava DeathReason = iota
	DeathVoid
)

func (r DeathReason) String() string {
	if r == DeathLava {
		return "lava"
	}
	return "void"
}

// Simulation tuning constants
const (
	MaxStepDelta         = 0.1   // seconds - frame hitches are clamped to this to prevent tunneling
	HorizontalDamping    = 10.0  // 1/sec - exponential decay rate of horizontal velocity
	BounceThreshold      = 2.0   // units/sec - minimum downward speed for a trampoline rebound
	BounceRestitution    = 0.9   // fraction of incoming speed kept by a rebound
	BouncyJumpMultiplier = 1.5   // jump impulse scale when standing on a bouncy surface
	LavaContactTolerance = 0.15  // units - feet this close above a lava surface count as touching
	LavaFlingSpeed       = 6.0   // units/sec - upward impulse when lava kills the avatar
	DeathDuration        = 1.2   // seconds from death trigger to respawn
	RespawnGrace         = 1.0   // seconds after respawn during which new deaths are ignored
	DeathSpinRate        = 220.0 // degrees/sec - view spin while dying
	AimProbeInterval     = 4     // steps between crosshair hover raycasts
	GroundProbeRange     = 100.0 // units - max distance of the downward ground probe
	AimProbeRange        = 60.0  // units - max distance of the hover probe
)

// LevelBinding carries the per-level data the avatar consumes: where to
// spawn, which way to face, and where the goal and kill planes sit.
type LevelBinding struct {
	SpawnPoint  rl.Vector3 // eye-level spawn position
	SpawnYaw    float32    // degrees - level-forward look direction
	GoalZ       float32    // crossing this Z from the spawn side completes the stage
	DeathHeight float32    // world Y below which the fail-safe death triggers
	HazardZ     float32    // Z boundary of the lava footprint, used for the fail-safe reason
}

// Avatar owns the player's movement simulation: velocity integration,
// collision resolution against the collider registry, surface
// classification, and the death/respawn state machine. The host calls Step
// exactly once per frame with that frame's input snapshot.
type Avatar struct {
	engine.BaseComponent

	// Look state in degrees.
	Yaw   float32
	Pitch float32

	MoveSpeed   float32 // units/sec - steady-state horizontal speed
	LookSpeed   float32 // degrees per pointer pixel
	Gravity     float32 // units/sec^2
	JumpImpulse float32 // units/sec
	EyeHeight   float32 // units from feet to the eye-level position
	Height      float32 // units - collision box height
	Radius      float32 // units - collision box half-width

	Velocity rl.Vector3
	CanJump  bool

	// Ground classification from this step's probe.
	SurfaceType  ElementTag
	GroundNormal rl.Vector3
	GroundSafe   bool
	Hovering     bool

	// OnDeath fires once per death with its reason. OnStageComplete fires at
	// most once per level instance.
	OnDeath         engine.EventWithArg[DeathReason]
	OnStageComplete engine.Event

	level       LevelBinding
	goalSign    float32
	goalReached bool

	dying         bool
	deathTimer    float32
	deathCooldown float32

	grounded     bool
	pendingBoost rl.Vector3
	stepCount    int
}

func NewAvatar() *Avatar {
	return &Avatar{
		MoveSpeed:    8.0,
		LookSpeed:    0.1,
		Gravity:      9.8,
		JumpImpulse:  8.0,
		EyeHeight:    1.7,
		Height:       1.8,
		Radius:       0.4,
		GroundNormal: rl.Vector3{Y: 1},
		goalSign:     1,
	}
}

// BindLevel points the avatar at a fresh level instance: spawn placement,
// level-forward look, and a re-armed goal latch.
func (a *Avatar) BindLevel(b LevelBinding) {
	a.level = b
	if b.SpawnPoint.Z >= b.GoalZ {
		a.goalSign = 1
	} else {
		a.goalSign = -1
	}
	a.goalReached = false
	a.dying = false
	a.deathTimer = 0
	a.deathCooldown = 0
	a.stepCount = 0
	a.placeAtSpawn()
}

func (a *Avatar) IsDying() bool     { return a.dying }
func (a *Avatar) GoalReached() bool { return a.goalReached }

// Step advances the simulation by one frame's worth of time. dt is clamped
// so a frame hitch cannot tunnel the avatar through geometry.
func (a *Avatar) Step(dt float32, in Input) {
	if dt > MaxStepDelta {
		dt = MaxStepDelta
	}
	g := a.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return
	}
	world := g.Scene.World
	a.stepCount++

	if a.deathCooldown > 0 {
		a.deathCooldown -= dt
		if a.deathCooldown < 0 {
			a.deathCooldown = 0
		}
	}

	// While dying, only gravity and the view spin run. No collision, no
	// input, until the timer respawns us.
	if a.dying {
		a.stepDying(dt, g)
		return
	}

	if in.Locked {
		a.Yaw += in.LookX * a.LookSpeed
		a.Pitch -= in.LookY * a.LookSpeed
		if a.Pitch > 89 {
			a.Pitch = 89
		}
		if a.Pitch < -89 {
			a.Pitch = -89
		}
	}

	if !a.probeGround(world, g) {
		return // the probe found lava underfoot
	}

	if a.stepCount%AimProbeInterval == 0 {
		a.probeAim(world, g)
	}

	// Vertical integration, then resolution against the registry.
	a.Velocity.Y -= a.Gravity * dt
	g.Transform.Position.Y += a.Velocity.Y * dt
	if a.collides(world, g) {
		g.Transform.Position.Y -= a.Velocity.Y * dt
		if a.Velocity.Y > 0 {
			a.Velocity.Y = 0 // bumped a ceiling
		} else {
			a.land()
		}
	} else {
		a.grounded = false
	}

	// Horizontal damping plus input-driven acceleration. The acceleration is
	// scaled so that its equilibrium against the damping is MoveSpeed.
	damp := 1 - HorizontalDamping*dt
	if damp < 0 {
		damp = 0
	}
	a.Velocity.X *= damp
	a.Velocity.Z *= damp
	if in.Locked {
		move := a.moveDirection(in)
		accel := a.MoveSpeed * HorizontalDamping
		a.Velocity.X += move.X * accel * dt
		a.Velocity.Z += move.Z * accel * dt
	}

	// Per-axis resolution: a blocked axis zeroes its velocity component
	// while the other keeps sliding.
	dx := a.Velocity.X * dt
	g.Transform.Position.X += dx
	if a.collides(world, g) {
		g.Transform.Position.X -= dx
		a.Velocity.X = 0
	}
	dz := a.Velocity.Z * dt
	g.Transform.Position.Z += dz
	if a.collides(world, g) {
		g.Transform.Position.Z -= dz
		a.Velocity.Z = 0
	}

	if in.Locked && in.Jump && a.CanJump {
		impulse := a.JumpImpulse
		if a.SurfaceType == ElementBounce {
			impulse *= BouncyJumpMultiplier
		}
		a.Velocity.Y = impulse
		a.CanJump = false
		a.grounded = false
	}

	// Fail-safe for falling out of the level.
	if g.Transform.Position.Y < a.level.DeathHeight {
		if g.Transform.Position.Z < a.level.HazardZ {
			a.die(DeathLava)
		} else {
			a.die(DeathVoid)
		}
		return
	}

	if !a.goalReached && (g.Transform.Position.Z-a.level.GoalZ)*a.goalSign <= 0 {
		a.goalReached = true
		a.OnStageComplete.Invoke()
	}
}

// probeGround classifies what is underfoot. Returns false when the probe
// killed the avatar (lava contact), which ends the step.
func (a *Avatar) probeGround(world engine.WorldAccess, g *engine.GameObject) bool {
	a.SurfaceType = ElementNone
	a.GroundSafe = false
	a.GroundNormal = rl.Vector3{Y: 1}
	a.pendingBoost = rl.Vector3{}

	hit, ok := world.Raycast(g.Transform.Position, rl.Vector3{Y: -1}, GroundProbeRange)
	if !ok {
		return true
	}

	surf := engine.GetComponent[*Surface](hit.GameObject)
	it := engine.GetComponent[*Interactive](hit.GameObject)
	feet := g.Transform.Position.Y - a.EyeHeight

	if surf != nil && surf.Lava {
		if feet <= hit.Point.Y+LavaContactTolerance {
			a.die(DeathLava)
			return false
		}
		return true
	}
	if it != nil {
		a.SurfaceType = it.Material
		switch it.Material {
		case ElementBounce:
			a.GroundNormal = hit.Normal
		case ElementReflect:
			a.pendingBoost = it.Boost
		}
		a.GroundSafe = surf != nil && (surf.Safe || surf.Target)
		return true
	}
	if surf != nil && (surf.Safe || surf.Target) {
		a.GroundSafe = true
	}
	return true
}

// probeAim updates the crosshair hover flag. Purely visual feedback, so it
// only runs every AimProbeInterval steps.
func (a *Avatar) probeAim(world engine.WorldAccess, g *engine.GameObject) {
	hit, ok := world.Raycast(g.Transform.Position, a.lookDirection(), AimProbeRange)
	a.Hovering = ok && engine.GetComponent[*Interactive](hit.GameObject) != nil
}

// land resolves a downward collision: either a trampoline rebound or a
// regular landing. A fresh landing on a boosted reflective prop gets its
// contact kick exactly once.
func (a *Avatar) land() {
	incoming := -a.Velocity.Y
	fresh := !a.grounded
	a.grounded = true
	a.CanJump = true

	if a.SurfaceType == ElementBounce && incoming > BounceThreshold {
		a.Velocity = rl.Vector3Scale(rl.Vector3Reflect(a.Velocity, a.GroundNormal), BounceRestitution)
		a.grounded = false
		return
	}

	a.Velocity.Y = 0
	if fresh && a.pendingBoost != (rl.Vector3{}) {
		a.Velocity = rl.Vector3Add(a.Velocity, a.pendingBoost)
	}
}

// collides tests the avatar's body box against every live, body-blocking
// registry entry at the current tentative position.
func (a *Avatar) collides(world engine.WorldAccess, g *engine.GameObject) bool {
	pos := g.Transform.Position
	feet := pos.Y - a.EyeHeight
	body := physics.AABB{
		Min: rl.Vector3{X: pos.X - a.Radius, Y: feet, Z: pos.Z - a.Radius},
		Max: rl.Vector3{X: pos.X + a.Radius, Y: feet + a.Height, Z: pos.Z + a.Radius},
	}
	for _, obj := range world.GetCollidableObjects() {
		if !obj.InScene() || !BodySolid(obj) {
			continue
		}
		col := engine.GetComponent[*BoxCollider](obj)
		if col == nil {
			continue
		}
		if body.Intersects(col.AABB()) {
			return true
		}
	}
	return false
}

func (a *Avatar) die(reason DeathReason) {
	if a.dying || a.deathCooldown > 0 {
		return
	}
	a.dying = true
	a.deathTimer = DeathDuration
	a.Velocity.X = 0
	a.Velocity.Z = 0
	if reason == DeathLava {
		a.Velocity.Y = LavaFlingSpeed
	}
	a.OnDeath.Invoke(reason)
}

func (a *Avatar) stepDying(dt float32, g *engine.GameObject) {
	a.Velocity.Y -= a.Gravity * dt
	g.Transform.Position.X += a.Velocity.X * dt
	g.Transform.Position.Y += a.Velocity.Y * dt
	g.Transform.Position.Z += a.Velocity.Z * dt
	a.Yaw += DeathSpinRate * dt
	a.deathTimer -= dt
	if a.deathTimer <= 0 {
		a.respawn()
	}
}

func (a *Avatar) respawn() {
	a.dying = false
	a.deathCooldown = RespawnGrace
	a.placeAtSpawn()
}

func (a *Avatar) placeAtSpawn() {
	if g := a.GetGameObject(); g != nil {
		g.Transform.Position = a.level.SpawnPoint
	}
	a.Yaw = a.level.SpawnYaw
	a.Pitch = 0
	a.Velocity = rl.Vector3{}
	a.CanJump = true
	a.grounded = false
	a.SurfaceType = ElementNone
	a.GroundNormal = rl.Vector3{Y: 1}
	a.GroundSafe = false
	a.Hovering = false
	a.pendingBoost = rl.Vector3{}
}

// moveDirection builds the normalized horizontal intent from the input,
// projected onto the yaw-only forward/right basis.
func (a *Avatar) moveDirection(in Input) rl.Vector3 {
	forward, right := a.basis()
	var move rl.Vector3
	if in.Forward {
		move.X += forward.X
		move.Z += forward.Z
	}
	if in.Back {
		move.X -= forward.X
		move.Z -= forward.Z
	}
	if in.Left {
		move.X -= right.X
		move.Z -= right.Z
	}
	if in.Right {
		move.X += right.X
		move.Z += right.Z
	}
	length := float32(math.Sqrt(float64(move.X*move.X + move.Z*move.Z)))
	if length > 0 {
		move.X /= length
		move.Z /= length
	}
	return move
}

func (a *Avatar) basis() (forward, right rl.Vector3) {
	yawRad := float64(a.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (a *Avatar) lookDirection() rl.Vector3 {
	yawRad := float64(a.Yaw) * math.Pi / 180
	pitchRad := float64(a.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// GetLookDirection implements engine.LookProvider.
func (a *Avatar) GetLookDirection() (x, y, z float32) {
	dir := a.lookDirection()
	return dir.X, dir.Y, dir.Z
}
